// Package classify assigns a conveyancing document type to each page of a
// legal pack by keyword matching.
package classify

import (
	"strings"

	"github.com/pkhlegal/legalbrain/internal/extract"
)

// Document is a page with its assigned type. The type is set once at
// classification and never reassigned downstream.
type Document struct {
	Type string `json:"type"`
	Page int    `json:"page"`
	Text string `json:"text"`
}

// TypeOther is the label for pages matching no keyword set.
const TypeOther = "Other"

type keywordRule struct {
	docType  string
	keywords []string
}

// keywordTable is evaluated top to bottom and the first matching entry wins.
// Two keyword sets can match the same page (a lease page often mentions the
// title plan), so the order here is load-bearing.
var keywordTable = []keywordRule{
	{"Special Conditions", []string{"special conditions", "buyer to pay", "administration fee"}},
	{"Lease", []string{"lease", "ground rent", "service charge", "term of years"}},
	{"Office Copy Entry", []string{"title number", "proprietorship register"}},
	{"Title Plan", []string{"title plan", "ordnance survey"}},
	{"Replies to Enquiries", []string{"enquiries", "cpse"}},
	{"Searches", []string{"local authority search", "drainage", "environmental"}},
	{"EPC", []string{"energy performance"}},
	{"Addendum", []string{"addendum", "updated"}},
}

// Classify labels each page with a document type. Pure function of the page
// text and the static keyword table.
func Classify(pages []extract.Page) []Document {
	docs := make([]Document, 0, len(pages))
	for _, p := range pages {
		docs = append(docs, Document{
			Type: classifyText(p.Text),
			Page: p.Page,
			Text: p.Text,
		})
	}
	return docs
}

func classifyText(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range keywordTable {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.docType
			}
		}
	}
	return TypeOther
}
