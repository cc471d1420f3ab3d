// Package chunker splits classified documents into bounded-size segments
// that carry the page and type anchors used for citations.
package chunker

import (
	"unicode/utf8"

	"github.com/pkhlegal/legalbrain/internal/classify"
)

// MaxChars is the fixed chunk window. Roughly 500 tokens, small enough that
// fifty chunks fit comfortably in any provider's context.
const MaxChars = 2000

// Meta anchors a chunk back to its source page.
type Meta struct {
	DocType string `json:"doc_type"`
	Page    int    `json:"page"`
}

// Chunk is a segment of a document's text. Content may be rewritten by
// redaction; Meta never changes after creation.
type Chunk struct {
	Content string `json:"content"`
	Meta    Meta   `json:"meta"`
}

// Split cuts each document into consecutive MaxChars windows in page order.
// A document with no text still yields one empty chunk so the page keeps its
// citation anchor.
func Split(docs []classify.Document) []Chunk {
	var chunks []Chunk
	for _, d := range docs {
		chunks = append(chunks, splitDoc(d, MaxChars)...)
	}
	return chunks
}

func splitDoc(d classify.Document, maxChars int) []Chunk {
	meta := Meta{DocType: d.Type, Page: d.Page}
	if d.Text == "" {
		return []Chunk{{Content: "", Meta: meta}}
	}

	var chunks []Chunk
	for start := 0; start < len(d.Text); {
		end := start + maxChars
		if end >= len(d.Text) {
			end = len(d.Text)
		} else {
			// Never cut a multi-byte rune in half: back the boundary off to
			// the previous rune start. Conveyancing text is full of £ signs
			// and curly quotes.
			for end > start && !utf8.RuneStart(d.Text[end]) {
				end--
			}
			if end == start {
				// A single rune wider than the window; split it anyway.
				end = start + maxChars
			}
		}
		chunks = append(chunks, Chunk{Content: d.Text[start:end], Meta: meta})
		start = end
	}
	return chunks
}
