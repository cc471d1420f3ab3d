// Package report post-processes raw model output into the analysis result
// returned to the caller.
package report

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/pkhlegal/legalbrain/internal/chunker"
)

// Confidence is fixed until per-claim citation verification lands.
const confidence = 0.75

// Flag marks a severity hit in the report.
type Flag struct {
	Level string `json:"level"`
}

// Analysis is the terminal artifact of a pipeline run. Not persisted.
type Analysis struct {
	ReportMarkdown string  `json:"report_markdown"`
	ReportHTML     string  `json:"report_html,omitempty"`
	Flags          []Flag  `json:"flags"`
	Confidence     float64 `json:"confidence"`
}

// Attach builds the analysis from the model's raw text. Flagging is shallow:
// a single RED flag when the output mentions one. Mapping each claim back to
// its chunk is a known gap; the chunks are accepted here so the signature
// doesn't change when that lands.
func Attach(modelText string, _ []chunker.Chunk) Analysis {
	flags := []Flag{}
	if strings.Contains(modelText, "RED") {
		flags = append(flags, Flag{Level: "RED"})
	}

	return Analysis{
		ReportMarkdown: modelText,
		ReportHTML:     renderHTML(modelText),
		Flags:          flags,
		Confidence:     confidence,
	}
}

// renderHTML converts the markdown report for dashboards that want it
// pre-rendered. Best effort: on failure the HTML field is empty and the
// markdown stands alone.
func renderHTML(markdown string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return ""
	}
	return buf.String()
}
