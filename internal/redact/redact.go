// Package redact scrubs PII-shaped tokens from chunk text before it leaves
// the process for an external model.
package redact

import (
	"regexp"

	"github.com/pkhlegal/legalbrain/internal/chunker"
)

// The substitutions run in this exact order. NI numbers and account numbers
// must go before the phone pattern, which would otherwise eat their digit
// runs and produce different placeholders.
var substitutions = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\b[A-CEGHJ-PR-TW-Z]{2}\d{6}[A-D]\b`), "[REDACTED_NI]"},
	{regexp.MustCompile(`\b\d{8}\b`), "[REDACTED_ACCT]"},
	{regexp.MustCompile(`[\w.-]+@[\w.-]+`), "[REDACTED_EMAIL]"},
	{regexp.MustCompile(`\b\+?\d{7,}\b`), "[REDACTED_PHONE]"},
}

// Chunk returns a copy of c with PII-shaped substrings replaced. Metadata is
// untouched. Applying it to already-redacted content is a no-op.
func Chunk(c chunker.Chunk) chunker.Chunk {
	text := c.Content
	for _, sub := range substitutions {
		text = sub.re.ReplaceAllString(text, sub.replacement)
	}
	c.Content = text
	return c
}

// All redacts every chunk in order, preserving count and metadata.
func All(chunks []chunker.Chunk) []chunker.Chunk {
	out := make([]chunker.Chunk, len(chunks))
	for i, c := range chunks {
		out[i] = Chunk(c)
	}
	return out
}
