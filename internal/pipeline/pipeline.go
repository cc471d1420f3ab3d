// Package pipeline sequences the document-to-report stages: extraction,
// classification, chunking, redaction, enrichment, prompt build, model
// dispatch, and citation attachment. All stages run sequentially within the
// scope of one request.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pkhlegal/legalbrain/internal/chunker"
	"github.com/pkhlegal/legalbrain/internal/classify"
	"github.com/pkhlegal/legalbrain/internal/extract"
	"github.com/pkhlegal/legalbrain/internal/knowledge"
	"github.com/pkhlegal/legalbrain/internal/llm"
	"github.com/pkhlegal/legalbrain/internal/prompt"
	"github.com/pkhlegal/legalbrain/internal/redact"
	"github.com/pkhlegal/legalbrain/internal/report"
	"github.com/pkhlegal/legalbrain/internal/rules"
)

// Sentinel errors for user-correctable failures at the pipeline boundary.
var (
	ErrUnsupportedMediaType = errors.New("upload a PDF or ZIP of PDFs")
	ErrNoReadablePages      = errors.New("could not read any pages from the file")
	ErrNoReadableText       = errors.New("no readable text extracted; try enabling OCR")
)

// ModelCaller dispatches a prompt to a language model. Satisfied by
// llm.Router; stubbed in tests.
type ModelCaller interface {
	Analyze(ctx context.Context, p llm.Prompt, pageCount int) (string, error)
}

// Analyzer runs the full legal pack pipeline.
type Analyzer struct {
	extractor extract.Extractor
	caller    ModelCaller
	rules     *rules.Store
	log       *slog.Logger
}

func NewAnalyzer(extractor extract.Extractor, caller ModelCaller, store *rules.Store, log *slog.Logger) *Analyzer {
	return &Analyzer{
		extractor: extractor,
		caller:    caller,
		rules:     store,
		log:       log,
	}
}

var supportedTypes = map[string]bool{
	"application/pdf": true,
	"application/zip": true,
}

// AnalyzePack processes one uploaded pack end to end. Either the full
// analysis is returned or an error; there are no partial results.
func (a *Analyzer) AnalyzePack(ctx context.Context, data []byte, contentType string) (report.Analysis, error) {
	if !supportedTypes[contentType] {
		return report.Analysis{}, ErrUnsupportedMediaType
	}

	pages, err := a.extractor.Extract(ctx, data, contentType)
	if err != nil {
		return report.Analysis{}, fmt.Errorf("extract pages: %w", err)
	}
	if len(pages) == 0 {
		return report.Analysis{}, ErrNoReadablePages
	}

	docs := classify.Classify(pages)
	chunks := chunker.Split(docs)
	if len(chunks) == 0 {
		return report.Analysis{}, ErrNoReadableText
	}

	safeChunks := redact.All(chunks)
	enriched := knowledge.Enrich(safeChunks)

	enabled, err := a.rules.ListEnabled()
	if err != nil {
		return report.Analysis{}, fmt.Errorf("load rules: %w", err)
	}

	p := prompt.Build(enriched, enabled)

	a.log.Info("dispatching analysis",
		"pages", len(pages),
		"chunks", len(chunks),
		"rules", len(enabled),
	)

	text, err := a.caller.Analyze(ctx, p, len(pages))
	if err != nil {
		return report.Analysis{}, err
	}

	return report.Attach(text, safeChunks), nil
}
