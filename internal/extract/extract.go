// Package extract turns an uploaded legal pack into an ordered sequence of
// text pages. PDFs are read natively; ZIP uploads are treated as a bundle of
// PDFs whose pages are renumbered into one continuous pack.
package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
)

// Page is one physical page of the uploaded pack, 1-indexed.
type Page struct {
	Page int    `json:"page"`
	Text string `json:"text"`
}

// Extractor converts raw upload bytes into pages.
type Extractor interface {
	Extract(ctx context.Context, data []byte, contentType string) ([]Page, error)
}

// PackExtractor extracts text from PDF or ZIP-of-PDF uploads.
type PackExtractor struct {
	// OCRFallback enables the external high-accuracy pass for pages that
	// yield no native text.
	OCRFallback bool
}

func NewPackExtractor(ocrFallback bool) *PackExtractor {
	return &PackExtractor{OCRFallback: ocrFallback}
}

func (e *PackExtractor) Extract(ctx context.Context, data []byte, contentType string) ([]Page, error) {
	switch contentType {
	case "application/pdf":
		return e.extractPDF(ctx, data)
	case "application/zip":
		return e.extractZip(ctx, data)
	default:
		return nil, fmt.Errorf("unsupported content type: %s", contentType)
	}
}

// extractZip walks PDF members in archive order and renumbers their pages
// into a single 1..N sequence. Members that fail to parse are skipped so one
// corrupt file does not sink the whole pack.
func (e *PackExtractor) extractZip(ctx context.Context, data []byte) ([]Page, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}

	var pages []Page
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !strings.HasSuffix(strings.ToLower(f.Name), ".pdf") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			continue
		}
		member, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			continue
		}
		memberPages, err := e.extractPDF(ctx, member)
		if err != nil {
			continue
		}
		for _, p := range memberPages {
			pages = append(pages, Page{Page: len(pages) + 1, Text: p.Text})
		}
	}
	return pages, nil
}
