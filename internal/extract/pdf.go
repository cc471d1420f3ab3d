package extract

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// extractPDF pulls plain text page by page. Pages with no native text go
// through the pdftotext pass when the OCR fallback is enabled; pdftotext
// handles scanned and oddly-encoded PDFs far better than the pure Go reader.
func (e *PackExtractor) extractPDF(ctx context.Context, data []byte) ([]Page, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	// The temp path also feeds pdftotext when the fallback kicks in.
	tmp, err := os.CreateTemp("", "legalbrain-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []Page
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		text := ""
		page := reader.Page(i)
		if !page.V.IsNull() {
			if t, err := page.GetPlainText(nil); err == nil {
				text = t
			}
		}
		text = strings.TrimSpace(text)

		if text == "" && e.OCRFallback {
			text = ocrPage(ctx, tmpPath, i)
		}

		pages = append(pages, Page{Page: i, Text: text})
	}
	return pages, nil
}

// ocrPage shells out to pdftotext for a single page. Best effort: a missing
// binary or a failed run leaves the page empty.
func ocrPage(ctx context.Context, path string, page int) string {
	n := strconv.Itoa(page)
	cmd := exec.CommandContext(ctx, "pdftotext", "-layout", "-f", n, "-l", n, path, "-")
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
