package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"
)

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip member: %v", err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip member: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtract_UnsupportedContentType(t *testing.T) {
	// Only the two types the upload handler admits are handled here; vendor
	// aliases like x-zip-compressed are rejected the same as anything else.
	for _, ct := range []string{"text/plain", "application/x-zip-compressed", "application/msword"} {
		e := NewPackExtractor(false)
		if _, err := e.Extract(context.Background(), []byte("data"), ct); err == nil {
			t.Errorf("%s: expected an error for an unsupported content type", ct)
		}
	}
}

func TestExtract_InvalidZip(t *testing.T) {
	e := NewPackExtractor(false)
	if _, err := e.Extract(context.Background(), []byte("not a zip"), "application/zip"); err == nil {
		t.Error("expected an error for malformed zip bytes")
	}
}

func TestExtract_ZipWithoutPDFsYieldsNoPages(t *testing.T) {
	data := buildZip(t, map[string]string{
		"readme.txt": "not a pdf",
		"notes.md":   "also not a pdf",
	})
	e := NewPackExtractor(false)
	pages, err := e.Extract(context.Background(), data, "application/zip")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("expected no pages, got %d", len(pages))
	}
}

func TestExtract_ZipSkipsCorruptMembers(t *testing.T) {
	// A .pdf member that isn't actually a PDF is skipped, not fatal.
	data := buildZip(t, map[string]string{
		"broken.pdf": "this is not pdf content",
	})
	e := NewPackExtractor(false)
	pages, err := e.Extract(context.Background(), data, "application/zip")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("expected corrupt member skipped, got %d pages", len(pages))
	}
}

func TestExtract_InvalidPDF(t *testing.T) {
	e := NewPackExtractor(false)
	if _, err := e.Extract(context.Background(), []byte("%PDF-garbage"), "application/pdf"); err == nil {
		t.Error("expected an error for malformed pdf bytes")
	}
}
