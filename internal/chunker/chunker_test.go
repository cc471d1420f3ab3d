package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pkhlegal/legalbrain/internal/classify"
)

func TestSplit_ChunkCountIsCeiling(t *testing.T) {
	tests := []struct {
		name    string
		textLen int
		max     int
		want    int
	}{
		{"exact single window", 2000, 2000, 1},
		{"one over", 2001, 2000, 2},
		{"multiple windows", 5000, 2000, 3},
		{"below window", 150, 2000, 1},
		{"tiny window", 10, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := classify.Document{Type: "Lease", Page: 1, Text: strings.Repeat("a", tt.textLen)}
			chunks := splitDoc(doc, tt.max)
			if len(chunks) != tt.want {
				t.Fatalf("expected %d chunks, got %d", tt.want, len(chunks))
			}
			for i, c := range chunks {
				if len(c.Content) > tt.max {
					t.Errorf("chunk %d: length %d exceeds max %d", i, len(c.Content), tt.max)
				}
			}
		})
	}
}

func TestSplit_ConcatenationReconstructsText(t *testing.T) {
	text := strings.Repeat("The ground rent doubles every ten years. ", 200)
	doc := classify.Document{Type: "Lease", Page: 4, Text: text}

	chunks := splitDoc(doc, MaxChars)
	var sb strings.Builder
	for _, c := range chunks {
		sb.WriteString(c.Content)
	}
	if sb.String() != text {
		t.Error("concatenated chunk contents do not reconstruct the original text")
	}
}

func TestSplit_WindowBoundaryNeverCutsARune(t *testing.T) {
	// A £ sign straddling the 2000-byte boundary must be pushed whole into
	// the next chunk, not split into a dangling lead byte.
	text := strings.Repeat("a", 1999) + "£250 ground rent"
	doc := classify.Document{Type: "Lease", Page: 1, Text: text}

	chunks := splitDoc(doc, MaxChars)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if len(chunks[0].Content) != 1999 {
		t.Errorf("expected the boundary backed off to 1999 bytes, got %d", len(chunks[0].Content))
	}
	if !strings.HasPrefix(chunks[1].Content, "£250") {
		t.Errorf("expected the £ carried whole into chunk 1, got %q", chunks[1].Content[:8])
	}
	for i, c := range chunks {
		if !utf8.ValidString(c.Content) {
			t.Errorf("chunk %d content is invalid UTF-8", i)
		}
	}

	var sb strings.Builder
	for _, c := range chunks {
		sb.WriteString(c.Content)
	}
	if sb.String() != text {
		t.Error("concatenated chunk contents do not reconstruct the original text")
	}
}

func TestSplit_MultiByteTextStaysValidUTF8(t *testing.T) {
	// Every window boundary lands mid-rune without the back-off: £ is two
	// bytes and the window is odd-sized.
	text := strings.Repeat("£", 500)
	doc := classify.Document{Type: "Special Conditions", Page: 2, Text: text}

	chunks := splitDoc(doc, 333)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if !utf8.ValidString(c.Content) {
			t.Errorf("chunk %d content is invalid UTF-8", i)
		}
		if len(c.Content) > 333 {
			t.Errorf("chunk %d: length %d exceeds max", i, len(c.Content))
		}
	}

	var sb strings.Builder
	for _, c := range chunks {
		sb.WriteString(c.Content)
	}
	if sb.String() != text {
		t.Error("concatenated chunk contents do not reconstruct the original text")
	}
}

func TestSplit_EmptyDocumentYieldsOneEmptyChunk(t *testing.T) {
	docs := []classify.Document{{Type: "Other", Page: 7, Text: ""}}
	chunks := Split(docs)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 placeholder chunk, got %d", len(chunks))
	}
	if chunks[0].Content != "" {
		t.Errorf("expected empty content, got %q", chunks[0].Content)
	}
	if chunks[0].Meta.Page != 7 || chunks[0].Meta.DocType != "Other" {
		t.Errorf("placeholder chunk lost its anchors: %+v", chunks[0].Meta)
	}
}

func TestSplit_MetadataOnEveryChunk(t *testing.T) {
	docs := []classify.Document{
		{Type: "EPC", Page: 1, Text: strings.Repeat("x", 4500)},
		{Type: "Lease", Page: 2, Text: "short"},
	}
	chunks := Split(docs)

	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks (3 + 1), got %d", len(chunks))
	}
	for i := 0; i < 3; i++ {
		if chunks[i].Meta.DocType != "EPC" || chunks[i].Meta.Page != 1 {
			t.Errorf("chunk %d: wrong meta %+v", i, chunks[i].Meta)
		}
	}
	if chunks[3].Meta.DocType != "Lease" || chunks[3].Meta.Page != 2 {
		t.Errorf("chunk 3: wrong meta %+v", chunks[3].Meta)
	}
}

func TestSplit_PageOrderPreserved(t *testing.T) {
	docs := []classify.Document{
		{Type: "Other", Page: 1, Text: "first"},
		{Type: "Other", Page: 2, Text: "second"},
		{Type: "Other", Page: 3, Text: "third"},
	}
	chunks := Split(docs)
	for i, c := range chunks {
		if c.Meta.Page != i+1 {
			t.Errorf("chunk %d: expected page %d, got %d", i, i+1, c.Meta.Page)
		}
	}
}
