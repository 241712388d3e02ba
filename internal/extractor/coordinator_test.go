package extractor

import (
	"context"
	"errors"
	"testing"

	"github.com/LAXMAN-NALLA/document-analysis-api/internal/utils"
	"github.com/LAXMAN-NALLA/document-analysis-api/internal/worker"
)

type fakeOCR struct {
	available bool
	text      string
	err       error
	calls     int
}

func (f *fakeOCR) Recognize(ctx context.Context, data []byte) (string, error) {
	f.calls++
	return f.text, f.err
}

func (f *fakeOCR) Available() bool {
	return f.available
}

func newTestCoordinator(t *testing.T, o *fakeOCR) *Coordinator {
	t.Helper()
	pool := worker.NewPool(2)
	t.Cleanup(pool.Close)
	return NewCoordinator(o, pool, utils.NewNopLogger())
}

func TestExtractTextNativeSuccessSkipsOCR(t *testing.T) {
	o := &fakeOCR{available: true, text: "ocr should not run"}
	c := newTestCoordinator(t, o)

	got := c.ExtractText(context.Background(), Request{
		Filename: "notes.txt",
		Data:     []byte("  meeting notes for Q3  \n"),
	})

	if got != "meeting notes for Q3" {
		t.Errorf("ExtractText = %q", got)
	}
	if o.calls != 0 {
		t.Errorf("OCR invoked %d times on the native success path", o.calls)
	}
}

func TestExtractTextCaseInsensitiveExtension(t *testing.T) {
	o := &fakeOCR{available: true}
	c := newTestCoordinator(t, o)

	got := c.ExtractText(context.Background(), Request{
		Filename: "REPORT.TXT",
		Data:     []byte("uppercase extension"),
	})
	if got != "uppercase extension" {
		t.Errorf("ExtractText = %q", got)
	}
}

func TestExtractTextNativeFormats(t *testing.T) {
	docx := buildDOCX(t, `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>quarterly report body</w:t></w:r></w:p></w:body></w:document>`)

	tests := []struct {
		filename string
		data     []byte
		want     string
	}{
		{"notes.txt", []byte("plain text body"), "plain text body"},
		{"table.csv", []byte("a,b\n1,2"), "a  b\n1  2"},
		{"report.docx", docx, "quarterly report body"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			o := &fakeOCR{available: true, text: "ocr must not run"}
			c := newTestCoordinator(t, o)

			got := c.ExtractText(context.Background(), Request{Filename: tt.filename, Data: tt.data})
			if got != tt.want {
				t.Errorf("ExtractText = %q, want %q", got, tt.want)
			}
			if o.calls != 0 {
				t.Errorf("OCR invoked %d times for a natively extractable file", o.calls)
			}
		})
	}
}

func TestExtractTextWhitespaceOnlyFallsBackToOCR(t *testing.T) {
	o := &fakeOCR{available: true, text: "recognized by ocr"}
	c := newTestCoordinator(t, o)

	got := c.ExtractText(context.Background(), Request{
		Filename: "scan.txt",
		Data:     []byte("   \n\t  "),
	})

	if got != "recognized by ocr" {
		t.Errorf("ExtractText = %q, want OCR result", got)
	}
	if o.calls != 1 {
		t.Errorf("OCR invoked %d times, want exactly 1", o.calls)
	}
}

func TestExtractTextNativeErrorFallsBackToOCR(t *testing.T) {
	o := &fakeOCR{available: true, text: "salvaged text"}
	c := newTestCoordinator(t, o)

	// Garbage with a .pdf extension: the native extractor errors out.
	got := c.ExtractText(context.Background(), Request{
		Filename: "broken.pdf",
		Data:     []byte("not really a pdf"),
	})

	if got != "salvaged text" {
		t.Errorf("ExtractText = %q, want OCR result", got)
	}
	if o.calls != 1 {
		t.Errorf("OCR invoked %d times, want exactly 1", o.calls)
	}
}

func TestExtractTextImageGoesStraightToOCR(t *testing.T) {
	o := &fakeOCR{available: true, text: "text from image"}
	c := newTestCoordinator(t, o)

	got := c.ExtractText(context.Background(), Request{
		Filename: "photo.png",
		Data:     []byte{0x89, 0x50, 0x4E, 0x47},
	})

	if got != "text from image" {
		t.Errorf("ExtractText = %q", got)
	}
	if o.calls != 1 {
		t.Errorf("OCR invoked %d times, want exactly 1", o.calls)
	}
}

func TestExtractTextOCRUnavailableReturnsEmpty(t *testing.T) {
	o := &fakeOCR{available: false}
	c := newTestCoordinator(t, o)

	got := c.ExtractText(context.Background(), Request{
		Filename: "scan.jpg",
		Data:     []byte("bytes"),
	})

	if got != "" {
		t.Errorf("ExtractText = %q, want empty string", got)
	}
	if o.calls != 0 {
		t.Errorf("Recognize called on unavailable client")
	}
}

func TestExtractTextOCRFailureReturnsEmpty(t *testing.T) {
	o := &fakeOCR{available: true, err: errors.New("backend down")}
	c := newTestCoordinator(t, o)

	got := c.ExtractText(context.Background(), Request{
		Filename: "scan.jpg",
		Data:     []byte("bytes"),
	})

	if got != "" {
		t.Errorf("ExtractText = %q, want empty string", got)
	}
}
