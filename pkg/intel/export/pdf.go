package export

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/pkg/errors"
)

// PDFRenderer converts report HTML into PDF bytes. Implementations
// return an error to trigger the caller's plain-text fallback.
type PDFRenderer interface {
	Render(ctx context.Context, html []byte) ([]byte, error)
}

// WKHTMLToPDF renders HTML through the wkhtmltopdf binary, reading the
// document from stdin and writing the PDF to stdout.
type WKHTMLToPDF struct {
	// BinPath is the binary to invoke. Empty means "wkhtmltopdf" from
	// PATH.
	BinPath string

	// Timeout bounds a single render. Zero means 30 seconds.
	Timeout time.Duration
}

// NewWKHTMLToPDF creates a renderer using the given binary path, or the
// PATH default when empty.
func NewWKHTMLToPDF(binPath string) *WKHTMLToPDF {
	return &WKHTMLToPDF{BinPath: binPath}
}

// Available reports whether the binary can be invoked. Callers may use
// this at startup to log whether PDF exports will work.
func (r *WKHTMLToPDF) Available() bool {
	_, err := exec.LookPath(r.bin())
	return err == nil
}

// Render converts html to a PDF byte stream. The subprocess inherits
// the A4/20mm page layout reports have always shipped with.
func (r *WKHTMLToPDF) Render(ctx context.Context, html []byte) ([]byte, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.bin(),
		"--quiet",
		"--page-size", "A4",
		"--margin-top", "20mm",
		"--margin-right", "20mm",
		"--margin-bottom", "20mm",
		"--margin-left", "20mm",
		"--encoding", "utf-8",
		"-", "-",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(html)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrapf(err, "wkhtmltopdf failed: %s", stderr.String())
	}

	if stdout.Len() == 0 {
		return nil, errors.New("wkhtmltopdf produced no output")
	}
	return stdout.Bytes(), nil
}

func (r *WKHTMLToPDF) bin() string {
	if r.BinPath != "" {
		return r.BinPath
	}
	return "wkhtmltopdf"
}
