package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"onebeat/scout/pkg/intel"
	"onebeat/scout/pkg/intel/projection"
)

// Format identifies an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// ErrUnsupportedFormat is returned by ParseFormat for anything outside
// the supported set.
type ErrUnsupportedFormat struct {
	Format string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported export format %q: use 'json', 'csv', or 'pdf'", e.Format)
}

// ParseFormat validates a format string from the request path.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV, FormatPDF:
		return Format(s), nil
	default:
		return "", &ErrUnsupportedFormat{Format: s}
	}
}

// Result is one encoded export payload plus the response metadata the
// HTTP layer needs.
type Result struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Exporter encodes competitor collections into downloadable payloads.
type Exporter struct {
	// Product is the product name embedded in filenames and report
	// headings, e.g. "Onebeat".
	Product string

	// Renderer converts report HTML into PDF bytes. A nil renderer
	// always fails, which exercises the text fallback; production wiring
	// installs a WKHTMLToPDF renderer.
	Renderer PDFRenderer

	Logger *slog.Logger

	// Now is the export timestamp source, overridable in tests.
	Now func() time.Time
}

// NewExporter creates an exporter with the given product name and PDF
// renderer.
func NewExporter(product string, renderer PDFRenderer, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		Product:  product,
		Renderer: renderer,
		Logger:   logger,
		Now:      time.Now,
	}
}

// Export projects the competitor collection for the given team and
// encodes it in the requested format. Catalog collections are included
// only in team-less JSON exports. PDF rendering failures are recovered
// with a plain-text payload and never returned as an error.
func (e *Exporter) Export(
	ctx context.Context,
	format Format,
	team projection.Team,
	competitors []intel.Competitor,
	capabilities []intel.Capability,
	segments []intel.MarketSegment,
) (*Result, error) {
	schema := projection.SchemaFor(team)
	records := projection.ProjectAll(competitors, schema.Team)

	switch format {
	case FormatJSON:
		return e.encodeJSON(records, schema.Team, capabilities, segments)
	case FormatCSV:
		return e.encodeCSV(records, schema)
	case FormatPDF:
		return e.encodeReport(ctx, records, schema.Team)
	default:
		return nil, &ErrUnsupportedFormat{Format: string(format)}
	}
}

// filename computes the suggested download filename. Team exports are
// named "<product>-<team>-package.<ext>"; the team-less database export
// keeps its historical names per format.
func (e *Exporter) filename(team projection.Team, ext string) string {
	product := strings.ToLower(e.Product)
	if team != projection.TeamFull {
		return fmt.Sprintf("%s-%s-package.%s", product, team, ext)
	}
	if ext == "json" {
		return product + "-competitive-database.json"
	}
	return fmt.Sprintf("%s-competitors.%s", product, ext)
}
