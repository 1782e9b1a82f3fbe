package export

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"onebeat/scout/pkg/intel"
	"onebeat/scout/pkg/intel/projection"
)

// failingRenderer simulates a broken PDF toolchain.
type failingRenderer struct{}

func (failingRenderer) Render(ctx context.Context, html []byte) ([]byte, error) {
	return nil, errors.New("renderer exploded")
}

// stubRenderer returns a fixed payload so tests can assert the PDF
// happy path without a wkhtmltopdf binary.
type stubRenderer struct{}

func (stubRenderer) Render(ctx context.Context, html []byte) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

// TestReportPDFHappyPath verifies a working renderer yields a PDF
// payload with the PDF filename.
func TestReportPDFHappyPath(t *testing.T) {
	e := testExporter()
	e.Renderer = stubRenderer{}

	result, err := e.Export(context.Background(), FormatPDF, projection.TeamSales, []intel.Competitor{acme()}, nil, nil)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if result.ContentType != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", result.ContentType)
	}
	if result.Filename != "onebeat-sales-package.pdf" {
		t.Errorf("filename = %q", result.Filename)
	}
}

// TestReportFallbackOnRendererFailure verifies a renderer fault yields
// the plain-text report, never an error. The fallback keeps the same
// per-team section headings as the HTML layout.
func TestReportFallbackOnRendererFailure(t *testing.T) {
	e := testExporter()
	e.Renderer = failingRenderer{}

	result, err := e.Export(context.Background(), FormatPDF, projection.TeamSales, []intel.Competitor{acme()}, nil, nil)
	if err != nil {
		t.Fatalf("Export returned error, want text fallback: %v", err)
	}
	if result.ContentType != "text/plain" {
		t.Errorf("content type = %q, want text/plain", result.ContentType)
	}
	if result.Filename != "onebeat-sales-package.txt" {
		t.Errorf("filename = %q", result.Filename)
	}

	text := string(result.Data)
	for _, heading := range []string{
		"ONEBEAT SALES TEAM BATTLE CARDS",
		"COMPANY INFO:",
		"DESCRIPTION:",
		"PRICING & MARKET:",
		"STRENGTHS:",
		"WEAKNESSES:",
		"KEY BATTLE POINTS:",
	} {
		if !strings.Contains(text, heading) {
			t.Errorf("fallback text missing heading %q", heading)
		}
	}
	if !strings.Contains(text, "[1] ACME (direct)") {
		t.Errorf("fallback text missing card header: %s", text)
	}
}

// TestReportTextSections verifies each team's text layout carries its
// own section headings.
func TestReportTextSections(t *testing.T) {
	c := acme()
	c.Capabilities = map[string]bool{"analytics": true, "financialPlanning": false}

	cases := []struct {
		team     projection.Team
		headings []string
	}{
		{projection.TeamProduct, []string{
			"ONEBEAT PRODUCT TEAM ANALYSIS",
			"Technical Capability Matrix",
			"TECHNICAL CAPABILITIES:",
			"UNIQUE FEATURES:",
			"TECHNICAL STRENGTHS:",
			"TECHNICAL LIMITATIONS:",
		}},
		{projection.TeamGTM, []string{
			"ONEBEAT GTM MARKET ANALYSIS",
			"MARKET POSITION:",
			"PRICING STRATEGY:",
			"UNIQUE VALUE PROPOSITIONS:",
			"COMPETITIVE ADVANTAGES:",
			"MARKET STRENGTHS:",
		}},
		{projection.TeamFull, []string{
			"ONEBEAT COMPLETE COMPETITIVE ANALYSIS",
			"Full Database Export",
			"COMPANY INFO:",
		}},
	}

	e := testExporter()
	for _, tc := range cases {
		result, err := e.Export(context.Background(), FormatPDF, tc.team, []intel.Competitor{c}, nil, nil)
		if err != nil {
			t.Fatalf("team %q: Export failed: %v", tc.team, err)
		}
		text := string(result.Data)
		for _, heading := range tc.headings {
			if !strings.Contains(text, heading) {
				t.Errorf("team %q: text missing heading %q", tc.team, heading)
			}
		}
	}
}

// TestReportPlaceholders verifies absent optionals render their display
// placeholders instead of empty strings.
func TestReportPlaceholders(t *testing.T) {
	e := testExporter()
	result, err := e.Export(context.Background(), FormatPDF, projection.TeamSales, []intel.Competitor{acme()}, nil, nil)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	text := string(result.Data)
	if !strings.Contains(text, "• Employees: Unknown") {
		t.Error("missing Unknown placeholder for employees")
	}
	if !strings.Contains(text, "• Pricing: Pricing not disclosed") {
		t.Error("missing pricing placeholder")
	}
	if !strings.Contains(text, "• No data available") {
		t.Error("missing empty-list placeholder")
	}
}

// TestReportCapabilityLabels verifies camelCase capability flags render
// with spaces inserted before interior capitals.
func TestReportCapabilityLabels(t *testing.T) {
	if got := flagLabel("financialPlanning"); got != "financial Planning" {
		t.Errorf("flagLabel(financialPlanning) = %q", got)
	}
	if got := flagLabel("analytics"); got != "analytics" {
		t.Errorf("flagLabel(analytics) = %q", got)
	}
	if got := flagLabel("aiSpecialEvents"); got != "ai Special Events" {
		t.Errorf("flagLabel(aiSpecialEvents) = %q", got)
	}
}

// TestReportHTMLEscapes verifies competitor-supplied text is escaped in
// the HTML document.
func TestReportHTMLEscapes(t *testing.T) {
	c := acme()
	c.Description = `<script>alert("x")</script>`

	data := reportData{Product: "Onebeat", Date: "2025-06-01", Cards: buildCards(projection.ProjectAll([]intel.Competitor{c}, projection.TeamSales))}
	html, err := renderHTML(projection.TeamSales, data)
	if err != nil {
		t.Fatalf("renderHTML failed: %v", err)
	}
	if strings.Contains(string(html), "<script>") {
		t.Error("description was not escaped")
	}
}
