package export

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"onebeat/scout/pkg/intel"
	"onebeat/scout/pkg/intel/projection"
)

// reportCard is the per-competitor view model shared by the HTML
// templates and the text fallback. Absent optionals are already
// replaced with their display placeholders.
type reportCard struct {
	Index       int
	Name        string
	NameUpper   string
	Category    string
	Location    string
	Description string
	Similarity  int

	Employees          string
	Funding            string
	Revenue            string
	Pricing            string
	TargetMarket       string
	ImplementationTime string

	Strengths      []string
	Weaknesses     []string
	KillPoints     []string
	UniqueFeatures []string

	Capabilities []capabilityEntry
}

type capabilityEntry struct {
	Label   string
	Covered bool
}

type reportData struct {
	Product string
	Date    string
	Cards   []reportCard
}

func (e *Exporter) encodeReport(ctx context.Context, records []projection.Record, team projection.Team) (*Result, error) {
	data := reportData{
		Product: e.Product,
		Date:    e.Now().Format("2006-01-02"),
		Cards:   buildCards(records),
	}

	html, err := renderHTML(team, data)
	if err != nil {
		return nil, fmt.Errorf("rendering report html: %w", err)
	}

	if e.Renderer != nil {
		pdf, err := e.Renderer.Render(ctx, html)
		if err == nil {
			return &Result{
				Data:        pdf,
				ContentType: "application/pdf",
				Filename:    e.filename(team, "pdf"),
			}, nil
		}
		e.Logger.Warn("PDF rendering failed, falling back to text report",
			"team", teamLabel(team),
			"error", err,
		)
	} else {
		e.Logger.Warn("No PDF renderer configured, producing text report",
			"team", teamLabel(team),
		)
	}

	return &Result{
		Data:        []byte(renderText(team, data)),
		ContentType: "text/plain",
		Filename:    e.filename(team, "txt"),
	}, nil
}

func buildCards(records []projection.Record) []reportCard {
	cards := make([]reportCard, 0, len(records))
	for i, rec := range records {
		card := reportCard{
			Index:       i + 1,
			Name:        str(rec[projection.FieldName]),
			Category:    str(rec[projection.FieldCategory]),
			Location:    str(rec[projection.FieldLocation]),
			Description: str(rec[projection.FieldDescription]),
			Similarity:  num(rec[projection.FieldSimilarity]),

			Employees:          orUnknown(rec[projection.FieldEmployees]),
			Funding:            orUnknown(rec[projection.FieldFunding]),
			Revenue:            orUnknown(rec[projection.FieldRevenue]),
			Pricing:            orPlaceholder(rec[projection.FieldPricing], "Pricing not disclosed"),
			TargetMarket:       orUnknown(rec[projection.FieldTargetMarket]),
			ImplementationTime: orUnknown(rec[projection.FieldImplementationTime]),

			Strengths:      list(rec[projection.FieldStrengths]),
			Weaknesses:     list(rec[projection.FieldWeaknesses]),
			KillPoints:     list(rec[projection.FieldKillPoints]),
			UniqueFeatures: list(rec[projection.FieldUniqueFeatures]),
		}
		card.NameUpper = strings.ToUpper(card.Name)

		if caps, ok := rec[projection.FieldCapabilities].(map[string]bool); ok {
			for _, flag := range intel.CapabilityFlags {
				if covered, present := caps[flag]; present {
					card.Capabilities = append(card.Capabilities, capabilityEntry{
						Label:   flagLabel(flag),
						Covered: covered,
					})
				}
			}
		}

		cards = append(cards, card)
	}
	return cards
}

// flagLabel turns a camelCase capability flag into its display form by
// inserting a space before each interior capital, e.g. "financialPlanning"
// becomes "financial Planning".
func flagLabel(flag string) string {
	var b strings.Builder
	for i, r := range flag {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func str(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func num(v any) int {
	if n, ok := v.(int); ok {
		return n
	}
	return 0
}

func list(v any) []string {
	if l, ok := v.([]string); ok {
		return l
	}
	return nil
}

func orUnknown(v any) string {
	return orPlaceholder(v, "Unknown")
}

func orPlaceholder(v any, placeholder string) string {
	switch val := v.(type) {
	case string:
		if val != "" {
			return val
		}
	case int:
		return fmt.Sprintf("%d", val)
	}
	return placeholder
}

func renderHTML(team projection.Team, data reportData) ([]byte, error) {
	var tmpl *template.Template
	switch team {
	case projection.TeamSales:
		tmpl = salesTemplate
	case projection.TeamProduct:
		tmpl = productTemplate
	case projection.TeamGTM:
		tmpl = gtmTemplate
	default:
		tmpl = fullTemplate
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderText(team projection.Team, data reportData) string {
	switch team {
	case projection.TeamSales:
		return salesText(data)
	case projection.TeamProduct:
		return productText(data)
	case projection.TeamGTM:
		return gtmText(data)
	default:
		return fullText(data)
	}
}

const textRule = "=================================================="
const textDivider = "--------------------------------------------------"

func textHeader(b *strings.Builder, title, subtitle, date string) {
	fmt.Fprintf(b, "%s\n%s\nGenerated: %s\n%s\n\n", title, subtitle, date, textRule)
}

func textCardHeader(b *strings.Builder, card reportCard) {
	fmt.Fprintf(b, "\n[%d] %s (%s)\n%s\n\n", card.Index, card.NameUpper, card.Category, textRule)
}

func textBullets(b *strings.Builder, items []string, empty string) {
	if len(items) == 0 {
		fmt.Fprintf(b, "• %s\n", empty)
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "• %s\n", item)
	}
}

func textFooter(b *strings.Builder, product string) {
	fmt.Fprintf(b, "\n\nGenerated by %s Competitive Intelligence Platform\n", product)
}

func salesText(data reportData) string {
	var b strings.Builder
	textHeader(&b, strings.ToUpper(data.Product)+" SALES TEAM BATTLE CARDS", "Competitive Intelligence Package", data.Date)

	for _, card := range data.Cards {
		textCardHeader(&b, card)

		b.WriteString("COMPANY INFO:\n")
		fmt.Fprintf(&b, "• Location: %s\n", card.Location)
		fmt.Fprintf(&b, "• Employees: %s\n", card.Employees)
		fmt.Fprintf(&b, "• Funding: %s\n", card.Funding)
		fmt.Fprintf(&b, "• Revenue: %s\n\n", card.Revenue)

		fmt.Fprintf(&b, "DESCRIPTION:\n%s\n\n", card.Description)

		b.WriteString("PRICING & MARKET:\n")
		fmt.Fprintf(&b, "• Pricing: %s\n", card.Pricing)
		fmt.Fprintf(&b, "• Implementation Time: %s\n", card.ImplementationTime)
		fmt.Fprintf(&b, "• Target Market: %s\n\n", card.TargetMarket)

		b.WriteString("STRENGTHS:\n")
		textBullets(&b, card.Strengths, "No data available")
		b.WriteString("\nWEAKNESSES:\n")
		textBullets(&b, card.Weaknesses, "No data available")
		b.WriteString("\nKEY BATTLE POINTS:\n")
		textBullets(&b, card.KillPoints, "No battle points available")

		fmt.Fprintf(&b, "\n%s\n", textDivider)
	}

	textFooter(&b, data.Product)
	return b.String()
}

func productText(data reportData) string {
	var b strings.Builder
	textHeader(&b, strings.ToUpper(data.Product)+" PRODUCT TEAM ANALYSIS", "Technical Capability Matrix", data.Date)

	for _, card := range data.Cards {
		textCardHeader(&b, card)

		b.WriteString("COMPANY OVERVIEW:\n")
		fmt.Fprintf(&b, "• Location: %s\n", card.Location)
		fmt.Fprintf(&b, "• Team Size: %s\n", card.Employees)
		fmt.Fprintf(&b, "• Funding: %s\n", card.Funding)
		fmt.Fprintf(&b, "• Implementation Time: %s\n\n", card.ImplementationTime)

		fmt.Fprintf(&b, "TECHNICAL DESCRIPTION:\n%s\n\n", card.Description)

		b.WriteString("TECHNICAL CAPABILITIES:\n")
		if len(card.Capabilities) == 0 {
			b.WriteString("• No capability data available\n")
		} else {
			for _, cap := range card.Capabilities {
				yesNo := "NO"
				if cap.Covered {
					yesNo = "YES"
				}
				fmt.Fprintf(&b, "• %s: %s\n", cap.Label, yesNo)
			}
		}

		b.WriteString("\nUNIQUE FEATURES:\n")
		textBullets(&b, card.UniqueFeatures, "No unique features documented")
		b.WriteString("\nTECHNICAL STRENGTHS:\n")
		textBullets(&b, card.Strengths, "No strengths documented")
		b.WriteString("\nTECHNICAL LIMITATIONS:\n")
		textBullets(&b, card.Weaknesses, "No weaknesses documented")

		b.WriteString("\nPRICING & IMPLEMENTATION:\n")
		fmt.Fprintf(&b, "• Pricing: %s\n", card.Pricing)
		fmt.Fprintf(&b, "• Implementation Time: %s\n", card.ImplementationTime)

		fmt.Fprintf(&b, "\n%s\n", textDivider)
	}

	textFooter(&b, data.Product)
	return b.String()
}

func gtmText(data reportData) string {
	var b strings.Builder
	textHeader(&b, strings.ToUpper(data.Product)+" GTM MARKET ANALYSIS", "Competitive Positioning & Market Intelligence", data.Date)

	for _, card := range data.Cards {
		textCardHeader(&b, card)

		b.WriteString("MARKET POSITION:\n")
		fmt.Fprintf(&b, "• Target Market: %s\n", card.TargetMarket)
		fmt.Fprintf(&b, "• Similarity Score: %d/10\n", card.Similarity)
		fmt.Fprintf(&b, "• Location: %s\n", card.Location)
		fmt.Fprintf(&b, "• Implementation Time: %s\n\n", card.ImplementationTime)

		fmt.Fprintf(&b, "MARKET DESCRIPTION:\n%s\n\n", card.Description)

		fmt.Fprintf(&b, "PRICING STRATEGY:\n%s\n\n", card.Pricing)

		b.WriteString("UNIQUE VALUE PROPOSITIONS:\n")
		textBullets(&b, card.UniqueFeatures, "No unique features documented")
		b.WriteString("\nCOMPETITIVE ADVANTAGES:\n")
		textBullets(&b, card.KillPoints, "No competitive points documented")
		b.WriteString("\nMARKET STRENGTHS:\n")
		textBullets(&b, card.Strengths, "No strengths documented")

		fmt.Fprintf(&b, "\n%s\n", textDivider)
	}

	textFooter(&b, data.Product)
	return b.String()
}

func fullText(data reportData) string {
	var b strings.Builder
	textHeader(&b, strings.ToUpper(data.Product)+" COMPLETE COMPETITIVE ANALYSIS", "Full Database Export", data.Date)

	for _, card := range data.Cards {
		textCardHeader(&b, card)

		fmt.Fprintf(&b, "DESCRIPTION:\n%s\n\n", card.Description)

		b.WriteString("COMPANY INFO:\n")
		fmt.Fprintf(&b, "• Location: %s\n", card.Location)
		fmt.Fprintf(&b, "• Employees: %s\n", card.Employees)
		fmt.Fprintf(&b, "• Funding: %s\n", card.Funding)
		fmt.Fprintf(&b, "• Revenue: %s\n", card.Revenue)
		fmt.Fprintf(&b, "• Similarity: %d/10\n", card.Similarity)
		fmt.Fprintf(&b, "• Implementation: %s\n", card.ImplementationTime)
		fmt.Fprintf(&b, "• Target Market: %s\n", card.TargetMarket)

		fmt.Fprintf(&b, "\n%s\n", textDivider)
	}

	textFooter(&b, data.Product)
	return b.String()
}
