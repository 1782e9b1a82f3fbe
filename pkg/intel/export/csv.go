package export

import (
	"encoding/json"
	"strconv"
	"strings"

	"onebeat/scout/pkg/intel/projection"
)

// encodeCSV renders the projected records as a CSV table using the
// team's fixed column schema.
//
// The cell format is deliberately not RFC 4180: every value is wrapped
// in double quotes with no embedded-quote escaping, except similarity,
// which renders as a bare integer. Downstream consumers (spreadsheet
// imports built years ago) depend on this exact byte layout, which is
// why encoding/csv is not used here. A value containing a double quote
// will produce a malformed row.
func (e *Exporter) encodeCSV(records []projection.Record, schema projection.Schema) (*Result, error) {
	var b strings.Builder

	for i, col := range schema.CSVColumns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(col.Header)
	}
	b.WriteByte('\n')

	for i, rec := range records {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, col := range schema.CSVColumns {
			if j > 0 {
				b.WriteByte(',')
			}
			if col.Field == projection.FieldSimilarity {
				b.WriteString(strconv.Itoa(intCell(rec[col.Field])))
				continue
			}
			b.WriteByte('"')
			b.WriteString(cell(rec[col.Field]))
			b.WriteByte('"')
		}
	}

	return &Result{
		Data:        []byte(b.String()),
		ContentType: "text/csv",
		Filename:    e.filename(schema.Team, "csv"),
	}, nil
}

// cell renders one projected value as CSV cell text. Absent optionals
// render as the empty string, never "null".
func cell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case []string:
		return strings.Join(val, "; ")
	case map[string]bool:
		// The capabilities map is embedded as a JSON object string
		// inside the cell. Marshal sorts keys, so output is stable.
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	default:
		return ""
	}
}

func intCell(v any) int {
	if n, ok := v.(int); ok {
		return n
	}
	return 0
}
