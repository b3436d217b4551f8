package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

func renderExtractions(w io.Writer, records []extraction, format string) error {
	switch format {
	case "json":
		return renderJSON(w, records)
	case "csv":
		return renderExtractionsCSV(w, records)
	case "plain":
		return renderExtractionsPlain(w, records)
	default:
		return renderExtractionsTable(w, records)
	}
}

func renderExtractionsTable(w io.Writer, records []extraction) error {
	if len(records) == 0 {
		_, _ = fmt.Fprintln(w, "(0 queries)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Query", "Tables", "Columns"})
	for _, rec := range records {
		t.AppendRow(table.Row{
			rec.Normalized,
			strings.Join(rec.Tables, ", "),
			strings.Join(rec.Columns, ", "),
		})
	}
	t.Render()
	return nil
}

func renderExtractionsPlain(w io.Writer, records []extraction) error {
	for i, rec := range records {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintf(w, "query:   %s\n", rec.Normalized)
		_, _ = fmt.Fprintf(w, "tables:  %s\n", strings.Join(rec.Tables, ", "))
		_, _ = fmt.Fprintf(w, "columns: %s\n", strings.Join(rec.Columns, ", "))
	}
	return nil
}

func renderExtractionsCSV(w io.Writer, records []extraction) error {
	_, _ = fmt.Fprintln(w, "query,tables,columns")
	for _, rec := range records {
		_, _ = fmt.Fprintf(w, "%s,%s,%s\n",
			escapeCSV(rec.Normalized),
			escapeCSV(strings.Join(rec.Tables, " ")),
			escapeCSV(strings.Join(rec.Columns, " ")))
	}
	return nil
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// escapeCSV quotes a value when it contains a comma, quote, or newline.
func escapeCSV(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
