package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/san-kum/ecosim/internal/population"
)

const (
	TableHeader = "Year | Rabbits | Wolves"
	TableRule   = "-----|---------|-------"
)

// FormatRow renders one record in the fixed-width table layout.
func FormatRow(rec population.YearRecord) string {
	return fmt.Sprintf("%4d | %7d | %6d", rec.Year, rec.Rabbits, rec.Wolves)
}

// WriteTable prints the header, the rule and one row per record.
func WriteTable(w io.Writer, res population.Result, st Styles) error {
	if _, err := fmt.Fprintln(w, st.Header.Render(TableHeader)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, st.Rule.Render(TableRule)); err != nil {
		return err
	}
	for _, rec := range res.Records {
		if _, err := fmt.Fprintln(w, FormatRow(rec)); err != nil {
			return err
		}
	}
	return nil
}

// WriteMetrics prints name: value pairs sorted by name.
func WriteMetrics(w io.Writer, m map[string]float64, st Styles) error {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		label := st.Label.Render(fmt.Sprintf("  %-20s", name))
		if _, err := fmt.Fprintf(w, "%s %s\n", label, st.Value.Render(fmt.Sprintf("%.4f", m[name]))); err != nil {
			return err
		}
	}
	return nil
}
