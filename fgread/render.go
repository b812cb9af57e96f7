package fgread

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"
)

// longTextColumns are dropped from summary rendering; they hold free text
// that does not fit a terminal table.
var longTextColumns = []string{
	"description",
	"license",
	"preprocessing",
	"citation",
	"webLink",
}

func formatValue(v any, ok bool) string {
	if !ok {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// String renders the table as aligned plain text, one dataset per row.
// Presentation convenience only; richer rendering belongs to the caller.
func (t *Table) String() string {
	return t.render(t.columns)
}

// Summary renders the table without the long free-text columns.
func (t *Table) Summary() string {
	var columns []string
	for _, name := range t.columns {
		if !slices.Contains(longTextColumns, name) {
			columns = append(columns, name)
		}
	}
	return t.render(columns)
}

func (t *Table) render(columns []string) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(columns, "\t"))
	for _, record := range t.records {
		cells := make([]string, len(columns))
		for i, name := range columns {
			cells[i] = formatValue(record.Get(name))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}

	_ = w.Flush()
	return sb.String()
}

// String renders a single record transposed, one field per line.
func (r *Record) String() string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)

	var columns []string
	for _, name := range columnPriority {
		if _, ok := r.fields[name]; ok {
			columns = append(columns, name)
		}
	}
	var rest []string
	for name := range r.fields {
		if !slices.Contains(columnPriority, name) {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	columns = append(columns, rest...)

	for _, name := range columns {
		fmt.Fprintf(w, "%s\t%s\n", name, formatValue(r.Get(name)))
	}

	_ = w.Flush()
	return sb.String()
}
