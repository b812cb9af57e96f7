package fgread

import (
	"maps"
	"slices"
)

// columnPriority is the fixed front of the column order; fields not listed
// here keep their encounter order after these.
var columnPriority = []string{
	FieldTitle,
	FieldID,
	FieldFormat,
	"organism",
	"tissue",
	"numberOfCells",
	"numberOfGenes",
	FieldPath,
	FieldFile,
}

// -----------------------------------------------------------------------------
// Record
// -----------------------------------------------------------------------------

// Record is one dataset's metadata: the decoded sidecar fields plus the
// path field assigned during aggregation. Fields absent from a sidecar are
// absent from its record, not zero-valued.
type Record struct {
	fields map[string]any
}

// Get returns the named field and whether it is present.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// Fields returns a copy of the record's field mapping.
func (r *Record) Fields() map[string]any {
	return maps.Clone(r.fields)
}

func (r *Record) stringField(name string) string {
	s, _ := r.fields[name].(string)
	return s
}

// ID returns the dataset's unique identifier.
func (r *Record) ID() string { return r.stringField(FieldID) }

// Title returns the dataset's display title. Titles are operator-entered
// and not guaranteed unique.
func (r *Record) Title() string { return r.stringField(FieldTitle) }

// Format returns the declared format label.
func (r *Record) Format() string { return r.stringField(FieldFormat) }

// Path returns the dataset directory the record was aggregated from.
func (r *Record) Path() string { return r.stringField(FieldPath) }

// File returns the payload filename relative to Path.
func (r *Record) File() string { return r.stringField(FieldFile) }

// clone returns a deep-enough copy: the field map is copied so mutations on
// the copy never reach the shared table.
func (r *Record) clone() *Record {
	return &Record{fields: maps.Clone(r.fields)}
}

// -----------------------------------------------------------------------------
// Table
// -----------------------------------------------------------------------------

// Table is the ordered collection of all dataset records discovered under a
// data directory for one call. It is rebuilt fresh on every call and never
// cached.
type Table struct {
	columns []string
	records []*Record
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// Columns returns the column names: the priority columns that occur in any
// record first, then remaining fields in encounter order.
func (t *Table) Columns() []string { return t.columns }

// Records returns the table's records in discovery order.
func (t *Table) Records() []*Record { return t.records }

// Record returns the i-th record.
func (t *Table) Record(i int) *Record { return t.records[i] }

// newTable assembles a table from records and the union of their field
// encounter orders, applying the priority column ordering.
func newTable(records []*Record, encounterOrder []string) *Table {
	present := make(map[string]bool, len(encounterOrder))
	for _, name := range encounterOrder {
		present[name] = true
	}

	var columns []string
	for _, name := range columnPriority {
		if present[name] {
			columns = append(columns, name)
		}
	}
	for _, name := range encounterOrder {
		if !slices.Contains(columnPriority, name) {
			columns = append(columns, name)
		}
	}

	return &Table{columns: columns, records: records}
}

// singleRow wraps one record in a one-row table preserving column order.
func (t *Table) singleRow(r *Record) *Table {
	return &Table{columns: t.columns, records: []*Record{r}}
}
