package domain

import "strings"

// InputRecord is one row of the new contract report.
// Fields maps a source column label to its raw cell text; a column that
// was absent for this row has no key at all.
type InputRecord struct {
	Row    int               `json:"row"` // 1-based data row in the source file
	Fields map[string]string `json:"fields"`
}

// NewInputRecord creates a record for the given row number.
func NewInputRecord(row int, fields map[string]string) InputRecord {
	if fields == nil {
		fields = make(map[string]string)
	}
	return InputRecord{Row: row, Fields: fields}
}

// Get returns the raw value of a field and whether the field is present.
func (r InputRecord) Get(field string) (string, bool) {
	v, ok := r.Fields[field]
	return v, ok
}

// Value returns the raw value of a field, or "" when it is absent.
func (r InputRecord) Value(field string) string {
	return r.Fields[field]
}

// With returns a copy of the record with field set to value.
// The receiver is left untouched.
func (r InputRecord) With(field, value string) InputRecord {
	fields := make(map[string]string, len(r.Fields)+1)
	for k, v := range r.Fields {
		fields[k] = v
	}
	fields[field] = value
	return InputRecord{Row: r.Row, Fields: fields}
}

// Dataset is a fully materialised table: its header plus every row.
type Dataset struct {
	Source   string        `json:"source"`   // file name the rows came from
	Encoding string        `json:"encoding"` // detected on load
	Columns  []string      `json:"columns"`
	Records  []InputRecord `json:"records"`
}

// HasColumn reports whether the dataset header contains the column.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ColumnsContaining returns header labels containing marker, in header order.
func (d *Dataset) ColumnsContaining(marker string) []string {
	var cols []string
	for _, c := range d.Columns {
		if strings.Contains(c, marker) {
			cols = append(cols, c)
		}
	}
	return cols
}

// ContractIndex is the set of carryover numbers already registered downstream.
type ContractIndex map[string]struct{}

// Contains reports whether id is registered.
func (ci ContractIndex) Contains(id string) bool {
	_, ok := ci[id]
	return ok
}

// AddressParts is a free-text address split into its components.
type AddressParts struct {
	PostalCode string `json:"postal_code"` // DDD-DDDD or ""
	Prefecture string `json:"prefecture"`
	City       string `json:"city"`
	Remainder  string `json:"remainder"`
}

// OutputRecord holds the populated output columns of one converted row.
// Columns that were never assigned are simply missing; projection onto the
// schema fills them with "".
type OutputRecord map[string]string

// Project lays the record out along columns. Blank placeholder labels
// always project to "".
func (o OutputRecord) Project(columns []string) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		if col == "" {
			continue
		}
		row[i] = o[col]
	}
	return row
}

// OutputTable is the converted table, already projected onto its header.
type OutputTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column returns every value of the first column labelled name.
func (t *OutputTable) Column(name string) ([]string, bool) {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row[idx])
	}
	return values, true
}
