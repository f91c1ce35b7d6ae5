package model

import "fmt"

// UpdateType is the cell-level update-row operation described in spec
// §4.2.1/§4.2.4. UpdateNone means the cell carries a plain Put value.
type UpdateType int

const (
	UpdateNone UpdateType = iota
	UpdateDeleteAllVersions
	UpdateDeleteOneVersion
	UpdateIncrement
)

// PrimaryKeyColumn is one named, typed component of a row's primary key.
type PrimaryKeyColumn struct {
	Name  string
	Value PkValue
}

// DataColumn is one named, typed, optionally timestamped data cell. For
// UpdateRow requests, UpdateType distinguishes a plain put from a
// delete-one-version/delete-all-versions/increment operation; Timestamp is
// nil when the cell carries no explicit timestamp (required for
// delete-one-version, forbidden for delete-all-versions).
type DataColumn struct {
	Name       string
	Value      ColValue
	Timestamp  *int64
	UpdateType UpdateType
}

// WithTimestamp returns a copy of d with an explicit timestamp in
// milliseconds since epoch, as required by spec §3.3/§4.2.4.
func (d DataColumn) WithTimestamp(ms int64) DataColumn {
	d.Timestamp = &ms
	return d
}

// Row is an ordered sequence of 1..=4 primary-key columns followed by an
// ordered sequence of data columns, plus a delete-marker flag used by
// delete-row requests and delete markers returned from GetRange.
type Row struct {
	PK      []PrimaryKeyColumn
	Columns []DataColumn
	Deleted bool
}

// NewRow builds a Row from explicit primary-key and data columns.
func NewRow(pk []PrimaryKeyColumn, cols []DataColumn) Row {
	return Row{PK: pk, Columns: cols}
}

// Validate checks the row invariants from spec §3.4: the primary-key
// sequence is non-empty, has at most 4 columns, and PK names are unique.
func (r Row) Validate() error {
	if len(r.PK) == 0 {
		return fmt.Errorf("row: primary key must have at least one column")
	}
	if len(r.PK) > 4 {
		return fmt.Errorf("row: primary key must have at most 4 columns, got %d", len(r.PK))
	}
	seen := make(map[string]bool, len(r.PK))
	for _, c := range r.PK {
		if seen[c.Name] {
			return fmt.Errorf("row: duplicate primary key column %q", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

// Column looks up a data column by name.
func (r Row) Column(name string) (DataColumn, bool) {
	for _, c := range r.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return DataColumn{}, false
}

// PkColumn looks up a primary-key column by name.
func (r Row) PkColumn(name string) (PrimaryKeyColumn, bool) {
	for _, c := range r.PK {
		if c.Name == name {
			return c, true
		}
	}
	return PrimaryKeyColumn{}, false
}
