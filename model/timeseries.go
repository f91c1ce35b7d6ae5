package model

import (
	"sort"
	"strings"
)

// Reserved primary-key names for a time-series row (spec §3.5).
const (
	TsFieldMeasurement = "_m_name"
	TsFieldDatasource  = "_data_source"
	TsFieldTags        = "_tags"
	TsFieldTime        = "_time"
)

// CanonicalTags renders tags as the canonical "_tags" primary-key string
// spec §3.5 defines: sorted by key ascending, each entry rendered
// `" k=v "`, entries comma-joined, the whole thing wrapped in `[...]`.
func CanonicalTags(tags map[string]string) string {
	if len(tags) == 0 {
		return "[]"
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	items := make([]string, len(keys))
	for i, k := range keys {
		items[i] = "\"" + " " + k + "=" + tags[k] + " " + "\""
	}
	return "[" + strings.Join(items, ", ") + "]"
}

// TsKey identifies a time-line: a measurement, an optional datasource, and
// a tag set (spec §3.6).
type TsKey struct {
	Measurement string
	Datasource  string
	Tags        map[string]string
}

// TsMeta attaches free-form attributes and an update time to a TsKey (spec
// §3.6), as returned by QueryTimeseriesMeta / set by UpdateTimeseriesMeta.
type TsMeta struct {
	Key           TsKey
	Attributes    map[string]string
	UpdateTimeUs  *int64
}

// TsRow is a view over Row with the four reserved time-series primary
// keys plus arbitrary data fields (spec §3.5). TimeUs is microseconds
// since the Unix epoch.
type TsRow struct {
	Measurement string
	Datasource  string
	Tags        map[string]string
	TimeUs      int64
	Fields      []DataColumn
}

// ToRow renders t as the underlying Row, with `_tags` canonicalized per
// CanonicalTags, ready for PlainBuffer encoding.
func (t TsRow) ToRow() Row {
	pk := []PrimaryKeyColumn{
		{Name: TsFieldMeasurement, Value: PkStr(t.Measurement)},
		{Name: TsFieldDatasource, Value: PkStr(t.Datasource)},
		{Name: TsFieldTags, Value: PkStr(CanonicalTags(t.Tags))},
		{Name: TsFieldTime, Value: PkInt(t.TimeUs)},
	}
	return Row{PK: pk, Columns: t.Fields}
}

// TsRowFromRow reconstructs a TsRow from a decoded Row whose primary key
// carries the four reserved columns. It does not attempt to parse the
// canonical tag string back into a map; callers needing the map should
// carry it alongside, since the canonical form is lossy for tag values
// containing the separator sequences by construction (see spec §3.5).
func TsRowFromRow(r Row) TsRow {
	t := TsRow{Fields: r.Columns}
	if c, ok := r.PkColumn(TsFieldMeasurement); ok {
		t.Measurement, _ = c.Value.Str()
	}
	if c, ok := r.PkColumn(TsFieldDatasource); ok {
		t.Datasource, _ = c.Value.Str()
	}
	if c, ok := r.PkColumn(TsFieldTime); ok {
		t.TimeUs, _ = c.Value.Int()
	}
	return t
}
