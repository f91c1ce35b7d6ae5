package model

// SortOrder is ascending or descending.
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

// SorterKind enumerates the sort criteria usable in a Search/GetRange
// sort clause (C5 "sorters").
type SorterKind int

const (
	SortByField SorterKind = iota
	SortByScore
	SortByPrimaryKey
	SortByGeoDistance
)

// Sorter is one entry of a multi-level sort specification.
type Sorter struct {
	Kind       SorterKind
	FieldName  string
	Order      SortOrder
	GeoPoints  []GeoPoint // SortByGeoDistance: distances are computed from the nearest of these
	Mode       string     // "AVG" | "MAX" | "MIN" | "SUM", for array-valued fields
}
