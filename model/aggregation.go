package model

// AggKind enumerates the closed set of aggregation variants in spec §3.9.
type AggKind int

const (
	AggMin AggKind = iota
	AggMax
	AggAvg
	AggSum
	AggCount
	AggDistinctCount
	AggTopRows
	AggPercentiles
)

// Aggregation is one named node in the aggregation tree. Name must be
// unique within its parent (spec §3.9); it routes the result back to the
// caller as map<name, AggregationResult>.
type Aggregation struct {
	Name        string
	Kind        AggKind
	FieldName   string
	Missing     *ColValue // substitute value for documents missing FieldName
	Limit       int32     // AggTopRows: max rows to return
	Percentiles []float64 // AggPercentiles: requested percentile points, e.g. 50, 90, 99
}

// GroupByKind enumerates the closed set of group-by variants in spec §3.9.
type GroupByKind int

const (
	GroupByField GroupByKind = iota
	GroupByFilter
	GroupByRange
	GroupByHistogram
	GroupByDateHistogram
	GroupByGeoGrid
	GroupByGeoDistance
	GroupByComposite
)

// RangeBucket is one [From, To) bucket of a GroupByRange.
type RangeBucket struct {
	From, To       float64
	FromSet, ToSet bool
}

// GeoDistanceBucket is one [From, To) bucket of a GroupByGeoDistance.
type GeoDistanceBucket struct {
	From, To       float64
	FromSet, ToSet bool
}

// CompositeSource is one field-ordinal source of a GroupByComposite.
type CompositeSource struct {
	Name      string
	FieldName string
	Kind      GroupByKind // GroupByField, GroupByHistogram, or GroupByDateHistogram
}

// GroupBy is one named node in the group-by tree (spec §3.9). Each node may
// carry SubAggregations and SubGroupBys, forming a DAG that in practice is
// always a tree owned by its parent request.
type GroupBy struct {
	Name      string
	Kind      GroupByKind
	FieldName string

	Size int32 // GroupByField/GeoGrid: max distinct buckets to return

	FilterQueries []Query // GroupByFilter: one bucket per query

	RangeBuckets []RangeBucket // GroupByRange

	Interval float64 // GroupByHistogram: bucket width

	DateInterval string // GroupByDateHistogram: e.g. "1d", "1h"
	Timezone     string // GroupByDateHistogram: "+08:00" form, validated by validate.DateHistogramTimezone

	GeoDistanceCenter  GeoPoint
	GeoDistanceBuckets []GeoDistanceBucket

	GeoGridPrecision int32 // GroupByGeoGrid

	CompositeSources []CompositeSource // GroupByComposite

	SubAggregations []Aggregation
	SubGroupBys     []GroupBy
}

// AggregationResult carries one aggregation node's computed value back to
// the caller; only the field matching the node's Kind is populated.
type AggregationResult struct {
	Name  string
	Kind  AggKind
	Value float64 // Min/Max/Avg/Sum/Count/DistinctCount
	Rows  []Row   // TopRows
	Percentiles map[float64]float64 // Percentiles: requested point -> value
}

// GroupByResultBucket is one bucket of a GroupBy's result: a key, the
// matched document count, and any nested aggregation/group-by results.
type GroupByResultBucket struct {
	Key             string
	Count           int64
	SubAggregations map[string]AggregationResult
	SubGroupBys     map[string]GroupByResult
}

// GroupByResult carries one group-by node's buckets back to the caller.
type GroupByResult struct {
	Name    string
	Kind    GroupByKind
	Buckets []GroupByResultBucket
}
