package model

// QueryKind enumerates the closed set of search-query variants in spec
// §3.8. Each variant carries its own parameter block, held in the matching
// field of Query; only the field matching Kind() is meaningful.
type QueryKind int

const (
	QueryMatch QueryKind = iota
	QueryMatchAll
	QueryMatchPhrase
	QueryTerm
	QueryTerms
	QueryRange
	QueryPrefix
	QueryWildcard
	QueryBool
	QueryConstScore
	QueryFunctionsScore
	QueryNested
	QueryGeoBounding
	QueryGeoDistance
	QueryGeoPolygon
	QueryExists
)

// MatchQuery performs a tokenized full-text match on FieldName.
type MatchQuery struct {
	FieldName        string
	Text             string
	MinShouldMatch   int64
	Operator         string // "OR" | "AND"
}

// MatchPhraseQuery requires the tokens to appear in order, adjacently.
type MatchPhraseQuery struct {
	FieldName string
	Text      string
}

// TermQuery matches FieldName against a single exact value, encoded as its
// string representation.
type TermQuery struct {
	FieldName string
	Term      string
}

// TermsQuery matches FieldName against any of several exact values.
type TermsQuery struct {
	FieldName string
	Terms     []string
}

// RangeQuery bounds FieldName between [From, To], with inclusivity flags.
type RangeQuery struct {
	FieldName    string
	From, To     string
	FromSet, ToSet bool
	IncludeLower, IncludeUpper bool
}

// PrefixQuery matches FieldName values starting with Prefix.
type PrefixQuery struct {
	FieldName string
	Prefix    string
}

// WildcardQuery matches FieldName against a glob-style pattern ('*'/'?').
type WildcardQuery struct {
	FieldName string
	Value     string
}

// BoolOccur tags one clause of a BoolQuery with its occurrence constraint.
type BoolOccur int

const (
	OccurMust BoolOccur = iota
	OccurMustNot
	OccurShould
	OccurFilter
)

// BoolClause pairs a sub-query with its occurrence constraint.
type BoolClause struct {
	Occur BoolOccur
	Query Query
}

// BoolQuery combines sub-queries with must/must_not/should/filter semantics.
type BoolQuery struct {
	Clauses            []BoolClause
	MinimumShouldMatch int64
}

// ConstScoreQuery wraps a filter-only sub-query, assigning every match a
// constant relevance score.
type ConstScoreQuery struct {
	Filter Query
}

// DecayMathFunction names a FunctionsScoreQuery decay shape.
type DecayMathFunction int

const (
	DecayLinear DecayMathFunction = iota
	DecayExp
	DecayGauss
)

// DecayParam is the tagged-union parameter block for one decay function
// inside a FunctionsScoreQuery (spec §9 design notes: closed sum).
type DecayParam struct {
	FieldName string
	Origin    string
	Scale     string
	Offset    string
	Decay     float64
	Math      DecayMathFunction
}

// FunctionsScoreQuery re-scores Query's matches using field-value factors
// and/or decay functions, combined by ScoreMode/CombineMode.
type FunctionsScoreQuery struct {
	Query       Query
	Decays      []DecayParam
	ScoreMode   string // "AVG" | "MAX" | "MIN" | "SUM" | "MULTIPLY" | "FIRST"
	CombineMode string // "MULTIPLY" | "SUM" | "AVG" | "MAX" | "MIN" | "REPLACE"
}

// NestedScoreMode controls how a NestedQuery aggregates matched sub-rows
// into a single score.
type NestedScoreMode int

const (
	NestedScoreNone NestedScoreMode = iota
	NestedScoreAvg
	NestedScoreMax
	NestedScoreMin
	NestedScoreSum
)

// NestedQuery searches within a nested (array-of-object) field.
type NestedQuery struct {
	Path      string
	Query     Query
	ScoreMode NestedScoreMode
}

// GeoPoint is a latitude,longitude pair in decimal degrees.
type GeoPoint struct {
	Lat, Lon float64
}

// GeoBoundingBoxQuery matches points within a rectangle.
type GeoBoundingBoxQuery struct {
	FieldName   string
	TopLeft     GeoPoint
	BottomRight GeoPoint
}

// GeoDistanceQuery matches points within DistanceMeters of Center.
type GeoDistanceQuery struct {
	FieldName      string
	Center         GeoPoint
	DistanceMeters float64
}

// GeoPolygonQuery matches points inside an arbitrary polygon.
type GeoPolygonQuery struct {
	FieldName string
	Points    []GeoPoint
}

// ExistsQuery matches documents that have a non-null value for FieldName.
type ExistsQuery struct {
	FieldName string
}

// Query is the tagged union described in spec §3.8. The zero value is a
// Match query with empty parameters; MatchAll builds a match-all query,
// and the other variants are built with the matching function.
type Query struct {
	kind QueryKind

	match         MatchQuery
	matchPhrase   MatchPhraseQuery
	term          TermQuery
	terms         TermsQuery
	rangeQ        RangeQuery
	prefix        PrefixQuery
	wildcard      WildcardQuery
	boolQ         *BoolQuery
	constScore    *ConstScoreQuery
	functionsScore *FunctionsScoreQuery
	nested        *NestedQuery
	geoBounding   GeoBoundingBoxQuery
	geoDistance   GeoDistanceQuery
	geoPolygon    GeoPolygonQuery
	exists        ExistsQuery
}

func (q Query) Kind() QueryKind { return q.kind }

func MatchAll() Query                      { return Query{kind: QueryMatchAll} }
func Match(q MatchQuery) Query              { return Query{kind: QueryMatch, match: q} }
func MatchPhrase(q MatchPhraseQuery) Query  { return Query{kind: QueryMatchPhrase, matchPhrase: q} }
func Term(q TermQuery) Query                { return Query{kind: QueryTerm, term: q} }
func Terms(q TermsQuery) Query              { return Query{kind: QueryTerms, terms: q} }
func RangeQ(q RangeQuery) Query             { return Query{kind: QueryRange, rangeQ: q} }
func Prefix(q PrefixQuery) Query            { return Query{kind: QueryPrefix, prefix: q} }
func Wildcard(q WildcardQuery) Query        { return Query{kind: QueryWildcard, wildcard: q} }
func Bool(q BoolQuery) Query                { return Query{kind: QueryBool, boolQ: &q} }
func ConstScore(q ConstScoreQuery) Query    { return Query{kind: QueryConstScore, constScore: &q} }
func FunctionsScore(q FunctionsScoreQuery) Query {
	return Query{kind: QueryFunctionsScore, functionsScore: &q}
}
func Nested(q NestedQuery) Query          { return Query{kind: QueryNested, nested: &q} }
func GeoBounding(q GeoBoundingBoxQuery) Query { return Query{kind: QueryGeoBounding, geoBounding: q} }
func GeoDistance(q GeoDistanceQuery) Query { return Query{kind: QueryGeoDistance, geoDistance: q} }
func GeoPolygon(q GeoPolygonQuery) Query   { return Query{kind: QueryGeoPolygon, geoPolygon: q} }
func Exists(q ExistsQuery) Query           { return Query{kind: QueryExists, exists: q} }

func (q Query) MatchParams() MatchQuery               { return q.match }
func (q Query) MatchPhraseParams() MatchPhraseQuery    { return q.matchPhrase }
func (q Query) TermParams() TermQuery                  { return q.term }
func (q Query) TermsParams() TermsQuery                { return q.terms }
func (q Query) RangeParams() RangeQuery                { return q.rangeQ }
func (q Query) PrefixParams() PrefixQuery              { return q.prefix }
func (q Query) WildcardParams() WildcardQuery          { return q.wildcard }
func (q Query) BoolParams() BoolQuery                  { return *q.boolQ }
func (q Query) ConstScoreParams() ConstScoreQuery      { return *q.constScore }
func (q Query) FunctionsScoreParams() FunctionsScoreQuery { return *q.functionsScore }
func (q Query) NestedParams() NestedQuery              { return *q.nested }
func (q Query) GeoBoundingParams() GeoBoundingBoxQuery { return q.geoBounding }
func (q Query) GeoDistanceParams() GeoDistanceQuery    { return q.geoDistance }
func (q Query) GeoPolygonParams() GeoPolygonQuery      { return q.geoPolygon }
func (q Query) ExistsParams() ExistsQuery              { return q.exists }
