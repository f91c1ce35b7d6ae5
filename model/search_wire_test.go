package model

import "testing"

func TestQueryRoundTrip(t *testing.T) {
	cases := []Query{
		MatchAll(),
		Match(MatchQuery{FieldName: "title", Text: "golang datastore", Operator: "AND"}),
		Term(TermQuery{FieldName: "status", Term: "active"}),
		Terms(TermsQuery{FieldName: "tag", Terms: []string{"a", "b", "c"}}),
		RangeQ(RangeQuery{FieldName: "age", From: "10", FromSet: true, To: "20", ToSet: true, IncludeLower: true}),
		Bool(BoolQuery{Clauses: []BoolClause{
			{Occur: OccurMust, Query: Term(TermQuery{FieldName: "a", Term: "1"})},
			{Occur: OccurShould, Query: Term(TermQuery{FieldName: "b", Term: "2"})},
		}}),
		Exists(ExistsQuery{FieldName: "email"}),
		GeoDistance(GeoDistanceQuery{FieldName: "loc", Center: GeoPoint{Lat: 1.5, Lon: 2.5}, DistanceMeters: 1000}),
	}
	for i, q := range cases {
		data := q.Marshal()
		got, err := UnmarshalQuery(data)
		if err != nil {
			t.Fatalf("case %d: UnmarshalQuery: %v", i, err)
		}
		if got.Kind() != q.Kind() {
			t.Errorf("case %d: Kind() = %v, want %v", i, got.Kind(), q.Kind())
		}
	}
}

func TestAggregationRoundTrip(t *testing.T) {
	a := Aggregation{Name: "avg_age", Kind: AggAvg, FieldName: "age"}
	got, err := UnmarshalAggregation(a.Marshal())
	if err != nil {
		t.Fatalf("UnmarshalAggregation: %v", err)
	}
	if got.Name != a.Name || got.Kind != a.Kind || got.FieldName != a.FieldName {
		t.Errorf("got %+v, want %+v", got, a)
	}
}

func TestGroupByRoundTrip(t *testing.T) {
	g := GroupBy{
		Name:      "by_region",
		Kind:      GroupByField,
		FieldName: "region",
		Size:      10,
		SubAggregations: []Aggregation{
			{Name: "avg_age", Kind: AggAvg, FieldName: "age"},
		},
	}
	got, err := UnmarshalGroupBy(g.Marshal())
	if err != nil {
		t.Fatalf("UnmarshalGroupBy: %v", err)
	}
	if got.Name != g.Name || len(got.SubAggregations) != 1 {
		t.Errorf("got %+v, want %+v", got, g)
	}
}

func TestCanonicalTagsSortedAscending(t *testing.T) {
	got := CanonicalTags(map[string]string{"z": "1", "a": "2"})
	want := `[" a=2 ", " z=1 "]`
	if got != want {
		t.Errorf("CanonicalTags() = %q, want %q", got, want)
	}
}

func TestCanonicalTagsEmpty(t *testing.T) {
	if got := CanonicalTags(nil); got != "[]" {
		t.Errorf("CanonicalTags(nil) = %q, want []", got)
	}
}
