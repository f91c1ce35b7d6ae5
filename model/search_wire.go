package model

// This file gives Query, Aggregation, and GroupBy their own wire encoding,
// keeping the search-index request/response envelope (package pb) opaque
// to their internals exactly as it already is to PlainBuffer row bytes:
// pb.SearchRequest carries QueryBytes/AggsBytes/GroupBysBytes produced
// here, and never interprets them itself (spec §9 design notes: these are
// closed sums, encoded with a single switch apiece).

import (
	"math"

	"github.com/go-tablestore/tablestore/tserrors"
	"github.com/go-tablestore/tablestore/wire"
)

// Field numbers used within a single Query/Aggregation/GroupBy message.
// They are local to this encoding and never escape package model.
const (
	qfKind   = 1
	qfParams = 2
)

// Marshal encodes q as a length-delimited, kind-tagged message.
func (q Query) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteVarint(qfKind, uint64(q.kind))
	w.WriteBytes(qfParams, q.marshalParams())
	return w.Bytes()
}

func (q Query) marshalParams() []byte {
	w := wire.NewWriter()
	switch q.kind {
	case QueryMatch:
		w.WriteString(1, q.match.FieldName)
		w.WriteString(2, q.match.Text)
		w.WriteZigzag(3, q.match.MinShouldMatch)
		w.WriteString(4, q.match.Operator)
	case QueryMatchAll:
		// no parameters
	case QueryMatchPhrase:
		w.WriteString(1, q.matchPhrase.FieldName)
		w.WriteString(2, q.matchPhrase.Text)
	case QueryTerm:
		w.WriteString(1, q.term.FieldName)
		w.WriteString(2, q.term.Term)
	case QueryTerms:
		w.WriteString(1, q.terms.FieldName)
		for _, t := range q.terms.Terms {
			w.WriteString(2, t)
		}
	case QueryRange:
		w.WriteString(1, q.rangeQ.FieldName)
		if q.rangeQ.FromSet {
			w.WriteString(2, q.rangeQ.From)
		}
		if q.rangeQ.ToSet {
			w.WriteString(3, q.rangeQ.To)
		}
		w.WriteBool(4, q.rangeQ.IncludeLower)
		w.WriteBool(5, q.rangeQ.IncludeUpper)
	case QueryPrefix:
		w.WriteString(1, q.prefix.FieldName)
		w.WriteString(2, q.prefix.Prefix)
	case QueryWildcard:
		w.WriteString(1, q.wildcard.FieldName)
		w.WriteString(2, q.wildcard.Value)
	case QueryBool:
		w.WriteZigzag(1, q.boolQ.MinimumShouldMatch)
		for _, c := range q.boolQ.Clauses {
			cw := wire.NewWriter()
			cw.WriteVarint(1, uint64(c.Occur))
			cw.WriteBytes(2, c.Query.Marshal())
			w.WriteMessage(2, cw.Bytes())
		}
	case QueryConstScore:
		w.WriteBytes(1, q.constScore.Filter.Marshal())
	case QueryFunctionsScore:
		w.WriteBytes(1, q.functionsScore.Query.Marshal())
		w.WriteString(2, q.functionsScore.ScoreMode)
		w.WriteString(3, q.functionsScore.CombineMode)
		for _, d := range q.functionsScore.Decays {
			dw := wire.NewWriter()
			dw.WriteString(1, d.FieldName)
			dw.WriteString(2, d.Origin)
			dw.WriteString(3, d.Scale)
			dw.WriteString(4, d.Offset)
			dw.WriteFixed64(5, float64Bits(d.Decay))
			dw.WriteVarint(6, uint64(d.Math))
			w.WriteMessage(4, dw.Bytes())
		}
	case QueryNested:
		w.WriteString(1, q.nested.Path)
		w.WriteBytes(2, q.nested.Query.Marshal())
		w.WriteVarint(3, uint64(q.nested.ScoreMode))
	case QueryGeoBounding:
		w.WriteString(1, q.geoBounding.FieldName)
		w.WriteFixed64(2, float64Bits(q.geoBounding.TopLeft.Lat))
		w.WriteFixed64(3, float64Bits(q.geoBounding.TopLeft.Lon))
		w.WriteFixed64(4, float64Bits(q.geoBounding.BottomRight.Lat))
		w.WriteFixed64(5, float64Bits(q.geoBounding.BottomRight.Lon))
	case QueryGeoDistance:
		w.WriteString(1, q.geoDistance.FieldName)
		w.WriteFixed64(2, float64Bits(q.geoDistance.Center.Lat))
		w.WriteFixed64(3, float64Bits(q.geoDistance.Center.Lon))
		w.WriteFixed64(4, float64Bits(q.geoDistance.DistanceMeters))
	case QueryGeoPolygon:
		w.WriteString(1, q.geoPolygon.FieldName)
		for _, p := range q.geoPolygon.Points {
			pw := wire.NewWriter()
			pw.WriteFixed64(1, float64Bits(p.Lat))
			pw.WriteFixed64(2, float64Bits(p.Lon))
			w.WriteMessage(2, pw.Bytes())
		}
	case QueryExists:
		w.WriteString(1, q.exists.FieldName)
	}
	return w.Bytes()
}

// float64Bits reinterprets f's IEEE-754 bit pattern as a uint64 payload for
// wire.WriteFixed64, matching how the PlainBuffer codec stores doubles.
func float64Bits(f float64) uint64 { return math.Float64bits(f) }

func floatFromBitsLE(bits uint64) float64 { return math.Float64frombits(bits) }

// UnmarshalQuery decodes a byte string produced by Query.Marshal.
func UnmarshalQuery(data []byte) (Query, error) {
	r := wire.NewReader(data)
	var kind QueryKind
	var params []byte
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case qfKind:
			kind = QueryKind(f.Varint)
		case qfParams:
			params = f.Bytes
		}
	}
	return unmarshalQueryParams(kind, params)
}

func unmarshalQueryParams(kind QueryKind, data []byte) (Query, error) {
	pr := wire.NewReader(data)
	fields := map[int]wire.Field{}
	var repeatedTerms []string
	var repeatedClauses []BoolClause
	var repeatedDecays []DecayParam
	var repeatedPoints []GeoPoint
	for {
		f, err := pr.Next()
		if err != nil {
			break
		}
		switch kind {
		case QueryTerms:
			if f.Number == 2 {
				repeatedTerms = append(repeatedTerms, string(f.Bytes))
				continue
			}
		case QueryBool:
			if f.Number == 2 {
				cr := wire.NewReader(f.Bytes)
				var clause BoolClause
				for {
					cf, err := cr.Next()
					if err != nil {
						break
					}
					switch cf.Number {
					case 1:
						clause.Occur = BoolOccur(cf.Varint)
					case 2:
						sub, err := UnmarshalQuery(cf.Bytes)
						if err != nil {
							return Query{}, err
						}
						clause.Query = sub
					}
				}
				repeatedClauses = append(repeatedClauses, clause)
				continue
			}
		case QueryFunctionsScore:
			if f.Number == 4 {
				dr := wire.NewReader(f.Bytes)
				var d DecayParam
				for {
					df, err := dr.Next()
					if err != nil {
						break
					}
					switch df.Number {
					case 1:
						d.FieldName = string(df.Bytes)
					case 2:
						d.Origin = string(df.Bytes)
					case 3:
						d.Scale = string(df.Bytes)
					case 4:
						d.Offset = string(df.Bytes)
					case 5:
						d.Decay = floatFromBitsLE(df.Fixed)
					case 6:
						d.Math = DecayMathFunction(df.Varint)
					}
				}
				repeatedDecays = append(repeatedDecays, d)
				continue
			}
		case QueryGeoPolygon:
			if f.Number == 2 {
				pointR := wire.NewReader(f.Bytes)
				var p GeoPoint
				for {
					pf, err := pointR.Next()
					if err != nil {
						break
					}
					switch pf.Number {
					case 1:
						p.Lat = floatFromBitsLE(pf.Fixed)
					case 2:
						p.Lon = floatFromBitsLE(pf.Fixed)
					}
				}
				repeatedPoints = append(repeatedPoints, p)
				continue
			}
		}
		fields[f.Number] = f
	}

	switch kind {
	case QueryMatchAll:
		return MatchAll(), nil
	case QueryMatch:
		return Match(MatchQuery{
			FieldName:      string(fields[1].Bytes),
			Text:           string(fields[2].Bytes),
			MinShouldMatch: wire.ZigzagToInt64(fields[3].Varint),
			Operator:       string(fields[4].Bytes),
		}), nil
	case QueryMatchPhrase:
		return MatchPhrase(MatchPhraseQuery{
			FieldName: string(fields[1].Bytes),
			Text:      string(fields[2].Bytes),
		}), nil
	case QueryTerm:
		return Term(TermQuery{FieldName: string(fields[1].Bytes), Term: string(fields[2].Bytes)}), nil
	case QueryTerms:
		return Terms(TermsQuery{FieldName: string(fields[1].Bytes), Terms: repeatedTerms}), nil
	case QueryRange:
		_, fromSet := fields[2]
		_, toSet := fields[3]
		return RangeQ(RangeQuery{
			FieldName:    string(fields[1].Bytes),
			From:         string(fields[2].Bytes),
			To:           string(fields[3].Bytes),
			FromSet:      fromSet,
			ToSet:        toSet,
			IncludeLower: fields[4].Varint != 0,
			IncludeUpper: fields[5].Varint != 0,
		}), nil
	case QueryPrefix:
		return Prefix(PrefixQuery{FieldName: string(fields[1].Bytes), Prefix: string(fields[2].Bytes)}), nil
	case QueryWildcard:
		return Wildcard(WildcardQuery{FieldName: string(fields[1].Bytes), Value: string(fields[2].Bytes)}), nil
	case QueryBool:
		return Bool(BoolQuery{Clauses: repeatedClauses, MinimumShouldMatch: wire.ZigzagToInt64(fields[1].Varint)}), nil
	case QueryConstScore:
		sub, err := UnmarshalQuery(fields[1].Bytes)
		if err != nil {
			return Query{}, err
		}
		return ConstScore(ConstScoreQuery{Filter: sub}), nil
	case QueryFunctionsScore:
		sub, err := UnmarshalQuery(fields[1].Bytes)
		if err != nil {
			return Query{}, err
		}
		return FunctionsScore(FunctionsScoreQuery{
			Query:       sub,
			Decays:      repeatedDecays,
			ScoreMode:   string(fields[2].Bytes),
			CombineMode: string(fields[3].Bytes),
		}), nil
	case QueryNested:
		sub, err := UnmarshalQuery(fields[2].Bytes)
		if err != nil {
			return Query{}, err
		}
		return Nested(NestedQuery{Path: string(fields[1].Bytes), Query: sub, ScoreMode: NestedScoreMode(fields[3].Varint)}), nil
	case QueryGeoBounding:
		return GeoBounding(GeoBoundingBoxQuery{
			FieldName:   string(fields[1].Bytes),
			TopLeft:     GeoPoint{Lat: floatFromBitsLE(fields[2].Fixed), Lon: floatFromBitsLE(fields[3].Fixed)},
			BottomRight: GeoPoint{Lat: floatFromBitsLE(fields[4].Fixed), Lon: floatFromBitsLE(fields[5].Fixed)},
		}), nil
	case QueryGeoDistance:
		return GeoDistance(GeoDistanceQuery{
			FieldName:      string(fields[1].Bytes),
			Center:         GeoPoint{Lat: floatFromBitsLE(fields[2].Fixed), Lon: floatFromBitsLE(fields[3].Fixed)},
			DistanceMeters: floatFromBitsLE(fields[4].Fixed),
		}), nil
	case QueryGeoPolygon:
		return GeoPolygon(GeoPolygonQuery{FieldName: string(fields[1].Bytes), Points: repeatedPoints}), nil
	case QueryExists:
		return Exists(ExistsQuery{FieldName: string(fields[1].Bytes)}), nil
	default:
		return Query{}, tserrors.NewValidationFailed("unknown query kind %d", kind)
	}
}
