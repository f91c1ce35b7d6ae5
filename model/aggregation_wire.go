package model

import (
	"github.com/go-tablestore/tablestore/wire"
)

// Marshal encodes a as a length-delimited message, used as one element of
// a SearchRequest's AggsBytes field (a concatenation of these).
func (a Aggregation) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(1, a.Name)
	w.WriteVarint(2, uint64(a.Kind))
	w.WriteString(3, a.FieldName)
	if a.Missing != nil {
		w.WriteBytes(4, marshalColValue(*a.Missing))
	}
	w.WriteZigzag(5, int64(a.Limit))
	for _, p := range a.Percentiles {
		w.WriteFixed64(6, float64Bits(p))
	}
	return w.Bytes()
}

// MarshalAggregations concatenates each aggregation's Marshal output as a
// sequence of length-delimited fields, the shape pb.SearchRequest.AggsBytes
// expects.
func MarshalAggregations(aggs []Aggregation) []byte {
	w := wire.NewWriter()
	for _, a := range aggs {
		w.WriteBytes(1, a.Marshal())
	}
	return w.Bytes()
}

// UnmarshalAggregations decodes a sequence produced by MarshalAggregations.
func UnmarshalAggregations(data []byte) ([]Aggregation, error) {
	r := wire.NewReader(data)
	var out []Aggregation
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		if f.Number != 1 {
			continue
		}
		a, err := UnmarshalAggregation(f.Bytes)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// UnmarshalAggregation decodes a single Aggregation.Marshal payload.
func UnmarshalAggregation(data []byte) (Aggregation, error) {
	var a Aggregation
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case 1:
			a.Name = string(f.Bytes)
		case 2:
			a.Kind = AggKind(f.Varint)
		case 3:
			a.FieldName = string(f.Bytes)
		case 4:
			v, err := unmarshalColValue(f.Bytes)
			if err != nil {
				return Aggregation{}, err
			}
			a.Missing = &v
		case 5:
			a.Limit = int32(wire.ZigzagToInt64(f.Varint))
		case 6:
			a.Percentiles = append(a.Percentiles, floatFromBitsLE(f.Fixed))
		}
	}
	return a, nil
}

// Marshal encodes g as a length-delimited message, used recursively for
// SubGroupBys and as one element of a SearchRequest's GroupBysBytes field.
func (g GroupBy) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(1, g.Name)
	w.WriteVarint(2, uint64(g.Kind))
	w.WriteString(3, g.FieldName)
	w.WriteZigzag(4, int64(g.Size))
	for _, q := range g.FilterQueries {
		w.WriteBytes(5, q.Marshal())
	}
	for _, rb := range g.RangeBuckets {
		bw := wire.NewWriter()
		if rb.FromSet {
			bw.WriteFixed64(1, float64Bits(rb.From))
		}
		if rb.ToSet {
			bw.WriteFixed64(2, float64Bits(rb.To))
		}
		w.WriteMessage(6, bw.Bytes())
	}
	w.WriteFixed64(7, float64Bits(g.Interval))
	w.WriteString(8, g.DateInterval)
	w.WriteString(9, g.Timezone)
	w.WriteFixed64(10, float64Bits(g.GeoDistanceCenter.Lat))
	w.WriteFixed64(11, float64Bits(g.GeoDistanceCenter.Lon))
	for _, gb := range g.GeoDistanceBuckets {
		bw := wire.NewWriter()
		if gb.FromSet {
			bw.WriteFixed64(1, float64Bits(gb.From))
		}
		if gb.ToSet {
			bw.WriteFixed64(2, float64Bits(gb.To))
		}
		w.WriteMessage(12, bw.Bytes())
	}
	w.WriteZigzag(13, int64(g.GeoGridPrecision))
	for _, cs := range g.CompositeSources {
		cw := wire.NewWriter()
		cw.WriteString(1, cs.Name)
		cw.WriteString(2, cs.FieldName)
		cw.WriteVarint(3, uint64(cs.Kind))
		w.WriteMessage(14, cw.Bytes())
	}
	for _, sa := range g.SubAggregations {
		w.WriteBytes(15, sa.Marshal())
	}
	for _, sg := range g.SubGroupBys {
		w.WriteBytes(16, sg.Marshal())
	}
	return w.Bytes()
}

// MarshalGroupBys concatenates each group-by's Marshal output, the shape
// pb.SearchRequest.GroupBysBytes expects.
func MarshalGroupBys(groupBys []GroupBy) []byte {
	w := wire.NewWriter()
	for _, g := range groupBys {
		w.WriteBytes(1, g.Marshal())
	}
	return w.Bytes()
}

// UnmarshalGroupBys decodes a sequence produced by MarshalGroupBys.
func UnmarshalGroupBys(data []byte) ([]GroupBy, error) {
	r := wire.NewReader(data)
	var out []GroupBy
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		if f.Number != 1 {
			continue
		}
		g, err := UnmarshalGroupBy(f.Bytes)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

// UnmarshalGroupBy decodes a single GroupBy.Marshal payload.
func UnmarshalGroupBy(data []byte) (GroupBy, error) {
	var g GroupBy
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case 1:
			g.Name = string(f.Bytes)
		case 2:
			g.Kind = GroupByKind(f.Varint)
		case 3:
			g.FieldName = string(f.Bytes)
		case 4:
			g.Size = int32(wire.ZigzagToInt64(f.Varint))
		case 5:
			q, err := UnmarshalQuery(f.Bytes)
			if err != nil {
				return GroupBy{}, err
			}
			g.FilterQueries = append(g.FilterQueries, q)
		case 6:
			rb, err := unmarshalRangeBucket(f.Bytes)
			if err != nil {
				return GroupBy{}, err
			}
			g.RangeBuckets = append(g.RangeBuckets, rb)
		case 7:
			g.Interval = floatFromBitsLE(f.Fixed)
		case 8:
			g.DateInterval = string(f.Bytes)
		case 9:
			g.Timezone = string(f.Bytes)
		case 10:
			g.GeoDistanceCenter.Lat = floatFromBitsLE(f.Fixed)
		case 11:
			g.GeoDistanceCenter.Lon = floatFromBitsLE(f.Fixed)
		case 12:
			gb, err := unmarshalGeoDistanceBucket(f.Bytes)
			if err != nil {
				return GroupBy{}, err
			}
			g.GeoDistanceBuckets = append(g.GeoDistanceBuckets, gb)
		case 13:
			g.GeoGridPrecision = int32(wire.ZigzagToInt64(f.Varint))
		case 14:
			cs, err := unmarshalCompositeSource(f.Bytes)
			if err != nil {
				return GroupBy{}, err
			}
			g.CompositeSources = append(g.CompositeSources, cs)
		case 15:
			sa, err := UnmarshalAggregation(f.Bytes)
			if err != nil {
				return GroupBy{}, err
			}
			g.SubAggregations = append(g.SubAggregations, sa)
		case 16:
			sg, err := UnmarshalGroupBy(f.Bytes)
			if err != nil {
				return GroupBy{}, err
			}
			g.SubGroupBys = append(g.SubGroupBys, sg)
		}
	}
	return g, nil
}

func unmarshalRangeBucket(data []byte) (RangeBucket, error) {
	var rb RangeBucket
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case 1:
			rb.From, rb.FromSet = floatFromBitsLE(f.Fixed), true
		case 2:
			rb.To, rb.ToSet = floatFromBitsLE(f.Fixed), true
		}
	}
	return rb, nil
}

func unmarshalGeoDistanceBucket(data []byte) (GeoDistanceBucket, error) {
	var gb GeoDistanceBucket
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case 1:
			gb.From, gb.FromSet = floatFromBitsLE(f.Fixed), true
		case 2:
			gb.To, gb.ToSet = floatFromBitsLE(f.Fixed), true
		}
	}
	return gb, nil
}

func unmarshalCompositeSource(data []byte) (CompositeSource, error) {
	var cs CompositeSource
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case 1:
			cs.Name = string(f.Bytes)
		case 2:
			cs.FieldName = string(f.Bytes)
		case 3:
			cs.Kind = GroupByKind(f.Varint)
		}
	}
	return cs, nil
}

// marshalColValue/unmarshalColValue give ColValue a minimal wire encoding
// for the one context it needs one outside PlainBuffer: an aggregation's
// "missing" substitute value.
func marshalColValue(v ColValue) []byte {
	w := wire.NewWriter()
	w.WriteVarint(1, uint64(v.Kind()))
	switch v.Kind() {
	case ColInteger:
		i, _ := v.Int()
		w.WriteZigzag(2, i)
	case ColDouble:
		d, _ := v.Double()
		w.WriteFixed64(3, float64Bits(d))
	case ColBoolean:
		b, _ := v.Bool()
		w.WriteBool(4, b)
	case ColString:
		s, _ := v.Str()
		w.WriteString(5, s)
	case ColBlob:
		b, _ := v.Blob()
		w.WriteBytes(6, b)
	}
	return w.Bytes()
}

func unmarshalColValue(data []byte) (ColValue, error) {
	r := wire.NewReader(data)
	var kind ColValueKind
	var v ColValue
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case 1:
			kind = ColValueKind(f.Varint)
		case 2:
			v = ColInt(wire.ZigzagToInt64(f.Varint))
		case 3:
			v = ColDouble(floatFromBitsLE(f.Fixed))
		case 4:
			v = ColBool(f.Varint != 0)
		case 5:
			v = ColStr(string(f.Bytes))
		case 6:
			v = ColBlobValue(f.Bytes)
		}
	}
	if kind == ColNull {
		return ColNullValue(), nil
	}
	return v, nil
}
