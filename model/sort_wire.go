package model

import "github.com/go-tablestore/tablestore/wire"

// MarshalSorters concatenates each sorter's encoding as a sequence of
// length-delimited fields, the shape pb.SearchRequest.SortBytes expects.
func MarshalSorters(sorters []Sorter) []byte {
	w := wire.NewWriter()
	for _, s := range sorters {
		w.WriteBytes(1, s.marshal())
	}
	return w.Bytes()
}

func (s Sorter) marshal() []byte {
	w := wire.NewWriter()
	w.WriteVarint(1, uint64(s.Kind))
	w.WriteString(2, s.FieldName)
	w.WriteVarint(3, uint64(s.Order))
	for _, p := range s.GeoPoints {
		pw := wire.NewWriter()
		pw.WriteFixed64(1, float64Bits(p.Lat))
		pw.WriteFixed64(2, float64Bits(p.Lon))
		w.WriteMessage(4, pw.Bytes())
	}
	w.WriteString(5, s.Mode)
	return w.Bytes()
}

// UnmarshalSorters decodes a sequence produced by MarshalSorters.
func UnmarshalSorters(data []byte) ([]Sorter, error) {
	r := wire.NewReader(data)
	var out []Sorter
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		if f.Number != 1 {
			continue
		}
		s, err := unmarshalSorter(f.Bytes)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func unmarshalSorter(data []byte) (Sorter, error) {
	var s Sorter
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case 1:
			s.Kind = SorterKind(f.Varint)
		case 2:
			s.FieldName = string(f.Bytes)
		case 3:
			s.Order = SortOrder(f.Varint)
		case 4:
			pr := wire.NewReader(f.Bytes)
			var p GeoPoint
			for {
				pf, err := pr.Next()
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
			s.GeoPoints = append(s.GeoPoints, p)
		case 5:
			s.Mode = string(f.Bytes)
		}
	}
	return s, nil
}
