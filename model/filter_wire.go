package model

import "github.com/go-tablestore/tablestore/wire"

// Marshal encodes f for embedding in a request's FilterBytes field,
// exactly as plainbuffer.EncodeRow gives pb opaque row bytes: pb never
// interprets a Filter's internals (spec §9 design notes).
func (f Filter) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteVarint(1, uint64(f.kind))
	switch f.kind {
	case FilterSingleColumn:
		w.WriteBytes(2, marshalSingleColumnFilter(f.single))
	case FilterComposite:
		w.WriteVarint(3, uint64(f.op))
		for _, c := range f.children {
			w.WriteBytes(4, c.Marshal())
		}
	}
	return w.Bytes()
}

func marshalSingleColumnFilter(s SingleColumnFilter) []byte {
	w := wire.NewWriter()
	w.WriteString(1, s.Column)
	w.WriteVarint(2, uint64(s.Comparator))
	w.WriteBytes(3, marshalColValue(s.Value))
	w.WriteBool(4, s.FilterIfMissing)
	w.WriteBool(5, s.LatestVersionOnly)
	if s.Regex != nil {
		rw := wire.NewWriter()
		rw.WriteString(1, s.Regex.Regex)
		rw.WriteString(2, s.Regex.CastType)
		rw.WriteString(3, s.Regex.DestColumn)
		w.WriteMessage(6, rw.Bytes())
	}
	return w.Bytes()
}

// UnmarshalFilter decodes a byte string produced by Filter.Marshal.
func UnmarshalFilter(data []byte) (Filter, error) {
	r := wire.NewReader(data)
	var kind FilterKind
	var single []byte
	var op CompositeOp
	var children []Filter
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case 1:
			kind = FilterKind(f.Varint)
		case 2:
			single = f.Bytes
		case 3:
			op = CompositeOp(f.Varint)
		case 4:
			c, err := UnmarshalFilter(f.Bytes)
			if err != nil {
				return Filter{}, err
			}
			children = append(children, c)
		}
	}
	switch kind {
	case FilterComposite:
		return Composite(op, children...), nil
	default:
		sf, err := unmarshalSingleColumnFilter(single)
		if err != nil {
			return Filter{}, err
		}
		return SingleColumn(sf), nil
	}
}

func unmarshalSingleColumnFilter(data []byte) (SingleColumnFilter, error) {
	var s SingleColumnFilter
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case 1:
			s.Column = string(f.Bytes)
		case 2:
			s.Comparator = Comparator(f.Varint)
		case 3:
			v, err := unmarshalColValue(f.Bytes)
			if err != nil {
				return SingleColumnFilter{}, err
			}
			s.Value = v
		case 4:
			s.FilterIfMissing = f.Varint != 0
		case 5:
			s.LatestVersionOnly = f.Varint != 0
		case 6:
			rr := wire.NewReader(f.Bytes)
			s.Regex = &RegexRule{}
			for {
				rf, err := rr.Next()
				if err != nil {
					break
				}
				switch rf.Number {
				case 1:
					s.Regex.Regex = string(rf.Bytes)
				case 2:
					s.Regex.CastType = string(rf.Bytes)
				case 3:
					s.Regex.DestColumn = string(rf.Bytes)
				}
			}
		}
	}
	return s, nil
}
