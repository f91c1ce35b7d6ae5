package plainbuffer

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/go-tablestore/tablestore/model"
	"github.com/go-tablestore/tablestore/tserrors"
)

func int64LEBytes(v int64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return b
}

func float64LEBytes(v float64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
	return b
}

func lenPrefixed(data []byte) []byte {
	out := make([]byte, 4+len(data))
	binary.LittleEndian.PutUint32(out, uint32(len(data)))
	copy(out[4:], data)
	return out
}

// pkValueTypeAndPayload returns the wire type byte and payload (everything
// after the type byte within the cell-value framing) for a PkValue.
func pkValueTypeAndPayload(v model.PkValue) (byte, []byte, error) {
	switch v.Kind() {
	case model.PkInteger:
		i, _ := v.Int()
		return VtInteger, int64LEBytes(i), nil
	case model.PkString:
		s, _ := v.Str()
		return VtString, lenPrefixed([]byte(s)), nil
	case model.PkBinary:
		b, _ := v.Bytes()
		return VtBlob, lenPrefixed(b), nil
	case model.PkInfMin:
		return VtInfMin, nil, nil
	case model.PkInfMax:
		return VtInfMax, nil, nil
	case model.PkAutoIncrement:
		return VtAutoIncrement, nil, nil
	default:
		return 0, nil, tserrors.NewPlainBufferError("unsupported primary key value kind %v", v.Kind())
	}
}

// colValueTypeAndPayload returns the wire type byte and payload for a
// ColValue.
func colValueTypeAndPayload(v model.ColValue) (byte, []byte, error) {
	switch v.Kind() {
	case model.ColNull:
		return VtNull, nil, nil
	case model.ColInteger:
		i, _ := v.Int()
		return VtInteger, int64LEBytes(i), nil
	case model.ColDouble:
		f, _ := v.Double()
		return VtDouble, float64LEBytes(f), nil
	case model.ColBoolean:
		b, _ := v.Bool()
		if b {
			return VtBoolean, []byte{1}, nil
		}
		return VtBoolean, []byte{0}, nil
	case model.ColString:
		s, _ := v.Str()
		return VtString, lenPrefixed([]byte(s)), nil
	case model.ColBlob:
		b, _ := v.Blob()
		return VtBlob, lenPrefixed(b), nil
	case model.ColInfMin:
		return VtInfMin, nil, nil
	case model.ColInfMax:
		return VtInfMax, nil, nil
	default:
		return 0, nil, tserrors.NewPlainBufferError("unsupported column value kind %v", v.Kind())
	}
}

func updateTypeByte(u model.UpdateType) byte {
	switch u {
	case model.UpdateDeleteAllVersions:
		return UpdateDeleteAllVersions
	case model.UpdateDeleteOneVersion:
		return UpdateDeleteOneVersion
	case model.UpdateIncrement:
		return UpdateIncrement
	default:
		return 0
	}
}

func toUpdateType(b byte) (model.UpdateType, error) {
	switch b {
	case UpdateDeleteAllVersions:
		return model.UpdateDeleteAllVersions, nil
	case UpdateDeleteOneVersion:
		return model.UpdateDeleteOneVersion, nil
	case UpdateIncrement:
		return model.UpdateIncrement, nil
	default:
		return model.UpdateNone, tserrors.NewPlainBufferError("unknown cell update type %#x", b)
	}
}

func innerLenPrefixed(payload []byte) ([]byte, error) {
	if len(payload) < 4 {
		return nil, tserrors.NewPlainBufferError("truncated length-prefixed value")
	}
	l := binary.LittleEndian.Uint32(payload)
	if uint32(len(payload)-4) != l {
		return nil, tserrors.NewPlainBufferError("length-prefixed value size mismatch: header says %d, have %d", l, len(payload)-4)
	}
	return payload[4:], nil
}

func toPkValue(typeByte byte, payload []byte) (model.PkValue, error) {
	switch typeByte {
	case VtInteger:
		if len(payload) != 8 {
			return model.PkValue{}, tserrors.NewPlainBufferError("integer pk value must be 8 bytes, got %d", len(payload))
		}
		return model.PkInt(int64(binary.LittleEndian.Uint64(payload))), nil
	case VtString:
		data, err := innerLenPrefixed(payload)
		if err != nil {
			return model.PkValue{}, err
		}
		if !utf8.Valid(data) {
			return model.PkValue{}, &tserrors.FromUtf8Error{Field: "primary key value"}
		}
		return model.PkStr(string(data)), nil
	case VtBlob:
		data, err := innerLenPrefixed(payload)
		if err != nil {
			return model.PkValue{}, err
		}
		return model.PkBytes(data), nil
	case VtInfMin:
		return model.PkInfMinValue(), nil
	case VtInfMax:
		return model.PkInfMaxValue(), nil
	case VtAutoIncrement:
		return model.PkAutoIncrementValue(), nil
	default:
		return model.PkValue{}, tserrors.NewPlainBufferError("unknown primary key value type %#x", typeByte)
	}
}

func toColValue(typeByte byte, payload []byte) (model.ColValue, error) {
	switch typeByte {
	case VtNull:
		return model.ColNullValue(), nil
	case VtInteger:
		if len(payload) != 8 {
			return model.ColValue{}, tserrors.NewPlainBufferError("integer column value must be 8 bytes, got %d", len(payload))
		}
		return model.ColInt(int64(binary.LittleEndian.Uint64(payload))), nil
	case VtDouble:
		if len(payload) != 8 {
			return model.ColValue{}, tserrors.NewPlainBufferError("double column value must be 8 bytes, got %d", len(payload))
		}
		return model.ColDouble(math.Float64frombits(binary.LittleEndian.Uint64(payload))), nil
	case VtBoolean:
		if len(payload) != 1 {
			return model.ColValue{}, tserrors.NewPlainBufferError("boolean column value must be 1 byte, got %d", len(payload))
		}
		return model.ColBool(payload[0] != 0), nil
	case VtString:
		data, err := innerLenPrefixed(payload)
		if err != nil {
			return model.ColValue{}, err
		}
		if !utf8.Valid(data) {
			return model.ColValue{}, &tserrors.FromUtf8Error{Field: "column value"}
		}
		return model.ColStr(string(data)), nil
	case VtBlob:
		data, err := innerLenPrefixed(payload)
		if err != nil {
			return model.ColValue{}, err
		}
		return model.ColBlobValue(data), nil
	case VtInfMin:
		return model.ColInfMinValue(), nil
	case VtInfMax:
		return model.ColInfMaxValue(), nil
	default:
		return model.ColValue{}, tserrors.NewPlainBufferError("unknown column value type %#x", typeByte)
	}
}
