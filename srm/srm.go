// Package srm decodes the SimpleRowMatrix (SRM) columnar payload used for
// bulk reads (spec §4.3). The layout is positional: a field-name table
// (primary-key columns first), an options block, a data block of rows,
// and a trailing CRC-8 checksum over everything that precedes it.
package srm

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"

	"github.com/go-tablestore/tablestore/crc8"
	"github.com/go-tablestore/tablestore/model"
	"github.com/go-tablestore/tablestore/tserrors"
)

// ApiVersion is the magic 4-byte little-endian word 'SRM0' that must open
// every SimpleRowMatrix payload.
const ApiVersion uint32 = 0x304D5253

// Per-field type bytes, distinct from PlainBuffer's (spec §4.3).
const (
	TypeInt64  byte = 0x00
	TypeFloat  byte = 0x01
	TypeBool   byte = 0x02
	TypeString byte = 0x03
	TypeNull   byte = 0x06
	TypeBlob   byte = 0x07
)

const (
	tagEntirePK byte = 0x0A
	tagRowCount byte = 0x03
	tagRow      byte = 0x02
	tagChecksum byte = 0x01
)

// Decode parses a complete SimpleRowMatrix payload into rows.
func Decode(data []byte) ([]model.Row, error) {
	if len(data) < 2 {
		return nil, tserrors.NewSrmDecodeError("payload too short: %d bytes", len(data))
	}

	footerCRC := data[len(data)-1]
	footerTag := data[len(data)-2]
	if footerTag != tagChecksum {
		return nil, tserrors.NewSrmDecodeError("expected checksum tag %#x at offset %d, got %#x", tagChecksum, len(data)-2, footerTag)
	}
	computed := crc8.Bytes(0, data[:len(data)-1])
	if computed != footerCRC {
		return nil, tserrors.NewSrmDecodeError("checksum mismatch: got %#x, want %#x", footerCRC, computed)
	}

	r := bytes.NewReader(data)
	apiVersion, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	if apiVersion != ApiVersion {
		return nil, tserrors.NewSrmDecodeError("bad magic: got %#x, want %#x", apiVersion, ApiVersion)
	}
	dataOffset, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	optionOffset, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	pkColumnCount, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	dataColumnCount, err := readUint32(r)
	if err != nil {
		return nil, err
	}

	totalColumns := int(pkColumnCount) + int(dataColumnCount)
	names := make([]string, totalColumns)
	for i := 0; i < totalColumns; i++ {
		name, err := readNamedField(r)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}

	hasEntirePK, rowCount, err := readOptions(data, int(optionOffset))
	if err != nil {
		return nil, err
	}
	_ = hasEntirePK

	return readRows(data, int(dataOffset), rowCount, names, int(pkColumnCount))
}

func readUint32(r *bytes.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, tserrors.NewSrmDecodeError("truncated payload: %v", err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func readNamedField(r *bytes.Reader) (string, error) {
	var l [2]byte
	if _, err := io.ReadFull(r, l[:]); err != nil {
		return "", tserrors.NewSrmDecodeError("truncated field name length: %v", err)
	}
	nameLen := binary.LittleEndian.Uint16(l[:])
	name := make([]byte, nameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return "", tserrors.NewSrmDecodeError("truncated field name: %v", err)
	}
	if !utf8.Valid(name) {
		return "", &tserrors.FromUtf8Error{Field: "srm field name"}
	}
	return string(name), nil
}

func readOptions(data []byte, offset int) (hasEntirePK bool, rowCount uint32, err error) {
	if offset < 0 || offset+2 > len(data) {
		return false, 0, tserrors.NewSrmDecodeError("option offset %d out of bounds", offset)
	}
	r := bytes.NewReader(data[offset:])
	tag, err := r.ReadByte()
	if err != nil || tag != tagEntirePK {
		return false, 0, tserrors.NewSrmDecodeError("expected entire-primary-keys tag %#x at option offset, got %#x", tagEntirePK, tag)
	}
	b, err := r.ReadByte()
	if err != nil {
		return false, 0, tserrors.NewSrmDecodeError("truncated options block: %v", err)
	}
	hasEntirePK = b != 0
	tag2, err := r.ReadByte()
	if err != nil || tag2 != tagRowCount {
		return false, 0, tserrors.NewSrmDecodeError("expected row-count tag %#x in options block, got %#x", tagRowCount, tag2)
	}
	rowCount, err = readUint32(r)
	if err != nil {
		return false, 0, tserrors.NewSrmDecodeError("truncated row count: %v", err)
	}
	return hasEntirePK, rowCount, nil
}

func readRows(data []byte, offset int, rowCount uint32, names []string, pkColumnCount int) ([]model.Row, error) {
	r := bytes.NewReader(data[offset:])
	rows := make([]model.Row, 0, rowCount)
	for i := uint32(0); i < rowCount; i++ {
		tag, err := r.ReadByte()
		if err != nil || tag != tagRow {
			return nil, tserrors.NewSrmDecodeError("expected row tag %#x for row %d, got %#x", tagRow, i, tag)
		}
		var row model.Row
		for col := 0; col < len(names); col++ {
			typeByte, err := r.ReadByte()
			if err != nil {
				return nil, tserrors.NewSrmDecodeError("truncated row %d: %v", i, err)
			}
			isPK := col < pkColumnCount
			if isPK {
				v, err := readPKField(r, typeByte)
				if err != nil {
					return nil, err
				}
				row.PK = append(row.PK, model.PrimaryKeyColumn{Name: names[col], Value: v})
			} else {
				v, err := readDataField(r, typeByte)
				if err != nil {
					return nil, err
				}
				row.Columns = append(row.Columns, model.DataColumn{Name: names[col], Value: v})
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readLenPrefixedBytes(r *bytes.Reader) ([]byte, error) {
	l, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	b := make([]byte, l)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, tserrors.NewSrmDecodeError("truncated field value: %v", err)
	}
	return b, nil
}

func readPKField(r *bytes.Reader, typeByte byte) (model.PkValue, error) {
	switch typeByte {
	case TypeInt64:
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return model.PkValue{}, tserrors.NewSrmDecodeError("truncated int64 field: %v", err)
		}
		return model.PkInt(int64(binary.LittleEndian.Uint64(b[:]))), nil
	case TypeString:
		b, err := readLenPrefixedBytes(r)
		if err != nil {
			return model.PkValue{}, err
		}
		if !utf8.Valid(b) {
			return model.PkValue{}, &tserrors.FromUtf8Error{Field: "srm pk string field"}
		}
		return model.PkStr(string(b)), nil
	case TypeBlob:
		b, err := readLenPrefixedBytes(r)
		if err != nil {
			return model.PkValue{}, err
		}
		return model.PkBytes(b), nil
	default:
		return model.PkValue{}, tserrors.NewSrmDecodeError("unknown primary key field type %#x", typeByte)
	}
}

func readDataField(r *bytes.Reader, typeByte byte) (model.ColValue, error) {
	switch typeByte {
	case TypeInt64:
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return model.ColValue{}, tserrors.NewSrmDecodeError("truncated int64 field: %v", err)
		}
		return model.ColInt(int64(binary.LittleEndian.Uint64(b[:]))), nil
	case TypeFloat:
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return model.ColValue{}, tserrors.NewSrmDecodeError("truncated float64 field: %v", err)
		}
		bits := binary.LittleEndian.Uint64(b[:])
		return model.ColDouble(math.Float64frombits(bits)), nil
	case TypeBool:
		b, err := r.ReadByte()
		if err != nil {
			return model.ColValue{}, tserrors.NewSrmDecodeError("truncated bool field: %v", err)
		}
		return model.ColBool(b != 0), nil
	case TypeString:
		b, err := readLenPrefixedBytes(r)
		if err != nil {
			return model.ColValue{}, err
		}
		if !utf8.Valid(b) {
			return model.ColValue{}, &tserrors.FromUtf8Error{Field: "srm string field"}
		}
		return model.ColStr(string(b)), nil
	case TypeNull:
		return model.ColNullValue(), nil
	case TypeBlob:
		b, err := readLenPrefixedBytes(r)
		if err != nil {
			return model.ColValue{}, err
		}
		return model.ColBlobValue(b), nil
	default:
		return model.ColValue{}, tserrors.NewSrmDecodeError("unknown data field type %#x", typeByte)
	}
}
