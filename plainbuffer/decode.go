package plainbuffer

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/go-tablestore/tablestore/crc8"
	"github.com/go-tablestore/tablestore/model"
	"github.com/go-tablestore/tablestore/tserrors"
)

func readByte(r *bytes.Reader) (byte, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, &tserrors.IoError{Err: err}
	}
	return b, nil
}

func readUint32LE(r *bytes.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, &tserrors.IoError{Err: err}
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func readUint64LE(r *bytes.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, &tserrors.IoError{Err: err}
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func readValue(r *bytes.Reader) (byte, []byte, error) {
	length, err := readUint32LE(r)
	if err != nil {
		return 0, nil, err
	}
	if length < 1 {
		return 0, nil, tserrors.NewPlainBufferError("cell value length %d is too small to hold a type byte", length)
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return 0, nil, &tserrors.IoError{Err: err}
	}
	return data[0], data[1:], nil
}

type parsedCell struct {
	name       string
	typeByte   byte
	payload    []byte
	updateType *byte
	timestamp  *int64
}

// parseCell reads a cell's body, assuming TAG_CELL has already been
// consumed. Every cell must end with TAG_CELL_CHECKSUM (spec §4.2.7); a
// mismatched checksum surfaces PlainBufferError without handing back any
// partial data.
func parseCell(r *bytes.Reader) (parsedCell, error) {
	var c parsedCell
	crc := byte(0)
	haveName, haveValue := false, false

	for {
		tag, err := readByte(r)
		if err != nil {
			return parsedCell{}, err
		}
		switch tag {
		case TagCellName:
			l, err := readUint32LE(r)
			if err != nil {
				return parsedCell{}, err
			}
			name := make([]byte, l)
			if _, err := io.ReadFull(r, name); err != nil {
				return parsedCell{}, &tserrors.IoError{Err: err}
			}
			c.name = string(name)
			crc = crc8.Bytes(crc, name)
			haveName = true
		case TagCellValue:
			tb, payload, err := readValue(r)
			if err != nil {
				return parsedCell{}, err
			}
			c.typeByte = tb
			c.payload = payload
			crc = crc8.Byte(crc, tb)
			crc = crc8.Bytes(crc, payload)
			haveValue = true
		case TagCellType:
			b, err := readByte(r)
			if err != nil {
				return parsedCell{}, err
			}
			c.updateType = &b
			crc = crc8.Byte(crc, b)
		case TagCellTimestamp:
			ts, err := readUint64LE(r)
			if err != nil {
				return parsedCell{}, err
			}
			tsi := int64(ts)
			c.timestamp = &tsi
			crc = crc8.Uint64(crc, ts)
		case TagCellChecksum:
			sum, err := readByte(r)
			if err != nil {
				return parsedCell{}, err
			}
			if !haveName || !haveValue {
				return parsedCell{}, tserrors.NewPlainBufferError("cell ended without both a name and a value")
			}
			if sum != crc {
				return parsedCell{}, tserrors.NewPlainBufferError("cell checksum mismatch: got %#x, want %#x", sum, crc)
			}
			return c, nil
		default:
			return parsedCell{}, tserrors.NewPlainBufferError("unexpected tag %#x inside cell", tag)
		}
	}
}

// consumeHeaderIfPresent reports whether the next 4 bytes of r are the PlainBuffer
// header magic, consuming them if so.
func consumeHeaderIfPresent(r *bytes.Reader) (bool, error) {
	peek := make([]byte, 4)
	n, err := io.ReadFull(r, peek)
	if err == io.ErrUnexpectedEOF || (err == nil && n < 4) {
		// Too short to be a header or a row; let the row parser report it.
		if _, serr := r.Seek(int64(-n), io.SeekCurrent); serr != nil {
			return false, &tserrors.IoError{Err: serr}
		}
		return false, nil
	}
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, &tserrors.IoError{Err: err}
	}
	if binary.LittleEndian.Uint32(peek) == HeaderMagic {
		return true, nil
	}
	if _, serr := r.Seek(-4, io.SeekCurrent); serr != nil {
		return false, &tserrors.IoError{Err: serr}
	}
	return false, nil
}

// decodeRowBody reads one row, starting at TAG_ROW_PK and ending either at
// a TAG_ROW_CHECKSUM tag or end-of-stream (for a row encoded without
// WithRowChecksum). Returns io.EOF if there is nothing left to read at all.
func decodeRowBody(r *bytes.Reader) (model.Row, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return model.Row{}, io.EOF
	}
	if tag != TagRowPK {
		return model.Row{}, tserrors.NewPlainBufferError("expected TAG_ROW_PK (%#x) to start a row, got %#x", TagRowPK, tag)
	}

	var row model.Row
	rowCrc := byte(0)
	inData := false

	for {
		tag, err := r.ReadByte()
		if err != nil {
			// Row ended at EOF with no checksum: valid only when the row
			// was encoded without WithRowChecksum.
			return row, nil
		}
		switch tag {
		case TagRowData:
			inData = true
		case TagCell:
			cell, err := parseCell(r)
			if err != nil {
				return model.Row{}, err
			}
			if !inData {
				v, err := toPkValue(cell.typeByte, cell.payload)
				if err != nil {
					return model.Row{}, err
				}
				row.PK = append(row.PK, model.PrimaryKeyColumn{Name: cell.name, Value: v})
			} else {
				v, err := toColValue(cell.typeByte, cell.payload)
				if err != nil {
					return model.Row{}, err
				}
				dc := model.DataColumn{Name: cell.name, Value: v, Timestamp: cell.timestamp}
				if cell.updateType != nil {
					ut, err := toUpdateType(*cell.updateType)
					if err != nil {
						return model.Row{}, err
					}
					dc.UpdateType = ut
				}
				row.Columns = append(row.Columns, dc)
			}
			cellCrc := crc8.Bytes(0, []byte(cell.name))
			cellCrc = crc8.Byte(cellCrc, cell.typeByte)
			cellCrc = crc8.Bytes(cellCrc, cell.payload)
			if cell.updateType != nil {
				cellCrc = crc8.Byte(cellCrc, *cell.updateType)
			}
			if cell.timestamp != nil {
				cellCrc = crc8.Uint64(cellCrc, uint64(*cell.timestamp))
			}
			rowCrc = crc8.Byte(rowCrc, cellCrc)
		case TagDeleteRowMarker:
			row.Deleted = true
		case TagRowChecksum:
			sum, err := readByte(r)
			if err != nil {
				return model.Row{}, err
			}
			deletedByte := byte(0)
			if row.Deleted {
				deletedByte = 1
			}
			expect := crc8.Byte(rowCrc, deletedByte)
			if sum != expect {
				return model.Row{}, tserrors.NewPlainBufferError("row checksum mismatch: got %#x, want %#x", sum, expect)
			}
			return row, nil
		default:
			return model.Row{}, tserrors.NewPlainBufferError("unexpected tag %#x in row", tag)
		}
	}
}

// Decode reads a single PlainBuffer-encoded row, consuming the header if
// present (spec §4.2.7).
func Decode(data []byte) (model.Row, error) {
	r := bytes.NewReader(data)
	if _, err := consumeHeaderIfPresent(r); err != nil {
		return model.Row{}, err
	}
	row, err := decodeRowBody(r)
	if errors.Is(err, io.EOF) {
		return model.Row{}, tserrors.NewPlainBufferError("empty PlainBuffer payload: no row present")
	}
	return row, err
}

// DecodeRows reads every row from a PlainBuffer-encoded batch, consuming the
// shared header if present. Consecutive rows in a batch must each end with
// TAG_ROW_CHECKSUM, since that tag is the only delimiter between them (see
// EncodeRows).
func DecodeRows(data []byte) ([]model.Row, error) {
	r := bytes.NewReader(data)
	if _, err := consumeHeaderIfPresent(r); err != nil {
		return nil, err
	}
	var rows []model.Row
	for {
		row, err := decodeRowBody(r)
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}
