package plainbuffer

import (
	"bytes"
	"encoding/binary"

	"github.com/go-tablestore/tablestore/crc8"
	"github.com/go-tablestore/tablestore/model"
)

func writeHeader(buf *bytes.Buffer) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], HeaderMagic)
	buf.Write(b[:])
}

func writeUint32LE(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeUint64LE(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

// writeValue writes the cell-value framing: 4-byte LE length of
// (typeByte + payload), then typeByte, then payload.
func writeValue(buf *bytes.Buffer, typeByte byte, payload []byte) {
	writeUint32LE(buf, uint32(1+len(payload)))
	buf.WriteByte(typeByte)
	buf.Write(payload)
}

// writeCell writes one complete cell (TAG_CELL .. TAG_CELL_CHECKSUM) and
// returns its checksum byte, which the caller folds into the row checksum.
func writeCell(buf *bytes.Buffer, name string, typeByte byte, payload []byte, updateType *byte, timestamp *int64) byte {
	buf.WriteByte(TagCell)

	buf.WriteByte(TagCellName)
	writeUint32LE(buf, uint32(len(name)))
	buf.WriteString(name)

	buf.WriteByte(TagCellValue)
	writeValue(buf, typeByte, payload)

	crc := crc8.Bytes(0, []byte(name))
	crc = crc8.Byte(crc, typeByte)
	crc = crc8.Bytes(crc, payload)

	if updateType != nil {
		buf.WriteByte(TagCellType)
		buf.WriteByte(*updateType)
		crc = crc8.Byte(crc, *updateType)
	}
	if timestamp != nil {
		buf.WriteByte(TagCellTimestamp)
		writeUint64LE(buf, uint64(*timestamp))
		crc = crc8.Uint64(crc, uint64(*timestamp))
	}

	buf.WriteByte(TagCellChecksum)
	buf.WriteByte(crc)
	return crc
}

// writeRowBody writes one row's PK section, data section, optional delete
// marker, and (if flags requests it) row checksum. It does not write the
// batch header; callers needing a header call writeHeader once up front.
func writeRowBody(buf *bytes.Buffer, row model.Row, flags WriteFlags) error {
	if err := row.Validate(); err != nil {
		return err
	}

	rowCrc := byte(0)

	buf.WriteByte(TagRowPK)
	for _, pk := range row.PK {
		typeByte, payload, err := pkValueTypeAndPayload(pk.Value)
		if err != nil {
			return err
		}
		cellCrc := writeCell(buf, pk.Name, typeByte, payload, nil, nil)
		rowCrc = crc8.Byte(rowCrc, cellCrc)
	}

	if len(row.Columns) > 0 {
		buf.WriteByte(TagRowData)
		for _, col := range row.Columns {
			typeByte, payload, err := colValueTypeAndPayload(col.Value)
			if err != nil {
				return err
			}
			var updatePtr *byte
			if col.UpdateType != model.UpdateNone {
				b := updateTypeByte(col.UpdateType)
				updatePtr = &b
			}
			cellCrc := writeCell(buf, col.Name, typeByte, payload, updatePtr, col.Timestamp)
			rowCrc = crc8.Byte(rowCrc, cellCrc)
		}
	}

	if row.Deleted {
		buf.WriteByte(TagDeleteRowMarker)
	}

	if flags.has(WithRowChecksum) {
		deletedByte := byte(0)
		if row.Deleted {
			deletedByte = 1
		}
		rowCrc = crc8.Byte(rowCrc, deletedByte)
		buf.WriteByte(TagRowChecksum)
		buf.WriteByte(rowCrc)
	}
	return nil
}

// EncodeRow encodes a single row, per spec §4.2.5.
func EncodeRow(row model.Row, flags WriteFlags) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.Grow(ComputeRowSize(row, flags))
	if flags.has(WithHeader) {
		writeHeader(buf)
	}
	if err := writeRowBody(buf, row, flags); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeRows encodes a batch of rows behind a single shared header (per
// spec §4.2.6). Every row in a batch is checksummed regardless of flags,
// since the row checksum is also the only delimiter between consecutive
// rows in the stream; WithRowChecksum is implied.
func EncodeRows(rows []model.Row, flags WriteFlags) ([]byte, error) {
	buf := &bytes.Buffer{}
	if flags.has(WithHeader) {
		writeHeader(buf)
	}
	rowFlags := flags | WithRowChecksum
	for _, row := range rows {
		if err := writeRowBody(buf, row, rowFlags); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
