package plainbuffer

import "github.com/go-tablestore/tablestore/model"

func valuePayloadSize(typeByte byte, payload []byte) int {
	_ = typeByte
	return 4 + 1 + len(payload) // length prefix + type byte + payload
}

func cellSize(name string, typeByte byte, payload []byte, hasUpdateType, hasTimestamp bool) int {
	n := 1 // TAG_CELL
	n += 1 + 4 + len(name)
	n += 1 + valuePayloadSize(typeByte, payload)
	if hasUpdateType {
		n += 1 + 1
	}
	if hasTimestamp {
		n += 1 + 8
	}
	n += 1 + 1 // TAG_CELL_CHECKSUM + byte
	return n
}

// ComputeRowSize returns the exact number of bytes EncodeRow(row, flags)
// would produce, without actually encoding anything (spec §4.2.8). A
// mismatch between this and the real encoded length is a programmer error.
func ComputeRowSize(row model.Row, flags WriteFlags) int {
	n := 0
	if flags.has(WithHeader) {
		n += 4
	}
	n += 1 // TAG_ROW_PK
	for _, pk := range row.PK {
		typeByte, payload, err := pkValueTypeAndPayload(pk.Value)
		if err != nil {
			continue
		}
		n += cellSize(pk.Name, typeByte, payload, false, false)
	}
	if len(row.Columns) > 0 {
		n += 1 // TAG_ROW_DATA
		for _, col := range row.Columns {
			typeByte, payload, err := colValueTypeAndPayload(col.Value)
			if err != nil {
				continue
			}
			n += cellSize(col.Name, typeByte, payload, col.UpdateType != model.UpdateNone, col.Timestamp != nil)
		}
	}
	if row.Deleted {
		n += 1 // TAG_DELETE_ROW_MARKER
	}
	if flags.has(WithRowChecksum) {
		n += 1 + 1 // TAG_ROW_CHECKSUM + byte
	}
	return n
}

// ComputeRowsSize returns the exact number of bytes EncodeRows(rows, flags)
// would produce: one shared header (if requested) followed by each row's
// body, every row checksummed regardless of flags (see EncodeRows).
func ComputeRowsSize(rows []model.Row, flags WriteFlags) int {
	n := 0
	if flags.has(WithHeader) {
		n += 4
	}
	bodyFlags := (flags &^ WithHeader) | WithRowChecksum
	for _, row := range rows {
		n += ComputeRowSize(row, bodyFlags)
	}
	return n
}
