// Package plainbuffer implements the PlainBuffer (PB) wire format: a
// stream-oriented, CRC-8 checked, tag-length-value binary encoding for
// rows, cells, and primary keys (spec §4.2). Encoding is byte-exact
// because the service validates the embedded checksums; decoding detects
// corruption before any row is handed back to the caller.
package plainbuffer

// HeaderMagic is the 4-byte little-endian header every PlainBuffer-encoded
// batch may begin with.
const HeaderMagic uint32 = 0x00000075

// Tag bytes (spec §4.2.1).
const (
	TagRowPK           byte = 0x01
	TagRowData         byte = 0x02
	TagCell            byte = 0x03
	TagCellName        byte = 0x04
	TagCellValue       byte = 0x05
	TagCellType        byte = 0x06 // cell update-type, update-row only
	TagCellTimestamp   byte = 0x07
	TagDeleteRowMarker byte = 0x08
	TagRowChecksum     byte = 0x09
	TagCellChecksum    byte = 0x0A
)

// Value-type bytes (spec §4.2.1).
const (
	VtInteger       byte = 0x00
	VtDouble        byte = 0x01
	VtBoolean       byte = 0x02
	VtString        byte = 0x03
	VtNull          byte = 0x06
	VtBlob          byte = 0x07
	VtInfMin        byte = 0x09
	VtInfMax        byte = 0x0A
	VtAutoIncrement byte = 0x0B
)

// Cell update-type bytes, used only on data cells of UpdateRow requests.
const (
	UpdateDeleteAllVersions byte = 0x01
	UpdateDeleteOneVersion  byte = 0x03
	UpdateIncrement         byte = 0x04
)

// WriteFlags are the write-side option bits from spec §4.2.1.
type WriteFlags uint8

const (
	WithHeader      WriteFlags = 1 << 0
	WithRowChecksum WriteFlags = 1 << 1
)

func (f WriteFlags) has(bit WriteFlags) bool { return f&bit != 0 }

// DefaultFlags is what every real request uses: a batch header plus a
// checksum on every row, matching the scenarios in spec §8.3.
const DefaultFlags = WithHeader | WithRowChecksum
