package srm

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/go-tablestore/tablestore/crc8"
)

// buildPayload is a minimal test-only SRM encoder mirroring spec §4.3,
// used to exercise Decode against known-good (and then corrupted) bytes.
func buildPayload(t *testing.T, pkNames, dataNames []string, rows [][]fieldValue) []byte {
	t.Helper()

	names := append(append([]string{}, pkNames...), dataNames...)
	var nameBlock bytes.Buffer
	for _, n := range names {
		var l [2]byte
		binary.LittleEndian.PutUint16(l[:], uint16(len(n)))
		nameBlock.Write(l[:])
		nameBlock.WriteString(n)
	}

	var rowBlock bytes.Buffer
	for _, row := range rows {
		rowBlock.WriteByte(tagRow)
		for _, fv := range row {
			rowBlock.WriteByte(fv.typeByte)
			rowBlock.Write(fv.payload)
		}
	}

	headerLen := 4 + 4 + 4 + 4 + 4
	dataOffset := uint32(headerLen + nameBlock.Len() + 7) // after options block
	optionOffset := uint32(headerLen + nameBlock.Len())

	var out bytes.Buffer
	writeU32 := func(v uint32) {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		out.Write(b[:])
	}
	writeU32(ApiVersion)
	writeU32(dataOffset)
	writeU32(optionOffset)
	writeU32(uint32(len(pkNames)))
	writeU32(uint32(len(dataNames)))
	out.Write(nameBlock.Bytes())

	out.WriteByte(tagEntirePK)
	out.WriteByte(0)
	out.WriteByte(tagRowCount)
	var rc [4]byte
	binary.LittleEndian.PutUint32(rc[:], uint32(len(rows)))
	out.Write(rc[:])

	out.Write(rowBlock.Bytes())

	out.WriteByte(tagChecksum)
	crc := crc8.Bytes(0, out.Bytes())
	out.WriteByte(crc)

	return out.Bytes()
}

type fieldValue struct {
	typeByte byte
	payload  []byte
}

func intField(v int64) fieldValue {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return fieldValue{TypeInt64, b}
}

func stringField(s string) fieldValue {
	var buf bytes.Buffer
	var l [4]byte
	binary.LittleEndian.PutUint32(l[:], uint32(len(s)))
	buf.Write(l[:])
	buf.WriteString(s)
	return fieldValue{TypeString, buf.Bytes()}
}

func boolField(b bool) fieldValue {
	if b {
		return fieldValue{TypeBool, []byte{1}}
	}
	return fieldValue{TypeBool, []byte{0}}
}

// Scenario S5 (spec §8.3): pkColumnCount=2, dataColumnCount=3, one row with
// data types LONG, STRING, BOOL.
func TestDecode_S5RoundTrip(t *testing.T) {
	pkNames := []string{"pk1", "pk2"}
	dataNames := []string{"long_col", "string_col", "bool_col"}
	payload := buildPayload(t, pkNames, dataNames, [][]fieldValue{
		{intField(1), stringField("pk2val"), intField(42), stringField("hello"), boolField(true)},
	})

	rows, err := Decode(payload)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	row := rows[0]
	if len(row.PK) != 2 || len(row.Columns) != 3 {
		t.Fatalf("row shape = %d pk, %d cols; want 2, 3", len(row.PK), len(row.Columns))
	}
	if row.PK[0].Name != "pk1" || row.PK[1].Name != "pk2" {
		t.Errorf("pk names = %v", row.PK)
	}
	if i, ok := row.PK[0].Value.Int(); !ok || i != 1 {
		t.Errorf("pk1 = %v, %v, want 1", i, ok)
	}
	if s, ok := row.PK[1].Value.Str(); !ok || s != "pk2val" {
		t.Errorf("pk2 = %v, %v, want pk2val", s, ok)
	}
	if row.Columns[0].Name != "long_col" || row.Columns[1].Name != "string_col" || row.Columns[2].Name != "bool_col" {
		t.Errorf("column names = %v", row.Columns)
	}
	if i, ok := row.Columns[0].Value.Int(); !ok || i != 42 {
		t.Errorf("long_col = %v, %v, want 42", i, ok)
	}
	if s, ok := row.Columns[1].Value.Str(); !ok || s != "hello" {
		t.Errorf("string_col = %v, %v, want hello", s, ok)
	}
	if b, ok := row.Columns[2].Value.Bool(); !ok || !b {
		t.Errorf("bool_col = %v, %v, want true", b, ok)
	}
}

func TestDecode_FlippedChecksumByteFails(t *testing.T) {
	payload := buildPayload(t, []string{"pk1"}, []string{"c"}, [][]fieldValue{
		{intField(1), intField(2)},
	})
	corrupted := append([]byte(nil), payload...)
	corrupted[len(corrupted)-1] ^= 0xFF
	if _, err := Decode(corrupted); err == nil {
		t.Fatal("Decode of payload with flipped checksum byte succeeded, want error")
	}
}

func TestDecode_BadMagicFails(t *testing.T) {
	payload := buildPayload(t, []string{"pk1"}, nil, [][]fieldValue{{intField(1)}})
	corrupted := append([]byte(nil), payload...)
	corrupted[0] ^= 0xFF
	if _, err := Decode(corrupted); err == nil {
		t.Fatal("Decode with corrupted magic succeeded, want error")
	}
}

func TestDecode_UnknownTypeByteFails(t *testing.T) {
	payload := buildPayload(t, []string{"pk1"}, nil, [][]fieldValue{
		{{typeByte: 0xEE, payload: nil}},
	})
	if _, err := Decode(payload); err == nil {
		t.Fatal("Decode with unknown field type succeeded, want error")
	}
}
