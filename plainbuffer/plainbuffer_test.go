package plainbuffer

import (
	"bytes"
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"testing"

	"github.com/go-test/deep"

	"github.com/go-tablestore/tablestore/model"
)

// Scenario S1 (spec §8.3): a single-column string primary key, encoded
// WITH_HEADER|WITH_ROW_CHECKSUM, must byte-match the golden fixture.
func TestEncodeRow_S1PrimaryKeyFixture(t *testing.T) {
	row := model.NewRow([]model.PrimaryKeyColumn{
		{Name: "user_id", Value: model.PkStr("0005358A-DCAF-665E-EECF-D9935E821B87")},
	}, nil)

	got, err := EncodeRow(row, DefaultFlags)
	if err != nil {
		t.Fatalf("EncodeRow: %v", err)
	}
	want, _ := hex.DecodeString("7500000001030407000000757365725f69640529000000032400000030303035333538412d444341462d363635452d454543462d4439393335453832314238370ac80945")
	if !bytes.Equal(got, want) {
		t.Fatalf("EncodeRow mismatch:\n got  %x\n want %x", got, want)
	}
	if len(got) != 68 {
		t.Errorf("len(got) = %d, want 68", len(got))
	}
	if got[len(got)-2] != 0x09 || got[len(got)-1] != 0x45 {
		t.Errorf("trailing bytes = %02x %02x, want 09 45", got[len(got)-2], got[len(got)-1])
	}

	if size := ComputeRowSize(row, DefaultFlags); size != len(got) {
		t.Errorf("ComputeRowSize = %d, want %d", size, len(got))
	}
}

// Scenario S2 (spec §8.3): a single-column row with one data column must
// match the golden MD5.
func TestEncodeRow_S2SingleColumnRow(t *testing.T) {
	ts := int64(1742378007415)
	row := model.NewRow(
		[]model.PrimaryKeyColumn{
			{Name: "school_id", Value: model.PkStr("2")},
			{Name: "id", Value: model.PkInt(1742378007415000)},
		},
		[]model.DataColumn{
			{Name: "name", Value: model.ColStr("School-A"), Timestamp: &ts},
		},
	)

	got, err := EncodeRow(row, DefaultFlags)
	if err != nil {
		t.Fatalf("EncodeRow: %v", err)
	}
	sum := md5.Sum(got)
	if got, want := base64.StdEncoding.EncodeToString(sum[:]), "LkUq5OPGrWhSyrC7qenr2A=="; got != want {
		t.Errorf("md5 = %s, want %s", got, want)
	}
	if size := ComputeRowSize(row, DefaultFlags); size != len(got) {
		t.Errorf("ComputeRowSize = %d, want %d", size, len(got))
	}
}

// Scenario S3 (spec §8.3): a row without data columns must match the
// golden MD5.
func TestEncodeRow_S3RowWithoutDataColumns(t *testing.T) {
	row := model.NewRow([]model.PrimaryKeyColumn{
		{Name: "school_id", Value: model.PkStr("1")},
		{Name: "id", Value: model.PkInt(1742373697699000)},
	}, nil)

	got, err := EncodeRow(row, DefaultFlags)
	if err != nil {
		t.Fatalf("EncodeRow: %v", err)
	}
	sum := md5.Sum(got)
	if got, want := base64.StdEncoding.EncodeToString(sum[:]), "gpADtIzJpJRgXgSMKOUHTQ=="; got != want {
		t.Errorf("md5 = %s, want %s", got, want)
	}
}

func roundTripRow(t *testing.T, row model.Row) model.Row {
	t.Helper()
	encoded, err := EncodeRow(row, DefaultFlags)
	if err != nil {
		t.Fatalf("EncodeRow: %v", err)
	}
	if size := ComputeRowSize(row, DefaultFlags); size != len(encoded) {
		t.Errorf("ComputeRowSize = %d, want %d", size, len(encoded))
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return decoded
}

func TestRoundTrip_StringIntBlobRow(t *testing.T) {
	ts := int64(1700000000000)
	row := model.NewRow(
		[]model.PrimaryKeyColumn{
			{Name: "pk1", Value: model.PkStr("abc")},
			{Name: "pk2", Value: model.PkInt(42)},
		},
		[]model.DataColumn{
			{Name: "blob_col", Value: model.ColBlobValue([]byte{0x00, 0xff, 0x10}), Timestamp: &ts},
			{Name: "bool_col", Value: model.ColBool(true)},
			{Name: "double_col", Value: model.ColDouble(3.14159)},
			{Name: "null_col", Value: model.ColNullValue()},
		},
	)

	decoded := roundTripRow(t, row)
	if diff := deep.Equal(rowForCompare(row), rowForCompare(decoded)); diff != nil {
		t.Errorf("round trip mismatch: %v", diff)
	}
}

func TestRoundTrip_DeletedRow(t *testing.T) {
	row := model.Row{
		PK:      []model.PrimaryKeyColumn{{Name: "pk", Value: model.PkInt(7)}},
		Deleted: true,
	}
	decoded := roundTripRow(t, row)
	if !decoded.Deleted {
		t.Errorf("decoded.Deleted = false, want true")
	}
}

func TestRoundTrip_UpdateRowCells(t *testing.T) {
	ts := int64(123456)
	row := model.Row{
		PK: []model.PrimaryKeyColumn{{Name: "pk", Value: model.PkInt(1)}},
		Columns: []model.DataColumn{
			{Name: "counter", Value: model.ColInt(1), UpdateType: model.UpdateIncrement},
			{Name: "gone", Value: model.ColNullValue(), UpdateType: model.UpdateDeleteAllVersions},
			{Name: "one_version", Value: model.ColNullValue(), UpdateType: model.UpdateDeleteOneVersion, Timestamp: &ts},
		},
	}
	decoded := roundTripRow(t, row)
	if len(decoded.Columns) != 3 {
		t.Fatalf("len(decoded.Columns) = %d, want 3", len(decoded.Columns))
	}
	wantTypes := []model.UpdateType{model.UpdateIncrement, model.UpdateDeleteAllVersions, model.UpdateDeleteOneVersion}
	for i, c := range decoded.Columns {
		if c.UpdateType != wantTypes[i] {
			t.Errorf("Columns[%d].UpdateType = %v, want %v", i, c.UpdateType, wantTypes[i])
		}
	}
	if decoded.Columns[2].Timestamp == nil || *decoded.Columns[2].Timestamp != ts {
		t.Errorf("Columns[2].Timestamp = %v, want %d", decoded.Columns[2].Timestamp, ts)
	}
}

func TestDecode_CorruptedCellChecksumFails(t *testing.T) {
	row := model.NewRow([]model.PrimaryKeyColumn{{Name: "pk", Value: model.PkStr("x")}}, nil)
	encoded, err := EncodeRow(row, DefaultFlags)
	if err != nil {
		t.Fatalf("EncodeRow: %v", err)
	}
	// Flip the cell-checksum byte (second-to-last byte: TAG_ROW_CHECKSUM,
	// checksum -- so flip a byte inside the cell checksum instead).
	corrupted := append([]byte(nil), encoded...)
	corrupted[len(corrupted)-3] ^= 0xFF // cell checksum byte precedes TAG_ROW_CHECKSUM+byte
	if _, err := Decode(corrupted); err == nil {
		t.Fatal("Decode of corrupted payload succeeded, want error")
	}
}

func TestDecode_CorruptedRowChecksumFails(t *testing.T) {
	row := model.NewRow([]model.PrimaryKeyColumn{{Name: "pk", Value: model.PkStr("x")}}, nil)
	encoded, err := EncodeRow(row, DefaultFlags)
	if err != nil {
		t.Fatalf("EncodeRow: %v", err)
	}
	corrupted := append([]byte(nil), encoded...)
	corrupted[len(corrupted)-1] ^= 0xFF
	if _, err := Decode(corrupted); err == nil {
		t.Fatal("Decode of corrupted payload succeeded, want error")
	}
}

func TestEncodeRows_BatchRoundTrip(t *testing.T) {
	rows := []model.Row{
		model.NewRow([]model.PrimaryKeyColumn{{Name: "pk", Value: model.PkInt(1)}}, []model.DataColumn{
			{Name: "c", Value: model.ColStr("a")},
		}),
		model.NewRow([]model.PrimaryKeyColumn{{Name: "pk", Value: model.PkInt(2)}}, nil),
		model.NewRow([]model.PrimaryKeyColumn{{Name: "pk", Value: model.PkInt(3)}}, []model.DataColumn{
			{Name: "c", Value: model.ColInt(99)},
		}),
	}
	encoded, err := EncodeRows(rows, DefaultFlags)
	if err != nil {
		t.Fatalf("EncodeRows: %v", err)
	}
	if size := ComputeRowsSize(rows, DefaultFlags); size != len(encoded) {
		t.Errorf("ComputeRowsSize = %d, want %d", size, len(encoded))
	}
	decoded, err := DecodeRows(encoded)
	if err != nil {
		t.Fatalf("DecodeRows: %v", err)
	}
	if len(decoded) != len(rows) {
		t.Fatalf("len(decoded) = %d, want %d", len(decoded), len(rows))
	}
	for i := range rows {
		if diff := deep.Equal(rowForCompare(rows[i]), rowForCompare(decoded[i])); diff != nil {
			t.Errorf("row %d mismatch: %v", i, diff)
		}
	}
}

// rowForCompare normalizes a Row for deep.Equal, since model.Row holds
// unexported fields inside PkValue/ColValue that deep.Equal cannot see
// through directly; comparing the exported projection is sufficient here.
func rowForCompare(r model.Row) map[string]interface{} {
	out := map[string]interface{}{"deleted": r.Deleted}
	pk := make([]string, len(r.PK))
	for i, c := range r.PK {
		pk[i] = c.Name + ":" + pkValueString(c.Value)
	}
	out["pk"] = pk
	cols := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		cols[i] = c.Name + ":" + colValueString(c.Value)
	}
	out["columns"] = cols
	return out
}

func pkValueString(v model.PkValue) string {
	switch v.Kind() {
	case model.PkInteger:
		i, _ := v.Int()
		return "int:" + strconv.FormatInt(i, 10)
	case model.PkString:
		s, _ := v.Str()
		return "str:" + s
	case model.PkBinary:
		b, _ := v.Bytes()
		return "bin:" + string(b)
	default:
		return v.Kind().String()
	}
}

func colValueString(v model.ColValue) string {
	switch v.Kind() {
	case model.ColString:
		s, _ := v.Str()
		return "str:" + s
	case model.ColInteger:
		i, _ := v.Int()
		return "int:" + strconv.FormatInt(i, 10)
	case model.ColBlob:
		b, _ := v.Blob()
		return "blob:" + string(b)
	default:
		return v.Kind().String()
	}
}
