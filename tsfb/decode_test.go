package tsfb

import (
	"testing"

	"github.com/go-tablestore/tablestore/model"
)

func TestDecodeRowGroupRoundTripsEncodeRow(t *testing.T) {
	row := model.TsRow{
		Measurement: "cpu",
		Datasource:  "host-1",
		Tags:        map[string]string{"region": "us", "az": "a"},
		TimeUs:      1700000000000000,
		Fields: []model.DataColumn{
			{Name: "usage", Value: model.ColDouble(0.42)},
			{Name: "count", Value: model.ColInt(7)},
			{Name: "ok", Value: model.ColBool(true)},
			{Name: "host", Value: model.ColStr("h1")},
			{Name: "blob", Value: model.ColBlobValue([]byte{1, 2, 3})},
		},
	}
	buf, err := EncodeRow(row)
	if err != nil {
		t.Fatalf("EncodeRow: %v", err)
	}
	rows, err := DecodeRowGroup(buf)
	if err != nil {
		t.Fatalf("DecodeRowGroup: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	got := rows[0]
	if got.Measurement != row.Measurement || got.Datasource != row.Datasource || got.TimeUs != row.TimeUs {
		t.Fatalf("row mismatch: %+v", got)
	}
	if len(got.Tags) != len(row.Tags) {
		t.Fatalf("tags mismatch: got %v, want %v", got.Tags, row.Tags)
	}
	for k, v := range row.Tags {
		if got.Tags[k] != v {
			t.Fatalf("tag %q mismatch: got %q, want %q", k, got.Tags[k], v)
		}
	}
	if len(got.Fields) != len(row.Fields) {
		t.Fatalf("fields mismatch: got %d, want %d", len(got.Fields), len(row.Fields))
	}
	for i, f := range row.Fields {
		if got.Fields[i].Name != f.Name {
			t.Fatalf("field %d name mismatch: got %q, want %q", i, got.Fields[i].Name, f.Name)
		}
	}
	if d, _ := got.Fields[0].Value.Double(); d != 0.42 {
		t.Fatalf("usage = %v, want 0.42", d)
	}
	if n, _ := got.Fields[1].Value.Int(); n != 7 {
		t.Fatalf("count = %v, want 7", n)
	}
	if b, _ := got.Fields[2].Value.Bool(); !b {
		t.Fatal("ok = false, want true")
	}
	if s, _ := got.Fields[3].Value.Str(); s != "h1" {
		t.Fatalf("host = %q, want h1", s)
	}
	if blob, _ := got.Fields[4].Value.Blob(); string(blob) != "\x01\x02\x03" {
		t.Fatalf("blob = %v, want [1 2 3]", blob)
	}
}

func TestDecodeRowGroupEmptyInput(t *testing.T) {
	rows, err := DecodeRowGroup(nil)
	if err != nil {
		t.Fatalf("DecodeRowGroup: %v", err)
	}
	if rows != nil {
		t.Fatalf("expected nil rows for empty input, got %v", rows)
	}
}
