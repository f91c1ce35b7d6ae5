package tsfb

import (
	"testing"

	"github.com/go-tablestore/tablestore/model"
)

func TestEncodeRowProducesNonEmptyBuffer(t *testing.T) {
	row := model.TsRow{
		Measurement: "cpu",
		Datasource:  "host-1",
		Tags:        map[string]string{"region": "us", "az": "a"},
		TimeUs:      1700000000000000,
		Fields: []model.DataColumn{
			{Name: "usage", Value: model.ColDouble(0.42)},
			{Name: "count", Value: model.ColInt(7)},
		},
	}
	buf, err := EncodeRow(row)
	if err != nil {
		t.Fatalf("EncodeRow: %v", err)
	}
	if len(buf) == 0 {
		t.Fatal("EncodeRow produced no bytes")
	}
}

func TestEncodeRowRejectsUnencodableFieldValue(t *testing.T) {
	row := model.TsRow{
		Measurement: "cpu",
		Fields: []model.DataColumn{
			{Name: "bad", Value: model.ColNullValue()},
		},
	}
	if _, err := EncodeRow(row); err == nil {
		t.Fatal("expected an error for a Null field value")
	}
}

func TestEncodeRowTagOrderIsDeterministic(t *testing.T) {
	row := model.TsRow{
		Measurement: "cpu",
		Tags:        map[string]string{"z": "1", "a": "2", "m": "3"},
		Fields:      nil,
	}
	b1, err := EncodeRow(row)
	if err != nil {
		t.Fatalf("EncodeRow: %v", err)
	}
	b2, err := EncodeRow(row)
	if err != nil {
		t.Fatalf("EncodeRow: %v", err)
	}
	if len(b1) != len(b2) {
		t.Fatalf("non-deterministic encoding length: %d vs %d", len(b1), len(b2))
	}
	for i := range b1 {
		if b1[i] != b2[i] {
			t.Fatalf("non-deterministic encoding at byte %d", i)
		}
	}
}
