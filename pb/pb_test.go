package pb

import (
	"testing"

	"github.com/go-tablestore/tablestore/wire"
)

func TestGetRowRequestMarshal(t *testing.T) {
	req := &GetRowRequest{
		TableName:       "users",
		PrimaryKeyBytes: []byte{1, 2, 3},
		ColumnsToGet:    []string{"name", "age"},
		MaxVersions:     1,
	}
	data := req.Marshal()
	if len(data) == 0 {
		t.Fatal("Marshal produced no bytes")
	}
}

func TestGetRowResponseRoundTrip(t *testing.T) {
	w := wire.NewWriter()
	consumedInner := wire.NewWriter()
	consumedInner.WriteZigzag(1, 1)
	w.WriteMessage(fConsumed, consumedInner.Bytes())
	w.WriteBytes(fRow, []byte{9, 9, 9})

	resp, err := UnmarshalGetRowResponse(w.Bytes())
	if err != nil {
		t.Fatalf("UnmarshalGetRowResponse: %v", err)
	}
	if resp.Consumed.Read != 1 {
		t.Errorf("Consumed.Read = %d, want 1", resp.Consumed.Read)
	}
	if len(resp.RowBytes) != 3 {
		t.Errorf("RowBytes = %v, want 3 bytes", resp.RowBytes)
	}
}

func TestCreateTableRequestMarshal(t *testing.T) {
	req := &CreateTableRequest{
		TableName: "t1",
		PrimaryKey: []PrimaryKeySchemaEntry{
			{Name: "pk1", Type: "STRING"},
		},
		Options:    TableOptions{TimeToLiveSeconds: -1, MaxVersions: 1},
		Throughput: ReservedThroughput{Read: 0, Write: 0},
	}
	data := req.Marshal()
	if len(data) == 0 {
		t.Fatal("Marshal produced no bytes")
	}
}

func TestBatchGetRowRequestMarshal(t *testing.T) {
	req := &BatchGetRowRequest{
		Tables: []TableInBatchGetRow{
			{TableName: "a", PrimaryKeyBytes: [][]byte{{1}}, MaxVersions: 1},
			{TableName: "b", PrimaryKeyBytes: [][]byte{{2}}, MaxVersions: 1},
		},
	}
	data := req.Marshal()
	if len(data) == 0 {
		t.Fatal("Marshal produced no bytes")
	}
}

func TestUnmarshalErrorEnvelope(t *testing.T) {
	e := &Error{Code: "OTSRowOperationConflict", Message: "conflict"}
	data := e.Marshal()
	got, ok := UnmarshalError(data)
	if !ok {
		t.Fatal("UnmarshalError reported false for a valid envelope")
	}
	if got.Code != e.Code || got.Message != e.Message {
		t.Errorf("got = %+v, want %+v", got, e)
	}
}

func TestUnmarshalErrorRejectsUnrelatedBytes(t *testing.T) {
	req := &GetRowRequest{TableName: "x"}
	if _, ok := UnmarshalError(req.Marshal()); ok {
		t.Error("UnmarshalError accepted an unrelated envelope")
	}
}
