package tablestore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-tablestore/tablestore/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient(Config{
		Endpoint:        srv.URL,
		InstanceName:    "test-instance",
		AccessKeyID:     "ak",
		AccessKeySecret: "sk",
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func emptyOKHandler(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestGetRowOpBuildersAreImmutable(t *testing.T) {
	c := &Client{}
	base := c.GetRow("t", nil)
	withCols := base.ColumnsToGet("a", "b")
	if len(base.columnsToGet) != 0 {
		t.Fatalf("ColumnsToGet mutated the original builder: %v", base.columnsToGet)
	}
	if len(withCols.columnsToGet) != 2 {
		t.Fatalf("ColumnsToGet did not apply: %v", withCols.columnsToGet)
	}
}

func TestGetRowValidatesTableName(t *testing.T) {
	c := &Client{}
	_, _, _, err := c.GetRow("", []model.PrimaryKeyColumn{{Name: "pk", Value: model.PkInt(1)}}).Send(context.Background())
	if err == nil {
		t.Fatal("expected a validation error for an empty table name")
	}
}

func TestGetRowRejectsTimeRangeAndMaxVersionsTogether(t *testing.T) {
	c := &Client{}
	pk := []model.PrimaryKeyColumn{{Name: "pk", Value: model.PkInt(1)}}
	op := c.GetRow("t", pk).MaxVersions(1).TimeRange(0, 100)
	if _, _, _, err := op.Send(context.Background()); err == nil {
		t.Fatal("expected time_range/max_versions to be rejected together")
	}
}

func TestGetRowNotFound(t *testing.T) {
	c := newTestClient(t, emptyOKHandler)
	pk := []model.PrimaryKeyColumn{{Name: "pk", Value: model.PkInt(1)}}
	row, found, _, err := c.GetRow("t", pk).Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if found {
		t.Fatalf("expected found=false for an empty response, got row %+v", row)
	}
}

func TestPutRowDefaultsToIgnoreExistence(t *testing.T) {
	c := &Client{}
	op := c.PutRow("t", nil, nil)
	if op.existence != IgnoreExistence {
		t.Fatalf("PutRow default existence = %v, want IgnoreExistence", op.existence)
	}
}

func TestUpdateRowDefaultsToExpectExist(t *testing.T) {
	c := &Client{}
	op := c.UpdateRow("t", nil, nil)
	if op.existence != ExpectExist {
		t.Fatalf("UpdateRow default existence = %v, want ExpectExist", op.existence)
	}
}

func TestPutRowRoundTripAgainstEmptyResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/PutRow" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	})
	pk := []model.PrimaryKeyColumn{{Name: "pk", Value: model.PkStr("row-1")}}
	cols := []model.DataColumn{{Name: "v", Value: model.ColInt(42)}}
	if _, err := c.PutRow("t", pk, cols).Send(context.Background()); err != nil {
		t.Fatalf("Send: %v", err)
	}
}

func TestDeleteRowSendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	pk := []model.PrimaryKeyColumn{{Name: "pk", Value: model.PkInt(1)}}
	if _, err := c.DeleteRow("t", pk).Send(context.Background()); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/DeleteRow" {
		t.Fatalf("path = %q, want /DeleteRow", gotPath)
	}
}

func TestGetRangeRejectsEmptyBounds(t *testing.T) {
	c := &Client{}
	_, _, _, err := c.GetRange("t", nil, nil).Send(context.Background())
	if err == nil {
		t.Fatal("expected an error for empty start/end primary keys")
	}
}

func TestBatchGetRowRejectsTooManyRows(t *testing.T) {
	c := &Client{}
	var pks [][]model.PrimaryKeyColumn
	for i := 0; i < 101; i++ {
		pks = append(pks, []model.PrimaryKeyColumn{{Name: "pk", Value: model.PkInt(int64(i))}})
	}
	op := c.BatchGetRow().AddTable(NewBatchGetTable("t", pks...))
	if _, err := op.Send(context.Background()); err == nil {
		t.Fatal("expected BatchGetRow to reject more than 100 total rows")
	}
}

func TestBatchWriteRowRejectsTooManyOperations(t *testing.T) {
	c := &Client{}
	var items []BatchWriteRowItem
	for i := 0; i < 201; i++ {
		pk := []model.PrimaryKeyColumn{{Name: "pk", Value: model.PkInt(int64(i))}}
		items = append(items, DeleteInBatch(pk, IgnoreExistence))
	}
	op := c.BatchWriteRow().AddTable(NewBatchWriteTable("t", items...))
	if _, err := op.Send(context.Background()); err == nil {
		t.Fatal("expected BatchWriteRow to reject more than 200 total operations")
	}
}

func TestBulkImportRejectsOutOfRangeRowCount(t *testing.T) {
	c := &Client{}
	if _, err := c.BulkImport("t", nil).Send(context.Background()); err == nil {
		t.Fatal("expected BulkImport to reject zero rows")
	}
}

func TestBulkExportRequiresColumnsForSimpleRowMatrix(t *testing.T) {
	c := &Client{}
	pk := []model.PrimaryKeyColumn{{Name: "pk", Value: model.PkInfMinValue()}}
	end := []model.PrimaryKeyColumn{{Name: "pk", Value: model.PkInfMaxValue()}}
	op := c.BulkExport("t", pk, end).AsSimpleRowMatrix()
	if _, _, _, err := op.Send(context.Background()); err == nil {
		t.Fatal("expected BulkExport with SimpleRowMatrix return type to require columnsToGet")
	}
}

func TestBatchGetTableSettersDoNotMutateOriginal(t *testing.T) {
	base := NewBatchGetTable("t")
	withCols := base.ColumnsToGet("a")
	if len(base.columnsToGet) != 0 {
		t.Fatalf("ColumnsToGet mutated the original table: %v", base.columnsToGet)
	}
	if len(withCols.columnsToGet) != 1 {
		t.Fatal("ColumnsToGet did not apply")
	}
}
