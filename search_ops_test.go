package tablestore

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-tablestore/tablestore/model"
)

func TestSearchOpBuildersAreImmutable(t *testing.T) {
	c := &Client{}
	base := c.Search("t", "idx", model.MatchAll())
	withCols := base.ColumnsToGet("a", "b")
	if len(base.columnsToGet) != 0 {
		t.Fatalf("ColumnsToGet mutated the original builder: %v", base.columnsToGet)
	}
	if len(withCols.columnsToGet) != 2 {
		t.Fatal("ColumnsToGet did not apply")
	}
}

func TestSearchValidatesTableAndIndexName(t *testing.T) {
	c := &Client{}
	if _, err := c.Search("", "idx", model.MatchAll()).Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for an empty table name")
	}
	if _, err := c.Search("t", "", model.MatchAll()).Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for an empty index name")
	}
}

func TestSearchRoundTripAgainstEmptyResponse(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	q := model.Term(model.TermQuery{FieldName: "status", Term: "ok"})
	result, err := c.Search("t", "idx", q).Limit(10).GetTotalCount().Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/Search" {
		t.Fatalf("path = %q, want /Search", gotPath)
	}
	if result.TotalHits != 0 || len(result.Rows) != 0 {
		t.Fatalf("expected a zero-value result for an empty response body, got %+v", result)
	}
}

func TestComputeSplitsValidatesIndexName(t *testing.T) {
	c := &Client{}
	if _, err := c.ComputeSplits("t", "").Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for an empty index name")
	}
}

func TestParallelScanSendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	rows, next, err := c.ParallelScan("t", "idx", model.MatchAll(), 0, 4).Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/ParallelScan" {
		t.Fatalf("path = %q, want /ParallelScan", gotPath)
	}
	if rows != nil || next != nil {
		t.Fatalf("expected a zero-value result for an empty response body, got rows=%v next=%v", rows, next)
	}
}

func TestCreateSearchIndexSendsFieldSchemas(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	err := c.CreateSearchIndex("t", "idx",
		FieldSchema{Name: "status", Type: FieldKeyword, Index: true},
		FieldSchema{Name: "body", Type: FieldText, Index: true, Store: true},
	).Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
}

func TestListSearchIndexValidatesTableName(t *testing.T) {
	c := &Client{}
	if _, err := c.ListSearchIndex("").Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for an empty table name")
	}
}
