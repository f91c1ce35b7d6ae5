package tablestore

import (
	"context"
	"net/http"
	"testing"
)

func TestCreateTableOpBuildersAreImmutable(t *testing.T) {
	c := &Client{}
	base := c.CreateTable("t")
	withPK := base.PrimaryKey("pk", PKTypeString)
	if len(base.primaryKey) != 0 {
		t.Fatalf("PrimaryKey mutated the original builder: %v", base.primaryKey)
	}
	if len(withPK.primaryKey) != 1 {
		t.Fatal("PrimaryKey did not apply")
	}
}

func TestCreateTableValidatesName(t *testing.T) {
	c := &Client{}
	if err := c.CreateTable("").PrimaryKey("pk", PKTypeString).Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for an empty table name")
	}
}

func TestCreateTableValidatesPrimaryKeyCount(t *testing.T) {
	c := &Client{}
	if err := c.CreateTable("t").Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for zero primary-key columns")
	}
}

func TestCreateTableSendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	err := c.CreateTable("t").
		PrimaryKey("pk", PKTypeString).
		DefinedColumn("col_a", DCTypeString).
		ReservedThroughput(0, 0).
		Index(IndexSpec{Name: "idx", PrimaryKeys: []string{"pk"}, Type: GlobalIndex}).
		Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/CreateTable" {
		t.Fatalf("path = %q, want /CreateTable", gotPath)
	}
}

func TestDeleteTableValidatesName(t *testing.T) {
	c := &Client{}
	if err := c.DeleteTable("").Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for an empty table name")
	}
}

func TestListTableSendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	names, err := c.ListTable().Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/ListTable" {
		t.Fatalf("path = %q, want /ListTable", gotPath)
	}
	if names != nil {
		t.Fatalf("expected nil table names for an empty response, got %v", names)
	}
}

func TestDescribeTableRoundTripAgainstEmptyResponse(t *testing.T) {
	c := newTestClient(t, emptyOKHandler)
	schema, err := c.DescribeTable("t").Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if schema.TableName != "" || len(schema.PrimaryKey) != 0 {
		t.Fatalf("expected a zero-value schema for an empty response body, got %+v", schema)
	}
}

func TestUpdateTableOnlySendsExplicitlySetFields(t *testing.T) {
	c := &Client{}
	base := c.UpdateTable("t")
	withTTL := base.TimeToLive(3600)
	if base.options != nil {
		t.Fatal("TimeToLive mutated the original builder")
	}
	if withTTL.options == nil || withTTL.options.TimeToLiveSeconds != 3600 {
		t.Fatalf("TimeToLive did not apply: %+v", withTTL.options)
	}
}

func TestUpdateTableSendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	_, _, err := c.UpdateTable("t").TimeToLive(3600).Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/UpdateTable" {
		t.Fatalf("path = %q, want /UpdateTable", gotPath)
	}
}

func TestComputeSplitPointsBySizeValidatesName(t *testing.T) {
	c := &Client{}
	if _, _, err := c.ComputeSplitPointsBySize("", 1024).Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for an empty table name")
	}
}

func TestComputeSplitPointsBySizeSendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	pk, splits, err := c.ComputeSplitPointsBySize("t", 1<<20).Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/ComputeSplitPointsBySize" {
		t.Fatalf("path = %q, want /ComputeSplitPointsBySize", gotPath)
	}
	if pk != nil || splits != nil {
		t.Fatalf("expected a zero-value result for an empty response body, got pk=%v splits=%v", pk, splits)
	}
}
