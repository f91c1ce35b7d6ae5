package tablestore

import (
	"context"
	"net/http"
	"testing"
)

func TestAddDefinedColumnOpBuildersAreImmutable(t *testing.T) {
	c := &Client{}
	base := c.AddDefinedColumn("t")
	withCol := base.Column("col_a", DCTypeString)
	if len(base.columns) != 0 {
		t.Fatalf("Column mutated the original builder: %v", base.columns)
	}
	if len(withCol.columns) != 1 {
		t.Fatal("Column did not apply")
	}
}

func TestAddDefinedColumnValidatesTableName(t *testing.T) {
	c := &Client{}
	if err := c.AddDefinedColumn("").Column("col_a", DCTypeString).Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for an empty table name")
	}
}

func TestAddDefinedColumnSendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	err := c.AddDefinedColumn("t").Column("col_a", DCTypeString).Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/AddDefinedColumn" {
		t.Fatalf("path = %q, want /AddDefinedColumn", gotPath)
	}
}

func TestDeleteDefinedColumnValidatesTableName(t *testing.T) {
	c := &Client{}
	if err := c.DeleteDefinedColumn("", "col_a").Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for an empty table name")
	}
}

func TestDeleteDefinedColumnSendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	err := c.DeleteDefinedColumn("t", "col_a", "col_b").Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/DeleteDefinedColumn" {
		t.Fatalf("path = %q, want /DeleteDefinedColumn", gotPath)
	}
}

func TestCreateIndexValidatesIndexName(t *testing.T) {
	c := &Client{}
	if err := c.CreateIndex("t", IndexSpec{Name: ""}).Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for an empty index name")
	}
}

func TestCreateIndexDefaultsToIncludingBaseData(t *testing.T) {
	c := &Client{}
	base := c.CreateIndex("t", IndexSpec{Name: "idx"})
	if !base.includeBaseData {
		t.Fatal("expected includeBaseData to default to true")
	}
	withoutBackfill := base.IncludeBaseData(false)
	if base.includeBaseData != true {
		t.Fatal("IncludeBaseData mutated the original builder")
	}
	if withoutBackfill.includeBaseData {
		t.Fatal("IncludeBaseData did not apply")
	}
}

func TestCreateIndexSendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	err := c.CreateIndex("t", IndexSpec{Name: "idx", PrimaryKeys: []string{"pk"}, Type: GlobalIndex}).Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/CreateIndex" {
		t.Fatalf("path = %q, want /CreateIndex", gotPath)
	}
}

func TestDropIndexValidatesIndexName(t *testing.T) {
	c := &Client{}
	if err := c.DropIndex("t", "").Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for an empty index name")
	}
}

func TestDropIndexSendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	err := c.DropIndex("t", "idx").Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/DropIndex" {
		t.Fatalf("path = %q, want /DropIndex", gotPath)
	}
}
