package tablestore

import (
	"context"
	"net/http"
	"testing"
)

func TestSQLQueryRejectsInvalidSyntax(t *testing.T) {
	c := &Client{}
	if _, err := c.SQLQuery("SELEC * FROM t").Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for invalid SQL syntax")
	}
}

func TestSQLQuerySendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	result, err := c.SQLQuery("SELECT * FROM t WHERE pk = 1").Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/SQLQuery" {
		t.Fatalf("path = %q, want /SQLQuery", gotPath)
	}
	if result.Rows != nil || result.TsRows != nil {
		t.Fatalf("expected a zero-value result for an empty response body, got %+v", result)
	}
}

func TestSQLQueryAcceptsCreateTable(t *testing.T) {
	c := newTestClient(t, emptyOKHandler)
	if _, err := c.SQLQuery("CREATE TABLE t (pk BIGINT PRIMARY KEY, name VARCHAR(128))").Send(context.Background()); err != nil {
		t.Fatalf("Send: %v", err)
	}
}
