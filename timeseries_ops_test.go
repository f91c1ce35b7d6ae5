package tablestore

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-tablestore/tablestore/model"
)

func TestCreateTimeseriesTableValidatesName(t *testing.T) {
	c := &Client{}
	if err := c.CreateTimeseriesTable("").Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for an empty table name")
	}
}

func TestCreateTimeseriesTableSendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	if err := c.CreateTimeseriesTable("metrics").TimeToLive(86400).Send(context.Background()); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/CreateTimeseriesTable" {
		t.Fatalf("path = %q, want /CreateTimeseriesTable", gotPath)
	}
}

func TestListTimeseriesTableSendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	names, err := c.ListTimeseriesTable().Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/ListTimeseriesTable" {
		t.Fatalf("path = %q, want /ListTimeseriesTable", gotPath)
	}
	if names != nil {
		t.Fatalf("expected nil table names for an empty response, got %v", names)
	}
}

func TestPutTimeseriesDataValidatesMeasurement(t *testing.T) {
	c := &Client{}
	rows := []model.TsRow{{Measurement: "", Datasource: "host-1", TimeUs: 1}}
	if _, err := c.PutTimeseriesData("metrics", rows).Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for an empty measurement")
	}
}

func TestPutTimeseriesDataRejectsDisallowedFieldValue(t *testing.T) {
	c := &Client{}
	rows := []model.TsRow{{
		Measurement: "cpu",
		Datasource:  "host-1",
		TimeUs:      1,
		Fields:      []model.DataColumn{{Name: "usage", Value: model.ColNullValue()}},
	}}
	if _, err := c.PutTimeseriesData("metrics", rows).Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for a Null field value")
	}
}

func TestPutTimeseriesDataSendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	rows := []model.TsRow{{
		Measurement: "cpu",
		Datasource:  "host-1",
		Tags:        map[string]string{"region": "us"},
		TimeUs:      1700000000000000,
		Fields:      []model.DataColumn{{Name: "usage", Value: model.ColDouble(0.5)}},
	}}
	if _, err := c.PutTimeseriesData("metrics", rows).Send(context.Background()); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/PutTimeseriesData" {
		t.Fatalf("path = %q, want /PutTimeseriesData", gotPath)
	}
}

func TestGetTimeseriesDataRoundTripAgainstEmptyResponse(t *testing.T) {
	c := newTestClient(t, emptyOKHandler)
	rows, next, err := c.GetTimeseriesData("metrics", "cpu").
		Datasource("host-1").
		TimeRange(0, 1700000000000000).
		Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if rows != nil || next != nil {
		t.Fatalf("expected a zero-value result for an empty response body, got rows=%v next=%v", rows, next)
	}
}

func TestGetTimeseriesDataValidatesTableName(t *testing.T) {
	c := &Client{}
	if _, _, err := c.GetTimeseriesData("", "cpu").Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for an empty table name")
	}
}

func TestQueryTimeseriesMetaSendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	entries, next, err := c.QueryTimeseriesMeta("metrics").MeasurementLike("cpu*").Limit(100).Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/QueryTimeseriesMeta" {
		t.Fatalf("path = %q, want /QueryTimeseriesMeta", gotPath)
	}
	if entries != nil || next != nil {
		t.Fatalf("expected a zero-value result for an empty response body, got entries=%v next=%v", entries, next)
	}
}

func TestUpdateTimeseriesMetaValidatesMeasurement(t *testing.T) {
	c := &Client{}
	metas := []model.TsMeta{{Key: model.TsKey{Measurement: "", Datasource: "host-1"}}}
	if _, err := c.UpdateTimeseriesMeta("metrics", metas...).Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for an empty measurement")
	}
}

func TestDeleteTimeseriesMetaSendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	keys := []model.TsKey{{Measurement: "cpu", Datasource: "host-1"}}
	if _, err := c.DeleteTimeseriesMeta("metrics", keys...).Send(context.Background()); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/DeleteTimeseriesMeta" {
		t.Fatalf("path = %q, want /DeleteTimeseriesMeta", gotPath)
	}
}

func TestSplitTimeseriesScanTaskSendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	splits, err := c.SplitTimeseriesScanTask("metrics", 4).Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/SplitTimeseriesScanTask" {
		t.Fatalf("path = %q, want /SplitTimeseriesScanTask", gotPath)
	}
	if splits != nil {
		t.Fatalf("expected nil splits for an empty response, got %v", splits)
	}
}

func TestScanTimeseriesDataSendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	rows, next, err := c.ScanTimeseriesData("metrics", []byte("split-0")).Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/ScanTimeseriesData" {
		t.Fatalf("path = %q, want /ScanTimeseriesData", gotPath)
	}
	if rows != nil || next != nil {
		t.Fatalf("expected a zero-value result for an empty response body, got rows=%v next=%v", rows, next)
	}
}

func TestCreateTimeseriesAnalyticalStoreValidatesStoreName(t *testing.T) {
	c := &Client{}
	if err := c.CreateTimeseriesAnalyticalStore("metrics", "").Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for an empty store name")
	}
}

func TestDescribeTimeseriesAnalyticalStoreSendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	_, err := c.DescribeTimeseriesAnalyticalStore("metrics", "store-1").Send(context.Background())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/DescribeTimeseriesAnalyticalStore" {
		t.Fatalf("path = %q, want /DescribeTimeseriesAnalyticalStore", gotPath)
	}
}

func TestCreateTimeseriesLastpointIndexValidatesIndexName(t *testing.T) {
	c := &Client{}
	if err := c.CreateTimeseriesLastpointIndex("metrics", "").Send(context.Background()); err == nil {
		t.Fatal("expected a validation error for an empty index name")
	}
}

func TestDeleteTimeseriesLastpointIndexSendsExpectedPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	if err := c.DeleteTimeseriesLastpointIndex("metrics", "idx-1").Send(context.Background()); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPath != "/DeleteTimeseriesLastpointIndex" {
		t.Fatalf("path = %q, want /DeleteTimeseriesLastpointIndex", gotPath)
	}
}
