package validate

import "testing"

func TestTableNameRejectsEmpty(t *testing.T) {
	if err := TableName(""); err == nil {
		t.Error("TableName(\"\") succeeded, want error")
	}
}

func TestTableNameRejectsLeadingDigit(t *testing.T) {
	if err := TableName("1table"); err == nil {
		t.Error("TableName(\"1table\") succeeded, want error")
	}
}

func TestTableNameRejectsBadCharacter(t *testing.T) {
	if err := TableName("table-name"); err == nil {
		t.Error("TableName(\"table-name\") succeeded, want error")
	}
}

func TestTableNameAcceptsBoundaryLength(t *testing.T) {
	name := make([]byte, 255)
	name[0] = 'a'
	for i := 1; i < 255; i++ {
		name[i] = 'b'
	}
	if err := TableName(string(name)); err != nil {
		t.Errorf("TableName(255 bytes) failed: %v", err)
	}
	over := append(name, 'c')
	if err := TableName(string(over)); err == nil {
		t.Error("TableName(256 bytes) succeeded, want error")
	}
}

func TestTimeseriesTableNameAcceptsBoundaryLength(t *testing.T) {
	name := make([]byte, 128)
	name[0] = 'a'
	for i := 1; i < 128; i++ {
		name[i] = 'b'
	}
	if err := TimeseriesTableName(string(name)); err != nil {
		t.Errorf("TimeseriesTableName(128 bytes) failed: %v", err)
	}
	over := append(name, 'c')
	if err := TimeseriesTableName(string(over)); err == nil {
		t.Error("TimeseriesTableName(129 bytes) succeeded, want error")
	}
}

func TestMeasurementRejectsHashAndWhitespace(t *testing.T) {
	if err := Measurement("cpu#usage"); err == nil {
		t.Error("Measurement with '#' succeeded, want error")
	}
	if err := Measurement("cpu usage"); err == nil {
		t.Error("Measurement with whitespace succeeded, want error")
	}
	if err := Measurement("cpu_usage"); err != nil {
		t.Errorf("Measurement(\"cpu_usage\") failed: %v", err)
	}
}

func TestFieldNameRejectsReservedSubstring(t *testing.T) {
	if err := FieldName("_time"); err == nil {
		t.Error("FieldName(\"_time\") succeeded, want error")
	}
	if err := FieldName("my_time_field"); err == nil {
		t.Error("FieldName containing \"_time\" succeeded, want error")
	}
	if err := FieldName("cpu_load"); err != nil {
		t.Errorf("FieldName(\"cpu_load\") failed: %v", err)
	}
}

func TestTagValueRejectsQuoteAndEquals(t *testing.T) {
	if err := TagValue(`a"b`); err == nil {
		t.Error("TagValue with quote succeeded, want error")
	}
	if err := TagValue("a=b"); err == nil {
		t.Error("TagValue with '=' succeeded, want error")
	}
}

func TestDateHistogramTimezone(t *testing.T) {
	if err := DateHistogramTimezone("+08:00"); err != nil {
		t.Errorf("DateHistogramTimezone(\"+08:00\") failed: %v", err)
	}
	if err := DateHistogramTimezone("+0800"); err == nil {
		t.Error("DateHistogramTimezone(\"+0800\") succeeded, want error")
	}
}

// Scenario S6 (spec §8.3): duplicate table names in BatchGetRow must be
// rejected before any network call.
func TestBatchGetRow_S6DuplicateTableNames(t *testing.T) {
	err := BatchGetRow(
		[]string{"users", "users"},
		[]int{1, 1},
		[]int{1, 1},
		[]bool{true, true},
	)
	if err == nil {
		t.Fatal("BatchGetRow with duplicate table names succeeded, want error")
	}
}

// Scenario S6 (spec §8.3): a request totaling 101 rows must be rejected.
func TestBatchGetRow_S6TooManyRows(t *testing.T) {
	err := BatchGetRow(
		[]string{"users"},
		[]int{101},
		[]int{1},
		make([]bool, 101),
	)
	if err == nil {
		t.Fatal("BatchGetRow with 101 rows succeeded, want error")
	}
}

func TestBatchGetRow_Valid(t *testing.T) {
	hasPK := []bool{true, true}
	err := BatchGetRow([]string{"a", "b"}, []int{1, 1}, []int{1, 1}, hasPK)
	if err != nil {
		t.Errorf("BatchGetRow valid request failed: %v", err)
	}
}

func TestGetRangeMutualExclusion(t *testing.T) {
	if err := GetRangeMutualExclusion(true, true); err == nil {
		t.Error("GetRangeMutualExclusion(true, true) succeeded, want error")
	}
	if err := GetRangeMutualExclusion(true, false); err != nil {
		t.Errorf("GetRangeMutualExclusion(true, false) failed: %v", err)
	}
}

func TestCreateTableTTL(t *testing.T) {
	if err := CreateTableTTL(-1); err != nil {
		t.Errorf("CreateTableTTL(-1) failed: %v", err)
	}
	if err := CreateTableTTL(86400); err != nil {
		t.Errorf("CreateTableTTL(86400) failed: %v", err)
	}
	if err := CreateTableTTL(100); err == nil {
		t.Error("CreateTableTTL(100) succeeded, want error")
	}
}

func TestCreateTableIndexColumns(t *testing.T) {
	err := CreateTableIndexColumns("idx", []string{"a", "missing"}, []string{"a"}, []string{"b"})
	if err == nil {
		t.Error("CreateTableIndexColumns with missing column succeeded, want error")
	}
	if err := CreateTableIndexColumns("idx", []string{"a", "b"}, []string{"a"}, []string{"b"}); err != nil {
		t.Errorf("CreateTableIndexColumns valid failed: %v", err)
	}
}
