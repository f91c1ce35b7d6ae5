package validate

import (
	"github.com/go-tablestore/tablestore/tserrors"
)

// BatchGetRow enforces spec §4.5.2: total requested rows ≤ 100, no
// duplicate table names, columnsToGet ≤ 128 per table, and every row has
// at least one primary-key column.
func BatchGetRow(tableNames []string, rowsPerTable []int, columnsToGetPerTable []int, rowHasPK []bool) error {
	total := 0
	seen := make(map[string]bool, len(tableNames))
	for i, name := range tableNames {
		if seen[name] {
			return tserrors.NewValidationFailed("BatchGetRow: duplicate table name %q", name)
		}
		seen[name] = true
		total += rowsPerTable[i]
		if columnsToGetPerTable[i] > 128 {
			return tserrors.NewValidationFailed("BatchGetRow: table %q requests %d columns, max is 128", name, columnsToGetPerTable[i])
		}
	}
	if total > 100 {
		return tserrors.NewValidationFailed("BatchGetRow: %d total rows requested, max is 100", total)
	}
	for i, ok := range rowHasPK {
		if !ok {
			return tserrors.NewValidationFailed("BatchGetRow: row %d has no primary key columns", i)
		}
	}
	return nil
}

// BatchWriteRow enforces spec §4.5.2: total row operations ≤ 200.
func BatchWriteRow(totalOperations int) error {
	if totalOperations > 200 {
		return tserrors.NewValidationFailed("BatchWriteRow: %d row operations, max is 200", totalOperations)
	}
	if totalOperations == 0 {
		return tserrors.NewValidationFailed("BatchWriteRow: no row operations given")
	}
	return nil
}

// BulkImport enforces spec §4.5.2: rows in [1, 200], all belonging to one
// table (checked by the caller passing a single table name per call).
func BulkImport(rowCount int) error {
	if rowCount < 1 || rowCount > 200 {
		return tserrors.NewValidationFailed("BulkImport: %d rows, must be in [1, 200]", rowCount)
	}
	return nil
}

// GetRangeMutualExclusion enforces spec §4.5.2/§9 Open question 1: at most
// one of {time_range, max_versions} may be set. Applied uniformly to every
// operation that accepts both (GetRange, and — per the Open question — any
// other read path offering both), not just GetRange.
func GetRangeMutualExclusion(hasTimeRange, hasMaxVersions bool) error {
	if hasTimeRange && hasMaxVersions {
		return tserrors.NewValidationFailed("time_range and max_versions are mutually exclusive")
	}
	return nil
}

// GetRangeBounds enforces spec §4.5.2: both primary-key bounds must be
// non-empty.
func GetRangeBounds(startLen, endLen int) error {
	if startLen == 0 {
		return tserrors.NewValidationFailed("GetRange: start primary key must not be empty")
	}
	if endLen == 0 {
		return tserrors.NewValidationFailed("GetRange: end primary key must not be empty")
	}
	return nil
}

// BulkExportSRMColumns enforces spec §4.5.2: when the return type is SRM,
// columnsToGet must be non-empty.
func BulkExportSRMColumns(isSRM bool, columnsToGet int) error {
	if isSRM && columnsToGet == 0 {
		return tserrors.NewValidationFailed("BulkExport: columns_to_get must be non-empty when the return type is SimpleRowMatrix")
	}
	return nil
}

// TimeseriesPut enforces spec §4.5.2: ≤200 rows per call, ≤1024 fields per
// row, and no field may carry a Null/InfMin/InfMax value.
func TimeseriesPut(rowCount int, fieldsPerRow []int, hasDisallowedFieldValue []bool) error {
	if rowCount > 200 {
		return tserrors.NewValidationFailed("PutTimeseriesData: %d rows, max is 200", rowCount)
	}
	for i, n := range fieldsPerRow {
		if n > 1024 {
			return tserrors.NewValidationFailed("PutTimeseriesData: row %d has %d fields, max is 1024", i, n)
		}
	}
	for i, bad := range hasDisallowedFieldValue {
		if bad {
			return tserrors.NewValidationFailed("PutTimeseriesData: row %d has a field of type Null/InfMin/InfMax, which is not allowed", i)
		}
	}
	return nil
}

// CreateTablePKCount enforces spec §4.5.2: 1..=4 primary-key columns.
func CreateTablePKCount(n int) error {
	if n < 1 || n > 4 {
		return tserrors.NewValidationFailed("CreateTable: %d primary key columns, must be in [1, 4]", n)
	}
	return nil
}

// CreateTableTTL enforces spec §4.5.2: TTL ∈ {-1} ∪ [86400, ∞).
func CreateTableTTL(ttlSeconds int64) error {
	if ttlSeconds == -1 {
		return nil
	}
	if ttlSeconds < 86400 {
		return tserrors.NewValidationFailed("CreateTable: TTL must be -1 or at least 86400 seconds, got %d", ttlSeconds)
	}
	return nil
}

// CreateTableSSE enforces spec §4.5.2: when the SSE key type is BYOK, both
// a key ID and an ARN are required.
func CreateTableSSE(isBYOK bool, hasKeyID, hasARN bool) error {
	if isBYOK && (!hasKeyID || !hasARN) {
		return tserrors.NewValidationFailed("CreateTable: BYOK server-side encryption requires both a key ID and an ARN")
	}
	return nil
}

// CreateTableIndexColumns enforces spec §4.5.2: every index's primary-key
// and column names must appear in the table's primary-key or defined
// column sets.
func CreateTableIndexColumns(indexName string, indexColumns []string, tablePK, tableDefinedColumns []string) error {
	available := make(map[string]bool, len(tablePK)+len(tableDefinedColumns))
	for _, n := range tablePK {
		available[n] = true
	}
	for _, n := range tableDefinedColumns {
		available[n] = true
	}
	for _, c := range indexColumns {
		if !available[c] {
			return tserrors.NewValidationFailed("index %q references column %q, which is not a primary key or defined column of the table", indexName, c)
		}
	}
	return nil
}
