// Package opcode enumerates the RPC operation identifiers (C10): the
// CamelCase names used both as the HTTP path segment and inside the
// request pipeline's canonical signing string (spec §4.7.3).
package opcode

type Op string

const (
	ListTable                       Op = "ListTable"
	CreateTable                     Op = "CreateTable"
	UpdateTable                     Op = "UpdateTable"
	DescribeTable                   Op = "DescribeTable"
	DeleteTable                     Op = "DeleteTable"
	ComputeSplitPointsBySize        Op = "ComputeSplitPointsBySize"

	AddDefinedColumn    Op = "AddDefinedColumn"
	DeleteDefinedColumn Op = "DeleteDefinedColumn"
	CreateIndex         Op = "CreateIndex"
	DropIndex           Op = "DropIndex"

	GetRow        Op = "GetRow"
	PutRow        Op = "PutRow"
	UpdateRow     Op = "UpdateRow"
	DeleteRow     Op = "DeleteRow"
	GetRange      Op = "GetRange"
	BatchGetRow   Op = "BatchGetRow"
	BatchWriteRow Op = "BatchWriteRow"
	BulkImport    Op = "BulkImport"
	BulkExport    Op = "BulkExport"

	CreateSearchIndex   Op = "CreateSearchIndex"
	DescribeSearchIndex Op = "DescribeSearchIndex"
	UpdateSearchIndex   Op = "UpdateSearchIndex"
	DeleteSearchIndex   Op = "DeleteSearchIndex"
	ListSearchIndex     Op = "ListSearchIndex"
	Search              Op = "Search"
	ComputeSplits        Op = "ComputeSplits"
	ParallelScan         Op = "ParallelScan"

	CreateTimeseriesTable             Op = "CreateTimeseriesTable"
	ListTimeseriesTable               Op = "ListTimeseriesTable"
	DescribeTimeseriesTable           Op = "DescribeTimeseriesTable"
	UpdateTimeseriesTable             Op = "UpdateTimeseriesTable"
	DeleteTimeseriesTable             Op = "DeleteTimeseriesTable"
	PutTimeseriesData                 Op = "PutTimeseriesData"
	GetTimeseriesData                 Op = "GetTimeseriesData"
	QueryTimeseriesMeta               Op = "QueryTimeseriesMeta"
	UpdateTimeseriesMeta              Op = "UpdateTimeseriesMeta"
	DeleteTimeseriesMeta              Op = "DeleteTimeseriesMeta"
	ScanTimeseriesData                Op = "ScanTimeseriesData"
	SplitTimeseriesScanTask           Op = "SplitTimeseriesScanTask"
	CreateTimeseriesAnalyticalStore   Op = "CreateTimeseriesAnalyticalStore"
	DescribeTimeseriesAnalyticalStore Op = "DescribeTimeseriesAnalyticalStore"
	UpdateTimeseriesAnalyticalStore   Op = "UpdateTimeseriesAnalyticalStore"
	DeleteTimeseriesAnalyticalStore   Op = "DeleteTimeseriesAnalyticalStore"
	CreateTimeseriesLastpointIndex    Op = "CreateTimeseriesLastpointIndex"
	DeleteTimeseriesLastpointIndex    Op = "DeleteTimeseriesLastpointIndex"

	SQLQuery Op = "SQLQuery"
)

// Path returns the HTTP path segment for op ("/" + operation name).
func (op Op) Path() string { return "/" + string(op) }

// String satisfies fmt.Stringer, returning the bare operation name used in
// the canonical signing string (spec §4.7.3 step 5).
func (op Op) String() string { return string(op) }
