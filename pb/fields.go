// Package pb defines the request/response envelope structs for every
// operation named in the operation catalog (package opcode). The real wire
// schemas are generated from a protobuf IDL that is out of scope for this
// module (see SPEC_FULL.md's PROTOBUF ENVELOPE section); these envelopes
// define the same *contract* — Go struct fields, Marshal/Unmarshal — using
// the hand-written wire codec in package wire instead of generated code.
//
// Field numbers below are assigned once and are otherwise arbitrary, since
// no real IDL was provided; they are stable within this module.
package pb

// Common envelope field numbers, reused by every per-operation message.
const (
	fTableName      = 1
	fPrimaryKey     = 2 // PlainBuffer-encoded primary key bytes
	fRow            = 2 // PlainBuffer-encoded full row bytes (put/update/delete)
	fColumnsToGet   = 3
	fCondition      = 4
	fReturnContent  = 5
	fTimeRange      = 6
	fMaxVersions    = 7
	fFilterBytes    = 8
	fToken          = 9
	fLimit          = 10
	fDirection      = 11
	fTableOptions   = 12
	fReservedThru   = 13
	fPrimaryKeySch  = 14
	fDefinedColumns = 15
	fIndexMetas     = 16
	fIndexName      = 17
	fDropped        = 18
	fTableMeta      = 19
	fTableNames     = 20
	fRows           = 21
	fConsumed       = 22
	fErrorCode      = 23
	fErrorMessage   = 24
	fSplitPoints    = 25
	fQueryBytes     = 26
	fAggsBytes      = 27
	fGroupBysBytes  = 28
	fTotalHits      = 29
	fRowsBytes      = 30
	fSRMBytes       = 31
	fDataType       = 32
	fMeasurement    = 33
	fDataSource     = 34
	fTags           = 35
	fFieldValues    = 36
	fTimeUs         = 37
	fRowGroupBytes  = 38
	fSQLText        = 39
	fSQLResultKind  = 40
	fAttributes     = 41
	fUpdateTimeUs   = 42
	fAnalyticalName = 43
	fLastpointName  = 44
	fSplitTaskBytes = 45
	fScanQueryBytes = 46
	fSessionID      = 47
	fBodyBytes      = 48
	fSplitCount     = 49
	fSortBytes      = 50
)
