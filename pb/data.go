package pb

import "github.com/go-tablestore/tablestore/wire"

// GetRowRequest is the envelope for the GetRow RPC. PrimaryKeyBytes and the
// optional FilterBytes are PlainBuffer-encoded by the caller (package
// plainbuffer); pb never interprets row bytes itself.
type GetRowRequest struct {
	TableName       string
	PrimaryKeyBytes  []byte
	ColumnsToGet     []string
	MaxVersions      int64
	TimeRange        *TimeRange
	FilterBytes      []byte
	StartColumn      string
	EndColumn        string
}

func (req *GetRowRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteBytes(fPrimaryKey, req.PrimaryKeyBytes)
	for _, c := range req.ColumnsToGet {
		w.WriteString(fColumnsToGet, c)
	}
	w.WriteZigzag(fMaxVersions, req.MaxVersions)
	if req.TimeRange != nil {
		req.TimeRange.marshalInto(w, fTimeRange)
	}
	if len(req.FilterBytes) > 0 {
		w.WriteBytes(fFilterBytes, req.FilterBytes)
	}
	return w.Bytes()
}

// GetRowResponse carries the consumed capacity and a PlainBuffer-encoded
// row (empty if the row does not exist).
type GetRowResponse struct {
	Consumed ConsumedCapacity
	RowBytes []byte
}

func UnmarshalGetRowResponse(data []byte) (GetRowResponse, error) {
	var resp GetRowResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case fConsumed:
			resp.Consumed = unmarshalConsumedCapacity(f.Bytes)
		case fRow:
			resp.RowBytes = append([]byte(nil), f.Bytes...)
		}
	}
	return resp, nil
}

// PutRowRequest is the envelope for the PutRow RPC.
type PutRowRequest struct {
	TableName string
	RowBytes  []byte // PlainBuffer-encoded row
	Condition Condition
}

func (req *PutRowRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteBytes(fRow, req.RowBytes)
	req.Condition.marshalInto(w, fCondition)
	return w.Bytes()
}

type PutRowResponse struct {
	Consumed ConsumedCapacity
	RowBytes []byte // populated when ReturnType requested the new row
}

func UnmarshalPutRowResponse(data []byte) (PutRowResponse, error) {
	var resp PutRowResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case fConsumed:
			resp.Consumed = unmarshalConsumedCapacity(f.Bytes)
		case fRow:
			resp.RowBytes = append([]byte(nil), f.Bytes...)
		}
	}
	return resp, nil
}

// UpdateRowRequest is the envelope for the UpdateRow RPC. RowBytes is the
// PlainBuffer encoding of a row whose data columns carry per-cell
// UpdateType markers (put/delete-one-version/delete-all-versions/increment).
type UpdateRowRequest struct {
	TableName string
	RowBytes  []byte
	Condition Condition
}

func (req *UpdateRowRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteBytes(fRow, req.RowBytes)
	req.Condition.marshalInto(w, fCondition)
	return w.Bytes()
}

type UpdateRowResponse struct {
	Consumed ConsumedCapacity
	RowBytes []byte
}

func UnmarshalUpdateRowResponse(data []byte) (UpdateRowResponse, error) {
	var resp UpdateRowResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case fConsumed:
			resp.Consumed = unmarshalConsumedCapacity(f.Bytes)
		case fRow:
			resp.RowBytes = append([]byte(nil), f.Bytes...)
		}
	}
	return resp, nil
}

// DeleteRowRequest is the envelope for the DeleteRow RPC.
type DeleteRowRequest struct {
	TableName       string
	PrimaryKeyBytes []byte
	Condition       Condition
}

func (req *DeleteRowRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteBytes(fPrimaryKey, req.PrimaryKeyBytes)
	req.Condition.marshalInto(w, fCondition)
	return w.Bytes()
}

type DeleteRowResponse struct{ Consumed ConsumedCapacity }

func UnmarshalDeleteRowResponse(data []byte) (DeleteRowResponse, error) {
	var resp DeleteRowResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		if f.Number == fConsumed {
			resp.Consumed = unmarshalConsumedCapacity(f.Bytes)
		}
	}
	return resp, nil
}

// GetRangeRequest is the envelope for the GetRange RPC. Direction is
// "FORWARD" or "BACKWARD".
type GetRangeRequest struct {
	TableName      string
	Direction      string
	ColumnsToGet   []string
	StartPKBytes   []byte
	EndPKBytes     []byte
	Limit          int64
	MaxVersions    int64
	TimeRange      *TimeRange
	FilterBytes    []byte
	Token          []byte
}

func (req *GetRangeRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteString(fDirection, req.Direction)
	for _, c := range req.ColumnsToGet {
		w.WriteString(fColumnsToGet, c)
	}
	w.WriteBytes(fPrimaryKey, req.StartPKBytes)
	inner := wire.NewWriter()
	inner.WriteBytes(1, req.EndPKBytes)
	w.WriteMessage(fRows, inner.Bytes())
	w.WriteZigzag(fLimit, req.Limit)
	w.WriteZigzag(fMaxVersions, req.MaxVersions)
	if req.TimeRange != nil {
		req.TimeRange.marshalInto(w, fTimeRange)
	}
	if len(req.FilterBytes) > 0 {
		w.WriteBytes(fFilterBytes, req.FilterBytes)
	}
	if len(req.Token) > 0 {
		w.WriteBytes(fToken, req.Token)
	}
	return w.Bytes()
}

// GetRangeResponse carries zero or more PlainBuffer-encoded rows plus a
// continuation token (empty when the scan is exhausted).
type GetRangeResponse struct {
	Consumed ConsumedCapacity
	RowsBytes []byte // concatenated PlainBuffer rows; decode with plainbuffer.DecodeRows
	NextToken []byte
}

func UnmarshalGetRangeResponse(data []byte) (GetRangeResponse, error) {
	var resp GetRangeResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case fConsumed:
			resp.Consumed = unmarshalConsumedCapacity(f.Bytes)
		case fRowsBytes:
			resp.RowsBytes = append(resp.RowsBytes, f.Bytes...)
		case fToken:
			resp.NextToken = append([]byte(nil), f.Bytes...)
		}
	}
	return resp, nil
}

// TableInBatchGetRow is one table's share of a BatchGetRow request.
type TableInBatchGetRow struct {
	TableName       string
	PrimaryKeyBytes [][]byte
	ColumnsToGet    []string
	MaxVersions     int64
	TimeRange       *TimeRange
	FilterBytes     []byte
}

func (t TableInBatchGetRow) marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, t.TableName)
	for _, pk := range t.PrimaryKeyBytes {
		w.WriteBytes(fPrimaryKey, pk)
	}
	for _, c := range t.ColumnsToGet {
		w.WriteString(fColumnsToGet, c)
	}
	w.WriteZigzag(fMaxVersions, t.MaxVersions)
	if t.TimeRange != nil {
		t.TimeRange.marshalInto(w, fTimeRange)
	}
	if len(t.FilterBytes) > 0 {
		w.WriteBytes(fFilterBytes, t.FilterBytes)
	}
	return w.Bytes()
}

type BatchGetRowRequest struct{ Tables []TableInBatchGetRow }

func (req *BatchGetRowRequest) Marshal() []byte {
	w := wire.NewWriter()
	for _, t := range req.Tables {
		w.WriteMessage(fTableNames, t.marshal())
	}
	return w.Bytes()
}

// RowInBatchGetRowResult is one row's outcome within a BatchGetRowResponse.
type RowInBatchGetRowResult struct {
	IsOK     bool
	ErrorCode    string
	ErrorMessage string
	Consumed ConsumedCapacity
	RowBytes []byte
}

type TableInBatchGetRowResult struct {
	TableName string
	Rows      []RowInBatchGetRowResult
}

type BatchGetRowResponse struct{ Tables []TableInBatchGetRowResult }

func UnmarshalBatchGetRowResponse(data []byte) (BatchGetRowResponse, error) {
	var resp BatchGetRowResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		if f.Number != fTableNames {
			continue
		}
		var t TableInBatchGetRowResult
		tr := wire.NewReader(f.Bytes)
		for {
			tf, err := tr.Next()
			if err != nil {
				break
			}
			switch tf.Number {
			case fTableName:
				t.TableName = string(tf.Bytes)
			case fRows:
				var row RowInBatchGetRowResult
				rr := wire.NewReader(tf.Bytes)
				for {
					rf, err := rr.Next()
					if err != nil {
						break
					}
					switch rf.Number {
					case 1:
						row.IsOK = rf.Varint != 0
					case fErrorCode:
						row.ErrorCode = string(rf.Bytes)
					case fErrorMessage:
						row.ErrorMessage = string(rf.Bytes)
					case fConsumed:
						row.Consumed = unmarshalConsumedCapacity(rf.Bytes)
					case fRow:
						row.RowBytes = append([]byte(nil), rf.Bytes...)
					}
				}
				t.Rows = append(t.Rows, row)
			}
		}
		resp.Tables = append(resp.Tables, t)
	}
	return resp, nil
}

// RowInBatchWriteRow is one PutRow/UpdateRow/DeleteRow operation batched
// inside a BatchWriteRow request. Kind is "PUT" | "UPDATE" | "DELETE".
type RowInBatchWriteRow struct {
	Kind      string
	RowBytes  []byte
	Condition Condition
}

func (r RowInBatchWriteRow) marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(1, r.Kind)
	w.WriteBytes(fRow, r.RowBytes)
	r.Condition.marshalInto(w, fCondition)
	return w.Bytes()
}

type TableInBatchWriteRow struct {
	TableName string
	Rows      []RowInBatchWriteRow
}

func (t TableInBatchWriteRow) marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, t.TableName)
	for _, row := range t.Rows {
		w.WriteMessage(fRows, row.marshal())
	}
	return w.Bytes()
}

type BatchWriteRowRequest struct{ Tables []TableInBatchWriteRow }

func (req *BatchWriteRowRequest) Marshal() []byte {
	w := wire.NewWriter()
	for _, t := range req.Tables {
		w.WriteMessage(fTableNames, t.marshal())
	}
	return w.Bytes()
}

type RowInBatchWriteRowResult struct {
	IsOK         bool
	ErrorCode    string
	ErrorMessage string
	Consumed     ConsumedCapacity
	RowBytes     []byte
}

type TableInBatchWriteRowResult struct {
	TableName string
	Rows      []RowInBatchWriteRowResult
}

type BatchWriteRowResponse struct{ Tables []TableInBatchWriteRowResult }

func UnmarshalBatchWriteRowResponse(data []byte) (BatchWriteRowResponse, error) {
	var resp BatchWriteRowResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		if f.Number != fTableNames {
			continue
		}
		var t TableInBatchWriteRowResult
		tr := wire.NewReader(f.Bytes)
		for {
			tf, err := tr.Next()
			if err != nil {
				break
			}
			switch tf.Number {
			case fTableName:
				t.TableName = string(tf.Bytes)
			case fRows:
				var row RowInBatchWriteRowResult
				rr := wire.NewReader(tf.Bytes)
				for {
					rf, err := rr.Next()
					if err != nil {
						break
					}
					switch rf.Number {
					case 1:
						row.IsOK = rf.Varint != 0
					case fErrorCode:
						row.ErrorCode = string(rf.Bytes)
					case fErrorMessage:
						row.ErrorMessage = string(rf.Bytes)
					case fConsumed:
						row.Consumed = unmarshalConsumedCapacity(rf.Bytes)
					case fRow:
						row.RowBytes = append([]byte(nil), rf.Bytes...)
					}
				}
				t.Rows = append(t.Rows, row)
			}
		}
		resp.Tables = append(resp.Tables, t)
	}
	return resp, nil
}

// BulkImportRequest writes many rows to a single table in one call.
type BulkImportRequest struct {
	TableName string
	RowsBytes [][]byte
}

func (req *BulkImportRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	for _, rb := range req.RowsBytes {
		w.WriteBytes(fRows, rb)
	}
	return w.Bytes()
}

type BulkImportResponse struct{ Consumed ConsumedCapacity }

func UnmarshalBulkImportResponse(data []byte) (BulkImportResponse, error) {
	var resp BulkImportResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		if f.Number == fConsumed {
			resp.Consumed = unmarshalConsumedCapacity(f.Bytes)
		}
	}
	return resp, nil
}

// BulkExportRequest reads a contiguous range of a table, returned either as
// PlainBuffer rows or a SimpleRowMatrix payload depending on ReturnType.
type BulkExportRequest struct {
	TableName    string
	StartPKBytes []byte
	EndPKBytes   []byte
	ColumnsToGet []string
	ReturnType   string // "PLAIN_BUFFER" | "SIMPLE_ROW_MATRIX"
	Token        []byte
}

func (req *BulkExportRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteBytes(fPrimaryKey, req.StartPKBytes)
	inner := wire.NewWriter()
	inner.WriteBytes(1, req.EndPKBytes)
	w.WriteMessage(fRows, inner.Bytes())
	for _, c := range req.ColumnsToGet {
		w.WriteString(fColumnsToGet, c)
	}
	w.WriteString(fReturnContent, req.ReturnType)
	if len(req.Token) > 0 {
		w.WriteBytes(fToken, req.Token)
	}
	return w.Bytes()
}

type BulkExportResponse struct {
	Consumed  ConsumedCapacity
	IsSRM     bool
	DataBytes []byte // PlainBuffer rows or an SRM payload, per ReturnType
	NextToken []byte
}

func UnmarshalBulkExportResponse(data []byte) (BulkExportResponse, error) {
	var resp BulkExportResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case fConsumed:
			resp.Consumed = unmarshalConsumedCapacity(f.Bytes)
		case fRowsBytes:
			resp.DataBytes = append(resp.DataBytes, f.Bytes...)
		case fSRMBytes:
			resp.IsSRM = true
			resp.DataBytes = append(resp.DataBytes, f.Bytes...)
		case fToken:
			resp.NextToken = append([]byte(nil), f.Bytes...)
		}
	}
	return resp, nil
}
