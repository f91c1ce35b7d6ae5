package tablestore

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/go-tablestore/tablestore/model"
	"github.com/go-tablestore/tablestore/opcode"
	"github.com/go-tablestore/tablestore/pb"
	"github.com/go-tablestore/tablestore/plainbuffer"
	"github.com/go-tablestore/tablestore/srm"
	"github.com/go-tablestore/tablestore/transport"
	"github.com/go-tablestore/tablestore/validate"
)

// RowExistence is the optimistic-concurrency precondition accepted by
// PutRow/UpdateRow/DeleteRow/BatchWriteRow (spec §4.1.3).
type RowExistence string

const (
	IgnoreExistence RowExistence = "IGNORE"
	ExpectExist     RowExistence = "EXPECT_EXIST"
	ExpectNotExist  RowExistence = "EXPECT_NOT_EXIST"
)

func (c *Client) resolveTimeout(override int64) int64 {
	if override != 0 {
		return override
	}
	return c.cfg.DefaultTimeoutMs
}

func encodePK(pk []model.PrimaryKeyColumn) ([]byte, error) {
	return plainbuffer.EncodeRow(model.Row{PK: pk}, plainbuffer.DefaultFlags)
}

func filterBytesOf(f *model.Filter) []byte {
	if f == nil {
		return nil
	}
	return f.Marshal()
}

// GetRowOp is the immutable, fluent builder returned by Client.GetRow. Every
// setter returns a new value; call Send to dispatch the RPC.
type GetRowOp struct {
	c              *Client
	tableName      string
	pk             []model.PrimaryKeyColumn
	columnsToGet   []string
	maxVersions    int64
	maxVersionsSet bool
	timeRange      *pb.TimeRange
	filter         *model.Filter
	timeoutMs      int64
}

// GetRow starts a GetRowOp for the row identified by pk.
func (c *Client) GetRow(tableName string, pk []model.PrimaryKeyColumn) GetRowOp {
	return GetRowOp{c: c, tableName: tableName, pk: pk}
}

func (op GetRowOp) ColumnsToGet(cols ...string) GetRowOp { op.columnsToGet = cols; return op }
func (op GetRowOp) MaxVersions(n int64) GetRowOp         { op.maxVersions, op.maxVersionsSet = n, true; return op }
func (op GetRowOp) TimeRange(startMs, endMs int64) GetRowOp {
	op.timeRange = &pb.TimeRange{Start: startMs, End: endMs}
	return op
}
func (op GetRowOp) AtTime(ms int64) GetRowOp { op.timeRange = &pb.TimeRange{Specific: &ms}; return op }
func (op GetRowOp) Filter(f model.Filter) GetRowOp { op.filter = &f; return op }
func (op GetRowOp) TimeoutMs(ms int64) GetRowOp    { op.timeoutMs = ms; return op }

// Send dispatches the GetRow RPC. found is false when the row does not
// exist; row is then the zero value.
func (op GetRowOp) Send(ctx context.Context) (row model.Row, found bool, consumed pb.ConsumedCapacity, err error) {
	if err = validate.TableName(op.tableName); err != nil {
		return model.Row{}, false, pb.ConsumedCapacity{}, err
	}
	if err = validate.GetRangeMutualExclusion(op.timeRange != nil, op.maxVersionsSet); err != nil {
		return model.Row{}, false, pb.ConsumedCapacity{}, err
	}
	pkBytes, err := encodePK(op.pk)
	if err != nil {
		return model.Row{}, false, pb.ConsumedCapacity{}, err
	}
	req := &pb.GetRowRequest{
		TableName:    op.tableName,
		PrimaryKeyBytes: pkBytes,
		ColumnsToGet: op.columnsToGet,
		MaxVersions:  op.maxVersions,
		TimeRange:    op.timeRange,
		FilterBytes:  filterBytesOf(op.filter),
	}
	body, err := op.c.dispatcher.Call(ctx, opcode.GetRow, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return model.Row{}, false, pb.ConsumedCapacity{}, err
	}
	resp, err := pb.UnmarshalGetRowResponse(body)
	if err != nil {
		return model.Row{}, false, pb.ConsumedCapacity{}, err
	}
	if len(resp.RowBytes) == 0 {
		return model.Row{}, false, resp.Consumed, nil
	}
	row, err = plainbuffer.Decode(resp.RowBytes)
	if err != nil {
		return model.Row{}, false, pb.ConsumedCapacity{}, err
	}
	return row, true, resp.Consumed, nil
}

// PutRowOp is the builder returned by Client.PutRow.
type PutRowOp struct {
	c         *Client
	tableName string
	pk        []model.PrimaryKeyColumn
	columns   []model.DataColumn
	existence RowExistence
	condition *model.Filter
	timeoutMs int64
}

// PutRow starts a PutRowOp writing a fresh row (all existing versions of the
// named columns are replaced).
func (c *Client) PutRow(tableName string, pk []model.PrimaryKeyColumn, columns []model.DataColumn) PutRowOp {
	return PutRowOp{c: c, tableName: tableName, pk: pk, columns: columns, existence: IgnoreExistence}
}

func (op PutRowOp) Condition(existence RowExistence) PutRowOp { op.existence = existence; return op }
func (op PutRowOp) ConditionFilter(f model.Filter) PutRowOp   { op.condition = &f; return op }
func (op PutRowOp) TimeoutMs(ms int64) PutRowOp               { op.timeoutMs = ms; return op }

func (op PutRowOp) Send(ctx context.Context) (consumed pb.ConsumedCapacity, err error) {
	if err = validate.TableName(op.tableName); err != nil {
		return pb.ConsumedCapacity{}, err
	}
	rowBytes, err := plainbuffer.EncodeRow(model.Row{PK: op.pk, Columns: op.columns}, plainbuffer.DefaultFlags)
	if err != nil {
		return pb.ConsumedCapacity{}, err
	}
	req := &pb.PutRowRequest{
		TableName: op.tableName,
		RowBytes:  rowBytes,
		Condition: pb.Condition{RowExistence: string(op.existence), FilterBytes: filterBytesOf(op.condition)},
	}
	body, err := op.c.dispatcher.Call(ctx, opcode.PutRow, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return pb.ConsumedCapacity{}, err
	}
	resp, err := pb.UnmarshalPutRowResponse(body)
	if err != nil {
		return pb.ConsumedCapacity{}, err
	}
	return resp.Consumed, nil
}

// UpdateRowOp is the builder returned by Client.UpdateRow. columns carry a
// per-cell model.UpdateType (plain put when UpdateNone, spec §4.2.4).
type UpdateRowOp struct {
	c         *Client
	tableName string
	pk        []model.PrimaryKeyColumn
	columns   []model.DataColumn
	existence RowExistence
	condition *model.Filter
	timeoutMs int64
}

func (c *Client) UpdateRow(tableName string, pk []model.PrimaryKeyColumn, columns []model.DataColumn) UpdateRowOp {
	return UpdateRowOp{c: c, tableName: tableName, pk: pk, columns: columns, existence: ExpectExist}
}

func (op UpdateRowOp) Condition(existence RowExistence) UpdateRowOp { op.existence = existence; return op }
func (op UpdateRowOp) ConditionFilter(f model.Filter) UpdateRowOp   { op.condition = &f; return op }
func (op UpdateRowOp) TimeoutMs(ms int64) UpdateRowOp               { op.timeoutMs = ms; return op }

func (op UpdateRowOp) Send(ctx context.Context) (consumed pb.ConsumedCapacity, err error) {
	if err = validate.TableName(op.tableName); err != nil {
		return pb.ConsumedCapacity{}, err
	}
	rowBytes, err := plainbuffer.EncodeRow(model.Row{PK: op.pk, Columns: op.columns}, plainbuffer.DefaultFlags)
	if err != nil {
		return pb.ConsumedCapacity{}, err
	}
	req := &pb.UpdateRowRequest{
		TableName: op.tableName,
		RowBytes:  rowBytes,
		Condition: pb.Condition{RowExistence: string(op.existence), FilterBytes: filterBytesOf(op.condition)},
	}
	body, err := op.c.dispatcher.Call(ctx, opcode.UpdateRow, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return pb.ConsumedCapacity{}, err
	}
	resp, err := pb.UnmarshalUpdateRowResponse(body)
	if err != nil {
		return pb.ConsumedCapacity{}, err
	}
	return resp.Consumed, nil
}

// DeleteRowOp is the builder returned by Client.DeleteRow.
type DeleteRowOp struct {
	c         *Client
	tableName string
	pk        []model.PrimaryKeyColumn
	existence RowExistence
	condition *model.Filter
	timeoutMs int64
}

func (c *Client) DeleteRow(tableName string, pk []model.PrimaryKeyColumn) DeleteRowOp {
	return DeleteRowOp{c: c, tableName: tableName, pk: pk, existence: IgnoreExistence}
}

func (op DeleteRowOp) Condition(existence RowExistence) DeleteRowOp { op.existence = existence; return op }
func (op DeleteRowOp) ConditionFilter(f model.Filter) DeleteRowOp   { op.condition = &f; return op }
func (op DeleteRowOp) TimeoutMs(ms int64) DeleteRowOp               { op.timeoutMs = ms; return op }

func (op DeleteRowOp) Send(ctx context.Context) (consumed pb.ConsumedCapacity, err error) {
	if err = validate.TableName(op.tableName); err != nil {
		return pb.ConsumedCapacity{}, err
	}
	pkBytes, err := encodePK(op.pk)
	if err != nil {
		return pb.ConsumedCapacity{}, err
	}
	req := &pb.DeleteRowRequest{
		TableName:       op.tableName,
		PrimaryKeyBytes: pkBytes,
		Condition:       pb.Condition{RowExistence: string(op.existence), FilterBytes: filterBytesOf(op.condition)},
	}
	body, err := op.c.dispatcher.Call(ctx, opcode.DeleteRow, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return pb.ConsumedCapacity{}, err
	}
	resp, err := pb.UnmarshalDeleteRowResponse(body)
	if err != nil {
		return pb.ConsumedCapacity{}, err
	}
	return resp.Consumed, nil
}

// GetRangeOp is the builder returned by Client.GetRange. Bounds may use
// model.PkInfMinValue/PkInfMaxValue to express an open end (spec §3.1).
type GetRangeOp struct {
	c              *Client
	tableName      string
	direction      string
	startPK        []model.PrimaryKeyColumn
	endPK          []model.PrimaryKeyColumn
	columnsToGet   []string
	limit          int64
	maxVersions    int64
	maxVersionsSet bool
	timeRange      *pb.TimeRange
	filter         *model.Filter
	token          []byte
	timeoutMs      int64
}

// GetRange starts a forward scan over [startPK, endPK). Call Backward to
// scan in reverse.
func (c *Client) GetRange(tableName string, startPK, endPK []model.PrimaryKeyColumn) GetRangeOp {
	return GetRangeOp{c: c, tableName: tableName, direction: "FORWARD", startPK: startPK, endPK: endPK}
}

func (op GetRangeOp) Backward() GetRangeOp                { op.direction = "BACKWARD"; return op }
func (op GetRangeOp) ColumnsToGet(cols ...string) GetRangeOp { op.columnsToGet = cols; return op }
func (op GetRangeOp) Limit(n int64) GetRangeOp             { op.limit = n; return op }
func (op GetRangeOp) MaxVersions(n int64) GetRangeOp {
	op.maxVersions, op.maxVersionsSet = n, true
	return op
}
func (op GetRangeOp) TimeRange(startMs, endMs int64) GetRangeOp {
	op.timeRange = &pb.TimeRange{Start: startMs, End: endMs}
	return op
}
func (op GetRangeOp) Filter(f model.Filter) GetRangeOp { op.filter = &f; return op }
func (op GetRangeOp) Token(tok []byte) GetRangeOp      { op.token = tok; return op }
func (op GetRangeOp) TimeoutMs(ms int64) GetRangeOp    { op.timeoutMs = ms; return op }

// Send dispatches the GetRange RPC. Call again with the returned token to
// continue a scan that did not fit the response limit.
func (op GetRangeOp) Send(ctx context.Context) (rows []model.Row, nextToken []byte, consumed pb.ConsumedCapacity, err error) {
	if err = validate.TableName(op.tableName); err != nil {
		return nil, nil, pb.ConsumedCapacity{}, err
	}
	if err = validate.GetRangeMutualExclusion(op.timeRange != nil, op.maxVersionsSet); err != nil {
		return nil, nil, pb.ConsumedCapacity{}, err
	}
	startBytes, err := encodePK(op.startPK)
	if err != nil {
		return nil, nil, pb.ConsumedCapacity{}, err
	}
	endBytes, err := encodePK(op.endPK)
	if err != nil {
		return nil, nil, pb.ConsumedCapacity{}, err
	}
	if err = validate.GetRangeBounds(len(startBytes), len(endBytes)); err != nil {
		return nil, nil, pb.ConsumedCapacity{}, err
	}
	req := &pb.GetRangeRequest{
		TableName:    op.tableName,
		Direction:    op.direction,
		ColumnsToGet: op.columnsToGet,
		StartPKBytes: startBytes,
		EndPKBytes:   endBytes,
		Limit:        op.limit,
		MaxVersions:  op.maxVersions,
		TimeRange:    op.timeRange,
		FilterBytes:  filterBytesOf(op.filter),
		Token:        op.token,
	}
	body, err := op.c.dispatcher.Call(ctx, opcode.GetRange, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return nil, nil, pb.ConsumedCapacity{}, err
	}
	resp, err := pb.UnmarshalGetRangeResponse(body)
	if err != nil {
		return nil, nil, pb.ConsumedCapacity{}, err
	}
	rows, err = plainbuffer.DecodeRows(resp.RowsBytes)
	if err != nil {
		return nil, nil, pb.ConsumedCapacity{}, err
	}
	return rows, resp.NextToken, resp.Consumed, nil
}

// BatchGetTable is one table's share of a BatchGetRowOp.
type BatchGetTable struct {
	tableName    string
	pks          [][]model.PrimaryKeyColumn
	columnsToGet []string
	maxVersions  int64
	timeRange    *pb.TimeRange
	filter       *model.Filter
}

// NewBatchGetTable starts a BatchGetTable reading the given rows of
// tableName.
func NewBatchGetTable(tableName string, pks ...[]model.PrimaryKeyColumn) BatchGetTable {
	return BatchGetTable{tableName: tableName, pks: pks}
}

func (t BatchGetTable) ColumnsToGet(cols ...string) BatchGetTable { t.columnsToGet = cols; return t }
func (t BatchGetTable) MaxVersions(n int64) BatchGetTable         { t.maxVersions = n; return t }
func (t BatchGetTable) Filter(f model.Filter) BatchGetTable       { t.filter = &f; return t }

// BatchGetRowItem is one row's outcome within a BatchGetRowResult.
type BatchGetRowItem struct {
	IsOK         bool
	ErrorCode    string
	ErrorMessage string
	Consumed     pb.ConsumedCapacity
	Row          model.Row
	Found        bool
}

// BatchGetRowResult groups BatchGetRowItem by table, in request order.
type BatchGetRowResult struct {
	TableName string
	Rows      []BatchGetRowItem
}

// BatchGetRowOp is the builder returned by Client.BatchGetRow.
type BatchGetRowOp struct {
	c         *Client
	tables    []BatchGetTable
	timeoutMs int64
}

func (c *Client) BatchGetRow() BatchGetRowOp { return BatchGetRowOp{c: c} }

func (op BatchGetRowOp) AddTable(t BatchGetTable) BatchGetRowOp {
	op.tables = append(append([]BatchGetTable(nil), op.tables...), t)
	return op
}
func (op BatchGetRowOp) TimeoutMs(ms int64) BatchGetRowOp { op.timeoutMs = ms; return op }

func (op BatchGetRowOp) Send(ctx context.Context) ([]BatchGetRowResult, error) {
	tableNames := make([]string, len(op.tables))
	rowsPerTable := make([]int, len(op.tables))
	columnsPerTable := make([]int, len(op.tables))
	var rowHasPK []bool
	reqTables := make([]pb.TableInBatchGetRow, len(op.tables))
	for i, t := range op.tables {
		if err := validate.TableName(t.tableName); err != nil {
			return nil, err
		}
		tableNames[i] = t.tableName
		rowsPerTable[i] = len(t.pks)
		columnsPerTable[i] = len(t.columnsToGet)
		pkBytes := make([][]byte, len(t.pks))
		for j, pk := range t.pks {
			rowHasPK = append(rowHasPK, len(pk) > 0)
			b, err := encodePK(pk)
			if err != nil {
				return nil, err
			}
			pkBytes[j] = b
		}
		reqTables[i] = pb.TableInBatchGetRow{
			TableName:       t.tableName,
			PrimaryKeyBytes: pkBytes,
			ColumnsToGet:    t.columnsToGet,
			MaxVersions:     t.maxVersions,
			TimeRange:       t.timeRange,
			FilterBytes:     filterBytesOf(t.filter),
		}
	}
	if err := validate.BatchGetRow(tableNames, rowsPerTable, columnsPerTable, rowHasPK); err != nil {
		return nil, err
	}
	req := &pb.BatchGetRowRequest{Tables: reqTables}
	body, err := op.c.dispatcher.Call(ctx, opcode.BatchGetRow, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return nil, err
	}
	resp, err := pb.UnmarshalBatchGetRowResponse(body)
	if err != nil {
		return nil, err
	}
	results := make([]BatchGetRowResult, len(resp.Tables))
	eg := &errgroup.Group{}
	for i, t := range resp.Tables {
		i, t := i, t
		eg.Go(func() error {
			items := make([]BatchGetRowItem, len(t.Rows))
			for j, r := range t.Rows {
				item := BatchGetRowItem{IsOK: r.IsOK, ErrorCode: r.ErrorCode, ErrorMessage: r.ErrorMessage, Consumed: r.Consumed}
				if r.IsOK && len(r.RowBytes) > 0 {
					row, err := plainbuffer.Decode(r.RowBytes)
					if err != nil {
						return err
					}
					item.Row = row
					item.Found = true
				}
				items[j] = item
			}
			results[i] = BatchGetRowResult{TableName: t.TableName, Rows: items}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// BatchWriteRowItem is one Put/Update/Delete operation inside a
// BatchWriteTable.
type BatchWriteRowItem struct {
	kind      string
	row       model.Row
	existence RowExistence
	filter    *model.Filter
}

// PutInBatch builds a PUT item for a BatchWriteTable.
func PutInBatch(pk []model.PrimaryKeyColumn, columns []model.DataColumn, existence RowExistence) BatchWriteRowItem {
	return BatchWriteRowItem{kind: "PUT", row: model.Row{PK: pk, Columns: columns}, existence: existence}
}

// UpdateInBatch builds an UPDATE item for a BatchWriteTable.
func UpdateInBatch(pk []model.PrimaryKeyColumn, columns []model.DataColumn, existence RowExistence) BatchWriteRowItem {
	return BatchWriteRowItem{kind: "UPDATE", row: model.Row{PK: pk, Columns: columns}, existence: existence}
}

// DeleteInBatch builds a DELETE item for a BatchWriteTable.
func DeleteInBatch(pk []model.PrimaryKeyColumn, existence RowExistence) BatchWriteRowItem {
	return BatchWriteRowItem{kind: "DELETE", row: model.Row{PK: pk}, existence: existence}
}

// ConditionFilter attaches a column-level filter to item's precondition.
func (item BatchWriteRowItem) ConditionFilter(f model.Filter) BatchWriteRowItem {
	item.filter = &f
	return item
}

// BatchWriteTable is one table's share of a BatchWriteRowOp.
type BatchWriteTable struct {
	tableName string
	items     []BatchWriteRowItem
}

// NewBatchWriteTable starts a BatchWriteTable for tableName.
func NewBatchWriteTable(tableName string, items ...BatchWriteRowItem) BatchWriteTable {
	return BatchWriteTable{tableName: tableName, items: items}
}

// BatchWriteRowItemResult is one row operation's outcome.
type BatchWriteRowItemResult struct {
	IsOK         bool
	ErrorCode    string
	ErrorMessage string
	Consumed     pb.ConsumedCapacity
	Row          model.Row
	Found        bool
}

// BatchWriteRowResult groups BatchWriteRowItemResult by table, in request order.
type BatchWriteRowResult struct {
	TableName string
	Rows      []BatchWriteRowItemResult
}

// BatchWriteRowOp is the builder returned by Client.BatchWriteRow.
type BatchWriteRowOp struct {
	c         *Client
	tables    []BatchWriteTable
	timeoutMs int64
}

func (c *Client) BatchWriteRow() BatchWriteRowOp { return BatchWriteRowOp{c: c} }

func (op BatchWriteRowOp) AddTable(t BatchWriteTable) BatchWriteRowOp {
	op.tables = append(append([]BatchWriteTable(nil), op.tables...), t)
	return op
}
func (op BatchWriteRowOp) TimeoutMs(ms int64) BatchWriteRowOp { op.timeoutMs = ms; return op }

func (op BatchWriteRowOp) Send(ctx context.Context) ([]BatchWriteRowResult, error) {
	total := 0
	reqTables := make([]pb.TableInBatchWriteRow, len(op.tables))
	for i, t := range op.tables {
		if err := validate.TableName(t.tableName); err != nil {
			return nil, err
		}
		total += len(t.items)
		rows := make([]pb.RowInBatchWriteRow, len(t.items))
		for j, item := range t.items {
			rowBytes, err := plainbuffer.EncodeRow(item.row, plainbuffer.DefaultFlags)
			if err != nil {
				return nil, err
			}
			rows[j] = pb.RowInBatchWriteRow{
				Kind:     item.kind,
				RowBytes: rowBytes,
				Condition: pb.Condition{
					RowExistence: string(item.existence),
					FilterBytes:  filterBytesOf(item.filter),
				},
			}
		}
		reqTables[i] = pb.TableInBatchWriteRow{TableName: t.tableName, Rows: rows}
	}
	if err := validate.BatchWriteRow(total); err != nil {
		return nil, err
	}
	req := &pb.BatchWriteRowRequest{Tables: reqTables}
	body, err := op.c.dispatcher.Call(ctx, opcode.BatchWriteRow, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return nil, err
	}
	resp, err := pb.UnmarshalBatchWriteRowResponse(body)
	if err != nil {
		return nil, err
	}
	results := make([]BatchWriteRowResult, len(resp.Tables))
	eg := &errgroup.Group{}
	for i, t := range resp.Tables {
		i, t := i, t
		eg.Go(func() error {
			items := make([]BatchWriteRowItemResult, len(t.Rows))
			for j, r := range t.Rows {
				item := BatchWriteRowItemResult{IsOK: r.IsOK, ErrorCode: r.ErrorCode, ErrorMessage: r.ErrorMessage, Consumed: r.Consumed}
				if r.IsOK && len(r.RowBytes) > 0 {
					row, err := plainbuffer.Decode(r.RowBytes)
					if err != nil {
						return err
					}
					item.Row = row
					item.Found = true
				}
				items[j] = item
			}
			results[i] = BatchWriteRowResult{TableName: t.TableName, Rows: items}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// BulkImportOp is the builder returned by Client.BulkImport.
type BulkImportOp struct {
	c         *Client
	tableName string
	rows      []model.Row
	timeoutMs int64
}

// BulkImport starts a BulkImportOp writing rows (1..200) to a single table
// in one call, without per-row conditions (spec §4.5.2).
func (c *Client) BulkImport(tableName string, rows []model.Row) BulkImportOp {
	return BulkImportOp{c: c, tableName: tableName, rows: rows}
}

func (op BulkImportOp) TimeoutMs(ms int64) BulkImportOp { op.timeoutMs = ms; return op }

func (op BulkImportOp) Send(ctx context.Context) (consumed pb.ConsumedCapacity, err error) {
	if err = validate.TableName(op.tableName); err != nil {
		return pb.ConsumedCapacity{}, err
	}
	if err = validate.BulkImport(len(op.rows)); err != nil {
		return pb.ConsumedCapacity{}, err
	}
	rowsBytes := make([][]byte, len(op.rows))
	for i, r := range op.rows {
		b, err := plainbuffer.EncodeRow(r, plainbuffer.DefaultFlags)
		if err != nil {
			return pb.ConsumedCapacity{}, err
		}
		rowsBytes[i] = b
	}
	req := &pb.BulkImportRequest{TableName: op.tableName, RowsBytes: rowsBytes}
	reqBody := req.Marshal()
	body, err := op.c.dispatcher.Call(ctx, opcode.BulkImport, reqBody, transport.Options{
		TimeoutMs:  op.c.resolveTimeout(op.timeoutMs),
		Compressed: op.c.compressIfLarge(reqBody),
	})
	if err != nil {
		return pb.ConsumedCapacity{}, err
	}
	resp, err := pb.UnmarshalBulkImportResponse(body)
	if err != nil {
		return pb.ConsumedCapacity{}, err
	}
	return resp.Consumed, nil
}

// BulkExportReturnType selects the wire shape of a BulkExportOp's response.
type BulkExportReturnType string

const (
	ReturnPlainBuffer    BulkExportReturnType = "PLAIN_BUFFER"
	ReturnSimpleRowMatrix BulkExportReturnType = "SIMPLE_ROW_MATRIX"
)

// BulkExportOp is the builder returned by Client.BulkExport.
type BulkExportOp struct {
	c            *Client
	tableName    string
	startPK      []model.PrimaryKeyColumn
	endPK        []model.PrimaryKeyColumn
	columnsToGet []string
	returnType   BulkExportReturnType
	token        []byte
	timeoutMs    int64
}

// BulkExport starts a BulkExportOp reading [startPK, endPK) of tableName,
// returned as PlainBuffer rows by default; call AsSimpleRowMatrix to switch.
func (c *Client) BulkExport(tableName string, startPK, endPK []model.PrimaryKeyColumn) BulkExportOp {
	return BulkExportOp{c: c, tableName: tableName, startPK: startPK, endPK: endPK, returnType: ReturnPlainBuffer}
}

func (op BulkExportOp) ColumnsToGet(cols ...string) BulkExportOp { op.columnsToGet = cols; return op }
func (op BulkExportOp) AsSimpleRowMatrix() BulkExportOp {
	op.returnType = ReturnSimpleRowMatrix
	return op
}
func (op BulkExportOp) Token(tok []byte) BulkExportOp   { op.token = tok; return op }
func (op BulkExportOp) TimeoutMs(ms int64) BulkExportOp { op.timeoutMs = ms; return op }

func (op BulkExportOp) Send(ctx context.Context) (rows []model.Row, nextToken []byte, consumed pb.ConsumedCapacity, err error) {
	if err = validate.TableName(op.tableName); err != nil {
		return nil, nil, pb.ConsumedCapacity{}, err
	}
	if err = validate.BulkExportSRMColumns(op.returnType == ReturnSimpleRowMatrix, len(op.columnsToGet)); err != nil {
		return nil, nil, pb.ConsumedCapacity{}, err
	}
	startBytes, err := encodePK(op.startPK)
	if err != nil {
		return nil, nil, pb.ConsumedCapacity{}, err
	}
	endBytes, err := encodePK(op.endPK)
	if err != nil {
		return nil, nil, pb.ConsumedCapacity{}, err
	}
	req := &pb.BulkExportRequest{
		TableName:    op.tableName,
		StartPKBytes: startBytes,
		EndPKBytes:   endBytes,
		ColumnsToGet: op.columnsToGet,
		ReturnType:   string(op.returnType),
		Token:        op.token,
	}
	reqBody := req.Marshal()
	body, err := op.c.dispatcher.Call(ctx, opcode.BulkExport, reqBody, transport.Options{
		TimeoutMs:  op.c.resolveTimeout(op.timeoutMs),
		Compressed: op.c.compressIfLarge(reqBody),
	})
	if err != nil {
		return nil, nil, pb.ConsumedCapacity{}, err
	}
	resp, err := pb.UnmarshalBulkExportResponse(body)
	if err != nil {
		return nil, nil, pb.ConsumedCapacity{}, err
	}
	if resp.IsSRM {
		rows, err = srm.Decode(resp.DataBytes)
	} else {
		rows, err = plainbuffer.DecodeRows(resp.DataBytes)
	}
	if err != nil {
		return nil, nil, pb.ConsumedCapacity{}, err
	}
	return rows, resp.NextToken, resp.Consumed, nil
}
