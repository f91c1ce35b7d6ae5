package tablestore

import (
	"context"

	"github.com/go-tablestore/tablestore/model"
	"github.com/go-tablestore/tablestore/opcode"
	"github.com/go-tablestore/tablestore/pb"
	"github.com/go-tablestore/tablestore/transport"
	"github.com/go-tablestore/tablestore/tsfb"
	"github.com/go-tablestore/tablestore/validate"
)

func validateTsKey(m, ds string, tags map[string]string) error {
	if err := validate.Measurement(m); err != nil {
		return err
	}
	if err := validate.Datasource(ds); err != nil {
		return err
	}
	for k, v := range tags {
		if err := validate.TagName(k); err != nil {
			return err
		}
		if err := validate.TagValue(v); err != nil {
			return err
		}
	}
	return nil
}

func disallowedTsFieldValue(cols []model.DataColumn) bool {
	for _, c := range cols {
		switch c.Value.Kind() {
		case model.ColNull, model.ColInfMin, model.ColInfMax:
			return true
		}
	}
	return false
}

// CreateTimeseriesTableOp is the builder returned by Client.CreateTimeseriesTable.
type CreateTimeseriesTableOp struct {
	c                 *Client
	tableName         string
	timeToLiveSeconds int64
	timeoutMs         int64
}

func (c *Client) CreateTimeseriesTable(tableName string) CreateTimeseriesTableOp {
	return CreateTimeseriesTableOp{c: c, tableName: tableName, timeToLiveSeconds: -1}
}

func (op CreateTimeseriesTableOp) TimeToLive(seconds int64) CreateTimeseriesTableOp {
	op.timeToLiveSeconds = seconds
	return op
}
func (op CreateTimeseriesTableOp) TimeoutMs(ms int64) CreateTimeseriesTableOp { op.timeoutMs = ms; return op }

func (op CreateTimeseriesTableOp) Send(ctx context.Context) error {
	if err := validate.TimeseriesTableName(op.tableName); err != nil {
		return err
	}
	if err := validate.CreateTableTTL(op.timeToLiveSeconds); err != nil {
		return err
	}
	req := &pb.CreateTimeseriesTableRequest{TableName: op.tableName, TimeToLiveSeconds: op.timeToLiveSeconds}
	body, err := op.c.dispatcher.Call(ctx, opcode.CreateTimeseriesTable, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return err
	}
	_, err = pb.UnmarshalCreateTimeseriesTableResponse(body)
	return err
}

// ListTimeseriesTableOp is the builder returned by Client.ListTimeseriesTable.
type ListTimeseriesTableOp struct {
	c         *Client
	timeoutMs int64
}

func (c *Client) ListTimeseriesTable() ListTimeseriesTableOp { return ListTimeseriesTableOp{c: c} }

func (op ListTimeseriesTableOp) TimeoutMs(ms int64) ListTimeseriesTableOp { op.timeoutMs = ms; return op }

func (op ListTimeseriesTableOp) Send(ctx context.Context) ([]string, error) {
	req := &pb.ListTimeseriesTableRequest{}
	body, err := op.c.dispatcher.Call(ctx, opcode.ListTimeseriesTable, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return nil, err
	}
	resp, err := pb.UnmarshalListTimeseriesTableResponse(body)
	if err != nil {
		return nil, err
	}
	return resp.TableNames, nil
}

// DescribeTimeseriesTableOp is the builder returned by Client.DescribeTimeseriesTable.
type DescribeTimeseriesTableOp struct {
	c         *Client
	tableName string
	timeoutMs int64
}

func (c *Client) DescribeTimeseriesTable(tableName string) DescribeTimeseriesTableOp {
	return DescribeTimeseriesTableOp{c: c, tableName: tableName}
}

func (op DescribeTimeseriesTableOp) TimeoutMs(ms int64) DescribeTimeseriesTableOp {
	op.timeoutMs = ms
	return op
}

func (op DescribeTimeseriesTableOp) Send(ctx context.Context) (pb.DescribeTimeseriesTableResponse, error) {
	if err := validate.TimeseriesTableName(op.tableName); err != nil {
		return pb.DescribeTimeseriesTableResponse{}, err
	}
	req := &pb.DescribeTimeseriesTableRequest{TableName: op.tableName}
	body, err := op.c.dispatcher.Call(ctx, opcode.DescribeTimeseriesTable, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return pb.DescribeTimeseriesTableResponse{}, err
	}
	return pb.UnmarshalDescribeTimeseriesTableResponse(body)
}

// UpdateTimeseriesTableOp is the builder returned by Client.UpdateTimeseriesTable.
type UpdateTimeseriesTableOp struct {
	c                 *Client
	tableName         string
	timeToLiveSeconds int64
	timeoutMs         int64
}

func (c *Client) UpdateTimeseriesTable(tableName string, timeToLiveSeconds int64) UpdateTimeseriesTableOp {
	return UpdateTimeseriesTableOp{c: c, tableName: tableName, timeToLiveSeconds: timeToLiveSeconds}
}

func (op UpdateTimeseriesTableOp) TimeoutMs(ms int64) UpdateTimeseriesTableOp { op.timeoutMs = ms; return op }

func (op UpdateTimeseriesTableOp) Send(ctx context.Context) error {
	if err := validate.TimeseriesTableName(op.tableName); err != nil {
		return err
	}
	if err := validate.CreateTableTTL(op.timeToLiveSeconds); err != nil {
		return err
	}
	req := &pb.UpdateTimeseriesTableRequest{TableName: op.tableName, TimeToLiveSeconds: op.timeToLiveSeconds}
	body, err := op.c.dispatcher.Call(ctx, opcode.UpdateTimeseriesTable, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return err
	}
	_, err = pb.UnmarshalUpdateTimeseriesTableResponse(body)
	return err
}

// DeleteTimeseriesTableOp is the builder returned by Client.DeleteTimeseriesTable.
type DeleteTimeseriesTableOp struct {
	c         *Client
	tableName string
	timeoutMs int64
}

func (c *Client) DeleteTimeseriesTable(tableName string) DeleteTimeseriesTableOp {
	return DeleteTimeseriesTableOp{c: c, tableName: tableName}
}

func (op DeleteTimeseriesTableOp) TimeoutMs(ms int64) DeleteTimeseriesTableOp { op.timeoutMs = ms; return op }

func (op DeleteTimeseriesTableOp) Send(ctx context.Context) error {
	if err := validate.TimeseriesTableName(op.tableName); err != nil {
		return err
	}
	req := &pb.DeleteTimeseriesTableRequest{TableName: op.tableName}
	body, err := op.c.dispatcher.Call(ctx, opcode.DeleteTimeseriesTable, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return err
	}
	_, err = pb.UnmarshalDeleteTimeseriesTableResponse(body)
	return err
}

// PutTimeseriesDataOp is the builder returned by Client.PutTimeseriesData.
type PutTimeseriesDataOp struct {
	c         *Client
	tableName string
	rows      []model.TsRow
	timeoutMs int64
}

// PutTimeseriesData starts a PutTimeseriesDataOp writing rows (at most 200)
// to a single time-series table in one call.
func (c *Client) PutTimeseriesData(tableName string, rows []model.TsRow) PutTimeseriesDataOp {
	return PutTimeseriesDataOp{c: c, tableName: tableName, rows: rows}
}

func (op PutTimeseriesDataOp) TimeoutMs(ms int64) PutTimeseriesDataOp { op.timeoutMs = ms; return op }

func (op PutTimeseriesDataOp) Send(ctx context.Context) ([]pb.FailedRowInPut, error) {
	if err := validate.TimeseriesTableName(op.tableName); err != nil {
		return nil, err
	}
	fieldsPerRow := make([]int, len(op.rows))
	hasDisallowed := make([]bool, len(op.rows))
	for i, r := range op.rows {
		if err := validateTsKey(r.Measurement, r.Datasource, r.Tags); err != nil {
			return nil, err
		}
		for _, f := range r.Fields {
			if err := validate.FieldName(f.Name); err != nil {
				return nil, err
			}
		}
		fieldsPerRow[i] = len(r.Fields)
		hasDisallowed[i] = disallowedTsFieldValue(r.Fields)
	}
	if err := validate.TimeseriesPut(len(op.rows), fieldsPerRow, hasDisallowed); err != nil {
		return nil, err
	}
	rowGroups := make([][]byte, len(op.rows))
	for i, r := range op.rows {
		b, err := tsfb.EncodeRow(r)
		if err != nil {
			return nil, err
		}
		rowGroups[i] = b
	}
	req := &pb.PutTimeseriesDataRequest{TableName: op.tableName, RowGroupBytes: rowGroups}
	reqBody := req.Marshal()
	body, err := op.c.dispatcher.Call(ctx, opcode.PutTimeseriesData, reqBody, transport.Options{
		TimeoutMs:  op.c.resolveTimeout(op.timeoutMs),
		Compressed: op.c.compressIfLarge(reqBody),
	})
	if err != nil {
		return nil, err
	}
	resp, err := pb.UnmarshalPutTimeseriesDataResponse(body)
	if err != nil {
		return nil, err
	}
	return resp.FailedRows, nil
}

// GetTimeseriesDataOp is the builder returned by Client.GetTimeseriesData.
type GetTimeseriesDataOp struct {
	c           *Client
	tableName   string
	measurement string
	datasource  string
	tags        map[string]string
	beginTimeUs int64
	endTimeUs   int64
	fieldsToGet []string
	limit       int64
	token       []byte
	timeoutMs   int64
}

// GetTimeseriesData starts a GetTimeseriesDataOp reading the time-line
// identified by (measurement, datasource, tags) in [beginTimeUs, endTimeUs).
func (c *Client) GetTimeseriesData(tableName, measurement string) GetTimeseriesDataOp {
	return GetTimeseriesDataOp{c: c, tableName: tableName, measurement: measurement}
}

func (op GetTimeseriesDataOp) Datasource(ds string) GetTimeseriesDataOp { op.datasource = ds; return op }
func (op GetTimeseriesDataOp) Tags(tags map[string]string) GetTimeseriesDataOp {
	op.tags = tags
	return op
}
func (op GetTimeseriesDataOp) TimeRange(beginUs, endUs int64) GetTimeseriesDataOp {
	op.beginTimeUs, op.endTimeUs = beginUs, endUs
	return op
}
func (op GetTimeseriesDataOp) FieldsToGet(fields ...string) GetTimeseriesDataOp {
	op.fieldsToGet = fields
	return op
}
func (op GetTimeseriesDataOp) Limit(n int64) GetTimeseriesDataOp { op.limit = n; return op }
func (op GetTimeseriesDataOp) Token(tok []byte) GetTimeseriesDataOp { op.token = tok; return op }
func (op GetTimeseriesDataOp) TimeoutMs(ms int64) GetTimeseriesDataOp { op.timeoutMs = ms; return op }

func (op GetTimeseriesDataOp) Send(ctx context.Context) (rows []model.TsRow, nextToken []byte, err error) {
	if err = validate.TimeseriesTableName(op.tableName); err != nil {
		return nil, nil, err
	}
	if err = validate.Measurement(op.measurement); err != nil {
		return nil, nil, err
	}
	req := &pb.GetTimeseriesDataRequest{
		TableName:   op.tableName,
		Measurement: op.measurement,
		DataSource:  op.datasource,
		Tags:        op.tags,
		BeginTimeUs: op.beginTimeUs,
		EndTimeUs:   op.endTimeUs,
		FieldsToGet: op.fieldsToGet,
		Limit:       op.limit,
		Token:       op.token,
	}
	body, err := op.c.dispatcher.Call(ctx, opcode.GetTimeseriesData, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return nil, nil, err
	}
	resp, err := pb.UnmarshalGetTimeseriesDataResponse(body)
	if err != nil {
		return nil, nil, err
	}
	rows, err = tsfb.DecodeRowGroup(resp.RowGroupBytes)
	if err != nil {
		return nil, nil, err
	}
	return rows, resp.NextToken, nil
}

// QueryTimeseriesMetaOp is the builder returned by Client.QueryTimeseriesMeta.
type QueryTimeseriesMetaOp struct {
	c               *Client
	tableName       string
	measurementLike string
	tags            map[string]string
	token           []byte
	limit           int64
	timeoutMs       int64
}

func (c *Client) QueryTimeseriesMeta(tableName string) QueryTimeseriesMetaOp {
	return QueryTimeseriesMetaOp{c: c, tableName: tableName}
}

func (op QueryTimeseriesMetaOp) MeasurementLike(pattern string) QueryTimeseriesMetaOp {
	op.measurementLike = pattern
	return op
}
func (op QueryTimeseriesMetaOp) Tags(tags map[string]string) QueryTimeseriesMetaOp {
	op.tags = tags
	return op
}
func (op QueryTimeseriesMetaOp) Token(tok []byte) QueryTimeseriesMetaOp { op.token = tok; return op }
func (op QueryTimeseriesMetaOp) Limit(n int64) QueryTimeseriesMetaOp   { op.limit = n; return op }
func (op QueryTimeseriesMetaOp) TimeoutMs(ms int64) QueryTimeseriesMetaOp {
	op.timeoutMs = ms
	return op
}

func (op QueryTimeseriesMetaOp) Send(ctx context.Context) ([]pb.TimeseriesMetaEntry, []byte, error) {
	if err := validate.TimeseriesTableName(op.tableName); err != nil {
		return nil, nil, err
	}
	req := &pb.QueryTimeseriesMetaRequest{
		TableName:       op.tableName,
		MeasurementLike: op.measurementLike,
		Tags:            op.tags,
		Token:           op.token,
		Limit:           op.limit,
	}
	body, err := op.c.dispatcher.Call(ctx, opcode.QueryTimeseriesMeta, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return nil, nil, err
	}
	resp, err := pb.UnmarshalQueryTimeseriesMetaResponse(body)
	if err != nil {
		return nil, nil, err
	}
	return resp.Entries, resp.NextToken, nil
}

func tsMetaEntries(metas []model.TsMeta) []pb.TimeseriesMetaEntry {
	out := make([]pb.TimeseriesMetaEntry, len(metas))
	for i, m := range metas {
		var updateUs int64
		if m.UpdateTimeUs != nil {
			updateUs = *m.UpdateTimeUs
		}
		out[i] = pb.TimeseriesMetaEntry{
			Measurement:  m.Key.Measurement,
			DataSource:   m.Key.Datasource,
			Tags:         m.Key.Tags,
			Attributes:   m.Attributes,
			UpdateTimeUs: updateUs,
		}
	}
	return out
}

// UpdateTimeseriesMetaOp is the builder returned by Client.UpdateTimeseriesMeta.
type UpdateTimeseriesMetaOp struct {
	c         *Client
	tableName string
	metas     []model.TsMeta
	timeoutMs int64
}

func (c *Client) UpdateTimeseriesMeta(tableName string, metas ...model.TsMeta) UpdateTimeseriesMetaOp {
	return UpdateTimeseriesMetaOp{c: c, tableName: tableName, metas: metas}
}

func (op UpdateTimeseriesMetaOp) TimeoutMs(ms int64) UpdateTimeseriesMetaOp { op.timeoutMs = ms; return op }

func (op UpdateTimeseriesMetaOp) Send(ctx context.Context) ([]pb.FailedRowInPut, error) {
	if err := validate.TimeseriesTableName(op.tableName); err != nil {
		return nil, err
	}
	for _, m := range op.metas {
		if err := validateTsKey(m.Key.Measurement, m.Key.Datasource, m.Key.Tags); err != nil {
			return nil, err
		}
	}
	req := &pb.UpdateTimeseriesMetaRequest{TableName: op.tableName, Entries: tsMetaEntries(op.metas)}
	body, err := op.c.dispatcher.Call(ctx, opcode.UpdateTimeseriesMeta, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return nil, err
	}
	resp, err := pb.UnmarshalUpdateTimeseriesMetaResponse(body)
	if err != nil {
		return nil, err
	}
	return resp.FailedRows, nil
}

// DeleteTimeseriesMetaOp is the builder returned by Client.DeleteTimeseriesMeta.
type DeleteTimeseriesMetaOp struct {
	c         *Client
	tableName string
	keys      []model.TsKey
	timeoutMs int64
}

func (c *Client) DeleteTimeseriesMeta(tableName string, keys ...model.TsKey) DeleteTimeseriesMetaOp {
	return DeleteTimeseriesMetaOp{c: c, tableName: tableName, keys: keys}
}

func (op DeleteTimeseriesMetaOp) TimeoutMs(ms int64) DeleteTimeseriesMetaOp { op.timeoutMs = ms; return op }

func (op DeleteTimeseriesMetaOp) Send(ctx context.Context) ([]pb.FailedRowInPut, error) {
	if err := validate.TimeseriesTableName(op.tableName); err != nil {
		return nil, err
	}
	entries := make([]pb.TimeseriesMetaEntry, len(op.keys))
	for i, k := range op.keys {
		if err := validateTsKey(k.Measurement, k.Datasource, k.Tags); err != nil {
			return nil, err
		}
		entries[i] = pb.TimeseriesMetaEntry{Measurement: k.Measurement, DataSource: k.Datasource, Tags: k.Tags}
	}
	req := &pb.DeleteTimeseriesMetaRequest{TableName: op.tableName, Entries: entries}
	body, err := op.c.dispatcher.Call(ctx, opcode.DeleteTimeseriesMeta, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return nil, err
	}
	resp, err := pb.UnmarshalDeleteTimeseriesMetaResponse(body)
	if err != nil {
		return nil, err
	}
	return resp.FailedRows, nil
}

// SplitTimeseriesScanTaskOp is the builder returned by
// Client.SplitTimeseriesScanTask, used to partition a full-table scan
// across splitCount ScanTimeseriesDataOp workers.
type SplitTimeseriesScanTaskOp struct {
	c          *Client
	tableName  string
	splitCount int64
	timeoutMs  int64
}

func (c *Client) SplitTimeseriesScanTask(tableName string, splitCount int64) SplitTimeseriesScanTaskOp {
	return SplitTimeseriesScanTaskOp{c: c, tableName: tableName, splitCount: splitCount}
}

func (op SplitTimeseriesScanTaskOp) TimeoutMs(ms int64) SplitTimeseriesScanTaskOp {
	op.timeoutMs = ms
	return op
}

func (op SplitTimeseriesScanTaskOp) Send(ctx context.Context) ([][]byte, error) {
	if err := validate.TimeseriesTableName(op.tableName); err != nil {
		return nil, err
	}
	req := &pb.SplitTimeseriesScanTaskRequest{TableName: op.tableName, SplitCount: op.splitCount}
	body, err := op.c.dispatcher.Call(ctx, opcode.SplitTimeseriesScanTask, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return nil, err
	}
	resp, err := pb.UnmarshalSplitTimeseriesScanTaskResponse(body)
	if err != nil {
		return nil, err
	}
	return resp.SplitTaskBytes, nil
}

// ScanTimeseriesDataOp is the builder returned by Client.ScanTimeseriesData,
// reading one split (from SplitTimeseriesScanTaskOp) of a full-table scan.
type ScanTimeseriesDataOp struct {
	c              *Client
	tableName      string
	splitTaskBytes []byte
	beginTimeUs    int64
	endTimeUs      int64
	fieldsToGet    []string
	limit          int64
	token          []byte
	timeoutMs      int64
}

func (c *Client) ScanTimeseriesData(tableName string, splitTaskBytes []byte) ScanTimeseriesDataOp {
	return ScanTimeseriesDataOp{c: c, tableName: tableName, splitTaskBytes: splitTaskBytes}
}

func (op ScanTimeseriesDataOp) TimeRange(beginUs, endUs int64) ScanTimeseriesDataOp {
	op.beginTimeUs, op.endTimeUs = beginUs, endUs
	return op
}
func (op ScanTimeseriesDataOp) FieldsToGet(fields ...string) ScanTimeseriesDataOp {
	op.fieldsToGet = fields
	return op
}
func (op ScanTimeseriesDataOp) Limit(n int64) ScanTimeseriesDataOp   { op.limit = n; return op }
func (op ScanTimeseriesDataOp) Token(tok []byte) ScanTimeseriesDataOp { op.token = tok; return op }
func (op ScanTimeseriesDataOp) TimeoutMs(ms int64) ScanTimeseriesDataOp {
	op.timeoutMs = ms
	return op
}

func (op ScanTimeseriesDataOp) Send(ctx context.Context) (rows []model.TsRow, nextToken []byte, err error) {
	if err = validate.TimeseriesTableName(op.tableName); err != nil {
		return nil, nil, err
	}
	req := &pb.ScanTimeseriesDataRequest{
		TableName:      op.tableName,
		SplitTaskBytes: op.splitTaskBytes,
		BeginTimeUs:    op.beginTimeUs,
		EndTimeUs:      op.endTimeUs,
		FieldsToGet:    op.fieldsToGet,
		Limit:          op.limit,
		Token:          op.token,
	}
	body, err := op.c.dispatcher.Call(ctx, opcode.ScanTimeseriesData, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return nil, nil, err
	}
	resp, err := pb.UnmarshalScanTimeseriesDataResponse(body)
	if err != nil {
		return nil, nil, err
	}
	rows, err = tsfb.DecodeRowGroup(resp.RowGroupBytes)
	if err != nil {
		return nil, nil, err
	}
	return rows, resp.NextToken, nil
}

// CreateTimeseriesAnalyticalStoreOp is the builder returned by
// Client.CreateTimeseriesAnalyticalStore.
type CreateTimeseriesAnalyticalStoreOp struct {
	c                 *Client
	tableName         string
	storeName         string
	timeToLiveSeconds int64
	timeoutMs         int64
}

func (c *Client) CreateTimeseriesAnalyticalStore(tableName, storeName string) CreateTimeseriesAnalyticalStoreOp {
	return CreateTimeseriesAnalyticalStoreOp{c: c, tableName: tableName, storeName: storeName, timeToLiveSeconds: -1}
}

func (op CreateTimeseriesAnalyticalStoreOp) TimeToLive(seconds int64) CreateTimeseriesAnalyticalStoreOp {
	op.timeToLiveSeconds = seconds
	return op
}
func (op CreateTimeseriesAnalyticalStoreOp) TimeoutMs(ms int64) CreateTimeseriesAnalyticalStoreOp {
	op.timeoutMs = ms
	return op
}

func (op CreateTimeseriesAnalyticalStoreOp) Send(ctx context.Context) error {
	if err := validate.TimeseriesTableName(op.tableName); err != nil {
		return err
	}
	if err := validate.AnalyticalStoreName(op.storeName); err != nil {
		return err
	}
	req := &pb.CreateTimeseriesAnalyticalStoreRequest{TableName: op.tableName, StoreName: op.storeName, TimeToLiveSeconds: op.timeToLiveSeconds}
	body, err := op.c.dispatcher.Call(ctx, opcode.CreateTimeseriesAnalyticalStore, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return err
	}
	_, err = pb.UnmarshalCreateTimeseriesAnalyticalStoreResponse(body)
	return err
}

// DescribeTimeseriesAnalyticalStoreOp is the builder returned by
// Client.DescribeTimeseriesAnalyticalStore.
type DescribeTimeseriesAnalyticalStoreOp struct {
	c         *Client
	tableName string
	storeName string
	timeoutMs int64
}

func (c *Client) DescribeTimeseriesAnalyticalStore(tableName, storeName string) DescribeTimeseriesAnalyticalStoreOp {
	return DescribeTimeseriesAnalyticalStoreOp{c: c, tableName: tableName, storeName: storeName}
}

func (op DescribeTimeseriesAnalyticalStoreOp) TimeoutMs(ms int64) DescribeTimeseriesAnalyticalStoreOp {
	op.timeoutMs = ms
	return op
}

func (op DescribeTimeseriesAnalyticalStoreOp) Send(ctx context.Context) (pb.DescribeTimeseriesAnalyticalStoreResponse, error) {
	if err := validate.TimeseriesTableName(op.tableName); err != nil {
		return pb.DescribeTimeseriesAnalyticalStoreResponse{}, err
	}
	if err := validate.AnalyticalStoreName(op.storeName); err != nil {
		return pb.DescribeTimeseriesAnalyticalStoreResponse{}, err
	}
	req := &pb.DescribeTimeseriesAnalyticalStoreRequest{TableName: op.tableName, StoreName: op.storeName}
	body, err := op.c.dispatcher.Call(ctx, opcode.DescribeTimeseriesAnalyticalStore, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return pb.DescribeTimeseriesAnalyticalStoreResponse{}, err
	}
	return pb.UnmarshalDescribeTimeseriesAnalyticalStoreResponse(body)
}

// UpdateTimeseriesAnalyticalStoreOp is the builder returned by
// Client.UpdateTimeseriesAnalyticalStore.
type UpdateTimeseriesAnalyticalStoreOp struct {
	c                 *Client
	tableName         string
	storeName         string
	timeToLiveSeconds int64
	timeoutMs         int64
}

func (c *Client) UpdateTimeseriesAnalyticalStore(tableName, storeName string, timeToLiveSeconds int64) UpdateTimeseriesAnalyticalStoreOp {
	return UpdateTimeseriesAnalyticalStoreOp{c: c, tableName: tableName, storeName: storeName, timeToLiveSeconds: timeToLiveSeconds}
}

func (op UpdateTimeseriesAnalyticalStoreOp) TimeoutMs(ms int64) UpdateTimeseriesAnalyticalStoreOp {
	op.timeoutMs = ms
	return op
}

func (op UpdateTimeseriesAnalyticalStoreOp) Send(ctx context.Context) error {
	if err := validate.TimeseriesTableName(op.tableName); err != nil {
		return err
	}
	if err := validate.AnalyticalStoreName(op.storeName); err != nil {
		return err
	}
	req := &pb.UpdateTimeseriesAnalyticalStoreRequest{TableName: op.tableName, StoreName: op.storeName, TimeToLiveSeconds: op.timeToLiveSeconds}
	body, err := op.c.dispatcher.Call(ctx, opcode.UpdateTimeseriesAnalyticalStore, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return err
	}
	_, err = pb.UnmarshalUpdateTimeseriesAnalyticalStoreResponse(body)
	return err
}

// DeleteTimeseriesAnalyticalStoreOp is the builder returned by
// Client.DeleteTimeseriesAnalyticalStore.
type DeleteTimeseriesAnalyticalStoreOp struct {
	c         *Client
	tableName string
	storeName string
	timeoutMs int64
}

func (c *Client) DeleteTimeseriesAnalyticalStore(tableName, storeName string) DeleteTimeseriesAnalyticalStoreOp {
	return DeleteTimeseriesAnalyticalStoreOp{c: c, tableName: tableName, storeName: storeName}
}

func (op DeleteTimeseriesAnalyticalStoreOp) TimeoutMs(ms int64) DeleteTimeseriesAnalyticalStoreOp {
	op.timeoutMs = ms
	return op
}

func (op DeleteTimeseriesAnalyticalStoreOp) Send(ctx context.Context) error {
	if err := validate.TimeseriesTableName(op.tableName); err != nil {
		return err
	}
	if err := validate.AnalyticalStoreName(op.storeName); err != nil {
		return err
	}
	req := &pb.DeleteTimeseriesAnalyticalStoreRequest{TableName: op.tableName, StoreName: op.storeName}
	body, err := op.c.dispatcher.Call(ctx, opcode.DeleteTimeseriesAnalyticalStore, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return err
	}
	_, err = pb.UnmarshalDeleteTimeseriesAnalyticalStoreResponse(body)
	return err
}

// CreateTimeseriesLastpointIndexOp is the builder returned by
// Client.CreateTimeseriesLastpointIndex.
type CreateTimeseriesLastpointIndexOp struct {
	c         *Client
	tableName string
	indexName string
	timeoutMs int64
}

func (c *Client) CreateTimeseriesLastpointIndex(tableName, indexName string) CreateTimeseriesLastpointIndexOp {
	return CreateTimeseriesLastpointIndexOp{c: c, tableName: tableName, indexName: indexName}
}

func (op CreateTimeseriesLastpointIndexOp) TimeoutMs(ms int64) CreateTimeseriesLastpointIndexOp {
	op.timeoutMs = ms
	return op
}

func (op CreateTimeseriesLastpointIndexOp) Send(ctx context.Context) error {
	if err := validate.TimeseriesTableName(op.tableName); err != nil {
		return err
	}
	if err := validate.LastpointIndexName(op.indexName); err != nil {
		return err
	}
	req := &pb.CreateTimeseriesLastpointIndexRequest{TableName: op.tableName, IndexName: op.indexName}
	body, err := op.c.dispatcher.Call(ctx, opcode.CreateTimeseriesLastpointIndex, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return err
	}
	_, err = pb.UnmarshalCreateTimeseriesLastpointIndexResponse(body)
	return err
}

// DeleteTimeseriesLastpointIndexOp is the builder returned by
// Client.DeleteTimeseriesLastpointIndex.
type DeleteTimeseriesLastpointIndexOp struct {
	c         *Client
	tableName string
	indexName string
	timeoutMs int64
}

func (c *Client) DeleteTimeseriesLastpointIndex(tableName, indexName string) DeleteTimeseriesLastpointIndexOp {
	return DeleteTimeseriesLastpointIndexOp{c: c, tableName: tableName, indexName: indexName}
}

func (op DeleteTimeseriesLastpointIndexOp) TimeoutMs(ms int64) DeleteTimeseriesLastpointIndexOp {
	op.timeoutMs = ms
	return op
}

func (op DeleteTimeseriesLastpointIndexOp) Send(ctx context.Context) error {
	if err := validate.TimeseriesTableName(op.tableName); err != nil {
		return err
	}
	if err := validate.LastpointIndexName(op.indexName); err != nil {
		return err
	}
	req := &pb.DeleteTimeseriesLastpointIndexRequest{TableName: op.tableName, IndexName: op.indexName}
	body, err := op.c.dispatcher.Call(ctx, opcode.DeleteTimeseriesLastpointIndex, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return err
	}
	_, err = pb.UnmarshalDeleteTimeseriesLastpointIndexResponse(body)
	return err
}
