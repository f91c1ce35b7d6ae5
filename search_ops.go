package tablestore

import (
	"context"

	"github.com/go-tablestore/tablestore/model"
	"github.com/go-tablestore/tablestore/opcode"
	"github.com/go-tablestore/tablestore/pb"
	"github.com/go-tablestore/tablestore/plainbuffer"
	"github.com/go-tablestore/tablestore/transport"
	"github.com/go-tablestore/tablestore/validate"
)

// FieldType enumerates the search-index field types accepted by
// CreateSearchIndex.
type FieldType string

const (
	FieldLong     FieldType = "LONG"
	FieldDouble   FieldType = "DOUBLE"
	FieldBoolean  FieldType = "BOOLEAN"
	FieldKeyword  FieldType = "KEYWORD"
	FieldText     FieldType = "TEXT"
	FieldGeoPoint FieldType = "GEO_POINT"
	FieldDate     FieldType = "DATE"
	FieldNested   FieldType = "NESTED"
)

// FieldSchema describes one indexed field of a search index.
type FieldSchema struct {
	Name  string
	Type  FieldType
	Index bool
	Store bool
	Array bool
}

func (f FieldSchema) toPB() pb.FieldSchema {
	return pb.FieldSchema{Name: f.Name, Type: string(f.Type), Index: f.Index, Store: f.Store, Array: f.Array}
}

// CreateSearchIndexOp is the builder returned by Client.CreateSearchIndex.
type CreateSearchIndexOp struct {
	c         *Client
	tableName string
	indexName string
	fields    []FieldSchema
	timeoutMs int64
}

func (c *Client) CreateSearchIndex(tableName, indexName string, fields ...FieldSchema) CreateSearchIndexOp {
	return CreateSearchIndexOp{c: c, tableName: tableName, indexName: indexName, fields: fields}
}

func (op CreateSearchIndexOp) TimeoutMs(ms int64) CreateSearchIndexOp { op.timeoutMs = ms; return op }

func (op CreateSearchIndexOp) Send(ctx context.Context) error {
	if err := validate.TableName(op.tableName); err != nil {
		return err
	}
	if err := validate.SearchIndexName(op.indexName); err != nil {
		return err
	}
	fields := make([]pb.FieldSchema, len(op.fields))
	for i, f := range op.fields {
		fields[i] = f.toPB()
	}
	req := &pb.CreateSearchIndexRequest{TableName: op.tableName, IndexName: op.indexName, Fields: fields}
	body, err := op.c.dispatcher.Call(ctx, opcode.CreateSearchIndex, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return err
	}
	_, err = pb.UnmarshalCreateSearchIndexResponse(body)
	return err
}

// DescribeSearchIndexOp is the builder returned by Client.DescribeSearchIndex.
type DescribeSearchIndexOp struct {
	c         *Client
	tableName string
	indexName string
	timeoutMs int64
}

func (c *Client) DescribeSearchIndex(tableName, indexName string) DescribeSearchIndexOp {
	return DescribeSearchIndexOp{c: c, tableName: tableName, indexName: indexName}
}

func (op DescribeSearchIndexOp) TimeoutMs(ms int64) DescribeSearchIndexOp {
	op.timeoutMs = ms
	return op
}

func (op DescribeSearchIndexOp) Send(ctx context.Context) ([]FieldSchema, error) {
	if err := validate.TableName(op.tableName); err != nil {
		return nil, err
	}
	if err := validate.SearchIndexName(op.indexName); err != nil {
		return nil, err
	}
	req := &pb.DescribeSearchIndexRequest{TableName: op.tableName, IndexName: op.indexName}
	body, err := op.c.dispatcher.Call(ctx, opcode.DescribeSearchIndex, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return nil, err
	}
	resp, err := pb.UnmarshalDescribeSearchIndexResponse(body)
	if err != nil {
		return nil, err
	}
	out := make([]FieldSchema, len(resp.Fields))
	for i, f := range resp.Fields {
		out[i] = FieldSchema{Name: f.Name, Type: FieldType(f.Type), Index: f.Index, Store: f.Store, Array: f.Array}
	}
	return out, nil
}

// UpdateSearchIndexOp is the builder returned by Client.UpdateSearchIndex. A
// search index's TTL is the only setting that can be changed after creation.
type UpdateSearchIndexOp struct {
	c                 *Client
	tableName         string
	indexName         string
	timeToLiveSeconds int64
	timeoutMs         int64
}

func (c *Client) UpdateSearchIndex(tableName, indexName string, timeToLiveSeconds int64) UpdateSearchIndexOp {
	return UpdateSearchIndexOp{c: c, tableName: tableName, indexName: indexName, timeToLiveSeconds: timeToLiveSeconds}
}

func (op UpdateSearchIndexOp) TimeoutMs(ms int64) UpdateSearchIndexOp { op.timeoutMs = ms; return op }

func (op UpdateSearchIndexOp) Send(ctx context.Context) error {
	if err := validate.TableName(op.tableName); err != nil {
		return err
	}
	if err := validate.SearchIndexName(op.indexName); err != nil {
		return err
	}
	req := &pb.UpdateSearchIndexRequest{TableName: op.tableName, IndexName: op.indexName, TimeToLiveSeconds: op.timeToLiveSeconds}
	body, err := op.c.dispatcher.Call(ctx, opcode.UpdateSearchIndex, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return err
	}
	_, err = pb.UnmarshalUpdateSearchIndexResponse(body)
	return err
}

// DeleteSearchIndexOp is the builder returned by Client.DeleteSearchIndex.
type DeleteSearchIndexOp struct {
	c         *Client
	tableName string
	indexName string
	timeoutMs int64
}

func (c *Client) DeleteSearchIndex(tableName, indexName string) DeleteSearchIndexOp {
	return DeleteSearchIndexOp{c: c, tableName: tableName, indexName: indexName}
}

func (op DeleteSearchIndexOp) TimeoutMs(ms int64) DeleteSearchIndexOp { op.timeoutMs = ms; return op }

func (op DeleteSearchIndexOp) Send(ctx context.Context) error {
	if err := validate.TableName(op.tableName); err != nil {
		return err
	}
	if err := validate.SearchIndexName(op.indexName); err != nil {
		return err
	}
	req := &pb.DeleteSearchIndexRequest{TableName: op.tableName, IndexName: op.indexName}
	body, err := op.c.dispatcher.Call(ctx, opcode.DeleteSearchIndex, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return err
	}
	_, err = pb.UnmarshalDeleteSearchIndexResponse(body)
	return err
}

// ListSearchIndexOp is the builder returned by Client.ListSearchIndex.
type ListSearchIndexOp struct {
	c         *Client
	tableName string
	timeoutMs int64
}

func (c *Client) ListSearchIndex(tableName string) ListSearchIndexOp {
	return ListSearchIndexOp{c: c, tableName: tableName}
}

func (op ListSearchIndexOp) TimeoutMs(ms int64) ListSearchIndexOp { op.timeoutMs = ms; return op }

func (op ListSearchIndexOp) Send(ctx context.Context) ([]string, error) {
	if err := validate.TableName(op.tableName); err != nil {
		return nil, err
	}
	req := &pb.ListSearchIndexRequest{TableName: op.tableName}
	body, err := op.c.dispatcher.Call(ctx, opcode.ListSearchIndex, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return nil, err
	}
	resp, err := pb.UnmarshalListSearchIndexResponse(body)
	if err != nil {
		return nil, err
	}
	return resp.IndexNames, nil
}

// SearchResult is the decoded outcome of a SearchOp.
type SearchResult struct {
	TotalHits  int64
	Rows       []model.Row
	NextToken  []byte
	Aggregations []model.AggregationResult
	GroupBys     []model.GroupByResult
}

// SearchOp is the immutable, fluent builder returned by Client.Search.
type SearchOp struct {
	c             *Client
	tableName     string
	indexName     string
	query         model.Query
	columnsToGet  []string
	offset        int64
	limit         int64
	token         []byte
	aggregations  []model.Aggregation
	groupBys      []model.GroupBy
	sorters       []model.Sorter
	getTotalCount bool
	timeoutMs     int64
}

// Search starts a SearchOp matching query against tableName's indexName.
func (c *Client) Search(tableName, indexName string, query model.Query) SearchOp {
	return SearchOp{c: c, tableName: tableName, indexName: indexName, query: query}
}

func (op SearchOp) ColumnsToGet(cols ...string) SearchOp { op.columnsToGet = cols; return op }
func (op SearchOp) Offset(n int64) SearchOp              { op.offset = n; return op }
func (op SearchOp) Limit(n int64) SearchOp               { op.limit = n; return op }
func (op SearchOp) Token(tok []byte) SearchOp            { op.token = tok; return op }
func (op SearchOp) Aggregate(aggs ...model.Aggregation) SearchOp {
	op.aggregations = append(append([]model.Aggregation(nil), op.aggregations...), aggs...)
	return op
}
func (op SearchOp) GroupBy(groupBys ...model.GroupBy) SearchOp {
	op.groupBys = append(append([]model.GroupBy(nil), op.groupBys...), groupBys...)
	return op
}
func (op SearchOp) Sort(sorters ...model.Sorter) SearchOp {
	op.sorters = append(append([]model.Sorter(nil), op.sorters...), sorters...)
	return op
}
func (op SearchOp) GetTotalCount() SearchOp        { op.getTotalCount = true; return op }
func (op SearchOp) TimeoutMs(ms int64) SearchOp    { op.timeoutMs = ms; return op }

func (op SearchOp) Send(ctx context.Context) (SearchResult, error) {
	if err := validate.TableName(op.tableName); err != nil {
		return SearchResult{}, err
	}
	if err := validate.SearchIndexName(op.indexName); err != nil {
		return SearchResult{}, err
	}
	req := &pb.SearchRequest{
		TableName:     op.tableName,
		IndexName:     op.indexName,
		QueryBytes:    op.query.Marshal(),
		ColumnsToGet:  op.columnsToGet,
		Offset:        op.offset,
		Limit:         op.limit,
		Token:         op.token,
		AggsBytes:     model.MarshalAggregations(op.aggregations),
		GroupBysBytes: model.MarshalGroupBys(op.groupBys),
		SortBytes:     model.MarshalSorters(op.sorters),
		GetTotalCount: op.getTotalCount,
	}
	body, err := op.c.dispatcher.Call(ctx, opcode.Search, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return SearchResult{}, err
	}
	resp, err := pb.UnmarshalSearchResponse(body)
	if err != nil {
		return SearchResult{}, err
	}
	result := SearchResult{TotalHits: resp.TotalHits, NextToken: resp.NextToken}
	if len(resp.RowsBytes) > 0 {
		rows, err := plainbuffer.DecodeRows(resp.RowsBytes)
		if err != nil {
			return SearchResult{}, err
		}
		result.Rows = rows
	}
	if len(resp.AggResultBytes) > 0 {
		result.Aggregations = model.UnmarshalAggregationResults(resp.AggResultBytes)
	}
	if len(resp.GroupByResultBytes) > 0 {
		result.GroupBys = model.UnmarshalGroupByResults(resp.GroupByResultBytes)
	}
	return result, nil
}

// ComputeSplitsOp is the builder returned by Client.ComputeSplits, used to
// size a ParallelScanOp's worker count.
type ComputeSplitsOp struct {
	c         *Client
	tableName string
	indexName string
	timeoutMs int64
}

func (c *Client) ComputeSplits(tableName, indexName string) ComputeSplitsOp {
	return ComputeSplitsOp{c: c, tableName: tableName, indexName: indexName}
}

func (op ComputeSplitsOp) TimeoutMs(ms int64) ComputeSplitsOp { op.timeoutMs = ms; return op }

func (op ComputeSplitsOp) Send(ctx context.Context) (int64, error) {
	if err := validate.TableName(op.tableName); err != nil {
		return 0, err
	}
	if err := validate.SearchIndexName(op.indexName); err != nil {
		return 0, err
	}
	req := &pb.ComputeSplitsRequest{TableName: op.tableName, IndexName: op.indexName}
	body, err := op.c.dispatcher.Call(ctx, opcode.ComputeSplits, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return 0, err
	}
	resp, err := pb.UnmarshalComputeSplitsResponse(body)
	if err != nil {
		return 0, err
	}
	return resp.SplitsCount, nil
}

// ParallelScanOp is the builder returned by Client.ParallelScan. Each of
// maxParallel workers drives its own ParallelScanOp with a distinct
// currentParallelID, paging with Token until NextToken is empty.
type ParallelScanOp struct {
	c                 *Client
	tableName         string
	indexName         string
	query             model.Query
	columnsToGet      []string
	sessionID         []byte
	currentParallelID int64
	maxParallel       int64
	token             []byte
	timeoutMs         int64
}

// ParallelScan starts a ParallelScanOp for worker currentParallelID of
// maxParallel total workers. sessionID ties every worker's requests to the
// same consistent scan snapshot. Send does not return a session ID: the
// value set with SessionID is sent as given, and none is sent if it is unset.
func (c *Client) ParallelScan(tableName, indexName string, query model.Query, currentParallelID, maxParallel int64) ParallelScanOp {
	return ParallelScanOp{c: c, tableName: tableName, indexName: indexName, query: query, currentParallelID: currentParallelID, maxParallel: maxParallel}
}

func (op ParallelScanOp) ColumnsToGet(cols ...string) ParallelScanOp { op.columnsToGet = cols; return op }
func (op ParallelScanOp) SessionID(id []byte) ParallelScanOp        { op.sessionID = id; return op }
func (op ParallelScanOp) Token(tok []byte) ParallelScanOp           { op.token = tok; return op }
func (op ParallelScanOp) TimeoutMs(ms int64) ParallelScanOp         { op.timeoutMs = ms; return op }

func (op ParallelScanOp) Send(ctx context.Context) (rows []model.Row, nextToken []byte, err error) {
	if err = validate.TableName(op.tableName); err != nil {
		return nil, nil, err
	}
	if err = validate.SearchIndexName(op.indexName); err != nil {
		return nil, nil, err
	}
	req := &pb.ParallelScanRequest{
		TableName:         op.tableName,
		IndexName:         op.indexName,
		QueryBytes:        op.query.Marshal(),
		ColumnsToGet:      op.columnsToGet,
		SessionID:         op.sessionID,
		CurrentParallelID: op.currentParallelID,
		MaxParallel:       op.maxParallel,
		Token:             op.token,
	}
	body, err := op.c.dispatcher.Call(ctx, opcode.ParallelScan, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return nil, nil, err
	}
	resp, err := pb.UnmarshalParallelScanResponse(body)
	if err != nil {
		return nil, nil, err
	}
	if len(resp.RowsBytes) == 0 {
		return nil, resp.NextToken, nil
	}
	rows, err = plainbuffer.DecodeRows(resp.RowsBytes)
	if err != nil {
		return nil, nil, err
	}
	return rows, resp.NextToken, nil
}
