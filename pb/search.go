package pb

import "github.com/go-tablestore/tablestore/wire"

// FieldSchema describes one search-index field: name, type
// ("LONG"|"DOUBLE"|"BOOLEAN"|"KEYWORD"|"TEXT"|"GEO_POINT"|"DATE"|"NESTED"),
// and index/store flags.
type FieldSchema struct {
	Name     string
	Type     string
	Index    bool
	Store    bool
	Array    bool
}

func (f FieldSchema) marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(1, f.Name)
	w.WriteString(2, f.Type)
	w.WriteBool(3, f.Index)
	w.WriteBool(4, f.Store)
	w.WriteBool(5, f.Array)
	return w.Bytes()
}

func unmarshalFieldSchema(data []byte) FieldSchema {
	var f FieldSchema
	r := wire.NewReader(data)
	for {
		fl, err := r.Next()
		if err != nil {
			break
		}
		switch fl.Number {
		case 1:
			f.Name = string(fl.Bytes)
		case 2:
			f.Type = string(fl.Bytes)
		case 3:
			f.Index = fl.Varint != 0
		case 4:
			f.Store = fl.Varint != 0
		case 5:
			f.Array = fl.Varint != 0
		}
	}
	return f
}

// CreateSearchIndexRequest builds a new search index on a table.
type CreateSearchIndexRequest struct {
	TableName string
	IndexName string
	Fields    []FieldSchema
}

func (req *CreateSearchIndexRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteString(fIndexName, req.IndexName)
	for _, fs := range req.Fields {
		w.WriteMessage(fDefinedColumns, fs.marshal())
	}
	return w.Bytes()
}

type CreateSearchIndexResponse struct{}

func UnmarshalCreateSearchIndexResponse([]byte) (CreateSearchIndexResponse, error) {
	return CreateSearchIndexResponse{}, nil
}

// DescribeSearchIndexRequest asks for a search index's field schema.
type DescribeSearchIndexRequest struct {
	TableName string
	IndexName string
}

func (req *DescribeSearchIndexRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteString(fIndexName, req.IndexName)
	return w.Bytes()
}

type DescribeSearchIndexResponse struct{ Fields []FieldSchema }

func UnmarshalDescribeSearchIndexResponse(data []byte) (DescribeSearchIndexResponse, error) {
	var resp DescribeSearchIndexResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		if f.Number == fDefinedColumns {
			resp.Fields = append(resp.Fields, unmarshalFieldSchema(f.Bytes))
		}
	}
	return resp, nil
}

// UpdateSearchIndexRequest changes a search index's TTL (the only mutable
// search-index setting).
type UpdateSearchIndexRequest struct {
	TableName         string
	IndexName         string
	TimeToLiveSeconds int64
}

func (req *UpdateSearchIndexRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteString(fIndexName, req.IndexName)
	w.WriteZigzag(1, req.TimeToLiveSeconds)
	return w.Bytes()
}

type UpdateSearchIndexResponse struct{}

func UnmarshalUpdateSearchIndexResponse([]byte) (UpdateSearchIndexResponse, error) {
	return UpdateSearchIndexResponse{}, nil
}

// DeleteSearchIndexRequest removes a search index.
type DeleteSearchIndexRequest struct {
	TableName string
	IndexName string
}

func (req *DeleteSearchIndexRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteString(fIndexName, req.IndexName)
	return w.Bytes()
}

type DeleteSearchIndexResponse struct{}

func UnmarshalDeleteSearchIndexResponse([]byte) (DeleteSearchIndexResponse, error) {
	return DeleteSearchIndexResponse{}, nil
}

// ListSearchIndexRequest lists every search index on a table.
type ListSearchIndexRequest struct{ TableName string }

func (req *ListSearchIndexRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	return w.Bytes()
}

type ListSearchIndexResponse struct{ IndexNames []string }

func UnmarshalListSearchIndexResponse(data []byte) (ListSearchIndexResponse, error) {
	var resp ListSearchIndexResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		if f.Number == fIndexName {
			resp.IndexNames = append(resp.IndexNames, string(f.Bytes))
		}
	}
	return resp, nil
}

// SearchRequest is the envelope for the Search RPC. QueryBytes,
// AggsBytes, and GroupBysBytes are produced by the model package's own
// Marshal methods on Query/Aggregation/GroupBy trees (kept opaque here,
// the way pb treats row bytes from package plainbuffer).
type SearchRequest struct {
	TableName     string
	IndexName     string
	QueryBytes    []byte
	ColumnsToGet  []string
	Offset        int64
	Limit         int64
	Token         []byte
	AggsBytes     []byte
	GroupBysBytes []byte
	SortBytes     []byte
	GetTotalCount bool
}

func (req *SearchRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteString(fIndexName, req.IndexName)
	w.WriteBytes(fQueryBytes, req.QueryBytes)
	for _, c := range req.ColumnsToGet {
		w.WriteString(fColumnsToGet, c)
	}
	w.WriteZigzag(1, req.Offset)
	w.WriteZigzag(fLimit, req.Limit)
	if len(req.Token) > 0 {
		w.WriteBytes(fToken, req.Token)
	}
	if len(req.AggsBytes) > 0 {
		w.WriteBytes(fAggsBytes, req.AggsBytes)
	}
	if len(req.GroupBysBytes) > 0 {
		w.WriteBytes(fGroupBysBytes, req.GroupBysBytes)
	}
	if len(req.SortBytes) > 0 {
		w.WriteBytes(fSortBytes, req.SortBytes)
	}
	w.WriteBool(2, req.GetTotalCount)
	return w.Bytes()
}

// SearchResponse carries matched rows (PlainBuffer-encoded), a
// continuation token, and opaque aggregation/group-by result bytes that
// the model package decodes back into the named-result tree.
type SearchResponse struct {
	TotalHits       int64
	RowsBytes       []byte
	NextToken       []byte
	AggResultBytes  []byte
	GroupByResultBytes []byte
}

func UnmarshalSearchResponse(data []byte) (SearchResponse, error) {
	var resp SearchResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case fTotalHits:
			resp.TotalHits = wire.ZigzagToInt64(f.Varint)
		case fRowsBytes:
			resp.RowsBytes = append(resp.RowsBytes, f.Bytes...)
		case fToken:
			resp.NextToken = append([]byte(nil), f.Bytes...)
		case fAggsBytes:
			resp.AggResultBytes = append([]byte(nil), f.Bytes...)
		case fGroupBysBytes:
			resp.GroupByResultBytes = append([]byte(nil), f.Bytes...)
		}
	}
	return resp, nil
}

// ComputeSplitsRequest asks for the parallel-scan split count of a search
// index.
type ComputeSplitsRequest struct {
	TableName string
	IndexName string
}

func (req *ComputeSplitsRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteString(fIndexName, req.IndexName)
	return w.Bytes()
}

type ComputeSplitsResponse struct{ SplitsCount int64 }

func UnmarshalComputeSplitsResponse(data []byte) (ComputeSplitsResponse, error) {
	var resp ComputeSplitsResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		if f.Number == fSplitCount {
			resp.SplitsCount = wire.ZigzagToInt64(f.Varint)
		}
	}
	return resp, nil
}

// ParallelScanRequest reads one split-index/split-count shard of a search
// index's matched rows, used to fan out a full scan across workers.
type ParallelScanRequest struct {
	TableName     string
	IndexName     string
	QueryBytes    []byte
	ColumnsToGet  []string
	SessionID     []byte
	CurrentParallelID int64
	MaxParallel   int64
	Token         []byte
}

func (req *ParallelScanRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteString(fIndexName, req.IndexName)
	w.WriteBytes(fQueryBytes, req.QueryBytes)
	for _, c := range req.ColumnsToGet {
		w.WriteString(fColumnsToGet, c)
	}
	if len(req.SessionID) > 0 {
		w.WriteBytes(fSessionID, req.SessionID)
	}
	w.WriteZigzag(1, req.CurrentParallelID)
	w.WriteZigzag(2, req.MaxParallel)
	if len(req.Token) > 0 {
		w.WriteBytes(fToken, req.Token)
	}
	return w.Bytes()
}

type ParallelScanResponse struct {
	RowsBytes []byte
	NextToken []byte
}

func UnmarshalParallelScanResponse(data []byte) (ParallelScanResponse, error) {
	var resp ParallelScanResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case fRowsBytes:
			resp.RowsBytes = append(resp.RowsBytes, f.Bytes...)
		case fToken:
			resp.NextToken = append([]byte(nil), f.Bytes...)
		}
	}
	return resp, nil
}
