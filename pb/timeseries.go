package pb

import "github.com/go-tablestore/tablestore/wire"

// CreateTimeseriesTableRequest creates a time-series table.
type CreateTimeseriesTableRequest struct {
	TableName         string
	TimeToLiveSeconds int64
}

func (req *CreateTimeseriesTableRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteZigzag(1, req.TimeToLiveSeconds)
	return w.Bytes()
}

type CreateTimeseriesTableResponse struct{}

func UnmarshalCreateTimeseriesTableResponse([]byte) (CreateTimeseriesTableResponse, error) {
	return CreateTimeseriesTableResponse{}, nil
}

// ListTimeseriesTableRequest takes no parameters.
type ListTimeseriesTableRequest struct{}

func (req *ListTimeseriesTableRequest) Marshal() []byte { return nil }

type ListTimeseriesTableResponse struct{ TableNames []string }

func UnmarshalListTimeseriesTableResponse(data []byte) (ListTimeseriesTableResponse, error) {
	var resp ListTimeseriesTableResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		if f.Number == fTableNames {
			resp.TableNames = append(resp.TableNames, string(f.Bytes))
		}
	}
	return resp, nil
}

// DescribeTimeseriesTableRequest asks for a time-series table's settings.
type DescribeTimeseriesTableRequest struct{ TableName string }

func (req *DescribeTimeseriesTableRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	return w.Bytes()
}

type DescribeTimeseriesTableResponse struct {
	TableName         string
	TimeToLiveSeconds int64
}

func UnmarshalDescribeTimeseriesTableResponse(data []byte) (DescribeTimeseriesTableResponse, error) {
	var resp DescribeTimeseriesTableResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case fTableName:
			resp.TableName = string(f.Bytes)
		case 1:
			resp.TimeToLiveSeconds = wire.ZigzagToInt64(f.Varint)
		}
	}
	return resp, nil
}

// UpdateTimeseriesTableRequest changes a time-series table's TTL.
type UpdateTimeseriesTableRequest struct {
	TableName         string
	TimeToLiveSeconds int64
}

func (req *UpdateTimeseriesTableRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteZigzag(1, req.TimeToLiveSeconds)
	return w.Bytes()
}

type UpdateTimeseriesTableResponse struct{}

func UnmarshalUpdateTimeseriesTableResponse([]byte) (UpdateTimeseriesTableResponse, error) {
	return UpdateTimeseriesTableResponse{}, nil
}

// DeleteTimeseriesTableRequest drops a time-series table.
type DeleteTimeseriesTableRequest struct{ TableName string }

func (req *DeleteTimeseriesTableRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	return w.Bytes()
}

type DeleteTimeseriesTableResponse struct{}

func UnmarshalDeleteTimeseriesTableResponse([]byte) (DeleteTimeseriesTableResponse, error) {
	return DeleteTimeseriesTableResponse{}, nil
}

// PutTimeseriesDataRequest writes rows encoded by package tsfb
// (RowGroup FlatBuffers payload, one per distinct time-line).
type PutTimeseriesDataRequest struct {
	TableName     string
	RowGroupBytes [][]byte
}

func (req *PutTimeseriesDataRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	for _, rg := range req.RowGroupBytes {
		w.WriteBytes(fRowGroupBytes, rg)
	}
	return w.Bytes()
}

// FailedRowInPut reports one rejected row within a PutTimeseriesData call.
type FailedRowInPut struct {
	RowIndex int64
	ErrorCode    string
	ErrorMessage string
}

type PutTimeseriesDataResponse struct{ FailedRows []FailedRowInPut }

func UnmarshalPutTimeseriesDataResponse(data []byte) (PutTimeseriesDataResponse, error) {
	var resp PutTimeseriesDataResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		if f.Number != fRows {
			continue
		}
		var fr FailedRowInPut
		fres := wire.NewReader(f.Bytes)
		for {
			ff, err := fres.Next()
			if err != nil {
				break
			}
			switch ff.Number {
			case 1:
				fr.RowIndex = wire.ZigzagToInt64(ff.Varint)
			case fErrorCode:
				fr.ErrorCode = string(ff.Bytes)
			case fErrorMessage:
				fr.ErrorMessage = string(ff.Bytes)
			}
		}
		resp.FailedRows = append(resp.FailedRows, fr)
	}
	return resp, nil
}

// GetTimeseriesDataRequest reads one time-line's rows in a time window.
type GetTimeseriesDataRequest struct {
	TableName    string
	Measurement  string
	DataSource   string
	Tags         map[string]string
	BeginTimeUs  int64
	EndTimeUs    int64
	FieldsToGet  []string
	Limit        int64
	Token        []byte
}

func (req *GetTimeseriesDataRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteString(fMeasurement, req.Measurement)
	w.WriteString(fDataSource, req.DataSource)
	for k, v := range req.Tags {
		w.WriteString(fTags, k+"="+v)
	}
	w.WriteZigzag(1, req.BeginTimeUs)
	w.WriteZigzag(2, req.EndTimeUs)
	for _, fld := range req.FieldsToGet {
		w.WriteString(fColumnsToGet, fld)
	}
	w.WriteZigzag(fLimit, req.Limit)
	if len(req.Token) > 0 {
		w.WriteBytes(fToken, req.Token)
	}
	return w.Bytes()
}

type GetTimeseriesDataResponse struct {
	RowGroupBytes []byte // FlatBuffers RowGroup payload; decode with tsfb
	NextToken     []byte
}

func UnmarshalGetTimeseriesDataResponse(data []byte) (GetTimeseriesDataResponse, error) {
	var resp GetTimeseriesDataResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case fRowGroupBytes:
			resp.RowGroupBytes = append(resp.RowGroupBytes, f.Bytes...)
		case fToken:
			resp.NextToken = append([]byte(nil), f.Bytes...)
		}
	}
	return resp, nil
}

// QueryTimeseriesMetaRequest searches time-line metadata by measurement/
// datasource/tag predicates.
type QueryTimeseriesMetaRequest struct {
	TableName       string
	MeasurementLike string
	Tags            map[string]string
	Token           []byte
	Limit           int64
}

func (req *QueryTimeseriesMetaRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteString(fMeasurement, req.MeasurementLike)
	for k, v := range req.Tags {
		w.WriteString(fTags, k+"="+v)
	}
	if len(req.Token) > 0 {
		w.WriteBytes(fToken, req.Token)
	}
	w.WriteZigzag(fLimit, req.Limit)
	return w.Bytes()
}

// TimeseriesMetaEntry is one matched time-line's key/attributes.
type TimeseriesMetaEntry struct {
	Measurement  string
	DataSource   string
	Tags         map[string]string
	Attributes   map[string]string
	UpdateTimeUs int64
}

type QueryTimeseriesMetaResponse struct {
	Entries   []TimeseriesMetaEntry
	NextToken []byte
}

func UnmarshalQueryTimeseriesMetaResponse(data []byte) (QueryTimeseriesMetaResponse, error) {
	var resp QueryTimeseriesMetaResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case fRows:
			var e TimeseriesMetaEntry
			e.Tags = map[string]string{}
			e.Attributes = map[string]string{}
			er := wire.NewReader(f.Bytes)
			for {
				ef, err := er.Next()
				if err != nil {
					break
				}
				switch ef.Number {
				case fMeasurement:
					e.Measurement = string(ef.Bytes)
				case fDataSource:
					e.DataSource = string(ef.Bytes)
				case fTags:
					k, v := splitTagPair(string(ef.Bytes))
					e.Tags[k] = v
				case fAttributes:
					k, v := splitTagPair(string(ef.Bytes))
					e.Attributes[k] = v
				case fUpdateTimeUs:
					e.UpdateTimeUs = wire.ZigzagToInt64(ef.Varint)
				}
			}
			resp.Entries = append(resp.Entries, e)
		case fToken:
			resp.NextToken = append([]byte(nil), f.Bytes...)
		}
	}
	return resp, nil
}

func splitTagPair(s string) (string, string) {
	for i := 0; i < len(s); i++ {
		if s[i] == '=' {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}

// UpdateTimeseriesMetaRequest updates the attribute map of existing
// time-lines.
type UpdateTimeseriesMetaRequest struct {
	TableName string
	Entries   []TimeseriesMetaEntry
}

func (req *UpdateTimeseriesMetaRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	for _, e := range req.Entries {
		inner := wire.NewWriter()
		inner.WriteString(fMeasurement, e.Measurement)
		inner.WriteString(fDataSource, e.DataSource)
		for k, v := range e.Tags {
			inner.WriteString(fTags, k+"="+v)
		}
		for k, v := range e.Attributes {
			inner.WriteString(fAttributes, k+"="+v)
		}
		w.WriteMessage(fRows, inner.Bytes())
	}
	return w.Bytes()
}

type UpdateTimeseriesMetaResponse struct{ FailedRows []FailedRowInPut }

func UnmarshalUpdateTimeseriesMetaResponse(data []byte) (UpdateTimeseriesMetaResponse, error) {
	resp, err := UnmarshalPutTimeseriesDataResponse(data)
	return UpdateTimeseriesMetaResponse{FailedRows: resp.FailedRows}, err
}

// DeleteTimeseriesMetaRequest removes time-line metadata (not the data
// points themselves).
type DeleteTimeseriesMetaRequest struct {
	TableName string
	Entries   []TimeseriesMetaEntry
}

func (req *DeleteTimeseriesMetaRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	for _, e := range req.Entries {
		inner := wire.NewWriter()
		inner.WriteString(fMeasurement, e.Measurement)
		inner.WriteString(fDataSource, e.DataSource)
		for k, v := range e.Tags {
			inner.WriteString(fTags, k+"="+v)
		}
		w.WriteMessage(fRows, inner.Bytes())
	}
	return w.Bytes()
}

type DeleteTimeseriesMetaResponse struct{ FailedRows []FailedRowInPut }

func UnmarshalDeleteTimeseriesMetaResponse(data []byte) (DeleteTimeseriesMetaResponse, error) {
	resp, err := UnmarshalPutTimeseriesDataResponse(data)
	return DeleteTimeseriesMetaResponse{FailedRows: resp.FailedRows}, err
}

// ScanTimeseriesDataRequest reads an entire split of a time-series table
// (one shard of a SplitTimeseriesScanTask plan) in a time window.
type ScanTimeseriesDataRequest struct {
	TableName      string
	SplitTaskBytes []byte
	BeginTimeUs    int64
	EndTimeUs      int64
	FieldsToGet    []string
	Limit          int64
	Token          []byte
}

func (req *ScanTimeseriesDataRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteBytes(fSplitTaskBytes, req.SplitTaskBytes)
	w.WriteZigzag(1, req.BeginTimeUs)
	w.WriteZigzag(2, req.EndTimeUs)
	for _, fld := range req.FieldsToGet {
		w.WriteString(fColumnsToGet, fld)
	}
	w.WriteZigzag(fLimit, req.Limit)
	if len(req.Token) > 0 {
		w.WriteBytes(fToken, req.Token)
	}
	return w.Bytes()
}

type ScanTimeseriesDataResponse struct {
	RowGroupBytes []byte
	NextToken     []byte
}

func UnmarshalScanTimeseriesDataResponse(data []byte) (ScanTimeseriesDataResponse, error) {
	var resp ScanTimeseriesDataResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case fRowGroupBytes:
			resp.RowGroupBytes = append(resp.RowGroupBytes, f.Bytes...)
		case fToken:
			resp.NextToken = append([]byte(nil), f.Bytes...)
		}
	}
	return resp, nil
}

// SplitTimeseriesScanTaskRequest asks the server to partition a full-table
// scan into splitCount independent tasks for ScanTimeseriesData.
type SplitTimeseriesScanTaskRequest struct {
	TableName  string
	SplitCount int64
}

func (req *SplitTimeseriesScanTaskRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteZigzag(fSplitCount, req.SplitCount)
	return w.Bytes()
}

type SplitTimeseriesScanTaskResponse struct{ SplitTaskBytes [][]byte }

func UnmarshalSplitTimeseriesScanTaskResponse(data []byte) (SplitTimeseriesScanTaskResponse, error) {
	var resp SplitTimeseriesScanTaskResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		if f.Number == fSplitTaskBytes {
			resp.SplitTaskBytes = append(resp.SplitTaskBytes, append([]byte(nil), f.Bytes...))
		}
	}
	return resp, nil
}

// CreateTimeseriesAnalyticalStoreRequest attaches a long-retention
// column-oriented analytical store to a time-series table.
type CreateTimeseriesAnalyticalStoreRequest struct {
	TableName         string
	StoreName         string
	TimeToLiveSeconds int64
}

func (req *CreateTimeseriesAnalyticalStoreRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteString(fAnalyticalName, req.StoreName)
	w.WriteZigzag(1, req.TimeToLiveSeconds)
	return w.Bytes()
}

type CreateTimeseriesAnalyticalStoreResponse struct{}

func UnmarshalCreateTimeseriesAnalyticalStoreResponse([]byte) (CreateTimeseriesAnalyticalStoreResponse, error) {
	return CreateTimeseriesAnalyticalStoreResponse{}, nil
}

type DescribeTimeseriesAnalyticalStoreRequest struct {
	TableName string
	StoreName string
}

func (req *DescribeTimeseriesAnalyticalStoreRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteString(fAnalyticalName, req.StoreName)
	return w.Bytes()
}

type DescribeTimeseriesAnalyticalStoreResponse struct {
	StoreName         string
	TimeToLiveSeconds int64
	SyncStatus        string
}

func UnmarshalDescribeTimeseriesAnalyticalStoreResponse(data []byte) (DescribeTimeseriesAnalyticalStoreResponse, error) {
	var resp DescribeTimeseriesAnalyticalStoreResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case fAnalyticalName:
			resp.StoreName = string(f.Bytes)
		case 1:
			resp.TimeToLiveSeconds = wire.ZigzagToInt64(f.Varint)
		case 2:
			resp.SyncStatus = string(f.Bytes)
		}
	}
	return resp, nil
}

type UpdateTimeseriesAnalyticalStoreRequest struct {
	TableName         string
	StoreName         string
	TimeToLiveSeconds int64
}

func (req *UpdateTimeseriesAnalyticalStoreRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteString(fAnalyticalName, req.StoreName)
	w.WriteZigzag(1, req.TimeToLiveSeconds)
	return w.Bytes()
}

type UpdateTimeseriesAnalyticalStoreResponse struct{}

func UnmarshalUpdateTimeseriesAnalyticalStoreResponse([]byte) (UpdateTimeseriesAnalyticalStoreResponse, error) {
	return UpdateTimeseriesAnalyticalStoreResponse{}, nil
}

type DeleteTimeseriesAnalyticalStoreRequest struct {
	TableName string
	StoreName string
}

func (req *DeleteTimeseriesAnalyticalStoreRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteString(fAnalyticalName, req.StoreName)
	return w.Bytes()
}

type DeleteTimeseriesAnalyticalStoreResponse struct{}

func UnmarshalDeleteTimeseriesAnalyticalStoreResponse([]byte) (DeleteTimeseriesAnalyticalStoreResponse, error) {
	return DeleteTimeseriesAnalyticalStoreResponse{}, nil
}

// CreateTimeseriesLastpointIndexRequest builds a lastpoint index that
// accelerates "current value" reads on a time-series table.
type CreateTimeseriesLastpointIndexRequest struct {
	TableName string
	IndexName string
}

func (req *CreateTimeseriesLastpointIndexRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteString(fLastpointName, req.IndexName)
	return w.Bytes()
}

type CreateTimeseriesLastpointIndexResponse struct{}

func UnmarshalCreateTimeseriesLastpointIndexResponse([]byte) (CreateTimeseriesLastpointIndexResponse, error) {
	return CreateTimeseriesLastpointIndexResponse{}, nil
}

type DeleteTimeseriesLastpointIndexRequest struct {
	TableName string
	IndexName string
}

func (req *DeleteTimeseriesLastpointIndexRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteString(fLastpointName, req.IndexName)
	return w.Bytes()
}

type DeleteTimeseriesLastpointIndexResponse struct{}

func UnmarshalDeleteTimeseriesLastpointIndexResponse([]byte) (DeleteTimeseriesLastpointIndexResponse, error) {
	return DeleteTimeseriesLastpointIndexResponse{}, nil
}
