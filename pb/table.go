package pb

import "github.com/go-tablestore/tablestore/wire"

// PrimaryKeySchemaEntry names one primary-key column and its value type
// ("INTEGER" | "STRING" | "BINARY"), optionally marked AUTO_INCREMENT.
type PrimaryKeySchemaEntry struct {
	Name          string
	Type          string
	AutoIncrement bool
}

func (e PrimaryKeySchemaEntry) marshalInto(w *wire.Writer) []byte {
	inner := wire.NewWriter()
	inner.WriteString(1, e.Name)
	inner.WriteString(2, e.Type)
	inner.WriteBool(3, e.AutoIncrement)
	return inner.Bytes()
}

func unmarshalPKSchemaEntry(data []byte) PrimaryKeySchemaEntry {
	var e PrimaryKeySchemaEntry
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case 1:
			e.Name = string(f.Bytes)
		case 2:
			e.Type = string(f.Bytes)
		case 3:
			e.AutoIncrement = f.Varint != 0
		}
	}
	return e
}

// DefinedColumnSchemaEntry names a schema-declared column and its type
// ("INTEGER" | "DOUBLE" | "BOOLEAN" | "STRING" | "BINARY").
type DefinedColumnSchemaEntry struct {
	Name string
	Type string
}

func (e DefinedColumnSchemaEntry) marshalInto(w *wire.Writer) []byte {
	inner := wire.NewWriter()
	inner.WriteString(1, e.Name)
	inner.WriteString(2, e.Type)
	return inner.Bytes()
}

func unmarshalDefinedColumnEntry(data []byte) DefinedColumnSchemaEntry {
	var e DefinedColumnSchemaEntry
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case 1:
			e.Name = string(f.Bytes)
		case 2:
			e.Type = string(f.Bytes)
		}
	}
	return e
}

// IndexMeta describes one secondary index attached to a table.
type IndexMeta struct {
	Name           string
	PrimaryKeys    []string
	DefinedColumns []string
	IndexType      string // "GLOBAL_INDEX" | "LOCAL_INDEX"
}

func (m IndexMeta) marshalInto(w *wire.Writer) []byte {
	inner := wire.NewWriter()
	inner.WriteString(1, m.Name)
	for _, n := range m.PrimaryKeys {
		inner.WriteString(2, n)
	}
	for _, n := range m.DefinedColumns {
		inner.WriteString(3, n)
	}
	inner.WriteString(4, m.IndexType)
	return inner.Bytes()
}

func unmarshalIndexMeta(data []byte) IndexMeta {
	var m IndexMeta
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case 1:
			m.Name = string(f.Bytes)
		case 2:
			m.PrimaryKeys = append(m.PrimaryKeys, string(f.Bytes))
		case 3:
			m.DefinedColumns = append(m.DefinedColumns, string(f.Bytes))
		case 4:
			m.IndexType = string(f.Bytes)
		}
	}
	return m
}

// TableOptions carries TTL, max-versions, and server-side encryption
// settings for CreateTable/UpdateTable.
type TableOptions struct {
	TimeToLiveSeconds  int64
	MaxVersions        int64
	SSEEnabled         bool
	SSEKeyType         string // "SSE_KMS_SERVICE" | "SSE_BYOK"
	SSEKeyID           string
	SSEKeyARN          string
}

func (o TableOptions) marshalInto(w *wire.Writer, fieldNumber int) {
	inner := wire.NewWriter()
	inner.WriteZigzag(1, o.TimeToLiveSeconds)
	inner.WriteZigzag(2, o.MaxVersions)
	inner.WriteBool(3, o.SSEEnabled)
	inner.WriteString(4, o.SSEKeyType)
	inner.WriteString(5, o.SSEKeyID)
	inner.WriteString(6, o.SSEKeyARN)
	w.WriteMessage(fieldNumber, inner.Bytes())
}

func unmarshalTableOptions(data []byte) TableOptions {
	var o TableOptions
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case 1:
			o.TimeToLiveSeconds = wire.ZigzagToInt64(f.Varint)
		case 2:
			o.MaxVersions = wire.ZigzagToInt64(f.Varint)
		case 3:
			o.SSEEnabled = f.Varint != 0
		case 4:
			o.SSEKeyType = string(f.Bytes)
		case 5:
			o.SSEKeyID = string(f.Bytes)
		case 6:
			o.SSEKeyARN = string(f.Bytes)
		}
	}
	return o
}

// ReservedThroughput is the provisioned read/write capacity for a table.
type ReservedThroughput struct {
	Read, Write int64
}

func (t ReservedThroughput) marshalInto(w *wire.Writer, fieldNumber int) {
	inner := wire.NewWriter()
	inner.WriteZigzag(1, t.Read)
	inner.WriteZigzag(2, t.Write)
	w.WriteMessage(fieldNumber, inner.Bytes())
}

func unmarshalReservedThroughput(data []byte) ReservedThroughput {
	var t ReservedThroughput
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case 1:
			t.Read = wire.ZigzagToInt64(f.Varint)
		case 2:
			t.Write = wire.ZigzagToInt64(f.Varint)
		}
	}
	return t
}

// CreateTableRequest is the envelope for the CreateTable RPC.
type CreateTableRequest struct {
	TableName      string
	PrimaryKey     []PrimaryKeySchemaEntry
	DefinedColumns []DefinedColumnSchemaEntry
	Options        TableOptions
	Throughput     ReservedThroughput
	Indexes        []IndexMeta
}

func (req *CreateTableRequest) Marshal() []byte {
	w := wire.NewWriter()
	meta := wire.NewWriter()
	meta.WriteString(1, req.TableName)
	for _, pk := range req.PrimaryKey {
		meta.WriteMessage(2, pk.marshalInto(meta))
	}
	for _, dc := range req.DefinedColumns {
		meta.WriteMessage(3, dc.marshalInto(meta))
	}
	w.WriteMessage(fTableMeta, meta.Bytes())
	req.Options.marshalInto(w, fTableOptions)
	req.Throughput.marshalInto(w, fReservedThru)
	for _, idx := range req.Indexes {
		w.WriteMessage(fIndexMetas, idx.marshalInto(w))
	}
	return w.Bytes()
}

// CreateTableResponse is empty on success (spec §6.6: client surfaces the
// call's success/failure only).
type CreateTableResponse struct{}

func UnmarshalCreateTableResponse([]byte) (CreateTableResponse, error) {
	return CreateTableResponse{}, nil
}

// DeleteTableRequest is the envelope for the DeleteTable RPC.
type DeleteTableRequest struct{ TableName string }

func (req *DeleteTableRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	return w.Bytes()
}

type DeleteTableResponse struct{}

func UnmarshalDeleteTableResponse([]byte) (DeleteTableResponse, error) {
	return DeleteTableResponse{}, nil
}

// ListTableRequest takes no parameters.
type ListTableRequest struct{}

func (req *ListTableRequest) Marshal() []byte { return nil }

// ListTableResponse enumerates every table name visible to the instance.
type ListTableResponse struct{ TableNames []string }

func UnmarshalListTableResponse(data []byte) (ListTableResponse, error) {
	var resp ListTableResponse
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

// DescribeTableRequest is the envelope for the DescribeTable RPC.
type DescribeTableRequest struct{ TableName string }

func (req *DescribeTableRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	return w.Bytes()
}

// DescribeTableResponse reports a table's full schema and runtime options.
type DescribeTableResponse struct {
	TableName      string
	PrimaryKey     []PrimaryKeySchemaEntry
	DefinedColumns []DefinedColumnSchemaEntry
	Options        TableOptions
	Throughput     ReservedThroughput
	Indexes        []IndexMeta
}

func UnmarshalDescribeTableResponse(data []byte) (DescribeTableResponse, error) {
	var resp DescribeTableResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case fTableName:
			resp.TableName = string(f.Bytes)
		case 2:
			resp.PrimaryKey = append(resp.PrimaryKey, unmarshalPKSchemaEntry(f.Bytes))
		case 3:
			resp.DefinedColumns = append(resp.DefinedColumns, unmarshalDefinedColumnEntry(f.Bytes))
		case fTableOptions:
			resp.Options = unmarshalTableOptions(f.Bytes)
		case fReservedThru:
			resp.Throughput = unmarshalReservedThroughput(f.Bytes)
		case fIndexMetas:
			resp.Indexes = append(resp.Indexes, unmarshalIndexMeta(f.Bytes))
		}
	}
	return resp, nil
}

// UpdateTableRequest changes a table's options and/or throughput.
type UpdateTableRequest struct {
	TableName  string
	Options    *TableOptions
	Throughput *ReservedThroughput
}

func (req *UpdateTableRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	if req.Options != nil {
		req.Options.marshalInto(w, fTableOptions)
	}
	if req.Throughput != nil {
		req.Throughput.marshalInto(w, fReservedThru)
	}
	return w.Bytes()
}

type UpdateTableResponse struct {
	Options    TableOptions
	Throughput ReservedThroughput
}

func UnmarshalUpdateTableResponse(data []byte) (UpdateTableResponse, error) {
	var resp UpdateTableResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case fTableOptions:
			resp.Options = unmarshalTableOptions(f.Bytes)
		case fReservedThru:
			resp.Throughput = unmarshalReservedThroughput(f.Bytes)
		}
	}
	return resp, nil
}

// ComputeSplitPointsBySizeRequest asks the server for split points that
// would divide the table into roughly equal shards of splitSizeInByte.
type ComputeSplitPointsBySizeRequest struct {
	TableName      string
	SplitSizeBytes int64
}

func (req *ComputeSplitPointsBySizeRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteZigzag(fSplitCount, req.SplitSizeBytes)
	return w.Bytes()
}

// ComputeSplitPointsBySizeResponse returns the schema plus a list of
// PlainBuffer-encoded primary-key split points.
type ComputeSplitPointsBySizeResponse struct {
	PrimaryKeySchema []PrimaryKeySchemaEntry
	SplitPoints      [][]byte
}

func UnmarshalComputeSplitPointsBySizeResponse(data []byte) (ComputeSplitPointsBySizeResponse, error) {
	var resp ComputeSplitPointsBySizeResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case fPrimaryKeySch:
			resp.PrimaryKeySchema = append(resp.PrimaryKeySchema, unmarshalPKSchemaEntry(f.Bytes))
		case fSplitPoints:
			resp.SplitPoints = append(resp.SplitPoints, append([]byte(nil), f.Bytes...))
		}
	}
	return resp, nil
}
