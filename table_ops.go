package tablestore

import (
	"context"

	"github.com/go-tablestore/tablestore/opcode"
	"github.com/go-tablestore/tablestore/pb"
	"github.com/go-tablestore/tablestore/transport"
	"github.com/go-tablestore/tablestore/validate"
)

// PrimaryKeyType names a primary-key column's value type for CreateTable.
type PrimaryKeyType string

const (
	PKTypeInteger PrimaryKeyType = "INTEGER"
	PKTypeString  PrimaryKeyType = "STRING"
	PKTypeBinary  PrimaryKeyType = "BINARY"
)

// DefinedColumnType names a schema-declared column's value type.
type DefinedColumnType string

const (
	DCTypeInteger DefinedColumnType = "INTEGER"
	DCTypeDouble  DefinedColumnType = "DOUBLE"
	DCTypeBoolean DefinedColumnType = "BOOLEAN"
	DCTypeString  DefinedColumnType = "STRING"
	DCTypeBinary  DefinedColumnType = "BINARY"
)

// SSEKeyType selects the server-side encryption key source for CreateTable.
type SSEKeyType string

const (
	SSEKeyTypeKMS  SSEKeyType = "SSE_KMS_SERVICE"
	SSEKeyTypeBYOK SSEKeyType = "SSE_BYOK"
)

// IndexType selects how a secondary index is maintained.
type IndexType string

const (
	GlobalIndex IndexType = "GLOBAL_INDEX"
	LocalIndex  IndexType = "LOCAL_INDEX"
)

// IndexSpec describes one secondary index to create alongside a table.
type IndexSpec struct {
	Name           string
	PrimaryKeys    []string
	DefinedColumns []string
	Type           IndexType
}

// CreateTableOp is the builder returned by Client.CreateTable.
type CreateTableOp struct {
	c                 *Client
	tableName         string
	primaryKey        []pb.PrimaryKeySchemaEntry
	definedColumns    []pb.DefinedColumnSchemaEntry
	ttlSeconds        int64
	maxVersions       int64
	sseEnabled        bool
	sseKeyType        SSEKeyType
	sseKeyID          string
	sseKeyARN         string
	readCU, writeCU   int64
	indexes           []IndexSpec
	timeoutMs         int64
}

// CreateTable starts a CreateTableOp with a default TTL of -1 (never
// expire) and one row version kept per cell.
func (c *Client) CreateTable(tableName string) CreateTableOp {
	return CreateTableOp{c: c, tableName: tableName, ttlSeconds: -1, maxVersions: 1}
}

// PrimaryKey appends one primary-key column to the schema, in order.
func (op CreateTableOp) PrimaryKey(name string, typ PrimaryKeyType) CreateTableOp {
	op.primaryKey = append(append([]pb.PrimaryKeySchemaEntry(nil), op.primaryKey...), pb.PrimaryKeySchemaEntry{Name: name, Type: string(typ)})
	return op
}

// AutoIncrementPrimaryKey appends an auto-increment integer primary-key
// column; only the last primary-key column of a table may be marked this
// way (spec §3.1).
func (op CreateTableOp) AutoIncrementPrimaryKey(name string) CreateTableOp {
	op.primaryKey = append(append([]pb.PrimaryKeySchemaEntry(nil), op.primaryKey...), pb.PrimaryKeySchemaEntry{Name: name, Type: string(PKTypeInteger), AutoIncrement: true})
	return op
}

// DefinedColumn appends a schema-declared column, enabling it to be
// indexed without first being written.
func (op CreateTableOp) DefinedColumn(name string, typ DefinedColumnType) CreateTableOp {
	op.definedColumns = append(append([]pb.DefinedColumnSchemaEntry(nil), op.definedColumns...), pb.DefinedColumnSchemaEntry{Name: name, Type: string(typ)})
	return op
}

func (op CreateTableOp) TimeToLive(seconds int64) CreateTableOp { op.ttlSeconds = seconds; return op }
func (op CreateTableOp) MaxVersions(n int64) CreateTableOp      { op.maxVersions = n; return op }
func (op CreateTableOp) ReservedThroughput(read, write int64) CreateTableOp {
	op.readCU, op.writeCU = read, write
	return op
}
func (op CreateTableOp) ServerSideEncryption(keyType SSEKeyType, keyID, keyARN string) CreateTableOp {
	op.sseEnabled, op.sseKeyType, op.sseKeyID, op.sseKeyARN = true, keyType, keyID, keyARN
	return op
}
func (op CreateTableOp) Index(spec IndexSpec) CreateTableOp {
	op.indexes = append(append([]IndexSpec(nil), op.indexes...), spec)
	return op
}
func (op CreateTableOp) TimeoutMs(ms int64) CreateTableOp { op.timeoutMs = ms; return op }

func (op CreateTableOp) Send(ctx context.Context) error {
	if err := validate.TableName(op.tableName); err != nil {
		return err
	}
	if err := validate.CreateTablePKCount(len(op.primaryKey)); err != nil {
		return err
	}
	for _, pk := range op.primaryKey {
		if err := validate.ColumnName(pk.Name); err != nil {
			return err
		}
	}
	if err := validate.CreateTableTTL(op.ttlSeconds); err != nil {
		return err
	}
	if err := validate.CreateTableSSE(op.sseKeyType == SSEKeyTypeBYOK, op.sseKeyID != "", op.sseKeyARN != ""); err != nil {
		return err
	}
	availablePK := make([]string, len(op.primaryKey))
	for i, pk := range op.primaryKey {
		availablePK[i] = pk.Name
	}
	availableDC := make([]string, len(op.definedColumns))
	for i, dc := range op.definedColumns {
		availableDC[i] = dc.Name
	}
	indexes := make([]pb.IndexMeta, len(op.indexes))
	for i, idx := range op.indexes {
		cols := append(append([]string(nil), idx.PrimaryKeys...), idx.DefinedColumns...)
		if err := validate.CreateTableIndexColumns(idx.Name, cols, availablePK, availableDC); err != nil {
			return err
		}
		indexes[i] = pb.IndexMeta{Name: idx.Name, PrimaryKeys: idx.PrimaryKeys, DefinedColumns: idx.DefinedColumns, IndexType: string(idx.Type)}
	}
	req := &pb.CreateTableRequest{
		TableName:      op.tableName,
		PrimaryKey:     op.primaryKey,
		DefinedColumns: op.definedColumns,
		Options: pb.TableOptions{
			TimeToLiveSeconds: op.ttlSeconds,
			MaxVersions:       op.maxVersions,
			SSEEnabled:        op.sseEnabled,
			SSEKeyType:        string(op.sseKeyType),
			SSEKeyID:          op.sseKeyID,
			SSEKeyARN:         op.sseKeyARN,
		},
		Throughput: pb.ReservedThroughput{Read: op.readCU, Write: op.writeCU},
		Indexes:    indexes,
	}
	body, err := op.c.dispatcher.Call(ctx, opcode.CreateTable, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return err
	}
	_, err = pb.UnmarshalCreateTableResponse(body)
	return err
}

// DeleteTableOp is the builder returned by Client.DeleteTable.
type DeleteTableOp struct {
	c         *Client
	tableName string
	timeoutMs int64
}

func (c *Client) DeleteTable(tableName string) DeleteTableOp {
	return DeleteTableOp{c: c, tableName: tableName}
}

func (op DeleteTableOp) TimeoutMs(ms int64) DeleteTableOp { op.timeoutMs = ms; return op }

func (op DeleteTableOp) Send(ctx context.Context) error {
	if err := validate.TableName(op.tableName); err != nil {
		return err
	}
	req := &pb.DeleteTableRequest{TableName: op.tableName}
	body, err := op.c.dispatcher.Call(ctx, opcode.DeleteTable, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return err
	}
	_, err = pb.UnmarshalDeleteTableResponse(body)
	return err
}

// ListTableOp is the builder returned by Client.ListTable.
type ListTableOp struct {
	c         *Client
	timeoutMs int64
}

func (c *Client) ListTable() ListTableOp { return ListTableOp{c: c} }

func (op ListTableOp) TimeoutMs(ms int64) ListTableOp { op.timeoutMs = ms; return op }

func (op ListTableOp) Send(ctx context.Context) ([]string, error) {
	req := &pb.ListTableRequest{}
	body, err := op.c.dispatcher.Call(ctx, opcode.ListTable, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return nil, err
	}
	resp, err := pb.UnmarshalListTableResponse(body)
	if err != nil {
		return nil, err
	}
	return resp.TableNames, nil
}

// TableSchema is the decoded result of a DescribeTableOp.
type TableSchema struct {
	TableName      string
	PrimaryKey     []pb.PrimaryKeySchemaEntry
	DefinedColumns []pb.DefinedColumnSchemaEntry
	Options        pb.TableOptions
	Throughput     pb.ReservedThroughput
	Indexes        []pb.IndexMeta
}

// DescribeTableOp is the builder returned by Client.DescribeTable.
type DescribeTableOp struct {
	c         *Client
	tableName string
	timeoutMs int64
}

func (c *Client) DescribeTable(tableName string) DescribeTableOp {
	return DescribeTableOp{c: c, tableName: tableName}
}

func (op DescribeTableOp) TimeoutMs(ms int64) DescribeTableOp { op.timeoutMs = ms; return op }

func (op DescribeTableOp) Send(ctx context.Context) (TableSchema, error) {
	if err := validate.TableName(op.tableName); err != nil {
		return TableSchema{}, err
	}
	req := &pb.DescribeTableRequest{TableName: op.tableName}
	body, err := op.c.dispatcher.Call(ctx, opcode.DescribeTable, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return TableSchema{}, err
	}
	resp, err := pb.UnmarshalDescribeTableResponse(body)
	if err != nil {
		return TableSchema{}, err
	}
	return TableSchema{
		TableName:      resp.TableName,
		PrimaryKey:     resp.PrimaryKey,
		DefinedColumns: resp.DefinedColumns,
		Options:        resp.Options,
		Throughput:     resp.Throughput,
		Indexes:        resp.Indexes,
	}, nil
}

// UpdateTableOp is the builder returned by Client.UpdateTable. Only fields
// set via its setters are sent; omitted fields leave the server's current
// value unchanged.
type UpdateTableOp struct {
	c          *Client
	tableName  string
	options    *pb.TableOptions
	throughput *pb.ReservedThroughput
	timeoutMs  int64
}

func (c *Client) UpdateTable(tableName string) UpdateTableOp {
	return UpdateTableOp{c: c, tableName: tableName}
}

func (op UpdateTableOp) TimeToLive(seconds int64) UpdateTableOp {
	o := cloneOrNew(op.options)
	o.TimeToLiveSeconds = seconds
	op.options = o
	return op
}
func (op UpdateTableOp) MaxVersions(n int64) UpdateTableOp {
	o := cloneOrNew(op.options)
	o.MaxVersions = n
	op.options = o
	return op
}
func (op UpdateTableOp) ReservedThroughput(read, write int64) UpdateTableOp {
	op.throughput = &pb.ReservedThroughput{Read: read, Write: write}
	return op
}
func (op UpdateTableOp) TimeoutMs(ms int64) UpdateTableOp { op.timeoutMs = ms; return op }

func (op UpdateTableOp) Send(ctx context.Context) (pb.TableOptions, pb.ReservedThroughput, error) {
	if err := validate.TableName(op.tableName); err != nil {
		return pb.TableOptions{}, pb.ReservedThroughput{}, err
	}
	req := &pb.UpdateTableRequest{TableName: op.tableName, Options: op.options, Throughput: op.throughput}
	body, err := op.c.dispatcher.Call(ctx, opcode.UpdateTable, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return pb.TableOptions{}, pb.ReservedThroughput{}, err
	}
	resp, err := pb.UnmarshalUpdateTableResponse(body)
	if err != nil {
		return pb.TableOptions{}, pb.ReservedThroughput{}, err
	}
	return resp.Options, resp.Throughput, nil
}

// cloneOrNew is a free function because *pb.TableOptions has no methods of
// its own (pb stays a pure envelope package).
func cloneOrNew(o *pb.TableOptions) *pb.TableOptions {
	if o == nil {
		return &pb.TableOptions{}
	}
	cp := *o
	return &cp
}

// ComputeSplitPointsBySizeOp is the builder returned by
// Client.ComputeSplitPointsBySize.
type ComputeSplitPointsBySizeOp struct {
	c              *Client
	tableName      string
	splitSizeBytes int64
	timeoutMs      int64
}

func (c *Client) ComputeSplitPointsBySize(tableName string, splitSizeBytes int64) ComputeSplitPointsBySizeOp {
	return ComputeSplitPointsBySizeOp{c: c, tableName: tableName, splitSizeBytes: splitSizeBytes}
}

func (op ComputeSplitPointsBySizeOp) TimeoutMs(ms int64) ComputeSplitPointsBySizeOp {
	op.timeoutMs = ms
	return op
}

func (op ComputeSplitPointsBySizeOp) Send(ctx context.Context) ([]pb.PrimaryKeySchemaEntry, [][]byte, error) {
	if err := validate.TableName(op.tableName); err != nil {
		return nil, nil, err
	}
	req := &pb.ComputeSplitPointsBySizeRequest{TableName: op.tableName, SplitSizeBytes: op.splitSizeBytes}
	body, err := op.c.dispatcher.Call(ctx, opcode.ComputeSplitPointsBySize, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return nil, nil, err
	}
	resp, err := pb.UnmarshalComputeSplitPointsBySizeResponse(body)
	if err != nil {
		return nil, nil, err
	}
	return resp.PrimaryKeySchema, resp.SplitPoints, nil
}
