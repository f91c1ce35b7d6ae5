package tablestore

import (
	"context"

	"github.com/go-tablestore/tablestore/opcode"
	"github.com/go-tablestore/tablestore/pb"
	"github.com/go-tablestore/tablestore/transport"
	"github.com/go-tablestore/tablestore/validate"
)

// AddDefinedColumnOp is the builder returned by Client.AddDefinedColumn.
type AddDefinedColumnOp struct {
	c         *Client
	tableName string
	columns   []pb.DefinedColumnSchemaEntry
	timeoutMs int64
}

func (c *Client) AddDefinedColumn(tableName string) AddDefinedColumnOp {
	return AddDefinedColumnOp{c: c, tableName: tableName}
}

func (op AddDefinedColumnOp) Column(name string, typ DefinedColumnType) AddDefinedColumnOp {
	op.columns = append(append([]pb.DefinedColumnSchemaEntry(nil), op.columns...), pb.DefinedColumnSchemaEntry{Name: name, Type: string(typ)})
	return op
}
func (op AddDefinedColumnOp) TimeoutMs(ms int64) AddDefinedColumnOp { op.timeoutMs = ms; return op }

func (op AddDefinedColumnOp) Send(ctx context.Context) error {
	if err := validate.TableName(op.tableName); err != nil {
		return err
	}
	for _, c := range op.columns {
		if err := validate.ColumnName(c.Name); err != nil {
			return err
		}
	}
	req := &pb.AddDefinedColumnRequest{TableName: op.tableName, DefinedColumns: op.columns}
	body, err := op.c.dispatcher.Call(ctx, opcode.AddDefinedColumn, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return err
	}
	_, err = pb.UnmarshalAddDefinedColumnResponse(body)
	return err
}

// DeleteDefinedColumnOp is the builder returned by Client.DeleteDefinedColumn.
type DeleteDefinedColumnOp struct {
	c         *Client
	tableName string
	columns   []string
	timeoutMs int64
}

func (c *Client) DeleteDefinedColumn(tableName string, columns ...string) DeleteDefinedColumnOp {
	return DeleteDefinedColumnOp{c: c, tableName: tableName, columns: columns}
}

func (op DeleteDefinedColumnOp) TimeoutMs(ms int64) DeleteDefinedColumnOp { op.timeoutMs = ms; return op }

func (op DeleteDefinedColumnOp) Send(ctx context.Context) error {
	if err := validate.TableName(op.tableName); err != nil {
		return err
	}
	req := &pb.DeleteDefinedColumnRequest{TableName: op.tableName, Columns: op.columns}
	body, err := op.c.dispatcher.Call(ctx, opcode.DeleteDefinedColumn, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return err
	}
	_, err = pb.UnmarshalDeleteDefinedColumnResponse(body)
	return err
}

// CreateIndexOp is the builder returned by Client.CreateIndex.
type CreateIndexOp struct {
	c               *Client
	tableName       string
	index           IndexSpec
	includeBaseData bool
	timeoutMs       int64
}

func (c *Client) CreateIndex(tableName string, index IndexSpec) CreateIndexOp {
	return CreateIndexOp{c: c, tableName: tableName, index: index, includeBaseData: true}
}

// IncludeBaseData controls whether existing rows are backfilled into the
// new index (default true).
func (op CreateIndexOp) IncludeBaseData(v bool) CreateIndexOp { op.includeBaseData = v; return op }
func (op CreateIndexOp) TimeoutMs(ms int64) CreateIndexOp     { op.timeoutMs = ms; return op }

func (op CreateIndexOp) Send(ctx context.Context) error {
	if err := validate.TableName(op.tableName); err != nil {
		return err
	}
	if err := validate.IndexName(op.index.Name); err != nil {
		return err
	}
	req := &pb.CreateIndexRequest{
		TableName: op.tableName,
		Index: pb.IndexMeta{
			Name:           op.index.Name,
			PrimaryKeys:    op.index.PrimaryKeys,
			DefinedColumns: op.index.DefinedColumns,
			IndexType:      string(op.index.Type),
		},
		IncludeBaseData: op.includeBaseData,
	}
	body, err := op.c.dispatcher.Call(ctx, opcode.CreateIndex, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return err
	}
	_, err = pb.UnmarshalCreateIndexResponse(body)
	return err
}

// DropIndexOp is the builder returned by Client.DropIndex.
type DropIndexOp struct {
	c         *Client
	tableName string
	indexName string
	timeoutMs int64
}

func (c *Client) DropIndex(tableName, indexName string) DropIndexOp {
	return DropIndexOp{c: c, tableName: tableName, indexName: indexName}
}

func (op DropIndexOp) TimeoutMs(ms int64) DropIndexOp { op.timeoutMs = ms; return op }

func (op DropIndexOp) Send(ctx context.Context) error {
	if err := validate.TableName(op.tableName); err != nil {
		return err
	}
	if err := validate.IndexName(op.indexName); err != nil {
		return err
	}
	req := &pb.DropIndexRequest{TableName: op.tableName, IndexName: op.indexName}
	body, err := op.c.dispatcher.Call(ctx, opcode.DropIndex, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return err
	}
	_, err = pb.UnmarshalDropIndexResponse(body)
	return err
}
