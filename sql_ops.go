package tablestore

import (
	"context"

	"github.com/pingcap/tidb/pkg/parser"
	_ "github.com/pingcap/tidb/pkg/parser/test_driver"

	"github.com/go-tablestore/tablestore/model"
	"github.com/go-tablestore/tablestore/opcode"
	"github.com/go-tablestore/tablestore/pb"
	"github.com/go-tablestore/tablestore/plainbuffer"
	"github.com/go-tablestore/tablestore/transport"
	"github.com/go-tablestore/tablestore/tserrors"
	"github.com/go-tablestore/tablestore/tsfb"
)

// ResultKindWideColumn and ResultKindTimeseries are the two shapes an
// SQLResult's rows can take, matching SQLQueryResponse.ResultKind.
const (
	ResultKindWideColumn = "WIDE_COLUMN"
	ResultKindTimeseries = "TIMESERIES"
)

// SQLResult holds a query's result set. Exactly one of Rows or TsRows is
// populated, according to Kind.
type SQLResult struct {
	Kind   string
	Rows   []model.Row
	TsRows []model.TsRow
}

// SQLQueryOp is the builder returned by Client.SQLQuery.
type SQLQueryOp struct {
	c         *Client
	query     string
	timeoutMs int64
}

// SQLQuery starts an SQLQueryOp. The query text is parsed client-side with
// a MySQL-dialect SQL parser before it is ever sent, so syntax errors never
// reach the server.
func (c *Client) SQLQuery(query string) SQLQueryOp {
	return SQLQueryOp{c: c, query: query}
}

func (op SQLQueryOp) TimeoutMs(ms int64) SQLQueryOp { op.timeoutMs = ms; return op }

func (op SQLQueryOp) Send(ctx context.Context) (SQLResult, error) {
	if _, _, err := parser.New().Parse(op.query, "", ""); err != nil {
		return SQLResult{}, tserrors.NewValidationFailed("SQLQuery: %v", err)
	}
	req := &pb.SQLQueryRequest{Query: op.query}
	body, err := op.c.dispatcher.Call(ctx, opcode.SQLQuery, req.Marshal(), transport.Options{TimeoutMs: op.c.resolveTimeout(op.timeoutMs)})
	if err != nil {
		return SQLResult{}, err
	}
	resp, err := pb.UnmarshalSQLQueryResponse(body)
	if err != nil {
		return SQLResult{}, err
	}
	result := SQLResult{Kind: resp.ResultKind}
	if len(resp.RowsBytes) == 0 {
		return result, nil
	}
	switch resp.ResultKind {
	case ResultKindTimeseries:
		result.TsRows, err = tsfb.DecodeRowGroup(resp.RowsBytes)
	default:
		result.Rows, err = plainbuffer.DecodeRows(resp.RowsBytes)
	}
	if err != nil {
		return SQLResult{}, err
	}
	return result, nil
}
