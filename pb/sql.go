package pb

import "github.com/go-tablestore/tablestore/wire"

// SQLQueryRequest carries a raw SQL string; client-side syntax validation
// happens in the operation builder (SQLQueryOp.Send in the root tablestore
// package) before Marshal runs.
type SQLQueryRequest struct{ Query string }

func (req *SQLQueryRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fSQLText, req.Query)
	return w.Bytes()
}

// SQLQueryResponse reports the result set's shape (ResultKind is
// "WIDE_COLUMN" or "TIMESERIES") plus its PlainBuffer-encoded rows; the
// caller picks the matching decoder.
type SQLQueryResponse struct {
	ResultKind string
	RowsBytes  []byte
}

func UnmarshalSQLQueryResponse(data []byte) (SQLQueryResponse, error) {
	var resp SQLQueryResponse
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case fSQLResultKind:
			resp.ResultKind = string(f.Bytes)
		case fRowsBytes:
			resp.RowsBytes = append(resp.RowsBytes, f.Bytes...)
		}
	}
	return resp, nil
}
