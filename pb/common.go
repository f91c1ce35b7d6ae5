package pb

import (
	"github.com/go-tablestore/tablestore/wire"
)

// Error is the server's error envelope, decoded from a non-2xx response
// body per spec §4.7.5.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fErrorCode, e.Code)
	w.WriteString(fErrorMessage, e.Message)
	return w.Bytes()
}

// UnmarshalError parses data as an Error envelope. It returns false if data
// does not look like one (missing both fields), so callers can fall back to
// StatusError.
func UnmarshalError(data []byte) (Error, bool) {
	var e Error
	r := wire.NewReader(data)
	sawAny := false
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case fErrorCode:
			e.Code = string(f.Bytes)
			sawAny = true
		case fErrorMessage:
			e.Message = string(f.Bytes)
			sawAny = true
		}
	}
	return e, sawAny && e.Code != ""
}

// TimeRange restricts GetRange/UpdateRow reads to a [start, end) window, in
// milliseconds since epoch. A Specific value reads exactly one timestamp.
type TimeRange struct {
	Start, End int64
	Specific   *int64
}

func (t TimeRange) marshalInto(w *wire.Writer, fieldNumber int) {
	inner := wire.NewWriter()
	inner.WriteZigzag(1, t.Start)
	inner.WriteZigzag(2, t.End)
	if t.Specific != nil {
		inner.WriteZigzag(3, *t.Specific)
	}
	w.WriteMessage(fieldNumber, inner.Bytes())
}

func unmarshalTimeRange(data []byte) TimeRange {
	var t TimeRange
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case 1:
			t.Start = wire.ZigzagToInt64(f.Varint)
		case 2:
			t.End = wire.ZigzagToInt64(f.Varint)
		case 3:
			v := wire.ZigzagToInt64(f.Varint)
			t.Specific = &v
		}
	}
	return t
}

// Condition is the row-level optimistic-concurrency precondition accepted
// by PutRow/UpdateRow/DeleteRow (Ignore / ExpectExist / ExpectNotExist),
// optionally combined with a column-level filter.
type Condition struct {
	RowExistence string // "IGNORE" | "EXPECT_EXIST" | "EXPECT_NOT_EXIST"
	FilterBytes  []byte
}

func (c Condition) marshalInto(w *wire.Writer, fieldNumber int) {
	inner := wire.NewWriter()
	inner.WriteString(1, c.RowExistence)
	if len(c.FilterBytes) > 0 {
		inner.WriteBytes(2, c.FilterBytes)
	}
	w.WriteMessage(fieldNumber, inner.Bytes())
}

func unmarshalCondition(data []byte) Condition {
	var c Condition
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case 1:
			c.RowExistence = string(f.Bytes)
		case 2:
			c.FilterBytes = append([]byte(nil), f.Bytes...)
		}
	}
	return c
}

// ConsumedCapacity reports read/write capacity units charged for a call.
type ConsumedCapacity struct {
	Read, Write int64
}

func (c ConsumedCapacity) marshalInto(w *wire.Writer, fieldNumber int) {
	inner := wire.NewWriter()
	inner.WriteZigzag(1, c.Read)
	inner.WriteZigzag(2, c.Write)
	w.WriteMessage(fieldNumber, inner.Bytes())
}

func unmarshalConsumedCapacity(data []byte) ConsumedCapacity {
	var c ConsumedCapacity
	r := wire.NewReader(data)
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		switch f.Number {
		case 1:
			c.Read = wire.ZigzagToInt64(f.Varint)
		case 2:
			c.Write = wire.ZigzagToInt64(f.Varint)
		}
	}
	return c
}
