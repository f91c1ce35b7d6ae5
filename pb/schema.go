package pb

import "github.com/go-tablestore/tablestore/wire"

// AddDefinedColumnRequest declares a new schema column on an existing
// table so it can later be indexed.
type AddDefinedColumnRequest struct {
	TableName      string
	DefinedColumns []DefinedColumnSchemaEntry
}

func (req *AddDefinedColumnRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	for _, dc := range req.DefinedColumns {
		w.WriteMessage(fDefinedColumns, dc.marshalInto(w))
	}
	return w.Bytes()
}

type AddDefinedColumnResponse struct{}

func UnmarshalAddDefinedColumnResponse([]byte) (AddDefinedColumnResponse, error) {
	return AddDefinedColumnResponse{}, nil
}

// DeleteDefinedColumnRequest removes schema-declared columns from a table.
type DeleteDefinedColumnRequest struct {
	TableName string
	Columns   []string
}

func (req *DeleteDefinedColumnRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	for _, c := range req.Columns {
		w.WriteString(fDefinedColumns, c)
	}
	return w.Bytes()
}

type DeleteDefinedColumnResponse struct{}

func UnmarshalDeleteDefinedColumnResponse([]byte) (DeleteDefinedColumnResponse, error) {
	return DeleteDefinedColumnResponse{}, nil
}

// CreateIndexRequest builds a new secondary index over an existing table.
type CreateIndexRequest struct {
	TableName        string
	Index            IndexMeta
	IncludeBaseData  bool
}

func (req *CreateIndexRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteMessage(fIndexMetas, req.Index.marshalInto(w))
	w.WriteBool(fDropped, req.IncludeBaseData)
	return w.Bytes()
}

type CreateIndexResponse struct{}

func UnmarshalCreateIndexResponse([]byte) (CreateIndexResponse, error) {
	return CreateIndexResponse{}, nil
}

// DropIndexRequest removes a secondary index from a table.
type DropIndexRequest struct {
	TableName string
	IndexName string
}

func (req *DropIndexRequest) Marshal() []byte {
	w := wire.NewWriter()
	w.WriteString(fTableName, req.TableName)
	w.WriteString(fIndexName, req.IndexName)
	return w.Bytes()
}

type DropIndexResponse struct{}

func UnmarshalDropIndexResponse([]byte) (DropIndexResponse, error) {
	return DropIndexResponse{}, nil
}
