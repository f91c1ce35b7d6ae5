package tsfb

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/go-tablestore/tablestore/model"
)

// DecodeRowGroup decodes a RowGroup FlatBuffers payload (as produced by
// EncodeRow, or returned by GetTimeseriesData/ScanTimeseriesData) into its
// component rows. Every row in a group shares one measurement and one
// field-name/field-type schema; only datasource, tags, time, and field
// values vary per row.
func DecodeRowGroup(buf []byte) ([]model.TsRow, error) {
	if len(buf) == 0 {
		return nil, nil
	}
	group := rootTable(buf)
	measurement := tableString(&group, 4)
	fieldNames := stringVectorField(&group, 6)
	fieldTypes := byteSliceField(&group, 8)

	rowsOff := group.Offset(10)
	if rowsOff == 0 {
		return nil, nil
	}
	rowsVec := group.Vector(flatbuffers.UOffsetT(rowsOff))
	n := group.VectorLen(flatbuffers.UOffsetT(rowsOff))

	out := make([]model.TsRow, n)
	for i := 0; i < n; i++ {
		rowPos := group.Indirect(rowsVec + flatbuffers.UOffsetT(i)*4)
		row := flatbuffers.Table{Bytes: buf, Pos: rowPos}

		tagNames := stringVectorField(&row, 6)
		tagValues := stringVectorField(&row, 8)
		tags := make(map[string]string, len(tagNames))
		for j, name := range tagNames {
			if j < len(tagValues) {
				tags[name] = tagValues[j]
			}
		}

		var fields []model.DataColumn
		if fvOff := row.Offset(14); fvOff != 0 {
			fvPos := row.Indirect(row.Pos + flatbuffers.UOffsetT(fvOff))
			fv := flatbuffers.Table{Bytes: buf, Pos: fvPos}
			fields = decodeFieldValues(&fv, fieldNames, fieldTypes)
		}

		out[i] = model.TsRow{
			Measurement: measurement,
			Datasource:  tableString(&row, 4),
			Tags:        tags,
			TimeUs:      int64Slot(&row, 10),
			Fields:      fields,
		}
	}
	return out, nil
}

func decodeFieldValues(fv *flatbuffers.Table, names []string, types []byte) []model.DataColumn {
	var longsVec, doublesVec, boolsVec, stringsVec, binariesVec flatbuffers.UOffsetT
	if o := fv.Offset(4); o != 0 {
		longsVec = fv.Vector(flatbuffers.UOffsetT(o))
	}
	if o := fv.Offset(6); o != 0 {
		doublesVec = fv.Vector(flatbuffers.UOffsetT(o))
	}
	if o := fv.Offset(8); o != 0 {
		boolsVec = fv.Vector(flatbuffers.UOffsetT(o))
	}
	if o := fv.Offset(10); o != 0 {
		stringsVec = fv.Vector(flatbuffers.UOffsetT(o))
	}
	if o := fv.Offset(12); o != 0 {
		binariesVec = fv.Vector(flatbuffers.UOffsetT(o))
	}

	var li, di, bi, si, bni int
	out := make([]model.DataColumn, len(names))
	for i, name := range names {
		var t FieldType
		if i < len(types) {
			t = FieldType(types[i])
		}
		var v model.ColValue
		switch t {
		case FieldLong:
			v = model.ColInt(fv.GetInt64(longsVec + flatbuffers.UOffsetT(li)*8))
			li++
		case FieldDouble:
			v = model.ColDouble(fv.GetFloat64(doublesVec + flatbuffers.UOffsetT(di)*8))
			di++
		case FieldBoolean:
			v = model.ColBool(fv.GetBool(boolsVec + flatbuffers.UOffsetT(bi)))
			bi++
		case FieldString:
			v = model.ColStr(fv.String(stringsVec + flatbuffers.UOffsetT(si)*4))
			si++
		case FieldBinary:
			v = model.ColBlobValue(fv.ByteVector(binariesVec + flatbuffers.UOffsetT(bni)*4))
			bni++
		default:
			v = model.ColNullValue()
		}
		out[i] = model.DataColumn{Name: name, Value: v}
	}
	return out
}

func rootTable(buf []byte) flatbuffers.Table {
	return flatbuffers.Table{Bytes: buf, Pos: flatbuffers.GetUOffsetT(buf)}
}

func tableString(t *flatbuffers.Table, slot flatbuffers.VOffsetT) string {
	o := t.Offset(slot)
	if o == 0 {
		return ""
	}
	return t.String(flatbuffers.UOffsetT(o) + t.Pos)
}

func stringVectorField(t *flatbuffers.Table, slot flatbuffers.VOffsetT) []string {
	o := t.Offset(slot)
	if o == 0 {
		return nil
	}
	vec := t.Vector(flatbuffers.UOffsetT(o))
	n := t.VectorLen(flatbuffers.UOffsetT(o))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = t.String(vec + flatbuffers.UOffsetT(i)*4)
	}
	return out
}

func byteSliceField(t *flatbuffers.Table, slot flatbuffers.VOffsetT) []byte {
	o := t.Offset(slot)
	if o == 0 {
		return nil
	}
	return t.ByteVector(flatbuffers.UOffsetT(o) + t.Pos)
}

func int64Slot(t *flatbuffers.Table, slot flatbuffers.VOffsetT) int64 {
	o := t.Offset(slot)
	if o == 0 {
		return 0
	}
	return t.GetInt64(flatbuffers.UOffsetT(o) + t.Pos)
}
