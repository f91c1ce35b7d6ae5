// Package tsfb builds the FlatBuffers-encoded row-group payload the
// PutTimeseriesData RPC (C4) carries, using github.com/google/flatbuffers'
// builder API directly rather than schema-generated bindings, since the
// real .fbs schema is part of the out-of-scope IDL (spec.md §1).
package tsfb

import (
	"sort"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/go-tablestore/tablestore/model"
	"github.com/go-tablestore/tablestore/tserrors"
)

// FieldType mirrors the RowGroup field-type enum from spec §4.4.
type FieldType byte

const (
	FieldNone FieldType = iota
	FieldLong
	FieldBoolean
	FieldDouble
	FieldString
	FieldBinary
)

func fieldTypeOf(v model.ColValue) (FieldType, error) {
	switch v.Kind() {
	case model.ColInteger:
		return FieldLong, nil
	case model.ColDouble:
		return FieldDouble, nil
	case model.ColBoolean:
		return FieldBoolean, nil
	case model.ColString:
		return FieldString, nil
	case model.ColBlob:
		return FieldBinary, nil
	default:
		return FieldNone, tserrors.NewValidationFailed("timeseries field value of kind %s is not encodable", v.Kind())
	}
}

// metaCacheUpdateTimeSeconds is the fixed refresh interval (seconds) embedded in
// every RowInGroup, per spec §4.4.
const metaCacheUpdateTimeSeconds = 60

// field table offsets, written in declaration order within FieldValues.
type valueVectors struct {
	longs    []int64
	bools    []bool
	doubles  []float64
	strings  []string
	binaries [][]byte
}

// EncodeRow builds a single-row RowGroup FlatBuffers payload for t,
// matching spec §4.4's layout: one measurement_name, the row's field
// names/types (declaration order), one RowInGroup carrying data_source,
// a tag_list sorted ascending by key, time, a fixed meta-cache update
// time, and the FieldValues vectors.
func EncodeRow(t model.TsRow) ([]byte, error) {
	fieldNames := make([]string, len(t.Fields))
	fieldTypes := make([]FieldType, len(t.Fields))
	vv := valueVectors{}
	for i, f := range t.Fields {
		fieldNames[i] = f.Name
		ft, err := fieldTypeOf(f.Value)
		if err != nil {
			return nil, err
		}
		fieldTypes[i] = ft
		switch ft {
		case FieldLong:
			n, _ := f.Value.Int()
			vv.longs = append(vv.longs, n)
		case FieldDouble:
			d, _ := f.Value.Double()
			vv.doubles = append(vv.doubles, d)
		case FieldBoolean:
			b, _ := f.Value.Bool()
			vv.bools = append(vv.bools, b)
		case FieldString:
			s, _ := f.Value.Str()
			vv.strings = append(vv.strings, s)
		case FieldBinary:
			b, _ := f.Value.Blob()
			vv.binaries = append(vv.binaries, b)
		}
	}

	tagNames := make([]string, 0, len(t.Tags))
	for k := range t.Tags {
		tagNames = append(tagNames, k)
	}
	sort.Strings(tagNames)

	b := flatbuffers.NewBuilder(256)

	// FieldValues: five type-specific vectors, each built back-to-front
	// per the builder's append-in-reverse convention.
	longsOff := buildInt64Vector(b, vv.longs)
	doublesOff := buildFloat64Vector(b, vv.doubles)
	boolsOff := buildBoolVector(b, vv.bools)
	stringsOff := buildStringVector(b, vv.strings)
	binariesOff := buildBinaryVector(b, vv.binaries)

	b.StartObject(5)
	b.PrependUOffsetTSlot(0, longsOff, 0)
	b.PrependUOffsetTSlot(1, doublesOff, 0)
	b.PrependUOffsetTSlot(2, boolsOff, 0)
	b.PrependUOffsetTSlot(3, stringsOff, 0)
	b.PrependUOffsetTSlot(4, binariesOff, 0)
	fieldValuesOff := b.EndObject()

	tagListOff := buildStringVector(b, tagNames)
	tagValuesOff := buildTagValues(b, t.Tags, tagNames)
	dataSourceOff := b.CreateString(t.Datasource)

	b.StartObject(6)
	b.PrependUOffsetTSlot(0, dataSourceOff, 0)
	b.PrependUOffsetTSlot(1, tagListOff, 0)
	b.PrependUOffsetTSlot(2, tagValuesOff, 0)
	b.PrependInt64Slot(3, t.TimeUs, 0)
	b.PrependInt32Slot(4, metaCacheUpdateTimeSeconds, 0)
	b.PrependUOffsetTSlot(5, fieldValuesOff, 0)
	rowOff := b.EndObject()

	rowsVecOff := buildOffsetVector(b, []flatbuffers.UOffsetT{rowOff})
	fieldNamesOff := buildStringVector(b, fieldNames)
	fieldTypesOff := buildByteVector(b, fieldTypes)
	measurementOff := b.CreateString(t.Measurement)

	b.StartObject(4)
	b.PrependUOffsetTSlot(0, measurementOff, 0)
	b.PrependUOffsetTSlot(1, fieldNamesOff, 0)
	b.PrependUOffsetTSlot(2, fieldTypesOff, 0)
	b.PrependUOffsetTSlot(3, rowsVecOff, 0)
	groupOff := b.EndObject()

	b.Finish(groupOff)
	return b.FinishedBytes(), nil
}

func buildInt64Vector(b *flatbuffers.Builder, vs []int64) flatbuffers.UOffsetT {
	b.StartVector(8, len(vs), 8)
	for i := len(vs) - 1; i >= 0; i-- {
		b.PrependInt64(vs[i])
	}
	return b.EndVector(len(vs))
}

func buildFloat64Vector(b *flatbuffers.Builder, vs []float64) flatbuffers.UOffsetT {
	b.StartVector(8, len(vs), 8)
	for i := len(vs) - 1; i >= 0; i-- {
		b.PrependFloat64(vs[i])
	}
	return b.EndVector(len(vs))
}

func buildBoolVector(b *flatbuffers.Builder, vs []bool) flatbuffers.UOffsetT {
	b.StartVector(1, len(vs), 1)
	for i := len(vs) - 1; i >= 0; i-- {
		b.PrependBool(vs[i])
	}
	return b.EndVector(len(vs))
}

func buildByteVector(b *flatbuffers.Builder, vs []FieldType) flatbuffers.UOffsetT {
	b.StartVector(1, len(vs), 1)
	for i := len(vs) - 1; i >= 0; i-- {
		b.PrependByte(byte(vs[i]))
	}
	return b.EndVector(len(vs))
}

func buildStringVector(b *flatbuffers.Builder, vs []string) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(vs))
	for i, s := range vs {
		offs[i] = b.CreateString(s)
	}
	return buildOffsetVector(b, offs)
}

func buildBinaryVector(b *flatbuffers.Builder, vs [][]byte) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(vs))
	for i, v := range vs {
		offs[i] = b.CreateByteString(v)
	}
	return buildOffsetVector(b, offs)
}

func buildOffsetVector(b *flatbuffers.Builder, offs []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	b.StartVector(4, len(offs), 4)
	for i := len(offs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offs[i])
	}
	return b.EndVector(len(offs))
}

// buildTagValues emits the tag_list's parallel value vector (so the
// decoder can zip names[i] with values[i]); built after tagNames is
// sorted, in the same order.
func buildTagValues(b *flatbuffers.Builder, tags map[string]string, sortedNames []string) flatbuffers.UOffsetT {
	values := make([]string, len(sortedNames))
	for i, n := range sortedNames {
		values[i] = tags[n]
	}
	return buildStringVector(b, values)
}
