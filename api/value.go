package api

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind uint8

// Scalar kinds and their homogeneous vector counterparts. A Value never
// mixes element kinds within a vector.
const (
	KindString Kind = iota
	KindBool
	KindFloat64
	KindFloat32
	KindInt64
	KindInt32
	KindInt16
	KindInt8
	KindUint64
	KindUint32
	KindUint16
	KindUint8
	KindStrings
	KindBools
	KindFloat64s
	KindFloat32s
	KindInt64s
	KindInt32s
	KindInt16s
	KindInt8s
	KindUint64s
	KindUint32s
	KindUint16s
	KindUint8s
)

// Value is a typed scalar or homogeneous vector used for query-string
// parameters, headers, and bind variables. Values are immutable once
// constructed; vector constructors copy their input slice.
type Value struct {
	kind Kind
	data any
}

// String scalar.
func String(v string) Value { return Value{kind: KindString, data: v} }

// Bool scalar.
func Bool(v bool) Value { return Value{kind: KindBool, data: v} }

// Float64 scalar.
func Float64(v float64) Value { return Value{kind: KindFloat64, data: v} }

// Float32 scalar.
func Float32(v float32) Value { return Value{kind: KindFloat32, data: v} }

// Int64 scalar.
func Int64(v int64) Value { return Value{kind: KindInt64, data: v} }

// Int32 scalar.
func Int32(v int32) Value { return Value{kind: KindInt32, data: v} }

// Int16 scalar.
func Int16(v int16) Value { return Value{kind: KindInt16, data: v} }

// Int8 scalar.
func Int8(v int8) Value { return Value{kind: KindInt8, data: v} }

// Uint64 scalar.
func Uint64(v uint64) Value { return Value{kind: KindUint64, data: v} }

// Uint32 scalar.
func Uint32(v uint32) Value { return Value{kind: KindUint32, data: v} }

// Uint16 scalar.
func Uint16(v uint16) Value { return Value{kind: KindUint16, data: v} }

// Uint8 scalar.
func Uint8(v uint8) Value { return Value{kind: KindUint8, data: v} }

// Int is shorthand for Int64 on the platform int type.
func Int(v int) Value { return Int64(int64(v)) }

// Strings vector.
func Strings(v []string) Value { return Value{kind: KindStrings, data: cloneSlice(v)} }

// Bools vector.
func Bools(v []bool) Value { return Value{kind: KindBools, data: cloneSlice(v)} }

// Float64s vector.
func Float64s(v []float64) Value { return Value{kind: KindFloat64s, data: cloneSlice(v)} }

// Float32s vector.
func Float32s(v []float32) Value { return Value{kind: KindFloat32s, data: cloneSlice(v)} }

// Int64s vector.
func Int64s(v []int64) Value { return Value{kind: KindInt64s, data: cloneSlice(v)} }

// Int32s vector.
func Int32s(v []int32) Value { return Value{kind: KindInt32s, data: cloneSlice(v)} }

// Int16s vector.
func Int16s(v []int16) Value { return Value{kind: KindInt16s, data: cloneSlice(v)} }

// Int8s vector.
func Int8s(v []int8) Value { return Value{kind: KindInt8s, data: cloneSlice(v)} }

// Uint64s vector.
func Uint64s(v []uint64) Value { return Value{kind: KindUint64s, data: cloneSlice(v)} }

// Uint32s vector.
func Uint32s(v []uint32) Value { return Value{kind: KindUint32s, data: cloneSlice(v)} }

// Uint16s vector.
func Uint16s(v []uint16) Value { return Value{kind: KindUint16s, data: cloneSlice(v)} }

// Uint8s vector.
func Uint8s(v []uint8) Value { return Value{kind: KindUint8s, data: cloneSlice(v)} }

func cloneSlice[T any](v []T) []T {
	out := make([]T, len(v))
	copy(out, v)
	return out
}

// Kind returns the variant held by this value.
func (v Value) Kind() Kind { return v.kind }

// IsVector reports whether the value holds a vector variant.
func (v Value) IsVector() bool { return v.kind >= KindStrings }

// String returns the canonical string form used for query-parameter
// encoding: booleans as "true"/"false", integers in base 10, floats in the
// shortest form that round-trips, and vectors as "[v1,v2,...]" with each
// element in its scalar form.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.data.(string)
	case KindBool:
		return strconv.FormatBool(v.data.(bool))
	case KindFloat64:
		return strconv.FormatFloat(v.data.(float64), 'g', -1, 64)
	case KindFloat32:
		return strconv.FormatFloat(float64(v.data.(float32)), 'g', -1, 32)
	case KindInt64:
		return strconv.FormatInt(v.data.(int64), 10)
	case KindInt32:
		return strconv.FormatInt(int64(v.data.(int32)), 10)
	case KindInt16:
		return strconv.FormatInt(int64(v.data.(int16)), 10)
	case KindInt8:
		return strconv.FormatInt(int64(v.data.(int8)), 10)
	case KindUint64:
		return strconv.FormatUint(v.data.(uint64), 10)
	case KindUint32:
		return strconv.FormatUint(uint64(v.data.(uint32)), 10)
	case KindUint16:
		return strconv.FormatUint(uint64(v.data.(uint16)), 10)
	case KindUint8:
		return strconv.FormatUint(uint64(v.data.(uint8)), 10)
	case KindStrings:
		return formatVector(v.data.([]string), String)
	case KindBools:
		return formatVector(v.data.([]bool), Bool)
	case KindFloat64s:
		return formatVector(v.data.([]float64), Float64)
	case KindFloat32s:
		return formatVector(v.data.([]float32), Float32)
	case KindInt64s:
		return formatVector(v.data.([]int64), Int64)
	case KindInt32s:
		return formatVector(v.data.([]int32), Int32)
	case KindInt16s:
		return formatVector(v.data.([]int16), Int16)
	case KindInt8s:
		return formatVector(v.data.([]int8), Int8)
	case KindUint64s:
		return formatVector(v.data.([]uint64), Uint64)
	case KindUint32s:
		return formatVector(v.data.([]uint32), Uint32)
	case KindUint16s:
		return formatVector(v.data.([]uint16), Uint16)
	case KindUint8s:
		return formatVector(v.data.([]uint8), Uint8)
	}
	return ""
}

func formatVector[T any](elems []T, scalar func(T) Value) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(scalar(e).String())
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON renders the value in its natural JSON form, so that bind
// variables serialize to JSON scalars and arrays rather than strings.
func (v Value) MarshalJSON() ([]byte, error) {
	// encoding/json treats []uint8 as []byte and emits base64; a uint8
	// vector must stay a JSON array of numbers.
	if v.kind == KindUint8s {
		elems := v.data.([]uint8)
		widened := make([]uint16, len(elems))
		for i, e := range elems {
			widened[i] = uint16(e)
		}
		return json.Marshal(widened)
	}
	return json.Marshal(v.data)
}
