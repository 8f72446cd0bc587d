package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_ScalarString(t *testing.T) {
	cases := []struct {
		name  string
		value Value
		want  string
	}{
		{"string", String("deep blue"), "deep blue"},
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"float64", Float64(1.5), "1.5"},
		{"float64 whole", Float64(42), "42"},
		{"float32", Float32(0.25), "0.25"},
		{"int64", Int64(-9007199254740993), "-9007199254740993"},
		{"int", Int(7), "7"},
		{"uint64", Uint64(18446744073709551615), "18446744073709551615"},
		{"uint8", Uint8(255), "255"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.value.String())
		})
	}
}

func TestValue_FloatStringRoundTrips(t *testing.T) {
	// The shortest representation must parse back to the same number.
	for _, v := range []float64{0.1, 1.0 / 3.0, 1e300, -2.2250738585072014e-308} {
		var parsed float64
		err := json.Unmarshal([]byte(Float64(v).String()), &parsed)
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
}

func TestValue_VectorString(t *testing.T) {
	assert.Equal(t, "[a,b,c]", Strings([]string{"a", "b", "c"}).String())
	assert.Equal(t, "[1,2,3]", Int64s([]int64{1, 2, 3}).String())
	assert.Equal(t, "[true,false]", Bools([]bool{true, false}).String())
	assert.Equal(t, "[]", Float64s(nil).String())
}

func TestValue_Kind(t *testing.T) {
	assert.Equal(t, KindString, String("x").Kind())
	assert.Equal(t, KindUint8s, Uint8s([]uint8{1}).Kind())
	assert.False(t, Int(1).IsVector())
	assert.True(t, Int32s([]int32{1}).IsVector())
}

func TestValue_ConstructorCopiesSlice(t *testing.T) {
	src := []string{"a", "b"}
	v := Strings(src)
	src[0] = "mutated"
	assert.Equal(t, "[a,b]", v.String())
}

func TestValue_MarshalJSON(t *testing.T) {
	cases := []struct {
		name  string
		value Value
		want  string
	}{
		{"string", String("x"), `"x"`},
		{"bool", Bool(true), `true`},
		{"int64", Int64(-5), `-5`},
		{"float64", Float64(2.5), `2.5`},
		{"strings", Strings([]string{"a", "b"}), `["a","b"]`},
		{"uint64s", Uint64s([]uint64{1, 2}), `[1,2]`},
		// []uint8 must encode as a number array, not base64.
		{"uint8s", Uint8s([]uint8{1, 2, 255}), `[1,2,255]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := json.Marshal(tc.value)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(raw))
		})
	}
}
