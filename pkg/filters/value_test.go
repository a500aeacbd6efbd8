package filters

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf(t *testing.T) {
	tests := []struct {
		in       any
		wantKind ValueKind
		wantText string
	}{
		{"abc", KindString, "abc"},
		{42, KindInt, "42"},
		{uint8(7), KindInt, "7"},
		{int64(-3), KindInt, "-3"},
		{1.25, KindFloat, "1.25"},
		{float32(0.5), KindFloat, "0.5"},
		{true, KindBool, "1"},
		{false, KindBool, "0"},
		{1500 * time.Millisecond, KindDuration, "1.5"},
		{json.Number("12"), KindInt, "12"},
		{json.Number("1.5"), KindFloat, "1.5"},
		{Expr("iw/2"), KindExpr, "iw/2"},
	}

	for _, tt := range tests {
		t.Run(tt.wantText, func(t *testing.T) {
			v, err := ValueOf(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, v.Kind())
			assert.Equal(t, tt.wantText, v.Text())
		})
	}

	_, err := ValueOf(nil)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = ValueOf(struct{}{})
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestValueJSON(t *testing.T) {
	var vals map[string]Value
	require.NoError(t, json.Unmarshal([]byte(`{"a": 3, "b": 2.5, "c": "x", "d": false}`), &vals))
	assert.Equal(t, KindInt, vals["a"].Kind())
	assert.Equal(t, KindFloat, vals["b"].Kind())
	assert.Equal(t, KindString, vals["c"].Kind())
	assert.Equal(t, KindBool, vals["d"].Kind())

	b, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `2`, string(b))
}

func TestParamCoerce(t *testing.T) {
	tests := []struct {
		name     string
		param    Param
		in       Value
		wantText string
		wantErr  error
	}{
		{"int from string", Param{Type: ParamInt}, String("12"), "12", nil},
		{"int from whole float", Param{Type: ParamInt}, Float(3), "3", nil},
		{"int rejects fraction", Param{Type: ParamInt}, Float(3.5), "", ErrTypeMismatch},
		{"int float overflow", Param{Type: ParamInt}, Float(1e19), "", ErrOutOfRange},
		{"int negative float overflow", Param{Type: ParamInt}, Float(-1e19), "", ErrOutOfRange},
		{"int string overflow", Param{Type: ParamInt}, String("99999999999999999999"), "", ErrOutOfRange},
		{"int largest whole float", Param{Type: ParamInt}, Float(1 << 62), "4611686018427387904", nil},
		{"int expr allowed", Param{Type: ParamInt, Expr: true}, String("n+1"), "n+1", nil},
		{"float from int", Param{Type: ParamFloat}, Int(2), "2", nil},
		{"float bounds", Param{Type: ParamFloat, Min: 0, Max: 1, Bounded: true}, Float(1.5), "", ErrOutOfRange},
		{"bool words", Param{Type: ParamBool}, String("yes"), "1", nil},
		{"bool rejects 2", Param{Type: ParamBool}, Int(2), "", ErrTypeMismatch},
		{"duration seconds", Param{Type: ParamDuration}, Float(2.5), "2.5", nil},
		{"duration go syntax", Param{Type: ParamDuration}, String("1m30s"), "90", nil},
		{"duration clock syntax", Param{Type: ParamDuration}, String("01:30"), "01:30", nil},
		{"duration garbage", Param{Type: ParamDuration}, String("soon"), "", ErrTypeMismatch},
		{"choice", Param{Type: ParamChoice, Choices: choices("a", "b")}, String("b"), "b", nil},
		{"choice miss", Param{Type: ParamChoice, Choices: choices("a", "b")}, String("c"), "", ErrInvalidChoice},
		{"choice numeric", Param{Type: ParamChoice, Choices: choices("0", "1")}, Int(1), "1", nil},
		{"color", Param{Type: ParamColor}, String("red@0.5"), "red@0.5", nil},
		{"empty expr", Param{Type: ParamExpr}, String(""), "", ErrTypeMismatch},
		{"unknown type", Param{Type: "matrix"}, Int(1), "", ErrInvalidDef},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.param.Coerce(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, got.Text())
		})
	}
}

func TestParamValue(t *testing.T) {
	params := map[string]any{"a": 1.5, "b": "x"}
	assert.Equal(t, "1.5", ParamValue(params, "a", "0"))
	assert.Equal(t, "x", ParamValue(params, "b", ""))
	assert.Equal(t, "d", ParamValue(params, "missing", "d"))
	assert.Equal(t, "d", ParamValue(nil, "a", "d"))
}
