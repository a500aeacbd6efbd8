package filters

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// ValueKind identifies how an option value was supplied.
type ValueKind int

const (
	KindString ValueKind = iota
	KindInt
	KindFloat
	KindBool
	KindDuration
	KindExpr
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDuration:
		return "duration"
	case KindExpr:
		return "expr"
	default:
		return "unknown"
	}
}

// Value is a single filter option value. The zero value is the empty string,
// which is a perfectly valid value: presence is tracked by the builder, never
// inferred from the value itself.
type Value struct {
	kind ValueKind
	s    string
	i    int64
	f    float64
	b    bool
	d    time.Duration
}

func String(s string) Value          { return Value{kind: KindString, s: s} }
func Int(i int64) Value              { return Value{kind: KindInt, i: i} }
func Float(f float64) Value          { return Value{kind: KindFloat, f: f} }
func Bool(b bool) Value              { return Value{kind: KindBool, b: b} }
func Duration(d time.Duration) Value { return Value{kind: KindDuration, d: d} }

// Expr wraps an ffmpeg expression such as "iw/2" or "PTS-STARTPTS".
func Expr(s string) Value { return Value{kind: KindExpr, s: s} }

// ValueOf converts a Go value into a Value.
func ValueOf(x any) (Value, error) {
	switch v := x.(type) {
	case Value:
		return v, nil
	case string:
		return String(v), nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return Int(int64(v)), nil
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	case time.Duration:
		return Duration(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a number", ErrTypeMismatch, v.String())
		}
		return Float(f), nil
	case fmt.Stringer:
		return String(v.String()), nil
	case nil:
		return Value{}, fmt.Errorf("%w: nil value", ErrTypeMismatch)
	default:
		return Value{}, fmt.Errorf("%w: unsupported type %T", ErrTypeMismatch, x)
	}
}

// Kind reports how the value was supplied.
func (v Value) Kind() ValueKind { return v.kind }

// Text returns the unescaped ffmpeg representation of the value.
func (v Value) Text() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindBool:
		if v.b {
			return "1"
		}
		return "0"
	case KindDuration:
		return strconv.FormatFloat(v.d.Seconds(), 'f', -1, 64)
	default:
		return v.s
	}
}

// Any returns the value as a plain Go value: string, int64, float64, bool,
// or, for durations, seconds as float64.
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	case KindDuration:
		return v.d.Seconds()
	default:
		return v.s
	}
}

// Number returns the numeric value and whether the value is numeric.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	case KindDuration:
		return v.d.Seconds(), true
	}
	return 0, false
}

func (v Value) String() string { return v.Text() }

// MarshalJSON encodes the value as its plain Go equivalent.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

// UnmarshalJSON decodes strings, numbers and booleans. Whole numbers become
// KindInt.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			*v = Int(int64(x))
		} else {
			*v = Float(x)
		}
	default:
		parsed, err := ValueOf(x)
		if err != nil {
			return err
		}
		*v = parsed
	}
	return nil
}
