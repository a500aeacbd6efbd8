package filters

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ParamType describes what kind of value an option accepts.
type ParamType string

const (
	ParamInt      ParamType = "int"
	ParamFloat    ParamType = "float"
	ParamString   ParamType = "string"
	ParamBool     ParamType = "bool"
	ParamDuration ParamType = "duration"
	ParamChoice   ParamType = "choice"
	ParamColor    ParamType = "color"
	ParamExpr     ParamType = "expr"
)

// Choice is one accepted value of a choice option.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// Param describes one option of a filter.
type Param struct {
	Key     string    `json:"key"`
	Aliases []string  `json:"aliases,omitempty"`
	Type    ParamType `json:"type"`
	// Min and Max apply to numeric values when Bounded is set.
	Min     float64 `json:"min,omitempty"`
	Max     float64 `json:"max,omitempty"`
	Bounded bool    `json:"bounded,omitempty"`
	// Expr allows a numeric option to carry an ffmpeg expression instead of a literal.
	Expr       bool     `json:"expr,omitempty"`
	Required   bool     `json:"required,omitempty"`
	DefaultVal string   `json:"default,omitempty"`
	Choices    []Choice `json:"choices,omitempty"`
	Doc        string   `json:"doc,omitempty"`
}

// ffmpeg time duration syntax: [-][HH:]MM:SS[.m...]
var clockRe = regexp.MustCompile(`^-?(\d+:)?\d+:\d+(\.\d+)?$`)

// Matches reports whether name is the key or one of the aliases.
func (p *Param) Matches(name string) bool {
	return p.Key == name || slices.Contains(p.Aliases, name)
}

// ChoiceValues returns the accepted values of a choice option.
func (p *Param) ChoiceValues() []string {
	out := make([]string, 0, len(p.Choices))
	for _, c := range p.Choices {
		out = append(out, c.Value)
	}
	return out
}

// Coerce converts v into the representation this option expects and checks
// it against the option's constraints.
func (p *Param) Coerce(v Value) (Value, error) {
	out, err := p.coerceType(v)
	if err != nil {
		return Value{}, err
	}
	if p.Bounded {
		if n, ok := out.Number(); ok && (n < p.Min || n > p.Max) {
			return Value{}, fmt.Errorf("%w: %s not in [%s, %s]", ErrOutOfRange,
				out.Text(), FmtNum(p.Min), FmtNum(p.Max))
		}
	}
	return out, nil
}

func (p *Param) coerceType(v Value) (Value, error) {
	switch p.Type {
	case ParamInt:
		switch v.kind {
		case KindInt:
			return v, nil
		case KindFloat:
			if v.f == math.Trunc(v.f) {
				if math.Abs(v.f) >= 1<<63 {
					return Value{}, fmt.Errorf("%w: %s overflows int64", ErrOutOfRange, FmtNum(v.f))
				}
				return Int(int64(v.f)), nil
			}
		case KindString, KindExpr:
			i, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
			if err == nil {
				return Int(i), nil
			}
			if errors.Is(err, strconv.ErrRange) {
				return Value{}, fmt.Errorf("%w: %s overflows int64", ErrOutOfRange, strings.TrimSpace(v.s))
			}
			if p.Expr && v.s != "" {
				return Expr(v.s), nil
			}
		}
	case ParamFloat:
		switch v.kind {
		case KindInt:
			return Float(float64(v.i)), nil
		case KindFloat:
			return v, nil
		case KindString, KindExpr:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64); err == nil {
				return Float(f), nil
			}
			if p.Expr && v.s != "" {
				return Expr(v.s), nil
			}
		}
	case ParamString, ParamColor:
		switch v.kind {
		case KindString, KindExpr:
			return String(v.s), nil
		case KindInt, KindFloat:
			return String(v.Text()), nil
		}
	case ParamExpr:
		switch v.kind {
		case KindString, KindExpr:
			if v.s == "" {
				return Value{}, fmt.Errorf("%w: empty expression", ErrTypeMismatch)
			}
			return Expr(v.s), nil
		case KindInt, KindFloat, KindDuration:
			return v, nil
		}
	case ParamBool:
		switch v.kind {
		case KindBool:
			return v, nil
		case KindInt:
			if v.i == 0 || v.i == 1 {
				return Bool(v.i == 1), nil
			}
		case KindString:
			switch strings.ToLower(v.s) {
			case "1", "true", "yes", "y", "enable", "on":
				return Bool(true), nil
			case "0", "false", "no", "n", "disable", "off":
				return Bool(false), nil
			}
		}
	case ParamDuration:
		switch v.kind {
		case KindDuration:
			return v, nil
		case KindInt:
			return Duration(time.Duration(v.i) * time.Second), nil
		case KindFloat:
			return Duration(time.Duration(v.f * float64(time.Second))), nil
		case KindString:
			s := strings.TrimSpace(v.s)
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return Duration(time.Duration(f * float64(time.Second))), nil
			}
			if d, err := time.ParseDuration(s); err == nil {
				return Duration(d), nil
			}
			if clockRe.MatchString(s) {
				return String(s), nil
			}
		}
	case ParamChoice:
		text := v.Text()
		if v.kind == KindBool {
			break
		}
		if slices.Contains(p.ChoiceValues(), text) {
			return String(text), nil
		}
		return Value{}, fmt.Errorf("%w: %q not one of %s", ErrInvalidChoice, text,
			strings.Join(p.ChoiceValues(), ", "))
	default:
		return Value{}, fmt.Errorf("%w: option type %q", ErrInvalidDef, p.Type)
	}
	return Value{}, fmt.Errorf("%w: %s value %q for %s option", ErrTypeMismatch, v.kind, v.Text(), p.Type)
}

// FmtNum formats a float without trailing zeros.
func FmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParamValue reads a parameter from a loosely typed params map, returning
// defaultVal if missing. Works with string and float64 values from JSON
// decoding.
func ParamValue(params map[string]any, key string, defaultVal string) string {
	if params == nil {
		return defaultVal
	}
	v, ok := params[key]
	if !ok || v == nil {
		return defaultVal
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func choices(values ...string) []Choice {
	out := make([]Choice, 0, len(values))
	for _, v := range values {
		out = append(out, Choice{Value: v})
	}
	return out
}
