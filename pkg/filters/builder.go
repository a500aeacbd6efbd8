package filters

import (
	"errors"
	"fmt"
	"time"
)

// Sink receives built filters. ffmpeg.Command and Chain implement it.
type Sink interface {
	AddFilter(d Descriptor)
}

// Builder accumulates options for one filter and hands the resulting
// descriptor to its host on Build. H is the host type returned from Build so
// callers can keep chaining on it.
type Builder[H Sink] struct {
	host H
	name string
	def  *Definition

	values map[string]Value
	errs   []error
}

// New returns a fresh builder for the filter registered under name, bound to
// host. An unknown name is reported by Build.
func New[H Sink](reg *Registry, host H, name string) *Builder[H] {
	b := &Builder[H]{host: host, name: name, values: map[string]Value{}}
	if reg == nil {
		reg = Default()
	}
	def, ok := reg.lookup(name)
	if !ok {
		b.errs = append(b.errs, &ConfigError{Filter: name, Reason: "not registered", Err: ErrUnknownFilter})
		return b
	}
	b.def = def
	return b
}

// Name returns the filter name.
func (b *Builder[H]) Name() string { return b.name }

// Host returns the host the builder is bound to.
func (b *Builder[H]) Host() H { return b.host }

// Definition returns a copy of the filter's schema, or nil for unknown filters.
func (b *Builder[H]) Definition() *Definition {
	if b.def == nil {
		return nil
	}
	return b.def.clone()
}

// Set stores v under the option key or alias name. Setting the same option
// twice keeps the last value.
func (b *Builder[H]) Set(name string, v any) *Builder[H] {
	if b.def == nil {
		return b
	}
	p, ok := b.def.Param(name)
	if !ok {
		b.errs = append(b.errs, configErr(b.name, name, ErrUnknownOption, "not an option of %s", b.name))
		return b
	}
	val, err := ValueOf(v)
	if err != nil {
		b.errs = append(b.errs, &ConfigError{Filter: b.name, Option: p.Key, Reason: err.Error(), Err: err})
		return b
	}
	b.values[p.Key] = val
	return b
}

func (b *Builder[H]) SetString(name, v string) *Builder[H]        { return b.Set(name, String(v)) }
func (b *Builder[H]) SetInt(name string, v int64) *Builder[H]     { return b.Set(name, Int(v)) }
func (b *Builder[H]) SetFloat(name string, v float64) *Builder[H] { return b.Set(name, Float(v)) }
func (b *Builder[H]) SetBool(name string, v bool) *Builder[H]     { return b.Set(name, Bool(v)) }
func (b *Builder[H]) SetExpr(name, expr string) *Builder[H]       { return b.Set(name, Expr(expr)) }
func (b *Builder[H]) SetDuration(name string, d time.Duration) *Builder[H] {
	return b.Set(name, Duration(d))
}

// SetAll stores every entry of opts.
func (b *Builder[H]) SetAll(opts map[string]any) *Builder[H] {
	for k, v := range opts {
		b.Set(k, v)
	}
	return b
}

// Unset removes a previously set option.
func (b *Builder[H]) Unset(name string) *Builder[H] {
	if b.def == nil {
		return b
	}
	if p, ok := b.def.Param(name); ok {
		delete(b.values, p.Key)
	}
	return b
}

// IsSet reports whether the option has been set.
func (b *Builder[H]) IsSet(name string) bool {
	if b.def == nil {
		return false
	}
	p, ok := b.def.Param(name)
	if !ok {
		return false
	}
	_, set := b.values[p.Key]
	return set
}

// Descriptor validates the accumulated options and materializes them without
// handing the result to the host.
func (b *Builder[H]) Descriptor() (Descriptor, error) {
	errs := append([]error(nil), b.errs...)
	if b.def == nil {
		return Descriptor{}, errors.Join(errs...)
	}

	d := Descriptor{name: b.def.Name, media: b.def.Media}
	for i := range b.def.Params {
		p := &b.def.Params[i]
		v, ok := b.values[p.Key]
		if !ok {
			if p.Required {
				errs = append(errs, configErr(b.name, p.Key, ErrMissingRequired, "required"))
			}
			continue
		}
		coerced, err := p.Coerce(v)
		if err != nil {
			errs = append(errs, &ConfigError{Filter: b.name, Option: p.Key, Reason: err.Error(), Err: err})
			continue
		}
		d.opts = append(d.opts, Option{Key: p.Key, Value: coerced})
	}
	if len(errs) > 0 {
		return Descriptor{}, errors.Join(errs...)
	}
	return d, nil
}

// Build validates the options, hands the descriptor to the host and returns
// the host. On error nothing is handed off.
func (b *Builder[H]) Build() (H, error) {
	d, err := b.Descriptor()
	if err != nil {
		return b.host, err
	}
	b.host.AddFilter(d)
	return b.host, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder[H]) MustBuild() H {
	h, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("filters: %v", err))
	}
	return h
}

// typed is embedded by the per-filter builders.
type typed[H Sink] struct {
	b *Builder[H]
}

func (t typed[H]) Build() (H, error)               { return t.b.Build() }
func (t typed[H]) MustBuild() H                    { return t.b.MustBuild() }
func (t typed[H]) Descriptor() (Descriptor, error) { return t.b.Descriptor() }

// Builder exposes the generic builder for options without a typed setter.
func (t typed[H]) Builder() *Builder[H] { return t.b }

type nopSink struct{}

func (nopSink) AddFilter(Descriptor) {}

// NewDescriptor builds a validated descriptor for the named filter from a
// loosely typed options map.
func NewDescriptor(reg *Registry, name string, opts map[string]any) (Descriptor, error) {
	return New[nopSink](reg, nopSink{}, name).SetAll(opts).Descriptor()
}
