package filters

import (
	"encoding/json"
	"strings"
)

// Option is one named option value inside a descriptor.
type Option struct {
	Key   string `json:"key"`
	Value Value  `json:"value"`
}

// Descriptor is a materialized filter: a name plus the options that were
// explicitly set, in declaration order. Descriptors are immutable.
type Descriptor struct {
	name  string
	media Media
	opts  []Option
	raw   string
}

// RawDescriptor wraps pre-serialized filter text. It is emitted verbatim.
func RawDescriptor(media Media, text string) Descriptor {
	name, _, _ := strings.Cut(text, "=")
	return Descriptor{name: name, media: media, raw: text}
}

func (d Descriptor) Name() string { return d.name }
func (d Descriptor) Media() Media { return d.media }

// IsRaw reports whether the descriptor was created from pre-serialized text.
func (d Descriptor) IsRaw() bool { return d.raw != "" }

// Options returns a copy of the descriptor's options.
func (d Descriptor) Options() []Option {
	return append([]Option(nil), d.opts...)
}

// Len returns the number of options.
func (d Descriptor) Len() int { return len(d.opts) }

// Get returns the value stored under key.
func (d Descriptor) Get(key string) (Value, bool) {
	for _, o := range d.opts {
		if o.Key == key {
			return o.Value, true
		}
	}
	return Value{}, false
}

// Map returns the options as a plain map.
func (d Descriptor) Map() map[string]any {
	out := make(map[string]any, len(d.opts))
	for _, o := range d.opts {
		out[o.Key] = o.Value.Any()
	}
	return out
}

// String renders the descriptor in filter-graph syntax, escaped for use in a
// chain: name=key=value:key=value.
func (d Descriptor) String() string {
	if d.raw != "" {
		return d.raw
	}
	if len(d.opts) == 0 {
		return d.name
	}
	var b strings.Builder
	b.WriteString(d.name)
	b.WriteByte('=')
	for i, o := range d.opts {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(o.Key)
		b.WriteByte('=')
		b.WriteString(QuoteValue(o.Value.Text()))
	}
	return b.String()
}

type descriptorJSON struct {
	Filter  string         `json:"filter"`
	Media   Media          `json:"media"`
	Options map[string]any `json:"options"`
	Raw     string         `json:"raw,omitempty"`
}

// MarshalJSON encodes the descriptor as {"filter", "media", "options"}.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(descriptorJSON{
		Filter:  d.name,
		Media:   d.media,
		Options: d.Map(),
		Raw:     d.raw,
	})
}

// Join renders descriptors as a single filter chain.
func Join(ds []Descriptor) string {
	parts := make([]string, 0, len(ds))
	for _, d := range ds {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, ",")
}
