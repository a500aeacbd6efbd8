package filters

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Media is the stream type a filter operates on.
type Media string

const (
	MediaVideo Media = "video"
	MediaAudio Media = "audio"
)

// Definition is the option schema of one ffmpeg filter.
type Definition struct {
	Name   string  `json:"name"`
	Media  Media   `json:"media"`
	Doc    string  `json:"doc,omitempty"`
	Params []Param `json:"params,omitempty"`
}

var titleCaser = cases.Title(language.English)

// Param resolves an option by key or alias.
func (d *Definition) Param(name string) (*Param, bool) {
	for i := range d.Params {
		if d.Params[i].Matches(name) {
			return &d.Params[i], true
		}
	}
	return nil, false
}

// Label returns a human readable name for the filter.
func (d *Definition) Label() string {
	return Label(d.Name)
}

// Label turns an option or filter key such as "start_time" into "Start Time".
func Label(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}

// validate checks that keys and aliases are unique and choice options carry
// choices.
func (d *Definition) validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDef)
	}
	if d.Media != MediaVideo && d.Media != MediaAudio {
		return fmt.Errorf("%w: %s: media %q", ErrInvalidDef, d.Name, d.Media)
	}
	seen := map[string]string{}
	for _, p := range d.Params {
		if p.Key == "" {
			return fmt.Errorf("%w: %s: option with empty key", ErrInvalidDef, d.Name)
		}
		if p.Type == ParamChoice && len(p.Choices) == 0 {
			return fmt.Errorf("%w: %s: choice option %s has no choices", ErrInvalidDef, d.Name, p.Key)
		}
		if p.Bounded && p.Min > p.Max {
			return fmt.Errorf("%w: %s: option %s has min > max", ErrInvalidDef, d.Name, p.Key)
		}
		for _, name := range append([]string{p.Key}, p.Aliases...) {
			if owner, dup := seen[name]; dup {
				return fmt.Errorf("%w: %s: %q used by both %s and %s", ErrInvalidDef, d.Name, name, owner, p.Key)
			}
			seen[name] = p.Key
		}
	}
	return nil
}

func (d Definition) clone() *Definition {
	out := d
	out.Params = make([]Param, len(d.Params))
	for i, p := range d.Params {
		p.Aliases = append([]string(nil), p.Aliases...)
		p.Choices = append([]Choice(nil), p.Choices...)
		out.Params[i] = p
	}
	return &out
}
