// Package markdown renders user-supplied markdown (preset descriptions and
// filter docs) to sanitized HTML.
package markdown

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

var (
	renderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.Safelink | blackfriday.NofollowLinks | blackfriday.HrefTargetBlank |
			blackfriday.Smartypants | blackfriday.SmartypantsDashes,
	})
	extensions = blackfriday.NoIntraEmphasis | blackfriday.Tables | blackfriday.FencedCode |
		blackfriday.Autolink | blackfriday.Strikethrough | blackfriday.SpaceHeadings
	policy = bluemonday.UGCPolicy()
)

// ToHTML renders src and strips anything the UGC policy does not allow.
func ToHTML(src string) template.HTML {
	if src == "" {
		return ""
	}
	unsafe := blackfriday.Run([]byte(src), blackfriday.WithRenderer(renderer), blackfriday.WithExtensions(extensions))
	return template.HTML(bytes.TrimSpace(policy.SanitizeBytes(unsafe)))
}

// Markdown is a markdown text column. Only Source is stored; the HTML is
// rendered on first use.
type Markdown struct {
	Source string
	html   *template.HTML
}

// Render returns the sanitized HTML for m.Source.
func (m *Markdown) Render() template.HTML {
	if m.html == nil {
		h := ToHTML(m.Source)
		m.html = &h
	}
	return *m.html
}

// ScanText implements pgtype.TextScanner. NULL scans as an empty source.
func (m *Markdown) ScanText(v pgtype.Text) error {
	m.Source = ""
	if v.Valid {
		m.Source = v.String
	}
	m.html = nil
	return nil
}

// TextValue implements pgtype.TextValuer.
func (m Markdown) TextValue() (pgtype.Text, error) {
	return pgtype.Text{String: m.Source, Valid: true}, nil
}

// String returns the markdown source.
func (m Markdown) String() string { return m.Source }

var (
	_ pgtype.TextScanner = (*Markdown)(nil)
	_ pgtype.TextValuer  = Markdown{}
	_ fmt.Stringer       = Markdown{}
)
