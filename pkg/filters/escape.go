package filters

import "strings"

var (
	valueEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, `:`, `\:`)
	graphEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, `[`, `\[`, `]`, `\]`, `,`, `\,`, `;`, `\;`)
)

// EscapeValue escapes an option value so the filter's option parser reads it
// as a single value.
func EscapeValue(s string) string {
	return valueEscaper.Replace(s)
}

// EscapeGraph escapes a filter description for embedding in a filter chain
// or graph.
func EscapeGraph(s string) string {
	return graphEscaper.Replace(s)
}

// QuoteValue applies both escaping levels to an option value.
func QuoteValue(s string) string {
	return EscapeGraph(EscapeValue(s))
}
