package filters

import (
	"strings"

	"github.com/google/uuid"
)

// Chain is a sequence of filters between optional input and output pad
// labels. It implements Sink so builders can target it directly.
type Chain struct {
	Inputs  []string
	Outputs []string
	filters []Descriptor
}

// NewChain starts a chain reading from the given pad labels.
func NewChain(inputs ...string) *Chain {
	return &Chain{Inputs: inputs}
}

// AddFilter appends d to the chain.
func (c *Chain) AddFilter(d Descriptor) {
	c.filters = append(c.filters, d)
}

// To sets the output pad labels.
func (c *Chain) To(outputs ...string) *Chain {
	c.Outputs = outputs
	return c
}

// Filters returns a copy of the chain's filters.
func (c *Chain) Filters() []Descriptor {
	return append([]Descriptor(nil), c.filters...)
}

// Len returns the number of filters in the chain.
func (c *Chain) Len() int { return len(c.filters) }

// String renders [in]f1,f2[out].
func (c *Chain) String() string {
	var b strings.Builder
	for _, in := range c.Inputs {
		b.WriteString("[" + in + "]")
	}
	b.WriteString(Join(c.filters))
	for _, out := range c.Outputs {
		b.WriteString("[" + out + "]")
	}
	return b.String()
}

// Graph is a set of chains rendered for -filter_complex.
type Graph struct {
	chains []*Chain
}

// NewGraph returns a graph containing chains.
func NewGraph(chains ...*Chain) *Graph {
	return &Graph{chains: chains}
}

// Add appends chains to the graph.
func (g *Graph) Add(chains ...*Chain) *Graph {
	g.chains = append(g.chains, chains...)
	return g
}

// Chains returns the graph's chains.
func (g *Graph) Chains() []*Chain {
	return append([]*Chain(nil), g.chains...)
}

// Empty reports whether the graph has no filters.
func (g *Graph) Empty() bool {
	for _, c := range g.chains {
		if c.Len() > 0 {
			return false
		}
	}
	return true
}

func (g *Graph) String() string {
	parts := make([]string, 0, len(g.chains))
	for _, c := range g.chains {
		if c.Len() == 0 {
			continue
		}
		parts = append(parts, c.String())
	}
	return strings.Join(parts, ";")
}

// NewLabel returns a pad label unique within any realistic graph.
func NewLabel(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if prefix == "" {
		prefix = "l"
	}
	return prefix + "_" + id[:12]
}
