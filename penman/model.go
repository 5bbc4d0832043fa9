package penman

import "strings"

// InstanceRole is the role that binds a variable to its concept.
const InstanceRole = ":instance"

// Triple is one labeled edge or attribute of a graph.
// Target holds the value as written in the notation: a variable, a bare
// symbol, a numeric literal, or a double-quoted string including its
// quotes.
type Triple struct {
	Source string
	Role   string
	Target string
}

// Graph is a rooted, directed, labeled graph decoded from or encodable to
// PENMAN notation. The zero value is an empty graph with no top.
type Graph struct {
	// Top is the variable of the designated root node.
	Top string
	// Metadata holds "# ::key value" comment lines found above the graph.
	Metadata map[string]string

	triples []Triple
}

// NewGraph builds a graph from triples in order. If top is empty, the
// source of the first triple becomes the top.
func NewGraph(triples []Triple, top string) *Graph {
	if top == "" && len(triples) > 0 {
		top = triples[0].Source
	}
	g := &Graph{Top: top}
	g.triples = append(g.triples, triples...)
	return g
}

// Triples returns every triple of the graph in notation order.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)
	return out
}

// Instances returns the :instance triples of the graph.
func (g *Graph) Instances() []Triple {
	var out []Triple
	for _, t := range g.triples {
		if t.Role == InstanceRole {
			out = append(out, t)
		}
	}
	return out
}

// Edges returns the triples whose target is a variable of the graph.
func (g *Graph) Edges() []Triple {
	vars := g.Variables()
	var out []Triple
	for _, t := range g.triples {
		if t.Role == InstanceRole {
			continue
		}
		if _, ok := vars[t.Target]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Attributes returns the triples whose target is a constant.
func (g *Graph) Attributes() []Triple {
	vars := g.Variables()
	var out []Triple
	for _, t := range g.triples {
		if t.Role == InstanceRole {
			continue
		}
		if _, ok := vars[t.Target]; !ok {
			out = append(out, t)
		}
	}
	return out
}

// Variables returns the set of node variables, i.e. every symbol that
// appears as the source of some triple.
func (g *Graph) Variables() map[string]struct{} {
	vars := make(map[string]struct{}, len(g.triples))
	for _, t := range g.triples {
		vars[t.Source] = struct{}{}
	}
	return vars
}

// Model describes role semantics consulted when a graph must be
// re-rooted: edges pointing against the serialization direction are
// written with their inverted role.
type Model struct {
	// Inversions maps a role to its inverse for roles that do not follow
	// the regular "-of" convention.
	Inversions map[string]string
}

// DefaultModel is used by every operation when no model is given. It
// knows only the regular "-of" inversion convention.
var DefaultModel = &Model{}

// AMRModel carries the irregular inversions of the AMR corpus, where
// :domain and :mod invert to each other instead of following the "-of"
// convention.
var AMRModel = &Model{
	Inversions: map[string]string{
		":domain": ":mod",
	},
}

// Invert returns the inverse of role. Roles listed in Inversions map to
// their configured inverse; otherwise a "-of" suffix is toggled.
func (m *Model) Invert(role string) string {
	if m.Inversions != nil {
		if inv, ok := m.Inversions[role]; ok {
			return inv
		}
		for r, inv := range m.Inversions {
			if inv == role {
				return r
			}
		}
	}
	if strings.HasSuffix(role, "-of") {
		return strings.TrimSuffix(role, "-of")
	}
	return role + "-of"
}
