package penman

import "errors"

// treeNode is one parenthesized node of the notation: a variable, an
// optional concept, and an ordered list of branches.
type treeNode struct {
	Var      string
	Concept  string
	Branches []treeBranch
}

// treeBranch is one (role, target) pair of a node. Exactly one of Node
// and Atom is set: nested nodes recurse, atoms hold a variable reference
// or a constant as written.
type treeBranch struct {
	Role   string
	Node   *treeNode
	Atom   string
	VarRef bool // Atom names a node variable elsewhere in the graph
}

// interpret flattens a parsed tree into graph triples in notation order.
func interpret(root *treeNode, meta map[string]string) *Graph {
	g := &Graph{Top: root.Var, Metadata: meta}
	flattenNode(root, g)
	return g
}

func flattenNode(n *treeNode, g *Graph) {
	// Concept-less nodes such as (d) still get an instance triple with an
	// empty target, so the variable survives a round trip as a node.
	g.triples = append(g.triples, Triple{Source: n.Var, Role: InstanceRole, Target: n.Concept})
	for _, b := range n.Branches {
		if b.Node != nil {
			g.triples = append(g.triples, Triple{Source: n.Var, Role: b.Role, Target: b.Node.Var})
			flattenNode(b.Node, g)
			continue
		}
		g.triples = append(g.triples, Triple{Source: n.Var, Role: b.Role, Target: b.Atom})
	}
}

var (
	errTopNotInGraph = errors.New("top is not a variable in the graph")
	errDisconnected  = errors.New("graph is disconnected from the top")
	errEmptyGraph    = errors.New("cannot encode an empty graph")
)

// configure rebuilds a spanning tree over the graph's triples rooted at
// top. A forward pass places every triple reachable along edge direction;
// a graft pass then attaches the remaining subgraphs through inverted
// roles. Reentrant variables serialize as bare references.
func configure(g *Graph, top string, model *Model) (*treeNode, error) {
	if len(g.triples) == 0 {
		return nil, &EncodeError{Err: errEmptyGraph}
	}
	if top == "" {
		top = g.Top
	}
	vars := g.Variables()
	if _, ok := vars[top]; !ok {
		return nil, &EncodeError{Var: top, Err: errTopNotInGraph}
	}

	c := &configurator{
		graph: g,
		vars:  vars,
		used:  make([]bool, len(g.triples)),
		nodes: make(map[string]*treeNode),
	}
	root := c.buildNode(top)

	// Graft subgraphs only reachable against edge direction.
	for progress := true; progress; {
		progress = false
		for i, t := range g.triples {
			if c.used[i] || t.Role == InstanceRole {
				continue
			}
			parent, ok := c.nodes[t.Target]
			if !ok || c.nodes[t.Source] != nil {
				continue
			}
			c.used[i] = true
			parent.Branches = append(parent.Branches, treeBranch{
				Role: model.Invert(t.Role),
				Node: c.buildNode(t.Source),
			})
			progress = true
		}
	}
	for i, t := range g.triples {
		if !c.used[i] {
			return nil, &EncodeError{Var: t.Source, Err: errDisconnected}
		}
	}
	return root, nil
}

type configurator struct {
	graph *Graph
	vars  map[string]struct{}
	used  []bool
	nodes map[string]*treeNode
}

// buildNode expands v into a node, consuming every unused triple whose
// source is v, in notation order.
func (c *configurator) buildNode(v string) *treeNode {
	node := &treeNode{Var: v}
	c.nodes[v] = node
	for i, t := range c.graph.triples {
		if c.used[i] || t.Source != v {
			continue
		}
		c.used[i] = true
		if t.Role == InstanceRole {
			node.Concept = t.Target
			continue
		}
		node.Branches = append(node.Branches, c.buildBranch(t.Role, t.Target))
	}
	return node
}

func (c *configurator) buildBranch(role, target string) treeBranch {
	if _, isVar := c.vars[target]; isVar {
		if c.nodes[target] == nil {
			return treeBranch{Role: role, Node: c.buildNode(target)}
		}
		return treeBranch{Role: role, Atom: target, VarRef: true}
	}
	return treeBranch{Role: role, Atom: target}
}
