package penman

import "strings"

// formatGraph lays out a configured tree according to the options.
func formatGraph(root *treeNode, opts Options) string {
	var sb strings.Builder
	if opts.Indent == IndentNone {
		formatFlat(&sb, root)
	} else {
		formatNode(&sb, root, 0, opts)
	}
	return sb.String()
}

// formatFlat writes a node and its subtree on a single line.
func formatFlat(sb *strings.Builder, n *treeNode) {
	sb.WriteByte('(')
	sb.WriteString(n.Var)
	if n.Concept != "" {
		sb.WriteString(" / ")
		sb.WriteString(n.Concept)
	}
	for _, b := range n.Branches {
		sb.WriteByte(' ')
		sb.WriteString(b.Role)
		sb.WriteByte(' ')
		if b.Node != nil {
			formatFlat(sb, b.Node)
		} else {
			sb.WriteString(b.Atom)
		}
	}
	sb.WriteByte(')')
}

// formatNode writes a node starting at the given column. With IndentAuto
// branches align under the column after the variable; a fixed indent
// offsets branches from the node's own column.
func formatNode(sb *strings.Builder, n *treeNode, column int, opts Options) {
	sb.WriteByte('(')
	sb.WriteString(n.Var)
	if n.Concept != "" {
		sb.WriteString(" / ")
		sb.WriteString(n.Concept)
	}

	branchColumn := column + len(n.Var) + 2
	if opts.Indent >= 0 {
		branchColumn = column + opts.Indent
	}

	branches := n.Branches
	if opts.Compact {
		// Leading attributes share the first line.
		for len(branches) > 0 {
			b := branches[0]
			if b.Node != nil || b.VarRef {
				break
			}
			sb.WriteByte(' ')
			sb.WriteString(b.Role)
			sb.WriteByte(' ')
			sb.WriteString(b.Atom)
			branches = branches[1:]
		}
	}

	indent := strings.Repeat(" ", branchColumn)
	for _, b := range branches {
		sb.WriteByte('\n')
		sb.WriteString(indent)
		sb.WriteString(b.Role)
		sb.WriteByte(' ')
		if b.Node != nil {
			formatNode(sb, b.Node, branchColumn+len(b.Role)+1, opts)
		} else {
			sb.WriteString(b.Atom)
		}
	}
	sb.WriteByte(')')
}
