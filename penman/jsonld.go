package penman

import (
	"encoding/json"
	"strconv"
	"strings"

	ld "github.com/piprate/json-gold/ld"
)

// Vocabulary used for roles and concepts in JSON-LD output.
const jsonldVocab = "https://amr.isi.edu/rdf/amr-terms#"

// MarshalJSONLD projects g into a compacted JSON-LD document: instances
// become @type, edges become node references, and attributes become
// literal values. Roles drop their leading colon and resolve against the
// AMR vocabulary.
func MarshalJSONLD(g *Graph, opts ...Option) ([]byte, error) {
	options := buildOptions(opts)
	root, err := configure(g, options.Top, options.Model)
	if err != nil {
		return nil, err
	}

	doc := map[string]interface{}{
		"@context": jsonldContext(),
		"@graph":   []interface{}{jsonldNode(root)},
	}

	proc := ld.NewJsonLdProcessor()
	compacted, err := proc.Compact(doc, jsonldContext(), ld.NewJsonLdOptions(""))
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(compacted, "", "  ")
}

func jsonldContext() map[string]interface{} {
	return map[string]interface{}{
		"@vocab": jsonldVocab,
	}
}

// jsonldNode converts a configured tree node, so reentrancies appear as
// bare references exactly once per variable.
func jsonldNode(n *treeNode) map[string]interface{} {
	node := map[string]interface{}{
		"@id": "_:" + n.Var,
	}
	if n.Concept != "" {
		concept := n.Concept
		if s, ok := jsonldValue(concept).(string); ok {
			concept = s
		}
		node["@type"] = jsonldVocab + concept
	}
	for _, b := range n.Branches {
		key := strings.TrimPrefix(b.Role, ":")
		var value interface{}
		switch {
		case b.Node != nil:
			value = jsonldNode(b.Node)
		case b.VarRef:
			value = map[string]interface{}{"@id": "_:" + b.Atom}
		default:
			value = jsonldValue(b.Atom)
		}
		appendJSONLDValue(node, key, value)
	}
	return node
}

// jsonldValue maps a notation constant to a JSON value: quoted strings
// lose their quotes, numbers become JSON numbers, everything else stays
// a string.
func jsonldValue(atom string) interface{} {
	if strings.HasPrefix(atom, `"`) && strings.HasSuffix(atom, `"`) && len(atom) >= 2 {
		if unquoted, err := strconv.Unquote(atom); err == nil {
			return unquoted
		}
		return atom[1 : len(atom)-1]
	}
	if i, err := strconv.ParseInt(atom, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(atom, 64); err == nil {
		return f
	}
	return atom
}

// appendJSONLDValue collects repeated roles into arrays.
func appendJSONLDValue(node map[string]interface{}, key string, value interface{}) {
	existing, ok := node[key]
	if !ok {
		node[key] = value
		return
	}
	if list, ok := existing.([]interface{}); ok {
		node[key] = append(list, value)
		return
	}
	node[key] = []interface{}{existing, value}
}
