package ogdl

import "strings"

// Node is a single element of a parsed OGDL graph: a token value and an
// ordered list of children. A Node is built once and never modified after a
// grammar rule returns it; enclosing rules only wrap it inside a new parent.
type Node struct {
	Value    string `json:"value"`
	Children []Node `json:"children,omitempty"`
}

// Text renders the node and its children as indented lines, one value per
// line, indent spaces per depth. It is a presentation of the parse result,
// not a round-trip serializer: values are printed bare, without quoting.
func (n Node) Text(indent int) string {
	var sb strings.Builder
	n.write(&sb, 0, indent)
	return sb.String()
}

// String renders with the default two-space indent.
func (n Node) String() string { return n.Text(2) }

func (n Node) write(sb *strings.Builder, depth, indent int) {
	sb.WriteString(strings.Repeat(" ", depth*indent))
	sb.WriteString(n.Value)
	sb.WriteByte('\n')
	for _, c := range n.Children {
		c.write(sb, depth+1, indent)
	}
}
