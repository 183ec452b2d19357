// Package ogdl implements a parser for OGDL (Ordered Graph Data Language),
// a plain-text format that expresses hierarchical data through indentation,
// inline token chains, comma-separated sibling lists, and parenthesized
// groups.
//
// The parser is a combinator grammar with three layers:
//
//   - Character classes: named rune sets derived by subtraction from the
//     Unicode control, whitespace, and line-break categories.
//   - Lexical rules: bare words, quoted tokens, comments, line breaks, and
//     whitespace runs.
//   - Structural rules: descendent chains, adjacent sibling lists, groups,
//     and the indentation-driven line rules that resolve block nesting. The
//     indentation width of each block is detected from its first line rather
//     than fixed globally.
//
// Usage:
//
//	nodes, err := ogdl.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, n := range nodes {
//	    fmt.Print(n.Text(2))
//	}
//
// Failure is total and silent: Parse either returns the complete node
// sequence for the whole input or ErrParse with no partial tree. Quoted
// values are copied verbatim; escape sequences and multi-line block literals
// are deliberately not part of the grammar.
package ogdl
