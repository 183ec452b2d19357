package ogdl

import "github.com/ikesyo/ogdl/combinator"

// Parse parses OGDL source text and returns its root nodes in order. The
// entire input must parse: on failure the result is nil and ErrParse, with
// no partial tree and no position information.
func Parse(src string) ([]Node, error) {
	nodes, rest, ok := graph(src)
	if !ok || rest != "" {
		return nil, ErrParse
	}
	return nodes, nil
}

// chain folds a run of token values into a linear parent-to-child path,
// attaching tail as the children of the deepest element.
func chain(values []string, tail []Node) Node {
	n := Node{Value: values[len(values)-1], Children: tail}
	for i := len(values) - 2; i >= 0; i-- {
		n = Node{Value: values[i], Children: []Node{n}}
	}
	return n
}

// tokens parses one or more whitespace-separated values.
func tokens() combinator.Parser[[]string] {
	return combinator.SepBy1(value, requiredSpace)
}

// element parses a value optionally followed by inline children: a
// parenthesized group, or a single nested element.
func element() combinator.Parser[Node] {
	kids := combinator.Or(
		combinator.Lazy(group),
		combinator.Map(combinator.Lazy(element), func(n Node) []Node {
			return []Node{n}
		}),
	)
	return combinator.Seq(
		value,
		combinator.Opt(combinator.Next(optionalSpace, kids)),
		func(v string, opt [][]Node) Node {
			if len(opt) == 0 {
				return Node{Value: v}
			}
			return Node{Value: v, Children: opt[0]}
		},
	)
}

// descendents parses a whitespace-separated run of values folded into a
// single linear chain: "x y z" becomes x holding y holding z.
func descendents() combinator.Parser[Node] {
	return combinator.Map(tokens(), func(vals []string) Node {
		return chain(vals, nil)
	})
}

// descendentChain parses a chain optionally terminated by a group whose
// members become children of the last element of the chain.
func descendentChain() combinator.Parser[Node] {
	return combinator.Seq(
		tokens(),
		combinator.Opt(combinator.Next(optionalSpace, combinator.Lazy(group))),
		func(vals []string, opt [][]Node) Node {
			if len(opt) == 0 {
				return chain(vals, nil)
			}
			return chain(vals, opt[0])
		},
	)
}

// adjacent parses one or more comma-separated sibling chains.
func adjacent() combinator.Parser[[]Node] {
	return combinator.SepBy1(descendentChain(), separator)
}

// group parses a parenthesized adjacent list.
func group() combinator.Parser[[]Node] {
	inner := combinator.Next(optionalSpace, combinator.Before(adjacent(), optionalSpace))
	return combinator.Next(combinator.Char('('), combinator.Before(inner, combinator.Char(')')))
}

// indentation matches at least n leading whitespace runes, greedily, and
// returns the count actually matched. That count, not n, is the minimum
// depth required of the line's nested content, which is how indentation
// width is detected per block instead of being fixed globally.
func indentation(n int) combinator.Parser[int] {
	return combinator.Map(
		combinator.Repeat(combinator.Rune(isSpace), n, -1),
		func(matched []string) int { return len(matched) },
	)
}

type lineParser = func(int) combinator.Parser[[]Node]

// subgraph resolves how a line's content nests. The first alternative, a
// descendent chain with a deeper block of lines attached to its last
// element, is committed to whenever the chain matches at all, because lines
// always succeeds even when empty. adjacent is reached only when no chain
// can be read.
func subgraph(rec lineParser, n int) combinator.Parser[[]Node] {
	nested := combinator.Seq(
		tokens(),
		lines(rec, n+1),
		func(vals []string, sub []Node) []Node {
			return []Node{chain(vals, sub)}
		},
	)
	return combinator.Or(nested, adjacent())
}

// followingLine consumes the line breaks and comment-only lines before a
// sibling line, so blank and comment lines do not break sibling continuity.
func followingLine(rec lineParser, n int) combinator.Parser[[]Node] {
	skip := combinator.Discard(combinator.Many1(combinator.Or(comment, br)))
	return combinator.Next(skip, rec(n))
}

// lines parses zero or more sibling lines at depth n. It always succeeds.
func lines(rec lineParser, n int) combinator.Parser[[]Node] {
	return combinator.Seq(
		combinator.Opt(rec(n)),
		combinator.Many(followingLine(rec, n)),
		func(first, rest [][]Node) []Node {
			var out []Node
			for _, nodes := range first {
				out = append(out, nodes...)
			}
			for _, nodes := range rest {
				out = append(out, nodes...)
			}
			return out
		},
	)
}

// lineAt is the indentation-parameterized line rule: a line detects its own
// indentation depth and parses its content at that depth. The rule is tied
// to itself through a fixed point because nested lines are parsed by the
// same rule one level deeper.
var lineAt = combinator.Fix(func(rec func(int) combinator.Parser[[]Node]) func(int) combinator.Parser[[]Node] {
	return func(n int) combinator.Parser[[]Node] {
		return combinator.Bind(indentation(n), func(m int) combinator.Parser[[]Node] {
			return combinator.Before(subgraph(rec, m), optionalSpace)
		})
	}
})

// trim discards any run of comments and line breaks.
var trim = combinator.Discard(combinator.Many(combinator.Or(comment, br)))

// graph is the entry rule: leading trim, then indented lines or a bare
// adjacent list, then trailing trim.
var graph = combinator.Next(trim, combinator.Before(
	combinator.Or(lines(lineAt, 0), adjacent()),
	trim,
))
