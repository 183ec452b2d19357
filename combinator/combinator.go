// Package combinator provides the small parsing toolkit the ogdl grammar is
// built from: primitive matchers plus the operators that compose them into
// larger rules.
//
// A Parser is a pure function from input text to a result and the remaining
// text. Failure is silent: a parser either succeeds or reports "no match",
// never an error value or a position. Choice is left-biased and committed:
// once an alternative succeeds the others are not reconsidered, and a failed
// sequence does not backtrack past its choice point.
package combinator

import "unicode/utf8"

// Parser consumes a prefix of its input. On success it returns the parsed
// value, the unconsumed remainder, and true. On failure the value and
// remainder are meaningless and ok is false.
type Parser[T any] func(input string) (value T, rest string, ok bool)

// Unit is the result type of parsers that consume input but produce nothing,
// such as discarded punctuation and whitespace.
type Unit struct{}

// Rune matches a single rune for which class returns true.
func Rune(class func(rune) bool) Parser[string] {
	return func(in string) (string, string, bool) {
		r, size := utf8.DecodeRuneInString(in)
		if size == 0 || (r == utf8.RuneError && size == 1) || !class(r) {
			return "", "", false
		}
		return in[:size], in[size:], true
	}
}

// Char matches exactly the rune c.
func Char(c rune) Parser[string] {
	return Rune(func(r rune) bool { return r == c })
}

// Seq runs first, then second on the remainder, and combines both results.
// It fails if either parser fails.
func Seq[A, B, C any](first Parser[A], second Parser[B], combine func(A, B) C) Parser[C] {
	return func(in string) (C, string, bool) {
		var zero C
		a, rest, ok := first(in)
		if !ok {
			return zero, "", false
		}
		b, rest, ok := second(rest)
		if !ok {
			return zero, "", false
		}
		return combine(a, b), rest, true
	}
}

// Text runs two string parsers in sequence and concatenates their results.
func Text(first, second Parser[string]) Parser[string] {
	return Seq(first, second, func(a, b string) string { return a + b })
}

// Next runs both parsers in sequence and keeps only the second result.
func Next[A, B any](first Parser[A], second Parser[B]) Parser[B] {
	return Seq(first, second, func(_ A, b B) B { return b })
}

// Before runs both parsers in sequence and keeps only the first result.
func Before[A, B any](first Parser[A], second Parser[B]) Parser[A] {
	return Seq(first, second, func(a A, _ B) A { return a })
}

// Or tries each alternative in order on the same input and commits to the
// first one that succeeds.
func Or[T any](alternatives ...Parser[T]) Parser[T] {
	return func(in string) (T, string, bool) {
		for _, alt := range alternatives {
			if v, rest, ok := alt(in); ok {
				return v, rest, true
			}
		}
		var zero T
		return zero, "", false
	}
}

// Repeat applies p greedily between min and max times. A negative max means
// unbounded. It fails only when fewer than min repetitions match; a match
// that consumes no input ends the loop.
func Repeat[T any](p Parser[T], min, max int) Parser[[]T] {
	return func(in string) ([]T, string, bool) {
		var out []T
		rest := in
		for max < 0 || len(out) < max {
			v, r, ok := p(rest)
			if !ok {
				break
			}
			out = append(out, v)
			if r == rest {
				break
			}
			rest = r
		}
		if len(out) < min {
			return nil, "", false
		}
		return out, rest, true
	}
}

// Many applies p zero or more times. It always succeeds.
func Many[T any](p Parser[T]) Parser[[]T] {
	return Repeat(p, 0, -1)
}

// Many1 applies p one or more times.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return Repeat(p, 1, -1)
}

// Opt applies p zero or one time, returning an empty or single-element slice.
// It always succeeds.
func Opt[T any](p Parser[T]) Parser[[]T] {
	return Repeat(p, 0, 1)
}

// Discard runs p and drops its result, keeping only the consumed input.
func Discard[T any](p Parser[T]) Parser[Unit] {
	return Map(p, func(T) Unit { return Unit{} })
}

// And runs each step in order, discarding every result. It fails as soon as
// any step fails.
func And(steps ...Parser[Unit]) Parser[Unit] {
	return func(in string) (Unit, string, bool) {
		rest := in
		for _, step := range steps {
			var ok bool
			if _, rest, ok = step(rest); !ok {
				return Unit{}, "", false
			}
		}
		return Unit{}, rest, true
	}
}

// Map transforms the result of a successful parse. Failure passes through.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in string) (B, string, bool) {
		a, rest, ok := p(in)
		if !ok {
			var zero B
			return zero, "", false
		}
		return f(a), rest, true
	}
}

// Bind runs p, then the parser produced from its result. It is the dependent
// form of Seq, used where a later rule is parameterized by an earlier result.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(in string) (B, string, bool) {
		a, rest, ok := p(in)
		if !ok {
			var zero B
			return zero, "", false
		}
		return f(a)(rest)
	}
}

// SepBy1 parses one or more items separated by sep, keeping only the items.
func SepBy1[T, S any](item Parser[T], sep Parser[S]) Parser[[]T] {
	return Seq(item, Many(Next(sep, item)), func(first T, rest []T) []T {
		return append([]T{first}, rest...)
	})
}

// Lazy defers construction of a parser until it is first used, so that
// mutually recursive rules can reference each other before they are defined.
// The built parser is cached; parsing is single-threaded, so the cache is
// unsynchronized.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	var p Parser[T]
	return func(in string) (T, string, bool) {
		if p == nil {
			p = build()
		}
		return p(in)
	}
}

// Fix ties the knot for a recursive rule parameterized by an integer: define
// receives the recursive rule itself and returns its body. The recursion is
// resolved at parse time, so construction terminates even though the rule
// refers to itself.
func Fix[T any](define func(rec func(int) Parser[T]) func(int) Parser[T]) func(int) Parser[T] {
	var rec func(int) Parser[T]
	rec = func(n int) Parser[T] {
		return func(in string) (T, string, bool) {
			return define(rec)(n)(in)
		}
	}
	return rec
}
