package ogdl

import (
	"strings"

	"github.com/ikesyo/ogdl/combinator"
)

// joined concatenates a run of single-rune matches into one string.
func joined(p combinator.Parser[[]string]) combinator.Parser[string] {
	return combinator.Map(p, func(parts []string) string {
		return strings.Join(parts, "")
	})
}

// word parses a bare token: a word-start rune followed by any number of word
// runes.
var word = combinator.Text(
	combinator.Rune(isWordStart),
	joined(combinator.Many(combinator.Rune(isWordPart))),
)

// quotedBy parses a token delimited by the given quote rune. The delimiters
// are consumed and dropped; the content is kept verbatim. There are no escape
// sequences, so a quoted token cannot contain its own delimiter.
func quotedBy(delim rune) combinator.Parser[string] {
	open := combinator.Char(delim)
	body := joined(combinator.Many(combinator.Rune(func(r rune) bool {
		return isText(r) && r != delim
	})))
	return combinator.Next(open, combinator.Before(body, combinator.Char(delim)))
}

var quoted = combinator.Or(quotedBy('\''), quotedBy('"'))

// value parses a single token, trying the bare form before the quoted forms.
var value = combinator.Or(word, quoted)

// eof succeeds, consuming nothing, only when no input remains.
var eof combinator.Parser[combinator.Unit] = func(in string) (combinator.Unit, string, bool) {
	if in != "" {
		return combinator.Unit{}, "", false
	}
	return combinator.Unit{}, "", true
}

// br consumes a single line break.
var br = combinator.Discard(combinator.Rune(isBreak))

// comment consumes '#' through the end of the line or of the input.
var comment = combinator.And(
	combinator.Discard(combinator.Char('#')),
	combinator.Discard(combinator.Many(combinator.Rune(isText))),
	combinator.Or(br, eof),
)

// blank is one comment or one whitespace rune: comments stand in for
// whitespace everywhere whitespace is allowed.
var blank = combinator.Or(comment, combinator.Discard(combinator.Rune(isSpace)))

var (
	requiredSpace = combinator.Discard(combinator.Many1(blank))
	optionalSpace = combinator.Discard(combinator.Many(blank))
)

// separator delimits adjacent siblings.
var separator = combinator.And(
	optionalSpace,
	combinator.Discard(combinator.Char(',')),
	optionalSpace,
)
