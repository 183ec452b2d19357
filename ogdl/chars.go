package ogdl

import "unicode"

// Character classes are carved out of the Unicode base categories by
// subtraction. Note that text excludes every control character, which takes
// tabs out of word and quoted content; tabs still count as whitespace for
// indentation.

// isBreak reports whether r ends a line.
func isBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

// isSpace reports whether r is horizontal whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) && !isBreak(r)
}

// isText reports whether r may appear in comments and quoted values:
// anything that is not a control character or a line break.
func isText(r rune) bool {
	return !unicode.IsControl(r) && !isBreak(r)
}

// isWord reports whether r may appear in a bare token: text minus
// whitespace and the structural punctuation , ( ).
func isWord(r rune) bool {
	return isText(r) && !isSpace(r) && r != ',' && r != '(' && r != ')'
}

// isWordPart reports whether r may appear after the first rune of a bare
// token. Quotes are excluded; a comment marker is allowed mid-word.
func isWordPart(r rune) bool {
	return isWord(r) && r != '\'' && r != '"'
}

// isWordStart reports whether r may begin a bare token. A word may not start
// with a comment marker or either quote character.
func isWordStart(r rune) bool {
	return isWordPart(r) && r != '#'
}
