package ogdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWord(t *testing.T) {
	tests := []struct {
		input string
		value string
		rest  string
	}{
		{"abc", "abc", ""},
		{"ab cd", "ab", " cd"},
		{"a,b", "a", ",b"},
		{"a(b", "a", "(b"},
		{"a)b", "a", ")b"},
		{"a#b", "a#b", ""}, // '#' is allowed after the first rune
		{"a'b", "a", "'b"}, // quotes are not, anywhere
		{`a"b`, "a", `"b`},
		{"über", "über", ""},
	}
	for _, tt := range tests {
		v, rest, ok := word(tt.input)
		require.True(t, ok, "input: %s", tt.input)
		assert.Equal(t, tt.value, v, "input: %s", tt.input)
		assert.Equal(t, tt.rest, rest, "input: %s", tt.input)
	}
}

func TestWordRejectsBadStart(t *testing.T) {
	for _, input := range []string{"", "#a", "'a", `"a`, " a", ",", "(", ")"} {
		_, _, ok := word(input)
		assert.False(t, ok, "input: %q", input)
	}
}

func TestQuoted(t *testing.T) {
	tests := []struct {
		input string
		value string
		rest  string
	}{
		{`'abc'`, "abc", ""},
		{`"abc"`, "abc", ""},
		{`''`, "", ""},
		{`'a b, (c)'`, "a b, (c)", ""},
		{`'say "hi"'`, `say "hi"`, ""},
		{`"don't"`, "don't", ""},
		{`'a\b'`, `a\b`, ""}, // no escape processing, backslash kept verbatim
		{`'a'b`, "a", "b"},
	}
	for _, tt := range tests {
		v, rest, ok := quoted(tt.input)
		require.True(t, ok, "input: %s", tt.input)
		assert.Equal(t, tt.value, v, "input: %s", tt.input)
		assert.Equal(t, tt.rest, rest, "input: %s", tt.input)
	}
}

func TestQuotedRejects(t *testing.T) {
	inputs := []string{
		`'abc`,     // unterminated
		`"abc'`,    // mismatched delimiters
		"'a\nb'",   // a line break ends the quotable content
		`abc`,      // not quoted at all
	}
	for _, input := range inputs {
		_, _, ok := quoted(input)
		assert.False(t, ok, "input: %q", input)
	}
}

func TestValuePrefersWord(t *testing.T) {
	v, rest, ok := value("hello'x'")
	require.True(t, ok)
	assert.Equal(t, "hello", v)
	assert.Equal(t, "'x'", rest)

	v, _, ok = value("'hello world'")
	require.True(t, ok)
	assert.Equal(t, "hello world", v)
}

func TestComment(t *testing.T) {
	_, rest, ok := comment("#note\nrest")
	require.True(t, ok)
	assert.Equal(t, "rest", rest)

	// At end of input the trailing break is not required.
	_, rest, ok = comment("#note")
	require.True(t, ok)
	assert.Equal(t, "", rest)

	_, _, ok = comment("not a comment")
	assert.False(t, ok)
}

func TestSpaceRuns(t *testing.T) {
	// Comments are interchangeable with whitespace; a comment swallows its
	// own line break.
	_, rest, ok := requiredSpace("  #c\nx")
	require.True(t, ok)
	assert.Equal(t, "x", rest)

	_, _, ok = requiredSpace("x")
	assert.False(t, ok)

	_, rest, ok = optionalSpace("x")
	require.True(t, ok)
	assert.Equal(t, "x", rest)

	// Line breaks are not horizontal whitespace.
	_, rest, ok = optionalSpace(" \na")
	require.True(t, ok)
	assert.Equal(t, "\na", rest)
}

func TestSeparator(t *testing.T) {
	_, rest, ok := separator(" , x")
	require.True(t, ok)
	assert.Equal(t, "x", rest)

	_, rest, ok = separator(",x")
	require.True(t, ok)
	assert.Equal(t, "x", rest)

	_, _, ok = separator("x")
	assert.False(t, ok)
}

func TestEOF(t *testing.T) {
	_, _, ok := eof("")
	assert.True(t, ok)

	_, _, ok = eof("x")
	assert.False(t, ok)
}
