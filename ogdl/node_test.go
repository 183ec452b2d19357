package ogdl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeText(t *testing.T) {
	n := Node{Value: "a", Children: []Node{
		{Value: "b", Children: []Node{{Value: "c"}}},
		{Value: "d"},
	}}

	assert.Equal(t, "a\n  b\n    c\n  d\n", n.Text(2))
	assert.Equal(t, "a\nb\nc\nd\n", n.Text(0))
	assert.Equal(t, n.Text(2), n.String())
}

func TestNodeJSON(t *testing.T) {
	n := Node{Value: "a", Children: []Node{{Value: "b"}}}

	out, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":"a","children":[{"value":"b"}]}`, string(out))

	// Leaves omit the empty children list.
	out, err = json.Marshal(Node{Value: "leaf"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":"leaf"}`, string(out))
}
