package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arboris-go/treewidth/decomp"
	"github.com/arboris-go/treewidth/graph"
)

func TestParseTriangle(t *testing.T) {
	input := "c a comment line\np tw 3 3\n1 2\n2 3\n1 3\n"
	g, err := Parse([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, 3, g.N())
	assert.Equal(t, 3, g.M())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(0, 2))
}

func TestParseIsolatedVertices(t *testing.T) {
	g, err := Parse([]byte("p tw 4 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, g.N())
	assert.Equal(t, 0, g.M())
}

func TestParseMissingHeader(t *testing.T) {
	_, err := Parse([]byte("1 2\n2 3\n"))
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestParseMalformedHeader(t *testing.T) {
	_, err := Parse([]byte("p tw 3\n"))
	assert.ErrorIs(t, err, ErrMalformedHeader)
}

func TestParseVertexOutOfRange(t *testing.T) {
	_, err := Parse([]byte("p tw 2 1\n1 3\n"))
	assert.ErrorIs(t, err, ErrVertexOutOfRange)
}

func TestParseEdgeCountMismatch(t *testing.T) {
	_, err := Parse([]byte("p tw 3 2\n1 2\n"))
	assert.ErrorIs(t, err, ErrEdgeCountMismatch)
}

func TestParseSelfLoopRejected(t *testing.T) {
	_, err := Parse([]byte("p tw 2 1\n1 1\n"))
	assert.ErrorIs(t, err, graph.ErrSelfLoop)
}

func TestWriteSingleBagTriangle(t *testing.T) {
	g := graph.New()
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	_ = g.AddEdge(a, b)
	_ = g.AddEdge(b, c)
	_ = g.AddEdge(a, c)

	tree := decomp.New()
	tree.AddBag([]int{a, b, c})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tree))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "s td 1 3 3", lines[0])
	assert.Equal(t, "b 1 1 2 3", lines[1])
}

func TestWriteEmitsEachTreeEdgeOnce(t *testing.T) {
	tree := decomp.New()
	b1 := tree.AddBag([]int{0, 1})
	b2 := tree.AddBag([]int{1, 2})
	require.NoError(t, tree.AddEdge(b1, b2))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tree))

	body := buf.String()
	assert.Equal(t, 1, strings.Count(body, "\n1 2\n"))
}
