package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	g, err := Path(5)
	require.NoError(t, err)
	assert.Equal(t, 5, g.N())
	assert.Equal(t, 4, g.M())
	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 2, g.Degree(2))

	_, err = Path(0)
	assert.ErrorIs(t, err, ErrTooFewVertices)
}

func TestCycle(t *testing.T) {
	g, err := Cycle(6)
	require.NoError(t, err)
	assert.Equal(t, 6, g.N())
	assert.Equal(t, 6, g.M())
	for _, v := range g.Vertices() {
		assert.Equal(t, 2, g.Degree(v))
	}

	_, err = Cycle(2)
	assert.ErrorIs(t, err, ErrTooFewVertices)
}

func TestComplete(t *testing.T) {
	g, err := Complete(5)
	require.NoError(t, err)
	assert.Equal(t, 5, g.N())
	assert.Equal(t, 10, g.M())
	for _, v := range g.Vertices() {
		assert.Equal(t, 4, g.Degree(v))
	}
}

func TestGrid(t *testing.T) {
	g, err := Grid(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 9, g.N())
	assert.Equal(t, 12, g.M())
	assert.Equal(t, 2, g.Degree(0))  // corner (0,0)
	assert.Equal(t, 4, g.Degree(4))  // center (1,1)
	assert.True(t, g.HasEdge(0, 1))  // (0,0)-(0,1)
	assert.True(t, g.HasEdge(0, 3))  // (0,0)-(1,0)

	_, err = Grid(0, 3)
	assert.ErrorIs(t, err, ErrTooFewVertices)
}

func TestRandomSparseIsDeterministicForFixedSeed(t *testing.T) {
	g1, err := RandomSparse(20, 0.3, WithSeed(42))
	require.NoError(t, err)
	g2, err := RandomSparse(20, 0.3, WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, g1.M(), g2.M())
	for i := 0; i < 20; i++ {
		for j := i + 1; j < 20; j++ {
			assert.Equal(t, g1.HasEdge(i, j), g2.HasEdge(i, j))
		}
	}
}

func TestRandomSparseDegenerateProbabilities(t *testing.T) {
	empty, err := RandomSparse(5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.M())

	full, err := RandomSparse(5, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, full.M())
}

func TestRandomSparseRejectsMissingRNG(t *testing.T) {
	_, err := RandomSparse(5, 0.5)
	assert.ErrorIs(t, err, ErrNeedRandSource)
}

func TestRandomSparseRejectsInvalidProbability(t *testing.T) {
	_, err := RandomSparse(5, 1.5)
	assert.ErrorIs(t, err, ErrInvalidProbability)
}

func TestRandomRegularProducesExactDegreeSequence(t *testing.T) {
	g, err := RandomRegular(10, 3, WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, 10, g.N())
	for _, v := range g.Vertices() {
		assert.Equal(t, 3, g.Degree(v))
	}
}

func TestRandomRegularRejectsOddParity(t *testing.T) {
	_, err := RandomRegular(5, 3, WithSeed(1))
	assert.ErrorIs(t, err, ErrInvalidDegree)
}

func TestRandomRegularRejectsMissingRNG(t *testing.T) {
	_, err := RandomRegular(10, 3)
	assert.ErrorIs(t, err, ErrNeedRandSource)
}
