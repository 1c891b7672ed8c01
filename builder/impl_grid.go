package builder

import (
	"fmt"

	"github.com/arboris-go/treewidth/graph"
)

const minGridDim = 1

// Grid builds a rows x cols 4-neighborhood orthogonal grid: cell (r,c)
// gets vertex id r*cols+c, row-major, and is joined to its right (r,c+1)
// and bottom (r+1,c) neighbors where they exist. rows and cols must each
// be at least 1.
func Grid(rows, cols int) (*graph.Graph, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be >= %d): %w",
			rows, cols, minGridDim, ErrTooFewVertices)
	}
	g := graph.NewWithCapacity(rows * cols)
	for i := 0; i < rows*cols; i++ {
		g.AddVertex()
	}

	id := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if err := g.AddEdge(id(r, c), id(r, c+1)); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := g.AddEdge(id(r, c), id(r+1, c)); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}
