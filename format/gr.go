package format

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/arboris-go/treewidth/graph"
)

// Parse reads a PACE treewidth-track ".gr" file: comment lines starting
// with "c", a single problem line "p tw n m" declaring the vertex and
// edge counts, followed by m edge lines "u v" with vertices numbered
// 1..n. The returned graph has exactly n vertices, ids 0..n-1, with
// input vertex i mapped to graph id i-1.
func Parse(data []byte) (*graph.Graph, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var n, wantEdges int
	var g *graph.Graph
	seenHeader := false
	edgesSeen := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}
		if !seenHeader {
			fields := strings.Fields(line)
			if fields[0] != "p" {
				return nil, ErrNoHeader
			}
			if len(fields) != 4 || fields[1] != "tw" {
				return nil, ErrMalformedHeader
			}
			var err error
			if n, err = strconv.Atoi(fields[2]); err != nil {
				return nil, ErrMalformedHeader
			}
			if wantEdges, err = strconv.Atoi(fields[3]); err != nil {
				return nil, ErrMalformedHeader
			}
			if n < 0 || wantEdges < 0 {
				return nil, ErrMalformedHeader
			}
			g = graph.NewWithCapacity(n)
			for i := 0; i < n; i++ {
				g.AddVertex()
			}
			seenHeader = true
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, ErrMalformedEdge
		}
		u, err1 := strconv.Atoi(fields[0])
		v, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return nil, ErrMalformedEdge
		}
		if u < 1 || u > n || v < 1 || v > n {
			return nil, fmt.Errorf("%w: %d,%d not within 1..%d", ErrVertexOutOfRange, u, v, n)
		}
		if err := g.AddEdge(u-1, v-1); err != nil {
			return nil, err
		}
		edgesSeen++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !seenHeader {
		return nil, ErrNoHeader
	}
	if edgesSeen != wantEdges {
		return nil, fmt.Errorf("%w: header declared %d, found %d", ErrEdgeCountMismatch, wantEdges, edgesSeen)
	}
	return g, nil
}
