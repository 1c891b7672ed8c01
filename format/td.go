package format

import (
	"fmt"
	"io"

	"github.com/arboris-go/treewidth/decomp"
)

// Write emits t in the PACE treewidth-track ".td" format: a header line
// "s td <bags> <width+1> <n>", one "b <id> v1 v2 ..." line per bag (1
// indexed ids and vertices, vertices sorted ascending), and one "<i> <j>"
// line per tree edge, each printed exactly once.
//
// n, the vertex count the header reports, is taken to be one past the
// highest vertex id appearing in any bag — valid whenever t actually
// covers its source graph (Verify's vertex-coverage invariant), since
// graph vertex ids are always dense and start at 0.
func Write(w io.Writer, t *decomp.Tree) error {
	ids := t.BagIDs()
	outID := make(map[int]int, len(ids))
	n := 0
	for i, id := range ids {
		outID[id] = i + 1
		b, _ := t.Bag(id)
		for _, v := range b.Vertices {
			if v+1 > n {
				n = v + 1
			}
		}
	}

	if _, err := fmt.Fprintf(w, "s td %d %d %d\n", len(ids), t.Width()+1, n); err != nil {
		return err
	}
	for _, id := range ids {
		b, _ := t.Bag(id)
		if _, err := fmt.Fprintf(w, "b %d", outID[id]); err != nil {
			return err
		}
		for _, v := range b.Vertices {
			if _, err := fmt.Fprintf(w, " %d", v+1); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	for _, id := range ids {
		for _, nb := range t.Neighbors(id) {
			if nb <= id {
				continue
			}
			if _, err := fmt.Fprintf(w, "%d %d\n", outID[id], outID[nb]); err != nil {
				return err
			}
		}
	}
	return nil
}
