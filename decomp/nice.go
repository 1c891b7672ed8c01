package decomp

import "sort"

// NiceKind identifies the role of a node in a nice tree decomposition.
type NiceKind int

const (
	NiceLeaf NiceKind = iota
	NiceIntroduce
	NiceForget
	NiceJoin
)

// NiceNode is one node of a nice tree decomposition: a bag plus the extra
// structure (kind, the single vertex moved by Introduce/Forget) that makes
// the tree usable directly by a dynamic-programming sweep.
type NiceNode struct {
	ID       int
	Kind     NiceKind
	Vertices []int // sorted
	Children []int
	Vertex   int // meaningful only for NiceIntroduce / NiceForget
}

// NiceTree is a rooted nice tree decomposition.
type NiceTree struct {
	nodes  map[int]*NiceNode
	root   int
	nextID int
}

// Node returns the node with the given id.
func (nt *NiceTree) Node(id int) (*NiceNode, bool) {
	n, ok := nt.nodes[id]
	return n, ok
}

// Root returns the root node's id.
func (nt *NiceTree) Root() int { return nt.root }

func (nt *NiceTree) newNode(kind NiceKind, vertices []int, children []int, vertex int) int {
	id := nt.nextID
	nt.nextID++
	v := append([]int(nil), vertices...)
	sort.Ints(v)
	nt.nodes[id] = &NiceNode{ID: id, Kind: kind, Vertices: v, Children: children, Vertex: vertex}
	return id
}

// ToNice converts t, rooted at rootBag, into a nice tree decomposition:
// every node is a Leaf (empty bag, no children), an Introduce (one child,
// bag = child's bag plus one vertex), a Forget (one child, bag = child's
// bag minus one vertex), or a Join (two children, identical bags). This is
// the normal form most tree-width dynamic programs are written against.
func ToNice(t *Tree, rootBag int) (*NiceTree, error) {
	if _, ok := t.Bag(rootBag); !ok {
		return nil, ErrBagNotFound
	}
	nt := &NiceTree{nodes: make(map[int]*NiceNode)}

	parent := map[int]int{rootBag: -1}
	order := []int{rootBag}
	children := make(map[int][]int)
	for i := 0; i < len(order); i++ {
		cur := order[i]
		for _, nb := range t.Neighbors(cur) {
			if _, seen := parent[nb]; seen {
				continue
			}
			parent[nb] = cur
			children[cur] = append(children[cur], nb)
			order = append(order, nb)
		}
	}

	var build func(id int) int
	build = func(id int) int {
		b, _ := t.Bag(id)
		kids := children[id]
		if len(kids) == 0 {
			return nt.introduceUpTo(nt.leaf(), b.Vertices)
		}

		adapted := make([]int, 0, len(kids))
		for _, kid := range kids {
			kb, _ := t.Bag(kid)
			sub := build(kid)
			target := union(b.Vertices, kb.Vertices)
			sub = nt.introduceUpTo(sub, target)
			sub = nt.forgetDownTo(sub, b.Vertices)
			adapted = append(adapted, sub)
		}

		result := adapted[0]
		for _, next := range adapted[1:] {
			result = nt.newNode(NiceJoin, b.Vertices, []int{result, next}, -1)
		}
		return result
	}

	nt.root = build(rootBag)
	return nt, nil
}

func (nt *NiceTree) leaf() int {
	return nt.newNode(NiceLeaf, nil, nil, -1)
}

// introduceUpTo chains Introduce nodes onto cur until its bag equals target,
// adding the missing vertices one at a time in ascending order.
func (nt *NiceTree) introduceUpTo(cur int, target []int) int {
	curBag := nt.nodes[cur].Vertices
	for _, v := range target {
		if !contains(curBag, v) {
			next := insertSorted(curBag, v)
			cur = nt.newNode(NiceIntroduce, next, []int{cur}, v)
			curBag = next
		}
	}
	return cur
}

// forgetDownTo chains Forget nodes onto cur until its bag equals target,
// removing the extra vertices one at a time.
func (nt *NiceTree) forgetDownTo(cur int, target []int) int {
	curBag := nt.nodes[cur].Vertices
	for _, v := range curBag {
		if !contains(target, v) {
			next := removeSorted(nt.nodes[cur].Vertices, v)
			cur = nt.newNode(NiceForget, next, []int{cur}, v)
		}
	}
	return cur
}

func union(a, b []int) []int {
	out := append(append([]int(nil), a...), b...)
	sort.Ints(out)
	return dedup(out)
}

func insertSorted(sorted []int, v int) []int {
	out := make([]int, 0, len(sorted)+1)
	inserted := false
	for _, u := range sorted {
		if !inserted && u > v {
			out = append(out, v)
			inserted = true
		}
		out = append(out, u)
	}
	if !inserted {
		out = append(out, v)
	}
	return out
}

func removeSorted(sorted []int, v int) []int {
	out := make([]int, 0, len(sorted))
	for _, u := range sorted {
		if u != v {
			out = append(out, u)
		}
	}
	return out
}
