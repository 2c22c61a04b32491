package nodelink

import (
	"fmt"

	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// Node is one recorded configuration.
type Node struct {
	ID     string
	Label  string
	Depth  int
	Parent string // empty for the root
	Move   string // 1-based "from to"; empty for the root
	OnPath bool
}

// Tree is the explored part of a search, in visit order.
type Tree struct {
	Nodes []Node
	index map[string]int // configuration key -> position in Nodes
}

// Len returns the number of recorded nodes.
func (t *Tree) Len() int { return len(t.Nodes) }

// Depth returns the largest recorded depth, or -1 for an empty tree.
func (t *Tree) Depth() int {
	d := -1
	for _, n := range t.Nodes {
		d = max(d, n.Depth)
	}
	return d
}

// Recorder builds a [Tree] from search callbacks.
// Its Visit method has the shape of [hanoi.Options.OnVisit].
type Recorder struct {
	tree Tree
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{tree: Tree{index: make(map[string]int)}}
}

// Visit records c at the given depth. Repeated visits of an equal
// configuration are ignored.
func (r *Recorder) Visit(c *hanoi.Configuration, depth int) {
	if _, ok := r.tree.index[c.Key()]; ok {
		return
	}
	n := Node{
		ID:    nodeID(c),
		Label: c.String(),
		Depth: depth,
	}
	if p := c.Parent(); p != nil {
		n.Parent = nodeID(p)
		m, _ := c.Move()
		n.Move = m.String()
	}
	r.tree.index[c.Key()] = len(r.tree.Nodes)
	r.tree.Nodes = append(r.tree.Nodes, n)
}

// MarkPath flags every recorded node on the parent chain ending at c.
// A nil c marks nothing.
func (r *Recorder) MarkPath(c *hanoi.Configuration) {
	for ; c != nil; c = c.Parent() {
		if i, ok := r.tree.index[c.Key()]; ok {
			r.tree.Nodes[i].OnPath = true
		}
	}
}

// Tree returns the recorded tree. The recorder must not be used afterwards.
func (r *Recorder) Tree() *Tree { return &r.tree }

func nodeID(c *hanoi.Configuration) string {
	return fmt.Sprintf("c%016x", c.Hash())
}
