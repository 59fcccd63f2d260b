package internal

import (
	"go.uber.org/zap"
)

// NodeID addresses a node inside a Tree arena.
type NodeID int

// Node is one section in the arena. Children holds the IDs of its
// subsections in insertion order.
type Node struct {
	Title    string
	Body     string
	Bullets  []string
	Children []NodeID
}

// Tree is an arena of section nodes with an ordered list of roots.
// Nodes are only ever appended under an existing parent (or as a root),
// so the structure is always a forest with single ownership.
// Tree is not safe for concurrent mutation.
type Tree struct {
	nodes  []Node
	roots  []NodeID
	logger *zap.Logger
}

// NewTree creates an empty tree.
func NewTree(logger *zap.Logger) *Tree {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgTreeCreated)
	return &Tree{logger: logger}
}

// Add appends a node under parent and returns its ID.
// Use NoParent to append a root. Returns false if parent is unknown.
func (t *Tree) Add(parent NodeID, title, body string) (NodeID, bool) {
	if parent != NoParent && !t.Has(parent) {
		return 0, false
	}

	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{Title: title, Body: body})

	if parent == NoParent {
		t.roots = append(t.roots, id)
	} else {
		p := &t.nodes[parent]
		p.Children = append(p.Children, id)
	}

	t.logger.Debug(LogMsgNodeAdded,
		zap.Int(LogFieldNodeID, int(id)),
		zap.Int(LogFieldParentID, int(parent)))
	return id, true
}

// Has reports whether id addresses a node of this tree.
func (t *Tree) Has(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Node returns the node for id. The pointer is only valid until the next Add.
func (t *Tree) Node(id NodeID) *Node {
	if !t.Has(id) {
		return nil
	}
	return &t.nodes[id]
}

// Roots returns the root IDs in insertion order.
// The returned slice must not be modified.
func (t *Tree) Roots() []NodeID {
	return t.roots
}

// Len returns the total number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// CopySubtree deep-copies the node src of tree from (and its descendants)
// under parent in t. from may be t itself as long as src is not an
// ancestor of parent; callers guarantee that.
func (t *Tree) CopySubtree(from *Tree, src NodeID, parent NodeID) (NodeID, bool) {
	n := from.Node(src)
	if n == nil {
		return 0, false
	}
	// Snapshot before Add, which may grow the arena the node lives in.
	title, body := n.Title, n.Body
	bullets := append([]string(nil), n.Bullets...)
	children := append([]NodeID(nil), n.Children...)

	id, ok := t.Add(parent, title, body)
	if !ok {
		return 0, false
	}
	t.nodes[id].Bullets = bullets
	for _, child := range children {
		if _, ok := t.CopySubtree(from, child, id); !ok {
			return 0, false
		}
	}
	return id, true
}
