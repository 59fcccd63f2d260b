package internal

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Visit describes one node reached during a Walk.
// Path is the 1-based sibling index at every level, root first.
// It is reused between calls; copy it if it must outlive the callback.
type Visit struct {
	ID    NodeID
	Node  *Node
	Path  []int
	Depth int
}

// Number returns the dotted numbering path, e.g. "2.1".
func (v Visit) Number() string {
	return FormatNumber(v.Path)
}

// FormatNumber joins a numbering path with dots.
func FormatNumber(path []int) string {
	var sb strings.Builder
	for i, n := range path {
		if i > 0 {
			sb.WriteString(NumberSeparator)
		}
		sb.WriteString(strconv.Itoa(n))
	}
	return sb.String()
}

// Visitor receives pre-order Enter and post-order Leave events.
// Returning an error from either stops the walk.
type Visitor interface {
	Enter(v Visit) error
	Leave(v Visit) error
}

// Walk traverses the tree depth-first in stored order. Numbering paths are
// derived from sibling position on every call and never cached.
func Walk(t *Tree, visitor Visitor) error {
	t.logger.Debug(LogMsgWalkStart, zap.Int(LogFieldRoots, len(t.roots)))
	w := walker{tree: t, visitor: visitor, path: make([]int, 0, 8)}
	err := w.siblings(t.roots)
	t.logger.Debug(LogMsgWalkEnd,
		zap.Int(LogFieldVisited, w.visited),
		zap.Int(LogFieldNodes, t.Len()))
	return err
}

type walker struct {
	tree    *Tree
	visitor Visitor
	path    []int
	visited int
}

func (w *walker) siblings(ids []NodeID) error {
	for i, id := range ids {
		w.path = append(w.path, i+NumberFirst)
		if err := w.node(id); err != nil {
			return err
		}
		w.path = w.path[:len(w.path)-1]
	}
	return nil
}

func (w *walker) node(id NodeID) error {
	n := w.tree.Node(id)
	v := Visit{ID: id, Node: n, Path: w.path, Depth: len(w.path) - 1}
	w.visited++

	if err := w.visitor.Enter(v); err != nil {
		return err
	}
	if err := w.siblings(n.Children); err != nil {
		return err
	}
	return w.visitor.Leave(v)
}

// FindFirst returns the first node in pre-order under ids whose title
// equals title.
func FindFirst(t *Tree, ids []NodeID, title string) (NodeID, bool) {
	for _, id := range ids {
		n := t.Node(id)
		if n == nil {
			continue
		}
		if n.Title == title {
			return id, true
		}
		if found, ok := FindFirst(t, n.Children, title); ok {
			return found, true
		}
	}
	return 0, false
}
