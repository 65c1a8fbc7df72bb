package rowan

// NodeID identifies a node within its Tree. IDs are never reused, so a stale
// ID simply fails to resolve.
type NodeID uint32

// nodeIDCounter is a plain counter; rowan is single-threaded.
var nodeIDCounter uint32

func nextNodeID() NodeID {
	nodeIDCounter++
	return NodeID(nodeIDCounter)
}

// HitShape is used for custom hit testing regions in local coordinates.
// When set on a node it replaces the draw rectangle for Contains.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Tree ---

// Tree is the arena that owns every node of a scene. Nodes refer to each
// other by NodeID only; the tree is the single owner.
type Tree struct {
	nodes map[NodeID]*Node
	root  *Node
}

// NewTree creates a tree with a pre-created root container.
func NewTree() *Tree {
	t := &Tree{nodes: make(map[NodeID]*Node)}
	t.root = t.NewNode("root", nil)
	return t
}

// Root returns the tree's root container node.
func (t *Tree) Root() *Node {
	return t.root
}

// NewNode creates a detached node owned by this tree. Attach it with
// AddChild. A nil handler gives the default (ignore everything) behavior.
func (t *Tree) NewNode(name string, h Handler) *Node {
	n := &Node{Name: name, Handler: h, tree: t}
	nodeDefaults(n)
	t.nodes[n.ID] = n
	return n
}

// Lookup returns the node with the given ID, or nil if it does not exist
// (never created, or disposed).
func (t *Tree) Lookup(id NodeID) *Node {
	if id == 0 {
		return nil
	}
	return t.nodes[id]
}

// Len returns the number of live nodes in the arena, attached or not.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// --- Node ---

// Node is a member of the scene tree. A single flat struct is used for every
// node; per-node behavior lives in its Handler.
type Node struct {
	// Identity
	ID   NodeID
	Name string

	// Hierarchy (arena links)
	tree     *Tree
	parent   NodeID
	children []NodeID

	// Transform (local)
	X, Y         float64
	ScaleX       float64
	ScaleY       float64
	Rotation     float64
	SkewX, SkewY float64
	PivotX       float64
	PivotY       float64

	// Local draw rectangle is {0, 0, Width, Height}.
	Width, Height float64

	// Computed draw matrix (local -> screen) and its inverse.
	drawMatrix     [6]float64
	inverseMatrix  [6]float64
	transformDirty bool

	// Visibility & interaction
	Visible      bool
	Interactable bool
	HitShape     HitShape

	// Behavior
	Handler Handler

	// Metadata
	UserData any
	EntityID uint32

	// Input
	hovering   bool
	manager    *InputManager // dispatcher installed on this node, if any
	dispatcher *InputManager // nearest dispatcher, cached on attach

	disposed bool
}

// nodeDefaults sets the common default field values.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Visible = true
	n.Interactable = true
	n.transformDirty = true
	n.drawMatrix = identityTransform
	n.inverseMatrix = identityTransform
}

// Tree returns the arena that owns this node.
func (n *Node) Tree() *Tree {
	return n.tree
}

// Parent returns the parent node, or nil for roots and detached nodes.
func (n *Node) Parent() *Node {
	if n.tree == nil {
		return nil
	}
	return n.tree.Lookup(n.parent)
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, belongs to another tree, or is an ancestor of this
// node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("rowan: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if child.tree != n.tree {
		panic("rowan: child belongs to a different tree")
	}
	if isAncestor(child, n) {
		panic("rowan: adding child would create a cycle")
	}
	if p := child.Parent(); p != nil {
		p.removeChildByID(child.ID)
	}
	child.parent = n.ID
	n.children = append(n.children, child.ID)
	markSubtreeDirty(child)
	bindDispatcher(child, findInputManager(n))
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node. The child stays in the arena
// and can be re-attached.
// Panics if child's parent is not n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.parent != n.ID {
		panic("rowan: child's parent is not this node")
	}
	n.removeChildByID(child.ID)
	child.parent = 0
	markSubtreeDirty(child)
	bindDispatcher(child, nil)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	p := n.Parent()
	if p == nil {
		return
	}
	p.RemoveChild(n)
}

// Children returns the child nodes in insertion order. The slice is freshly
// allocated.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, id := range n.children {
		out = append(out, n.tree.nodes[id])
	}
	return out
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.tree.nodes[n.children[index]]
}

// --- Disposal ---

// Dispose removes this node from its parent, releases focus and hover it
// holds, and recursively disposes all descendants. Disposed nodes leave the
// arena.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	if n.dispatcher != nil {
		n.dispatcher.forget(n)
	}
	for _, id := range n.children {
		if child := n.tree.nodes[id]; child != nil {
			child.parent = 0
			child.dispose()
		}
	}
	delete(n.tree.nodes, n.ID)
	n.disposed = true
	n.children = nil
	n.parent = 0
	n.manager = nil
	n.dispatcher = nil
	n.HitShape = nil
	n.Handler = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent() {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByID removes id from n.children without touching the child.
func (n *Node) removeChildByID(id NodeID) {
	for i, c := range n.children {
		if c == id {
			copy(n.children[i:], n.children[i+1:])
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
// A clean node therefore always has clean ancestors.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, id := range node.children {
		if child := node.tree.nodes[id]; child != nil {
			markSubtreeDirty(child)
		}
	}
}
