package rowan

// maxFocusHandoffs bounds how many holders a single ChangeFocus may displace.
// Only reachable when focus-lost handlers keep grabbing focus back.
const maxFocusHandoffs = 64

// findInputManager walks parent links from n (inclusive) to the nearest node
// with an InputManager installed. Returns nil if none exists.
func findInputManager(n *Node) *InputManager {
	for p := n; p != nil; p = p.Parent() {
		if p.manager != nil {
			return p.manager
		}
	}
	return nil
}

// bindDispatcher caches the dispatcher for n's subtree. inherited is the
// dispatcher above n; a node with its own manager overrides it for itself and
// its descendants. Nodes that leave a dispatcher's scope are forgotten by it
// first, which releases any focus, hover or capture they held.
func bindDispatcher(n *Node, inherited *InputManager) {
	d := inherited
	if n.manager != nil {
		d = n.manager
	}
	if old := n.dispatcher; old != nil && old != d {
		old.forget(n)
	}
	n.dispatcher = d
	for _, id := range n.children {
		if child := n.tree.nodes[id]; child != nil {
			bindDispatcher(child, d)
		}
	}
}

// InputManager returns the dispatcher that owns this node's focus, or nil
// when the node is not under one.
func (n *Node) InputManager() *InputManager {
	return n.dispatcher
}

// HasFocus reports whether this node is its dispatcher's focus holder.
// Nodes without a dispatcher never have focus.
func (n *Node) HasFocus() bool {
	return n.dispatcher != nil && n.dispatcher.focused == n
}

// RequestFocus asks for keyboard focus. It succeeds immediately, without any
// notification, if the node already has focus. When checkCanFocus is set the
// node's OnFocus handler must accept first; a rejection leaves focus
// unchanged. Returns whether the node holds focus afterwards.
func (n *Node) RequestFocus(state *InputState, checkCanFocus bool) bool {
	if n.HasFocus() {
		return true
	}
	im := n.dispatcher
	if im == nil {
		return false
	}
	if checkCanFocus && !n.handler().OnFocus(Project(state, n)) {
		return false
	}
	im.ChangeFocus(n, state)
	return n.HasFocus()
}

// ReleaseFocus gives up focus. No-op if the node does not have it.
func (n *Node) ReleaseFocus(state *InputState) {
	if !n.HasFocus() {
		return
	}
	n.dispatcher.ChangeFocus(nil, state)
}

// notifyFocusLost delivers the focus-lost event. It never touches the focus
// authority. Without a state an empty one is synthesized.
func (n *Node) notifyFocusLost(state *InputState) {
	if state == nil {
		state = NewInputState()
	} else {
		state = Project(state, n)
	}
	n.handler().OnFocusLost(state)
}

// Focused returns the current focus holder, or nil.
func (im *InputManager) Focused() *Node {
	return im.focused
}

// ChangeFocus transfers focus authority to `to` (nil clears it). The old
// holder is removed from authority before it is told, so during its
// OnFocusLost it already reads HasFocus() == false and no node holds focus.
// If a focus-lost handler grabs focus for some node, that node is displaced
// and notified in turn before `to` is recorded.
//
// Nodes outside this manager's scope are ignored.
func (im *InputManager) ChangeFocus(to *Node, state *InputState) {
	if to != nil && to.dispatcher != im {
		return
	}
	if im.focused == to {
		return
	}
	for i := 0; im.focused != nil && im.focused != to; i++ {
		if i == maxFocusHandoffs {
			panic("rowan: focus-lost handlers keep reclaiming focus")
		}
		old := im.focused
		im.focused = nil
		im.debugf("focus lost: %q", old.Name)
		old.notifyFocusLost(state)
		im.emit(InteractionEvent{Type: EventFocusLost}, old, state)
	}
	// A callback may already have focused the target, or detached it.
	if to == nil || im.focused == to || to.dispatcher != im {
		return
	}
	im.focused = to
	im.debugf("focus gained: %q", to.Name)
	im.emit(InteractionEvent{Type: EventFocus}, to, state)
}
