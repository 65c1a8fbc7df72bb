package rowan

// Trigger methods are the only entry points a dispatcher calls. Each one
// projects the canonical state into the node's local space and forwards the
// handler's result unchanged. Handlers are never called directly.

func (n *Node) handler() Handler {
	if n.Handler == nil {
		return defaultHandler
	}
	return n.Handler
}

// IsHovering reports whether the pointer is currently over this node, as last
// signalled by TriggerHover / TriggerHoverLost.
func (n *Node) IsHovering() bool {
	return n.hovering
}

// TriggerHover marks the node hovered and delivers a hover-enter event.
func (n *Node) TriggerHover(state *InputState) bool {
	n.hovering = true
	return n.handler().OnHover(Project(state, n))
}

// TriggerHoverLost clears the hover flag and delivers a hover-leave event.
func (n *Node) TriggerHoverLost(state *InputState) {
	n.hovering = false
	n.handler().OnHoverLost(Project(state, n))
}

func (n *Node) TriggerMouseDown(state *InputState, args MouseDownArgs) bool {
	return n.handler().OnMouseDown(Project(state, n), args)
}

func (n *Node) TriggerMouseUp(state *InputState, args MouseUpArgs) bool {
	return n.handler().OnMouseUp(Project(state, n), args)
}

func (n *Node) TriggerClick(state *InputState) bool {
	return n.handler().OnClick(Project(state, n))
}

func (n *Node) TriggerDoubleClick(state *InputState) bool {
	return n.handler().OnDoubleClick(Project(state, n))
}

func (n *Node) TriggerDragStart(state *InputState) bool {
	return n.handler().OnDragStart(Project(state, n))
}

func (n *Node) TriggerDrag(state *InputState) bool {
	return n.handler().OnDrag(Project(state, n))
}

func (n *Node) TriggerDragEnd(state *InputState) bool {
	return n.handler().OnDragEnd(Project(state, n))
}

func (n *Node) TriggerWheelUp(state *InputState) bool {
	return n.handler().OnWheelUp(Project(state, n))
}

func (n *Node) TriggerWheelDown(state *InputState) bool {
	return n.handler().OnWheelDown(Project(state, n))
}

func (n *Node) TriggerKeyDown(state *InputState, args KeyDownArgs) bool {
	return n.handler().OnKeyDown(Project(state, n), args)
}

func (n *Node) TriggerKeyUp(state *InputState, args KeyUpArgs) bool {
	return n.handler().OnKeyUp(Project(state, n), args)
}

func (n *Node) TriggerMouseMove(state *InputState) bool {
	return n.handler().OnMouseMove(Project(state, n))
}
