package rowan

// Project returns a view of state localized to n. A nil state projects to
// nil, since events may be triggered without any state.
//
// The keyboard is shared by reference. Pointer positions are re-derived on
// every read by pushing the canonical positions through n's current inverse
// draw matrix; nothing is copied. Projecting an already-projected state
// starts again from its canonical pointer.
func Project(state *InputState, n *Node) *InputState {
	if state == nil {
		return nil
	}
	out := &InputState{Keyboard: state.Keyboard, Time: state.Time}
	if native := state.NativeMouse(); native != nil {
		out.Mouse = localMouseState{native: native, node: n}
	}
	return out
}

// localMouseState is the lazy local-space view built by Project.
type localMouseState struct {
	native MouseState
	node   *Node
}

// NativeState returns the canonical screen-space state this view wraps.
func (l localMouseState) NativeState() MouseState {
	return l.native
}

func (l localMouseState) Position() Vec2 {
	return l.node.LocalPosition(l.native.Position())
}

// LastPosition uses the node's current transform, not the one in effect when
// the previous sample was taken.
func (l localMouseState) LastPosition() Vec2 {
	return l.node.LocalPosition(l.native.LastPosition())
}

// Delta is taken after localizing both ends. Under rotation or a scale that
// changed between samples this differs from localizing the screen delta.
func (l localMouseState) Delta() Vec2 {
	return l.Position().Sub(l.LastPosition())
}

func (l localMouseState) PositionMouseDown() (Vec2, bool) {
	pos, ok := l.native.PositionMouseDown()
	if !ok {
		return Vec2{}, false
	}
	return l.node.LocalPosition(pos), true
}

func (l localMouseState) Buttons() MouseButtons { return l.native.Buttons() }
func (l localMouseState) IsPressed(b MouseButton) bool { return l.native.IsPressed(b) }
func (l localMouseState) HasMainButtonPressed() bool { return l.native.HasMainButtonPressed() }
func (l localMouseState) WheelDelta() float64 { return l.native.WheelDelta() }
