package rowan

// KeyDownArgs accompanies a key-down event.
type KeyDownArgs struct {
	Key    Key
	Repeat bool // true for auto-repeat while the key stays held
}

// KeyUpArgs accompanies a key-up event.
type KeyUpArgs struct {
	Key Key
}

// MouseDownArgs accompanies a mouse-button-down event.
type MouseDownArgs struct {
	Button MouseButton
}

// MouseUpArgs accompanies a mouse-button-up event.
type MouseUpArgs struct {
	Button MouseButton
}

// Handler is implemented by anything that interprets input for a node. Every
// method receives state already projected into the node's local space and
// returns whether it consumed the event.
//
// Embed BaseHandler to inherit the defaults and override only what you need:
//
//	type button struct {
//		rowan.BaseHandler
//		clicks int
//	}
//
//	func (b *button) OnClick(*rowan.InputState) bool { b.clicks++; return true }
type Handler interface {
	OnHover(state *InputState) bool
	OnHoverLost(state *InputState)
	OnMouseDown(state *InputState, args MouseDownArgs) bool
	OnMouseUp(state *InputState, args MouseUpArgs) bool
	OnClick(state *InputState) bool
	OnDoubleClick(state *InputState) bool
	OnDragStart(state *InputState) bool
	OnDrag(state *InputState) bool
	OnDragEnd(state *InputState) bool
	OnWheelUp(state *InputState) bool
	OnWheelDown(state *InputState) bool
	OnKeyDown(state *InputState, args KeyDownArgs) bool
	OnKeyUp(state *InputState, args KeyUpArgs) bool
	OnMouseMove(state *InputState) bool

	// OnFocus is asked before a permission-checked focus request is granted.
	OnFocus(state *InputState) bool
	OnFocusLost(state *InputState)
}

// BaseHandler ignores every event: each method returns false or does nothing.
type BaseHandler struct{}

func (BaseHandler) OnHover(*InputState) bool { return false }
func (BaseHandler) OnHoverLost(*InputState) {}
func (BaseHandler) OnMouseDown(*InputState, MouseDownArgs) bool { return false }
func (BaseHandler) OnMouseUp(*InputState, MouseUpArgs) bool { return false }
func (BaseHandler) OnClick(*InputState) bool { return false }
func (BaseHandler) OnDoubleClick(*InputState) bool { return false }
func (BaseHandler) OnDragStart(*InputState) bool { return false }
func (BaseHandler) OnDrag(*InputState) bool { return false }
func (BaseHandler) OnDragEnd(*InputState) bool { return false }
func (BaseHandler) OnWheelUp(*InputState) bool { return false }
func (BaseHandler) OnWheelDown(*InputState) bool { return false }
func (BaseHandler) OnKeyDown(*InputState, KeyDownArgs) bool { return false }
func (BaseHandler) OnKeyUp(*InputState, KeyUpArgs) bool { return false }
func (BaseHandler) OnMouseMove(*InputState) bool { return false }
func (BaseHandler) OnFocus(*InputState) bool { return false }
func (BaseHandler) OnFocusLost(*InputState) {}

var defaultHandler Handler = BaseHandler{}

// Funcs adapts optional callbacks to a Handler. Nil fields behave like
// BaseHandler (zero cost when unused).
type Funcs struct {
	Hover       func(*InputState) bool
	HoverLost   func(*InputState)
	MouseDown   func(*InputState, MouseDownArgs) bool
	MouseUp     func(*InputState, MouseUpArgs) bool
	Click       func(*InputState) bool
	DoubleClick func(*InputState) bool
	DragStart   func(*InputState) bool
	Drag        func(*InputState) bool
	DragEnd     func(*InputState) bool
	WheelUp     func(*InputState) bool
	WheelDown   func(*InputState) bool
	KeyDown     func(*InputState, KeyDownArgs) bool
	KeyUp       func(*InputState, KeyUpArgs) bool
	MouseMove   func(*InputState) bool
	Focus       func(*InputState) bool
	FocusLost   func(*InputState)
}

func callBool(fn func(*InputState) bool, s *InputState) bool {
	if fn == nil {
		return false
	}
	return fn(s)
}

func (f Funcs) OnHover(s *InputState) bool { return callBool(f.Hover, s) }

func (f Funcs) OnHoverLost(s *InputState) {
	if f.HoverLost != nil {
		f.HoverLost(s)
	}
}

func (f Funcs) OnMouseDown(s *InputState, args MouseDownArgs) bool {
	if f.MouseDown == nil {
		return false
	}
	return f.MouseDown(s, args)
}

func (f Funcs) OnMouseUp(s *InputState, args MouseUpArgs) bool {
	if f.MouseUp == nil {
		return false
	}
	return f.MouseUp(s, args)
}

func (f Funcs) OnClick(s *InputState) bool { return callBool(f.Click, s) }
func (f Funcs) OnDoubleClick(s *InputState) bool { return callBool(f.DoubleClick, s) }
func (f Funcs) OnDragStart(s *InputState) bool { return callBool(f.DragStart, s) }
func (f Funcs) OnDrag(s *InputState) bool { return callBool(f.Drag, s) }
func (f Funcs) OnDragEnd(s *InputState) bool { return callBool(f.DragEnd, s) }
func (f Funcs) OnWheelUp(s *InputState) bool { return callBool(f.WheelUp, s) }
func (f Funcs) OnWheelDown(s *InputState) bool { return callBool(f.WheelDown, s) }

func (f Funcs) OnKeyDown(s *InputState, args KeyDownArgs) bool {
	if f.KeyDown == nil {
		return false
	}
	return f.KeyDown(s, args)
}

func (f Funcs) OnKeyUp(s *InputState, args KeyUpArgs) bool {
	if f.KeyUp == nil {
		return false
	}
	return f.KeyUp(s, args)
}

func (f Funcs) OnMouseMove(s *InputState) bool { return callBool(f.MouseMove, s) }
func (f Funcs) OnFocus(s *InputState) bool { return callBool(f.Focus, s) }

func (f Funcs) OnFocusLost(s *InputState) {
	if f.FocusLost != nil {
		f.FocusLost(s)
	}
}
