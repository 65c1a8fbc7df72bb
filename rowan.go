package rowan

import "github.com/hajimehoshi/ebiten/v2"

// Vec2 is a 2D vector used for positions, offsets and deltas throughout the
// API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Key identifies a keyboard key. Values are Ebitengine key codes so that
// handlers can compare against ebiten.KeyA, ebiten.KeyEnter and so on.
type Key = ebiten.Key

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft    MouseButton = iota // primary (left) mouse button
	MouseButtonRight                      // secondary (right) mouse button
	MouseButtonMiddle                     // middle mouse button (scroll wheel click)
	MouseButtonBack                       // "back" side button
	MouseButtonForward                    // "forward" side button

	numMouseButtons
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonBack:
		return "back"
	case MouseButtonForward:
		return "forward"
	default:
		return "unknown"
	}
}

// MouseButtons is a bitmask of pressed mouse buttons.
type MouseButtons uint8

// With returns the set with b added.
func (m MouseButtons) With(b MouseButton) MouseButtons {
	return m | 1<<b
}

// Without returns the set with b removed.
func (m MouseButtons) Without(b MouseButton) MouseButtons {
	return m &^ (1 << b)
}

// Has reports whether b is in the set.
func (m MouseButtons) Has(b MouseButton) bool {
	return m&(1<<b) != 0
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// EventType identifies a kind of input event delivered to a node.
type EventType uint8

const (
	EventHover       EventType = iota // pointer entered the node
	EventHoverLost                    // pointer left the node
	EventMouseDown                    // a mouse button was pressed over the node
	EventMouseUp                      // a mouse button was released
	EventClick                        // press then release over the same node
	EventDoubleClick                  // second click on the same node within the double-click time
	EventDragStart                    // movement exceeded the drag dead zone
	EventDrag                         // pointer moved while dragging
	EventDragEnd                      // button released after dragging
	EventWheelUp                      // wheel scrolled up
	EventWheelDown                    // wheel scrolled down
	EventKeyDown                      // key pressed (or repeated) while focused
	EventKeyUp                        // key released while focused
	EventMouseMove                    // pointer moved
	EventFocus                        // node gained focus
	EventFocusLost                    // node lost focus
)

var eventNames = [...]string{
	EventHover:       "hover",
	EventHoverLost:   "hover-lost",
	EventMouseDown:   "mouse-down",
	EventMouseUp:     "mouse-up",
	EventClick:       "click",
	EventDoubleClick: "double-click",
	EventDragStart:   "drag-start",
	EventDrag:        "drag",
	EventDragEnd:     "drag-end",
	EventWheelUp:     "wheel-up",
	EventWheelDown:   "wheel-down",
	EventKeyDown:     "key-down",
	EventKeyUp:       "key-up",
	EventMouseMove:   "mouse-move",
	EventFocus:       "focus",
	EventFocusLost:   "focus-lost",
}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}
