package rowan

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputState is an immutable snapshot of input for one sample. The canonical
// snapshot held by an InputManager is in screen space; the state handed to a
// handler is a projection into that node's local space. Never mix positions
// taken from two different projections.
type InputState struct {
	Keyboard *KeyboardState
	Mouse    MouseState

	// Time is the sample timestamp, measured from when the input source
	// started. Used for double-click and key-repeat timing.
	Time time.Duration
}

// NewInputState returns an empty state: no keys, pointer at the origin with
// no buttons held.
func NewInputState() *InputState {
	return &InputState{
		Keyboard: NewKeyboardState(),
		Mouse:    PointerState{},
	}
}

// NativeMouse returns the screen-space mouse state underlying s, unwrapping a
// local projection if needed.
func (s *InputState) NativeMouse() MouseState {
	if s == nil {
		return nil
	}
	if l, ok := s.Mouse.(localMouseState); ok {
		return l.native
	}
	return s.Mouse
}

// --- Keyboard ---

// KeyboardState is the set of currently pressed keys. Methods are safe on a
// nil receiver, which reads as "nothing pressed".
type KeyboardState struct {
	keys []Key // sorted, unique
}

// NewKeyboardState returns a keyboard state with the given keys pressed.
func NewKeyboardState(keys ...Key) *KeyboardState {
	k := &KeyboardState{keys: slices.Clone(keys)}
	slices.Sort(k.keys)
	k.keys = slices.Compact(k.keys)
	return k
}

// IsPressed reports whether key is held.
func (k *KeyboardState) IsPressed(key Key) bool {
	if k == nil {
		return false
	}
	_, ok := slices.BinarySearch(k.keys, key)
	return ok
}

// Keys returns the pressed keys in ascending order. The returned slice MUST
// NOT be mutated by the caller.
func (k *KeyboardState) Keys() []Key {
	if k == nil {
		return nil
	}
	return k.keys
}

// Len returns the number of pressed keys.
func (k *KeyboardState) Len() int {
	if k == nil {
		return 0
	}
	return len(k.keys)
}

// With returns a copy of k with key added.
func (k *KeyboardState) With(key Key) *KeyboardState {
	return NewKeyboardState(append(slices.Clone(k.Keys()), key)...)
}

// Without returns a copy of k with key removed.
func (k *KeyboardState) Without(key Key) *KeyboardState {
	out := make([]Key, 0, k.Len())
	for _, kk := range k.Keys() {
		if kk != key {
			out = append(out, kk)
		}
	}
	return &KeyboardState{keys: out}
}

// Modifiers derives the modifier bitmask from the pressed keys.
func (k *KeyboardState) Modifiers() KeyModifiers {
	var mods KeyModifiers
	if k.IsPressed(ebiten.KeyShift) || k.IsPressed(ebiten.KeyShiftLeft) || k.IsPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if k.IsPressed(ebiten.KeyControl) || k.IsPressed(ebiten.KeyControlLeft) || k.IsPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if k.IsPressed(ebiten.KeyAlt) || k.IsPressed(ebiten.KeyAltLeft) || k.IsPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if k.IsPressed(ebiten.KeyMeta) || k.IsPressed(ebiten.KeyMetaLeft) || k.IsPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// --- Mouse ---

// MouseState is a read-only view of the pointer. Positions are in the space
// of whoever holds the view.
type MouseState interface {
	Position() Vec2
	LastPosition() Vec2
	// Delta is Position - LastPosition, measured in the view's own space.
	Delta() Vec2
	// PositionMouseDown is where the current press began. ok is false when
	// no button is held.
	PositionMouseDown() (pos Vec2, ok bool)
	Buttons() MouseButtons
	IsPressed(b MouseButton) bool
	HasMainButtonPressed() bool
	// WheelDelta is the vertical scroll for this sample; positive is up.
	WheelDelta() float64
}

// PointerState is the canonical, screen-space MouseState produced by an
// input source.
type PointerState struct {
	Pos       Vec2
	LastPos   Vec2
	DownPos   Vec2
	DownValid bool
	Pressed   MouseButtons
	Wheel     float64
}

func (p PointerState) Position() Vec2 { return p.Pos }
func (p PointerState) LastPosition() Vec2 { return p.LastPos }
func (p PointerState) Delta() Vec2 { return p.Pos.Sub(p.LastPos) }

func (p PointerState) PositionMouseDown() (Vec2, bool) {
	return p.DownPos, p.DownValid
}

func (p PointerState) Buttons() MouseButtons { return p.Pressed }
func (p PointerState) IsPressed(b MouseButton) bool { return p.Pressed.Has(b) }
func (p PointerState) WheelDelta() float64 { return p.Wheel }

func (p PointerState) HasMainButtonPressed() bool {
	return p.Pressed.Has(MouseButtonLeft) || p.Pressed.Has(MouseButtonRight)
}

// nextPointer builds the pointer state that follows prev when the pointer is
// at pos with the given buttons held. The press origin is latched when the
// first button goes down and cleared when the last one is released.
func nextPointer(prev MouseState, pos Vec2, pressed MouseButtons, wheel float64) PointerState {
	p := PointerState{Pos: pos, LastPos: pos, Pressed: pressed, Wheel: wheel}
	var prevPressed MouseButtons
	if prev != nil {
		p.LastPos = prev.Position()
		prevPressed = prev.Buttons()
		p.DownPos, p.DownValid = prev.PositionMouseDown()
	}
	switch {
	case pressed == 0:
		p.DownPos, p.DownValid = Vec2{}, false
	case prevPressed == 0 || !p.DownValid:
		p.DownPos, p.DownValid = pos, true
	}
	return p
}
