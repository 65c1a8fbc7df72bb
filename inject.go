package rowan

import "time"

// injectFrameTime is how far each injected snapshot advances InputState.Time.
const injectFrameTime = time.Second / 60

type syntheticKind uint8

const (
	synthPress syntheticKind = iota
	synthMove
	synthRelease
	synthWheel
	synthKeyDown
	synthKeyUp
)

// syntheticEvent represents a single injected input change. Screen
// coordinates are used, identical to real pointer input.
type syntheticEvent struct {
	kind   syntheticKind
	pos    Vec2
	button MouseButton
	wheel  float64
	key    Key
}

// InjectPress queues a left-button press at the given screen coordinates.
// Each queued event is consumed by one Update call.
func (im *InputManager) InjectPress(x, y float64) {
	im.injectQueue = append(im.injectQueue, syntheticEvent{kind: synthPress, pos: Vec2{x, y}, button: MouseButtonLeft})
}

// InjectMove queues a pointer move. Buttons already held stay held, so use
// this between InjectPress and InjectRelease to simulate a drag.
func (im *InputManager) InjectMove(x, y float64) {
	im.injectQueue = append(im.injectQueue, syntheticEvent{kind: synthMove, pos: Vec2{x, y}})
}

// InjectRelease queues a left-button release at the given screen coordinates.
func (im *InputManager) InjectRelease(x, y float64) {
	im.injectQueue = append(im.injectQueue, syntheticEvent{kind: synthRelease, pos: Vec2{x, y}, button: MouseButtonLeft})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (im *InputManager) InjectClick(x, y float64) {
	im.InjectPress(x, y)
	im.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (im *InputManager) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	im.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		im.InjectMove(x, y)
	}
	im.InjectRelease(toX, toY)
}

// InjectWheel queues one wheel sample at the current pointer position.
// Positive amounts scroll up.
func (im *InputManager) InjectWheel(amount float64) {
	im.injectQueue = append(im.injectQueue, syntheticEvent{kind: synthWheel, wheel: amount})
}

// InjectKeyPress queues a key going down.
func (im *InputManager) InjectKeyPress(k Key) {
	im.injectQueue = append(im.injectQueue, syntheticEvent{kind: synthKeyDown, key: k})
}

// InjectKeyRelease queues a key going up.
func (im *InputManager) InjectKeyRelease(k Key) {
	im.injectQueue = append(im.injectQueue, syntheticEvent{kind: synthKeyUp, key: k})
}

// InjectKeyTap queues a press and release of k. Consumes two frames.
func (im *InputManager) InjectKeyTap(k Key) {
	im.InjectKeyPress(k)
	im.InjectKeyRelease(k)
}

// Pending returns the number of injected events not yet dispatched.
func (im *InputManager) Pending() int {
	return len(im.injectQueue)
}

// synthesize builds the snapshot that follows prev after applying evt.
func synthesize(prev *InputState, evt syntheticEvent) *InputState {
	var (
		pos     Vec2
		pressed MouseButtons
		mouse   MouseState
		keys    *KeyboardState
		t       time.Duration
	)
	if prev != nil {
		mouse = prev.NativeMouse()
		keys = prev.Keyboard
		t = prev.Time
	}
	if mouse != nil {
		pos = mouse.Position()
		pressed = mouse.Buttons()
	}
	var wheel float64

	switch evt.kind {
	case synthPress:
		pos = evt.pos
		pressed = pressed.With(evt.button)
	case synthMove:
		pos = evt.pos
	case synthRelease:
		pos = evt.pos
		pressed = pressed.Without(evt.button)
	case synthWheel:
		wheel = evt.wheel
	case synthKeyDown:
		keys = keys.With(evt.key)
	case synthKeyUp:
		keys = keys.Without(evt.key)
	}

	if keys == nil {
		keys = NewKeyboardState()
	}
	return &InputState{
		Keyboard: keys,
		Mouse:    nextPointer(mouse, pos, pressed, wheel),
		Time:     t + injectFrameTime,
	}
}

// processInjectedInput pops one event from the inject queue and dispatches
// the resulting snapshot. Returns true if an event was consumed (real input
// is skipped for that frame).
func (im *InputManager) processInjectedInput() bool {
	if len(im.injectQueue) == 0 {
		return false
	}
	evt := im.injectQueue[0]
	copy(im.injectQueue, im.injectQueue[1:])
	im.injectQueue = im.injectQueue[:len(im.injectQueue)-1]

	im.Dispatch(synthesize(im.state, evt))
	return true
}
