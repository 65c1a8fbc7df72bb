package rowan

import (
	"math"
	"time"
)

// Source produces canonical input snapshots, one per Update. prev is the last
// dispatched snapshot, so sources can carry LastPosition and press origins
// forward.
type Source interface {
	Poll(prev *InputState) *InputState
}

// EntityStore is the interface for optional ECS integration.
// When set on an InputManager, delivered events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries one delivered event for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	EntityID  uint32
	NodeID    NodeID
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	DeltaX    float64 // local-space delta
	DeltaY    float64
	Wheel     float64
	Button    MouseButton
	Key       Key
	Repeat    bool
	Modifiers KeyModifiers
}

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	button   MouseButton // button that started the interaction
	start    Vec2        // screen-space press position
	hitNode  *Node       // node under the pointer at press time
	dragNode *Node       // node that accepted the drag start
	dragging bool
}

// InputManager is the dispatcher for the subtree rooted at the node it is
// installed on. It owns the canonical input state and the focus authority,
// picks targets, and calls node triggers.
type InputManager struct {
	node *Node
	cfg  Config

	state    *InputState // last dispatched canonical snapshot
	focused  *Node
	hovered  *Node
	captured *Node
	pointer  pointerState

	lastClickNode *Node
	lastClickTime time.Duration
	keyRepeat     map[Key]time.Duration // next repeat time per held key

	store       EntityStore
	source      Source
	injectQueue []syntheticEvent
	testRunner  *TestRunner

	hitBuf    []*Node
	delivered int
}

// NewInputManager installs a dispatcher on n. Every node in n's subtree that
// is not under a nearer dispatcher now reports to it.
// Panics if n is nil or already has one.
func NewInputManager(n *Node, cfg Config) *InputManager {
	if n == nil {
		panic("rowan: cannot install an InputManager on a nil node")
	}
	if n.manager != nil {
		panic("rowan: node already has an InputManager")
	}
	im := &InputManager{
		node:      n,
		cfg:       cfg,
		state:     NewInputState(),
		keyRepeat: make(map[Key]time.Duration),
	}
	n.manager = im
	bindDispatcher(n, im)
	if cfg.Debug {
		globalDebug = true
	}
	return im
}

// Node returns the node this dispatcher is installed on.
func (im *InputManager) Node() *Node {
	return im.node
}

// Config returns the active configuration.
func (im *InputManager) Config() Config {
	return im.cfg
}

// State returns the last dispatched canonical snapshot.
func (im *InputManager) State() *InputState {
	return im.state
}

// Hovered returns the node currently under the pointer, or nil.
func (im *InputManager) Hovered() *Node {
	return im.hovered
}

// SetEntityStore sets the optional ECS bridge.
func (im *InputManager) SetEntityStore(store EntityStore) {
	im.store = store
}

// SetSource sets where Update reads real input from. Nil disables polling;
// injected input still works.
func (im *InputManager) SetSource(src Source) {
	im.source = src
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (im *InputManager) SetDragDeadZone(pixels float64) {
	im.cfg.DragDeadZone = pixels
}

// SetDebugMode enables or disables debug logging for this manager and the
// tree sanity checks.
func (im *InputManager) SetDebugMode(enabled bool) {
	im.cfg.Debug = enabled
	globalDebug = enabled
}

// CapturePointer routes all pointer events to n regardless of hit testing,
// until ReleasePointer or the button that is held is released.
func (im *InputManager) CapturePointer(n *Node) {
	if n != nil && n.dispatcher == im {
		im.captured = n
	}
}

// ReleasePointer stops routing pointer events to a captured node.
func (im *InputManager) ReleasePointer() {
	im.captured = nil
}

// Update dispatches one queued injected snapshot if there is one, and
// otherwise polls the source. Call once per frame.
func (im *InputManager) Update() {
	if im.testRunner != nil {
		im.testRunner.step(im)
	}
	if im.processInjectedInput() {
		return
	}
	if im.source != nil {
		im.Dispatch(im.source.Poll(im.state))
	}
}

// Dispatch delivers one canonical snapshot. Nil is ignored.
func (im *InputManager) Dispatch(state *InputState) {
	if state == nil {
		return
	}
	prev := im.state
	im.state = state
	im.delivered = 0

	mouse := state.NativeMouse()
	if mouse == nil {
		mouse = PointerState{}
	}
	pos := mouse.Position()

	target := im.captured
	if target == nil {
		target = im.hitTest(pos)
	}
	im.updateHover(target, state)

	var prevButtons MouseButtons
	if pm := prev.NativeMouse(); pm != nil {
		prevButtons = pm.Buttons()
	}
	buttons := mouse.Buttons()
	for b := MouseButton(0); b < numMouseButtons; b++ {
		if buttons.Has(b) && !prevButtons.Has(b) {
			im.handleButtonDown(b, target, state, pos)
		}
	}
	moved := mouse.Delta() != Vec2{}
	if im.pointer.down && moved {
		im.handleHeldMove(state, pos)
	}
	for b := MouseButton(0); b < numMouseButtons; b++ {
		if !buttons.Has(b) && prevButtons.Has(b) {
			im.handleButtonUp(b, target, state)
		}
	}

	if w := mouse.WheelDelta(); w > 0 {
		im.bubble(target, InteractionEvent{Type: EventWheelUp}, state, func(n *Node) bool {
			return n.TriggerWheelUp(state)
		})
	} else if w < 0 {
		im.bubble(target, InteractionEvent{Type: EventWheelDown}, state, func(n *Node) bool {
			return n.TriggerWheelDown(state)
		})
	}

	if moved {
		im.bubble(target, InteractionEvent{Type: EventMouseMove}, state, func(n *Node) bool {
			return n.TriggerMouseMove(state)
		})
	}

	im.dispatchKeys(prev, state)

	if im.delivered > 0 {
		im.debugf("dispatch t=%v pos=(%.1f, %.1f) delivered=%d", state.Time, pos.X, pos.Y, im.delivered)
	}
}

// --- Hit testing ---

// collectInteractable walks the subtree in painter order (parents before
// children, children in insertion order), appending hit-testable nodes to
// buf. Skips invisible or non-interactable subtrees and subtrees owned by
// another dispatcher.
func (im *InputManager) collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.manager != nil && n.manager != im {
		return buf
	}
	if n.HitShape != nil || n.Width > 0 || n.Height > 0 {
		buf = append(buf, n)
	}
	for _, id := range n.children {
		if child := n.tree.nodes[id]; child != nil {
			buf = im.collectInteractable(child, buf)
		}
	}
	return buf
}

// hitTest finds the topmost interactable node containing the screen-space
// position. Returns nil if nothing is hit.
func (im *InputManager) hitTest(pos Vec2) *Node {
	im.hitBuf = im.collectInteractable(im.node, im.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost node first.
	for i := len(im.hitBuf) - 1; i >= 0; i-- {
		if n := im.hitBuf[i]; n.Contains(pos) {
			return n
		}
	}
	return nil
}

// --- Delivery ---

// bubble fires an event on start and then its ancestors, up to and including
// the dispatcher's node, until one consumes it. Returns the consumer or nil.
func (im *InputManager) bubble(start *Node, ev InteractionEvent, state *InputState, fire func(*Node) bool) *Node {
	for n := start; n != nil; n = n.Parent() {
		if n.dispatcher != im {
			break
		}
		consumed := fire(n)
		im.delivered++
		im.emit(ev, n, state)
		if consumed {
			return n
		}
		if n == im.node {
			break
		}
	}
	return nil
}

// deliver fires an event on exactly one node.
func (im *InputManager) deliver(n *Node, ev InteractionEvent, state *InputState, fire func(*Node) bool) bool {
	if n == nil {
		return false
	}
	consumed := fire(n)
	im.delivered++
	im.emit(ev, n, state)
	return consumed
}

func (im *InputManager) updateHover(target *Node, state *InputState) {
	if target == im.hovered {
		return
	}
	if old := im.hovered; old != nil {
		im.hovered = nil
		im.deliver(old, InteractionEvent{Type: EventHoverLost}, state, func(n *Node) bool {
			n.TriggerHoverLost(state)
			return false
		})
	}
	if target != nil {
		im.hovered = target
		im.deliver(target, InteractionEvent{Type: EventHover}, state, func(n *Node) bool {
			return n.TriggerHover(state)
		})
	}
}

func (im *InputManager) handleButtonDown(b MouseButton, target *Node, state *InputState, pos Vec2) {
	if !im.pointer.down {
		im.pointer = pointerState{down: true, button: b, start: pos, hitNode: target}
	}
	im.bubble(target, InteractionEvent{Type: EventMouseDown, Button: b}, state, func(n *Node) bool {
		return n.TriggerMouseDown(state, MouseDownArgs{Button: b})
	})
	if b == MouseButtonLeft {
		im.focusAt(target, state)
	}
}

// focusAt gives focus to the first node from target upward that accepts it,
// or clears focus when none does.
func (im *InputManager) focusAt(target *Node, state *InputState) {
	for n := target; n != nil && n.dispatcher == im; n = n.Parent() {
		if n.RequestFocus(state, true) {
			return
		}
		if n == im.node {
			break
		}
	}
	im.ChangeFocus(nil, state)
}

func (im *InputManager) handleHeldMove(state *InputState, pos Vec2) {
	ps := &im.pointer
	if !ps.dragging {
		d := pos.Sub(ps.start)
		if math.Hypot(d.X, d.Y) <= im.cfg.DragDeadZone {
			return
		}
		ps.dragging = true
		ps.dragNode = im.bubble(ps.hitNode, InteractionEvent{Type: EventDragStart, Button: ps.button}, state, func(n *Node) bool {
			return n.TriggerDragStart(state)
		})
	}
	im.deliver(ps.dragNode, InteractionEvent{Type: EventDrag, Button: ps.button}, state, func(n *Node) bool {
		return n.TriggerDrag(state)
	})
}

func (im *InputManager) handleButtonUp(b MouseButton, target *Node, state *InputState) {
	ends := im.pointer.down && im.pointer.button == b
	if ends {
		ps := im.pointer
		switch {
		case ps.dragging:
			im.deliver(ps.dragNode, InteractionEvent{Type: EventDragEnd, Button: b}, state, func(n *Node) bool {
				return n.TriggerDragEnd(state)
			})
		case ps.hitNode != nil && ps.hitNode == target:
			im.click(target, b, state)
		}
	}
	im.bubble(target, InteractionEvent{Type: EventMouseUp, Button: b}, state, func(n *Node) bool {
		return n.TriggerMouseUp(state, MouseUpArgs{Button: b})
	})
	if ends {
		// Auto-release capture.
		im.pointer = pointerState{}
		im.captured = nil
	}
}

// click delivers a click and, when the same node consumed the previous click
// within DoubleClickTime, a double-click.
func (im *InputManager) click(target *Node, b MouseButton, state *InputState) {
	clicked := im.bubble(target, InteractionEvent{Type: EventClick, Button: b}, state, func(n *Node) bool {
		return n.TriggerClick(state)
	})
	if clicked == nil {
		im.lastClickNode = nil
		return
	}
	if clicked == im.lastClickNode && state.Time-im.lastClickTime <= im.cfg.DoubleClickTime {
		im.lastClickNode = nil
		im.deliver(clicked, InteractionEvent{Type: EventDoubleClick, Button: b}, state, func(n *Node) bool {
			return n.TriggerDoubleClick(state)
		})
		return
	}
	im.lastClickNode = clicked
	im.lastClickTime = state.Time
}

// keyTarget is where keyboard events start bubbling: the focus holder, or
// the dispatcher's own node when nothing is focused.
func (im *InputManager) keyTarget() *Node {
	if im.focused != nil {
		return im.focused
	}
	return im.node
}

func (im *InputManager) dispatchKeys(prev, state *InputState) {
	var prevKeys *KeyboardState
	if prev != nil {
		prevKeys = prev.Keyboard
	}
	keys := state.Keyboard

	for _, k := range keys.Keys() {
		switch {
		case !prevKeys.IsPressed(k):
			im.keyRepeat[k] = state.Time + im.cfg.KeyRepeatDelay
			im.keyDown(k, false, state)
		case im.cfg.KeyRepeatInterval > 0 && state.Time >= im.keyRepeat[k]:
			im.keyRepeat[k] = state.Time + im.cfg.KeyRepeatInterval
			im.keyDown(k, true, state)
		}
	}
	for _, k := range prevKeys.Keys() {
		if keys.IsPressed(k) {
			continue
		}
		delete(im.keyRepeat, k)
		im.bubble(im.keyTarget(), InteractionEvent{Type: EventKeyUp, Key: k}, state, func(n *Node) bool {
			return n.TriggerKeyUp(state, KeyUpArgs{Key: k})
		})
	}
}

func (im *InputManager) keyDown(k Key, repeat bool, state *InputState) {
	im.bubble(im.keyTarget(), InteractionEvent{Type: EventKeyDown, Key: k, Repeat: repeat}, state, func(n *Node) bool {
		return n.TriggerKeyDown(state, KeyDownArgs{Key: k, Repeat: repeat})
	})
}

// forget drops every reference the manager holds to n. Called when n leaves
// the manager's scope (detached, re-parented elsewhere, or disposed).
func (im *InputManager) forget(n *Node) {
	if im.focused == n {
		im.ChangeFocus(nil, nil)
	}
	if im.hovered == n {
		im.hovered = nil
		n.TriggerHoverLost(im.state)
	}
	if im.captured == n {
		im.captured = nil
	}
	if im.pointer.hitNode == n {
		im.pointer.hitNode = nil
	}
	if im.pointer.dragNode == n {
		im.pointer.dragNode = nil
	}
	if im.lastClickNode == n {
		im.lastClickNode = nil
	}
}

// --- ECS bridge ---

func (im *InputManager) emit(ev InteractionEvent, n *Node, state *InputState) {
	if im.store == nil || n == nil || n.EntityID == 0 {
		return
	}
	ev.EntityID = n.EntityID
	ev.NodeID = n.ID
	if state != nil {
		ev.Modifiers = state.Keyboard.Modifiers()
		if m := state.NativeMouse(); m != nil {
			g := m.Position()
			local := Project(state, n).Mouse
			l := local.Position()
			d := local.Delta()
			ev.GlobalX, ev.GlobalY = g.X, g.Y
			ev.LocalX, ev.LocalY = l.X, l.Y
			ev.DeltaX, ev.DeltaY = d.X, d.Y
			ev.Wheel = m.WheelDelta()
		}
	}
	im.store.EmitEvent(ev)
}
