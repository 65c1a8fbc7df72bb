// Package rowan is the input dispatch core of a retained-mode 2D scene graph
// for [Ebitengine].
//
// Rowan routes pointer and keyboard input to the nodes of a scene tree. It
// converts screen coordinates into each node's local space, delivers events
// through handlers that may consume them, and keeps a single keyboard focus
// holder per dispatcher.
//
// # Quick start
//
//	tree := rowan.NewTree()
//	im := rowan.NewInputManager(tree.Root(), rowan.DefaultConfig())
//	im.SetSource(rowan.NewEbitenSource())
//
//	btn := tree.NewNode("ok", rowan.Funcs{
//		Click: func(s *rowan.InputState) bool {
//			p := s.Mouse.Position() // local to btn
//			log.Println("clicked at", p)
//			return true
//		},
//	})
//	btn.SetPosition(100, 40)
//	btn.SetSize(80, 24)
//	tree.Root().AddChild(btn)
//
//	// in ebiten.Game.Update:
//	im.Update()
//
// # Scene tree
//
// Nodes live in a [Tree] arena and refer to their parent and children by
// [NodeID]. Each node has a local transform (position, scale, rotation, skew,
// pivot) and a local draw rectangle {0, 0, Width, Height}. The draw matrix
// and its inverse are recomputed lazily after any transform change on the
// node or an ancestor.
//
// # Input state and projection
//
// An [InputState] is an immutable snapshot of keyboard, mouse and time. The
// dispatcher holds it in screen space. Before a handler sees it, [Project]
// wraps it in a view whose positions are re-derived through the receiving
// node's inverse draw matrix. Delta is computed after that transform, so
// under rotation or a changing scale it only approximates the localized
// screen delta.
//
// # Events
//
// Every event has a trigger on [Node] (TriggerClick, TriggerKeyDown, ...)
// and a matching method on [Handler] (OnClick, OnKeyDown, ...). Handlers
// return true to consume an event, which stops it bubbling to ancestors.
// Embed [BaseHandler] to get the ignore-everything defaults, or use [Funcs]
// to supply individual callbacks.
//
// # Focus
//
// Each [InputManager] is the focus authority for the nodes under it. A node
// finds its dispatcher when it is attached. [Node.RequestFocus] asks the
// node's OnFocus handler first when permission checking is on, and
// [InputManager.ChangeFocus] always removes the old holder from authority
// before telling it, so a focus-lost handler already reads HasFocus false.
// Left-button presses move focus to the first accepting node under the
// pointer. Keyboard events go to the focus holder and bubble up.
//
// # Configuration
//
// [Config] tunes drag dead zone, double-click time and key repeat. It can be
// loaded from TOML with [LoadConfig].
//
// # Testing
//
// Input can be injected without a window: [InputManager.InjectClick],
// [InputManager.InjectDrag], [InputManager.InjectKeyTap] and friends queue
// one snapshot per Update. [LoadTestScript] sequences the same actions from
// JSON.
//
// # ECS integration
//
// Set an [EntityStore] with [InputManager.SetEntityStore] to forward every
// delivered event of nodes with a non-zero EntityID. The rowan/ecs module
// provides a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package rowan
