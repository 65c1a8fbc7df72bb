package rowan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to two transform fields of a Node together. Moving a
// node changes what lies under the pointer, so every step marks the node's
// subtree dirty and the next Dispatch hit-tests against the new placement.
//
// Stops on its own once the node is disposed.
type TweenGroup struct {
	tweens [2]*gween.Tween
	fields [2]*float64
	count  int
	target *Node
	Done   bool
}

func newTweenGroup(n *Node) *TweenGroup {
	return &TweenGroup{target: n}
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// Update advances the group by dt seconds.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target == nil || g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.target.MarkDirty()
}

// TweenPosition animates node.X and node.Y to (toX, toY).
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node)
	g.add(&node.X, toX, duration, fn)
	g.add(&node.Y, toY, duration, fn)
	return g
}

// TweenScale animates node.ScaleX and node.ScaleY.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node)
	g.add(&node.ScaleX, toSX, duration, fn)
	g.add(&node.ScaleY, toSY, duration, fn)
	return g
}

// TweenRotation animates node.Rotation (radians).
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node)
	g.add(&node.Rotation, to, duration, fn)
	return g
}

// Tweens runs a set of groups, dropping each one when it finishes.
type Tweens struct {
	active []*TweenGroup
}

// Add starts running g. A nil group is ignored.
func (t *Tweens) Add(g *TweenGroup) {
	if g != nil {
		t.active = append(t.active, g)
	}
}

// Len returns the number of groups still running.
func (t *Tweens) Len() int {
	return len(t.active)
}

// Update advances every running group by dt seconds.
func (t *Tweens) Update(dt float32) {
	kept := t.active[:0]
	for _, g := range t.active {
		g.Update(dt)
		if !g.Done {
			kept = append(kept, g)
		}
	}
	clear(t.active[len(kept):])
	t.active = kept
}
