package rowan

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	node := NewTree().NewNode("pos", nil)
	node.X = 10
	node.Y = 20

	g := TweenPosition(node, 100, 200, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.X-100) > 0.5 {
		t.Errorf("X = %f, want ~100", node.X)
	}
	if math.Abs(node.Y-200) > 0.5 {
		t.Errorf("Y = %f, want ~200", node.Y)
	}
}

func TestTweenScaleReachesTarget(t *testing.T) {
	node := NewTree().NewNode("scale", nil)

	g := TweenScale(node, 2.0, 3.0, 0.5, ease.Linear)
	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.ScaleX-2.0) > 0.01 || math.Abs(node.ScaleY-3.0) > 0.01 {
		t.Errorf("Scale = (%f, %f), want ~(2, 3)", node.ScaleX, node.ScaleY)
	}
}

func TestTweenRotationInterpolates(t *testing.T) {
	node := NewTree().NewNode("rot", nil)

	g := TweenRotation(node, math.Pi, 1.0, ease.Linear)
	g.Update(0.5)

	if g.Done {
		t.Error("should not be done at half time")
	}
	if math.Abs(node.Rotation-math.Pi/2) > 0.01 {
		t.Errorf("Rotation = %f, want ~π/2", node.Rotation)
	}
}

func TestTweenMovesHitArea(t *testing.T) {
	f := newInputFixture(t, DefaultConfig())
	b := f.box("box", f.tree.Root(), 0, 0, 10, 10)
	_ = b.DrawMatrix()

	g := TweenPosition(b, 100, 0, 1.0, ease.Linear)
	g.Update(1.0)

	if f.im.hitTest(Vec2{105, 5}) != b {
		t.Error("hit testing should follow the tweened position")
	}
}

func TestTweenStopsOnDisposedNode(t *testing.T) {
	node := NewTree().NewNode("gone", nil)
	g := TweenPosition(node, 100, 100, 1.0, ease.Linear)

	node.Dispose()
	g.Update(0.5)

	if !g.Done {
		t.Error("tween should stop once its node is disposed")
	}
	if node.X != 0 {
		t.Errorf("X = %v, disposed node should not be written", node.X)
	}
}

func TestTweensRemovesFinished(t *testing.T) {
	tree := NewTree()
	a := tree.NewNode("a", nil)
	b := tree.NewNode("b", nil)

	var ts Tweens
	ts.Add(TweenPosition(a, 10, 10, 0.5, ease.Linear))
	ts.Add(TweenPosition(b, 10, 10, 1.0, ease.Linear))
	ts.Add(nil)
	if ts.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ts.Len())
	}

	ts.Update(0.5)
	if ts.Len() != 1 {
		t.Errorf("Len = %d after the short tween ends, want 1", ts.Len())
	}
	ts.Update(0.5)
	if ts.Len() != 0 {
		t.Errorf("Len = %d, want 0", ts.Len())
	}
}
