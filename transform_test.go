package rowan

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- computeLocalTransform ---

func TestLocalTransform(t *testing.T) {
	tests := []struct {
		name  string
		setup func(n *Node)
		want  [6]float64
	}{
		{"identity", func(n *Node) {}, [6]float64{1, 0, 0, 1, 0, 0}},
		{"translation", func(n *Node) { n.X, n.Y = 10, 20 }, [6]float64{1, 0, 0, 1, 10, 20}},
		{"scale", func(n *Node) { n.ScaleX, n.ScaleY = 2, 3 }, [6]float64{2, 0, 0, 3, 0, 0}},
		// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
		{"rot90", func(n *Node) { n.Rotation = math.Pi / 2 }, [6]float64{0, 1, -1, 0, 0, 0}},
		// T(100,200) * T(-16,-16)
		{"pivot", func(n *Node) {
			n.X, n.Y = 100, 200
			n.PivotX, n.PivotY = 16, 16
		}, [6]float64{1, 0, 0, 1, 84, 184}},
		// tan(π/4) = 1
		{"skew", func(n *Node) { n.SkewX = math.Pi / 4 }, [6]float64{1, 0, 1, 1, 0, 0}},
		{"combined", func(n *Node) {
			n.X, n.Y = 50, 100
			n.ScaleX, n.ScaleY = 2, 2
			n.Rotation = math.Pi / 2
		}, [6]float64{0, 2, -2, 0, 50, 100}},
	}
	tree := NewTree()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tree.NewNode("test", nil)
			tt.setup(n)
			assertMatrix(t, tt.name, computeLocalTransform(n), tt.want)
		})
	}
}

// --- multiplyAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	id := identityTransform
	m := [6]float64{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "id*m", multiplyAffine(id, m), m)
	assertMatrix(t, "m*id", multiplyAffine(m, id), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 3}
	got := multiplyAffine(a, b)
	assertMatrix(t, "translations", got, [6]float64{1, 0, 0, 1, 15, 23})
}

// --- invertAffine ---

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	inv := invertAffine(m)
	assertMatrix(t, "m*inv=id", multiplyAffine(m, inv), identityTransform)
}

func TestInvertAffineComplex(t *testing.T) {
	n := NewTree().NewNode("test", nil)
	n.ScaleX = 2
	n.Rotation = math.Pi / 3
	m := computeLocalTransform(n)
	assertMatrix(t, "m*inv=id", multiplyAffine(m, invertAffine(m)), identityTransform)
}

func TestInvertAffineSingularReturnsIdentity(t *testing.T) {
	// ScaleX=0 produces a singular matrix (determinant=0).
	m := [6]float64{0, 0, 0, 1, 10, 20}
	assertMatrix(t, "singular→identity", invertAffine(m), identityTransform)
}

// --- Draw matrix ---

func TestDrawMatrixParentChild(t *testing.T) {
	tree := NewTree()
	parent := tree.NewNode("parent", nil)
	child := tree.NewNode("child", nil)
	tree.Root().AddChild(parent)
	parent.AddChild(child)

	parent.SetPosition(100, 0)
	child.SetPosition(10, 0)

	assertNear(t, "parent.tx", parent.DrawMatrix()[4], 100)
	assertNear(t, "child.tx", child.DrawMatrix()[4], 110)
}

func TestDirtyFlagSkipsClean(t *testing.T) {
	tree := NewTree()
	child := tree.NewNode("child", nil)
	tree.Root().AddChild(child)
	child.SetPosition(10, 0)
	_ = child.DrawMatrix()

	child.X = 999 // no setter: stays clean

	assertNear(t, "child.tx (stale)", child.DrawMatrix()[4], 10)

	child.MarkDirty()
	assertNear(t, "child.tx (refreshed)", child.DrawMatrix()[4], 999)
}

func TestParentChangePropagates(t *testing.T) {
	tree := NewTree()
	parent := tree.NewNode("parent", nil)
	child := tree.NewNode("child", nil)
	tree.Root().AddChild(parent)
	parent.AddChild(child)
	parent.SetPosition(100, 0)
	child.SetPosition(10, 0)
	_ = child.DrawMatrix()

	parent.SetPosition(200, 0)
	if !child.transformDirty {
		t.Fatal("moving the parent should dirty the child")
	}
	assertNear(t, "child.tx (from parent)", child.DrawMatrix()[4], 210)
}

func TestReparentRecomputes(t *testing.T) {
	tree := NewTree()
	a := tree.NewNode("a", nil)
	b := tree.NewNode("b", nil)
	child := tree.NewNode("child", nil)
	tree.Root().AddChild(a)
	tree.Root().AddChild(b)
	a.SetPosition(10, 0)
	b.SetPosition(50, 0)
	a.AddChild(child)
	assertNear(t, "under a", child.DrawMatrix()[4], 10)

	b.AddChild(child)
	assertNear(t, "under b", child.DrawMatrix()[4], 50)

	child.RemoveFromParent()
	assertNear(t, "detached", child.DrawMatrix()[4], 0)
}

func TestDeepHierarchy(t *testing.T) {
	tree := NewTree()
	prev := tree.Root()
	var last *Node
	for i := 0; i < 10; i++ {
		n := tree.NewNode("", nil)
		n.SetPosition(10, 0)
		prev.AddChild(n)
		prev, last = n, n
	}
	assertNear(t, "deep.tx", last.DrawMatrix()[4], 100)
}

// --- LocalPosition / LocalToScreen ---

func TestLocalPositionTranslate(t *testing.T) {
	tree := NewTree()
	n := tree.NewNode("n", nil)
	tree.Root().AddChild(n)
	n.SetPosition(10, 10)

	assertVec(t, "local", n.LocalPosition(Vec2{15, 12}), Vec2{5, 2})
}

func TestLocalPositionRoundtrip(t *testing.T) {
	tree := NewTree()
	parent := tree.NewNode("parent", nil)
	child := tree.NewNode("child", nil)
	tree.Root().AddChild(parent)
	parent.AddChild(child)
	parent.SetPosition(100, 50)
	child.SetPosition(10, 20)
	child.SetScale(2, 3)
	child.SetRotation(math.Pi / 6)

	screen := Vec2{150, 80}
	assertVec(t, "roundtrip", child.LocalToScreen(child.LocalPosition(screen)), screen)
}

func TestLocalPositionNestedScale(t *testing.T) {
	tree := NewTree()
	parent := tree.NewNode("parent", nil)
	child := tree.NewNode("child", nil)
	tree.Root().AddChild(parent)
	parent.AddChild(child)
	parent.SetScale(2, 2)
	child.SetPosition(10, 10) // screen (20, 20)

	assertVec(t, "local", child.LocalPosition(Vec2{30, 40}), Vec2{5, 10})
}

func TestLocalPositionZeroScale(t *testing.T) {
	n := NewTree().NewNode("test", nil)
	n.SetScale(0, 0)

	// Singular: the inverse falls back to identity.
	assertVec(t, "local", n.LocalPosition(Vec2{100, 200}), Vec2{100, 200})
}

// --- Contains ---

func TestNodeContains(t *testing.T) {
	tree := NewTree()
	n := tree.NewNode("box", nil)
	tree.Root().AddChild(n)
	n.SetPosition(10, 10)
	n.SetSize(20, 10)

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"inside", Vec2{15, 12}, true},
		{"top-left edge", Vec2{10, 10}, true},
		{"bottom-right edge", Vec2{30, 20}, true},
		{"left of", Vec2{9.9, 12}, false},
		{"below", Vec2{15, 20.1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestNodeContainsRotated(t *testing.T) {
	tree := NewTree()
	n := tree.NewNode("box", nil)
	tree.Root().AddChild(n)
	n.SetSize(10, 10)
	n.SetRotation(math.Pi / 2) // local +x maps to screen +y

	if !n.Contains(Vec2{-5, 5}) {
		t.Error("(-5, 5) should be inside the rotated box")
	}
	if n.Contains(Vec2{5, 5}) {
		t.Error("(5, 5) should be outside the rotated box")
	}
}

func TestNodeContainsHitShape(t *testing.T) {
	tree := NewTree()
	n := tree.NewNode("circle", nil)
	tree.Root().AddChild(n)
	n.SetPosition(100, 100)
	n.SetSize(50, 50)
	n.HitShape = HitCircle{CenterX: 0, CenterY: 0, Radius: 10}

	if !n.Contains(Vec2{95, 95}) {
		t.Error("point inside the circle should hit")
	}
	if n.Contains(Vec2{140, 140}) {
		t.Error("HitShape should replace the draw rectangle")
	}
}

// --- Setters ---

func TestSettersDirty(t *testing.T) {
	n := NewTree().NewNode("test", nil)
	setters := []struct {
		name string
		fn   func()
	}{
		{"SetPosition", func() { n.SetPosition(1, 2) }},
		{"SetScale", func() { n.SetScale(2, 2) }},
		{"SetRotation", func() { n.SetRotation(1) }},
		{"SetSkew", func() { n.SetSkew(0.1, 0.2) }},
		{"SetPivot", func() { n.SetPivot(5, 5) }},
		{"MarkDirty", func() { n.MarkDirty() }},
	}
	for _, s := range setters {
		_ = n.DrawMatrix()
		if n.transformDirty {
			t.Fatal("DrawMatrix should clear dirty")
		}
		s.fn()
		if !n.transformDirty {
			t.Errorf("%s should set dirty", s.name)
		}
	}
}

// --- Benchmarks ---

func BenchmarkComputeLocalTransform(b *testing.B) {
	n := NewTree().NewNode("bench", nil)
	n.X = 100
	n.Y = 200
	n.ScaleX = 2
	n.ScaleY = 3
	n.Rotation = 0.5
	n.PivotX = 16
	n.PivotY = 16
	b.ReportAllocs()
	for b.Loop() {
		_ = computeLocalTransform(n)
	}
}

func BenchmarkLocalPositionDirty(b *testing.B) {
	tree := NewTree()
	prev := tree.Root()
	var leaf *Node
	for i := 0; i < 8; i++ {
		n := tree.NewNode("", nil)
		n.SetPosition(1, 1)
		prev.AddChild(n)
		prev, leaf = n, n
	}
	b.ReportAllocs()
	for b.Loop() {
		tree.Root().MarkDirty()
		_ = leaf.LocalPosition(Vec2{50, 50})
	}
}
