package rowan

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestInjectClick(t *testing.T) {
	f := newInputFixture(t, DefaultConfig())
	f.box("box", f.tree.Root(), 0, 0, 100, 100)

	f.im.InjectClick(50, 50)
	if f.im.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", f.im.Pending())
	}

	// Frame 1: press
	f.im.Update()
	if f.im.Pending() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", f.im.Pending())
	}
	if len(f.only("click")) != 0 {
		t.Error("click should not fire on press frame")
	}

	// Frame 2: release → click fires
	f.im.Update()
	if len(f.only("click")) != 1 {
		t.Error("click should fire on release frame")
	}
}

func TestInjectDrag(t *testing.T) {
	f := newInputFixture(t, DefaultConfig())

	f.im.InjectDrag(10, 10, 70, 40, 5)
	if f.im.Pending() != 5 {
		t.Fatalf("expected 5 events, got %d", f.im.Pending())
	}

	want := []Vec2{{10, 10}, {25, 17.5}, {40, 25}, {55, 32.5}, {70, 40}}
	for i, w := range want {
		f.im.Update()
		m := f.im.State().Mouse
		assertVec(t, "position", m.Position(), w)
		if held := m.IsPressed(MouseButtonLeft); held != (i < len(want)-1) {
			t.Errorf("frame %d: left held = %v", i, held)
		}
	}
}

func TestInjectDrag_MinFrames(t *testing.T) {
	f := newInputFixture(t, DefaultConfig())
	f.im.InjectDrag(0, 0, 100, 100, 0)
	if f.im.Pending() != 2 {
		t.Errorf("expected 2 events (press+release), got %d", f.im.Pending())
	}
}

func TestInjectKeys(t *testing.T) {
	f := newInputFixture(t, DefaultConfig())

	f.im.InjectKeyPress(ebiten.KeyShift)
	f.im.InjectKeyPress(ebiten.KeyA)
	f.im.InjectKeyRelease(ebiten.KeyShift)

	f.im.Update()
	f.im.Update()
	kb := f.im.State().Keyboard
	if !kb.IsPressed(ebiten.KeyShift) || !kb.IsPressed(ebiten.KeyA) {
		t.Errorf("keys = %v", kb.Keys())
	}

	f.im.Update()
	kb = f.im.State().Keyboard
	if kb.IsPressed(ebiten.KeyShift) || !kb.IsPressed(ebiten.KeyA) {
		t.Errorf("keys after release = %v", kb.Keys())
	}
}

func TestInjectAdvancesTime(t *testing.T) {
	f := newInputFixture(t, DefaultConfig())
	f.im.InjectMove(1, 1)
	f.im.InjectMove(2, 2)

	f.im.Update()
	t1 := f.im.State().Time
	f.im.Update()
	t2 := f.im.State().Time

	if t1 != injectFrameTime || t2-t1 != injectFrameTime {
		t.Errorf("times = %v, %v; want steps of %v", t1, t2, injectFrameTime)
	}
}

func TestInjectWheelKeepsPosition(t *testing.T) {
	f := newInputFixture(t, DefaultConfig())
	f.im.InjectMove(30, 40)
	f.im.InjectWheel(2)
	f.im.Update()
	f.im.Update()

	m := f.im.State().Mouse
	assertVec(t, "position", m.Position(), Vec2{30, 40})
	if m.WheelDelta() != 2 || m.Delta() != (Vec2{}) {
		t.Errorf("wheel = %v, delta = %v", m.WheelDelta(), m.Delta())
	}
}

func TestInjectQueueOrder(t *testing.T) {
	f := newInputFixture(t, DefaultConfig())

	f.im.InjectPress(10, 20)
	f.im.InjectMove(30, 40)
	f.im.InjectRelease(50, 60)

	q := f.im.injectQueue
	if len(q) != 3 {
		t.Fatalf("expected 3 events, got %d", len(q))
	}
	if q[0].kind != synthPress || q[0].pos != (Vec2{10, 20}) {
		t.Errorf("event 0: %+v", q[0])
	}
	if q[1].kind != synthMove || q[1].pos != (Vec2{30, 40}) {
		t.Errorf("event 1: %+v", q[1])
	}
	if q[2].kind != synthRelease || q[2].pos != (Vec2{50, 60}) {
		t.Errorf("event 2: %+v", q[2])
	}
}

func TestProcessInjectedInput_EmptyQueue(t *testing.T) {
	f := newInputFixture(t, DefaultConfig())
	if f.im.processInjectedInput() {
		t.Error("empty queue should not consume a frame")
	}
}
