package rowan

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenButtons maps rowan buttons to Ebitengine buttons.
var ebitenButtons = [numMouseButtons]ebiten.MouseButton{
	MouseButtonLeft:    ebiten.MouseButtonLeft,
	MouseButtonRight:   ebiten.MouseButtonRight,
	MouseButtonMiddle:  ebiten.MouseButtonMiddle,
	MouseButtonBack:    ebiten.MouseButton3,
	MouseButtonForward: ebiten.MouseButton4,
}

// EbitenSource polls the Ebitengine mouse, wheel and keyboard once per tick.
// It must be polled from the game's Update.
type EbitenSource struct {
	ticks   int64
	keysBuf []ebiten.Key
}

// NewEbitenSource returns a source reading live Ebitengine input.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Poll implements Source.
func (s *EbitenSource) Poll(prev *InputState) *InputState {
	s.ticks++
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}

	mx, my := ebiten.CursorPosition()
	var pressed MouseButtons
	for b, eb := range ebitenButtons {
		if ebiten.IsMouseButtonPressed(eb) {
			pressed = pressed.With(MouseButton(b))
		}
	}
	_, wheel := ebiten.Wheel()

	s.keysBuf = inpututil.AppendPressedKeys(s.keysBuf[:0])

	return &InputState{
		Keyboard: NewKeyboardState(s.keysBuf...),
		Mouse:    nextPointer(prev.NativeMouse(), Vec2{float64(mx), float64(my)}, pressed, wheel),
		Time:     time.Duration(s.ticks) * time.Second / time.Duration(tps),
	}
}
