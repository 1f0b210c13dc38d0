package client

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ha2san/void-survivor/game"
)

// Bindings maps each logical control to the keys that trigger it
type Bindings map[game.Control][]ebiten.Key

// DefaultBindings returns the standard keyboard layout
func DefaultBindings() Bindings {
	return Bindings{
		game.ControlShoot:        {ebiten.KeySpace},
		game.ControlShield:       {ebiten.KeyE},
		game.ControlReverseBoost: {ebiten.KeyR},
		game.ControlSlowMo:       {ebiten.KeyS},
		game.ControlMissile:      {ebiten.KeyF},
		game.ControlLaser:        {ebiten.KeyL},
		game.ControlTurnLeft:     {ebiten.KeyArrowLeft, ebiten.KeyA},
		game.ControlTurnRight:    {ebiten.KeyArrowRight, ebiten.KeyD},
		game.ControlThrust:       {ebiten.KeyArrowUp, ebiten.KeyW},
		game.ControlReverse:      {ebiten.KeyArrowDown},
		game.ControlStart:        {ebiten.KeyEnter},
		game.ControlPause:        {ebiten.KeyP},
		game.ControlMenu:         {ebiten.KeyEscape},
	}
}

// Keyboard provides game controls from the ebiten keyboard state
type Keyboard struct {
	bindings Bindings
}

// NewKeyboard creates a keyboard with the given bindings, or the defaults when nil
func NewKeyboard(bindings Bindings) *Keyboard {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Keyboard{bindings: bindings}
}

// Held reports whether any key bound to c is down
func (k *Keyboard) Held(c game.Control) bool {
	for _, key := range k.bindings[c] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// Pressed reports whether any key bound to c went down this tick
func (k *Keyboard) Pressed(c game.Control) bool {
	for _, key := range k.bindings[c] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// KeyName returns a short label for the first key bound to c
func (k *Keyboard) KeyName(c game.Control) string {
	keys := k.bindings[c]
	if len(keys) == 0 {
		return "-"
	}
	return keys[0].String()
}

// fullscreenToggled reports a fresh Alt+Enter chord
func fullscreenToggled() bool {
	alt := ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	return alt && inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}
