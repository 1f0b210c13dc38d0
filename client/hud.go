package client

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/ha2san/void-survivor/effects"
	"github.com/ha2san/void-survivor/game"
)

const (
	barWidth   = 150
	barHeight  = 10
	hudMarginX = 20
	lineHeight = 18
)

var (
	gray       = color.RGBA{130, 130, 130, 255}
	lightGray  = color.RGBA{200, 200, 200, 255}
	darkGray   = color.RGBA{60, 60, 60, 255}
	yellow     = color.RGBA{253, 249, 0, 255}
	slowColor  = color.RGBA{153, 51, 255, 255}
	boostColor = color.RGBA{204, 51, 204, 255}
	dimColor   = color.RGBA{0, 0, 0, 180}
)

// drawText uses the classic text.Draw signature with the fixed HUD face
func drawText(img *ebiten.Image, s string, x, y int, col color.Color) {
	text.Draw(img, s, basicfont.Face7x13, x, y, col)
}

// drawTextCentered draws s horizontally centred at height y
func drawTextCentered(img *ebiten.Image, s string, y int, col color.Color) {
	w := text.BoundString(basicfont.Face7x13, s).Dx()
	drawText(img, s, (img.Bounds().Dx()-w)/2, y, col)
}

// HUD draws the in-game overlay and the menu, pause and game-over screens
type HUD struct {
	keys *Keyboard
}

// NewHUD creates a HUD labelling controls with the keyboard's bindings
func NewHUD(keys *Keyboard) *HUD {
	return &HUD{keys: keys}
}

// DrawPlaying draws score, energies, lives, combo and weapon state
func (h *HUD) DrawPlaying(screen *ebiten.Image, sim *game.Simulation) {
	ship := sim.Ship()
	w := screen.Bounds().Dx()

	drawText(screen, fmt.Sprintf("SCORE: %d", sim.Score()), hudMarginX, 30, game.ColorWhite)
	drawText(screen, fmt.Sprintf("WAVE: %d  (%d/%d)", sim.Wave(), sim.Kills(), sim.Required()), hudMarginX, 30+lineHeight, gray)
	drawText(screen, fmt.Sprintf("TIME: %.1fs", sim.Elapsed()), hudMarginX, 30+2*lineHeight, lightGray)

	drawBar(screen, hudMarginX, 90, ship.ShieldEnergy.Percent(), game.ColorSkyBlue)
	drawText(screen, "SHIELD", hudMarginX+barWidth+10, 99, game.ColorSkyBlue)

	slow := gray
	if ship.SlowAvailable {
		slow = slowColor
		if ship.SlowActive {
			slow = game.ColorPurple
		}
	}
	drawBar(screen, hudMarginX, 106, ship.SlowEnergy.Percent(), slow)
	drawText(screen, "SLOW-MO", hudMarginX+barWidth+10, 115, slow)

	for i := 0; i < ship.Lives; i++ {
		drawLifeIcon(screen, float32(hudMarginX+10+i*25), 135)
	}

	if sim.Combo() > 1 {
		drawText(screen, fmt.Sprintf("COMBO x%d!", sim.Combo()), w-150, 30, yellow)
	}

	h.drawStatus(screen, sim, w)
	h.drawWeapons(screen, sim)
	h.drawControls(screen)
}

func (h *HUD) drawStatus(screen *ebiten.Image, sim *game.Simulation, w int) {
	ship := sim.Ship()
	x := w - 200
	y := 80
	if ship.SlowActive {
		drawText(screen, fmt.Sprintf("SLOW-MO: %.1fs", ship.SlowEnergy.Remaining), x, y, game.ColorPurple)
		y += lineHeight
	}
	if !ship.RapidFire.Ready() {
		drawText(screen, fmt.Sprintf("RAPID FIRE: %.1fs", ship.RapidFire.Remaining), x, y, game.ColorOrange)
		y += lineHeight
	}
	if !ship.ReverseBoost.Ready() {
		drawText(screen, "REVERSE BOOST!", x, y, boostColor)
		y += lineHeight
	}
	if !ship.Invincible.Ready() {
		drawText(screen, fmt.Sprintf("INVINCIBLE: %.1fs", ship.Invincible.Remaining), x, y, game.ColorGreen)
	}
}

func (h *HUD) drawWeapons(screen *ebiten.Image, sim *game.Simulation) {
	weapons := sim.Weapons()
	drawText(screen, fmt.Sprintf("MISSILE: %d / %d", weapons.MissileAmmo, game.MissileAmmoMax), hudMarginX, 170, game.ColorOrange)
	if !weapons.MissileCooldown.Ready() {
		drawText(screen, fmt.Sprintf("(%.1fs)", weapons.MissileCooldown.Remaining), hudMarginX+130, 170, gray)
	}

	laser := sim.Laser()
	label := game.ColorLaser
	if !laser.CanFire() {
		label = gray
	}
	drawText(screen, "LASER:", hudMarginX, 170+lineHeight, label)
	switch {
	case laser.Active:
		drawText(screen, "ACTIVE", hudMarginX+50, 170+lineHeight, game.ColorLaser)
	case !laser.Cooldown.Ready():
		drawText(screen, fmt.Sprintf("RECHARGING %.1fs", laser.Cooldown.Remaining), hudMarginX+50, 170+lineHeight, gray)
	default:
		drawText(screen, "READY", hudMarginX+50, 170+lineHeight, game.ColorGreen)
	}
}

func (h *HUD) drawControls(screen *ebiten.Image) {
	line := fmt.Sprintf("%s:PAUSE | %s:SHIELD | %s:BOOST | %s:SLOW-MO | %s:MISSILE | %s:LASER",
		h.keys.KeyName(game.ControlPause),
		h.keys.KeyName(game.ControlShield),
		h.keys.KeyName(game.ControlReverseBoost),
		h.keys.KeyName(game.ControlSlowMo),
		h.keys.KeyName(game.ControlMissile),
		h.keys.KeyName(game.ControlLaser),
	)
	drawTextCentered(screen, line, screen.Bounds().Dy()-12, gray)
}

// DrawMenu draws the title screen over the attract demo
func (h *HUD) DrawMenu(screen *ebiten.Image, highScore int) {
	dim(screen, 0.5)
	y := screen.Bounds().Dy()
	drawTextCentered(screen, "VOID SURVIVOR", y*30/100, yellow)
	drawTextCentered(screen, "CONTROLS:", y*45/100, game.ColorWhite)
	drawTextCentered(screen, "LEFT/RIGHT: turn | UP: thrust | DOWN: reverse", y*50/100, gray)
	drawTextCentered(screen, "SPACE: shoot | E: shield | R: reverse boost", y*55/100, gray)
	drawTextCentered(screen, "S: slow-motion (limited) | P: pause | ESC: menu", y*60/100, gray)
	drawTextCentered(screen, "F: homing missile | L: piercing laser", y*65/100, gray)
	drawTextCentered(screen, fmt.Sprintf("HIGH SCORE: %d", highScore), y*75/100, game.ColorGold)
	drawTextCentered(screen, "PRESS [ENTER] TO START", y*85/100, game.ColorGreen)
}

// DrawPaused dims the frame and shows the pause menu
func (h *HUD) DrawPaused(screen *ebiten.Image, score int) {
	dim(screen, 0.7)
	y := screen.Bounds().Dy()
	drawTextCentered(screen, "PAUSED", y*40/100, yellow)
	drawTextCentered(screen, "P: RESUME", y*50/100, game.ColorWhite)
	drawTextCentered(screen, "ESC: MENU", y*55/100, game.ColorWhite)
	drawTextCentered(screen, fmt.Sprintf("SCORE: %d", score), y*60/100, game.ColorGold)
}

// DrawGameOver shows the final score with the red flash
func (h *HUD) DrawGameOver(screen *ebiten.Image, sim *game.Simulation, fx *effects.System) {
	if flash := fx.Flash(); flash > 0 {
		b := screen.Bounds()
		vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), fade(game.ColorRed, flash*0.5), false)
	}
	y := screen.Bounds().Dy()
	drawTextCentered(screen, "MISSION FAILED", y*30/100, game.ColorRed)
	drawTextCentered(screen, fmt.Sprintf("FINAL SCORE: %d", sim.Score()), y*40/100, game.ColorWhite)
	if sim.Score() > 0 && sim.Score() == sim.HighScore() {
		drawTextCentered(screen, "NEW RECORD!", y*45/100, game.ColorGold)
	}
	drawTextCentered(screen, fmt.Sprintf("WAVE REACHED: %d", sim.Wave()), y*50/100, gray)
	drawTextCentered(screen, "ENTER TO RESTART", y*60/100, game.ColorGreen)
	drawTextCentered(screen, "ESC FOR MENU", y*65/100, gray)
}

// DrawBanner shows the effects banner, fading out
func (h *HUD) DrawBanner(screen *ebiten.Image, banner effects.Banner) {
	if banner.Life <= 0 || banner.Text == "" {
		return
	}
	alpha := banner.Life
	if alpha > 1 {
		alpha = 1
	}
	drawTextCentered(screen, banner.Text, screen.Bounds().Dy()/3, fade(game.ColorGold, alpha))
}

func drawBar(screen *ebiten.Image, x, y int, pct float64, clr color.Color) {
	fx, fy := float32(x), float32(y)
	vector.DrawFilledRect(screen, fx, fy, barWidth, barHeight, darkGray, false)
	vector.DrawFilledRect(screen, fx, fy, float32(pct*barWidth), barHeight, clr, false)
	vector.StrokeRect(screen, fx, fy, barWidth, barHeight, 1, game.ColorWhite, false)
}

func drawLifeIcon(screen *ebiten.Image, x, y float32) {
	vector.StrokeLine(screen, x, y-8, x-7, y+6, 2, game.ColorRed, true)
	vector.StrokeLine(screen, x-7, y+6, x+7, y+6, 2, game.ColorRed, true)
	vector.StrokeLine(screen, x+7, y+6, x, y-8, 2, game.ColorRed, true)
}

func dim(screen *ebiten.Image, alpha float64) {
	b := screen.Bounds()
	c := dimColor
	c.A = uint8(255 * alpha)
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}
