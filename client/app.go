package client

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/ha2san/void-survivor/effects"
	"github.com/ha2san/void-survivor/game"
	"github.com/ha2san/void-survivor/profiler"
)

const (
	fpsWindow        = 0.5 // seconds between FPS samples
	fpsDropThreshold = 50.0
	fpsStartupGrace  = 3 * time.Second
	windowedRatio    = 0.9
)

// Options configures the windowed client
type Options struct {
	Config      game.Config
	ProfileDir  string // empty disables frame-drop profiling
	AttractDemo bool   // run an autopilot game behind the menu
}

// App implements ebiten.Game around a scene shell
type App struct {
	cfg      game.Config
	keyboard *Keyboard
	viewport *windowViewport

	shell   *game.Shell
	demo    *game.Simulation
	pilot   *game.Autopilot
	effects *effects.System
	scene   game.Scene

	renderer *Renderer
	hud      *HUD
	stars    *Starfield
	debug    DebugState

	profiler       *profiler.Profiler
	fps            float64
	fpsFrames      int
	fpsTimer       float64
	startTime      time.Time
	lastUpdateTime time.Time
}

// windowViewport reports the current layout size to the simulations
type windowViewport struct {
	w, h float64
}

func (v *windowViewport) Width() float64  { return v.w }
func (v *windowViewport) Height() float64 { return v.h }

// NewApp builds the client and its simulations
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "client config")
	}

	keyboard := NewKeyboard(nil)
	viewport := &windowViewport{w: float64(cfg.ScreenWidth), h: float64(cfg.ScreenHeight)}

	sim, err := game.NewSimulation(cfg, keyboard, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return nil, errors.Wrap(err, "create simulation")
	}
	sim.SetViewport(viewport)

	app := &App{
		cfg:            cfg,
		keyboard:       keyboard,
		viewport:       viewport,
		shell:          game.NewShell(sim, keyboard),
		effects:        effects.NewSystem(rand.New(rand.NewSource(cfg.Seed + 1))),
		scene:          game.SceneMenu,
		renderer:       NewRenderer(),
		hud:            NewHUD(keyboard),
		stars:          NewStarfield(cfg.Seed, viewport.w, viewport.h),
		fps:            60,
		startTime:      time.Now(),
		lastUpdateTime: time.Now(),
	}

	if opts.AttractDemo {
		demoCfg := cfg
		demoCfg.Logger = nil
		pilot := game.NewAutopilot()
		demo, err := game.NewSimulation(demoCfg, pilot, rand.New(rand.NewSource(cfg.Seed+2)))
		if err != nil {
			return nil, errors.Wrap(err, "create attract demo")
		}
		demo.SetViewport(viewport)
		app.demo = demo
		app.pilot = pilot
	}
	if opts.ProfileDir != "" {
		app.profiler = profiler.New(opts.ProfileDir)
	}

	return app, nil
}

// Update advances the shell by the measured frame time
func (a *App) Update() error {
	now := time.Now()
	dt := a.cfg.ClampDelta(now.Sub(a.lastUpdateTime).Seconds())
	a.lastUpdateTime = now

	a.handleDebugKeys()
	a.trackFPS(dt)

	if fullscreenToggled() {
		a.toggleFullscreen()
		return nil
	}

	prev := a.scene
	a.scene = a.shell.Update(dt)
	sim := a.shell.Simulation()

	// A fresh session or the menu starts with a clean effects layer
	if a.scene != prev && ((a.scene == game.ScenePlaying && prev != game.ScenePaused) || a.scene == game.SceneMenu) {
		a.effects.Clear()
	}

	switch a.scene {
	case game.SceneMenu:
		a.updateDemo(dt)
	case game.ScenePaused:
		return nil
	case game.ScenePlaying:
		a.effects.Process(sim.Events())
	case game.SceneGameOver:
		a.effects.Process(sim.Events())
		sim.Shake().Update(dt)
	}

	a.effects.Update(dt)
	a.stars.Update(dt, a.active().Ship().Vel, a.active().Bounds())
	return nil
}

// updateDemo runs the autopilot game shown behind the menu, restarting it
// whenever it ends
func (a *App) updateDemo(dt float64) {
	if a.demo == nil {
		return
	}
	if a.demo.Over() {
		a.demo.Reset()
		a.effects.Clear()
	}
	a.pilot.Update(a.demo)
	a.demo.Advance(dt)
	a.effects.Process(a.demo.Events())
}

// active returns the simulation currently on screen
func (a *App) active() *game.Simulation {
	if a.scene == game.SceneMenu && a.demo != nil {
		return a.demo
	}
	return a.shell.Simulation()
}

func (a *App) handleDebugKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.debug.ShowOverlay = !a.debug.ShowOverlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		a.debug.ShowHitboxes = !a.debug.ShowHitboxes
	}
}

// trackFPS samples the frame rate and captures a profile on a sustained drop
func (a *App) trackFPS(dt float64) {
	a.fpsTimer += dt
	a.fpsFrames++
	if a.fpsTimer < fpsWindow {
		return
	}
	a.fps = float64(a.fpsFrames) / a.fpsTimer
	a.fpsFrames = 0
	a.fpsTimer = 0

	if a.profiler == nil || a.fps >= fpsDropThreshold || time.Since(a.startTime) < fpsStartupGrace {
		return
	}
	if err := a.profiler.FrameDrop(a.fps, a.active().Snapshot()); err == nil {
		log.Printf("frame drop detected (%.0f FPS), capturing profile", a.fps)
	}
}

func (a *App) toggleFullscreen() {
	full := ebiten.IsFullscreen()
	ebiten.SetFullscreen(!full)
	if full {
		mw, mh := ebiten.ScreenSizeInFullscreen()
		ebiten.SetWindowSize(int(float64(mw)*windowedRatio), int(float64(mh)*windowedRatio))
	}
}

// Draw renders the active simulation and the overlay for the current scene
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	sim := a.active()
	offset := a.effects.ShakeOffset(*sim.Shake())

	a.stars.Draw(screen, offset)
	a.renderer.Render(screen, sim, a.effects, offset)

	switch a.scene {
	case game.SceneMenu:
		a.hud.DrawMenu(screen, a.shell.Simulation().HighScore())
	case game.ScenePlaying:
		a.hud.DrawPlaying(screen, sim)
		a.hud.DrawBanner(screen, a.effects.Banner())
	case game.ScenePaused:
		a.hud.DrawPlaying(screen, sim)
		a.hud.DrawPaused(screen, sim.Score())
	case game.SceneGameOver:
		a.hud.DrawGameOver(screen, sim, a.effects)
	}

	DrawDebug(screen, a.debug, sim, a.fps)
}

// Layout follows the window size so the playfield fills it
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		a.viewport.w = float64(outsideWidth)
		a.viewport.h = float64(outsideHeight)
	}
	return outsideWidth, outsideHeight
}
