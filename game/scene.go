package game

// Scene is the top-level state of the game shell
type Scene int

const (
	SceneMenu Scene = iota
	ScenePlaying
	ScenePaused
	SceneGameOver
)

func (s Scene) String() string {
	switch s {
	case SceneMenu:
		return "menu"
	case ScenePlaying:
		return "playing"
	case ScenePaused:
		return "paused"
	case SceneGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Signals are the shell inputs sampled once per frame
type Signals struct {
	Start    bool
	Pause    bool
	Menu     bool
	GameOver bool
}

// Transition returns the scene that follows s given the frame's signals
func Transition(s Scene, sig Signals) Scene {
	switch s {
	case SceneMenu:
		if sig.Start {
			return ScenePlaying
		}
	case ScenePlaying:
		switch {
		case sig.Pause:
			return ScenePaused
		case sig.Menu:
			return SceneMenu
		case sig.GameOver:
			return SceneGameOver
		}
	case ScenePaused:
		switch {
		case sig.Pause:
			return ScenePlaying
		case sig.Menu:
			return SceneMenu
		}
	case SceneGameOver:
		switch {
		case sig.Start:
			return ScenePlaying
		case sig.Menu:
			return SceneMenu
		}
	}
	return s
}

// Shell owns a simulation and the scene it is shown in
type Shell struct {
	sim      *Simulation
	controls Controls
	scene    Scene
}

// NewShell starts at the menu
func NewShell(sim *Simulation, controls Controls) *Shell {
	return &Shell{sim: sim, controls: controls, scene: SceneMenu}
}

// Update samples the shell controls, applies the scene transition and
// advances the simulation while playing. Entering play from the menu or the
// game-over screen starts a fresh session.
func (sh *Shell) Update(realDt float64) Scene {
	prev := sh.scene
	next := Transition(prev, Signals{
		Start: sh.controls.Pressed(ControlStart),
		Pause: sh.controls.Pressed(ControlPause),
		Menu:  sh.controls.Pressed(ControlMenu),
	})
	if next == ScenePlaying && (prev == SceneMenu || prev == SceneGameOver) {
		sh.sim.Reset()
	}
	sh.scene = next

	if sh.scene == ScenePlaying {
		sh.sim.Advance(realDt)
		if sh.sim.Over() {
			sh.scene = Transition(sh.scene, Signals{GameOver: true})
		}
	}
	return sh.scene
}

// Scene returns the current scene
func (sh *Shell) Scene() Scene {
	return sh.scene
}

// Simulation returns the simulation driven by the shell
func (sh *Shell) Simulation() *Simulation {
	return sh.sim
}
