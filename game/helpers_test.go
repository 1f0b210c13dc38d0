package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// stubRand returns the same value for every draw. 0.99 suppresses spawns and
// power-up drops; 0 forces them.
type stubRand struct {
	v float64
}

func (r stubRand) Float64() float64 { return r.v }

func (r stubRand) Intn(n int) int {
	i := int(r.v * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

var noLuck = stubRand{v: 0.99}

// scriptedControls reports fixed held and pressed sets
type scriptedControls struct {
	held    map[Control]bool
	pressed map[Control]bool
}

func holding(cs ...Control) *scriptedControls {
	s := &scriptedControls{held: map[Control]bool{}, pressed: map[Control]bool{}}
	for _, c := range cs {
		s.held[c] = true
	}
	return s
}

func pressing(cs ...Control) *scriptedControls {
	s := holding()
	for _, c := range cs {
		s.pressed[c] = true
	}
	return s
}

func (s *scriptedControls) Held(c Control) bool    { return s.held[c] }
func (s *scriptedControls) Pressed(c Control) bool { return s.pressed[c] }

var testBounds = Bounds{Width: 800, Height: 600}

type testPass struct {
	ctx    *passContext
	tally  *Tally
	events *EventQueue
	shake  *ScreenShake
	drops  *[]PowerUp
	over   *bool
}

func newTestPass(rng Rand) testPass {
	tally := NewTally()
	events := NewEventQueue()
	shake := &ScreenShake{}
	drops := []PowerUp{}
	over := false
	tp := testPass{tally: &tally, events: events, shake: shake, drops: &drops, over: &over}
	tp.ctx = &passContext{tally: &tally, events: events, shake: shake, rng: rng, drops: &drops, over: &over}
	return tp
}

func drainKinds(q *EventQueue) []EventKind {
	var kinds []EventKind
	q.Drain(func(e Event) { kinds = append(kinds, e.Kind) })
	return kinds
}

func countKind(kinds []EventKind, k EventKind) int {
	n := 0
	for _, kind := range kinds {
		if kind == k {
			n++
		}
	}
	return n
}

func newTestSimulation(t *testing.T, controls Controls) *Simulation {
	t.Helper()
	sim, err := NewSimulation(DefaultConfig(), controls, noLuck)
	require.NoError(t, err)
	return sim
}

// quietShip is a vulnerable ship at the centre of the test bounds
func quietShip() Ship {
	return NewShip(testBounds)
}
