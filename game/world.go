package game

// World holds the entity pools. Each pool is a plain slice; resolution passes
// swap-remove from them and Cleanup purges whatever is no longer alive.
type World struct {
	Asteroids []Asteroid
	Drones    []Drone

	// Bullets holds both player and drone bullets, told apart by Hostile
	Bullets []Bullet

	PowerUps []PowerUp
}

// NewWorld creates an empty world with preallocated pools
func NewWorld() *World {
	return &World{
		Asteroids: make([]Asteroid, 0, 64),
		Drones:    make([]Drone, 0, 16),
		Bullets:   make([]Bullet, 0, 256),
		PowerUps:  make([]PowerUp, 0, 16),
	}
}

// Clear empties every pool, keeping capacity
func (w *World) Clear() {
	w.Asteroids = w.Asteroids[:0]
	w.Drones = w.Drones[:0]
	w.Bullets = w.Bullets[:0]
	w.PowerUps = w.PowerUps[:0]
}

// Cleanup drops every entity whose liveness predicate fails
func (w *World) Cleanup(bounds Bounds) {
	w.Asteroids = keepAlive(w.Asteroids, func(a *Asteroid) bool { return a.Alive(bounds) })
	w.Drones = keepAlive(w.Drones, func(d *Drone) bool { return d.Alive(bounds) })
	w.Bullets = keepAlive(w.Bullets, func(b *Bullet) bool { return b.Alive(bounds) })
	w.PowerUps = keepAlive(w.PowerUps, func(p *PowerUp) bool { return p.Alive(bounds) })
}

// LiveDrones counts drones with hit points left
func (w *World) LiveDrones() int {
	n := 0
	for i := range w.Drones {
		if !w.Drones[i].Dead() {
			n++
		}
	}
	return n
}

// keepAlive filters s in place, preserving order
func keepAlive[T any](s []T, alive func(*T) bool) []T {
	out := s[:0]
	for i := range s {
		if alive(&s[i]) {
			out = append(out, s[i])
		}
	}
	clear(s[len(out):])
	return out
}
