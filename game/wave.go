package game

// WaveDirector tracks the current wave and spawns enemies
type WaveDirector struct {
	Wave           int
	EnemiesToSpawn int // kills required to clear the wave
}

// NewWaveDirector starts at the first wave
func NewWaveDirector() WaveDirector {
	return WaveDirector{Wave: StartingWave, EnemiesToSpawn: StartingEnemyQuota}
}

// Difficulty scales spawn rates and asteroid speed with the wave number
func (w *WaveDirector) Difficulty() float64 {
	return TimeDifficulty * (1 + float64(w.Wave)*WaveDifficultyStep)
}

// checkCompletion advances the wave once enough drones are destroyed. It
// reports whether a wave was cleared.
func (w *WaveDirector) checkCompletion(bounds Bounds, ctx *passContext) bool {
	if ctx.tally.Kills < w.EnemiesToSpawn {
		return false
	}

	w.Wave++
	ctx.tally.Kills = 0
	w.EnemiesToSpawn = QuotaBase + w.Wave*QuotaPerWave
	ctx.tally.Score += w.Wave * ScoreWaveMultiplier
	ctx.shake.Trigger(ShakeWaveCleared)

	center := bounds.Center()
	ctx.events.Push(Event{Kind: EventWaveComplete, Pos: center, Wave: w.Wave})
	ctx.events.Push(Explosion(center, ColorGold, WaveBurstParticles))
	return true
}

// spawn rolls for a new asteroid and a new drone
func (w *WaveDirector) spawn(world *World, bounds Bounds, rng Rand) {
	difficulty := w.Difficulty()

	if rng.Float64() < difficulty/AsteroidSpawnDivisor {
		world.Asteroids = append(world.Asteroids, NewAsteroid(rng, bounds, difficulty))
	}

	if rng.Float64() < difficulty/DroneSpawnDivisor && world.LiveDrones() < DroneCapBase+w.Wave {
		kind := RandomDroneKind(rng)
		world.Drones = append(world.Drones, NewDrone(rng, bounds, kind, w.Wave, difficulty))
	}
}
