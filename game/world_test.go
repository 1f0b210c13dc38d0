package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorldCleanupKeepsOrder(t *testing.T) {
	w := NewWorld()
	w.Bullets = append(w.Bullets,
		NewBullet(V(1, 1), Vec2{}, 3, 1, false),
		NewBullet(V(2, 2), Vec2{}, 3, 0, false),
		NewBullet(V(3, 3), Vec2{}, 3, 1, true),
		NewBullet(V(2000, 3), Vec2{}, 3, 1, true),
	)

	w.Cleanup(testBounds)

	if assert.Len(t, w.Bullets, 2) {
		assert.Equal(t, V(1, 1), w.Bullets[0].Pos)
		assert.Equal(t, V(3, 3), w.Bullets[1].Pos)
	}
}

func TestWorldLiveDronesAndClear(t *testing.T) {
	w := NewWorld()
	w.Drones = append(w.Drones, Drone{HP: 1}, Drone{HP: 0}, Drone{HP: 3})
	w.Asteroids = append(w.Asteroids, Asteroid{Radius: 20})

	assert.Equal(t, 2, w.LiveDrones())

	w.Clear()
	assert.Empty(t, w.Drones)
	assert.Empty(t, w.Asteroids)
	assert.Zero(t, w.LiveDrones())
}

func TestBoundsWithin(t *testing.T) {
	assert.True(t, testBounds.Within(V(0, 0), 0.1))
	assert.False(t, testBounds.Within(V(0, 0), 0))
	assert.True(t, testBounds.Within(V(-49, 649), 50))
	assert.False(t, testBounds.Within(V(-49, 650), 50))
	assert.Equal(t, V(400, 300), testBounds.Center())
}

func TestVectorHelpers(t *testing.T) {
	assert.Equal(t, Vec2{}, NormalizeOrZero(Vec2{}))
	assert.InDelta(t, 1, NormalizeOrZero(V(3, 4)).Len(), 1e-12)
	assert.Equal(t, V(0, 1), Perp(V(1, 0)))
	assert.Equal(t, V(5, 10), Lerp(V(0, 0), V(10, 20), 0.5))
	assert.Equal(t, 5.0, Distance(V(0, 0), V(3, 4)))
	assert.Equal(t, 25.0, DistanceSq(V(0, 0), V(3, 4)))
	assert.InDelta(t, 799.5, wrap(-0.5, 800), 1e-12)
	assert.InDelta(t, 0.5, wrap(800.5, 800), 1e-12)
}
