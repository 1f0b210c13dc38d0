package profiler

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha2san/void-survivor/game"
)

func TestDropNameCarriesGameLoad(t *testing.T) {
	at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	name := dropName(at, 42.4, game.Snapshot{Wave: 3, Drones: 7, Asteroids: 12, Bullets: 90})
	assert.Equal(t, "drop-20240506-070809-fps42-wave3-d7-a12-b90", name)
}

func TestFrameDropWritesCapturesAndCoolsDown(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profiles")
	p := New(dir)
	p.duration = 10 * time.Millisecond

	require.NoError(t, p.FrameDrop(30, game.Snapshot{Wave: 2}))
	assert.Error(t, p.FrameDrop(30, game.Snapshot{Wave: 2}), "second drop inside the cooldown is refused")

	require.Eventually(t, func() bool { return !p.Busy() }, 5*time.Second, 10*time.Millisecond)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var exts []string
	for _, e := range entries {
		exts = append(exts, filepath.Ext(e.Name()))
	}
	assert.ElementsMatch(t, []string{".prof", ".trace"}, exts)

	assert.Error(t, p.FrameDrop(30, game.Snapshot{}), "still cooling down after the capture finished")
}
