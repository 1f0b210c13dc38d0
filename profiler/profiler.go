package profiler

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/ha2san/void-survivor/game"
)

// capture is one recorder the profiler runs for a frame drop
type capture struct {
	ext   string
	start func(io.Writer) error
	stop  func()
}

var captures = []capture{
	{ext: ".cpu.prof", start: pprof.StartCPUProfile, stop: pprof.StopCPUProfile},
	{ext: ".trace", start: trace.Start, stop: trace.Stop},
}

// Profiler records a CPU profile and an execution trace when the frame rate
// drops, tagged with the game state at the moment of the drop
type Profiler struct {
	dir      string
	cooldown time.Duration
	duration time.Duration

	mu     sync.Mutex
	busy   bool
	lastAt time.Time
}

// New creates a profiler writing into dir
func New(dir string) *Profiler {
	return &Profiler{
		dir:      dir,
		cooldown: 10 * time.Second,
		duration: 5 * time.Second,
	}
}

// FrameDrop starts a background capture for a drop to fps while the game is
// in the snapshot's state. It refuses while busy or cooling down.
func (p *Profiler) FrameDrop(fps float64, snap game.Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.busy {
		return errors.New("capture already running")
	}
	if since := time.Since(p.lastAt); since < p.cooldown {
		return errors.Errorf("capture on cooldown (%v since last)", since.Round(time.Second))
	}
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return errors.Wrap(err, "create profiles dir")
	}

	p.busy = true
	p.lastAt = time.Now()
	base := filepath.Join(p.dir, dropName(p.lastAt, fps, snap))

	go p.run(base, fps, snap)
	return nil
}

// Busy reports whether a capture is in progress
func (p *Profiler) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy
}

// dropName labels a capture with the wave and entity load that caused it
func dropName(at time.Time, fps float64, snap game.Snapshot) string {
	return fmt.Sprintf("drop-%s-fps%.0f-wave%d-d%d-a%d-b%d",
		at.Format("20060102-150405"), fps, snap.Wave, snap.Drones, snap.Asteroids, snap.Bullets)
}

func (p *Profiler) run(base string, fps float64, snap game.Snapshot) {
	defer func() {
		p.mu.Lock()
		p.busy = false
		p.mu.Unlock()
	}()

	var wg sync.WaitGroup
	for _, c := range captures {
		wg.Add(1)
		go func(c capture) {
			defer wg.Done()
			if err := record(base+c.ext, c, p.duration); err != nil {
				log.Printf("profiler: %v", err)
			}
		}(c)
	}
	wg.Wait()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("profiler: %.0f FPS in wave %d (session %s, %d drones, %d asteroids, %d bullets, %d missiles)",
		fps, snap.Wave, snap.SessionID, snap.Drones, snap.Asteroids, snap.Bullets, snap.Missiles)
	log.Printf("profiler: heap=%d KB gc=%d, inspect with go tool pprof -http=:8080 %s", m.HeapAlloc/1024, m.NumGC, base+captures[0].ext)
}

func record(path string, c capture, d time.Duration) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	if err := c.start(f); err != nil {
		return errors.Wrapf(err, "start %s", c.ext)
	}
	time.Sleep(d)
	c.stop()
	return nil
}
