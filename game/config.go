package game

import (
	"io"
	"log"

	"github.com/pkg/errors"
)

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the playfield width in pixels
	ScreenWidth int

	// ScreenHeight is the playfield height in pixels
	ScreenHeight int

	// TickRate is the fixed number of ticks per second used by headless runs
	TickRate int

	// MaxDeltaTime clamps a single frame's wall-clock delta in seconds
	MaxDeltaTime float64

	// Seed feeds the default random source
	Seed int64

	// Logger receives lifecycle lines; nil discards them
	Logger *log.Logger
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  800,
		ScreenHeight: 600,
		TickRate:     60,
		MaxDeltaTime: 0.1,
		Seed:         1,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return errors.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.TickRate <= 0 {
		return errors.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	if c.MaxDeltaTime <= 0 {
		return errors.Errorf("max delta time must be positive, got %f", c.MaxDeltaTime)
	}
	return nil
}

// TickDuration returns the fixed step in seconds.
func (c Config) TickDuration() float64 {
	return 1.0 / float64(c.TickRate)
}

// ClampDelta bounds a wall-clock delta to [0, MaxDeltaTime].
func (c Config) ClampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > c.MaxDeltaTime {
		return c.MaxDeltaTime
	}
	return dt
}

func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.New(io.Discard, "", 0)
}

// Viewport answers the ambient screen-size queries.
type Viewport interface {
	Width() float64
	Height() float64
}

// FixedViewport is a Viewport with constant dimensions.
type FixedViewport struct {
	W, H float64
}

// ViewportOf returns the fixed viewport described by a config.
func ViewportOf(c Config) FixedViewport {
	return FixedViewport{W: float64(c.ScreenWidth), H: float64(c.ScreenHeight)}
}

func (v FixedViewport) Width() float64  { return v.W }
func (v FixedViewport) Height() float64 { return v.H }
