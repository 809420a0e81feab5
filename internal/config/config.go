package config

import (
	"errors"
	"flag"
	"fmt"
)

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Particles - S: snapshot, F3: stats, Esc/Q: quit"
	DefaultTPS   = 60
	MaxTPS       = 240
)

// Field sizing.
const (
	AreaPerParticle = 2000
	MaxParticles    = 400
)

// Particle initialisation ranges. Upper bounds are exclusive.
const (
	MinRadius      = 1.0
	MaxRadius      = 4.0
	MaxSpeed       = 0.5
	MinOpacity     = 0.3
	MaxOpacity     = 0.8
	GlowChance     = 0.3
	BaseColorAlpha = 0.8
)

// Motion.
const (
	PointerRadius   = 150.0
	AttractionSpeed = 0.5
	ReturnSpeed     = 0.02
	TrailLength     = 5
)

// Bodies.
const (
	NearBlur       = 30.0
	NearBlurGain   = 50.0
	NearAlphaGain  = 0.7
	NearRadiusGain = 0.3
	GlowBlur       = 15.0
	NormalAlpha    = 0.7
	TrailAlpha     = 0.1
	TrailWidth     = 0.5
)

// Connections.
const (
	ConnectionDistance  = 150.0
	ConnectionFade      = 0.08
	ConnectionWidth     = 0.3
	ConnectionGlowAlpha = 0.15
	ConnectionGlowWidth = 0.5
)

// Palette holds the particle colors as hex, drawn at BaseColorAlpha.
var Palette = []string{
	"#8b5cf6", // purple
	"#3b82f6", // blue
	"#ec4899", // pink
	"#06b6d4", // cyan
	"#10b981", // green
	"#f59e0b", // yellow
	"#f97316", // orange
}

const (
	ConnectionColor = "#8b5cf6"
	BackgroundColor = "#0b0b1a"
)

// Terminal cell size in virtual pixels. The terminal host lays the field out
// in pixels so every engine constant keeps its meaning.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Config holds the knobs that can be changed from the command line.
type Config struct {
	Width        int
	Height       int
	MaxParticles int
	Seed         uint64 // 0 seeds from the clock
	TPS          int
	Stats        bool
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Default is the stock configuration: the default window, the full cap, 60 TPS.
func Default() Config {
	return Config{
		Width:        WindowWidth,
		Height:       WindowHeight,
		MaxParticles: MaxParticles,
		TPS:          DefaultTPS,
	}
}

// Validate reports the first out-of-range field, wrapping ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.MaxParticles < 0 || c.MaxParticles > MaxParticles:
		return fmt.Errorf("%w: max particles %d not in [0, %d]", ErrInvalid, c.MaxParticles, MaxParticles)
	case c.TPS < 1 || c.TPS > MaxTPS:
		return fmt.Errorf("%w: tps %d not in [1, %d]", ErrInvalid, c.TPS, MaxTPS)
	}
	return nil
}

// RegisterFlags binds c to command-line flags on fs. Current values are the
// defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
	fs.IntVar(&c.MaxParticles, "max", c.MaxParticles, "particle cap, at most 400")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for the clock")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Stats, "stats", c.Stats, "show the stats overlay at start")
}
