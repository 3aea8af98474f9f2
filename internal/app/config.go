package app

import (
	"flag"
	"time"

	"sparselife/internal/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	TPS       int
	Width     int
	Height    int
	MoveSpeed float64
	SoupSeed  int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{TPS: 10, Width: 960, Height: 720, MoveSpeed: 500, SoupSeed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while running")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.Float64Var(&c.MoveSpeed, "speed", c.MoveSpeed, "camera pan speed in world units per second")
	fs.Int64Var(&c.SoupSeed, "soup-seed", c.SoupSeed, "seed for noise-stamped soup patterns")
}

// TickInterval converts the TPS flag into the clock's step interval.
func (c *Config) TickInterval() time.Duration {
	if c.TPS <= 0 {
		return life.DefaultTickInterval
	}
	return time.Second / time.Duration(c.TPS)
}
