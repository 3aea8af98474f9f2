package life

import (
	"strconv"

	"github.com/aquilax/go-perlin"
)

// SoupConfig controls the shape of a noise-seeded blob of live cells.
type SoupConfig struct {
	Radius    int64
	Threshold float64
	Scale     float64
	Seed      int64
}

// DefaultSoupConfig returns the standard soup parameters.
func DefaultSoupConfig() SoupConfig {
	return SoupConfig{
		Radius:    12,
		Threshold: 0.1,
		Scale:     0.18,
		Seed:      42,
	}
}

// SoupFromMap populates a SoupConfig from a string map (flag-style key/value
// pairs).
func SoupFromMap(cfg map[string]string) SoupConfig {
	c := DefaultSoupConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			c.Radius = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Threshold = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Soup stamps an organic blob of live cells centered on the given coordinate.
// Cells inside the radius come alive where Perlin noise clears the threshold,
// so the same seed always produces the same pattern at any center.
func Soup(g *Grid, center Coord, cfg SoupConfig) {
	p := perlin.NewPerlin(2, 2, 3, cfg.Seed)
	for dy := -cfg.Radius; dy <= cfg.Radius; dy++ {
		for dx := -cfg.Radius; dx <= cfg.Radius; dx++ {
			if dx*dx+dy*dy > cfg.Radius*cfg.Radius {
				continue
			}
			n := p.Noise2D(float64(dx)*cfg.Scale, float64(dy)*cfg.Scale)
			if n > cfg.Threshold {
				g.SetAlive(Coord{center.X + dx, center.Y + dy})
			}
		}
	}
}
