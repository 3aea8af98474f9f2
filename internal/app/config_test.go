package app

import (
	"flag"
	"testing"
	"time"

	"sparselife/internal/life"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-tps", "20", "-width", "640", "-height", "480", "-speed", "250"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.TPS != 20 || cfg.Width != 640 || cfg.Height != 480 || cfg.MoveSpeed != 250 {
		t.Fatalf("unexpected config after parse: %+v", cfg)
	}
	if got := cfg.TickInterval(); got != 50*time.Millisecond {
		t.Fatalf("tick interval = %v, expected 50ms", got)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if got := cfg.TickInterval(); got != life.DefaultTickInterval {
		t.Fatalf("default tick interval = %v, expected %v", got, life.DefaultTickInterval)
	}

	cfg.TPS = -1
	if got := cfg.TickInterval(); got != life.DefaultTickInterval {
		t.Fatalf("non-positive tps must fall back to the default interval, got %v", got)
	}
}
