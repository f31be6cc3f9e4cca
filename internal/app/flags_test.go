package app

import "testing"

func TestValidateDefaults(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}

	w, h := cfg.GridSize()
	if w != 102 || h != 56 {
		t.Fatalf("default surface should be 102x56 cells, got %dx%d", w, h)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"width not a multiple of cell size", func(c *Config) { c.WindowWidth = 1025 }},
		{"height not a multiple of cell size", func(c *Config) { c.WindowHeight = 563 }},
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"negative width", func(c *Config) { c.WindowWidth = -10 }},
		{"zero tps", func(c *Config) { c.TPS = 0 }},
		{"zero fraction", func(c *Config) { c.Fraction = 0 }},
	}

	for _, tc := range cases {
		cfg := NewConfig()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}
