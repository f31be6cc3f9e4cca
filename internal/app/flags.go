package app

import (
	"flag"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application.
type Config struct {
	WindowWidth  int
	WindowHeight int
	CellSize     int
	TPS          int
	Fraction     int
	PatternDir   string
	Seed         int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		WindowWidth:  1020,
		WindowHeight: 560,
		CellSize:     10,
		TPS:          10,
		Fraction:     8,
		PatternDir:   "patterns",
		Seed:         42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.WindowWidth, "width", c.WindowWidth, "window width in pixels")
	fs.IntVar(&c.WindowHeight, "height", c.WindowHeight, "window height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.Fraction, "fraction", c.Fraction, "random seeding fills 1/fraction of the grid")
	fs.StringVar(&c.PatternDir, "patterns", c.PatternDir, "directory holding Life 1.06 pattern files")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random grid initialisation")
}

// Validate rejects configurations the simulation cannot start with. Window
// dimensions must be exact multiples of the cell size so the surface tiles
// the window.
func (c *Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return errors.Errorf("[Validate] window dimensions must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("[Validate] cell size must be positive, got %d", c.CellSize)
	}
	if c.WindowWidth%c.CellSize != 0 {
		return errors.Errorf("[Validate] window width %d is not a multiple of cell size %d", c.WindowWidth, c.CellSize)
	}
	if c.WindowHeight%c.CellSize != 0 {
		return errors.Errorf("[Validate] window height %d is not a multiple of cell size %d", c.WindowHeight, c.CellSize)
	}
	if c.TPS <= 0 {
		return errors.Errorf("[Validate] tps must be positive, got %d", c.TPS)
	}
	if c.Fraction <= 0 {
		return errors.Errorf("[Validate] fraction must be positive, got %d", c.Fraction)
	}
	return nil
}

// GridSize derives the surface dimensions in cells.
func (c *Config) GridSize() (int, int) {
	return c.WindowWidth / c.CellSize, c.WindowHeight / c.CellSize
}
