//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"path/filepath"

	"golife/internal/life"
	"golife/internal/render"
	"golife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type mode int

const (
	modeSeeding mode = iota
	modeRunning
)

// WindowTitle is the base window caption; mode hints are appended per frame.
const WindowTitle = "Game of Life"

const (
	seedingHint = " (set initial conditions [mouse|r|g|a|s|l|p|d] and press RETURN to start; or ESC to quit)"
	runningHint = " (press RETURN to re-set the start conditions or ESC to quit)"
)

var (
	backgroundColor = color.RGBA{A: 255}
	liveCellColor   = color.RGBA{R: 255, A: 255}
	gridLineColor   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

// patternSpec binds a seeding key to a Life 1.06 file and the anchor the
// pattern offsets are translated to.
type patternSpec struct {
	file   string
	anchor func(w, h int) life.Cell
}

func centerAnchor(w, h int) life.Cell { return life.Cell{X: w / 2, Y: h / 2} }

var patterns = map[ebiten.Key]patternSpec{
	ebiten.KeyG: {file: "gosperglidergun_106.lif", anchor: func(w, h int) life.Cell { return life.Cell{X: 20, Y: 6} }},
	ebiten.KeyA: {file: "acorn_106.lif", anchor: centerAnchor},
	ebiten.KeyS: {file: "switchengine_106.lif", anchor: centerAnchor},
	ebiten.KeyL: {file: "glider_106.lif", anchor: func(w, h int) life.Cell { return life.Cell{X: 3, Y: 3} }},
	ebiten.KeyP: {file: "rpentomino_106.lif", anchor: centerAnchor},
	ebiten.KeyD: {file: "diehard_106.lif", anchor: centerAnchor},
}

// Game adapts the simulation to the ebiten.Game interface. It owns the grid
// handed from one generation to the next and switches between the seeding
// phase and the running phase.
type Game struct {
	cfg     *Config
	grid    *life.Grid
	painter *render.GridPainter
	hud     *ui.HUD
	rng     *rand.Rand

	gridW, gridH int
	mode         mode
	generation   int
	paused       bool
	tickOnce     bool
}

// New constructs a Game in the seeding phase with an empty grid.
func New(cfg *Config) *Game {
	w, h := cfg.GridSize()
	return &Game{
		cfg:     cfg,
		grid:    life.New(w, h),
		painter: render.NewGridPainter(w, h),
		hud:     ui.NewHUD(),
		rng:     life.NewRNG(cfg.Seed),
		gridW:   w,
		gridH:   h,
	}
}

// Update handles per-frame input and, in the running phase, advances the
// simulation by one generation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	switch g.mode {
	case modeSeeding:
		g.updateSeeding()
		ebiten.SetWindowTitle(WindowTitle + seedingHint)
	case modeRunning:
		g.updateRunning()
		ebiten.SetWindowTitle(fmt.Sprintf("%s%s generation=%d", WindowTitle, runningHint, g.generation))
	}
	return nil
}

func (g *Game) updateSeeding() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.mode = modeRunning
		g.generation = 0
		g.paused = false
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.grid = life.NewRandom(g.gridW, g.gridH, g.cfg.Fraction, g.rng)
	}
	for key, spec := range patterns {
		if inpututil.IsKeyJustPressed(key) {
			g.loadPattern(spec)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		cell := life.Cell{X: mx / g.cfg.CellSize, Y: my / g.cfg.CellSize}
		if err := g.grid.Toggle(cell); err != nil {
			log.Printf("toggle ignored: %v", err)
		}
	}
}

func (g *Game) updateRunning() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.mode = modeSeeding
		g.grid = life.New(g.gridW, g.gridH)
		g.generation = 0
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}

	if !g.paused || g.tickOnce {
		g.grid = life.Advance(g.grid)
		g.generation++
		g.tickOnce = false
	}
}

// loadPattern replaces the grid with the named pattern. On failure the prior
// grid is kept so a bad file never destroys the seeding done so far.
func (g *Game) loadPattern(spec patternSpec) {
	offsets, err := life.LoadPatternFile(filepath.Join(g.cfg.PatternDir, spec.file))
	if err != nil {
		log.Printf("pattern load failed, keeping current grid: %v", err)
		return
	}
	g.grid = life.NewFromPattern(g.gridW, g.gridH, spec.anchor(g.gridW, g.gridH), offsets)
}

// Draw renders the current grid, the grid lines and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.painter.Blit(screen, g.grid.Cells(), liveCellColor, backgroundColor, g.cfg.CellSize)
	g.painter.DrawGridLines(screen, gridLineColor, g.cfg.CellSize)
	g.hud.Draw(screen, g.statusLine())
}

func (g *Game) statusLine() string {
	if g.mode == modeSeeding {
		return fmt.Sprintf("seeding | alive %d | mouse toggles, r random, g/a/s/l/p/d patterns, RETURN starts", g.grid.Population())
	}
	status := "running"
	if g.paused {
		status = "paused (n steps)"
	}
	return fmt.Sprintf("%s | generation %d | alive %d", status, g.generation, g.grid.Population())
}

// Layout returns the logical screen size in pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}
