package game

import (
	"fmt"
	"image"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/particles-background/internal/config"
	"github.com/iburimskiy/particles-background/internal/particles"
	"github.com/iburimskiy/particles-background/internal/render"
)

// Game is the ebiten host. ebiten calls Layout, Update and Draw from one
// goroutine, so the field needs no locking here.
type Game struct {
	rng      *rand.Rand
	field    *particles.Field
	pointer  *particles.Pointer
	renderer *render.Renderer
	surface  *screenSurface

	width, height int
	// ptr is the pointer snapshot taken by the last Update; Draw uses the
	// same one so both phases of a tick agree.
	ptr particles.PointerState
	// drawn is set once the last stepped state has been rendered. ebiten may
	// run more Updates than Draws; a step waits for the previous one to be
	// shown so every frame is exactly one Step then one render.
	drawn bool

	// overlay
	showStats bool
	stats     render.Stats
	started   time.Time

	// snapshot: Draw captures frames, Update saves them
	captureNext bool
	pending     *image.RGBA

	lastErr error
}

// New builds a game with a field sized to the configured window.
func New(cfg config.Config) *Game {
	rng := particles.NewRand(cfg.Seed)
	g := &Game{
		rng:       rng,
		field:     particles.NewField(float64(cfg.Width), float64(cfg.Height), cfg.MaxParticles, rng),
		pointer:   particles.NewPointer(),
		renderer:  render.New(),
		surface:   newScreenSurface(),
		width:     cfg.Width,
		height:    cfg.Height,
		showStats: cfg.Stats,
		started:   time.Now(),
		drawn:     true,
	}
	g.ptr = g.pointer.Snapshot()
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showStats = !g.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.captureNext = true
	}
	if g.pending != nil {
		g.savePending()
	}

	g.trackCursor(ebiten.CursorPosition())
	g.step()
	return nil
}

// trackCursor forwards cursor positions inside the window. Outside positions
// are ignored so the field does not rush to a corner when the cursor leaves.
func (g *Game) trackCursor(x, y int) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.pointer.Move(float64(x), float64(y))
}

func (g *Game) step() {
	if !g.drawn {
		return
	}
	g.ptr = g.pointer.Snapshot()
	particles.Step(g.field, g.ptr)
	g.drawn = false
}

func (g *Game) savePending() {
	img := g.pending
	g.pending = nil

	path, err := saveSnapshot(img)
	if err != nil {
		g.lastErr = err
		log.Printf("snapshot: %v", err)
		return
	}
	if path != "" {
		log.Printf("snapshot saved to %s", path)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	if err := g.frame(g.surface); err != nil {
		g.lastErr = err
		return
	}

	if g.captureNext {
		g.pending = capture(screen)
		g.captureNext = false
	}

	if g.showStats {
		ebitenutil.DebugPrintAt(screen, g.status(ebiten.ActualFPS()), 12, 12)
	}
}

// frame renders the last stepped state with the pointer snapshot that step
// used.
func (g *Game) frame(dst render.Surface) error {
	stats, err := g.renderer.Draw(dst, g.field, g.ptr)
	if err != nil {
		return err
	}
	g.stats = stats
	g.drawn = true
	return nil
}

func (g *Game) status(fps float64) string {
	s := fmt.Sprintf("FPS %.0f | up %s | particles %d | connections %d | glowing %d | trails %d",
		fps, formatDuration(time.Since(g.started)),
		g.stats.Particles, g.stats.Connections, g.stats.Glowing, g.stats.Trails)
	if g.lastErr != nil {
		s += " | Error: " + g.lastErr.Error()
	}
	return s
}

// Layout follows the window size. A size change rebuilds the whole field
// before the next Update, so no tick ever sees a partial field.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

func (g *Game) resize(w, h int) {
	// A minimised window reports zero; keep the last field.
	if w <= 0 || h <= 0 {
		return
	}
	g.width, g.height = w, h
	g.field.Rebuild(float64(w), float64(h), g.rng)
}
