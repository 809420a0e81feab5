package term

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/iburimskiy/particles-background/internal/config"
	"github.com/iburimskiy/particles-background/internal/particles"
	"github.com/iburimskiy/particles-background/internal/render"
)

// ErrNoTerminal wraps every failure to open the terminal screen.
var ErrNoTerminal = errors.New("term: terminal unavailable")

// Open creates and initialises the terminal screen.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrapf(ErrNoTerminal, "new screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrapf(ErrNoTerminal, "init screen: %v", err)
	}
	return screen, nil
}

// App runs the particle field on a terminal. The loop goroutine owns the
// field; the input goroutine only touches the pointer and the channels.
type App struct {
	screen   tcell.Screen
	surface  *Surface
	cfg      config.Config
	rng      *rand.Rand
	field    *particles.Field
	pointer  *particles.Pointer
	renderer *render.Renderer
	stats    render.Stats
}

func New(screen tcell.Screen, cfg config.Config) *App {
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	w, h := canvasSize(screen)
	rng := particles.NewRand(cfg.Seed)
	return &App{
		screen:   screen,
		surface:  NewSurface(screen),
		cfg:      cfg,
		rng:      rng,
		field:    particles.NewField(w, h, cfg.MaxParticles, rng),
		pointer:  particles.NewPointer(),
		renderer: render.New(),
	}
}

func canvasSize(screen tcell.Screen) (float64, float64) {
	cols, rows := screen.Size()
	return float64(cols * config.CellWidth), float64(rows * config.CellHeight)
}

// cellCenter is the virtual pixel at the middle of a cell.
func cellCenter(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * config.CellWidth, (float64(y) + 0.5) * config.CellHeight
}

// Run ticks until ctx is done or the user quits. The caller finalises the
// screen, which also ends the input goroutine.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resized := make(chan struct{}, 1)
	go a.poll(cancel, resized)

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.TPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-resized:
			a.resize()
		case <-ticker.C:
			if err := a.Tick(); err != nil {
				return err
			}
		}
	}
}

func (a *App) poll(quit context.CancelFunc, resized chan<- struct{}) {
	for {
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventMouse:
			a.pointer.Move(cellCenter(ev.Position()))
		case *tcell.EventResize:
			select {
			case resized <- struct{}{}:
			default:
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				quit()
			}
		}
	}
}

// Tick advances and draws one frame.
func (a *App) Tick() error {
	ptr := a.pointer.Snapshot()
	particles.Step(a.field, ptr)
	st, err := a.renderer.Draw(a.surface, a.field, ptr)
	if err != nil {
		return err
	}
	a.stats = st
	a.screen.Show()
	return nil
}

func (a *App) resize() {
	a.screen.Sync()
	w, h := canvasSize(a.screen)
	a.field.Rebuild(w, h, a.rng)
}

func (a *App) Stats() render.Stats {
	return a.stats
}
