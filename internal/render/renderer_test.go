package render

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/particles-background/internal/config"
	"github.com/iburimskiy/particles-background/internal/particles"
)

type op struct {
	kind string // "clear", "line", "circle"
	from mgl64.Vec2
	to   mgl64.Vec2
	size float64
	clr  color.NRGBA
	blur float64
}

type recorder struct {
	ops []op
}

func (r *recorder) Clear() { r.ops = append(r.ops, op{kind: "clear"}) }

func (r *recorder) StrokeLine(from, to mgl64.Vec2, width float64, clr color.NRGBA) {
	r.ops = append(r.ops, op{kind: "line", from: from, to: to, size: width, clr: clr})
}

func (r *recorder) FillCircle(center mgl64.Vec2, radius float64, clr color.NRGBA, blur float64) {
	r.ops = append(r.ops, op{kind: "circle", from: center, size: radius, clr: clr, blur: blur})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

var farPointer = particles.PointerState{Pos: mgl64.Vec2{1e6, 1e6}, Radius: config.PointerRadius}

func dot(x, y float64) particles.Particle {
	return particles.Particle{
		Pos:     mgl64.Vec2{x, y},
		Radius:  2,
		Color:   particles.Palette[1],
		Kind:    particles.KindNormal,
		Opacity: 0.5,
	}
}

func field(ps ...particles.Particle) *particles.Field {
	return &particles.Field{Width: 800, Height: 600, Particles: ps}
}

func TestDrawNilSurface(t *testing.T) {
	_, err := New().Draw(nil, field(dot(1, 1)), farPointer)
	if !errors.Is(err, ErrNoSurface) {
		t.Errorf("Expected ErrNoSurface, got %v", err)
	}
}

func TestDrawOrder(t *testing.T) {
	rec := &recorder{}
	st, err := New().Draw(rec, field(dot(100, 100), dot(150, 100), dot(700, 500)), farPointer)
	if err != nil {
		t.Fatal(err)
	}

	if len(rec.ops) == 0 || rec.ops[0].kind != "clear" {
		t.Fatal("Expected the surface to be cleared first")
	}
	// Bodies first, then every connection on top.
	seenLine := false
	for _, o := range rec.ops[1:] {
		switch o.kind {
		case "line":
			seenLine = true
		case "circle":
			if seenLine {
				t.Fatal("Body drawn after connections started")
			}
		}
	}
	if st.Particles != 3 || rec.count("circle") != 3 {
		t.Errorf("Expected 3 bodies, got stats %d and %d draws", st.Particles, rec.count("circle"))
	}
	if st.Connections != 1 || rec.count("line") != 1 {
		t.Errorf("Expected 1 connection, got stats %d and %d lines", st.Connections, rec.count("line"))
	}
}

func TestConnections(t *testing.T) {
	tests := []struct {
		name string
		gap  float64
		want int
	}{
		{"Close", 100, 1},
		{"Just inside", 149.9, 1},
		{"At limit", 150, 0},
		{"Far", 200, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			st, _ := New().Draw(rec, field(dot(100, 300), dot(100+tt.gap, 300)), farPointer)
			if st.Connections != tt.want || rec.count("line") != tt.want {
				t.Errorf("Expected %d connections, got %d", tt.want, st.Connections)
			}
		})
	}
}

func TestConnectionStyle(t *testing.T) {
	l, ok := linkOf(75, 1e6, 1e6, config.PointerRadius)
	if !ok {
		t.Fatal("Expected a link at distance 75")
	}
	if want := 0.5 * config.ConnectionFade; math.Abs(l.alpha-want) > 1e-12 {
		t.Errorf("Expected alpha %f, got %f", want, l.alpha)
	}
	if l.width != config.ConnectionWidth {
		t.Errorf("Expected width %f, got %f", config.ConnectionWidth, l.width)
	}

	// One endpoint 30 from the pointer: g = 0.8.
	boosted, _ := linkOf(75, 30, 1e6, config.PointerRadius)
	if want := 0.5*config.ConnectionFade + 0.8*config.ConnectionGlowAlpha; math.Abs(boosted.alpha-want) > 1e-12 {
		t.Errorf("Expected boosted alpha %f, got %f", want, boosted.alpha)
	}
	if want := config.ConnectionWidth + 0.8*config.ConnectionGlowWidth; math.Abs(boosted.width-want) > 1e-12 {
		t.Errorf("Expected boosted width %f, got %f", want, boosted.width)
	}

	// The closer endpoint wins.
	both, _ := linkOf(75, 30, 120, config.PointerRadius)
	if both != boosted {
		t.Errorf("Expected the nearer endpoint to set the glow, got %+v vs %+v", both, boosted)
	}
}

func TestBodyStyle(t *testing.T) {
	glow := dot(0, 0)
	glow.Kind = particles.KindGlow
	normal := dot(0, 0)

	tests := []struct {
		name       string
		p          particles.Particle
		d          float64
		wantRadius float64
		wantAlpha  float64
		wantBlur   float64
	}{
		{"Normal far", normal, 500, 2, 0.5 * config.NormalAlpha, 0},
		{"Glow far", glow, 500, 2, 0.5, config.GlowBlur},
		{"At pointer", normal, 0, 2 * 1.3, 1, 80},
		{"Half radius", glow, 75, 2 * 1.15, 0.85, 55},
		{"At radius edge", normal, 150, 2, 0.5 * config.NormalAlpha, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bodyOf(&tt.p, tt.d, config.PointerRadius)
			if math.Abs(b.radius-tt.wantRadius) > 1e-9 {
				t.Errorf("Expected radius %f, got %f", tt.wantRadius, b.radius)
			}
			if math.Abs(b.alpha-tt.wantAlpha) > 1e-9 {
				t.Errorf("Expected alpha %f, got %f", tt.wantAlpha, b.alpha)
			}
			if math.Abs(b.blur-tt.wantBlur) > 1e-9 {
				t.Errorf("Expected blur %f, got %f", tt.wantBlur, b.blur)
			}
		})
	}
}

func TestBodyColorCarriesAlpha(t *testing.T) {
	rec := &recorder{}
	New().Draw(rec, field(dot(10, 10)), farPointer)

	c := rec.ops[1]
	want := NRGBA(particles.Palette[1], config.BaseColorAlpha*0.5*config.NormalAlpha)
	if c.clr != want {
		t.Errorf("Expected fill %v, got %v", want, c.clr)
	}
	if c.blur != 0 {
		t.Errorf("Expected no blur for a far normal particle, got %f", c.blur)
	}
}

func TestTrails(t *testing.T) {
	p := dot(300, 300)
	p.Trail = []mgl64.Vec2{{290, 300}, {295, 300}, {300, 300}}
	single := dot(600, 100)
	single.Trail = []mgl64.Vec2{{600, 100}}

	rec := &recorder{}
	st, _ := New().Draw(rec, field(p, single), farPointer)

	if st.Trails != 1 {
		t.Errorf("Expected 1 trail, got %d", st.Trails)
	}
	if rec.count("line") != 2 {
		t.Fatalf("Expected 2 trail segments, got %d", rec.count("line"))
	}
	seg := rec.ops[1]
	if seg.kind != "line" || seg.from != p.Trail[0] || seg.to != p.Trail[1] {
		t.Errorf("Expected first segment %v-%v, got %+v", p.Trail[0], p.Trail[1], seg)
	}
	if seg.size != config.TrailWidth || seg.clr != NRGBA(p.Color, config.TrailAlpha) {
		t.Errorf("Unexpected trail style %+v", seg)
	}
}

func TestGlowingStats(t *testing.T) {
	near := dot(400, 300)
	glow := dot(10, 10)
	glow.Kind = particles.KindGlow
	plain := dot(790, 590)

	ptr := particles.PointerState{Pos: mgl64.Vec2{410, 300}, Radius: config.PointerRadius}
	st, _ := New().Draw(&recorder{}, field(near, glow, plain), ptr)
	if st.Glowing != 2 {
		t.Errorf("Expected 2 glowing bodies, got %d", st.Glowing)
	}
}

func TestNRGBA(t *testing.T) {
	c := NRGBA(mustHex("#8b5cf6"), 2)
	if c != (color.NRGBA{R: 0x8b, G: 0x5c, B: 0xf6, A: 255}) {
		t.Errorf("Unexpected color %v", c)
	}
	if NRGBA(Background, -1).A != 0 {
		t.Error("Expected negative alpha to clamp to 0")
	}
}
