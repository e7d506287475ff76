package bokeh

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestCount(t *testing.T) {
	tests := []struct {
		width float64
		want  int
	}{
		{0, 0},
		{50, 0},
		{149, 0},
		{150, 1},
		{1000, 6},
		{1200, 8},
		{1400, 8},
		{4000, 8},
	}
	for _, tt := range tests {
		if got := Count(tt.width); got != tt.want {
			t.Errorf("Count(%v) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestRebuildReplacesParticles(t *testing.T) {
	f := NewField(newRNG(10))
	f.Rebuild(Bounds{Width: 1000, Height: 500})
	if f.Len() != 6 {
		t.Fatalf("Len = %d, want 6", f.Len())
	}
	first := f.Particles()

	f.Rebuild(Bounds{Width: 1000, Height: 500})
	if f.Len() != 6 {
		t.Fatalf("Len after same-size rebuild = %d, want 6", f.Len())
	}
	second := f.Particles()
	same := 0
	for i := range first {
		if first[i] == second[i] {
			same++
		}
	}
	if same == len(first) {
		t.Error("rebuild kept every particle, want fresh ones")
	}

	f.Rebuild(Bounds{Width: 300, Height: 500})
	if f.Len() != 2 {
		t.Errorf("Len after shrink = %d, want 2", f.Len())
	}
	for _, p := range f.Particles() {
		checkRanges(t, p)
		if p.X > 300 {
			t.Errorf("X = %v outside new width", p.X)
		}
	}
}

func TestParticlesIsACopy(t *testing.T) {
	f := NewField(newRNG(11))
	f.Rebuild(Bounds{Width: 600, Height: 300})
	ps := f.Particles()
	ps[0].X = -9999
	if f.Particles()[0].X == -9999 {
		t.Error("Particles exposed internal storage")
	}
}

func TestTickMovesAndPaints(t *testing.T) {
	b := Bounds{Width: 600, Height: 300}
	f := NewField(newRNG(12))
	f.Rebuild(b)
	before := f.Particles()

	dc := gg.NewContext(600, 300)
	defer dc.Close()
	if err := f.Tick(dc); err != nil {
		t.Fatalf("Tick error = %v", err)
	}

	after := f.Particles()
	for i := range before {
		if after[i].Y != before[i].Y+before[i].SpeedY {
			t.Errorf("particle %d Y = %v, want %v", i, after[i].Y, before[i].Y+before[i].SpeedY)
		}
	}

	painted := false
	img := dc.Image()
	for _, p := range after {
		if _, _, _, a := img.At(int(p.X), int(p.Y)).RGBA(); a > 0 {
			painted = true
			break
		}
	}
	if !painted {
		t.Error("no particle center was painted")
	}
}

func TestEmptyFieldTick(t *testing.T) {
	f := NewField(newRNG(13))
	f.Rebuild(Bounds{Width: 100, Height: 100})
	dc := gg.NewContext(100, 100)
	defer dc.Close()
	if err := f.Tick(dc); err != nil {
		t.Errorf("Tick on empty field error = %v", err)
	}
}
