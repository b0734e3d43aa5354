package sand

import "testing"

func TestValidBounds(t *testing.T) {
	w := NewSized(32, 1)
	cases := []struct {
		pos  Pos
		want bool
	}{
		{Pos{0, 0}, true},
		{Pos{31, 31}, true},
		{Pos{-1, 0}, false},
		{Pos{0, -1}, false},
		{Pos{32, 0}, false},
		{Pos{0, 32}, false},
	}
	for _, c := range cases {
		if got := w.Valid(c.pos); got != c.want {
			t.Errorf("Valid(%v) = %v, want %v", c.pos, got, c.want)
		}
	}
}

func TestNewWorldIsAir(t *testing.T) {
	w := NewSized(32, 1)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if w.At(Pos{x, y}).Type != TypeNone {
				t.Fatalf("cell (%d,%d) is not air", x, y)
			}
		}
	}
}

func TestSwapSymmetry(t *testing.T) {
	w := NewSized(32, 1)
	w.Set(Pos{3, 4}, Sand(w.Rand()))
	w.Set(Pos{20, 21}, Water(w.Rand()))

	before := make([]Pixel, len(w.pixels))
	copy(before, w.pixels)

	a, b := Pos{3, 4}, Pos{20, 21}
	if got := w.Swap(a, b); got != b {
		t.Fatalf("Swap returned %v, want %v", got, b)
	}
	if w.At(b).Type != TypeSand || w.At(a).Type != TypeWater {
		t.Fatal("swap did not exchange cell contents")
	}
	w.Swap(b, a)

	for i := range before {
		if w.pixels[i] != before[i] {
			t.Fatalf("cell %d changed after double swap", i)
		}
	}
}

func TestWakePropagatesAcrossChunkBoundary(t *testing.T) {
	w := NewSized(64, 1)

	// Drain all activity first.
	w.Step()
	w.Step()
	if n := w.NumAwakeChunks(); n != 0 {
		t.Fatalf("expected all chunks asleep, got %d awake", n)
	}

	// A write in the rightmost column of chunk (0,0) wakes chunk (1,0) too.
	w.Set(Pos{15, 4}, Air())
	w.Step()
	if !w.IsChunkAwake(Pos{4, 4}) {
		t.Error("written chunk should be awake")
	}
	if !w.IsChunkAwake(Pos{16, 4}) {
		t.Error("chunk across the boundary should be awake")
	}
	if w.IsChunkAwake(Pos{4, 20}) {
		t.Error("unrelated chunk should stay asleep")
	}
	if w.IsChunkAwake(Pos{32, 4}) {
		t.Error("chunk two columns over should stay asleep")
	}
}

func TestAirWorldFallsAsleep(t *testing.T) {
	w := NewSized(32, 1)
	w.Fill(Air())

	// The fill leaves everything awake for at most one step.
	w.Step()
	w.Step()
	if n := w.NumAwakeChunks(); n != 0 {
		t.Fatalf("air world still has %d awake chunks", n)
	}
}

func TestFillOverwritesEverything(t *testing.T) {
	w := NewSized(32, 1)
	w.Fill(Titanium())
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if w.At(Pos{x, y}).Type != TypeTitanium {
				t.Fatalf("cell (%d,%d) not filled", x, y)
			}
		}
	}
}

func TestWakeAllChunks(t *testing.T) {
	w := NewSized(64, 1)
	w.Step()
	w.Step()

	w.WakeAllChunks()
	if n, want := w.NumAwakeChunks(), 16; n != want {
		t.Fatalf("NumAwakeChunks = %d, want %d", n, want)
	}
	// Waking survives the promotion at the next step entry.
	w.Step()
	if n, want := w.NumAwakeChunks(), 16; n != want {
		t.Fatalf("NumAwakeChunks after step = %d, want %d", n, want)
	}
}
