package sand

import (
	"bytes"
	"errors"
	"testing"
)

func TestSerializeRoundTrip(t *testing.T) {
	w := NewSized(32, 11)
	rng := w.Rand()
	for x := 0; x < 32; x++ {
		w.Set(Pos{x, 31}, Titanium())
		w.Set(Pos{x, 10}, Sand(rng))
	}
	w.Set(Pos{5, 5}, Lava(rng))
	w.Set(Pos{6, 5}, Water(rng))
	for i := 0; i < 50; i++ {
		w.Step()
	}

	var buf bytes.Buffer
	if err := w.Serialize(&buf); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if got, want := buf.Len(), 36*32*32; got != want {
		t.Fatalf("encoded size = %d, want %d", got, want)
	}

	loaded := NewSized(32, 0)
	if err := loaded.Deserialize(&buf); err != nil {
		t.Fatalf("deserialize: %v", err)
	}

	for i := range w.pixels {
		if w.pixels[i] != loaded.pixels[i] {
			t.Fatalf("cell %d differs after round trip", i)
		}
	}
}

func TestDeserializeRejectsTruncatedInput(t *testing.T) {
	w := NewSized(32, 12)
	w.Set(Pos{1, 2}, Sand(w.Rand()))

	var buf bytes.Buffer
	if err := w.Serialize(&buf); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	truncated := buf.Bytes()[:buf.Len()/2]

	target := NewSized(32, 13)
	target.Set(Pos{9, 9}, Titanium())
	snapshot := make([]Pixel, len(target.pixels))
	copy(snapshot, target.pixels)

	err := target.Deserialize(bytes.NewReader(truncated))
	if !errors.Is(err, ErrBadSaveSize) {
		t.Fatalf("err = %v, want ErrBadSaveSize", err)
	}
	for i := range snapshot {
		if target.pixels[i] != snapshot[i] {
			t.Fatalf("cell %d changed despite load failure", i)
		}
	}
}

func TestDeserializeRejectsWrongWorldSize(t *testing.T) {
	small := NewSized(32, 14)
	var buf bytes.Buffer
	if err := small.Serialize(&buf); err != nil {
		t.Fatalf("serialize: %v", err)
	}

	big := NewSized(64, 15)
	if err := big.Deserialize(&buf); !errors.Is(err, ErrBadSaveSize) {
		t.Fatalf("err = %v, want ErrBadSaveSize", err)
	}
}

func TestDeserializeWakesAllChunks(t *testing.T) {
	w := NewSized(32, 16)
	var buf bytes.Buffer
	if err := w.Serialize(&buf); err != nil {
		t.Fatalf("serialize: %v", err)
	}

	target := NewSized(32, 17)
	target.Step()
	target.Step()
	if err := target.Deserialize(&buf); err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if n, want := target.NumAwakeChunks(), 4; n != want {
		t.Fatalf("NumAwakeChunks = %d, want %d", n, want)
	}
}
