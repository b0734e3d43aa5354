package sand

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Each cell is stored as a fixed 36-byte little-endian record:
// type u32, color 4xf32, velocity 2xf32, flags u64.
const recordSize = 4 + 16 + 8 + 8

// ErrBadSaveSize reports that a saved world does not match the dimensions of
// the world being loaded into.
var ErrBadSaveSize = errors.New("sand: save size mismatch")

// Serialize writes the cell array to out. Chunk state is not stored; loads
// reconstruct it by waking every chunk.
func (w *World) Serialize(out io.Writer) error {
	buf := make([]byte, recordSize*len(w.pixels))
	off := 0
	for i := range w.pixels {
		px := &w.pixels[i]
		binary.LittleEndian.PutUint32(buf[off:], uint32(px.Type))
		off += 4
		for c := 0; c < 4; c++ {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(px.Color[c]))
			off += 4
		}
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(px.Velocity.X))
		off += 4
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(px.Velocity.Y))
		off += 4
		binary.LittleEndian.PutUint64(buf[off:], uint64(px.Flags))
		off += 8
	}
	if _, err := out.Write(buf); err != nil {
		return fmt.Errorf("sand: write save: %w", err)
	}
	return nil
}

// Deserialize replaces the cell array with the contents of in and wakes all
// chunks so the next step reconsiders every region. On any error the world
// is left untouched.
func (w *World) Deserialize(in io.Reader) error {
	buf, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("sand: read save: %w", err)
	}
	want := recordSize * len(w.pixels)
	if len(buf) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBadSaveSize, len(buf), want)
	}

	off := 0
	for i := range w.pixels {
		px := &w.pixels[i]
		px.Type = Type(binary.LittleEndian.Uint32(buf[off:]))
		off += 4
		for c := 0; c < 4; c++ {
			px.Color[c] = math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
			off += 4
		}
		px.Velocity.X = math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
		off += 4
		px.Velocity.Y = math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
		off += 4
		px.Flags = Flags(binary.LittleEndian.Uint64(buf[off:]))
		off += 8
	}

	w.WakeAllChunks()
	w.refreshDisplay()
	return nil
}
