package sand

import "github.com/MagicLemma/alchimia/internal/core"

// Pos addresses a cell in the grid. X grows rightwards, Y grows downwards.
type Pos struct {
	X, Y int
}

type chunk struct {
	activeThis bool
	activeNext bool
}

// World owns the dense cell grid, the chunk activity grid, and the RGBA
// display buffer refreshed at the end of each step. All mutation flows
// through its API; it is not safe for concurrent use.
type World struct {
	size          int
	chunksPerSide int
	pixels        []Pixel
	chunks        []chunk
	display       []byte
	rng           *core.RNG
}

// New returns a WorldSize x WorldSize world of air with every chunk awake.
func New(seed int64) *World {
	return NewSized(WorldSize, seed)
}

// NewSized returns a square world with the given side length, which must be
// a positive multiple of ChunkSize. Smaller worlds keep tests cheap.
func NewSized(size int, seed int64) *World {
	if size < ChunkSize {
		size = ChunkSize
	}
	size -= size % ChunkSize
	cps := size / ChunkSize
	w := &World{
		size:          size,
		chunksPerSide: cps,
		pixels:        make([]Pixel, size*size),
		chunks:        make([]chunk, cps*cps),
		display:       make([]byte, 4*size*size),
		rng:           core.NewRNG(seed),
	}
	air := Air()
	for i := range w.pixels {
		w.pixels[i] = air
	}
	w.WakeAllChunks()
	w.refreshDisplay()
	return w
}

// Size returns the side length of the world in cells.
func (w *World) Size() int { return w.size }

// Rand exposes the world's RNG so drivers spawn cells from the same seeded
// stream the simulation uses.
func (w *World) Rand() *core.RNG { return w.rng }

// Valid reports whether pos addresses a cell inside the grid.
func (w *World) Valid(pos Pos) bool {
	return 0 <= pos.X && pos.X < w.size && 0 <= pos.Y && pos.Y < w.size
}

// At returns the cell at pos. The position must be valid; callers are
// expected to check with Valid first.
func (w *World) At(pos Pos) *Pixel {
	return &w.pixels[pos.X+w.size*pos.Y]
}

// Set writes a cell and wakes the chunk containing it.
func (w *World) Set(pos Pos, px Pixel) {
	*w.At(pos) = px
	w.WakeChunkWithPixel(pos)
}

// Fill overwrites every cell with px and wakes the whole grid.
func (w *World) Fill(px Pixel) {
	for i := range w.pixels {
		w.pixels[i] = px
	}
	w.WakeAllChunks()
}

// Swap exchanges the cells at a and b, wakes both chunks, and returns b:
// the new position of the cell that was at a.
func (w *World) Swap(a, b Pos) Pos {
	pa, pb := w.At(a), w.At(b)
	*pa, *pb = *pb, *pa
	w.WakeChunkWithPixel(a)
	w.WakeChunkWithPixel(b)
	return b
}

func (w *World) chunkAt(pos Pos) *chunk {
	return &w.chunks[pos.X/ChunkSize+w.chunksPerSide*(pos.Y/ChunkSize)]
}

func (w *World) wakeChunk(cx, cy int) {
	if 0 <= cx && cx < w.chunksPerSide && 0 <= cy && cy < w.chunksPerSide {
		w.chunks[cx+w.chunksPerSide*cy].activeNext = true
	}
}

// WakeChunkWithPixel marks the chunk containing pos for simulation next
// step. Writes on a chunk boundary also wake the neighbour across it, since
// cells there can be affected from one cell away.
func (w *World) WakeChunkWithPixel(pos Pos) {
	cx, cy := pos.X/ChunkSize, pos.Y/ChunkSize
	w.wakeChunk(cx, cy)

	if pos.X%ChunkSize == ChunkSize-1 && pos.X+1 < w.size {
		w.wakeChunk(cx+1, cy)
	}
	if pos.X%ChunkSize == 0 && pos.X > 0 {
		w.wakeChunk(cx-1, cy)
	}
	if pos.Y%ChunkSize == ChunkSize-1 && pos.Y+1 < w.size {
		w.wakeChunk(cx, cy+1)
	}
	if pos.Y%ChunkSize == 0 && pos.Y > 0 {
		w.wakeChunk(cx, cy-1)
	}
}

// WakeAllChunks marks every chunk active for both the current and the next
// step. Used after deserialising so the next step reconsiders every region.
func (w *World) WakeAllChunks() {
	for i := range w.chunks {
		w.chunks[i].activeThis = true
		w.chunks[i].activeNext = true
	}
}

// NumAwakeChunks counts chunks active for the current step: those simulated
// in the last step, or every chunk right after WakeAllChunks.
func (w *World) NumAwakeChunks() int {
	n := 0
	for i := range w.chunks {
		if w.chunks[i].activeThis {
			n++
		}
	}
	return n
}

// IsChunkAwake reports whether the chunk containing pos is active for the
// current step: simulated in the last step, or woken by WakeAllChunks since.
func (w *World) IsChunkAwake(pos Pos) bool {
	return w.chunkAt(pos).activeThis
}

// Display returns the RGBA buffer refreshed at the end of each step, laid
// out row-major, four bytes per cell. It is read-only for callers and stays
// valid until the next Step.
func (w *World) Display() []byte {
	return w.display
}

func (w *World) refreshDisplay() {
	for i := range w.pixels {
		c := &w.pixels[i].Color
		base := i * 4
		w.display[base+0] = byte(clamp01(c[0])*255 + 0.5)
		w.display[base+1] = byte(clamp01(c[1])*255 + 0.5)
		w.display[base+2] = byte(clamp01(c[2])*255 + 0.5)
		w.display[base+3] = byte(clamp01(c[3])*255 + 0.5)
	}
}
