package sand

// World configuration. These are fixed at compile time; worlds of other
// (chunk-aligned) sizes can still be built for tests via NewSized.
const (
	// WorldSize is the side length of the default square world, in cells.
	WorldSize = 256

	// ChunkSize is the side length of a chunk, in cells. WorldSize must be a
	// multiple of this.
	ChunkSize = 16

	// NumChunks is the number of chunks per side of the default world.
	NumChunks = WorldSize / ChunkSize

	// TimeStep is the length of one simulation tick in seconds.
	TimeStep = 1.0 / 60.0

	// PixelsPerMeter relates cell coordinates to physical units.
	PixelsPerMeter = 16.0
)

// Gravity is the acceleration applied to cells with a non-zero gravity
// factor, in meters per second squared; the update converts it to cells with
// PixelsPerMeter. Positive y points down the grid.
var Gravity = Vec2{X: 0, Y: 9.81}
