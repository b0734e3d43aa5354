package sand

var neighbourOffsets = [8]Pos{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, -1}, {-1, 1}, {1, -1},
}

// Step advances the world by one tick of TimeStep seconds.
//
// Chunk activity is double-buffered: the flags collected during the previous
// step are promoted on entry, and everything that happens during this step
// wakes chunks for the next one. A cell woken by a neighbour is therefore
// never simulated until the following step, keeping the at-most-one-update
// contract per cell.
func (w *World) Step() {
	for i := range w.chunks {
		c := &w.chunks[i]
		c.activeThis = c.activeNext
		c.activeNext = false
	}

	// Rows run bottom to top. Each row flips a coin for its x direction so
	// neither side of the grid is systematically favoured.
	for y := w.size - 1; y >= 0; y-- {
		if w.rng.Coin() {
			for x := 0; x < w.size; x++ {
				w.updateCell(Pos{x, y})
			}
		} else {
			for x := w.size - 1; x >= 0; x-- {
				w.updateCell(Pos{x, y})
			}
		}
	}

	for i := range w.pixels {
		w.pixels[i].Flags &^= FlagUpdated
	}
	w.refreshDisplay()
}

func (w *World) updateCell(pos Pos) {
	px := w.At(pos)
	if px.Type == TypeNone || px.Flags.Has(FlagUpdated) || !w.chunkAt(pos).activeThis {
		return
	}

	pos = w.updatePosition(pos)
	w.updateAttributes(pos)
	w.affectNeighbours(pos)

	w.At(pos).Flags |= FlagUpdated
}

// updatePosition runs the movement phase and returns the cell's final
// position. FlagFalling records whether the cell moved this tick.
func (w *World) updatePosition(pos Pos) Pos {
	start := pos
	pos = w.movePixel(pos)

	px := w.At(pos)
	if pos != start {
		px.Flags |= FlagFalling
	} else {
		px.Flags &^= FlagFalling
	}
	return pos
}

func (w *World) movePixel(pos Pos) Pos {
	px := w.At(pos)
	props := Props(px.Type)

	// Gravity.
	if props.GravityFactor != 0 {
		px.Velocity.X += props.GravityFactor * Gravity.X * PixelsPerMeter * TimeStep
		px.Velocity.Y += props.GravityFactor * Gravity.Y * PixelsPerMeter * TimeStep
		offset := Pos{int(px.Velocity.X), int(px.Velocity.Y)}
		if next, moved := w.moveAlong(pos, offset); moved {
			return next
		}
	}

	// A resting cell with inertial resistance stays put.
	if props.InertialResistance > 0 && !w.At(pos).Flags.Has(FlagFalling) {
		return pos
	}

	// Slide diagonally in the direction gravity pulls.
	if props.CanMoveDiagonally {
		dir := gravitySign(props.GravityFactor)
		first, second := Pos{-1, dir}, Pos{1, dir}
		if w.rng.Coin() {
			first, second = second, first
		}
		if next, moved := w.moveAlong(pos, first); moved {
			return next
		}
		if next, moved := w.moveAlong(pos, second); moved {
			return next
		}
		w.At(pos).Velocity.Y = 0
	}

	// Disperse sideways.
	if d := props.DispersionRate; d > 0 {
		w.At(pos).Velocity.Y = 0
		first, second := Pos{-d, 0}, Pos{d, 0}
		if w.rng.Coin() {
			first, second = second, first
		}
		if next, moved := w.moveAlong(pos, first); moved {
			return next
		}
		if next, moved := w.moveAlong(pos, second); moved {
			return next
		}
	}

	return pos
}

func gravitySign(f float32) int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// moveAlong walks the cell from pos towards pos+offset along a rasterized
// segment, swapping through every cell it is allowed to enter. It stops at
// the first blocked cell and reports whether the position changed.
func (w *World) moveAlong(pos Pos, offset Pos) (Pos, bool) {
	start := pos
	steps := abs(offset.X)
	if s := abs(offset.Y); s > steps {
		steps = s
	}

	for i := 1; i <= steps; i++ {
		next := Pos{start.X + offset.X*i/steps, start.Y + offset.Y*i/steps}
		if !w.canMoveTo(pos, next) {
			break
		}
		pos = w.Swap(pos, next)
		w.wakeAdjacentFalling(pos)
	}

	if pos != start {
		w.At(pos).Flags |= FlagFalling
		w.WakeChunkWithPixel(pos)
		return pos, true
	}
	return pos, false
}

// canMoveTo reports whether the cell at src may displace dst. Empty cells
// accept anything; otherwise a denser phase may sink through a lighter one.
func (w *World) canMoveTo(src, dst Pos) bool {
	if !w.Valid(src) || !w.Valid(dst) {
		return false
	}
	if w.At(dst).Type == TypeNone {
		return true
	}

	srcPhase := Props(w.At(src).Type).Phase
	dstPhase := Props(w.At(dst).Type).Phase
	switch srcPhase {
	case Solid:
		return dstPhase == Liquid || dstPhase == Gas
	case Liquid:
		return dstPhase == Gas
	default:
		return false
	}
}

// wakeAdjacentFalling gives the cells either side of pos a chance to start
// falling, resisted by their inertial resistance.
func (w *World) wakeAdjacentFalling(pos Pos) {
	for _, n := range [2]Pos{{pos.X - 1, pos.Y}, {pos.X + 1, pos.Y}} {
		if !w.Valid(n) {
			continue
		}
		px := w.At(n)
		props := Props(px.Type)
		if props.GravityFactor == 0 {
			continue
		}
		if w.rng.Unit() > float64(props.InertialResistance) {
			px.Flags |= FlagFalling
			w.WakeChunkWithPixel(n)
		}
	}
}

// updateAttributes runs the combustion lifecycle on the cell at pos.
func (w *World) updateAttributes(pos Pos) {
	px := w.At(pos)
	props := Props(px.Type)

	if !px.Flags.Has(FlagBurning) {
		return
	}

	// Fire keeps its chunk awake.
	w.WakeChunkWithPixel(pos)

	putOut := props.PutOut
	if w.isSurrounded(pos) {
		putOut = props.PutOutSurrounded
	}
	if w.rng.Unit() < float64(putOut) {
		px.Flags &^= FlagBurning
	}

	if px.Flags.Has(FlagBurning) && w.rng.Unit() < float64(props.BurnOutChance) {
		*px = Air()
	}
}

// isSurrounded reports whether every in-bounds neighbour of pos is occupied.
func (w *World) isSurrounded(pos Pos) bool {
	for _, off := range neighbourOffsets {
		n := Pos{pos.X + off.X, pos.Y + off.Y}
		if w.Valid(n) && w.At(n).Type == TypeNone {
			return false
		}
	}
	return true
}

// affectNeighbours applies boiling, corrosion, ignition, and ember emission
// from the cell at pos to its eight neighbours.
func (w *World) affectNeighbours(pos Pos) {
	px := w.At(pos)
	props := Props(px.Type)

	for _, off := range neighbourOffsets {
		n := Pos{pos.X + off.X, pos.Y + off.Y}
		if !w.Valid(n) {
			continue
		}
		neigh := w.At(n)

		// Boil water.
		if props.CanBoilWater && neigh.Type == TypeWater {
			*neigh = Steam(w.rng)
		}

		// Corrode, occasionally consuming the source as well.
		if props.IsCorrosionSource {
			if w.rng.Unit() > float64(Props(neigh.Type).CorrosionResist) {
				*neigh = Air()
				if w.rng.Unit() > 0.9 {
					*px = Air()
				}
			}
		}

		// Spread fire.
		if props.IsBurnSource || px.Flags.Has(FlagBurning) {
			if w.rng.Unit() < float64(Props(neigh.Type).Flammability) {
				neigh.Flags |= FlagBurning
				w.WakeChunkWithPixel(n)
			}
		}

		// Emit embers into empty space.
		if (props.IsEmberSource || px.Flags.Has(FlagBurning)) && neigh.Type == TypeNone {
			if w.rng.Unit() < 0.01 {
				*neigh = Ember(w.rng)
				w.WakeChunkWithPixel(n)
			}
		}
	}
}
