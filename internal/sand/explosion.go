package sand

import "math"

// Explosion describes a localized destructive event.
type Explosion struct {
	// Radii from the centre within which matter is destroyed. The blast
	// distance of each ray is drawn uniformly from [MinRadius, MaxRadius].
	MinRadius float64
	MaxRadius float64

	// Scorch is the standard deviation, in cells, of the darkening band
	// applied to solid material beyond the destroyed region.
	Scorch float64
}

// ApplyExplosion destroys matter around center by casting rays out to the
// perimeter of the bounding square. Rays are independent: a later ray may
// destroy cells an earlier one only scorched.
func ApplyExplosion(w *World, center Pos, info Explosion) {
	b := int(info.MaxRadius + 3*info.Scorch)
	for i := -b; i <= b; i++ {
		explosionRay(w, center, Pos{center.X + i, center.Y + b}, info)
		explosionRay(w, center, Pos{center.X + i, center.Y - b}, info)
		explosionRay(w, center, Pos{center.X + b, center.Y + i}, info)
		explosionRay(w, center, Pos{center.X - b, center.Y + i}, info)
	}
}

func explosionRay(w *World, start, end Pos, info Explosion) {
	dx := float64(end.X - start.X)
	dy := float64(end.Y - start.Y)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		return
	}
	sx, sy := dx/steps, dy/steps

	cx, cy := float64(start.X), float64(start.Y)
	dist2 := func() float64 {
		ddx := cx - float64(start.X)
		ddy := cy - float64(start.Y)
		return ddx*ddx + ddy*ddy
	}

	// Destruction phase. Titanium stops the ray entirely.
	blast := w.rng.Range(info.MinRadius, info.MaxRadius)
	for {
		pos := Pos{int(cx), int(cy)}
		if !w.Valid(pos) || dist2() >= blast*blast {
			break
		}
		if w.At(pos).Type == TypeTitanium {
			return
		}
		if w.rng.Unit() < 0.05 {
			w.Set(pos, Ember(w.rng))
		} else {
			w.Set(pos, Air())
		}
		cx += sx
		cy += sy
	}

	// Scorch phase: darken solid material in a band past the blast edge.
	scorchLimit := math.Sqrt(dist2()) + math.Abs(w.rng.Normal(0, info.Scorch))
	for {
		pos := Pos{int(cx), int(cy)}
		if !w.Valid(pos) || dist2() >= scorchLimit*scorchLimit {
			break
		}
		px := w.At(pos)
		if Props(px.Type).Phase == Solid {
			for c := range px.Color {
				px.Color[c] *= 0.8
			}
		}
		cx += sx
		cy += sy
	}
}
