package stream

import (
	"testing"

	"go.uber.org/zap"

	"github.com/MagicLemma/alchimia/internal/sand"
)

func newTestServer() *Server {
	return New(sand.NewSized(32, 1), zap.NewNop())
}

func countType(w *sand.World, t sand.Type) int {
	n := 0
	for y := 0; y < w.Size(); y++ {
		for x := 0; x < w.Size(); x++ {
			if w.At(sand.Pos{X: x, Y: y}).Type == t {
				n++
			}
		}
	}
	return n
}

func TestBrushCommandSpawnsMaterial(t *testing.T) {
	s := newTestServer()
	s.apply(Command{Op: "brush", X: 16, Y: 16, Material: "sand", Radius: 4})
	if countType(s.world, sand.TypeSand) == 0 {
		t.Fatal("brush placed no sand")
	}
}

func TestBrushCommandRejectsUnknownMaterial(t *testing.T) {
	s := newTestServer()
	s.apply(Command{Op: "brush", X: 16, Y: 16, Material: "adamantium", Radius: 4})
	for mt := sand.TypeNone + 1; ; mt++ {
		if _, ok := sand.TypeByName(mt.String()); !ok {
			break
		}
		if countType(s.world, mt) != 0 {
			t.Fatalf("unknown material spawned %v", mt)
		}
	}
}

func TestExplodeCommandDestroys(t *testing.T) {
	s := newTestServer()
	s.world.Fill(sand.Sand(s.world.Rand()))
	s.apply(Command{Op: "explode", X: 16, Y: 16, Radius: 8})
	if got := s.world.At(sand.Pos{X: 16, Y: 16}).Type; got == sand.TypeSand {
		t.Fatal("explosion left the centre cell intact")
	}
}

func TestClearCommand(t *testing.T) {
	s := newTestServer()
	s.world.Fill(sand.Sand(s.world.Rand()))
	s.apply(Command{Op: "clear"})
	if countType(s.world, sand.TypeSand) != 0 {
		t.Fatal("clear left sand behind")
	}
}
