//go:build ebiten

package app

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/MagicLemma/alchimia/internal/config"
	"github.com/MagicLemma/alchimia/internal/core"
	"github.com/MagicLemma/alchimia/internal/render"
	"github.com/MagicLemma/alchimia/internal/sand"
	"github.com/MagicLemma/alchimia/internal/ui"
)

// Brush shapes, cycled with B.
const (
	brushSpray = iota
	brushSquare
	brushExplosion
	numBrushes
)

var brushNames = [numBrushes]string{"spray", "square", "explosion"}

// brushMaterials is the palette cycled with the mouse wheel.
var brushMaterials = []sand.Type{
	sand.TypeNone,
	sand.TypeSand,
	sand.TypeDirt,
	sand.TypeCoal,
	sand.TypeWater,
	sand.TypeLava,
	sand.TypeAcid,
	sand.TypeRock,
	sand.TypeTitanium,
	sand.TypeOil,
	sand.TypeGunpowder,
	sand.TypeMethane,
	sand.TypeFuse,
}

// Game adapts the sand world to the ebiten.Game interface: painting input,
// fixed-step ticking, and debug rendering.
type Game struct {
	world   *sand.World
	painter *render.GridPainter
	overlay *ui.Overlay
	clock   *core.FixedStep

	scale    int
	savePath string

	brush       int
	brushRadius float64
	material    int

	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided world.
func New(world *sand.World, cfg *config.Config) *Game {
	g := &Game{
		world:       world,
		painter:     render.NewGridPainter(world.Size(), world.Size()),
		overlay:     ui.NewOverlay(world, cfg.Window.Scale),
		clock:       core.NewFixedStep(cfg.Window.TPS),
		scale:       cfg.Window.Scale,
		savePath:    cfg.Sim.SavePath,
		brushRadius: cfg.Brush.Radius,
	}
	if t, ok := sand.TypeByName(cfg.Brush.Material); ok {
		for i, m := range brushMaterials {
			if m == t {
				g.material = i
			}
		}
	}
	return g
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Fill(sand.Air())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.brush = (g.brush + 1) % numBrushes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.save()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.load()
	}

	if _, wy := ebiten.Wheel(); wy > 0 {
		g.material = (g.material + 1) % len(brushMaterials)
	} else if wy < 0 {
		g.material = (g.material + len(brushMaterials) - 1) % len(brushMaterials)
	}

	g.overlay.Update()
	g.paint()

	if g.paused && !g.tickOnce {
		return nil
	}
	steps := g.clock.Steps()
	if g.tickOnce {
		steps = 1
		g.tickOnce = false
	}
	for i := 0; i < steps; i++ {
		g.world.Step()
	}
	return nil
}

func (g *Game) cursorCell() sand.Pos {
	mx, my := ebiten.CursorPosition()
	return sand.Pos{X: mx / g.scale, Y: my / g.scale}
}

func (g *Game) paint() {
	center := g.cursorCell()
	rng := g.world.Rand()

	switch g.brush {
	case brushSpray:
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			return
		}
		t := brushMaterials[g.material]
		for i := 0; i < 2*int(g.brushRadius)+1; i++ {
			dx, dy := rng.InDisc(g.brushRadius)
			pos := sand.Pos{X: center.X + int(dx), Y: center.Y + int(dy)}
			if g.world.Valid(pos) {
				g.world.Set(pos, sand.Spawn(t, rng))
			}
		}

	case brushSquare:
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			return
		}
		t := brushMaterials[g.material]
		r := int(g.brushRadius)
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				pos := sand.Pos{X: center.X + dx, Y: center.Y + dy}
				if g.world.Valid(pos) {
					g.world.Set(pos, sand.Spawn(t, rng))
				}
			}
		}

	case brushExplosion:
		if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			return
		}
		r := g.brushRadius
		sand.ApplyExplosion(g.world, center, sand.Explosion{
			MinRadius: 0.8 * r,
			MaxRadius: r,
			Scorch:    0.25 * r,
		})
	}
}

func (g *Game) save() {
	f, err := os.Create(g.savePath)
	if err != nil {
		log.Printf("save: %v", err)
		return
	}
	defer f.Close()
	if err := g.world.Serialize(f); err != nil {
		log.Printf("save: %v", err)
	}
}

func (g *Game) load() {
	f, err := os.Open(g.savePath)
	if err != nil {
		log.Printf("load: %v", err)
		return
	}
	defer f.Close()
	if err := g.world.Deserialize(f); err != nil {
		log.Printf("load: %v", err)
	}
}

// Draw renders the world, the overlay, and the HUD line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Display(), g.scale)
	g.overlay.Draw(screen)

	hud := fmt.Sprintf("tool: %s (%s)  awake chunks: %d  fps: %.0f",
		brushMaterials[g.material], brushNames[g.brush],
		g.world.NumAwakeChunks(), ebiten.ActualFPS())
	ebitenutil.DebugPrint(screen, hud)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.Size() * g.scale, g.world.Size() * g.scale
}
