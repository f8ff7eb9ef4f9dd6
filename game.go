package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/impulse/common"
	"github.com/milk9111/impulse/debugdraw"
	"github.com/milk9111/impulse/physics"
	"github.com/milk9111/impulse/scene"
)

// prop is the sandbox's opaque scene object. The physics layer never looks
// inside it; bindings key on its pointer identity.
type prop struct {
	name string
	spec scene.BodySpec
}

type Game struct {
	frames int

	world   *physics.World
	queue   *physics.EventQueue
	watcher *scene.Watcher
	ui      *ebitenui.UI

	sceneName string
	props     []*prop
	spawned   []*prop
	clicks    int

	begins    int
	separates int

	paused bool
	quit   bool
}

func NewGame(sceneName string, cfg physics.Config, debug bool) *Game {
	g := &Game{sceneName: sceneName}

	g.world = physics.NewWorld(cfg)
	g.world.SetDebug(debug)
	g.queue = physics.NewEventQueue(g.world)
	g.ui = NewPauseUI(g)

	if err := g.loadScene(); err != nil {
		log.Printf("game: load scene %s: %v", sceneName, err)
	}

	watcher, err := scene.NewWatcher("scene", "scene/scripts")
	if err != nil {
		log.Printf("game: scene hot reload disabled: %v", err)
	} else {
		g.watcher = watcher
	}

	return g
}

func (g *Game) loadScene() error {
	spec, err := scene.LoadSceneSpec(g.sceneName)
	if err != nil {
		return err
	}

	g.world.Clear()
	g.props = g.props[:0]
	g.spawned = g.spawned[:0]

	for _, body := range spec.Bodies {
		def, err := body.BodyDef()
		if err != nil {
			log.Printf("game: skipping body: %v", err)
			continue
		}
		p := &prop{name: body.Name, spec: body}
		if g.world.Register(p, def) == nil {
			log.Printf("game: body %q produced no shape", body.Name)
			continue
		}
		g.props = append(g.props, p)
	}

	return nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.frames++
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.world.SetDebug(!g.world.Debug())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.loadScene(); err != nil {
			log.Printf("game: reload scene: %v", err)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.spawnBox(float64(x), float64(y))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		x, y := ebiten.CursorPosition()
		g.spawnBall(float64(x), float64(y))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.despawnLast()
	}

	g.world.Step(0)

	g.queue.Drain(func(ev physics.Event) {
		switch ev.Kind {
		case physics.EventBegin:
			g.begins++
		case physics.EventSeparate:
			g.separates++
		}
	})

	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: scene file %s changed, reloading", name)
			if err := g.loadScene(); err != nil {
				log.Printf("game: reload scene: %v", err)
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: scene watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) spawnBox(x, y float64) {
	g.clicks++
	spec := scene.BodySpec{
		Name:     fmt.Sprintf("click-box-%d", g.clicks),
		X:        x,
		Y:        y,
		Width:    32,
		Height:   32,
		Mass:     1,
		Friction: 0.7,
	}
	g.spawnSpec(spec)
}

func (g *Game) spawnBall(x, y float64) {
	g.clicks++
	spec := scene.BodySpec{
		Name:       fmt.Sprintf("click-ball-%d", g.clicks),
		Shape:      "circle",
		X:          x,
		Y:          y,
		Radius:     16,
		Mass:       1,
		Friction:   0.6,
		Elasticity: 0.5,
	}
	g.spawnSpec(spec)
}

func (g *Game) spawnSpec(spec scene.BodySpec) {
	def, err := spec.BodyDef()
	if err != nil {
		log.Printf("game: spawn: %v", err)
		return
	}
	p := &prop{name: spec.Name, spec: spec}
	if g.world.Register(p, def) == nil {
		return
	}
	g.props = append(g.props, p)
	g.spawned = append(g.spawned, p)
}

func (g *Game) despawnLast() {
	if len(g.spawned) == 0 {
		return
	}
	p := g.spawned[len(g.spawned)-1]
	g.spawned = g.spawned[:len(g.spawned)-1]
	if !g.world.Unregister(p) {
		return
	}
	for i, other := range g.props {
		if other == p {
			g.props = append(g.props[:i], g.props[i+1:]...)
			break
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawProps(screen)

	if g.world.Debug() {
		debugdraw.Draw(g.world.Space(), screen, debugdraw.Identity())
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.2f    Bodies: %d    Contacts: %d begun / %d ended\nLMB spawn box  C spawn ball  X despawn  D wireframes  R reset  Esc pause",
		ebiten.ActualFPS(), g.world.Len(), g.begins, g.separates))

	if g.paused {
		g.ui.Draw(screen)
	}
}

// drawProps renders the solid pass. Boxes draw axis-aligned; their rotation
// shows up in the wireframe pass.
func (g *Game) drawProps(screen *ebiten.Image) {
	g.world.Each(func(b *physics.Binding) {
		p, ok := b.Target.(*prop)
		if !ok || p.spec.Sensor {
			return
		}
		pos := b.Body.Position()
		switch p.spec.Shape {
		case "circle":
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(p.spec.Radius), colornames.Coral, true)
		case "segment":
			ebitenutil.DrawLine(screen, p.spec.X, p.spec.Y, p.spec.X2, p.spec.Y2, colornames.Slategray)
		case "polygon":
			// wireframe-only; the debug pass draws it
		default:
			vector.DrawFilledRect(screen,
				float32(pos.X-p.spec.Width/2), float32(pos.Y-p.spec.Height/2),
				float32(p.spec.Width), float32(p.spec.Height),
				colornames.Burlywood, true)
		}
	})
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
