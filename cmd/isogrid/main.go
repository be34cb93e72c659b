package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/1siamBot/isogrid/engine/iso"
	"github.com/1siamBot/isogrid/engine/render"
	"github.com/1siamBot/isogrid/engine/scene"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Game implements ebiten.Game interface
type Game struct {
	renderer *render.IsoRenderer
	scene    *scene.Scene
	frame    iso.Frame
	sortFn   iso.SortFunc
	sortName string

	scenePath string
	watcher   *scene.Watcher
	reloads   int
	lastErr   error
	showHUD   bool
}

func NewGame(s *scene.Scene, sortFn iso.SortFunc, sortName string) *Game {
	g := &Game{
		renderer: render.NewIsoRenderer(ScreenWidth, ScreenHeight),
		sortFn:   sortFn,
		sortName: sortName,
		showHUD:  true,
	}
	g.setScene(s)
	return g
}

func (g *Game) setScene(s *scene.Scene) {
	if err := iso.CheckElevation(s.Tiles); err != nil && g.sortName == "depth-key" {
		log.Printf("isogrid: %v; draw order may be wrong, try -lexi", err)
	}
	g.scene = s
	g.frame = s.Frame(g.sortFn)
	g.renderer.Camera.Fit(g.frame.Bounds())
}

// Watch reloads the scene from path whenever it or its generator script changes
func (g *Game) Watch(path string) error {
	paths, err := scene.WatchPaths(path)
	if err != nil {
		return err
	}
	w, err := scene.NewWatcher(paths...)
	if err != nil {
		return err
	}
	g.scenePath = path
	g.watcher = w
	return nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	if g.watcher == nil {
		return nil
	}
	// drain without blocking; the scene swaps between frames
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return nil
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return nil
			}
			log.Printf("isogrid: watch: %v", err)
		default:
			return nil
		}
	}
}

func (g *Game) reload(changed string) {
	s, err := scene.Load(context.Background(), g.scenePath)
	if err != nil {
		g.lastErr = err
		log.Printf("isogrid: reload after %s: %v", changed, err)
		return
	}
	g.lastErr = nil
	g.reloads++
	g.setScene(s)
	// the script reference may have moved
	if paths, err := scene.WatchPaths(g.scenePath); err == nil {
		if err := g.watcher.Add(paths...); err != nil {
			log.Printf("isogrid: watch: %v", err)
		}
	}
	log.Printf("isogrid: reloaded %s (%d tiles)", g.scenePath, len(s.Tiles))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.DrawBackground(screen, g.scene.Background)
	g.renderer.DrawFrame(screen, g.frame)

	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	name := g.scene.Name
	if name == "" {
		name = "untitled"
	}
	info := fmt.Sprintf(
		"%s | Tiles: %d | Sort: %s | Zoom: %.2fx",
		name, len(g.scene.Tiles), g.sortName, g.renderer.Camera.Zoom,
	)
	if g.watcher != nil {
		info += fmt.Sprintf("\nWatching %s | Reloads: %d", g.scenePath, g.reloads)
	}
	if g.lastErr != nil {
		info += "\nReload failed: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrint(screen, info)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cam := g.renderer.Camera
	if cam.Resize(outsideWidth, outsideHeight) {
		cam.Fit(g.frame.Bounds())
	}
	return cam.ScreenW, cam.ScreenH
}

func main() {
	scenePath := flag.String("scene", "", "scene file (.yaml or .json); empty uses the built-in grid")
	builtin := flag.String("builtin", scene.DemoName, "built-in scene to show when -scene is empty")
	watch := flag.Bool("watch", false, "reload the scene when its file changes")
	lexi := flag.Bool("lexi", false, "sort by (diagonal, elevation) instead of the depth key")
	hud := flag.Bool("hud", true, "show scene info overlay")
	flag.Parse()

	ctx := context.Background()
	var s *scene.Scene
	var err error
	if *scenePath != "" {
		s, err = scene.Load(ctx, *scenePath)
	} else {
		s, err = scene.LoadBuiltin(ctx, *builtin)
	}
	if err != nil {
		log.Fatal(err)
	}

	sortFn, sortName := iso.SortFunc(iso.SortByDepth), "depth-key"
	if *lexi {
		sortFn, sortName = iso.SortLexicographic, "lexicographic"
	}

	game := NewGame(s, sortFn, sortName)
	game.showHUD = *hud
	if *watch {
		if *scenePath == "" {
			log.Fatal("isogrid: -watch needs -scene")
		}
		if err := game.Watch(*scenePath); err != nil {
			log.Fatal(err)
		}
	}
	defer game.Close()

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("isogrid")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
