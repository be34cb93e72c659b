package main

import (
	"context"
	"flag"

	"github.com/1siamBot/isogrid/engine/iso"
	"github.com/1siamBot/isogrid/engine/scene"
)

// sceneFlags are shared by every command that reads a scene
type sceneFlags struct {
	path    string
	builtin string
	lexi    bool
}

func (s *sceneFlags) register(f *flag.FlagSet) {
	f.StringVar(&s.path, "scene", "", "Scene file path (.yaml, .yml, .json)")
	f.StringVar(&s.builtin, "builtin", scene.DemoName, "Built-in scene used when -scene is empty")
	f.BoolVar(&s.lexi, "lexi", false, "Sort by (diagonal, elevation) instead of the depth key")
}

func (s *sceneFlags) load(ctx context.Context) (*scene.Scene, error) {
	if s.path != "" {
		return scene.Load(ctx, s.path)
	}
	return scene.LoadBuiltin(ctx, s.builtin)
}

func (s *sceneFlags) sortFunc() iso.SortFunc {
	if s.lexi {
		return iso.SortLexicographic
	}
	return iso.SortByDepth
}
