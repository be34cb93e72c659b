package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/1siamBot/isogrid/engine/iso"
	"github.com/google/subcommands"
)

type validateCmd struct {
	scene sceneFlags
}

func (c *validateCmd) Name() string     { return "validate" }
func (c *validateCmd) Synopsis() string { return "load a scene and check it can be drawn in order" }
func (c *validateCmd) Usage() string {
	return "isotool validate [-scene <path> -lexi]\n"
}
func (c *validateCmd) SetFlags(f *flag.FlagSet) {
	c.scene.register(f)
}

// validateScene checks a loaded scene. Errors break draw order; warnings
// only mark cosmetic gaps such as types missing from the palette.
func validateScene(tiles []iso.Tile, pal iso.Palette, lexi bool) (errs, warnings []string) {
	if !lexi {
		if err := iso.CheckElevation(tiles); err != nil {
			errs = append(errs, err.Error())
		}
	}
	unknown := map[string]bool{}
	for _, t := range tiles {
		if t.Color != nil || unknown[t.Type] {
			continue
		}
		if _, ok := pal[t.Type]; !ok {
			unknown[t.Type] = true
			warnings = append(warnings, fmt.Sprintf("type %q has no palette entry, drawn as %v", t.Type, iso.DefaultColor))
		}
	}
	return errs, warnings
}

func (c *validateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := c.scene.load(ctx)
	if err != nil {
		log.Print(err)
		return subcommands.ExitFailure
	}

	errs, warnings := validateScene(s.Tiles, s.Palette, c.scene.lexi)
	for _, w := range warnings {
		log.Printf("validate: warning: %s", w)
	}
	for _, e := range errs {
		log.Printf("validate: %s", e)
	}
	if len(errs) > 0 {
		return subcommands.ExitFailure
	}
	log.Printf("validate: ok (%d tiles)", len(s.Tiles))
	return subcommands.ExitSuccess
}
