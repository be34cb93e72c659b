package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/1siamBot/isogrid/engine/iso"
	"github.com/1siamBot/isogrid/engine/scene"
	"github.com/google/subcommands"
	"gopkg.in/yaml.v3"
)

type dumpCmd struct {
	scene sceneFlags
	flat  bool
}

func (c *dumpCmd) Name() string     { return "dump" }
func (c *dumpCmd) Synopsis() string { return "print a scene's draw list as YAML" }
func (c *dumpCmd) Usage() string {
	return "isotool dump [-scene <path> -flat -lexi]\n"
}
func (c *dumpCmd) SetFlags(f *flag.FlagSet) {
	c.scene.register(f)
	f.BoolVar(&c.flat, "flat", false, "Print the expanded scene file instead of draw ops")
}

type dumpTile struct {
	Cell   string   `yaml:"cell"`
	Z      float64  `yaml:"z"`
	Height float64  `yaml:"height,omitempty"`
	Depth  float64  `yaml:"depth"`
	Anchor string   `yaml:"anchor"`
	Ops    []dumpOp `yaml:"ops"`
}

type dumpOp struct {
	Face   string       `yaml:"face"`
	Kind   string       `yaml:"kind"`
	Color  string       `yaml:"color"`
	Alpha  float64      `yaml:"alpha"`
	Width  float64      `yaml:"width,omitempty"`
	Points [][2]float64 `yaml:"points,flow"`
}

func dumpFrame(w io.Writer, f iso.Frame) error {
	tiles := make([]dumpTile, 0, len(f.Tiles))
	for _, g := range f.Tiles {
		t := dumpTile{
			Cell:   fmt.Sprintf("%d,%d", g.Tile.GridX, g.Tile.GridY),
			Z:      g.Tile.Z,
			Height: g.Tile.Height,
			Depth:  iso.DepthOf(g.Tile),
			Anchor: fmt.Sprintf("%g,%g", g.Anchor.X, g.Anchor.Y),
		}
		for _, op := range g.Absolute() {
			d := dumpOp{
				Face:  op.Face.String(),
				Kind:  op.Kind.String(),
				Color: op.Color.String(),
				Alpha: op.Alpha,
				Width: op.Width,
			}
			for _, p := range op.Polygon {
				d.Points = append(d.Points, [2]float64{p.X, p.Y})
			}
			t.Ops = append(t.Ops, d)
		}
		tiles = append(tiles, t)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tiles); err != nil {
		return err
	}
	return enc.Close()
}

// dumpFlat writes the scene with stacks and scripts expanded to plain tiles
func dumpFlat(w io.Writer, s *scene.Scene) error {
	data, err := s.Encode(scene.FormatYAML)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (c *dumpCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := c.scene.load(ctx)
	if err != nil {
		log.Print(err)
		return subcommands.ExitFailure
	}

	if c.flat {
		if err := dumpFlat(os.Stdout, s); err != nil {
			log.Print(err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if err := dumpFrame(os.Stdout, s.Frame(c.scene.sortFunc())); err != nil {
		log.Print(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
