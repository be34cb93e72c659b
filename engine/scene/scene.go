package scene

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/1siamBot/isogrid/engine/iso"
	"gopkg.in/yaml.v3"
)

// DefaultLayerHeight is the thickness of a stacked layer when a stack leaves it unset
const DefaultLayerHeight = 20

// Scene is a fully expanded, read-only render input
type Scene struct {
	Name       string
	Config     iso.TileConfig
	Background iso.Color
	Palette    iso.Palette
	Tiles      []iso.Tile
}

// Frame builds the scene's draw list with the given sort
func (s *Scene) Frame(sortFn iso.SortFunc) iso.Frame {
	return iso.BuildFrameWith(s.Tiles, s.Config, s.Palette, sortFn)
}

// File is the on-disk form of a scene
type File struct {
	Name       string              `yaml:"name,omitempty" json:"name,omitempty"`
	Config     *iso.TileConfig     `yaml:"config,omitempty" json:"config,omitempty"`
	Background *HexColor           `yaml:"background,omitempty" json:"background,omitempty"`
	Palette    map[string]HexColor `yaml:"palette,omitempty" json:"palette,omitempty"`
	Tiles      []TileSpec          `yaml:"tiles,omitempty" json:"tiles,omitempty"`
	Stacks     []StackSpec         `yaml:"stacks,omitempty" json:"stacks,omitempty"`
	Script     string              `yaml:"script,omitempty" json:"script,omitempty"` // tengo generator, relative to the scene file
}

// TileSpec is a single tile entry
type TileSpec struct {
	X       int       `yaml:"x" json:"x"`
	Y       int       `yaml:"y" json:"y"`
	Z       float64   `yaml:"z" json:"z"`
	Height  float64   `yaml:"height,omitempty" json:"height,omitempty"`
	Type    string    `yaml:"type,omitempty" json:"type,omitempty"`
	Color   *HexColor `yaml:"color,omitempty" json:"color,omitempty"`
	Outline *HexColor `yaml:"outline,omitempty" json:"outline,omitempty"`
}

func (t TileSpec) Tile() iso.Tile {
	return iso.Tile{
		GridX:   t.X,
		GridY:   t.Y,
		Z:       t.Z,
		Height:  t.Height,
		Type:    t.Type,
		Color:   t.Color.ptr(),
		Outline: t.Outline.ptr(),
	}
}

func specFromTile(t iso.Tile) TileSpec {
	return TileSpec{
		X:       t.GridX,
		Y:       t.GridY,
		Z:       t.Z,
		Height:  t.Height,
		Type:    t.Type,
		Color:   hexPtr(t.Color),
		Outline: hexPtr(t.Outline),
	}
}

// StackSpec is a column of equal layers at one cell, from z=0 up to MaxZ
type StackSpec struct {
	X           int       `yaml:"x" json:"x"`
	Y           int       `yaml:"y" json:"y"`
	MaxZ        float64   `yaml:"max_z" json:"max_z"`
	LayerHeight float64   `yaml:"layer_height,omitempty" json:"layer_height,omitempty"`
	Type        string    `yaml:"type,omitempty" json:"type,omitempty"`
	Color       *HexColor `yaml:"color,omitempty" json:"color,omitempty"`
	Outline     *HexColor `yaml:"outline,omitempty" json:"outline,omitempty"`
}

// Expand returns one tile per layer at z = 0, lh, 2lh, ... <= MaxZ
func (s StackSpec) Expand() []iso.Tile {
	lh := s.LayerHeight
	if !(lh > 0) {
		lh = DefaultLayerHeight
	}
	typ := s.Type
	if typ == "" {
		typ = "block"
	}
	if !(s.MaxZ >= 0) || math.IsInf(s.MaxZ, 1) {
		return nil
	}
	var tiles []iso.Tile
	for i := 0; ; i++ {
		z := float64(i) * lh
		if z > s.MaxZ {
			break
		}
		tiles = append(tiles, iso.Tile{
			GridX:   s.X,
			GridY:   s.Y,
			Z:       z,
			Height:  lh,
			Type:    typ,
			Color:   s.Color.ptr(),
			Outline: s.Outline.ptr(),
		})
	}
	return tiles
}

// Build expands a File into a Scene. Scripts are read from fsys.
func Build(ctx context.Context, f *File, fsys fs.FS) (*Scene, error) {
	s := &Scene{
		Name:       f.Name,
		Config:     iso.DefaultConfig(),
		Background: iso.Black,
		Palette:    iso.DefaultPalette(),
	}
	if f.Config != nil {
		s.Config = *f.Config
	}
	if f.Background != nil {
		s.Background = f.Background.Color()
	}
	if len(f.Palette) > 0 {
		extra := make(iso.Palette, len(f.Palette))
		for k, v := range f.Palette {
			extra[k] = v.Color()
		}
		s.Palette = s.Palette.Merge(extra)
	}

	for _, t := range f.Tiles {
		s.Tiles = append(s.Tiles, t.Tile())
	}
	for _, st := range f.Stacks {
		s.Tiles = append(s.Tiles, st.Expand()...)
	}

	if f.Script != "" {
		if fsys == nil {
			return nil, fmt.Errorf("scene: script %s: no filesystem to load from", f.Script)
		}
		src, err := fs.ReadFile(fsys, filepath.ToSlash(f.Script))
		if err != nil {
			return nil, fmt.Errorf("scene: load script %s: %w", f.Script, err)
		}
		tiles, err := RunScript(ctx, src, DefaultLayerHeight)
		if err != nil {
			return nil, fmt.Errorf("scene: script %s: %w", f.Script, err)
		}
		s.Tiles = append(s.Tiles, tiles...)
	}
	return s, nil
}

// File returns the flattened on-disk form of s; stacks and scripts are
// written out as plain tiles.
func (s *Scene) File() *File {
	cfg := s.Config
	bg := HexColor(s.Background)
	f := &File{
		Name:       s.Name,
		Config:     &cfg,
		Background: &bg,
		Palette:    make(map[string]HexColor, len(s.Palette)),
		Tiles:      make([]TileSpec, 0, len(s.Tiles)),
	}
	for k, v := range s.Palette {
		f.Palette[k] = HexColor(v)
	}
	for _, t := range s.Tiles {
		f.Tiles = append(f.Tiles, specFromTile(t))
	}
	return f
}

// Format picks the codec for a scene path
type Format uint8

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatOf returns FormatJSON for .json paths and FormatYAML otherwise
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Parse decodes a scene file. Config fields the file leaves out keep their
// iso.DefaultConfig values.
func Parse(data []byte, format Format) (*File, error) {
	cfg := iso.DefaultConfig()
	f := File{Config: &cfg}
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &f)
	default:
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("scene: unmarshal: %w", err)
	}
	return &f, nil
}

// Load reads and builds a scene from disk
func Load(ctx context.Context, path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", path, err)
	}
	f, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Build(ctx, f, os.DirFS(filepath.Dir(path)))
}

// WatchPaths returns the files a scene at path is built from: the scene file
// itself and its generator script, if any.
func WatchPaths(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", path, err)
	}
	f, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	paths := []string{path}
	if f.Script != "" {
		paths = append(paths, filepath.Join(filepath.Dir(path), filepath.FromSlash(f.Script)))
	}
	return paths, nil
}

// Encode writes the flattened scene in the given format
func (s *Scene) Encode(format Format) ([]byte, error) {
	if format == FormatJSON {
		return json.MarshalIndent(s.File(), "", "  ")
	}
	return yaml.Marshal(s.File())
}

// Save writes the flattened scene to path, picking the format from its extension
func (s *Scene) Save(path string) error {
	data, err := s.Encode(FormatOf(path))
	if err != nil {
		return fmt.Errorf("scene: encode %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0644)
}
