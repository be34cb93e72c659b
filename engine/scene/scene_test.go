package scene_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/1siamBot/isogrid/engine/iso"
	"github.com/1siamBot/isogrid/engine/scene"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestStackExpand(t *testing.T) {
	for _, tc := range []struct {
		name  string
		stack scene.StackSpec
		want  []float64
	}{
		{"three_layers", scene.StackSpec{MaxZ: 40, LayerHeight: 20}, []float64{0, 20, 40}},
		{"two_layers", scene.StackSpec{MaxZ: 20, LayerHeight: 20}, []float64{0, 20}},
		{"ground_only", scene.StackSpec{MaxZ: 0, LayerHeight: 20}, []float64{0}},
		{"default_height", scene.StackSpec{MaxZ: 45}, []float64{0, 20, 40}},
		{"fractional", scene.StackSpec{MaxZ: 0.3, LayerHeight: 0.1}, []float64{0, 0.1, 0.2}},
		{"fractional_exact", scene.StackSpec{MaxZ: 0.5, LayerHeight: 0.25}, []float64{0, 0.25, 0.5}},
		{"negative", scene.StackSpec{MaxZ: -1}, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var got []float64
			for _, tile := range tc.stack.Expand() {
				got = append(got, tile.Z)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("layer elevations (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStackExpandFields(t *testing.T) {
	white := scene.HexColor(iso.White)
	tiles := scene.StackSpec{X: 1, Y: 2, MaxZ: 20, Outline: &white}.Expand()
	require.Len(t, tiles, 2)
	for _, tile := range tiles {
		require.Equal(t, "block", tile.Type)
		require.Equal(t, float64(scene.DefaultLayerHeight), tile.Height)
		require.Equal(t, 1, tile.GridX)
		require.Equal(t, 2, tile.GridY)
		require.NotNil(t, tile.Outline)
		require.Equal(t, iso.White, *tile.Outline)
		require.Nil(t, tile.Color)
	}
}

func TestLoadDemo(t *testing.T) {
	s, err := scene.LoadDemo(context.Background())
	require.NoError(t, err)

	require.Equal(t, "demo", s.Name)
	require.Equal(t, iso.Color(0x2c3e50), s.Background)
	require.Equal(t, iso.TileConfig{TileWidth: 100, TileHeight: 50, TileDepth: 30, OriginX: 400, OriginY: 400}, s.Config)
	// 6 road tiles + 3 + 2 + 1 stacked block layers
	require.Len(t, s.Tiles, 12)
	require.NoError(t, iso.CheckElevation(s.Tiles))

	counts := map[string]int{}
	for _, tile := range s.Tiles {
		counts[tile.Type]++
		require.NotNil(t, tile.Outline)
		require.Equal(t, iso.White, *tile.Outline)
	}
	require.Equal(t, map[string]int{"road": 6, "block": 6}, counts)

	f := s.Frame(iso.SortByDepth)
	require.Len(t, f.Tiles, 12)
	first := f.Tiles[0].Tile
	require.Equal(t, [2]int{0, 0}, [2]int{first.GridX, first.GridY})
	last := f.Tiles[len(f.Tiles)-1].Tile
	require.Equal(t, [2]int{2, 2}, [2]int{last.GridX, last.GridY})
}

func TestBuildPaletteAndDefaults(t *testing.T) {
	f, err := scene.Parse([]byte(`
palette:
  road: "#111111"
  lava: orangered
tiles:
  - {x: 0, y: 0, type: road}
  - {x: 1, y: 0, type: lava, color: "0x123456"}
`), scene.FormatYAML)
	require.NoError(t, err)

	s, err := scene.Build(context.Background(), f, nil)
	require.NoError(t, err)
	require.Equal(t, iso.DefaultConfig(), s.Config)
	require.Equal(t, iso.Black, s.Background)
	require.Equal(t, iso.Color(0x111111), s.Palette["road"])
	require.Equal(t, iso.Color(0xff4500), s.Palette["lava"])
	require.Equal(t, iso.Color(0x2ecc71), s.Palette["grass"])

	require.Equal(t, iso.Color(0x111111), s.Palette.Resolve(s.Tiles[0]))
	require.Equal(t, iso.Color(0x123456), s.Palette.Resolve(s.Tiles[1]))
}

func TestParsePartialConfig(t *testing.T) {
	for _, tc := range []struct {
		name   string
		data   string
		format scene.Format
	}{
		{"yaml", "config: {tile_width: 64}\n", scene.FormatYAML},
		{"json", `{"config": {"tile_width": 64}}`, scene.FormatJSON},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f, err := scene.Parse([]byte(tc.data), tc.format)
			require.NoError(t, err)
			s, err := scene.Build(context.Background(), f, nil)
			require.NoError(t, err)

			want := iso.DefaultConfig()
			want.TileWidth = 64
			require.Equal(t, want, s.Config)
		})
	}
}

func TestWatchPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("script: generators/ring.tengo\n"), 0644))

	paths, err := scene.WatchPaths(path)
	require.NoError(t, err)
	require.Equal(t, []string{path, filepath.Join(dir, "generators", "ring.tengo")}, paths)

	require.NoError(t, os.WriteFile(path, []byte("tiles: []\n"), 0644))
	paths, err = scene.WatchPaths(path)
	require.NoError(t, err)
	require.Equal(t, []string{path}, paths)
}

func TestParseErrors(t *testing.T) {
	_, err := scene.Parse([]byte("tiles: [{x: 0, color: nope}]"), scene.FormatYAML)
	require.ErrorIs(t, err, scene.ErrUnknownColor)

	_, err = scene.Parse([]byte("{"), scene.FormatJSON)
	require.Error(t, err)

	_, err = scene.Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	demo, err := scene.LoadDemo(ctx)
	require.NoError(t, err)

	for _, name := range []string{"demo.yaml", "demo.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, demo.Save(path))

			loaded, err := scene.Load(ctx, path)
			require.NoError(t, err)
			if diff := cmp.Diff(demo, loaded); diff != "" {
				t.Errorf("round trip mismatch (-saved +loaded):\n%s", diff)
			}
		})
	}
}

func TestBuildScriptFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"gen/row.tengo": {Data: []byte(`
for i := 0; i < 3; i++ {
	tiles = append(tiles, {x: i, y: 0, type: "water"})
}
`)},
	}
	f := &scene.File{
		Tiles:  []scene.TileSpec{{X: 5, Y: 5, Type: "road"}},
		Script: "gen/row.tengo",
	}
	s, err := scene.Build(context.Background(), f, fsys)
	require.NoError(t, err)
	require.Len(t, s.Tiles, 4)
	require.Equal(t, "road", s.Tiles[0].Type)
	require.Equal(t, "water", s.Tiles[3].Type)
	require.Equal(t, 2, s.Tiles[3].GridX)

	f.Script = "gen/missing.tengo"
	_, err = scene.Build(context.Background(), f, fsys)
	require.Error(t, err)

	_, err = scene.Build(context.Background(), f, nil)
	require.Error(t, err)
}
