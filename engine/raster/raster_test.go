package raster_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/1siamBot/isogrid/engine/iso"
	"github.com/1siamBot/isogrid/engine/raster"
	"github.com/stretchr/testify/require"
)

var testConfig = iso.TileConfig{TileWidth: 100, TileHeight: 50, OriginX: 400, OriginY: 400}

// near allows one step of rounding per channel from partial coverage sums
func near(t *testing.T, img image.Image, x, y int, want color.Color) {
	t.Helper()
	got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	w := color.NRGBAModel.Convert(want).(color.NRGBA)
	diff := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}
	if diff(got.R, w.R) > 1 || diff(got.G, w.G) > 1 || diff(got.B, w.B) > 1 || diff(got.A, w.A) > 1 {
		t.Errorf("pixel (%d,%d) = %+v, want %+v", x, y, got, w)
	}
}

func TestRenderFixedCanvas(t *testing.T) {
	bg := iso.Color(0x2c3e50)
	f := iso.BuildFrame([]iso.Tile{{Type: "road"}}, testConfig, iso.DefaultPalette())
	img := raster.Render(f, raster.Options{Width: 800, Height: 600, Background: &bg})

	require.Equal(t, image.Rect(0, 0, 800, 600), img.Bounds())
	near(t, img, 400, 400, iso.Color(0x95a5a6))
	near(t, img, 10, 10, bg)
}

func TestRenderCropped(t *testing.T) {
	f := iso.BuildFrame([]iso.Tile{{Type: "water"}}, testConfig, iso.DefaultPalette())
	img := raster.Render(f, raster.Options{Margin: 4})

	// bounds 349..451 x 374..426 plus margin
	require.Equal(t, image.Rect(0, 0, 110, 60), img.Bounds())
	near(t, img, 400-345, 400-370, iso.Color(0x3498db))
	near(t, img, 0, 0, color.NRGBA{})
}

func TestRenderSideFaces(t *testing.T) {
	tile := iso.Tile{Height: 20, Type: "block"}
	f := iso.BuildFrame([]iso.Tile{tile}, testConfig, iso.DefaultPalette())
	img := raster.Render(f, raster.Options{Width: 800, Height: 600})

	base := iso.Color(0x2c3e50)
	near(t, img, 375, 405, iso.Darken(base, iso.LeftShade))
	near(t, img, 424, 405, iso.Darken(base, iso.RightShade))
	// top face sits 20px up
	near(t, img, 400, 380, base)
}

func TestRenderPaintersOrder(t *testing.T) {
	// a tall front column must cover the back cell's diamond
	tiles := []iso.Tile{
		{GridX: 1, GridY: 1, Height: 60, Type: "block", Color: iso.ColorPtr(0xff0000)},
		{GridX: 0, GridY: 0, Type: "grass"},
	}
	f := iso.BuildFrame(tiles, testConfig, iso.DefaultPalette())
	img := raster.Render(f, raster.Options{Width: 800, Height: 600})

	// back cell center is covered by the front column's top face
	near(t, img, 400, 400, iso.Color(0xff0000))
}

func TestRenderOutline(t *testing.T) {
	f := iso.BuildFrame([]iso.Tile{{Color: iso.ColorPtr(iso.White)}}, testConfig, nil)
	img := raster.Render(f, raster.Options{Width: 800, Height: 600})

	// the left vertex of the diamond is under the black 30% stroke only
	got := color.NRGBAModel.Convert(img.At(349, 399)).(color.NRGBA)
	require.Greater(t, got.A, uint8(0), "stroke should reach outside the fill")
	require.Less(t, got.A, uint8(255))
}

func TestRenderSupersample(t *testing.T) {
	f := iso.BuildFrame([]iso.Tile{{Type: "road"}}, testConfig, iso.DefaultPalette())
	img := raster.Render(f, raster.Options{Width: 800, Height: 600, Supersample: 3})
	require.Equal(t, image.Rect(0, 0, 800, 600), img.Bounds())
	near(t, img, 400, 400, iso.Color(0x95a5a6))
}

func TestRenderEmpty(t *testing.T) {
	img := raster.Render(iso.Frame{}, raster.Options{})
	require.Equal(t, image.Rect(0, 0, 1, 1), img.Bounds())
}

func TestSavePNG(t *testing.T) {
	f := iso.BuildFrame([]iso.Tile{{Type: "road"}}, testConfig, iso.DefaultPalette())
	img := raster.Render(f, raster.Options{})
	path := filepath.Join(t.TempDir(), "tile.png")
	require.NoError(t, raster.SavePNG(path, img))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), decoded.Bounds())

	require.Error(t, raster.SavePNG(filepath.Join(t.TempDir(), "missing", "x.png"), img))
}
