// Package raster draws frames into in-memory images without a GPU.
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/1siamBot/isogrid/engine/iso"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Options controls the output canvas
type Options struct {
	// Width and Height fix the canvas size, with frame coordinates used as-is.
	// When either is zero the canvas is cropped to the frame bounds plus Margin.
	Width, Height int
	Margin        float64
	Background    *iso.Color // nil leaves the canvas transparent
	Supersample   int        // render at N times the size and scale down; 0 or 1 disables
}

// Render rasterizes every op of f in order. Later ops paint over earlier ones.
func Render(f iso.Frame, opts Options) *image.RGBA {
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}

	origin := iso.Point{}
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		b := f.Bounds()
		origin = iso.Point{X: math.Floor(b.Min.X - opts.Margin), Y: math.Floor(b.Min.Y - opts.Margin)}
		w = int(math.Ceil(b.Max.X+opts.Margin-origin.X))
		h = int(math.Ceil(b.Max.Y+opts.Margin-origin.Y))
		if b.Empty() {
			w, h = 1, 1
		}
	}

	canvas := image.NewRGBA(image.Rect(0, 0, w*ss, h*ss))
	if opts.Background != nil {
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(*opts.Background), image.Point{}, draw.Src)
	}

	p := &painter{
		dst:    canvas,
		z:      vector.NewRasterizer(w*ss, h*ss),
		origin: origin,
		scale:  float64(ss),
	}
	for _, op := range f.Ops() {
		p.paint(op)
	}

	if ss == 1 {
		return canvas
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
	return out
}

type painter struct {
	dst    *image.RGBA
	z      *vector.Rasterizer
	origin iso.Point
	scale  float64
}

func (p *painter) toCanvas(pt iso.Point) (float32, float32) {
	return float32((pt.X - p.origin.X) * p.scale), float32((pt.Y - p.origin.Y) * p.scale)
}

func (p *painter) paint(op iso.DrawOp) {
	if len(op.Polygon) < 2 {
		return
	}
	b := p.dst.Bounds()
	p.z.Reset(b.Dx(), b.Dy())
	p.z.DrawOp = draw.Over

	switch op.Kind {
	case iso.OpFill:
		p.addPolygon(op.Polygon)
	case iso.OpStroke:
		for _, quad := range strokeOutline(op.Polygon, op.Width/2) {
			p.addPolygon(quad)
		}
	}
	src := image.NewUniform(op.Color.NRGBA(op.Alpha))
	p.z.Draw(p.dst, b, src, image.Point{})
}

func (p *painter) addPolygon(poly []iso.Point) {
	x, y := p.toCanvas(poly[0])
	p.z.MoveTo(x, y)
	for _, pt := range poly[1:] {
		x, y = p.toCanvas(pt)
		p.z.LineTo(x, y)
	}
	p.z.ClosePath()
}

// strokeOutline turns a closed polygon outline into filled quads: one per edge
// plus a square at each vertex to close the joins. All quads share one winding
// so overlaps accumulate to full coverage instead of cancelling.
func strokeOutline(poly []iso.Point, hw float64) [][]iso.Point {
	if hw <= 0 {
		return nil
	}
	var quads [][]iso.Point
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		n := iso.Point{X: -dy / l * hw, Y: dx / l * hw}
		quads = append(quads, []iso.Point{
			{X: a.X + n.X, Y: a.Y + n.Y},
			{X: b.X + n.X, Y: b.Y + n.Y},
			{X: b.X - n.X, Y: b.Y - n.Y},
			{X: a.X - n.X, Y: a.Y - n.Y},
		})
		quads = append(quads, []iso.Point{
			{X: a.X - hw, Y: a.Y - hw},
			{X: a.X - hw, Y: a.Y + hw},
			{X: a.X + hw, Y: a.Y + hw},
			{X: a.X + hw, Y: a.Y - hw},
		})
	}
	return quads
}

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG writes img to path
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return f.Close()
}
