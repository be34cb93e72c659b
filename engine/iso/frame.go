package iso

import "math"

// Frame is one render pass: every tile's geometry in draw order
type Frame struct {
	Config TileConfig
	Tiles  []Geometry
}

// BuildFrame sorts tiles with SortByDepth and builds their geometry
func BuildFrame(tiles []Tile, cfg TileConfig, pal Palette) Frame {
	return BuildFrameWith(tiles, cfg, pal, SortByDepth)
}

// BuildFrameWith is BuildFrame with a caller-chosen sort
func BuildFrameWith(tiles []Tile, cfg TileConfig, pal Palette, sortFn SortFunc) Frame {
	ordered := sortFn(tiles)
	f := Frame{
		Config: cfg,
		Tiles:  make([]Geometry, 0, len(ordered)),
	}
	for _, t := range ordered {
		f.Tiles = append(f.Tiles, BuildGeometry(t, cfg, pal))
	}
	return f
}

// Ops flattens the frame into screen-space draw ops in painting order
func (f Frame) Ops() []DrawOp {
	var ops []DrawOp
	for _, g := range f.Tiles {
		ops = append(ops, g.Absolute()...)
	}
	return ops
}

// Rect is an axis-aligned screen-space box
type Rect struct {
	Min, Max Point
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether r has no area
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Bounds returns the box enclosing every polygon, padded by half the widest stroke
func (f Frame) Bounds() Rect {
	ops := f.Ops()
	if len(ops) == 0 {
		return Rect{}
	}
	r := Rect{
		Min: Point{math.Inf(1), math.Inf(1)},
		Max: Point{math.Inf(-1), math.Inf(-1)},
	}
	pad := 0.0
	for _, op := range ops {
		pad = math.Max(pad, op.Width/2)
		for _, p := range op.Polygon {
			r.Min.X = math.Min(r.Min.X, p.X)
			r.Min.Y = math.Min(r.Min.Y, p.Y)
			r.Max.X = math.Max(r.Max.X, p.X)
			r.Max.Y = math.Max(r.Max.Y, p.Y)
		}
	}
	r.Min.X -= pad
	r.Min.Y -= pad
	r.Max.X += pad
	r.Max.Y += pad
	return r
}
