package iso

// Shading factors and outline style for tile faces
const (
	LeftShade    = 0.4
	RightShade   = 0.6
	OutlineAlpha = 0.3
	OutlineWidth = 2.0
)

// OpKind says whether a polygon is filled or stroked
type OpKind uint8

const (
	OpFill OpKind = iota
	OpStroke
)

func (k OpKind) String() string {
	if k == OpStroke {
		return "stroke"
	}
	return "fill"
}

// Face identifies which part of the tile an op draws
type Face uint8

const (
	FaceLeft Face = iota
	FaceRight
	FaceTop
	FaceOutline
)

func (f Face) String() string {
	switch f {
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceTop:
		return "top"
	case FaceOutline:
		return "outline"
	}
	return "unknown"
}

// DrawOp is one closed polygon to fill or stroke
type DrawOp struct {
	Kind    OpKind
	Face    Face
	Polygon []Point
	Color   Color
	Alpha   float64 // opacity in [0,1]
	Width   float64 // stroke width, zero for fills
}

// Translate returns a copy of the op with every vertex offset by d
func (op DrawOp) Translate(d Point) DrawOp {
	poly := make([]Point, len(op.Polygon))
	for i, p := range op.Polygon {
		poly[i] = p.Add(d)
	}
	op.Polygon = poly
	return op
}

// Geometry is the draw list for one tile. Polygons are local to Anchor.
type Geometry struct {
	Tile   Tile
	Anchor Point
	Ops    []DrawOp
}

// Absolute returns the ops translated into screen space
func (g Geometry) Absolute() []DrawOp {
	out := make([]DrawOp, len(g.Ops))
	for i, op := range g.Ops {
		out[i] = op.Translate(g.Anchor)
	}
	return out
}

// Diamond returns the top-face polygon of a tile centered on the origin
func Diamond(w, h float64) []Point {
	return []Point{
		{0, -h / 2},
		{w / 2, 0},
		{0, h / 2},
		{-w / 2, 0},
	}
}

// BuildGeometry computes the polygons that depict a tile.
// Side faces come first so the top face covers their upper seam.
func BuildGeometry(t Tile, cfg TileConfig, pal Palette) Geometry {
	w, h := cfg.TileWidth, cfg.TileHeight
	fill := pal.Resolve(t)

	g := Geometry{
		Tile:   t,
		Anchor: Project(float64(t.GridX), float64(t.GridY), t.Top(), cfg),
		Ops:    make([]DrawOp, 0, 4),
	}

	if t.Height > 0 {
		d := t.Height
		g.Ops = append(g.Ops,
			DrawOp{
				Kind: OpFill,
				Face: FaceLeft,
				Polygon: []Point{
					{-w / 2, 0},
					{0, h / 2},
					{0, h/2 + d},
					{-w / 2, d},
				},
				Color: Darken(fill, LeftShade),
				Alpha: 1,
			},
			DrawOp{
				Kind: OpFill,
				Face: FaceRight,
				Polygon: []Point{
					{w / 2, 0},
					{0, h / 2},
					{0, h/2 + d},
					{w / 2, d},
				},
				Color: Darken(fill, RightShade),
				Alpha: 1,
			},
		)
	}

	g.Ops = append(g.Ops,
		DrawOp{
			Kind:    OpFill,
			Face:    FaceTop,
			Polygon: Diamond(w, h),
			Color:   fill,
			Alpha:   1,
		},
		DrawOp{
			Kind:    OpStroke,
			Face:    FaceOutline,
			Polygon: Diamond(w, h),
			Color:   OutlineColor(t),
			Alpha:   OutlineAlpha,
			Width:   OutlineWidth,
		},
	)
	return g
}
