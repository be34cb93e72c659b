package iso

// Tile is the visual record of one grid cell layer
type Tile struct {
	GridX, GridY int
	Z            float64 // base elevation
	Height       float64 // layer thickness, 0 = flat
	Type         string
	Color        *Color // overrides the palette entry for Type
	Outline      *Color // top-face stroke, black when nil
}

// Top returns the elevation of the tile's top face
func (t Tile) Top() float64 {
	return t.Z + t.Height
}

// Palette maps tile types to fill colors. New types are data, not code.
type Palette map[string]Color

// DefaultPalette returns the built-in type table
func DefaultPalette() Palette {
	return Palette{
		"block": 0x2c3e50,
		"grass": 0x2ecc71,
		"water": 0x3498db,
		"road":  0x95a5a6,
	}
}

// Merge returns a new palette with other's entries layered over p
func (p Palette) Merge(other Palette) Palette {
	out := make(Palette, len(p)+len(other))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Resolve picks the fill color for a tile: explicit color, then the palette, then DefaultColor
func (p Palette) Resolve(t Tile) Color {
	if t.Color != nil {
		return *t.Color
	}
	if c, ok := p[t.Type]; ok {
		return c
	}
	return DefaultColor
}

// OutlineColor returns the tile's stroke color, black when unset
func OutlineColor(t Tile) Color {
	if t.Outline != nil {
		return *t.Outline
	}
	return Black
}

// ColorPtr is a helper for optional color fields
func ColorPtr(c Color) *Color {
	return &c
}
