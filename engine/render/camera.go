package render

import (
	"math"

	"github.com/1siamBot/isogrid/engine/iso"
	"github.com/hajimehoshi/ebiten/v2"
)

// Camera maps frame coordinates onto the window. It only frames a static
// scene: fit and center, no panning.
type Camera struct {
	X, Y    float64 // frame point shown at the screen center
	Zoom    float64 // zoom level (1.0 = default)
	MinZoom float64
	MaxZoom float64
	ScreenW int // viewport width in pixels
	ScreenH int // viewport height in pixels
	Margin  float64
}

// NewCamera creates a camera with default settings
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		Zoom:    1.0,
		MinZoom: 0.25,
		MaxZoom: 3.0,
		ScreenW: screenW,
		ScreenH: screenH,
		Margin:  24,
	}
}

// SetZoom sets zoom level with clamping
func (c *Camera) SetZoom(z float64) {
	c.Zoom = math.Max(c.MinZoom, math.Min(c.MaxZoom, z))
}

// CenterOn centers the camera on a frame point
func (c *Camera) CenterOn(p iso.Point) {
	c.X = p.X
	c.Y = p.Y
}

// Fit centers on r and zooms so it fills the viewport minus the margin.
// Zoom never exceeds 1, so small scenes keep their native pixel size.
func (c *Camera) Fit(r iso.Rect) {
	if r.Empty() {
		c.CenterOn(iso.Point{})
		c.SetZoom(1)
		return
	}
	c.CenterOn(iso.Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2})
	zx := (float64(c.ScreenW) - 2*c.Margin) / r.Dx()
	zy := (float64(c.ScreenH) - 2*c.Margin) / r.Dy()
	c.SetZoom(math.Min(1, math.Min(zx, zy)))
}

// Resize updates the viewport size and reports whether it changed.
// Non-positive sizes are ignored.
func (c *Camera) Resize(screenW, screenH int) bool {
	if screenW <= 0 || screenH <= 0 || (screenW == c.ScreenW && screenH == c.ScreenH) {
		return false
	}
	c.ScreenW = screenW
	c.ScreenH = screenH
	return true
}

// WorldToScreen converts a frame point to screen pixels
func (c *Camera) WorldToScreen(p iso.Point) (float32, float32) {
	sx := (p.X-c.X)*c.Zoom + float64(c.ScreenW)/2
	sy := (p.Y-c.Y)*c.Zoom + float64(c.ScreenH)/2
	return float32(sx), float32(sy)
}

// ScreenToWorld converts screen pixels back to a frame point
func (c *Camera) ScreenToWorld(sx, sy float64) iso.Point {
	return iso.Point{
		X: (sx-float64(c.ScreenW)/2)/c.Zoom + c.X,
		Y: (sy-float64(c.ScreenH)/2)/c.Zoom + c.Y,
	}
}

// GeoM returns the same transform as WorldToScreen for image draws
func (c *Camera) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-c.X, -c.Y)
	m.Scale(c.Zoom, c.Zoom)
	m.Translate(float64(c.ScreenW)/2, float64(c.ScreenH)/2)
	return m
}
