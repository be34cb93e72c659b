package render

import (
	"image/color"

	"github.com/1siamBot/isogrid/engine/iso"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// IsoRenderer draws frames onto an ebiten screen
type IsoRenderer struct {
	Camera    *Camera
	AntiAlias bool

	whiteImg *ebiten.Image
}

// NewIsoRenderer creates a new isometric renderer
func NewIsoRenderer(screenW, screenH int) *IsoRenderer {
	whiteImg := ebiten.NewImage(3, 3)
	whiteImg.Fill(color.White)
	return &IsoRenderer{
		Camera:    NewCamera(screenW, screenH),
		AntiAlias: true,
		whiteImg:  whiteImg,
	}
}

// DrawFrame paints every op in order; later ops cover earlier ones
func (r *IsoRenderer) DrawFrame(screen *ebiten.Image, f iso.Frame) {
	for _, op := range f.Ops() {
		switch op.Kind {
		case iso.OpFill:
			r.fillPolygon(screen, op)
		case iso.OpStroke:
			r.strokePolygon(screen, op)
		}
	}
}

func (r *IsoRenderer) fillPolygon(screen *ebiten.Image, op iso.DrawOp) {
	if len(op.Polygon) < 3 {
		return
	}

	var path vector.Path
	x, y := r.Camera.WorldToScreen(op.Polygon[0])
	path.MoveTo(x, y)
	for _, p := range op.Polygon[1:] {
		x, y = r.Camera.WorldToScreen(p)
		path.LineTo(x, y)
	}
	path.Close()

	red, green, blue := op.Color.Channels()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(red) / 255
		vs[i].ColorG = float32(green) / 255
		vs[i].ColorB = float32(blue) / 255
		vs[i].ColorA = float32(op.Alpha)
	}

	screen.DrawTriangles(vs, is, r.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: r.AntiAlias,
	})
}

func (r *IsoRenderer) strokePolygon(screen *ebiten.Image, op iso.DrawOp) {
	clr := op.Color.NRGBA(op.Alpha)
	width := float32(op.Width * r.Camera.Zoom)
	n := len(op.Polygon)
	for i := 0; i < n; i++ {
		x0, y0 := r.Camera.WorldToScreen(op.Polygon[i])
		x1, y1 := r.Camera.WorldToScreen(op.Polygon[(i+1)%n])
		vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, r.AntiAlias)
	}
}

// DrawBackground clears the screen to the scene background
func (r *IsoRenderer) DrawBackground(screen *ebiten.Image, bg iso.Color) {
	screen.Fill(bg)
}
