package iso

// Point is a 2D position in screen space
type Point struct {
	X, Y float64
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Project maps a grid cell and elevation to screen coordinates.
// Diagonal grid axes map to screen-horizontal (gridX-gridY) and screen-vertical
// (gridX+gridY); elevation lifts the point straight up.
func Project(gridX, gridY, elevation float64, cfg TileConfig) Point {
	return Point{
		X: cfg.OriginX + (gridX-gridY)*(cfg.TileWidth/2),
		Y: cfg.OriginY + (gridX+gridY)*(cfg.TileHeight/2) - elevation,
	}
}

// Unproject is the inverse of Project for a known elevation
func Unproject(p Point, elevation float64, cfg TileConfig) (gridX, gridY float64) {
	// diff = gridX-gridY, sum = gridX+gridY
	diff := (p.X - cfg.OriginX) / (cfg.TileWidth / 2)
	sum := (p.Y + elevation - cfg.OriginY) / (cfg.TileHeight / 2)
	return (sum + diff) / 2, (sum - diff) / 2
}
