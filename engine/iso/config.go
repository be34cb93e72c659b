package iso

// TileConfig holds projection and rendering parameters
type TileConfig struct {
	TileWidth  float64 `yaml:"tile_width" json:"tile_width"`   // diamond width in pixels
	TileHeight float64 `yaml:"tile_height" json:"tile_height"` // diamond height in pixels
	TileDepth  float64 `yaml:"tile_depth" json:"tile_depth"`   // reserved, not used by projection
	OriginX    float64 `yaml:"origin_x" json:"origin_x"`       // screen position of cell (0,0)
	OriginY    float64 `yaml:"origin_y" json:"origin_y"`
}

// DefaultConfig returns the 2:1 layout used by the demo scene
func DefaultConfig() TileConfig {
	return TileConfig{
		TileWidth:  100,
		TileHeight: 50,
		TileDepth:  30,
		OriginX:    400,
		OriginY:    400,
	}
}
