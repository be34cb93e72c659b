package scene

import (
	"context"
	"fmt"

	"github.com/1siamBot/isogrid/engine/iso"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// scriptModules are the tengo stdlib modules a generator may import; no os or file access
var scriptModules = []string{"math", "text", "rand", "fmt", "enum"}

// RunScript executes a tengo generator. The script reads layer_height and
// appends maps with keys x, y, z, height, type, color and outline to tiles.
func RunScript(ctx context.Context, src []byte, layerHeight float64) ([]iso.Tile, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(scriptModules...))
	if err := script.Add("layer_height", layerHeight); err != nil {
		return nil, err
	}
	if err := script.Add("tiles", []interface{}{}); err != nil {
		return nil, err
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	if err := compiled.RunContext(ctx); err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	v := compiled.Get("tiles")
	raw, ok := v.Value().([]interface{})
	if !ok {
		return nil, fmt.Errorf("tiles: want array, got %s", v.ValueType())
	}
	tiles := make([]iso.Tile, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("tiles[%d]: want map, got %T", i, item)
		}
		t, err := scriptTile(m)
		if err != nil {
			return nil, fmt.Errorf("tiles[%d]: %w", i, err)
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

func scriptTile(m map[string]interface{}) (iso.Tile, error) {
	var t iso.Tile
	var err error
	if t.GridX, err = intField(m, "x"); err != nil {
		return t, err
	}
	if t.GridY, err = intField(m, "y"); err != nil {
		return t, err
	}
	if t.Z, err = floatField(m, "z"); err != nil {
		return t, err
	}
	if t.Height, err = floatField(m, "height"); err != nil {
		return t, err
	}
	if v, ok := m["type"]; ok {
		s, ok := v.(string)
		if !ok {
			return t, fmt.Errorf("type: want string, got %T", v)
		}
		t.Type = s
	}
	if t.Color, err = colorField(m, "color"); err != nil {
		return t, err
	}
	if t.Outline, err = colorField(m, "outline"); err != nil {
		return t, err
	}
	return t, nil
}

func floatField(m map[string]interface{}, key string) (float64, error) {
	switch v := m[key].(type) {
	case nil:
		return 0, nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("%s: want number, got %T", key, v)
	}
}

func intField(m map[string]interface{}, key string) (int, error) {
	switch v := m[key].(type) {
	case nil:
		return 0, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("%s: %v is not a whole cell", key, v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("%s: want integer, got %T", key, v)
	}
}

// colorField accepts a color string or a packed 0xRRGGBB integer
func colorField(m map[string]interface{}, key string) (*iso.Color, error) {
	switch v := m[key].(type) {
	case nil:
		return nil, nil
	case string:
		c, err := ParseColor(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		return &c, nil
	case int64:
		if v < 0 || v > 0xFFFFFF {
			return nil, fmt.Errorf("%s: %w: %#x", key, ErrUnknownColor, v)
		}
		return iso.ColorPtr(iso.Color(v)), nil
	default:
		return nil, fmt.Errorf("%s: want color, got %T", key, v)
	}
}
