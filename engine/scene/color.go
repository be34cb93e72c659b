package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/1siamBot/isogrid/engine/iso"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var ErrUnknownColor = errors.New("scene: unknown color")

// ParseColor accepts "#rrggbb", "0xrrggbb", bare "rrggbb" or an SVG color name
func ParseColor(s string) (iso.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(v, "#"):
		return parseHex(s, v[1:])
	case strings.HasPrefix(v, "0x"):
		return parseHex(s, v[2:])
	}
	if c, ok := colornames.Map[v]; ok {
		return iso.FromColor(c), nil
	}
	if len(v) == 6 {
		return parseHex(s, v)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

func parseHex(orig, digits string) (iso.Color, error) {
	if len(digits) != 6 {
		return 0, fmt.Errorf("%w: %q needs 6 hex digits", ErrUnknownColor, orig)
	}
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
	}
	return iso.Color(n), nil
}

// HexColor is an iso.Color that reads and writes as a "#rrggbb" string
type HexColor iso.Color

func (c HexColor) Color() iso.Color {
	return iso.Color(c)
}

// ptr converts an optional HexColor into an optional iso.Color
func (c *HexColor) ptr() *iso.Color {
	if c == nil {
		return nil
	}
	return iso.ColorPtr(c.Color())
}

func hexPtr(c *iso.Color) *HexColor {
	if c == nil {
		return nil
	}
	h := HexColor(*c)
	return &h
}

func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("scene: line %d: color must be a scalar", value.Line)
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = HexColor(parsed)
	return nil
}

func (c HexColor) MarshalYAML() (interface{}, error) {
	return c.Color().String(), nil
}

func (c *HexColor) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		parsed, err := ParseColor(v)
		if err != nil {
			return err
		}
		*c = HexColor(parsed)
	case float64:
		if v < 0 || v > 0xFFFFFF || v != float64(int64(v)) {
			return fmt.Errorf("%w: %v", ErrUnknownColor, v)
		}
		*c = HexColor(v)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownColor, data)
	}
	return nil
}

func (c HexColor) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Color().String())
}
