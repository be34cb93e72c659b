package scene

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
)

//go:embed scenes/*.yaml scenes/*.tengo
var scenesFS embed.FS

// DemoName is the built-in 3x3 grid
const DemoName = "demo.yaml"

// Builtin returns the embedded scene files
func Builtin() fs.FS {
	sub, err := fs.Sub(scenesFS, "scenes")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadBuiltin builds an embedded scene by file name
func LoadBuiltin(ctx context.Context, name string) (*Scene, error) {
	fsys := Builtin()
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("scene: load builtin %s: %w", name, err)
	}
	f, err := Parse(data, FormatOf(name))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return Build(ctx, f, fsys)
}

// LoadDemo builds the built-in 3x3 grid
func LoadDemo(ctx context.Context) (*Scene, error) {
	return LoadBuiltin(ctx, DemoName)
}
