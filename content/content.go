package content

import (
	"fmt"
	"os"
	"path/filepath"
)

// Type selects a category of loadable content.
type Type int

const (
	ShaderModule Type = iota
	Image
)

// Root returns the directory holding content of the given type, relative to
// the working directory.
func Root(t Type) string {
	switch t {
	case ShaderModule:
		return filepath.Join("data", "shaders")
	case Image:
		return filepath.Join("data", "images")
	default:
		panic(fmt.Sprintf("unknown content type: %d", t))
	}
}

// Extension returns the file extension used for the given content type.
func Extension(t Type) string {
	switch t {
	case ShaderModule:
		return "wgsl"
	case Image:
		return "png"
	default:
		panic(fmt.Sprintf("unknown content type: %d", t))
	}
}

// Path builds the full path of a named content item.
func Path(name string, t Type) string {
	return filepath.Join(Root(t), name+"."+Extension(t))
}

// Open opens a named content item for reading.
func Open(name string, t Type) (*os.File, error) {
	f, err := os.Open(Path(name, t))
	if err != nil {
		return nil, fmt.Errorf("failed to open content %q: %w", name, err)
	}
	return f, nil
}
