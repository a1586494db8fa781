// Package loader handles executable file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/negodump/internal/options"
)

// Loader handles loading executable files from disk.
type Loader struct{}

// New creates a new file loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the complete file contents into memory. The decoder works on
// one immutable byte buffer, there is no streaming.
func (l *Loader) Load(opts options.Program) ([]byte, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}
	return data, nil
}
