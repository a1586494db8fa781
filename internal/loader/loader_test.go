package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/negodump/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load file contents", func(t *testing.T) {
		data := []byte{'M', 'Z', 0x01, 0x02}
		tmpFile := createTempFile(t, data)

		loader := New()
		opts := options.Program{}
		opts.Input = tmpFile

		loaded, err := loader.Load(opts)
		assert.NoError(t, err)
		assert.Equal(t, data, loaded)
	})

	t.Run("load empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		loader := New()
		opts := options.Program{}
		opts.Input = tmpFile

		loaded, err := loader.Load(opts)
		assert.NoError(t, err)
		assert.Len(t, loaded, 0)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		loader := New()
		opts := options.Program{}
		opts.Input = "/nonexistent/file.exe"

		_, err := loader.Load(opts)
		assert.Error(t, err)
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.exe")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
