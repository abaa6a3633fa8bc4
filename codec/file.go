package codec

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Azhovan/variant"
)

// Options configures file reading and writing.
type Options struct {
	// Format: "yaml", "json", or "toml". Auto-detected from extension if empty.
	Format string

	// Required: if true, ReadFile fails on a missing file. Default: false (v is reset to empty).
	Required bool
}

// ReadFile decodes the document at path into v.
func ReadFile[S variant.Alternatives](path string, v *variant.Variant[S], opts Options) error {
	if v == nil {
		return errors.New("codec: variant is nil")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if opts.Required {
				return fmt.Errorf("required variant file not found: %s: %w", path, err)
			}
			v.Reset()
			return nil
		}
		return fmt.Errorf("read variant file %s: %w", path, err)
	}

	if err := Unmarshal(data, formatFor(path, opts), v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// WriteFile encodes v and writes it to path atomically: the document goes to a
// temporary file in the same directory which is then renamed over path.
// Parent directories are created as needed.
func WriteFile[S variant.Alternatives](path string, v *variant.Variant[S], opts Options) error {
	data, err := Marshal(v, formatFor(path, opts))
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}

	tempPath, err := generateTempFileName(path)
	if err != nil {
		return err
	}

	var tempFileCreated bool
	defer func() {
		if tempFileCreated {
			_ = os.Remove(tempPath)
		}
	}()

	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return err
	}
	tempFileCreated = true

	if err := os.Rename(tempPath, path); err != nil {
		return err
	}
	tempFileCreated = false

	return nil
}

func formatFor(path string, opts Options) string {
	if opts.Format != "" {
		return opts.Format
	}
	return inferFormat(path)
}

func inferFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return ""
	}
}

// generateTempFileName returns targetPath + ".tmp." + 16 random hex chars.
func generateTempFileName(targetPath string) (string, error) {
	randomBytes := make([]byte, 8)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}
	return targetPath + ".tmp." + hex.EncodeToString(randomBytes), nil
}
