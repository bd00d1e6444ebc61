package dfafile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load reads a definition file, dispatching on the extension
// (.json, .yaml, .yml).
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(path) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unknown definition file format: %s", filepath.Ext(path))
	}
}

// Save writes a definition file, dispatching on the extension.
func Save(path string, d *Definition, pretty bool) error {
	var data []byte
	var err error
	switch filepath.Ext(path) {
	case ".json":
		data, err = ToJSON(d, pretty)
	case ".yaml", ".yml":
		data, err = ToYAML(d)
	default:
		return fmt.Errorf("unknown definition file format: %s", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
