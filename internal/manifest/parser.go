package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Parse reads a fabric.mod.json file.
func Parse(path string) (*ModInfo, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var m ModInfo
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
