package gamedata

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// MustLoad reads and unmarshals a JSON file, panicking on error.
// Use this for data that must be present for the game to function.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}

// loadYAML unmarshals YAML content into out. The embedded copy is used
// when path is empty, otherwise the file at path is read from disk.
func loadYAML(embedded, path string, out any) error {
	var (
		content []byte
		err     error
	)
	if path == "" {
		content, err = dataFS.ReadFile(embedded)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", nameOr(path, embedded), err)
	}
	if err := yaml.Unmarshal(content, out); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", nameOr(path, embedded), err)
	}
	return nil
}

func nameOr(path, fallback string) string {
	if path == "" {
		return fallback
	}
	return path
}
