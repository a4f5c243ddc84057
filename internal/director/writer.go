package director

import (
	"os"

	"gopkg.in/yaml.v3"
)

// WritePath writes a path document to a YAML file
func WritePath(doc *PathFile, path string) error {
	return writeYAML(doc, path)
}

// ReadPath reads a path document from a YAML file
func ReadPath(path string) (*PathFile, error) {
	var doc PathFile
	if err := readYAML(path, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// WriteTrack writes a sampled camera track to a YAML file
func WriteTrack(track *Track, path string) error {
	return writeYAML(track, path)
}

// ReadTrack reads a sampled camera track from a YAML file
func ReadTrack(path string) (*Track, error) {
	var track Track
	if err := readYAML(path, &track); err != nil {
		return nil, err
	}
	return &track, nil
}

func writeYAML(v interface{}, path string) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func readYAML(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, v)
}
