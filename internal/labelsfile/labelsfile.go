// Package labelsfile reads and writes the YAML label list consumed by
// label sync actions (one object per label: name, color, description, aliases).
package labelsfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/thenoetrevino/labelflair/internal/models"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where generate writes when no path is given
const DefaultPath = "labels.yml"

// ErrMalformed is returned when a labels file cannot be decoded
var ErrMalformed = errors.New("malformed labels file")

// Encode writes labels to w as a YAML sequence
func Encode(w io.Writer, labels []*models.Label) error {
	if labels == nil {
		labels = []*models.Label{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(labels); err != nil {
		return fmt.Errorf("failed to encode labels: %w", err)
	}
	return enc.Close()
}

// Marshal returns the YAML document for labels
func Marshal(labels []*models.Label) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, labels); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a YAML label list from r. An empty document is an empty list.
func Decode(r io.Reader) ([]*models.Label, error) {
	var labels []*models.Label
	if err := yaml.NewDecoder(r).Decode(&labels); err != nil {
		if errors.Is(err, io.EOF) {
			return []*models.Label{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	for i, l := range labels {
		if l == nil {
			return nil, fmt.Errorf("%w: entry %d is empty", ErrMalformed, i)
		}
	}
	return labels, nil
}

// WriteFile writes labels to path, replacing any existing file
func WriteFile(path string, labels []*models.Label) error {
	data, err := Marshal(labels)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write labels to %s: %w", path, err)
	}
	return nil
}

// ReadFile reads the label list stored at path
func ReadFile(path string) ([]*models.Label, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	labels, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return labels, nil
}
