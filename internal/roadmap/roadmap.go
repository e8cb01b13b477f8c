// Package roadmap reads and writes the YAML roadmap file listing the
// thematics and topics a learner works through.
//
// The document is a list of thematics:
//
//	- title: Go basics
//	  topics:
//	    - title: Variables
//	    - title: Loops
//	      explanation: A loop repeats a block of code.
package roadmap

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/phrazzld/scry-tutor/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrEmptyRoadmap is returned when a roadmap document holds no thematics.
var ErrEmptyRoadmap = errors.New("roadmap has no thematics")

// Load reads the roadmap file at path.
func Load(path string) ([]domain.Thematic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roadmap file: %w", err)
	}
	defer func() { _ = f.Close() }()

	thematics, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("roadmap %s: %w", path, err)
	}
	return thematics, nil
}

// Decode parses one roadmap document from r and validates every thematic.
// Unknown keys are rejected so that typos in the file do not pass silently.
func Decode(r io.Reader) ([]domain.Thematic, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var thematics []domain.Thematic
	if err := dec.Decode(&thematics); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyRoadmap
		}
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if len(thematics) == 0 {
		return nil, ErrEmptyRoadmap
	}

	for i := range thematics {
		if err := thematics[i].Validate(); err != nil {
			return nil, fmt.Errorf("thematic %d: %w", i, err)
		}
	}
	return thematics, nil
}

// Encode writes thematics to w as a roadmap document.
func Encode(w io.Writer, thematics []domain.Thematic) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(thematics); err != nil {
		return fmt.Errorf("failed to encode roadmap: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush roadmap: %w", err)
	}
	return nil
}

// Save writes thematics to path. The file is replaced only once the whole
// document has been written, so a failed save keeps the previous roadmap.
func Save(path string, thematics []domain.Thematic) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".roadmap-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temporary roadmap file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, thematics); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary roadmap file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace roadmap file: %w", err)
	}
	return nil
}

// Thematic returns a pointer into thematics at index i so callers can mutate
// the roadmap in place.
func Thematic(thematics []domain.Thematic, i int) (*domain.Thematic, error) {
	if i < 0 || i >= len(thematics) {
		return nil, fmt.Errorf("%w: thematic index %d out of range [0,%d)", domain.ErrValidation, i, len(thematics))
	}
	return &thematics[i], nil
}
