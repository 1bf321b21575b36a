// Package model loads composite-section definition files and builds
// section.Section trees from them. Definitions are JSON or YAML; JSON
// documents are additionally checked against the embedded schema
// before decoding.
package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gosection/internal/scalar"
	"github.com/alexiusacademia/gosection/internal/section"
)

// Shape type names accepted in definition files.
const (
	ShapeCircle    = "circle"
	ShapeRectangle = "rectangle"
)

// Definition is a composite cross-section as authored in a definition
// file. All coordinates share one reference origin; shapes carry their
// own offsets and transforms, so the built tree satisfies the shared
// reference-origin convention by construction.
type Definition struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Units is a display label only (e.g. "mm"); the engine is
	// unit-agnostic.
	Units string `json:"units,omitempty" yaml:"units,omitempty"`

	Shapes []ShapeDef `json:"shapes" yaml:"shapes"`
}

// ShapeDef describes one primitive and its transforms. For circles,
// Offset is the centroid position; for rectangles it is the corner
// position. Rotation is in degrees (counter-clockwise rotation of the
// reference axes) and Translate moves the shape after rotation.
// Weight defaults to 1; negative weights remove material.
type ShapeDef struct {
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Radius scalar.Float    `json:"radius,omitempty" yaml:"radius,omitempty"`
	Size   [2]scalar.Float `json:"size,omitempty" yaml:"size,omitempty"`
	Offset [2]scalar.Float `json:"offset,omitempty" yaml:"offset,omitempty"`

	Rotation  scalar.Float    `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Translate [2]scalar.Float `json:"translate,omitempty" yaml:"translate,omitempty"`
	Weight    *scalar.Float   `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// ValidationError represents a definition validation error.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// LoadFromFile loads a section definition from a JSON or YAML file,
// chosen by extension. JSON files are schema-validated first.
func LoadFromFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var def Definition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		if err := ValidateSchema(data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}

	return &def, nil
}

// Validate checks the semantic constraints the schema cannot express.
func (d *Definition) Validate() error {
	if len(d.Shapes) == 0 {
		return &ValidationError{"definition must have at least one shape"}
	}
	for i, s := range d.Shapes {
		switch s.Type {
		case ShapeCircle:
			if s.Radius == 0 {
				return &ValidationError{fmt.Sprintf("shape %d: circle radius must be non-zero", i+1)}
			}
		case ShapeRectangle:
			if s.Size[0] == 0 || s.Size[1] == 0 {
				return &ValidationError{fmt.Sprintf("shape %d: rectangle size must be non-zero", i+1)}
			}
		default:
			return &ValidationError{fmt.Sprintf("shape %d: unknown type %q", i+1, s.Type)}
		}
	}
	return nil
}

// Build assembles the Section tree: each primitive is wrapped by
// Rotated, Translated and Weighted as its definition requires, then
// all shapes are collected into one Combined. Every child ends up
// expressed about the shared reference origin.
//
// A definition whose weights sum to zero area has an undefined
// centroid; that is the caller's precondition, not a build error.
func (d *Definition) Build() section.Section {
	var combined section.Combined
	for _, sd := range d.Shapes {
		combined.Push(sd.build())
	}
	return combined
}

func (sd ShapeDef) build() section.Section {
	var s section.Section
	switch sd.Type {
	case ShapeCircle:
		s = section.Circle{Radius: sd.Radius, Offset: sd.Offset}
	default:
		s = section.Rectangle{Size: sd.Size, Offset: sd.Offset}
	}
	if sd.Rotation != 0 {
		s = section.Rotated{Origin: s, Angle: sd.Rotation * scalar.DegToRad}
	}
	if sd.Translate != ([2]scalar.Float{}) {
		s = section.Translated{Origin: s, Offset: sd.Translate}
	}
	if w := sd.weight(); w != 1 {
		s = section.Weighted{Origin: s, Weight: w}
	}
	return s
}

func (sd ShapeDef) weight() scalar.Float {
	if sd.Weight == nil {
		return 1
	}
	return *sd.Weight
}
