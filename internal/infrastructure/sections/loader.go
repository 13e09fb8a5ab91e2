// Package sections loads the rectangles of an irregular paving area from a
// YAML or Excel file.
package sections

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/form"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/estimator"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/valueobject"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/infrastructure/sheets"
)

// Loader errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported sections file format")
	ErrNoSections        = errors.New("no sections found")
)

// File is a loaded sections file.
type File struct {
	// Project defaults to the file name without extension.
	Project string

	// Price is the unit price from the file, zero if absent.
	Price float64

	Sections []estimator.Section
}

// number is a YAML scalar coerced like a form field.
type number string

func (n *number) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag != "!!null" {
		*n = number(value.Value)
	}
	return nil
}

func (n number) float() float64 {
	return form.ParseNumber(string(n))
}

type yamlSection struct {
	Name      string  `yaml:"name"`
	Length    number  `yaml:"length"`
	Width     number  `yaml:"width"`
	Thickness *number `yaml:"thickness"`
}

type yamlFile struct {
	Project   string        `yaml:"project"`
	Price     number        `yaml:"price"`
	Thickness *number       `yaml:"thickness"`
	Sections  []yamlSection `yaml:"sections"`
}

// Load reads a .yaml, .yml or .xlsx sections file. Sections without a
// thickness use the file-level thickness, then defaultThickness.
func Load(path string, defaultThickness float64) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sections file: %w", err)
	}
	defer f.Close()

	project := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var out *File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		out, err = DecodeYAML(f, defaultThickness)
	case ".xlsx":
		out, err = decodeXLSX(f, defaultThickness)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	if out.Project == "" {
		out.Project = project
	}
	return out, nil
}

// DecodeYAML reads a sections document:
//
//	project: Smith lot
//	price: 80
//	thickness: 3
//	sections:
//	  - {name: driveway, length: 50, width: 20}
//	  - {name: apron, length: 10, width: 10, thickness: 4}
func DecodeYAML(r io.Reader, defaultThickness float64) (*File, error) {
	var doc yamlFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoSections
		}
		return nil, fmt.Errorf("parsing sections YAML: %w", err)
	}

	thickness := defaultThickness
	if doc.Thickness != nil {
		thickness = doc.Thickness.float()
	}

	out := &File{
		Project:  strings.TrimSpace(doc.Project),
		Price:    doc.Price.float(),
		Sections: make([]estimator.Section, 0, len(doc.Sections)),
	}
	for i, s := range doc.Sections {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("section %d", i+1)
		}
		t := thickness
		if s.Thickness != nil {
			t = s.Thickness.float()
		}
		out.Sections = append(out.Sections, estimator.Section{
			Name: name,
			Slab: valueobject.NewSlab(s.Length.float(), s.Width.float(), t),
		})
	}

	if len(out.Sections) == 0 {
		return nil, ErrNoSections
	}
	return out, nil
}

func decodeXLSX(r io.Reader, defaultThickness float64) (*File, error) {
	list, err := sheets.ReadSections(r, defaultThickness)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrNoSections
	}
	return &File{Sections: list}, nil
}
