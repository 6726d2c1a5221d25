package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/diegesisandmimesis/calendar/pkg/period"
)

// declFile is the on-disk shape of a period declaration file:
//
//	periods:
//	  - id: dawn
//	    name: Dawn
//	    hours: 24
//	  - id: tide
//	    hours: 6
type declFile struct {
	Periods []period.Period `yaml:"periods"`
}

// ParseDeclarations parses YAML period declarations. Every entry is
// validated through period.New, so a file can never smuggle in an
// empty id or non-positive duration.
func ParseDeclarations(data []byte) ([]period.Period, error) {
	var f declFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse declarations: %w", err)
	}
	out := make([]period.Period, 0, len(f.Periods))
	for i, d := range f.Periods {
		p, err := period.New(d.ID, d.Name, d.Hours)
		if err != nil {
			return nil, fmt.Errorf("declaration %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// LoadDeclarations reads and parses a YAML declaration file.
func LoadDeclarations(path string) ([]period.Period, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read declarations: %w", err)
	}
	return ParseDeclarations(data)
}
