package config

import (
	"go.trai.ch/sassimport/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Configfile represents the structure of the sassimport.yaml configuration file.
type Configfile struct {
	IncludePaths includePathsDTO `yaml:"includePaths"`
	ImportOnce   *ImportOnceDTO  `yaml:"importOnce"`
	Transform    string          `yaml:"transform"`
	Manifest     string          `yaml:"manifest"`
}

// ImportOnceDTO represents the importOnce toggles. Absent keys stay nil.
type ImportOnceDTO struct {
	Index *bool `yaml:"index"`
	Bower *bool `yaml:"bower"`
	CSS   *bool `yaml:"css"`
}

// includePathsDTO accepts either a YAML sequence or a single string joined
// with the OS path list separator.
type includePathsDTO []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *includePathsDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var joined string
		if err := value.Decode(&joined); err != nil {
			return err
		}
		*p = domain.ParseIncludePaths(joined)
		return nil
	}

	var list []string
	if err := value.Decode(&list); err != nil {
		return err
	}
	*p = list
	return nil
}

func (c *Configfile) partialOptions() domain.PartialOptions {
	opts := domain.PartialOptions{
		IncludePaths: []string(c.IncludePaths),
		Transform:    domain.TransformMode(c.Transform),
	}
	if c.ImportOnce != nil {
		opts.ImportOnce = &domain.PartialImportOnce{
			Index: c.ImportOnce.Index,
			Bower: c.ImportOnce.Bower,
			CSS:   c.ImportOnce.CSS,
		}
	}
	return opts
}
