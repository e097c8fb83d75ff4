// Package config provides the configuration loaders for sassimport.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/sassimport/internal/core/domain"
	"go.trai.ch/sassimport/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the project configuration file looked up in the working directory.
const DefaultFilename = "sassimport.yaml"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a FileConfigLoader reading DefaultFilename.
func NewLoader(log ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename, logger: log}
}

// Load reads the configuration from the given working directory.
// A missing file yields the zero configuration.
func (l *FileConfigLoader) Load(cwd string) (domain.ProjectConfig, error) {
	path := l.Filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	cfg, err := Load(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return domain.ProjectConfig{}, nil
	}
	if err != nil {
		return domain.ProjectConfig{}, err
	}

	l.loaded(path)
	return cfg, nil
}

// LoadFile reads the configuration from an explicit path.
func (l *FileConfigLoader) LoadFile(path string) (domain.ProjectConfig, error) {
	cfg, err := Load(path)
	if err != nil {
		return domain.ProjectConfig{}, err
	}

	l.loaded(path)
	return cfg, nil
}

func (l *FileConfigLoader) loaded(path string) {
	if l.logger != nil {
		l.logger.Info("loaded configuration from " + path)
	}
}

// Load reads a configuration file from the given path. Relative include
// paths are kept as written; a relative manifest path is anchored at the
// directory holding the file.
func Load(path string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.ProjectConfig{}, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	var file Configfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.ProjectConfig{}, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	cfg := domain.ProjectConfig{Options: file.partialOptions()}
	if file.Manifest != "" {
		cfg.ManifestPath = file.Manifest
		if !filepath.IsAbs(cfg.ManifestPath) {
			cfg.ManifestPath = filepath.Join(filepath.Dir(path), cfg.ManifestPath)
		}
	}

	return cfg, nil
}
