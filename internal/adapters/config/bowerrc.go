package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/sassimport/internal/core/domain"
	"go.trai.ch/sassimport/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// BowerrcFilename is the package-manager override file.
	BowerrcFilename = ".bowerrc"
	// DefaultPackageDir is used when no override names a directory.
	DefaultPackageDir = "bower_components"
)

var _ ports.PackageDirLoader = (*BowerrcLoader)(nil)

// BowerrcLoader resolves the package directory from an optional .bowerrc.
type BowerrcLoader struct{}

// NewBowerrcLoader creates a new BowerrcLoader.
func NewBowerrcLoader() *BowerrcLoader {
	return &BowerrcLoader{}
}

type bowerrc struct {
	Directory string `json:"directory"`
}

// PackageDir returns the absolute package directory for cwd.
//
// A missing or unreadable .bowerrc means the default directory. A .bowerrc
// that is not valid JSON is an error.
func (l *BowerrcLoader) PackageDir(cwd string) (string, error) {
	dir := DefaultPackageDir
	path := filepath.Join(cwd, BowerrcFilename)

	if data, err := os.ReadFile(path); err == nil { //nolint:gosec // fixed name below cwd
		var rc bowerrc
		if err := json.Unmarshal(data, &rc); err != nil {
			return "", zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
		}
		if rc.Directory != "" {
			dir = rc.Directory
		}
	}

	if filepath.IsAbs(dir) {
		return filepath.Clean(dir), nil
	}
	return filepath.Join(cwd, dir), nil
}
