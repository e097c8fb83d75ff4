package ports

import "go.trai.ch/sassimport/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory.
	// A missing configuration file yields the zero ProjectConfig.
	Load(cwd string) (domain.ProjectConfig, error)

	// LoadFile reads the configuration from an explicit path, which must exist.
	LoadFile(path string) (domain.ProjectConfig, error)
}

// PackageDirLoader locates the package-manager install directory.
type PackageDirLoader interface {
	// PackageDir returns the absolute package directory for the given working directory.
	// It fails only when an override file exists but cannot be parsed.
	PackageDir(cwd string) (string, error)
}
