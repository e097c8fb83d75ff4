package domain

import "go.trai.ch/zerr"

var (
	// ErrNotFound is returned when no candidate path for an import exists on disk.
	ErrNotFound = zerr.New("import not found")

	// ErrConfigReadFailed is returned when the project configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a configuration file exists but is not valid structured data.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidTransformMode is returned when the configured transform mode is unknown.
	ErrInvalidTransformMode = zerr.New("invalid transform mode, expected 'structural' or 'lexical'")

	// ErrTransformFailed is returned when a structured-data file cannot be converted to Sass source.
	ErrTransformFailed = zerr.New("failed to transform structured data")

	// ErrManifestReadFailed is returned when the resolution manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestWriteFailed is returned when the resolution manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrUnresolvedImports is returned by the check command when at least one import could not be resolved.
	ErrUnresolvedImports = zerr.New("unresolved imports")

	// ErrCompileFailed is returned when the Sass compiler rejects a stylesheet.
	ErrCompileFailed = zerr.New("sass compilation failed")

	// ErrNoEntrySpecified is returned when a command needs an entry stylesheet and none was given.
	ErrNoEntrySpecified = zerr.New("no entry stylesheet specified")
)
