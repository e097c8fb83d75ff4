// Package transform turns structured-data files into Sass source.
package transform

import (
	"errors"
	"path/filepath"
	"strings"

	"go.trai.ch/sassimport/internal/core/domain"
	"go.trai.ch/zerr"
)

// Transformer converts .json, .yml and .yaml payloads into a Sass variable
// declaration named after the file. Every other file passes through unchanged.
type Transformer struct {
	mode domain.TransformMode
}

// New creates a Transformer for the given mode. An empty mode means structural.
func New(mode domain.TransformMode) *Transformer {
	if mode == "" {
		mode = domain.TransformStructural
	}
	return &Transformer{mode: mode}
}

// Applies reports whether path carries a structured-data extension.
func Applies(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yml", ".yaml":
		return true
	default:
		return false
	}
}

// Transform returns the Sass source for raw, read from resolvedPath.
func (t *Transformer) Transform(raw []byte, resolvedPath string) (string, error) {
	if !Applies(resolvedPath) {
		return string(raw), nil
	}

	name := variableName(resolvedPath)

	if t.mode == domain.TransformLexical {
		out, err := lexical(raw, resolvedPath, name)
		if err != nil {
			return "", failed(err, resolvedPath)
		}
		return out, nil
	}

	root, err := decode(raw, resolvedPath)
	if err != nil {
		return "", failed(err, resolvedPath)
	}

	var b strings.Builder
	b.WriteString("$")
	b.WriteString(name)
	b.WriteString(": ")
	writeSass(&b, root)
	b.WriteString(";")
	return b.String(), nil
}

func failed(cause error, path string) error {
	return zerr.With(errors.Join(domain.ErrTransformFailed, cause), "path", path)
}

func variableName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yml" || ext == ".yaml"
}
