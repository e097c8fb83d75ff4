// Package candidates expands abstract @import names into ordered lists of
// concrete file paths.
package candidates

import (
	"path/filepath"
	"strings"
)

// Normalize converts a slash-delimited import URI into a platform path fragment.
// Only the first slash is replaced, matching how the compiler hands URIs over.
func Normalize(uri string) string {
	return NormalizeFor(uri, filepath.Separator)
}

// NormalizeFor is Normalize with an explicit separator.
func NormalizeFor(uri string, sep rune) string {
	if sep == '/' {
		return uri
	}
	return strings.Replace(uri, "/", string(sep), 1)
}

// Resolve joins segments left to right and restarts at every absolute segment,
// so an absolute import URI wins over the directory it is resolved against.
func Resolve(segments ...string) string {
	var out string
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if filepath.IsAbs(seg) || out == "" {
			out = seg
			continue
		}
		out = filepath.Join(out, seg)
	}
	if out == "" {
		return "."
	}
	return filepath.Clean(out)
}
