package candidates

import (
	"path/filepath"

	"go.trai.ch/sassimport/internal/core/domain"
)

var (
	// partialPrefixes is iterated outside stylesheetExts, so plain names come
	// before partials for every extension.
	partialPrefixes = []string{"", "_"}
	stylesheetExts  = []string{".scss", ".sass"}
)

const indexBasename = "index"

// Expand returns the ordered candidates for one abstract path.
//
// A path that already carries an extension is returned unchanged. Otherwise the
// list is: name × {"", "_"} × {.scss, .sass}, then the same for name/index when
// Index is set, then name.css when CSS is set.
func Expand(abstractPath string, opts domain.ResolverOptions) []string {
	if filepath.Ext(abstractPath) != "" {
		return []string{abstractPath}
	}

	dir := filepath.Dir(abstractPath)
	base := filepath.Base(abstractPath)

	names := make([]string, 0, capacity(opts))
	names = appendVariants(names, dir, base)

	if opts.ImportOnce.Index {
		names = appendVariants(names, abstractPath, indexBasename)
	}

	if opts.ImportOnce.CSS {
		names = append(names, abstractPath+".css")
	}

	return names
}

func appendVariants(names []string, dir, base string) []string {
	for _, prefix := range partialPrefixes {
		for _, ext := range stylesheetExts {
			names = append(names, filepath.Join(dir, prefix+base+ext))
		}
	}
	return names
}

func capacity(opts domain.ResolverOptions) int {
	n := len(partialPrefixes) * len(stylesheetExts)
	if opts.ImportOnce.Index {
		n *= 2
	}
	if opts.ImportOnce.CSS {
		n++
	}
	return n
}
