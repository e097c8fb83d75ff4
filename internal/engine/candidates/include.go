package candidates

import "go.trai.ch/sassimport/internal/core/domain"

// ExpandIncludePaths returns candidates below every include path, in the order
// the include paths were given. Relative include paths are taken from cwd.
func ExpandIncludePaths(uri, cwd string, opts domain.ResolverOptions) []string {
	if len(opts.IncludePaths) == 0 {
		return nil
	}

	fsURI := Normalize(uri)

	var out []string
	for _, includePath := range opts.IncludePaths {
		out = append(out, Expand(Resolve(cwd, includePath, fsURI), opts)...)
	}
	return out
}
