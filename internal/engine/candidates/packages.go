package candidates

import (
	"strings"

	"go.trai.ch/sassimport/internal/core/domain"
)

// ExpandPackage returns candidates inside the package-manager directory pkgDir.
// It returns nil unless ImportOnce.Bower is set.
//
// Besides the direct join, packages first published as Ruby gems and later
// rehosted keep their sources under "stylesheets" or "sass", sometimes in a
// directory named "<pkg>-sass" or "sass-<pkg>". Those layouts are tried unless
// the URI starts with a relative marker.
func ExpandPackage(uri, pkgDir string, opts domain.ResolverOptions) []string {
	if !opts.ImportOnce.Bower {
		return nil
	}

	core, _, _ := strings.Cut(uri, "/")
	fsURI := Normalize(uri)

	bases := []string{Resolve(pkgDir, fsURI)}

	if core != "." && core != ".." {
		bases = append(bases,
			Resolve(pkgDir, core, fsURI),
			Resolve(pkgDir, core, "stylesheets", fsURI),
			Resolve(pkgDir, core+"-sass", "stylesheets", fsURI),
			Resolve(pkgDir, "sass-"+core, "stylesheets", fsURI),

			Resolve(pkgDir, core, "sass", fsURI),
			Resolve(pkgDir, core+"-sass", "sass", fsURI),
			Resolve(pkgDir, "sass-"+core, "sass", fsURI),
		)

		if opts.ImportOnce.CSS {
			bases = append(bases,
				Resolve(pkgDir, core, "dist", fsURI),
				Resolve(pkgDir, core, "dist", "css", fsURI),
			)
		}
	}

	var out []string
	for _, base := range bases {
		out = append(out, Expand(base, opts)...)
	}
	return out
}
