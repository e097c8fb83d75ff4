// Package dartsass plugs the import resolver into the Dart Sass embedded compiler.
package dartsass

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bep/godartsass/v2"
	"go.trai.ch/sassimport/internal/core/domain"
	"go.trai.ch/sassimport/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ godartsass.ImportResolver = (*Resolver)(nil)

// Resolver implements godartsass.ImportResolver on top of a ports.Importer.
//
// The embedded protocol does not tell the resolver which stylesheet issued an
// import, so every request is resolved as if it came from the entry file.
// Imports relative to a nested partial still resolve when Dart Sass hands
// over the absolute file: URL it computed itself.
type Resolver struct {
	ctx      context.Context //nolint:containedctx // godartsass callbacks carry no context
	importer ports.Importer
	entry    string

	mu       sync.Mutex
	contents map[string]string
}

// NewResolver creates a Resolver for one compilation of entry.
func NewResolver(ctx context.Context, importer ports.Importer, entry string) *Resolver {
	return &Resolver{
		ctx:      ctx,
		importer: importer,
		entry:    entry,
		contents: make(map[string]string),
	}
}

// CanonicalizeURL resolves rawURL to a canonical URL. An empty string tells
// Dart Sass that this resolver cannot handle the import.
func (r *Resolver) CanonicalizeURL(rawURL string) (string, error) {
	uri := rawURL
	if strings.HasPrefix(rawURL, "file:") {
		path, err := pathFromURL(rawURL)
		if err != nil {
			return "", err
		}
		uri = path
	}

	res, err := r.importer.Resolve(r.ctx, domain.ImportRequest{URI: uri, OriginatingFile: r.entry})
	if err != nil {
		return "", err
	}

	switch {
	case res.IsEmpty():
		return "", nil
	case res.IsDuplicate():
		return domain.AlreadyImportedPrefix + filepath.ToSlash(res.Path()), nil
	}

	canonical := fileURL(res.File)

	r.mu.Lock()
	r.contents[canonical] = res.Contents
	r.mu.Unlock()

	return canonical, nil
}

// Load returns the content delivered for a canonical URL. Suppressed repeats
// load as empty stylesheets.
func (r *Resolver) Load(canonicalizedURL string) (godartsass.Import, error) {
	if strings.HasPrefix(canonicalizedURL, domain.AlreadyImportedPrefix) {
		return godartsass.Import{SourceSyntax: godartsass.SourceSyntaxSCSS}, nil
	}

	r.mu.Lock()
	content, ok := r.contents[canonicalizedURL]
	r.mu.Unlock()

	if !ok {
		return godartsass.Import{}, zerr.With(zerr.New("load of unknown canonical URL"), "url", canonicalizedURL)
	}

	path, err := pathFromURL(canonicalizedURL)
	if err != nil {
		return godartsass.Import{}, err
	}

	return godartsass.Import{
		Content:      content,
		SourceSyntax: syntaxFor(path),
	}, nil
}

// syntaxFor picks the parser for a delivered file. Transformed data files
// are SCSS.
func syntaxFor(path string) godartsass.SourceSyntax {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sass":
		return godartsass.SourceSyntaxSASS
	case ".css":
		return godartsass.SourceSyntaxCSS
	default:
		return godartsass.SourceSyntaxSCSS
	}
}

func fileURL(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}

func pathFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "invalid file URL"), "url", rawURL)
	}
	p := u.Path
	// file:///C:/x on Windows.
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	return filepath.FromSlash(p), nil
}
