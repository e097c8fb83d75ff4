// Package importer resolves Sass @import requests for one compiler invocation.
package importer

import (
	"context"
	"path/filepath"

	"go.trai.ch/sassimport/internal/core/domain"
	"go.trai.ch/sassimport/internal/core/ports"
	"go.trai.ch/sassimport/internal/engine/candidates"
	"go.trai.ch/sassimport/internal/engine/prober"
	"go.trai.ch/sassimport/internal/engine/transform"
	"go.trai.ch/zerr"
)

// Deps are the collaborators shared by every session.
type Deps struct {
	Reader    ports.FileReader
	Packages  ports.PackageDirLoader
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

// Session holds the state of a single compiler invocation: merged options,
// the package directory and the once-cache. Sessions are never shared
// between invocations.
type Session struct {
	opts   domain.ResolverOptions
	cwd    string
	pkgDir string

	reader      ports.FileReader
	prober      *prober.Prober
	transformer *transform.Transformer
	cache       *domain.OnceCache
	logger      ports.Logger
	telemetry   ports.Telemetry
}

// New merges partial with the defaults and creates a session rooted at cwd.
// With the package-manager rule enabled, the package directory override is
// read here, and a malformed override fails construction.
func New(partial domain.PartialOptions, cwd string, deps Deps) (*Session, error) {
	opts, err := domain.MergeDefaults(partial)
	if err != nil {
		return nil, err
	}

	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}

	s := &Session{
		opts:        opts,
		cwd:         absCwd,
		reader:      deps.Reader,
		prober:      prober.New(deps.Reader),
		transformer: transform.New(opts.Transform),
		cache:       domain.NewOnceCache(),
		logger:      deps.Logger,
		telemetry:   deps.Telemetry,
	}

	if opts.ImportOnce.Bower {
		dir, err := deps.Packages.PackageDir(absCwd)
		if err != nil {
			return nil, err
		}
		s.pkgDir = dir
	}

	return s, nil
}

// Options returns the merged options of the session.
func (s *Session) Options() domain.ResolverOptions {
	return s.opts
}

// Candidates returns the ordered candidate list for req: local expansion,
// then include paths, then the package directory.
func (s *Session) Candidates(req domain.ImportRequest) []string {
	uri := candidates.Normalize(req.URI)

	var abstract string
	if origin := s.origin(req.OriginatingFile); origin != "" && s.reader.IsFile(origin) {
		abstract = candidates.Resolve(filepath.Dir(origin), uri)
	} else {
		abstract = candidates.Resolve(s.cwd, uri)
	}

	list := candidates.Expand(abstract, s.opts)
	list = append(list, candidates.ExpandIncludePaths(req.URI, s.cwd, s.opts)...)
	list = append(list, candidates.ExpandPackage(req.URI, s.pkgDir, s.opts)...)
	return list
}

// origin anchors a relative originating file to the session's working
// directory, so every candidate and cache key is absolute.
func (s *Session) origin(file string) string {
	if file == "" {
		return ""
	}
	return candidates.Resolve(s.cwd, file)
}

// Resolve locates, transforms and deduplicates one import.
//
// A missing or untransformable file yields the empty result and a warning,
// never an error. The only error is a cancelled context.
func (s *Session) Resolve(ctx context.Context, req domain.ImportRequest) (domain.ImportResult, error) {
	ctx, vertex := s.telemetry.Record(ctx, "import "+req.URI)

	file, err := s.prober.ResolveFirst(ctx, req.URI, s.Candidates(req))
	if err != nil {
		if ctx.Err() != nil {
			vertex.Complete(err)
			return domain.ImportResult{}, err
		}
		s.warn(vertex, err)
		return domain.ImportResult{}, nil
	}

	path := file.AbsolutePath

	// Only delivered paths are recorded, so a seen path is a repeat.
	if s.cache.Seen(path) {
		vertex.Cached()
		vertex.Complete(nil)
		return domain.DuplicateResult(path), nil
	}

	contents, err := s.transformer.Transform(file.RawBytes, path)
	if err != nil {
		s.warn(vertex, err)
		return domain.ImportResult{}, nil
	}

	if !s.cache.ShouldEmit(path) {
		vertex.Cached()
		vertex.Complete(nil)
		return domain.DuplicateResult(path), nil
	}

	vertex.Log(domain.LogLevelDebug, "resolved "+path)
	vertex.Complete(nil)

	return domain.ImportResult{Contents: contents, File: path}, nil
}

// Import resolves uri on its own goroutine and hands the result to done.
// done is called exactly once.
func (s *Session) Import(ctx context.Context, uri, prev string, done func(domain.ImportResult)) {
	go func() {
		result, err := s.Resolve(ctx, domain.ImportRequest{URI: uri, OriginatingFile: prev})
		if err != nil {
			s.logger.Error(err)
		}
		done(result)
	}()
}

// Included returns the delivered paths in first-delivery order.
func (s *Session) Included() []string {
	return s.cache.Paths()
}

func (s *Session) warn(vertex ports.Vertex, err error) {
	s.logger.Warn(err.Error())
	vertex.Log(domain.LogLevelWarn, err.Error())
	vertex.Complete(nil)
}
