// Package app implements the application layer for sassimport.
package app

import (
	"context"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/sassimport/internal/core/domain"
	"go.trai.ch/sassimport/internal/core/ports"
	"go.trai.ch/sassimport/internal/engine/importer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	sessions     *importer.Factory
	reader       ports.FileReader
	walker       ports.SourceWalker
	hasher       ports.Hasher
	manifests    ports.ManifestOpener
	compiler     ports.Compiler
	watcher      ports.Watcher
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sessions *importer.Factory,
	reader ports.FileReader,
	walker ports.SourceWalker,
	hasher ports.Hasher,
	manifests ports.ManifestOpener,
	compiler ports.Compiler,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		sessions:     sessions,
		reader:       reader,
		walker:       walker,
		hasher:       hasher,
		manifests:    manifests,
		compiler:     compiler,
		watcher:      watcher,
		logger:       log,
	}
}

// RunOptions configuration shared by every command.
type RunOptions struct {
	// Cwd is the working directory. Empty means the process working directory.
	Cwd string
	// ConfigPath is an explicit configuration file. Empty means DefaultFilename in Cwd.
	ConfigPath string
	// Overrides win over the configuration file.
	Overrides domain.PartialOptions
}

// Resolution is the outcome of resolving one uri.
type Resolution struct {
	URI    string
	Result domain.ImportResult
}

// Resolve resolves every uri, in order, through a single session, so a uri
// repeated on the command line reports as a duplicate.
func (a *App) Resolve(ctx context.Context, uris []string, from string, opts RunOptions) ([]Resolution, error) {
	session, _, err := a.newSession(opts)
	if err != nil {
		return nil, err
	}

	if from != "" {
		if from, err = filepath.Abs(from); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve importer path"), "from", from)
		}
	}

	out := make([]Resolution, 0, len(uris))
	for _, uri := range uris {
		res, err := session.Resolve(ctx, domain.ImportRequest{URI: uri, OriginatingFile: from})
		if err != nil {
			return nil, err
		}
		out = append(out, Resolution{URI: uri, Result: res})
	}
	return out, nil
}

// ImportStatus is one @import found by Check.
type ImportStatus struct {
	File   string
	URI    string
	Result domain.ImportResult
}

// CheckReport summarizes a Check run.
type CheckReport struct {
	Files      int
	Imports    []ImportStatus
	Unresolved []ImportStatus
	// Changed counts delivered files whose digest differs from the manifest.
	Changed int
	// ManifestPath is empty when no manifest was written.
	ManifestPath string
}

// Check resolves every @import of every stylesheet below root through one
// session. Files are processed in parallel; the imports of one file are
// resolved in source order.
func (a *App) Check(ctx context.Context, root string, opts RunOptions) (*CheckReport, error) {
	session, cfg, err := a.newSession(opts)
	if err != nil {
		return nil, err
	}

	files := slices.Collect(a.walker.Stylesheets(root))
	perFile := make([][]ImportStatus, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, file := range files {
		g.Go(func() error {
			data, err := a.reader.ReadFile(gctx, file)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to read stylesheet"), "file", file)
			}

			for _, uri := range ScanImports(data) {
				res, err := session.Resolve(gctx, domain.ImportRequest{URI: uri, OriginatingFile: file})
				if err != nil {
					return err
				}
				perFile[i] = append(perFile[i], ImportStatus{File: file, URI: uri, Result: res})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &CheckReport{Files: len(files)}
	for _, statuses := range perFile {
		for _, st := range statuses {
			report.Imports = append(report.Imports, st)
			if st.Result.IsEmpty() {
				report.Unresolved = append(report.Unresolved, st)
			}
		}
	}

	if cfg.ManifestPath != "" {
		if err := a.recordManifest(cfg.ManifestPath, report); err != nil {
			return nil, err
		}
		report.ManifestPath = cfg.ManifestPath
	}

	return report, nil
}

func (a *App) recordManifest(path string, report *CheckReport) error {
	store, err := a.manifests.Open(path)
	if err != nil {
		return err
	}

	var entries []domain.ManifestEntry
	for _, st := range report.Imports {
		if st.Result.File == "" {
			continue
		}

		entry := domain.ManifestEntry{
			Path:     st.Result.File,
			URI:      st.URI,
			Importer: st.File,
			Digest:   a.hasher.ContentHash([]byte(st.Result.Contents)),
			Size:     len(st.Result.Contents),
		}

		prev, err := store.Get(entry.Path)
		if err != nil {
			return err
		}
		if prev != nil && prev.Digest != entry.Digest {
			report.Changed++
		}

		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil
	}
	return store.Put(entries...)
}

// CompileResult is the output of Compile.
type CompileResult struct {
	CSS string
	// Included lists the files delivered to the compiler in first-delivery order.
	Included []string
}

// Compile compiles entry with imports resolved by a fresh session.
func (a *App) Compile(ctx context.Context, entry string, opts RunOptions) (*CompileResult, error) {
	if entry == "" {
		return nil, domain.ErrNoEntrySpecified
	}

	session, _, err := a.newSession(opts)
	if err != nil {
		return nil, err
	}

	css, err := a.compiler.Compile(ctx, entry, session)
	if err != nil {
		return nil, err
	}

	return &CompileResult{CSS: css, Included: session.Included()}, nil
}

// Watch compiles entry, then recompiles whenever a stylesheet or data file
// below the working directory changes, until ctx is cancelled. Every outcome,
// failed compilations included, is handed to report.
func (a *App) Watch(ctx context.Context, entry string, opts RunOptions, report func(*CompileResult, error)) error {
	if entry == "" {
		return domain.ErrNoEntrySpecified
	}

	report(a.Compile(ctx, entry, opts))

	root := opts.Cwd
	if root == "" {
		root = "."
	}
	if err := a.watcher.Start(ctx, root); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	for batch := range a.watcher.Changes() {
		if !slices.ContainsFunc(batch, isSource) {
			continue
		}
		a.logger.Info("change detected, recompiling " + entry)
		report(a.Compile(ctx, entry, opts))
	}
	return nil
}

// isSource reports whether a change to path can alter the compiled output.
func isSource(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".scss", ".sass", ".css", ".json", ".yml", ".yaml":
		return true
	default:
		return false
	}
}

func (a *App) newSession(opts RunOptions) (*importer.Session, domain.ProjectConfig, error) {
	cwd := opts.Cwd
	if cwd == "" {
		cwd = "."
	}

	var (
		cfg domain.ProjectConfig
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = a.configLoader.LoadFile(opts.ConfigPath)
	} else {
		cfg, err = a.configLoader.Load(cwd)
	}
	if err != nil {
		return nil, cfg, zerr.Wrap(err, "failed to load configuration")
	}

	session, err := a.sessions.NewSession(cfg.Options.Override(opts.Overrides), cwd)
	if err != nil {
		return nil, cfg, zerr.Wrap(err, "failed to start resolver session")
	}
	return session, cfg, nil
}
