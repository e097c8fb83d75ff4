package dartsass

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"github.com/bep/godartsass/v2"
	"go.trai.ch/sassimport/internal/core/domain"
	"go.trai.ch/sassimport/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler implements ports.Compiler with the Dart Sass embedded protocol.
// The Dart Sass process is started on first use.
type Compiler struct {
	reader ports.FileReader
	logger ports.Logger
	style  godartsass.OutputStyle

	mu         sync.Mutex
	transpiler *godartsass.Transpiler
}

// NewCompiler creates a Compiler producing expanded CSS.
func NewCompiler(reader ports.FileReader, log ports.Logger) *Compiler {
	return &Compiler{
		reader: reader,
		logger: log,
		style:  godartsass.OutputStyleExpanded,
	}
}

// Compile compiles entry to CSS, resolving every import through importer.
func (c *Compiler) Compile(ctx context.Context, entry string, importer ports.Importer) (string, error) {
	abs, err := filepath.Abs(entry)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve entry path"), "entry", entry)
	}

	source, err := c.reader.ReadFile(ctx, abs)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrCompileFailed, err), "entry", abs)
	}

	t, err := c.start()
	if err != nil {
		return "", err
	}

	res, err := t.Execute(godartsass.Args{
		Source:         string(source),
		URL:            fileURL(abs),
		SourceSyntax:   syntaxFor(abs),
		OutputStyle:    c.style,
		ImportResolver: NewResolver(ctx, importer, abs),
	})
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrCompileFailed, err), "entry", abs)
	}

	return res.CSS, nil
}

func (c *Compiler) start() (*godartsass.Transpiler, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.transpiler != nil {
		return c.transpiler, nil
	}

	t, err := godartsass.Start(godartsass.Options{
		LogEventHandler: func(e godartsass.LogEvent) {
			c.logger.Warn(e.Message)
		},
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to start dart sass")
	}

	c.transpiler = t
	return t, nil
}

// Close stops the Dart Sass process if it was started.
func (c *Compiler) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.transpiler == nil {
		return nil
	}
	err := c.transpiler.Close()
	c.transpiler = nil
	return err
}
