package importer

import "go.trai.ch/sassimport/internal/core/domain"

// Factory creates sessions sharing one set of collaborators.
type Factory struct {
	deps Deps
}

// NewFactory creates a Factory.
func NewFactory(deps Deps) *Factory {
	return &Factory{deps: deps}
}

// NewSession starts a fresh session with an empty once-cache.
func (f *Factory) NewSession(partial domain.PartialOptions, cwd string) (*Session, error) {
	return New(partial, cwd, f.deps)
}
