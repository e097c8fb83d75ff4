// Package prober finds the first readable file in an ordered candidate list.
package prober

import (
	"context"

	"go.trai.ch/sassimport/internal/core/domain"
	"go.trai.ch/sassimport/internal/core/ports"
	"go.trai.ch/zerr"
)

// Prober reads candidates one at a time, in order.
type Prober struct {
	reader ports.FileReader
}

// New creates a Prober backed by reader.
func New(reader ports.FileReader) *Prober {
	return &Prober{reader: reader}
}

// ResolveFirst returns the first candidate that can be read.
//
// Candidates are never read in parallel: the first match by generation order
// wins and nothing past it is touched. Any read error, including permission
// errors, moves on to the next candidate. When the list is exhausted the
// returned error is a *domain.NotFoundError naming every attempted path.
func (p *Prober) ResolveFirst(ctx context.Context, uri string, candidates []string) (domain.ResolvedFile, error) {
	attempted := make([]string, 0, len(candidates))

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return domain.ResolvedFile{}, zerr.With(zerr.Wrap(err, "import probing cancelled"), "uri", uri)
		}

		attempted = append(attempted, candidate)

		data, err := p.reader.ReadFile(ctx, candidate)
		if err != nil {
			continue
		}

		return domain.ResolvedFile{
			AbsolutePath: candidate,
			RawBytes:     data,
		}, nil
	}

	return domain.ResolvedFile{}, &domain.NotFoundError{URI: uri, Attempted: attempted}
}
