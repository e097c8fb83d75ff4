package domain

import (
	"os"
	"strings"

	"go.trai.ch/zerr"
)

// TransformMode selects how structured-data files are turned into Sass source.
type TransformMode string

const (
	// TransformStructural parses the data and emits a Sass map/list literal.
	TransformStructural TransformMode = "structural"
	// TransformLexical swaps brackets for parentheses over the raw text.
	// Punctuation inside string values is rewritten too.
	TransformLexical TransformMode = "lexical"
)

// ImportOnceOptions toggles the optional expansion rules.
type ImportOnceOptions struct {
	Index bool
	Bower bool
	CSS   bool
}

// ResolverOptions is the merged, read-only configuration of one resolver session.
type ResolverOptions struct {
	IncludePaths []string
	ImportOnce   ImportOnceOptions
	Transform    TransformMode
}

// PartialImportOnce carries caller-supplied toggles. Nil means "not set".
type PartialImportOnce struct {
	Index *bool
	Bower *bool
	CSS   *bool
}

// PartialOptions is what a caller hands over before defaults are applied.
type PartialOptions struct {
	IncludePaths []string
	ImportOnce   *PartialImportOnce
	Transform    TransformMode
}

// MergeDefaults fills every unset field of partial with its default.
func MergeDefaults(partial PartialOptions) (ResolverOptions, error) {
	opts := ResolverOptions{
		Transform: TransformStructural,
	}

	if len(partial.IncludePaths) > 0 {
		opts.IncludePaths = make([]string, 0, len(partial.IncludePaths))
		for _, p := range partial.IncludePaths {
			if p != "" {
				opts.IncludePaths = append(opts.IncludePaths, p)
			}
		}
	}

	if io := partial.ImportOnce; io != nil {
		opts.ImportOnce.Index = deref(io.Index)
		opts.ImportOnce.Bower = deref(io.Bower)
		opts.ImportOnce.CSS = deref(io.CSS)
	}

	switch partial.Transform {
	case "":
	case TransformStructural, TransformLexical:
		opts.Transform = partial.Transform
	default:
		err := zerr.Wrap(ErrInvalidTransformMode, "invalid resolver options")
		return ResolverOptions{}, zerr.With(err, "transform", string(partial.Transform))
	}

	return opts, nil
}

// Override returns a copy of p where every field set in o wins.
func (p PartialOptions) Override(o PartialOptions) PartialOptions {
	out := p
	if len(o.IncludePaths) > 0 {
		out.IncludePaths = o.IncludePaths
	}
	if o.Transform != "" {
		out.Transform = o.Transform
	}
	if o.ImportOnce != nil {
		merged := PartialImportOnce{}
		if p.ImportOnce != nil {
			merged = *p.ImportOnce
		}
		if o.ImportOnce.Index != nil {
			merged.Index = o.ImportOnce.Index
		}
		if o.ImportOnce.Bower != nil {
			merged.Bower = o.ImportOnce.Bower
		}
		if o.ImportOnce.CSS != nil {
			merged.CSS = o.ImportOnce.CSS
		}
		out.ImportOnce = &merged
	}
	return out
}

// ParseIncludePaths splits a list of directories joined with the OS path list separator.
func ParseIncludePaths(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, string(os.PathListSeparator))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func deref(b *bool) bool {
	return b != nil && *b
}
