package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sassimport/internal/core/domain"
)

func TestImportResult_Kinds(t *testing.T) {
	delivered := domain.ImportResult{Contents: "a { b: c; }", File: "/src/_a.scss"}
	dup := domain.DuplicateResult("/src/_a.scss")
	empty := domain.ImportResult{}

	assert.False(t, delivered.IsDuplicate())
	assert.False(t, delivered.IsEmpty())
	assert.Equal(t, "/src/_a.scss", delivered.Path())

	assert.True(t, dup.IsDuplicate())
	assert.False(t, dup.IsEmpty())
	assert.Equal(t, "already-imported:/src/_a.scss", dup.Filename)
	assert.Equal(t, "/src/_a.scss", dup.Path())

	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.IsDuplicate())
}

func TestNotFoundError(t *testing.T) {
	err := &domain.NotFoundError{
		URI:       "missing",
		Attempted: []string{"/src/missing.scss", "/src/missing.sass"},
	}

	assert.Equal(t,
		"Could not import `missing` from any of the following locations:\n  /src/missing.scss\n  /src/missing.sass",
		err.Error(),
	)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.False(t, errors.Is(err, domain.ErrConfigParseFailed))
}
