package domain_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sassimport/internal/core/domain"
)

func boolPtr(b bool) *bool { return &b }

func TestMergeDefaults_Empty(t *testing.T) {
	opts, err := domain.MergeDefaults(domain.PartialOptions{})
	require.NoError(t, err)

	assert.False(t, opts.ImportOnce.Index)
	assert.False(t, opts.ImportOnce.Bower)
	assert.False(t, opts.ImportOnce.CSS)
	assert.Empty(t, opts.IncludePaths)
	assert.Equal(t, domain.TransformStructural, opts.Transform)
}

func TestMergeDefaults_PartialImportOnce(t *testing.T) {
	opts, err := domain.MergeDefaults(domain.PartialOptions{
		ImportOnce: &domain.PartialImportOnce{Index: boolPtr(true)},
	})
	require.NoError(t, err)

	assert.True(t, opts.ImportOnce.Index)
	assert.False(t, opts.ImportOnce.Bower)
	assert.False(t, opts.ImportOnce.CSS)
}

func TestMergeDefaults_DropsEmptyIncludePaths(t *testing.T) {
	opts, err := domain.MergeDefaults(domain.PartialOptions{
		IncludePaths: []string{"custom", "", "vendor"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"custom", "vendor"}, opts.IncludePaths)
}

func TestMergeDefaults_TransformMode(t *testing.T) {
	opts, err := domain.MergeDefaults(domain.PartialOptions{Transform: domain.TransformLexical})
	require.NoError(t, err)
	assert.Equal(t, domain.TransformLexical, opts.Transform)

	_, err = domain.MergeDefaults(domain.PartialOptions{Transform: "magic"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidTransformMode))
}

func TestPartialOptions_Override(t *testing.T) {
	base := domain.PartialOptions{
		IncludePaths: []string{"lib"},
		ImportOnce:   &domain.PartialImportOnce{Index: boolPtr(true), CSS: boolPtr(true)},
		Transform:    domain.TransformLexical,
	}

	got := base.Override(domain.PartialOptions{
		ImportOnce: &domain.PartialImportOnce{CSS: boolPtr(false), Bower: boolPtr(true)},
	})

	assert.Equal(t, []string{"lib"}, got.IncludePaths)
	assert.Equal(t, domain.TransformLexical, got.Transform)
	require.NotNil(t, got.ImportOnce)
	assert.True(t, *got.ImportOnce.Index)
	assert.True(t, *got.ImportOnce.Bower)
	assert.False(t, *got.ImportOnce.CSS)

	// The receiver is left untouched.
	assert.Nil(t, base.ImportOnce.Bower)
	assert.True(t, *base.ImportOnce.CSS)
}

func TestParseIncludePaths(t *testing.T) {
	sep := string(os.PathListSeparator)

	assert.Nil(t, domain.ParseIncludePaths(""))
	assert.Equal(t,
		[]string{"custom", "vendor/sass"},
		domain.ParseIncludePaths(strings.Join([]string{"custom", " vendor/sass ", ""}, sep)),
	)
}
