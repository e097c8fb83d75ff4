package transform_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sassimport/internal/core/domain"
	"go.trai.ch/sassimport/internal/engine/transform"
)

func TestTransform_Golden(t *testing.T) {
	path, err := filepath.Abs(filepath.Join("testdata", "theme.yaml"))
	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	tests := []struct {
		mode       domain.TransformMode
		goldenName string
	}{
		{mode: domain.TransformStructural, goldenName: "theme_structural"},
		{mode: domain.TransformLexical, goldenName: "theme_lexical"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got, err := transform.New(tt.mode).Transform(raw, path)
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(got))
		})
	}
}
