package transform_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sassimport/internal/core/domain"
	"go.trai.ch/sassimport/internal/engine/transform"
)

func TestApplies(t *testing.T) {
	assert.True(t, transform.Applies("/src/colors.json"))
	assert.True(t, transform.Applies("/src/theme.yml"))
	assert.True(t, transform.Applies("/src/theme.YAML"))
	assert.False(t, transform.Applies("/src/_foo.scss"))
	assert.False(t, transform.Applies("/src/config.js"))
	assert.False(t, transform.Applies("/src/plain.css"))
}

func TestTransform_PassThrough(t *testing.T) {
	tr := transform.New(domain.TransformStructural)

	got, err := tr.Transform([]byte("a { b: c; }\n"), "/src/_foo.scss")
	require.NoError(t, err)
	assert.Equal(t, "a { b: c; }\n", got)
}

func TestTransform_Structural(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		input    string
		expected string
	}{
		{
			name:     "hex color map",
			path:     "/src/colors.json",
			input:    `{"primary": "#ff0000"}`,
			expected: `$colors: (primary: #ff0000);`,
		},
		{
			name:     "nested map keeps key order",
			path:     "/src/theme.json",
			input:    `{"z": 1, "a": {"b": true, "c": null}}`,
			expected: `$theme: (z: 1, a: (b: true, c: null));`,
		},
		{
			name:     "lists",
			path:     "/src/sizes.json",
			input:    `{"one": [1], "many": [1, 2.5], "none": []}`,
			expected: `$sizes: (one: (1,), many: (1, 2.5), none: ());`,
		},
		{
			name:     "strings are quoted and escaped",
			path:     "/src/fonts.json",
			input:    `{"stack": "Helvetica \"Neue\", sans", "note": "a\nb"}`,
			expected: `$fonts: (stack: "Helvetica \"Neue\", sans", note: "a\a b");`,
		},
		{
			name:     "functional colors are bare, near misses are quoted",
			path:     "/src/palette.json",
			input:    `{"a": "rgb(0, 128, 255)", "b": "hsla(120, 50%, 50%, 0.5)", "c": "#ff00", "d": "say #fff"}`,
			expected: `$palette: (a: rgb(0, 128, 255), b: hsla(120, 50%, 50%, 0.5), c: "#ff00", d: "say #fff");`,
		},
		{
			name:     "non identifier and reserved keys are quoted",
			path:     "/src/keys.json",
			input:    `{"1x": 1, "null": 2, "red": 3, "with space": 4, "brand-red": 5}`,
			expected: `$keys: ("1x": 1, "null": 2, "red": 3, "with space": 4, brand-red: 5);`,
		},
		{
			name:     "brackets inside strings survive",
			path:     "/src/selectors.json",
			input:    `{"attr": "[data-x]"}`,
			expected: `$selectors: (attr: "[data-x]");`,
		},
		{
			name:     "top-level list",
			path:     "/src/breakpoints.json",
			input:    `["small", "large"]`,
			expected: `$breakpoints: ("small", "large");`,
		},
		{
			name:     "yaml document",
			path:     "/src/theme.yml",
			input:    "primary: '#336699'\nspacing:\n  - 4\n  - 8\nenabled: yes_please\nratio: 1.50\n",
			expected: `$theme: (primary: #336699, spacing: (4, 8), enabled: "yes_please", ratio: 1.5);`,
		},
		{
			name:     "yaml aliases are followed",
			path:     "/src/alias.yaml",
			input:    "base: &b '#000'\ntext: *b\n",
			expected: `$alias: (base: #000, text: #000);`,
		},
		{
			name:     "an anchor may be referenced many times",
			path:     "/src/shared.yaml",
			input:    "base: &b\n  x: 1\nother: *b\nmore: [*b, *b]\n",
			expected: `$shared: (base: (x: 1), other: (x: 1), more: ((x: 1), (x: 1)));`,
		},
		{
			name:     "empty yaml is null",
			path:     "/src/empty.yaml",
			input:    "",
			expected: `$empty: null;`,
		},
	}

	tr := transform.New("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.Transform([]byte(tt.input), tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTransform_Lexical(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		input    string
		expected string
	}{
		{
			name:     "json hex color",
			path:     "/src/colors.json",
			input:    "{\"primary\": \"#ff0000\"}\n",
			expected: `$colors:("primary": #ff0000);`,
		},
		{
			name:     "only one trailing newline is stripped",
			path:     "/src/colors.json",
			input:    "{\"a\": 1}\n\n",
			expected: "$colors:(\"a\": 1)\n;",
		},
		{
			name:     "rgb and hsl literals",
			path:     "/src/palette.json",
			input:    `{"a": "rgb(1, 2, 3)", "b": "hsl(120, 50, 50)", "c": "rgba(10, 20, 30)"}`,
			expected: `$palette:("a": rgb(1, 2, 3), "b": hsl(120, 50, 50), "c": rgba(10, 20, 30));`,
		},
		{
			name:     "only the legacy color forms are unquoted",
			path:     "/src/palette.json",
			input:    `{"a": "#FFF", "b": "rgba(255, 0, 0, 0.5)", "c": "hsl(120, 50%, 50%)", "d": "rgb(1,2,3)", "e": "#fff"}`,
			expected: `$palette:("a": "#FFF", "b": "rgba(255, 0, 0, 0.5)", "c": "hsl(120, 50%, 50%)", "d": "rgb(1,2,3)", "e": #fff);`,
		},
		{
			name:     "brackets inside strings are swapped too",
			path:     "/src/selectors.json",
			input:    `{"attr": "[data-x]"}`,
			expected: `$selectors:("attr": "(data-x)");`,
		},
		{
			name:     "yaml is re-serialized as compact json",
			path:     "/src/theme.yaml",
			input:    "primary: '#abc'\nlist:\n  - 1\n  - a<b\n",
			expected: `$theme:("primary":#abc,"list":(1,"a<b"));`,
		},
	}

	tr := transform.New(domain.TransformLexical)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.Transform([]byte(tt.input), tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTransform_Invalid(t *testing.T) {
	tests := []struct {
		name string
		mode domain.TransformMode
		path string
		in   string
	}{
		{"structural json", domain.TransformStructural, "/src/bad.json", `{"a": `},
		{"structural trailing data", domain.TransformStructural, "/src/bad.json", `{} {}`},
		{"structural yaml", domain.TransformStructural, "/src/bad.yml", "a: [1, 2\n"},
		{"lexical json", domain.TransformLexical, "/src/bad.json", `{"a": `},
		{"lexical yaml", domain.TransformLexical, "/src/bad.yaml", "a: [1, 2\n"},
		{"structural recursive alias", domain.TransformStructural, "/src/loop.yaml", "a: &x [1, *x]\n"},
		{"lexical recursive alias", domain.TransformLexical, "/src/loop.yaml", "a: &x [1, *x]\n"},
		{"structural alias expansion", domain.TransformStructural, "/src/bomb.yaml", aliasBomb(8)},
		{"lexical alias expansion", domain.TransformLexical, "/src/bomb.yaml", aliasBomb(8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := transform.New(tt.mode).Transform([]byte(tt.in), tt.path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrTransformFailed))
		})
	}
}

// aliasBomb builds a document where each level lists the previous one nine
// times, so the expanded size grows as 9^levels.
func aliasBomb(levels int) string {
	var b strings.Builder
	b.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= levels; i++ {
		refs := make([]string, 9)
		for j := range refs {
			refs[j] = fmt.Sprintf("*l%d", i-1)
		}
		fmt.Fprintf(&b, "l%d: &l%d [%s]\n", i, i, strings.Join(refs, ", "))
	}
	return b.String()
}
