package commands_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sassimport/cmd/sassimport/commands"
	"go.trai.ch/sassimport/cmd/sassimport/commands/mocks"
	"go.trai.ch/sassimport/internal/app"
	"go.trai.ch/sassimport/internal/build"
	"go.trai.ch/sassimport/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newCLI(t *testing.T, args ...string) (*commands.CLI, *mocks.MockApplication, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	mock := mocks.NewMockApplication(gomock.NewController(t))
	cli := commands.New(mock)
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cli.SetOutput(stdout, stderr)
	cli.SetArgs(args)
	return cli, mock, stdout, stderr
}

func TestCommands_Resolve(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		sep := string(os.PathListSeparator)
		cli, mock, _, _ := newCLI(t,
			"resolve", "foo", "bar",
			"--from", "src/main.scss",
			"-c", "custom.yaml",
			"-I", "vendor"+sep+"lib",
			"--include-path", "extra",
			"--index",
			"--bower=false",
			"--transform", "lexical",
		)

		var captured app.RunOptions
		mock.EXPECT().
			Resolve(gomock.Any(), []string{"foo", "bar"}, "src/main.scss", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ []string, _ string, opts app.RunOptions) ([]app.Resolution, error) {
				captured = opts
				return nil, nil
			})

		require.NoError(t, cli.Execute(context.Background()))

		assert.Equal(t, "custom.yaml", captured.ConfigPath)
		assert.Equal(t, []string{"vendor", "lib", "extra"}, captured.Overrides.IncludePaths)
		assert.Equal(t, domain.TransformLexical, captured.Overrides.Transform)
		require.NotNil(t, captured.Overrides.ImportOnce)
		require.NotNil(t, captured.Overrides.ImportOnce.Index)
		assert.True(t, *captured.Overrides.ImportOnce.Index)
		require.NotNil(t, captured.Overrides.ImportOnce.Bower)
		assert.False(t, *captured.Overrides.ImportOnce.Bower)
		assert.Nil(t, captured.Overrides.ImportOnce.CSS)
	})

	t.Run("unset flags leave the configuration alone", func(t *testing.T) {
		cli, mock, _, _ := newCLI(t, "resolve", "foo")

		mock.EXPECT().
			Resolve(gomock.Any(), []string{"foo"}, "", app.RunOptions{}).
			Return(nil, nil)

		require.NoError(t, cli.Execute(context.Background()))
	})

	t.Run("prints a status line per uri", func(t *testing.T) {
		cli, mock, stdout, _ := newCLI(t, "resolve", "foo", "foo", "nope")

		mock.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]app.Resolution{
			{URI: "foo", Result: domain.ImportResult{Contents: "$a: 1;", File: "/src/_foo.scss"}},
			{URI: "foo", Result: domain.DuplicateResult("/src/_foo.scss")},
			{URI: "nope"},
		}, nil)

		require.NoError(t, cli.Execute(context.Background()))

		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "resolved  foo -> /src/_foo.scss (6 B)", lines[0])
		assert.Equal(t, "duplicate foo -> /src/_foo.scss", lines[1])
		assert.Equal(t, "missing   nope", lines[2])
	})

	t.Run("prints contents", func(t *testing.T) {
		cli, mock, stdout, _ := newCLI(t, "resolve", "--print", "colors.json", "colors.json")

		mock.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]app.Resolution{
			{URI: "colors.json", Result: domain.ImportResult{Contents: "$colors: (red: #f00);", File: "/src/colors.json"}},
			{URI: "colors.json", Result: domain.DuplicateResult("/src/colors.json")},
		}, nil)

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "$colors: (red: #f00);\n", stdout.String())
	})

	t.Run("returns error on resolve failure", func(t *testing.T) {
		cli, mock, _, _ := newCLI(t, "resolve", "foo")

		mock.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("simulated error"))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no uris provided", func(t *testing.T) {
		cli, _, stdout, _ := newCLI(t, "resolve")

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, stdout.String(), "Usage:")
	})
}

func TestCommands_Check(t *testing.T) {
	t.Run("reports unresolved imports", func(t *testing.T) {
		cli, mock, stdout, stderr := newCLI(t, "check", "styles")

		mock.EXPECT().Check(gomock.Any(), "styles", gomock.Any()).Return(&app.CheckReport{
			Files: 2,
			Imports: []app.ImportStatus{
				{File: "styles/main.scss", URI: "base", Result: domain.ImportResult{File: "/styles/_base.scss"}},
				{File: "styles/main.scss", URI: "missing"},
			},
			Unresolved: []app.ImportStatus{
				{File: "styles/main.scss", URI: "missing"},
			},
		}, nil)

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrUnresolvedImports)
		assert.Equal(t, "checked 2 files, 2 imports, 1 unresolved\n", stdout.String())
		assert.Equal(t, "missing   styles/main.scss: missing\n", stderr.String())
	})

	t.Run("defaults to the working directory", func(t *testing.T) {
		cli, mock, stdout, _ := newCLI(t, "check")

		mock.EXPECT().Check(gomock.Any(), ".", gomock.Any()).Return(&app.CheckReport{
			Files:        1,
			ManifestPath: ".sassimport/manifest.json",
			Changed:      3,
		}, nil)

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, stdout.String(), "checked 1 file, 0 imports, 0 unresolved")
		assert.Contains(t, stdout.String(), "manifest written to .sassimport/manifest.json (3 changed)")
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		cli, _, _, _ := newCLI(t, "check", "a", "b")
		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Compile(t *testing.T) {
	t.Run("writes css to stdout", func(t *testing.T) {
		cli, mock, stdout, _ := newCLI(t, "compile", "main.scss", "--css")

		mock.EXPECT().
			Compile(gomock.Any(), "main.scss", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, opts app.RunOptions) (*app.CompileResult, error) {
				require.NotNil(t, opts.Overrides.ImportOnce)
				assert.True(t, *opts.Overrides.ImportOnce.CSS)
				return &app.CompileResult{CSS: "a {\n  b: c;\n}\n"}, nil
			})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "a {\n  b: c;\n}\n", stdout.String())
	})

	t.Run("writes css to a file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "main.css")
		cli, mock, stdout, _ := newCLI(t, "compile", "main.scss", "-o", out)

		mock.EXPECT().Compile(gomock.Any(), "main.scss", gomock.Any()).Return(&app.CompileResult{
			CSS:      "a{b:c}",
			Included: []string{"/src/_a.scss", "/src/_b.scss"},
		}, nil)

		require.NoError(t, cli.Execute(context.Background()))

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "a{b:c}", string(data))
		assert.Contains(t, stdout.String(), "from 2 imported files")
	})

	t.Run("propagates compile errors", func(t *testing.T) {
		cli, mock, _, _ := newCLI(t, "compile", "main.scss")

		mock.EXPECT().Compile(gomock.Any(), "main.scss", gomock.Any()).
			Return(nil, errors.Join(domain.ErrCompileFailed, errors.New("Undefined variable")))

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrCompileFailed)
	})

	t.Run("watches and reports every build", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "main.css")
		cli, mock, stdout, stderr := newCLI(t, "compile", "main.scss", "--watch", "-o", out)

		mock.EXPECT().
			Watch(gomock.Any(), "main.scss", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ app.RunOptions, report func(*app.CompileResult, error)) error {
				report(nil, errors.Join(domain.ErrCompileFailed, errors.New("expected \"}\"")))
				report(&app.CompileResult{CSS: "a{b:c}"}, nil)
				return nil
			})

		require.NoError(t, cli.Execute(context.Background()))

		assert.Contains(t, stderr.String(), "error     ")
		assert.Contains(t, stderr.String(), "expected")
		assert.Contains(t, stdout.String(), "wrote "+out)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "a{b:c}", string(data))
	})

	t.Run("requires an entry", func(t *testing.T) {
		cli, _, _, _ := newCLI(t, "compile")
		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Version(t *testing.T) {
	cli, _, stdout, _ := newCLI(t, "version")

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, stdout.String(), "sassimport version "+build.Version)
}
