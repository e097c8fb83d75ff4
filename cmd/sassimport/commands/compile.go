package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.trai.ch/sassimport/internal/app"
	"go.trai.ch/zerr"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <file>",
		Short: "Compile a stylesheet with Dart Sass, resolving imports once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			watch, _ := cmd.Flags().GetBool("watch")
			opts := runOptions(cmd)

			if watch {
				return c.app.Watch(cmd.Context(), args[0], opts, func(res *app.CompileResult, err error) {
					if err == nil {
						err = writeCSS(cmd, output, res)
					}
					if err != nil {
						_, _ = failColor.Fprint(cmd.ErrOrStderr(), "error     ")
						_, _ = fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
					}
				})
			}

			res, err := c.app.Compile(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return writeCSS(cmd, output, res)
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write CSS to this file instead of stdout")
	cmd.Flags().BoolP("watch", "w", false, "Recompile whenever a source below the working directory changes")
	return cmd
}

func writeCSS(cmd *cobra.Command, output string, res *app.CompileResult) error {
	if output == "" {
		_, _ = io.WriteString(cmd.OutOrStdout(), res.CSS)
		return nil
	}

	//nolint:gosec // Stylesheets are served to browsers.
	if err := os.WriteFile(output, []byte(res.CSS), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write css"), "path", output)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s) from %d imported files\n",
		output, humanize.Bytes(uint64(len(res.CSS))), len(res.Included))
	return nil
}
