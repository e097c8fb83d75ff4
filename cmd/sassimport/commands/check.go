package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.trai.ch/sassimport/internal/core/domain"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [dir]",
		Short: "Resolve every @import below a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			report, err := c.app.Check(cmd.Context(), root, runOptions(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, st := range report.Unresolved {
				_, _ = failColor.Fprint(cmd.ErrOrStderr(), "missing   ")
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", st.File, st.URI)
			}

			_, _ = fmt.Fprintf(out, "checked %s, %s, %d unresolved\n",
				plural(report.Files, "file"),
				plural(len(report.Imports), "import"),
				len(report.Unresolved),
			)
			if report.ManifestPath != "" {
				_, _ = fmt.Fprintf(out, "manifest written to %s (%s changed)\n",
					report.ManifestPath, humanize.Comma(int64(report.Changed)))
			}

			if len(report.Unresolved) > 0 {
				return domain.ErrUnresolvedImports
			}
			return nil
		},
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return humanize.Comma(int64(n)) + " " + noun + "s"
}
