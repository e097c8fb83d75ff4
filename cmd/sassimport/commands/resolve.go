package commands

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.trai.ch/sassimport/internal/app"
)

var (
	okColor   = color.New(color.FgGreen)
	dupColor  = color.New(color.FgYellow)
	failColor = color.New(color.FgRed, color.Bold)
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [uris...]",
		Short: "Resolve import uris and report where each one lands",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			from, _ := cmd.Flags().GetString("from")
			printContents, _ := cmd.Flags().GetBool("print")

			results, err := c.app.Resolve(cmd.Context(), args, from, runOptions(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				if printContents {
					if r.Result.Contents != "" {
						_, _ = io.WriteString(out, r.Result.Contents+"\n")
					}
					continue
				}
				printResolution(out, r)
			}
			return nil
		},
	}
	cmd.Flags().String("from", "", "Stylesheet the uris are imported from (default: the working directory)")
	cmd.Flags().BoolP("print", "p", false, "Print the delivered contents instead of a status line")
	return cmd
}

func printResolution(w io.Writer, r app.Resolution) {
	switch {
	case r.Result.IsDuplicate():
		_, _ = dupColor.Fprint(w, "duplicate ")
		_, _ = io.WriteString(w, r.URI+" -> "+r.Result.Path()+"\n")
	case r.Result.IsEmpty():
		_, _ = failColor.Fprint(w, "missing   ")
		_, _ = io.WriteString(w, r.URI+"\n")
	default:
		_, _ = okColor.Fprint(w, "resolved  ")
		size := humanize.Bytes(uint64(len(r.Result.Contents)))
		_, _ = io.WriteString(w, r.URI+" -> "+r.Result.File+" ("+size+")\n")
	}
}
