package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func listCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered functions and their signatures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := env.cfg.newRegistry()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range reg.Names() {
				fn, _ := reg.Lookup(name)
				fmt.Fprintf(w, "%s\t%s\n", fn.Signature(), fn.Doc)
			}
			return w.Flush()
		},
	}
}
