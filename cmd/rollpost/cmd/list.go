package cmd

import (
	"fmt"
	"text/tabwriter"

	rp "github.com/moisespsena-go/rollpost/pkg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "lists the dated posts with their first heading",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			log     = newLogger(cmd.ErrOrStderr(), cmd)
			fsys    = rp.DirFS(viper.GetString("root"))
			entries []rp.Entry
		)
		if entries, err = rp.List(fsys, viper.GetString("posts-dir"), log); err != nil {
			return
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Date(), e.Title, e.Heading)
		}
		return w.Flush()
	},
}
