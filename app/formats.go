package app

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/barcode-maker/barcode-maker/internal/web/handler/formats"
)

func init() { //nolint: gochecknoinits
	formatsCmd.Flags().BoolVar(&formatsAsJSON, "json", false, "print the catalog as JSON")

	rootCmd.AddCommand(formatsCmd)
}

var (
	formatsAsJSON bool

	formatsCmd = &cobra.Command{
		Use:   "formats",
		Short: "List the barcode formats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := formats.Catalog()

			if formatsAsJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return enc.Encode(catalog)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0) //nolint:mnd
			_, _ = fmt.Fprintln(tw, "CATEGORY\tFORMAT\tNAME\t2D\tSUPPORTED\tSAMPLE")

			for _, c := range catalog {
				for _, t := range c.Types {
					_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%t\t%s\n",
						c.Name, t.Value, t.Name, t.Is2D, t.Supported, t.InitData)
				}
			}

			return tw.Flush()
		},
	}
)
