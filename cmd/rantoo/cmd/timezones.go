package cmd

import (
	"fmt"
	"maps"
	"slices"
	"text/tabwriter"

	"rantoo/internal/domains/converter/service"

	"github.com/spf13/cobra"
)

func newTimezonesCmd(svc service.Converter) *cobra.Command {
	return &cobra.Command{
		Use:   "timezones",
		Short: "List timezone aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			aliases := svc.Timezones(cmd.Context()).Aliases

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, alias := range slices.Sorted(maps.Keys(aliases)) {
				fmt.Fprintf(writer, "%s\t%s\n", alias, aliases[alias])
			}

			return writer.Flush() //nolint:wrapcheck
		},
	}
}
