package cmd

import (
	"strings"

	"rantoo/internal/domains/converter/model/dto"
	"rantoo/internal/domains/converter/service"

	"github.com/spf13/cobra"
)

func newEpochCmd(svc service.Converter, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "epoch <seconds>",
		Short:   "Convert epoch seconds to a datetime",
		Long:    "Convert epoch seconds to a datetime.\n\nPut negative seconds after -- so they are not read as flags.",
		Example: "  rantoo epoch 1757509860 --tz pst\n  rantoo epoch --tz pst -- -86400",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := svc.EpochToHuman(cmd.Context(), dto.ConversionRequest{
				Input:    args[0],
				Timezone: opts.timezone,
			})
			if err != nil {
				return err //nolint:wrapcheck
			}

			return printConversion(cmd.OutOrStdout(), res, opts.json)
		},
	}
}

func newDatetimeCmd(svc service.Converter, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "datetime <value>",
		Short:   "Convert a datetime to epoch seconds",
		Example: "  rantoo datetime 09/10/2025 13:11 --tz America/New_York",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := svc.HumanToEpoch(cmd.Context(), dto.ConversionRequest{
				Input:    strings.Join(args, " "),
				Timezone: opts.timezone,
			})
			if err != nil {
				return err //nolint:wrapcheck
			}

			return printConversion(cmd.OutOrStdout(), res, opts.json)
		},
	}
}
