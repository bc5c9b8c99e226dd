package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"rantoo/config"
	"rantoo/infras/otel"
	"rantoo/internal/domains/converter/model/dto"
	"rantoo/internal/domains/converter/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type options struct {
	timezone string
	json     bool
	verbose  bool
}

// NewRootCmd builds the command tree around svc.
func NewRootCmd(svc service.Converter) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "rantoo",
		Short: "Convert between Unix epoch seconds and human readable datetimes",
		Long: `rantoo converts Unix epoch seconds to datetimes and back.

Datetime formats:
  YYYY-MM-DD-HHMMSS   2025-09-10-131100
  YYYYMMDDHHMMSS      20250910131100
  YYYYMMDDHHMM        202509101311
  MM/DD/YYYY HH:MM    09/10/2025 13:11

Without --tz everything is UTC. Unknown timezones fall back to UTC.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := zerolog.WarnLevel
			if opts.verbose {
				level = zerolog.DebugLevel
			}

			zerolog.SetGlobalLevel(level)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.timezone, "tz", "", "timezone identifier or alias, e.g. America/Los_Angeles or pst")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "print JSON instead of text")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newEpochCmd(svc, opts),
		newDatetimeCmd(svc, opts),
		newTimezonesCmd(svc),
		newVersionCmd(),
	)

	return rootCmd
}

func Execute() error {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := &config.Config{}
	cfg.App.Name = "rantoo"

	return NewRootCmd(service.New(cfg, otel.New(cfg))).Execute() //nolint:wrapcheck
}

func printConversion(out io.Writer, res dto.ConversionResponse, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		return encoder.Encode(res) //nolint:wrapcheck
	}

	_, err := fmt.Fprint(out, res.Text())

	return err //nolint:wrapcheck
}
