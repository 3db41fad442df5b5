package main

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/dallasdata/soda-cli/pkg/soda"
)

var timestampTZ string

var timestampCmd = &cobra.Command{
	Use:   "timestamp <value>",
	Short: "Parse a SODA floating timestamp",
	Long:  "Parses a floating timestamp (YYYY-MM-DDTHH:MM:SS) and prints it in RFC 3339, optionally interpreted as wall-clock time in an IANA timezone.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var loc *time.Location
		if timestampTZ != "" {
			l, err := time.LoadLocation(timestampTZ)
			if err != nil {
				return eris.Wrapf(err, "timestamp: unknown timezone %q", timestampTZ)
			}
			loc = l
		}

		t, err := soda.ParseFloatingTimestamp(args[0], loc)
		if err != nil {
			return eris.Wrap(err, "timestamp: parse")
		}

		fmt.Fprintln(cmd.OutOrStdout(), t.Format(time.RFC3339))
		return nil
	},
}

func init() {
	timestampCmd.Flags().StringVar(&timestampTZ, "tz", "", "IANA timezone name to interpret the wall-clock value in (e.g. America/Chicago)")
	rootCmd.AddCommand(timestampCmd)
}
