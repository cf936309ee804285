package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) roundCmd() *cobra.Command {
	var factor int

	cmd := &cobra.Command{
		Use:   "round TIME...",
		Short: "Round times to the punch grid",
		Long: `Show how times are snapped to the rounding grid before durations are
computed. Halfway values round up.

Example:
  timecard round 7:52 7:53 --factor=15`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if factor == 0 {
				factor = a.config.Rounding.Factor
			}
			if factor < 1 {
				return fmt.Errorf("factor must be at least 1 minute, got %d", factor)
			}

			times, err := parseTimes(args)
			if err != nil {
				return err
			}

			use24h := a.config.Uses24h()
			out := cmd.OutOrStdout()
			for _, t := range times {
				_, _ = fmt.Fprintf(out, "%s  →  %s\n",
					padRight(FormatClock(t, use24h), 8),
					FormatClock(t.Round(factor), use24h))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&factor, "factor", 0, "Rounding factor in minutes (default from config)")
	return cmd
}
