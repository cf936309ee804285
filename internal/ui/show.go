package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timecard/internal/timesheet"
)

func (a *App) showCmd() *cobra.Command {
	var (
		date    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a day's punches and totals",
		Long: `Display the punches recorded on a day as clock-in/clock-out pairs
with the worked time, break time and net time after any break deduction.

Use 'timecard week' for the whole week.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			day, err := resolveDate(date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			d, err := a.repo.GetDay(context.Background(), day)
			if errors.Is(err, timesheet.ErrDayNotFound) {
				_, _ = fmt.Fprintf(out, "No punches recorded for %s.\n", day.Format("Monday, January 2, 2006"))
				return nil
			}
			if err != nil {
				return fmt.Errorf("fetching day: %w", err)
			}

			_, _ = fmt.Fprintf(out, "=== %s ===\n\n", formatHeader(day.Format("Monday, January 2, 2006")))
			return PrintDay(out, d, PrintOpts{
				Series:  a.config.SeriesOptions(),
				Use24h:  a.config.Uses24h(),
				Verbose: verbose,
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (default: today)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show rounded times next to punches")
	return cmd
}
