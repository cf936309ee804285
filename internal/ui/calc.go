package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timecard/internal/series"
	"github.com/javiermolinar/timecard/internal/summary"
)

func (a *App) calcCmd() *cobra.Command {
	var (
		deduct bool
		limit  int
		brk    int
		round  int
	)

	cmd := &cobra.Command{
		Use:   "calc TIME...",
		Short: "Compute worked time for a list of punches",
		Long: `Compute worked, break and net time for punches given on the command
line, without storing anything. Flags override the configured rules.

Example:
  timecard calc 8:00 12:00 12:25 17:00 --deduct-break --round=1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.config.SeriesOptions()
			flags := cmd.Flags()
			if flags.Changed("deduct-break") {
				opts.DeductBreak = deduct
			}
			if flags.Changed("limit") {
				opts.DeductionLimit = limit
			}
			if flags.Changed("break") {
				opts.DeductedBreak = brk
			}
			if flags.Changed("round") {
				opts.RoundingFactor = round
			}

			s, err := series.From(args, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s\n\n", s)
			PrintTotals(out, summary.SeriesStats(s))

			if s.BreakDeductionRequired() && !s.BreakDeductionApplied() {
				_, _ = fmt.Fprintln(out, formatMuted(fmt.Sprintf(
					"Break is under %s after %s worked; --deduct-break would deduct it.",
					FormatDuration(opts.DeductedBreak), FormatDuration(opts.DeductionLimit))))
			}
			if s.IsOdd() {
				_, _ = fmt.Fprintln(out, formatOpen("Last punch has no clock-out."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&deduct, "deduct-break", false, "Deduct a break when the recorded one is too short")
	cmd.Flags().IntVar(&limit, "limit", 0, "Worked minutes that require a break")
	cmd.Flags().IntVar(&brk, "break", 0, "Break minutes to deduct")
	cmd.Flags().IntVar(&round, "round", 0, "Rounding factor in minutes (1 disables rounding)")

	return cmd
}
