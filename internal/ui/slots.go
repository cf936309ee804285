package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timecard/internal/clock"
)

func (a *App) slotsCmd() *cobra.Command {
	var (
		from string
		to   string
		step int
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List the time slots of the rounding grid",
		Long: `List every slot between two times at a fixed step, the same grid
punches are rounded to.

Example:
  timecard slots --from=8AM --to=6PM --step=30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := clock.BeginningOfDay()
			end := clock.EndOfDay()
			var err error
			if from != "" {
				if start, err = parseTime(from); err != nil {
					return err
				}
			}
			if to != "" {
				if end, err = parseTime(to); err != nil {
					return err
				}
			}
			if step == 0 {
				step = a.config.Rounding.Factor
			}

			slots, err := clock.Slots(start, end, step)
			if err != nil {
				return err
			}

			use24h := a.config.Uses24h()
			cellWidth := 10
			if use24h {
				cellWidth = 7
			}
			perRow := max(1, termWidth()/cellWidth)

			out := cmd.OutOrStdout()
			var row strings.Builder
			for i, t := range slots {
				row.WriteString(padRight(FormatClock(t, use24h), cellWidth))
				if (i+1)%perRow == 0 || i == len(slots)-1 {
					_, _ = fmt.Fprintln(out, strings.TrimRight(row.String(), " "))
					row.Reset()
				}
			}
			_, _ = fmt.Fprintln(out, formatMuted(fmt.Sprintf("%d slots", len(slots))))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First slot (default: 12:00 AM)")
	cmd.Flags().StringVar(&to, "to", "", "Last slot (default: 11:59 PM)")
	cmd.Flags().IntVar(&step, "step", 0, "Minutes between slots (default: rounding factor)")
	return cmd
}
