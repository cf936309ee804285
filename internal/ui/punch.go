package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timecard/internal/clock"
)

func (a *App) punchCmd() *cobra.Command {
	var (
		date string
		note string
	)

	cmd := &cobra.Command{
		Use:   "punch [TIME...]",
		Short: "Record clock punches",
		Long: `Record one or more clock punches on a day. Without a time the
current time is recorded. Punches alternate between clock-in and clock-out
in time order.

Accepted formats: "8:00 AM", "8:00AM", "8 AM", "8AM", "17:30", "17".

Example:
  timecard punch
  timecard punch 8:00 12:00 12:30 17:00 --date=yesterday`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			day, err := resolveDate(date)
			if err != nil {
				return err
			}

			times, err := parseTimes(args)
			if err != nil {
				return err
			}
			if len(times) == 0 {
				if !isToday(day) {
					return fmt.Errorf("a time is required when punching %s", day.Format("Mon Jan 2"))
				}
				times = []clock.TimeOfDay{clock.FromTime(nowFunc())}
			}

			ctx := context.Background()
			d, err := a.loadDay(ctx, day)
			if err != nil {
				return err
			}

			for _, t := range times {
				if err := d.AddPunch(t); err != nil {
					return err
				}
			}
			if note != "" {
				d.Note = note
			}
			d.UpdatedAt = nowFunc()

			if err := a.repo.SaveDay(ctx, d); err != nil {
				return fmt.Errorf("saving day: %w", err)
			}

			use24h := a.config.Uses24h()
			recorded := make([]string, len(times))
			for i, t := range times {
				recorded[i] = FormatClock(t, use24h)
			}

			out := cmd.OutOrStdout()
			state := "clocked out"
			if d.IsOpen() {
				state = formatOpen("clocked in")
			}
			_, _ = fmt.Fprintf(out, "Recorded %s on %s (%s)\n", strings.Join(recorded, ", "), day.Format("Mon Jan 2"), state)
			return PrintDay(out, d, PrintOpts{Series: a.config.SeriesOptions(), Use24h: use24h})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to punch (today, yesterday, monday, last-friday, YYYY-MM-DD)")
	cmd.Flags().StringVar(&note, "note", "", "Replace the day's note")

	return cmd
}
