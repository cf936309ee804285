package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) deleteCmd() *cobra.Command {
	var (
		date  string
		punch string
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a day or a single punch",
		Long: `Delete every punch recorded on a day, or only one of them with --punch.

Example:
  timecard delete --date=2025-01-15
  timecard delete --date=yesterday --punch="12:00 PM"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			day, err := resolveDate(date)
			if err != nil {
				return err
			}

			ctx := context.Background()
			out := cmd.OutOrStdout()

			if punch == "" {
				if err := a.repo.DeleteDay(ctx, day); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "Deleted %s\n", day.Format("Mon Jan 2, 2006"))
				return nil
			}

			t, err := parseTime(punch)
			if err != nil {
				return err
			}

			d, err := a.repo.GetDay(ctx, day)
			if err != nil {
				return err
			}
			if !d.RemovePunch(t) {
				return fmt.Errorf("no punch at %s on %s", FormatClock(t, a.config.Uses24h()), day.Format("Mon Jan 2"))
			}
			d.UpdatedAt = nowFunc()

			if err := a.repo.SaveDay(ctx, d); err != nil {
				return fmt.Errorf("saving day: %w", err)
			}
			_, _ = fmt.Fprintf(out, "Removed %s from %s\n", FormatClock(t, a.config.Uses24h()), day.Format("Mon Jan 2"))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to delete (required)")
	cmd.Flags().StringVar(&punch, "punch", "", "Only remove the punch at this time")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
