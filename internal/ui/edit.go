package ui

import (
	"github.com/spf13/cobra"

	"github.com/javiermolinar/timecard/internal/tui"
)

func (a *App) editCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive punch editor",
		Long: `Open a full-screen editor for a day's punches with live totals.
Days can be browsed with the arrow keys and changes are saved explicitly.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runEditor(date)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to open (default: today)")
	return cmd
}

func (a *App) runEditor(date string) error {
	if err := a.ensureRepo(); err != nil {
		return err
	}

	day, err := resolveDate(date)
	if err != nil {
		return err
	}

	return tui.RunWithDebug(a.repo, a.config, day, a.debug)
}
