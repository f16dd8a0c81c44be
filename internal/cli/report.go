package cli

import (
	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:       "report [weekly|monthly]",
		Short:     "Show a user's duration report",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.ReportWeekly), string(domain.ReportMonthly)},
		Run:       runReport,
	}
	cmd.Flags().StringVarP(&userFlag, "user", "u", "", "User ID")

	RootCmd.AddCommand(cmd)
}

func runReport(cmd *cobra.Command, args []string) {
	userID := requireUser()
	period := domain.ReportPeriod(args[0])
	if _, err := period.Nights(); err != nil {
		exitErr("report", err)
	}

	s, err := openServices()
	if err != nil {
		exitErr("open database", err)
	}

	report, err := s.reports.Build(cmd.Context(), userID, period)
	if err != nil {
		exitErr("report", err)
	}
	printJSON(report)
}
