package cli

import (
	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/internal/service"
	"github.com/blaisecz/sleep-bot/pkg/clock"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "schedule [HH:MM]",
		Short: "Print recommended bedtimes for a wake time",
		Args:  cobra.MaximumNArgs(1),
		Run:   runSchedule,
	}

	RootCmd.AddCommand(cmd)
}

func runSchedule(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		printJSON(domain.ScheduleResponse{Data: service.DefaultSchedule()})
		return
	}

	wake, err := clock.Parse(args[0])
	if err != nil {
		exitErr("wake time", err)
	}
	printJSON(domain.ScheduleResponse{Data: []domain.ScheduleEntry{service.ScheduleFor(wake)}})
}
