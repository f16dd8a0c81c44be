package cli

import (
	"github.com/blaisecz/sleep-bot/internal/seed"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample users and 40 nights of records, then grant their achievements",
		Run:   runSeed,
	}

	RootCmd.AddCommand(cmd)
}

func runSeed(cmd *cobra.Command, args []string) {
	s, err := openServices()
	if err != nil {
		exitErr("open database", err)
	}

	if err := seed.Run(cmd.Context(), s.db); err != nil {
		exitErr("seed", err)
	}

	granted := make(map[string][]string)
	for _, id := range seed.UserIDs() {
		earned, err := s.achievements.Evaluate(cmd.Context(), id)
		if err != nil {
			exitErr("evaluate "+id.String(), err)
		}
		granted[id.String()] = earned
	}
	printJSON(granted)
}
