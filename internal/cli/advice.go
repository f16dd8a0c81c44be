package cli

import (
	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "advice",
		Short: "Show a user's personal advice",
		Run:   runAdvice,
	}
	cmd.Flags().StringVarP(&userFlag, "user", "u", "", "User ID")

	RootCmd.AddCommand(cmd)
}

func runAdvice(cmd *cobra.Command, args []string) {
	userID := requireUser()
	s, err := openServices()
	if err != nil {
		exitErr("open database", err)
	}

	advice, err := s.advice.PersonalAdvice(cmd.Context(), userID)
	if err != nil {
		exitErr("advice", err)
	}
	printJSON(domain.AdviceResponse{Available: advice != nil, Advice: advice})
}
