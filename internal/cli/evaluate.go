package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Grant any achievements users' records earn",
		Long:  "Re-runs the achievement rules for one user (--user) or every user, printing newly granted badges.",
		Run:   runEvaluate,
	}
	cmd.Flags().StringVarP(&userFlag, "user", "u", "", "User ID (default: all users)")

	RootCmd.AddCommand(cmd)
}

func runEvaluate(cmd *cobra.Command, args []string) {
	s, err := openServices()
	if err != nil {
		exitErr("open database", err)
	}

	var ids []uuid.UUID
	if userFlag != "" {
		ids = []uuid.UUID{requireUser()}
	} else if ids, err = s.users.ListIDs(cmd.Context()); err != nil {
		exitErr("list users", err)
	}

	granted := make(map[string][]string, len(ids))
	for _, id := range ids {
		earned, err := s.achievements.Evaluate(cmd.Context(), id)
		if err != nil {
			exitErr("evaluate "+id.String(), err)
		}
		if len(earned) > 0 {
			granted[id.String()] = earned
		}
	}
	printJSON(granted)
}
