// Package cli implements the sleepctl operator commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/blaisecz/sleep-bot/internal/config"
	"github.com/blaisecz/sleep-bot/internal/content"
	"github.com/blaisecz/sleep-bot/internal/repository"
	"github.com/blaisecz/sleep-bot/internal/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	databaseURL string
	userFlag    string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "sleepctl",
	Short: "Operate the sleep bot backend",
	Long:  "Seed sample data, re-run achievement evaluation and inspect advice and reports straight from the database.",
}

func init() {
	RootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "Postgres URL (default: $DATABASE_URL)")
}

// services is the slice of the backend the commands need.
type services struct {
	db           *gorm.DB
	users        repository.UserRepository
	achievements service.AchievementService
	advice       service.AdviceService
	reports      service.ReportService
}

func openServices() (*services, error) {
	cfg := config.Load()
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}

	db, err := config.NewDatabase(cfg)
	if err != nil {
		return nil, err
	}
	if err := config.Migrate(db); err != nil {
		return nil, err
	}

	library, err := content.LoadLibrary(cfg.TipsFile, cfg.ExercisesFile)
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	recordRepo := repository.NewSleepRecordRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	picker := content.NewPicker(content.NewMemoryStore(), nil)

	return &services{
		db:           db,
		users:        userRepo,
		achievements: service.NewAchievementService(recordRepo, achievementRepo, userRepo, service.NewUserLocks()),
		advice:       service.NewAdviceService(recordRepo, userRepo, library, picker),
		reports:      service.NewReportService(recordRepo, userRepo),
	}, nil
}

func requireUser() uuid.UUID {
	if userFlag == "" {
		exitErr("missing flag", fmt.Errorf("--user is required"))
	}
	id, err := uuid.Parse(userFlag)
	if err != nil {
		exitErr("parse --user", err)
	}
	return id
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
