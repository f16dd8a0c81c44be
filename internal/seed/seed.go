package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/internal/repository"
	"github.com/blaisecz/sleep-bot/pkg/clock"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const seededDays = 40

// profile describes a sleeper's habits: a base bedtime and sleep length,
// each with random jitter in minutes.
type profile struct {
	user          domain.User
	bedtime       string
	sleepMinutes  int
	jitterMinutes int
}

var profiles = []profile{
	// Regular sleeper: earns the stable routine badge
	{domain.User{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"}, "23:00", 8 * 60, 10},
	// Night owl with short nights
	{domain.User{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"}, "01:30", 6 * 60, 30},
	// Early bird
	{domain.User{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"}, "21:15", 8*60 + 30, 15},
	// Irregular schedule
	{domain.User{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"}, "23:30", 7*60 + 30, 120},
}

// UserIDs returns the IDs of the seeded users.
func UserIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(profiles))
	for i, p := range profiles {
		ids[i] = p.user.ID
	}
	return ids
}

// Run seeds the database with sample users and sleep records. Safe to call
// multiple times; records for an existing date are overwritten.
func Run(ctx context.Context, db *gorm.DB) error {
	records := repository.NewSleepRecordRepository(db)

	for i, p := range profiles {
		user := p.user
		if err := db.WithContext(ctx).Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}

		rng := rand.New(rand.NewSource(int64(i + 1)))
		if err := seedRecordsForUser(ctx, records, p, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedRecordsForUser(ctx context.Context, repo repository.SleepRecordRepository, p profile, rng *rand.Rand) error {
	base := clock.MustParse(p.bedtime)
	today := time.Now().In(p.user.Location())

	for i := seededDays; i >= 1; i-- {
		jitter := func() int { return rng.Intn(2*p.jitterMinutes+1) - p.jitterMinutes }
		sleep := base.Add(jitter())
		wake := sleep.Add(p.sleepMinutes + jitter())

		record := &domain.SleepRecord{
			UserID:    p.user.ID,
			Date:      today.AddDate(0, 0, -i).Format(domain.DateLayout),
			SleepTime: sleep.String(),
			WakeTime:  wake.String(),
		}
		if _, err := repo.Upsert(ctx, record); err != nil {
			return fmt.Errorf("failed to seed record %s for %s: %w", record.Date, p.user.ID, err)
		}
	}
	return nil
}
