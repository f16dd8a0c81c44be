package service

import (
	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/pkg/clock"
)

const (
	sleepCycleMinutes = 90
	fallAsleepMinutes = 15
)

// recommendedCycles are the numbers of full sleep cycles a bedtime is
// suggested for, earliest bedtime first.
var recommendedCycles = []int{6, 5}

// defaultWakeTimes are the wake times offered when none is asked for.
var defaultWakeTimes = []string{"06:00", "06:30", "07:00", "07:30", "08:00", "08:30", "09:00", "09:30"}

// RecommendBedtimes returns bedtimes that end a whole sleep cycle at the
// wake time, allowing 15 minutes to fall asleep.
func RecommendBedtimes(wake clock.Clock) []clock.Clock {
	bedtimes := make([]clock.Clock, len(recommendedCycles))
	for i, cycles := range recommendedCycles {
		bedtimes[i] = wake.Add(-fallAsleepMinutes - cycles*sleepCycleMinutes)
	}
	return bedtimes
}

// ScheduleFor builds the schedule entry for one wake time.
func ScheduleFor(wake clock.Clock) domain.ScheduleEntry {
	entry := domain.ScheduleEntry{WakeTime: wake.String()}
	for _, b := range RecommendBedtimes(wake) {
		entry.Bedtimes = append(entry.Bedtimes, b.String())
	}
	return entry
}

// DefaultSchedule covers wake times from 06:00 to 09:30.
func DefaultSchedule() []domain.ScheduleEntry {
	entries := make([]domain.ScheduleEntry, len(defaultWakeTimes))
	for i, w := range defaultWakeTimes {
		entries[i] = ScheduleFor(clock.MustParse(w))
	}
	return entries
}
