package service

import (
	"fmt"

	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/pkg/clock"
)

const (
	// streakNights is how many of the most recent nights the streak badges look at.
	streakNights = 5

	perfectSleepMinHours = 7.0
	perfectSleepMaxHours = 9.0

	// stableToleranceMinutes is the widest spread of bedtimes (and of wake
	// times) that still counts as a stable routine.
	stableToleranceMinutes = 30
)

// night is a record with its times parsed.
type night struct {
	date  string
	sleep clock.Clock
	wake  clock.Clock
}

func (n night) durationHours() float64 {
	return clock.Duration(n.sleep, n.wake)
}

func toNights(records []domain.SleepRecord) ([]night, error) {
	nights := make([]night, len(records))
	for i := range records {
		sleep, wake, err := records[i].Clocks()
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", records[i].Date, err)
		}
		nights[i] = night{date: records[i].Date, sleep: sleep, wake: wake}
	}
	return nights, nil
}

type achievementRule struct {
	name   string
	earned func(nights []night) bool
}

// achievementRules are evaluated in order; the order is the order new badges are reported in.
var achievementRules = []achievementRule{
	{domain.BadgeSleepyNovice, atLeastNights(3)},
	{domain.BadgeSleepyExpert, atLeastNights(7)},
	{domain.BadgeSleepMaster, atLeastNights(30)},
	{domain.BadgeDreamLord, atLeastNights(100)},
	{domain.BadgeEarlyBird, earlyBird},
	{domain.BadgeNightOwl, nightOwl},
	{domain.BadgePerfectSleep, perfectSleep},
	{domain.BadgeStableRoutine, stableRoutine},
}

// EvaluateAchievements returns the badges the records earn that are not in
// granted yet. records must be ascending by date. It does no I/O; the caller
// persists the result.
func EvaluateAchievements(records []domain.SleepRecord, granted domain.AchievementSet) ([]string, error) {
	nights, err := toNights(records)
	if err != nil {
		return nil, err
	}

	earned := []string{}
	for _, rule := range achievementRules {
		if granted.Has(rule.name) {
			continue
		}
		if rule.earned(nights) {
			earned = append(earned, rule.name)
		}
	}
	return earned, nil
}

func atLeastNights(n int) func([]night) bool {
	return func(nights []night) bool {
		return len(nights) >= n
	}
}

// lastNights returns up to n of the most recent nights.
func lastNights(nights []night, n int) []night {
	if len(nights) <= n {
		return nights
	}
	return nights[len(nights)-n:]
}

func allNights(nights []night, pred func(night) bool) bool {
	for _, n := range nights {
		if !pred(n) {
			return false
		}
	}
	return true
}

// earlyBird looks at whatever tail is available, so it also holds for fewer
// than five nights and, vacuously, for none.
func earlyBird(nights []night) bool {
	return allNights(lastNights(nights, streakNights), func(n night) bool {
		return n.sleep.IsEarlyBedtime()
	})
}

func nightOwl(nights []night) bool {
	return len(nights) >= streakNights && allNights(lastNights(nights, streakNights), func(n night) bool {
		return n.sleep.IsLateBedtime()
	})
}

func perfectSleep(nights []night) bool {
	if len(nights) == 0 {
		return false
	}
	hours := nights[len(nights)-1].durationHours()
	return hours >= perfectSleepMinHours && hours <= perfectSleepMaxHours
}

// stableRoutine compares bedtimes on the comparable scale so that 23:50 and
// 00:10 are close; wake times use plain minutes.
func stableRoutine(nights []night) bool {
	if len(nights) < streakNights {
		return false
	}
	tail := lastNights(nights, streakNights)

	bedtimes := make([]int, len(tail))
	wakes := make([]int, len(tail))
	for i, n := range tail {
		bedtimes[i] = n.sleep.ComparableMinutes()
		wakes[i] = n.wake.Minutes()
	}
	return spread(bedtimes) <= stableToleranceMinutes && spread(wakes) <= stableToleranceMinutes
}

// spread returns max-min of a non-empty slice.
func spread(values []int) int {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return hi - lo
}
