package service

import (
	"fmt"
	"math"

	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/pkg/clock"
)

const (
	// adviceNights is the window personal advice is computed over.
	adviceNights = 7

	minHealthyHours = 7.0
	maxHealthyHours = 9.0

	// maxWakeDriftHours is the mean day-to-day wake time change still treated as stable.
	maxWakeDriftHours = 1.5

	// lateBedtimeFromHour and lateBedtimeToHour bound bedtimes counted as past 1 AM.
	lateBedtimeFromHour = 1
	lateBedtimeToHour   = 12
	lateBedtimeNights   = 3
)

const (
	tooShortMessage = "Over the last week you slept %.1f hours on average. " +
		"That is less than the recommended 7-9 hours. Try going to bed earlier to sleep longer."
	tooLongMessage = "Over the last week you slept %.1f hours on average. " +
		"Sleeping too long can be a sign of poor-quality rest. " +
		"Try airing the room before bed and avoid heavy meals late in the evening."
	unstableWakeMessage = "Your wake-up time has been fairly unstable over the last week. " +
		"Try to get up at about the same time every day, weekends included, to set your internal clock."
	lateBedtimeMessage = "Several times over the last week you went to bed after 1 AM. " +
		"Late bedtimes can disrupt your circadian rhythm. Try moving your bedtime earlier."
	stableMessage = "Your sleep over the last week looks stable and sufficient. Great work, keep it up!"
)

// AnalyzeAdvice derives one piece of advice from the last seven records.
// It returns nil when there are fewer than seven records. records must be
// ascending by date.
func AnalyzeAdvice(records []domain.SleepRecord) (*domain.Advice, error) {
	if len(records) < adviceNights {
		return nil, nil
	}

	nights, err := toNights(records[len(records)-adviceNights:])
	if err != nil {
		return nil, err
	}

	total := 0.0
	for _, n := range nights {
		total += n.durationHours()
	}
	avg := total / float64(len(nights))

	advice := &domain.Advice{AverageHours: math.Round(avg*100) / 100}
	switch {
	case avg < minHealthyHours:
		advice.Kind = domain.AdviceTooShort
		advice.Message = fmt.Sprintf(tooShortMessage, avg)
	case avg > maxHealthyHours:
		advice.Kind = domain.AdviceTooLong
		advice.Message = fmt.Sprintf(tooLongMessage, avg)
	case meanWakeDriftHours(nights) > maxWakeDriftHours:
		advice.Kind = domain.AdviceUnstableWake
		advice.Message = unstableWakeMessage
	case lateBedtimeCount(nights) >= lateBedtimeNights:
		advice.Kind = domain.AdviceLateBedtime
		advice.Message = lateBedtimeMessage
	default:
		advice.Kind = domain.AdviceStable
		advice.Message = stableMessage
	}
	return advice, nil
}

// meanWakeDriftHours averages the absolute clock difference between
// consecutive wake times. Both times are read as the same day, so 23:30 and
// 00:30 differ by 23 hours.
func meanWakeDriftHours(nights []night) float64 {
	if len(nights) < 2 {
		return 0
	}
	sum := 0.0
	for i := 1; i < len(nights); i++ {
		diff := math.Abs(float64(nights[i].wake.Minutes()-nights[i-1].wake.Minutes())) / 60
		sum += math.Mod(diff, 24)
	}
	return sum / float64(len(nights)-1)
}

// lateBedtimeCount lays the bedtimes on a running timeline, moving a bedtime
// to the next day when it is more than 12 hours before the previous one, and
// counts those whose hour of day is in [1, 12).
func lateBedtimeCount(nights []night) int {
	count := 0
	prev := 0
	for i, n := range nights {
		m := n.sleep.Minutes()
		if i > 0 && m < prev-clock.MinutesPerDay/2 {
			m += clock.MinutesPerDay
		}
		prev = m

		hour := (m / 60) % 24
		if hour >= lateBedtimeFromHour && hour < lateBedtimeToHour {
			count++
		}
	}
	return count
}
