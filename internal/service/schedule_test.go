package service

import (
	"reflect"
	"testing"

	"github.com/blaisecz/sleep-bot/pkg/clock"
)

func TestScheduleFor(t *testing.T) {
	tests := []struct {
		wake string
		want []string
	}{
		{"06:00", []string{"20:45", "22:15"}},
		{"07:00", []string{"21:45", "23:15"}},
		{"08:30", []string{"23:15", "00:45"}},
		{"09:30", []string{"00:15", "01:45"}},
	}

	for _, tt := range tests {
		t.Run(tt.wake, func(t *testing.T) {
			got := ScheduleFor(clock.MustParse(tt.wake))
			if got.WakeTime != tt.wake {
				t.Errorf("WakeTime = %s, want %s", got.WakeTime, tt.wake)
			}
			if !reflect.DeepEqual(got.Bedtimes, tt.want) {
				t.Errorf("Bedtimes = %v, want %v", got.Bedtimes, tt.want)
			}
		})
	}
}

func TestDefaultSchedule(t *testing.T) {
	want := []struct {
		wake     string
		bedtimes []string
	}{
		{"06:00", []string{"20:45", "22:15"}},
		{"06:30", []string{"21:15", "22:45"}},
		{"07:00", []string{"21:45", "23:15"}},
		{"07:30", []string{"22:15", "23:45"}},
		{"08:00", []string{"22:45", "00:15"}},
		{"08:30", []string{"23:15", "00:45"}},
		{"09:00", []string{"23:45", "01:15"}},
		{"09:30", []string{"00:15", "01:45"}},
	}

	entries := DefaultSchedule()
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, w := range want {
		if entries[i].WakeTime != w.wake || !reflect.DeepEqual(entries[i].Bedtimes, w.bedtimes) {
			t.Errorf("entry %d = %+v, want %s %v", i, entries[i], w.wake, w.bedtimes)
		}
	}
}
