package validation

import (
	"testing"
	_ "time/tzdata" // Embed timezone database for minimal containers

	"github.com/blaisecz/sleep-bot/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func TestValidate_LogSleepRequest(t *testing.T) {
	tests := []struct {
		name       string
		req        domain.LogSleepRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  domain.LogSleepRequest{SleepTime: "23:15", WakeTime: "7:10"},
		},
		{
			name:       "missing times",
			req:        domain.LogSleepRequest{},
			wantFields: []string{"sleep_time", "wake_time"},
		},
		{
			name:       "hour out of range",
			req:        domain.LogSleepRequest{SleepTime: "24:00", WakeTime: "07:00"},
			wantFields: []string{"sleep_time"},
		},
		{
			name:       "bad date",
			req:        domain.LogSleepRequest{SleepTime: "23:00", WakeTime: "07:00", Date: strPtr("16.01.2024")},
			wantFields: []string{"date"},
		},
		{
			name: "valid date",
			req:  domain.LogSleepRequest{SleepTime: "23:00", WakeTime: "07:00", Date: strPtr("2024-01-16")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.req)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("expected %d errors, got %v", len(tt.wantFields), errs)
			}
			for i, f := range tt.wantFields {
				if errs[i].Field != f {
					t.Errorf("error %d field = %s, want %s", i, errs[i].Field, f)
				}
			}
		})
	}
}

func TestValidate_CreateUserRequest(t *testing.T) {
	if errs := Validate(domain.CreateUserRequest{Timezone: "Europe/Prague"}); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
	errs := Validate(domain.CreateUserRequest{Timezone: "Nowhere/Land"})
	if len(errs) != 1 || errs[0].Message != "must be a valid IANA timezone" {
		t.Errorf("expected timezone error, got %v", errs)
	}
}

func TestValidate_FeedbackRequest(t *testing.T) {
	if errs := Validate(domain.FeedbackRequest{TraceID: "abc", Score: 5}); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}

	errs := Validate(domain.FeedbackRequest{Score: 6})
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	if errs[0].Field != "trace_id" || errs[0].Message != "is required" {
		t.Errorf("unexpected first error %+v", errs[0])
	}
	if errs[1].Field != "score" || errs[1].Message != "must be at most 5" {
		t.Errorf("unexpected second error %+v", errs[1])
	}
}
