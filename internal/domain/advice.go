package domain

// AdviceKind identifies which rule produced a piece of personal advice.
type AdviceKind string

const (
	AdviceTooShort     AdviceKind = "too_short"
	AdviceTooLong      AdviceKind = "too_long"
	AdviceUnstableWake AdviceKind = "unstable_wake"
	AdviceLateBedtime  AdviceKind = "late_bedtime"
	AdviceStable       AdviceKind = "stable"
)

// Advice is a single recommendation derived from the last week of records.
type Advice struct {
	Kind    AdviceKind `json:"kind" example:"too_short"`
	Message string     `json:"message"`
	// Average sleep duration over the analysed window, in hours
	AverageHours float64 `json:"average_hours" example:"6.4"`
}

// AdviceResponse wraps optional advice; Available is false when there is
// not yet enough data.
type AdviceResponse struct {
	Available bool    `json:"available"`
	Advice    *Advice `json:"advice,omitempty"`
}

// TipSource says where a tip came from.
type TipSource string

const (
	TipSourcePersonal TipSource = "personal"
	TipSourceGeneral  TipSource = "general"
)

// TipResponse is a tip or exercise served to a user.
type TipResponse struct {
	Source TipSource `json:"source" example:"general"`
	Text   string    `json:"text"`
}
