package domain

// LLMSummaryOutput is the structured narrative returned by the LLM.
type LLMSummaryOutput struct {
	Summary      string   `json:"summary" example:"Your sleep has been fairly consistent this week..."`
	Observations []string `json:"observations"`
	Guidance     []string `json:"guidance"`
}

// InsightsContext is the data the LLM summarises.
type InsightsContext struct {
	Weekly       *Report  `json:"weekly"`
	Monthly      *Report  `json:"monthly"`
	Advice       *Advice  `json:"advice,omitempty"`
	Achievements []string `json:"achievements"`
}

// InsightsResponse combines the computed context with the narrative.
type InsightsResponse struct {
	Context  InsightsContext  `json:"context"`
	Insights LLMSummaryOutput `json:"insights"`
	// Trace ID of the request span, for correlating feedback
	TraceID string `json:"trace_id,omitempty"`
}

// FeedbackRequest rates a previous insights response.
type FeedbackRequest struct {
	// Trace ID from the insights response
	TraceID string `json:"trace_id" validate:"required" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	// Rating from 1 to 5
	Score int `json:"score" validate:"required,min=1,max=5" example:"4"`
	// Optional comment
	Comment string `json:"comment,omitempty" validate:"max=1000" example:"The insights were helpful!"`
}
