// Package langfuse talks to the Langfuse public API: feedback scores on
// insights traces and managed prompts. Without credentials it is a no-op.
package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const requestTimeout = 5 * time.Second

// Scorer attaches user feedback to a previously exported trace.
type Scorer interface {
	IsEnabled() bool
	Score(ctx context.Context, in ScoreInput) error
}

// ScoreInput is a single numeric score on a trace.
type ScoreInput struct {
	TraceID string
	Name    string // e.g. "insights_rating"
	Value   float64
	Comment string
}

// Config holds Langfuse credentials.
type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string
}

func (c Config) enabled() bool {
	return c.BaseURL != "" && c.PublicKey != "" && c.SecretKey != ""
}

// Client sends ingestion events to Langfuse.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient returns a client that silently drops scores when cfg is incomplete.
func NewClient(cfg Config) *Client {
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.enabled() {
		log.Printf("[langfuse] feedback scores enabled: base_url=%s env=%s", cfg.BaseURL, cfg.Environment)
	} else {
		log.Println("[langfuse] feedback scores disabled: credentials not configured")
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 2 * requestTimeout},
	}
}

func (c *Client) IsEnabled() bool {
	return c.cfg.enabled()
}

// Score sends a score-create event and waits for the ingestion response.
func (c *Client) Score(ctx context.Context, in ScoreInput) error {
	if !c.IsEnabled() {
		return nil
	}

	event := ingestionEvent{
		ID:        uuid.New().String(),
		Type:      "score-create",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Body: scoreBody{
			ID:          uuid.New().String(),
			TraceID:     in.TraceID,
			Name:        in.Name,
			Value:       in.Value,
			Comment:     in.Comment,
			Environment: c.cfg.Environment,
		},
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	return c.send(ctx, batchPayload{Batch: []ingestionEvent{event}})
}

func (c *Client) send(ctx context.Context, payload batchPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/public/ingestion", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.PublicKey, c.cfg.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("ingestion failed with status %d", resp.StatusCode)
	}
	return nil
}

type batchPayload struct {
	Batch []ingestionEvent `json:"batch"`
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}

type scoreBody struct {
	ID          string  `json:"id"`
	TraceID     string  `json:"traceId"`
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Comment     string  `json:"comment,omitempty"`
	Environment string  `json:"environment,omitempty"`
}
