package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoPrompt is returned when neither Langfuse nor the local cache has the prompt.
var ErrNoPrompt = errors.New("prompt not available")

// PromptRef names a managed prompt and where the last fetched copy is cached.
type PromptRef struct {
	Name      string
	Label     string
	CachePath string
}

// LoadPrompt fetches the prompt from Langfuse and caches it locally. When the
// fetch fails or Langfuse is not configured it falls back to the cached copy.
func (c *Client) LoadPrompt(ctx context.Context, ref PromptRef) (string, error) {
	if ref.Name != "" && c.IsEnabled() {
		prompt, err := c.fetchPrompt(ctx, ref)
		if err == nil {
			if err := writeCache(ref.CachePath, prompt); err != nil {
				log.Printf("[langfuse] failed to cache prompt %q: %v", ref.Name, err)
			}
			return prompt, nil
		}
		log.Printf("[langfuse] prompt fetch failed: %v", err)
	}
	return readCache(ref.CachePath)
}

func (c *Client) fetchPrompt(ctx context.Context, ref PromptRef) (string, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(ref.Name)
	if ref.Label != "" {
		u.RawQuery = url.Values{"label": {ref.Label}}.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.cfg.PublicKey, c.cfg.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var promptResp struct {
		Type   string          `json:"type"`
		Prompt json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&promptResp); err != nil {
		return "", fmt.Errorf("decode prompt response: %w", err)
	}

	switch promptResp.Type {
	case "", "text":
		var text string
		if err := json.Unmarshal(promptResp.Prompt, &text); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return text, nil
	case "chat":
		var messages []chatMessage
		if err := json.Unmarshal(promptResp.Prompt, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		return systemText(messages), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", promptResp.Type)
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// systemText joins the system messages of a chat prompt; the insights
// client supplies its own user message.
func systemText(messages []chatMessage) string {
	var parts []string
	for _, m := range messages {
		if m.Role == "system" && m.Content != "" {
			parts = append(parts, m.Content)
		}
	}
	return strings.Join(parts, "\n\n")
}

func readCache(path string) (string, error) {
	if path == "" {
		return "", ErrNoPrompt
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoPrompt
		}
		return "", fmt.Errorf("read cached prompt: %w", err)
	}
	return string(data), nil
}

func writeCache(path, prompt string) error {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(prompt), 0o600)
}
