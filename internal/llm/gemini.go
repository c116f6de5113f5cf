package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

func (c *implClient) Model() string {
	return c.model
}

// Complete sends one completion request to Gemini and returns the response
// text. Rotates API keys on 429 / quota errors; other errors return
// immediately.
func (c *implClient) Complete(ctx context.Context, req Request) (string, error) {
	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		key, keyIndex := c.activeKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		cfg := &genai.GenerateContentConfig{
			Temperature: genai.Ptr(req.Temperature),
		}
		if req.System != "" {
			cfg.SystemInstruction = &genai.Content{
				Parts: []*genai.Part{{Text: req.System}},
			}
		}
		if req.MaxOutputTokens > 0 {
			cfg.MaxOutputTokens = req.MaxOutputTokens
		}

		result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), cfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				c.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIndex+1)
				c.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// activeKey and rotateKey are guarded: chunk summaries call Complete from
// multiple goroutines at once.
func (c *implClient) activeKey() (string, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiKeys[c.currentKey], c.currentKey
}

func (c *implClient) rotateKey() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}
