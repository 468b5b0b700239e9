package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// DefaultGeminiEndpoint is the public generateContent URL.
const DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

// Gemini calls a generateContent-compatible endpoint over HTTP. The API key
// is forwarded as a query parameter; there is no retry, streaming or
// backpressure — a failed call degrades to a fallback reply.
type Gemini struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewGemini creates a Gemini provider. An empty endpoint falls back to the
// public URL.
func NewGemini(endpoint, apiKey string, timeout time.Duration) *Gemini {
	if endpoint == "" {
		endpoint = DefaultGeminiEndpoint
	}
	return &Gemini{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

// generateRequest is the generateContent request body.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse carries only the candidate path we read.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Reply implements Provider. A missing candidate path in an otherwise valid
// response is not an error; it yields the fixed empty-reply fallback.
func (g *Gemini) Reply(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: text}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	reqURL := g.endpoint + "?key=" + url.QueryEscape(g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call gemini: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Debug("Failed to close gemini response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		slog.Warn("Gemini response missing candidate text")
		return FallbackEmpty, nil
	}
	reply := parsed.Candidates[0].Content.Parts[0].Text
	if reply == "" {
		return FallbackEmpty, nil
	}
	return reply, nil
}
