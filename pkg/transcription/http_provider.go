package transcription

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// HTTPProvider transcribes audio via an upstream HTTP speech-to-text
// endpoint, shaped the way the provider clients elsewhere in this codebase
// call out to locally-hosted model servers: a bounded-timeout client, a
// multipart body, and a JSON response parsed defensively.
type HTTPProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

var _ Provider = &HTTPProvider{}

func NewHTTPProvider(baseURL, apiKey string) *HTTPProvider {
	return &HTTPProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout: 3 * time.Minute,
		},
	}
}

type transcribeResponse struct {
	Text string `json:"text"`
}

func (p *HTTPProvider) Transcribe(ctx context.Context, audio []byte, formatHint string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("audio", "chunk."+formatHint)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("write audio: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.BaseURL+"/v1/transcribe", &body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if p.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.APIKey)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", &ProviderError{Err: fmt.Errorf("transcription request failed: %w", err)}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{
			Status: resp.StatusCode,
			Body:   truncate(string(bodyBytes), 800),
			Err:    fmt.Errorf("transcription provider returned status %d", resp.StatusCode),
		}
	}

	var parsed transcribeResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return "", &ProviderError{Err: fmt.Errorf("unmarshal response: %w", err)}
	}
	return parsed.Text, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
