// Package cloudrecording wraps a third-party meeting-recording API
// (Zoom-shaped: OAuth access/refresh tokens, a recording-metadata
// endpoint, and a token-bearing download URL). MeetingIngest is the only
// caller; it treats RefreshAccessToken and recording lookup as suspend
// points with provider-side timeouts.
package cloudrecording

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type ProviderError struct {
	Status int
	Body   string
	Err    error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cloud recording provider error (status %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("cloud recording provider error (status %d): %s", e.Status, e.Body)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// RecordingFile is one downloadable file within a recording's metadata.
type RecordingFile struct {
	Id          string `json:"id"`
	DownloadURL string `json:"download_url"`
	FileType    string `json:"file_type"`
}

// RefreshedToken is what a refresh-token exchange returns.
type RefreshedToken struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Provider is the third-party recording API surface MeetingIngest needs:
// token refresh, recording metadata lookup, and authenticated download.
type Provider interface {
	RefreshAccessToken(ctx context.Context, refreshToken string) (*RefreshedToken, error)
	GetRecording(ctx context.Context, accessToken, meetingId string) ([]RecordingFile, error)
	Download(ctx context.Context, accessToken string, file RecordingFile) ([]byte, error)
}

type HTTPProvider struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Client       *http.Client
}

func NewHTTPProvider(baseURL, clientID, clientSecret string) *HTTPProvider {
	return &HTTPProvider{
		BaseURL:      baseURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Client:       &http.Client{Timeout: 2 * time.Minute},
	}
}

type refreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

func (p *HTTPProvider) RefreshAccessToken(ctx context.Context, refreshToken string) (*RefreshedToken, error) {
	form := fmt.Sprintf("grant_type=refresh_token&refresh_token=%s&client_id=%s&client_secret=%s",
		refreshToken, p.ClientID, p.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/oauth/token", bytes.NewBufferString(form))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return nil, &ProviderError{Status: resp.StatusCode, Body: truncate(string(body), 800)}
	}

	var parsed refreshResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &ProviderError{Status: resp.StatusCode, Err: err}
	}

	return &RefreshedToken{
		AccessToken:  parsed.AccessToken,
		RefreshToken: parsed.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(parsed.ExpiresIn) * time.Second),
	}, nil
}

type recordingMetadataResponse struct {
	RecordingFiles []RecordingFile `json:"recording_files"`
}

func (p *HTTPProvider) GetRecording(ctx context.Context, accessToken, meetingId string) ([]RecordingFile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"/meetings/"+meetingId+"/recordings", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return nil, &ProviderError{Status: resp.StatusCode, Body: truncate(string(body), 800)}
	}

	var parsed recordingMetadataResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &ProviderError{Status: resp.StatusCode, Err: err}
	}
	return parsed.RecordingFiles, nil
}

func (p *HTTPProvider) Download(ctx context.Context, accessToken string, file RecordingFile) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.DownloadURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &ProviderError{Status: resp.StatusCode, Body: truncate(string(body), 800)}
	}
	return io.ReadAll(resp.Body)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
