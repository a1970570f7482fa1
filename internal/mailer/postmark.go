package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// PostmarkProvider sends through the Postmark email API.
type PostmarkProvider struct {
	apiKey     string
	from       string
	httpClient *http.Client
}

type postmarkResponse struct {
	ErrorCode   int    `json:"ErrorCode"`
	Message     string `json:"Message"`
	MessageID   string `json:"MessageID"`
	SubmittedAt string `json:"SubmittedAt"`
}

// Postmark error code for a bad or missing server token.
const postmarkBadTokenCode = 10

func NewPostmarkProvider(apiKey, from string, httpClient *http.Client) *PostmarkProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &PostmarkProvider{
		apiKey:     apiKey,
		from:       from,
		httpClient: httpClient,
	}
}

type postmarkEmail struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Bcc      string `json:"Bcc,omitempty"`
	Subject  string `json:"Subject"`
	TextBody string `json:"TextBody"`
	ReplyTo  string `json:"ReplyTo,omitempty"`
}

func (p *PostmarkProvider) Send(ctx context.Context, email *Email) (string, error) {
	if email == nil {
		return "", sendErrorf(KindProvider, "email is required")
	}

	payload := postmarkEmail{
		From:     p.from,
		To:       email.To,
		Bcc:      email.BCC,
		Subject:  email.Subject,
		TextBody: email.Text,
		ReplyTo:  email.ReplyTo,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", sendErrorf(KindProvider, "failed to marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.postmarkapp.com/email", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", sendErrorf(KindProvider, "failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Postmark-Server-Token", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", sendErrorf(KindProvider, "failed to send email: %w", err)
	}
	body, readErr := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if readErr != nil {
		return "", sendErrorf(KindProvider, "failed to read postmark response: %w", readErr)
	}
	if closeErr != nil {
		return "", sendErrorf(KindProvider, "failed to close postmark response body: %w", closeErr)
	}

	var result postmarkResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", sendErrorf(kindFromStatus(resp.StatusCode), "postmark API returned status %d: %s", resp.StatusCode, string(body))
	}

	if resp.StatusCode != http.StatusOK || result.ErrorCode != 0 {
		kind := kindFromStatus(resp.StatusCode)
		if result.ErrorCode == postmarkBadTokenCode {
			kind = KindBadCredentials
		}
		return "", sendErrorf(kind, "postmark error (%d): %s", result.ErrorCode, result.Message)
	}

	return result.MessageID, nil
}

func (p *PostmarkProvider) ValidateAPIKey(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.postmarkapp.com/server", nil)
	if err != nil {
		return sendErrorf(KindProvider, "failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Postmark-Server-Token", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return sendErrorf(KindProvider, "failed to validate API key: %w", err)
	}
	body, readErr := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if readErr != nil {
		return sendErrorf(KindProvider, "failed to read postmark validation response: %w", readErr)
	}
	if closeErr != nil {
		return sendErrorf(KindProvider, "failed to close postmark validation response body: %w", closeErr)
	}

	if resp.StatusCode != http.StatusOK {
		return sendErrorf(kindFromStatus(resp.StatusCode), "invalid API key: status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
