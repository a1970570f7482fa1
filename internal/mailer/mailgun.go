package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// MailgunProvider sends through the Mailgun messages API.
type MailgunProvider struct {
	apiKey     string
	from       string
	domain     string
	baseURL    string
	httpClient *http.Client
}

type mailgunResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func NewMailgunProvider(apiKey, domain, from string, httpClient *http.Client) *MailgunProvider {
	return NewMailgunProviderWithBaseURL(apiKey, domain, from, "https://api.mailgun.net/v3", httpClient)
}

func NewMailgunProviderWithBaseURL(apiKey, domain, from, baseURL string, httpClient *http.Client) *MailgunProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &MailgunProvider{
		apiKey:     apiKey,
		from:       from,
		domain:     domain,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (m *MailgunProvider) Send(ctx context.Context, email *Email) (string, error) {
	if email == nil {
		return "", sendErrorf(KindProvider, "email is required")
	}

	data := url.Values{}
	data.Set("from", m.from)
	data.Set("to", email.To)
	data.Set("subject", email.Subject)
	data.Set("text", email.Text)
	if email.ReplyTo != "" {
		data.Set("h:Reply-To", email.ReplyTo)
	}
	if email.BCC != "" {
		data.Set("bcc", email.BCC)
	}

	apiURL := fmt.Sprintf("%s/%s/messages", m.baseURL, m.domain)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", sendErrorf(KindProvider, "failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("api", m.apiKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", sendErrorf(KindProvider, "failed to send email: %w", err)
	}
	body, readErr := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if readErr != nil {
		return "", sendErrorf(KindProvider, "failed to read mailgun response: %w", readErr)
	}
	if closeErr != nil {
		return "", sendErrorf(KindProvider, "failed to close mailgun response body: %w", closeErr)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp mailgunResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
			return "", sendErrorf(kindFromStatus(resp.StatusCode), "mailgun error: %s", errResp.Message)
		}
		return "", sendErrorf(kindFromStatus(resp.StatusCode), "mailgun API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result mailgunResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", sendErrorf(KindProvider, "failed to parse mailgun response: %w", err)
	}
	return result.ID, nil
}

func (m *MailgunProvider) ValidateAPIKey(ctx context.Context) error {
	apiURL := fmt.Sprintf("%s/%s/domains", m.baseURL, m.domain)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return sendErrorf(KindProvider, "failed to create request: %w", err)
	}
	req.SetBasicAuth("api", m.apiKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return sendErrorf(KindProvider, "failed to validate API key: %w", err)
	}
	body, readErr := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if readErr != nil {
		return sendErrorf(KindProvider, "failed to read mailgun validation response: %w", readErr)
	}
	if closeErr != nil {
		return sendErrorf(KindProvider, "failed to close mailgun validation response body: %w", closeErr)
	}

	if resp.StatusCode != http.StatusOK {
		return sendErrorf(kindFromStatus(resp.StatusCode), "invalid API key: status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
