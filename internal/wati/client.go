// Package wati provides an outbound client for the WATI WhatsApp API.
package wati

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"varniya_crm_backend/platform/config"
	"varniya_crm_backend/platform/logger"
	"varniya_crm_backend/platform/phone"
)

// Client sends messages through the WATI session-message endpoint. A nil
// client is safe to call: every method becomes a no-op, so the rest of the
// system does not have to care whether WATI is configured.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *logger.Logger
}

func NewClient(cfg config.WatiConfig, log *logger.Logger) *Client {
	if !cfg.IsWatiEnabled() {
		return nil
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.GetWatiAPIURL(), "/"),
		apiKey:  cfg.GetWatiAPIKey(),
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// SendMessage posts a session message to the given phone number. WATI wants
// the number in E.164 without the leading plus.
func (c *Client) SendMessage(ctx context.Context, phoneNumber string, message string) error {
	if c == nil {
		return nil
	}

	normalized := strings.TrimPrefix(phone.NormalizeE164(phoneNumber), "+")

	endpoint := fmt.Sprintf("%s/api/v1/sendSessionMessage/%s?messageText=%s",
		c.baseURL, url.PathEscape(normalized), url.QueryEscape(message))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(nil))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("wati request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("wati service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	c.log.Info("wati message sent", "phone", normalized)
	return nil
}
