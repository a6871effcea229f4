// Package callsystem places recipient calls through an HTTP voice-call provider.
package callsystem

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"depot/internal/pkg/errs"
)

const collaboratorName = "call system"

type Config struct {
	BaseURL   string
	AccountID string
	Token     string
	// From is the caller id shown to the recipient.
	From    string
	Message string
	Timeout time.Duration
}

// Validate reports whether the config is complete enough to place calls.
func (c Config) Validate() error {
	var missing []error
	if strings.TrimSpace(c.BaseURL) == "" {
		missing = append(missing, errs.NewValueIsRequiredError("base url"))
	}
	if strings.TrimSpace(c.AccountID) == "" {
		missing = append(missing, errs.NewValueIsRequiredError("account id"))
	}
	if strings.TrimSpace(c.Token) == "" {
		missing = append(missing, errs.NewValueIsRequiredError("token"))
	}
	return errors.Join(missing...)
}

type callRequest struct {
	To      string `json:"to"`
	From    string `json:"from,omitempty"`
	Message string `json:"message"`
}

type callResponse struct {
	Status string `json:"status"`
}

// Client implements ports.Caller against the provider's POST /calls endpoint.
//
// A 2xx answer means the call was placed; a "failed", "busy" or "no-answer" status in the
// body means it did not reach the phone. 4xx answers are reported as not delivered;
// 5xx answers and transport failures as errs.ErrCollaboratorUnavailable.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (c *Client) Call(ctx context.Context, phone string) (bool, error) {
	if strings.TrimSpace(phone) == "" {
		return false, errs.NewValueIsRequiredError("phone")
	}

	body, err := json.Marshal(callRequest{To: phone, From: c.cfg.From, Message: c.cfg.Message})
	if err != nil {
		return false, err
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/calls"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.AccountID, c.cfg.Token)

	resp, err := c.http.Do(req)
	if err != nil {
		return false, errs.NewCollaboratorError(collaboratorName, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return false, errs.NewCollaboratorError(collaboratorName, fmt.Errorf("unexpected status %d", resp.StatusCode))
	case resp.StatusCode >= http.StatusMultipleChoices:
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, nil
	}

	var decoded callResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil && !errors.Is(err, io.EOF) {
		return false, errs.NewCollaboratorError(collaboratorName, fmt.Errorf("decode response: %w", err))
	}

	switch strings.ToLower(decoded.Status) {
	case "failed", "busy", "no-answer", "canceled":
		return false, nil
	}
	return true, nil
}

// LogCaller stands in for the call system when none is configured.
// It logs every request and reports the call as delivered.
type LogCaller struct {
	logger *slog.Logger
}

func NewLogCaller(logger *slog.Logger) *LogCaller {
	return &LogCaller{logger: logger.With("component", "log_caller")}
}

func (c *LogCaller) Call(ctx context.Context, phone string) (bool, error) {
	if strings.TrimSpace(phone) == "" {
		return false, errs.NewValueIsRequiredError("phone")
	}
	c.logger.InfoContext(ctx, "call system not configured, skipping call", "phone", phone)
	return true, nil
}
