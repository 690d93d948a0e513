// Package zoning calls the external zoning classifier. The caller treats
// every failure as "no opinion"; nothing here is fatal to classification.
package zoning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aferrand/decisions-collector/internal/rules"
)

type Client struct {
	url    string
	http   *http.Client
	logger *slog.Logger
}

func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		url:    url,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type request struct {
	SourceID int64  `json:"sourceId"`
	Source   string `json:"source"`
	Text     string `json:"text"`
}

type response struct {
	IsPublic      *bool `json:"is_public"`
	IsDebatPublic *bool `json:"is_debat_public"`
}

// Classify posts the decision text and returns the classifier's opinion.
func (c *Client) Classify(ctx context.Context, sourceID int64, text string) (rules.ZoningResult, error) {
	reqID := uuid.New().String()
	start := time.Now()

	bs, err := json.Marshal(request{SourceID: sourceID, Source: "juritcom", Text: text})
	if err != nil {
		return rules.ZoningResult{}, fmt.Errorf("encode zoning request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(bs))
	if err != nil {
		return rules.ZoningResult{}, fmt.Errorf("build zoning request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("zoning.http.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return rules.ZoningResult{}, err
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.logger.Warn("zoning.http.response_body_close_error", "req_id", reqID, "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	c.logger.Info("zoning.http.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return rules.ZoningResult{}, fmt.Errorf("zoning non-2xx status: %d", resp.StatusCode)
	}

	var out response
	if err := json.Unmarshal(raw, &out); err != nil {
		return rules.ZoningResult{}, fmt.Errorf("decode zoning response: %w", err)
	}
	return rules.ZoningResult{Public: out.IsPublic, DebatPublic: out.IsDebatPublic}, nil
}
