// Package nlp consumes the external pdf-to-text extraction service.
package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aferrand/decisions-collector/internal/common"
)

// ExtractionResult is the service's response for one PDF.
type ExtractionResult struct {
	MarkdownText string            `json:"markdownText"`
	Images       map[string]string `json:"images,omitempty"`
	Versions     map[string]string `json:"versions,omitempty"`
}

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

// ExtractText posts the PDF as a multipart body and returns the extraction.
// HTTP 429 maps to the rate-limit error class; every other failure is
// infrastructure-class.
func (c *Client) ExtractText(ctx context.Context, filename string, pdf []byte) (*ExtractionResult, error) {
	reqID := uuid.New().String()
	start := time.Now()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("pdf_file", filename)
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := part.Write(pdf); err != nil {
		return nil, fmt.Errorf("write multipart body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	c.logger.Info("nlp.http.request",
		"req_id", reqID,
		"filename", filename,
		"content_length", body.Len(),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("nlp.http.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, common.WrapError(common.ErrInfrastructure, err.Error())
	}
	defer func(b io.ReadCloser) {
		if cerr := b.Close(); cerr != nil {
			c.logger.Warn("nlp.http.response_body_close_error", "req_id", reqID, "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	c.logger.Info("nlp.http.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, common.WrapError(common.ErrRateLimit, "pdf-to-text throttled")
	}
	if resp.StatusCode/100 != 2 {
		return nil, common.WrapError(common.ErrInfrastructure, fmt.Sprintf("pdf-to-text status %d", resp.StatusCode))
	}

	var out ExtractionResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, common.WrapError(common.ErrInfrastructure, fmt.Sprintf("decode pdf-to-text response: %v", err))
	}
	return &out, nil
}
