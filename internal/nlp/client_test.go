package nlp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aferrand/decisions-collector/internal/common"
)

func TestExtractTextSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("pdf_file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "abc123.pdf", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ExtractionResult{
			MarkdownText: "# Jugement\n\ntexte",
			Versions:     map[string]string{"pdf2text": "1.4.0"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	res, err := c.ExtractText(context.Background(), "abc123.pdf", []byte("%PDF-1.7 fake"))
	require.NoError(t, err)
	assert.Equal(t, "# Jugement\n\ntexte", res.MarkdownText)
	assert.Equal(t, "1.4.0", res.Versions["pdf2text"])
}

func TestExtractTextThrottled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	_, err := c.ExtractText(context.Background(), "abc123.pdf", []byte("%PDF"))
	require.Error(t, err)
	assert.True(t, common.IsRateLimit(err), "429 must map to the rate-limit class")
}

func TestExtractTextServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	_, err := c.ExtractText(context.Background(), "abc123.pdf", []byte("%PDF"))
	require.Error(t, err)
	assert.False(t, common.IsRateLimit(err))
}

func TestExtractTextUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", time.Second, nil)
	_, err := c.ExtractText(context.Background(), "abc123.pdf", []byte("%PDF"))
	assert.Error(t, err)
}
