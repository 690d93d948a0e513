package zoning

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			SourceID int64  `json:"sourceId"`
			Source   string `json:"source"`
			Text     string `json:"text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(42), req.SourceID)
		assert.Equal(t, "juritcom", req.Source)
		assert.Equal(t, "texte de la décision", req.Text)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"is_public": true, "is_debat_public": false}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	res, err := c.Classify(context.Background(), 42, "texte de la décision")
	require.NoError(t, err)
	require.NotNil(t, res.Public)
	assert.True(t, *res.Public)
	require.NotNil(t, res.DebatPublic)
	assert.False(t, *res.DebatPublic)
}

func TestClassifyNoOpinion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	res, err := c.Classify(context.Background(), 42, "texte")
	require.NoError(t, err)
	assert.Nil(t, res.Public)
	assert.Nil(t, res.DebatPublic)
}

func TestClassifyServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	_, err := c.Classify(context.Background(), 42, "texte")
	assert.Error(t, err)
}
