package repository

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aferrand/decisions-collector/internal/common"
)

func TestInitDatabaseInMemory(t *testing.T) {
	cfg := &common.Config{}
	res, err := InitDatabase(context.Background(), cfg, true, slog.Default())
	require.NoError(t, err)
	require.NotNil(t, res.Client)

	// Schema exists: a trivial query must succeed.
	_, err = res.Client.Decision.Query().Count(context.Background())
	require.NoError(t, err)

	res.Cleanup()
}
