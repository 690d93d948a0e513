package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceID(t *testing.T) {
	a := SourceID("7501", "2025/00123", "20250310")
	b := SourceID("7501", "2025/00123", "20250310")
	assert.Equal(t, a, b, "same identifier must hash identically")
	assert.Positive(t, a)

	assert.NotEqual(t, a, SourceID("7501", "2025/00124", "20250310"))
	assert.NotEqual(t, a, SourceID("7502", "2025/00123", "20250310"))
	assert.NotEqual(t, a, SourceID("7501", "2025/00123", "20250311"))

	// The separator keeps adjacent fields from colliding.
	assert.NotEqual(t, SourceID("75", "012025/00123", "20250310"), SourceID("7501", "2025/00123", "20250310"))
}

func TestParseDecisionDate(t *testing.T) {
	d, err := ParseDecisionDate("20250310")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), d)

	for _, bad := range []string{"", "2025-03-10", "20251332", "202503", "abcdefgh"} {
		_, err := ParseDecisionDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
