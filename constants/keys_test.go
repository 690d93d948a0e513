package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "abc123", DecisionID("abc123.json"))
	assert.Equal(t, "abc123", DecisionID("abc123"))
	assert.Equal(t, "abc123.pdf", PDFKeyFor("abc123.json"))
}

func TestIsIgnoredDateStatus(t *testing.T) {
	assert.True(t, IsIgnoredDateStatus(LabelStatusIgnoredDateDecisionIncoherente))
	assert.True(t, IsIgnoredDateStatus(LabelStatusIgnoredDateAvantMiseEnService))
	assert.False(t, IsIgnoredDateStatus(LabelStatusIgnoredDebatNonPublic))
	assert.False(t, IsIgnoredDateStatus(LabelStatusToBeTreated))
}

func TestIsTerminalPublishStatus(t *testing.T) {
	for _, s := range []PublishStatus{
		PublishStatusSuccess,
		PublishStatusUnpublished,
		PublishStatusFailurePreparing,
		PublishStatusFailureIndexing,
	} {
		assert.True(t, IsTerminalPublishStatus(s), "status %s", s)
	}
	for _, s := range []PublishStatus{
		PublishStatusToBePublished,
		PublishStatusPending,
		PublishStatusBlocked,
	} {
		assert.False(t, IsTerminalPublishStatus(s), "status %s", s)
	}
}
