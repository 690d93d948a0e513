package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aferrand/decisions-collector/constants"
	"github.com/aferrand/decisions-collector/internal/entity"
)

func TestComputeStatusTransition(t *testing.T) {
	prev := func(label constants.LabelStatus, publish constants.PublishStatus) *entity.NormalizedDecision {
		return &entity.NormalizedDecision{LabelStatus: label, PublishStatus: publish}
	}

	t.Run("ignored date status blocks publication", func(t *testing.T) {
		for _, s := range []constants.LabelStatus{
			constants.LabelStatusIgnoredDateDecisionIncoherente,
			constants.LabelStatusIgnoredDateAvantMiseEnService,
		} {
			tr := ComputeStatusTransition(prev(constants.LabelStatusDone, constants.PublishStatusSuccess), s)
			assert.True(t, tr.Blocked)
			require.NotNil(t, tr.LabelStatus)
			assert.Equal(t, s, *tr.LabelStatus)
			require.NotNil(t, tr.PublishStatus)
			assert.Equal(t, constants.PublishStatusBlocked, *tr.PublishStatus)
		}
	})

	t.Run("exported reverts to done", func(t *testing.T) {
		tr := ComputeStatusTransition(prev(constants.LabelStatusExported, constants.PublishStatusPending), constants.LabelStatusToBeTreated)
		assert.False(t, tr.Blocked)
		require.NotNil(t, tr.LabelStatus)
		assert.Equal(t, constants.LabelStatusDone, *tr.LabelStatus)
		assert.Nil(t, tr.PublishStatus)
	})

	t.Run("terminal publish restarts the cycle", func(t *testing.T) {
		for _, p := range []constants.PublishStatus{
			constants.PublishStatusSuccess,
			constants.PublishStatusUnpublished,
			constants.PublishStatusFailurePreparing,
			constants.PublishStatusFailureIndexing,
		} {
			tr := ComputeStatusTransition(prev(constants.LabelStatusDone, p), constants.LabelStatusToBeTreated)
			require.NotNil(t, tr.PublishStatus, "publish status %s", p)
			assert.Equal(t, constants.PublishStatusToBePublished, *tr.PublishStatus)
			assert.Nil(t, tr.LabelStatus)
		}
	})

	t.Run("in-flight statuses carry over untouched", func(t *testing.T) {
		tr := ComputeStatusTransition(prev(constants.LabelStatusLoaded, constants.PublishStatusPending), constants.LabelStatusToBeTreated)
		assert.False(t, tr.Blocked)
		assert.Nil(t, tr.LabelStatus)
		assert.Nil(t, tr.PublishStatus)
	})
}
