package pipeline

import (
	"github.com/aferrand/decisions-collector/constants"
	"github.com/aferrand/decisions-collector/internal/entity"
)

// StatusTransition is the label/publish pair a minor patch must write. Nil
// pointers leave the stored value untouched.
type StatusTransition struct {
	LabelStatus   *constants.LabelStatus
	PublishStatus *constants.PublishStatus
	// Blocked reports that an ignored-date status forced publication blocking.
	Blocked bool
}

// ComputeStatusTransition resolves the statuses for the patch path. Newly
// computed ignore-date statuses block publication outright; otherwise the
// previous record's workflow state is inherited or advanced.
func ComputeStatusTransition(previous *entity.NormalizedDecision, newStatus constants.LabelStatus) StatusTransition {
	if constants.IsIgnoredDateStatus(newStatus) {
		blocked := constants.PublishStatusBlocked
		return StatusTransition{
			LabelStatus:   &newStatus,
			PublishStatus: &blocked,
			Blocked:       true,
		}
	}

	var t StatusTransition
	if previous.LabelStatus == constants.LabelStatusExported {
		done := constants.LabelStatusDone
		t.LabelStatus = &done
	}
	if constants.IsTerminalPublishStatus(previous.PublishStatus) {
		toBePublished := constants.PublishStatusToBePublished
		t.PublishStatus = &toBePublished
	}
	return t
}
