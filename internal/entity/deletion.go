package entity

import "time"

// DeletionMarker is a pending deletion request, stored as a sentinel object
// in the deletion-pending bucket. Processing is idempotent by key.
type DeletionMarker struct {
	S3Key        string    `json:"s3Key"`
	SourceID     int64     `json:"sourceId"`
	DeletionDate time.Time `json:"deletionDate"`
}

// ProcessedMarker is the archived form of a consumed deletion marker.
type ProcessedMarker struct {
	DeletionMarker
	ProcessedAt time.Time `json:"processedAt"`
	Outcome     string    `json:"outcome"`
}
