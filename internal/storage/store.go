// Package storage is the narrow object-storage surface the batch jobs
// consume. The implementation is interchangeable; the jobs only rely on
// list/get/put/delete plus a move built from put-then-delete.
package storage

import (
	"context"
	"errors"
)

// ErrObjectNotFound is returned by Get/Delete for missing keys.
var ErrObjectNotFound = errors.New("object not found")

// Store is the object-storage gateway.
type Store interface {
	// List returns up to max keys under prefix, strictly after startAfter
	// (lexicographic). An empty result means the listing is exhausted.
	List(ctx context.Context, bucket, prefix, startAfter string, max int) ([]string, error)
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	Put(ctx context.Context, bucket, key string, data []byte, contentType string) error
	Delete(ctx context.Context, bucket, key string) error
}

// Move copies an object to another bucket/key then deletes the source. The
// write is completed before the delete so a crash never loses the object.
func Move(ctx context.Context, s Store, fromBucket, fromKey, toBucket, toKey, contentType string) error {
	data, err := s.Get(ctx, fromBucket, fromKey)
	if err != nil {
		return err
	}
	if err := s.Put(ctx, toBucket, toKey, data, contentType); err != nil {
		return err
	}
	return s.Delete(ctx, fromBucket, fromKey)
}
