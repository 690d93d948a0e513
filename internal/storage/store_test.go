package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	objects map[string][]byte
	putErr  error
}

func key(bucket, k string) string { return bucket + "/" + k }

func (f *fakeStore) List(context.Context, string, string, string, int) ([]string, error) {
	return nil, nil
}

func (f *fakeStore) Get(_ context.Context, bucket, k string) ([]byte, error) {
	data, ok := f.objects[key(bucket, k)]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", bucket, k, ErrObjectNotFound)
	}
	return data, nil
}

func (f *fakeStore) Put(_ context.Context, bucket, k string, data []byte, _ string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.objects[key(bucket, k)] = data
	return nil
}

func (f *fakeStore) Delete(_ context.Context, bucket, k string) error {
	delete(f.objects, key(bucket, k))
	return nil
}

func TestMove(t *testing.T) {
	s := &fakeStore{objects: map[string][]byte{
		"raw/abc123.pdf": []byte("%PDF"),
	}}

	require.NoError(t, Move(context.Background(), s, "raw", "abc123.pdf", "failed", "abc123.pdf", "application/pdf"))
	assert.NotContains(t, s.objects, "raw/abc123.pdf")
	assert.Equal(t, []byte("%PDF"), s.objects["failed/abc123.pdf"])
}

func TestMoveKeepsSourceOnPutFailure(t *testing.T) {
	s := &fakeStore{
		objects: map[string][]byte{"raw/abc123.pdf": []byte("%PDF")},
		putErr:  fmt.Errorf("bucket unavailable"),
	}

	require.Error(t, Move(context.Background(), s, "raw", "abc123.pdf", "failed", "abc123.pdf", "application/pdf"))
	assert.Contains(t, s.objects, "raw/abc123.pdf", "source must survive a failed copy")
}

func TestMoveMissingSource(t *testing.T) {
	s := &fakeStore{objects: map[string][]byte{}}
	err := Move(context.Background(), s, "raw", "missing.pdf", "failed", "missing.pdf", "application/pdf")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}
