package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCSStore implements Store over Google Cloud Storage.
type GCSStore struct {
	client *gcs.Client
	logger *slog.Logger
}

func NewGCSStore(ctx context.Context, logger *slog.Logger) (*GCSStore, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSStore{client: client, logger: logger}, nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}

func (s *GCSStore) List(ctx context.Context, bucket, prefix, startAfter string, max int) ([]string, error) {
	it := s.client.Bucket(bucket).Objects(ctx, &gcs.Query{
		Prefix:      prefix,
		StartOffset: startAfter,
	})

	var keys []string
	for len(keys) < max {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			s.logger.Error("storage list failed", "bucket", bucket, "prefix", prefix, "error", err)
			return nil, fmt.Errorf("list %s/%s: %w", bucket, prefix, err)
		}
		// StartOffset is inclusive; the cursor contract is exclusive.
		if attrs.Name == startAfter {
			continue
		}
		keys = append(keys, attrs.Name)
	}
	return keys, nil
}

func (s *GCSStore) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	r, err := s.client.Bucket(bucket).Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, fmt.Errorf("%s/%s: %w", bucket, key, ErrObjectNotFound)
		}
		return nil, fmt.Errorf("open %s/%s: %w", bucket, key, err)
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			s.logger.Warn("storage reader close failed", "bucket", bucket, "key", key, "error", cerr)
		}
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", bucket, key, err)
	}
	return data, nil
}

func (s *GCSStore) Put(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	w := s.client.Bucket(bucket).Object(key).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("write %s/%s: %w", bucket, key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (s *GCSStore) Delete(ctx context.Context, bucket, key string) error {
	err := s.client.Bucket(bucket).Object(key).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("%s/%s: %w", bucket, key, ErrObjectNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", bucket, key, err)
	}
	return nil
}
