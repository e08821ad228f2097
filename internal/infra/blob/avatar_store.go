// Package blob implements avatar storage on top of a gocloud.dev bucket.
package blob

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"

	"accounts/internal/domain/lifecycle"
	"accounts/internal/domain/service"
	"accounts/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
)

// avatarStore keeps image bytes in a bucket under a content-derived key, so
// the account row carries only a small reference and identical uploads share
// one object.
type avatarStore struct {
	bucket *blob.Bucket
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Bucket *blob.Bucket
	Logger *slog.Logger
}

// NewAvatarStore is the constructor for avatarStore.
func NewAvatarStore(params Params) service.AvatarStore {
	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			params.Logger.InfoContext(stopCtx, "Closing avatar bucket")

			return errors.WithStack(params.Bucket.Close())
		},
	})

	return &avatarStore{bucket: params.Bucket}
}

// Put stores the image bytes under "avatars/<sha256>" and returns that key.
// The key is derived from the content, so re-uploading the same image is a
// no-op beyond the write itself.
func (s *avatarStore) Put(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("avatar data is empty")
	}

	sum := sha256.Sum256(data)
	key := "avatars/" + hex.EncodeToString(sum[:])

	opts := &blob.WriterOptions{
		ContentType: http.DetectContentType(data),
	}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrap(err, "failed to write avatar to bucket")
	}

	return key, nil
}
