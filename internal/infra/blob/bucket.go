package blob

import (
	"context"

	"accounts/config"
	"accounts/internal/errors"

	"gocloud.dev/blob"
	// Local filesystem driver for the default bucket URL.
	_ "gocloud.dev/blob/fileblob"
)

// NewBucket opens the avatar bucket named by the configured URL.
func NewBucket(ctx context.Context, cfg *config.Config) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, cfg.Avatar.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open avatar bucket %q", cfg.Avatar.BucketURL)
	}

	return bucket, nil
}
