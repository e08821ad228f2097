package service

import "context"

// AvatarStore keeps avatar image bytes outside the account row. The account
// record stores only the reference this store hands back.
type AvatarStore interface {
	// Put stores the image bytes and returns a stable, content-derived
	// reference. Storing the same bytes twice yields the same reference.
	Put(ctx context.Context, data []byte) (string, error)
}
