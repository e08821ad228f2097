// Package notify carries reset token delivery implementations.
package notify

import (
	"context"
	"log/slog"
	"time"

	"accounts/internal/domain/service"
)

// logNotifier writes the delivery to the structured log instead of an
// external channel. It is the development stand-in behind the
// service.ResetNotifier seam; production deployments swap in a mail or push
// implementation without touching the reset flow.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier is the constructor for logNotifier.
func NewLogNotifier(logger *slog.Logger) service.ResetNotifier {
	return &logNotifier{logger: logger}
}

// Notify logs the issuance. The token itself is not logged; secrets do not
// belong in log sinks.
func (n *logNotifier) Notify(ctx context.Context, email, token string, expiresAt time.Time) error {
	n.logger.InfoContext(ctx, "Reset token issued",
		slog.String("email", email),
		slog.Int("tokenLength", len(token)),
		slog.Time("expiresAt", expiresAt),
	)

	return nil
}
