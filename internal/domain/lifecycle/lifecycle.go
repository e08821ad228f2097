// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown work (DB ping, HTTP drain).
const DefaultTimeout = 10 * time.Second
