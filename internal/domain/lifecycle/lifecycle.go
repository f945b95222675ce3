// Package lifecycle holds shared constants for application start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of any managed
// component (database ping, HTTP server drain).
const DefaultTimeout = 10 * time.Second
