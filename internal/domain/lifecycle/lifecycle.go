// Package lifecycle holds shared timeouts for application start and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of servers and clients.
const DefaultTimeout = 10 * time.Second
