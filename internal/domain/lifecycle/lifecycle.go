// Package lifecycle holds shared shutdown constants for the delivery and
// infrastructure layers.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and watchers.
const DefaultTimeout = 10 * time.Second
