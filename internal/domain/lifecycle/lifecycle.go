// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks across deliveries.
const DefaultTimeout = 10 * time.Second
