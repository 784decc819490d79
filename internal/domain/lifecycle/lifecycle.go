// Package lifecycle holds settings shared by components that start and stop with the application.
package lifecycle

import "time"

// DefaultTimeout bounds start-up pings and graceful shutdown of long-lived resources.
const DefaultTimeout = 10 * time.Second
