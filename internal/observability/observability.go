package observability

import "context"

// ShutdownFunc flushes and stops one telemetry component.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }
