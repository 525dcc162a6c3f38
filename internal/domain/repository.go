package domain

import (
	"context"
	"time"
)

// VisitRepository persists last-visit bookkeeping.
type VisitRepository interface {
	// Touch stores now as the visitor's last visit and returns the previous
	// visit, if any.
	Touch(ctx context.Context, visitorID string, now time.Time) (*Visit, error)
	Get(ctx context.Context, visitorID string) (*Visit, error)
}
