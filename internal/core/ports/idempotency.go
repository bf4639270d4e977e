package ports

import "context"

// IdempotencyGuard remembers submission keys for a while.
type IdempotencyGuard interface {
	// Claim records key under scope and reports whether it was unseen.
	Claim(ctx context.Context, scope, key string) (bool, error)
	// Release forgets a claimed key so the submission can be retried.
	Release(ctx context.Context, scope, key string) error
}
