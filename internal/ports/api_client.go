package ports

import "context"

// APIClient is the single chokepoint for backend calls. Implementations
// attach the bearer credential and translate non-success responses into the
// domain.APIError taxonomy.
type APIClient interface {
	Do(ctx context.Context, method, path string, body any, out any) error
}
