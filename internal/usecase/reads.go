package usecase

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

// readAll runs independent upstream reads concurrently and waits for all of
// them. Decision logic only runs after readAll returns.
func readAll(ctx context.Context, reads ...func(context.Context) error) error {
	p := pool.New().WithErrors().WithContext(ctx)
	for _, read := range reads {
		p.Go(read)
	}
	return p.Wait()
}
