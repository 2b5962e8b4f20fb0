package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/lineup-advisor/internal/platform/logging"
)

// BatchResult reports how a persistence pass went.
type BatchResult struct {
	Rows          int `json:"rows"`
	Batches       int `json:"batches"`
	FailedBatches int `json:"failed_batches"`
}

// writeInBatches writes rows in chunks of size on an ants pool. Rows of one
// pass never share a key, so batches run in parallel. A failed batch is logged
// and counted; the other batches still run.
func writeInBatches[T any](
	ctx context.Context,
	logger *logging.Logger,
	rows []T,
	size int,
	workers int,
	write func(context.Context, []T) error,
	fields ...any,
) (BatchResult, error) {
	result := BatchResult{Rows: len(rows)}
	if len(rows) == 0 {
		return result, nil
	}

	chunks := chunk(rows, size)
	result.Batches = len(chunks)

	pool, err := ants.NewPool(max(1, min(workers, len(chunks))))
	if err != nil {
		return result, fmt.Errorf("create upsert worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	var failed atomic.Int32
	for i, batch := range chunks {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := write(ctx, batch); err != nil {
				failed.Add(1)
				logger.WarnContext(ctx, "upsert batch failed", batchFields(fields, i, len(batch), err)...)
			}
		})
		if submitErr != nil {
			wg.Done()
			failed.Add(1)
			logger.WarnContext(ctx, "submit upsert batch failed", batchFields(fields, i, len(batch), submitErr)...)
		}
	}
	wg.Wait()

	result.FailedBatches = int(failed.Load())
	return result, nil
}

func batchFields(base []any, batch, rows int, err error) []any {
	out := make([]any, 0, len(base)+6)
	out = append(out, base...)
	return append(out, "batch", batch, "rows", rows, "error", err)
}

func chunk[T any](rows []T, size int) [][]T {
	if size <= 0 {
		size = defaultUpsertBatchSize
	}
	out := make([][]T, 0, (len(rows)+size-1)/size)
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		out = append(out, rows[start:end])
	}
	return out
}
