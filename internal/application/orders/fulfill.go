package orders

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/orders"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/shared"
)

// BulkFulfill submits one fulfillment per id concurrently and waits for all
// of them to settle. If any fail, the whole batch is reported as a single
// aggregate failure carrying every error; orders that did succeed stay
// fulfilled — there is no rollback, the operator retries the rest.
func (s *Service) BulkFulfill(ctx context.Context, ids []int64, tracking orders.TrackingInfo) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no orders selected", shared.ErrInvalidInput)
	}

	type outcome struct {
		id  int64
		err error
	}

	var wg sync.WaitGroup
	outcomes := make(chan outcome, len(ids))

	for _, id := range ids {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			outcomes <- outcome{id: id, err: s.source.MarkFulfilled(ctx, id, tracking)}
		}(id)
	}

	wg.Wait()
	close(outcomes)

	var failures []string
	for o := range outcomes {
		if o.err != nil {
			failures = append(failures, fmt.Sprintf("order %d: %v", o.id, o.err))
		}
	}
	if len(failures) == 0 {
		return nil
	}

	// Deterministic message order regardless of goroutine scheduling
	sort.Strings(failures)
	return fmt.Errorf("%w: %d of %d failed: %s",
		shared.ErrBatchFailed, len(failures), len(ids), strings.Join(failures, "; "))
}
