package chart

import (
	"context"
	"sync"
)

// BatchResult pairs one birth input with its derivation outcome.
type BatchResult struct {
	Birth BirthDetails
	Chart *Chart
	Err   error
}

// DeriveBatch derives charts for many births in parallel. Each birth is
// independent; a failed derivation fills Err for that entry without
// touching the others. Results keep the input order.
func (d *Deriver) DeriveBatch(ctx context.Context, births []BirthDetails, workers int) []BatchResult {
	if workers <= 0 {
		workers = 4
	}
	if workers > len(births) {
		workers = len(births)
	}

	results := make([]BatchResult, len(births))
	work := make(chan int, len(births))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				birth := births[idx]
				c, err := d.Derive(ctx, birth)
				results[idx] = BatchResult{Birth: birth, Chart: c, Err: err}
			}
		}()
	}

	for i := range births {
		work <- i
	}
	close(work)
	wg.Wait()

	return results
}
