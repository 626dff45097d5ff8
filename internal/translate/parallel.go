package translate

import (
	"runtime"
	"sync"

	"github.com/inodb/txmap/internal/query"
)

// WorkItem holds a parsed query ready for translation.
type WorkItem struct {
	Seq   int
	Query *query.Query
}

// WorkResult holds the translation output for a single query.
type WorkResult struct {
	Seq    int
	Query  *query.Query
	Result *Result
	Err    error
}

// ParallelTranslate translates work items using a pool of workers. The
// registry is read-only after load, so workers share it without locking.
// Results are sent to the returned channel in arrival order (not sequence
// order); use OrderedCollect to consume them in sequence-number order.
// If workers is 0, runtime.NumCPU() is used.
func (t *Translator) ParallelTranslate(items <-chan WorkItem, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			for item := range items {
				res, err := t.Translate(item.Query)
				results <- WorkResult{
					Seq:    item.Seq,
					Query:  item.Query,
					Result: res,
					Err:    err,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in sequence-number order.
// It buffers out-of-order results in a pending map and emits them
// as soon as the next expected sequence number is available.
// Blocks until the results channel is closed.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}

// TranslateAllParallel is the concurrent counterpart to TranslateAll:
// queries are translated by a worker pool while results are written in
// input order. Fail-fast semantics match the sequential path.
func (t *Translator) TranslateAllParallel(src QuerySource, w ResultWriter, workers int) error {
	items := make(chan WorkItem, 64)
	readErr := make(chan error, 1)

	go func() {
		defer close(items)
		seq := 0
		for {
			q, err := src.Next()
			if err != nil {
				readErr <- err
				return
			}
			if q == nil {
				readErr <- nil
				return
			}
			items <- WorkItem{Seq: seq, Query: q}
			seq++
		}
	}()

	results := t.ParallelTranslate(items, workers)

	err := OrderedCollect(results, func(r WorkResult) error {
		if r.Err != nil {
			return r.Err
		}
		return w.Write(r.Query, r.Result)
	})
	if err != nil {
		return err
	}
	if err := <-readErr; err != nil {
		return err
	}
	return w.Flush()
}
