package engine

import (
	"context"
	"sync"

	"github.com/keyword-engine/backend/internal/search"
)

// Future is the handle for one submitted match. It completes exactly once,
// with either a result or an error.
type Future struct {
	done chan struct{}

	mu        sync.Mutex
	result    *search.SearchResult
	err       error
	callbacks []func(*search.SearchResult, error)
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Await blocks until the match completes or the context is cancelled, and
// returns the full search result.
func (f *Future) Await(ctx context.Context) (*search.SearchResult, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// AwaitKeywords blocks like Await but returns only the ranked keyword names.
func (f *Future) AwaitKeywords(ctx context.Context) ([]string, error) {
	result, err := f.Await(ctx)
	if err != nil {
		return nil, err
	}
	keywords := make([]string, len(result.Ranked))
	for i, rk := range result.Ranked {
		keywords[i] = rk.Keyword
	}
	return keywords, nil
}

// Done returns a channel closed when the match completes.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// OnComplete registers a callback invoked with the outcome. Callbacks added
// after completion fire immediately on the calling goroutine.
func (f *Future) OnComplete(callback func(*search.SearchResult, error)) {
	f.mu.Lock()
	select {
	case <-f.done:
		f.mu.Unlock()
		callback(f.result, f.err)
		return
	default:
	}
	f.callbacks = append(f.callbacks, callback)
	f.mu.Unlock()
}

func (f *Future) complete(result *search.SearchResult, err error) {
	f.mu.Lock()
	f.result = result
	f.err = err
	callbacks := f.callbacks
	f.callbacks = nil
	close(f.done)
	f.mu.Unlock()

	for _, callback := range callbacks {
		callback(result, err)
	}
}
