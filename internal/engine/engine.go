package engine

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/keyword-engine/backend/internal/executor"
	"github.com/keyword-engine/backend/internal/search"
)

// Engine exposes the matching pipeline as a non-blocking operation. Each
// invocation is submitted as one opaque task to the injected executor;
// independent calls share no mutable state.
type Engine struct {
	Matcher  *search.Matcher
	Executor executor.Executor
	Logger   *logrus.Entry

	// Stats
	mu    sync.RWMutex
	stats EngineStats
}

type EngineStats struct {
	MatchesCompleted int64
	MatchesFailed    int64
	StartTime        time.Time
}

func NewEngine(matcher *search.Matcher, exec executor.Executor, logger *logrus.Entry) *Engine {
	if logger == nil {
		logger = logrus.WithField("component", "engine")
	}
	return &Engine{
		Matcher:  matcher,
		Executor: exec,
		Logger:   logger,
		stats:    EngineStats{StartTime: time.Now()},
	}
}

// MatchDetailedAsync submits the full pipeline for document and returns a
// future that resolves to the complete search result. Submission fails fast
// when the executor rejects the task; pipeline errors (including empty input)
// propagate through the future's failure channel, never swallowed.
func (e *Engine) MatchDetailedAsync(document string, opts search.Options) (*Future, error) {
	future := newFuture()

	err := e.Executor.Submit(func() {
		result, matchErr := e.Matcher.Match(document, opts)
		if matchErr != nil {
			e.Logger.WithError(matchErr).Debug("Match failed")
			e.recordMatch(false)
			future.complete(nil, matchErr)
			return
		}
		e.recordMatch(true)
		future.complete(result, nil)
	})
	if err != nil {
		e.Logger.WithError(err).Warn("Failed to submit match task")
		return nil, err
	}

	return future, nil
}

// MatchAsync is the name-only variant: the returned future's AwaitKeywords
// yields just the ranked keyword names.
func (e *Engine) MatchAsync(document string, opts search.Options) (*Future, error) {
	return e.MatchDetailedAsync(document, opts)
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() EngineStats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stats
}

func (e *Engine) recordMatch(ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ok {
		e.stats.MatchesCompleted++
	} else {
		e.stats.MatchesFailed++
	}
}
