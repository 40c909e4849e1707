package store

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/tpeck/chesscore/internal/board"
	"github.com/tpeck/chesscore/internal/engine"
)

// AnalysisResult is the outcome of a cached, deduplicated Analyze call.
type AnalysisResult struct {
	Move  board.Move
	Score int16
}

// CachingAnalyzer wraps an Analyzer with a persistent Store and collapses
// concurrent requests for the same position and depth into a single
// search: if two callers ask this process to analyze the same Board at the
// same time, only one iterative-deepening run actually happens, and both
// receive its result. Searches for different positions or depths run one
// at a time, since they share the Analyzer's transposition table.
type CachingAnalyzer struct {
	analyzer *engine.Analyzer
	store    *Store
	group    singleflight.Group
	searchMu sync.Mutex
}

// NewCachingAnalyzer builds a CachingAnalyzer from an existing Analyzer and
// an open Store.
func NewCachingAnalyzer(analyzer *engine.Analyzer, store *Store) *CachingAnalyzer {
	return &CachingAnalyzer{analyzer: analyzer, store: store}
}

// Analyze returns the cached result for root if the store already has one
// from a search at least as deep as depthPly; otherwise it runs (or joins
// an in-flight run of) the search and caches the result before returning.
func (c *CachingAnalyzer) Analyze(root board.Board, depthPly int8) (AnalysisResult, error) {
	cached, found, err := c.store.Get(root.Hash)
	if err != nil {
		return AnalysisResult{}, err
	}
	if found && cached.Depth >= depthPly {
		if move, parseErr := board.ParseMove(cached.Move, &root); parseErr == nil {
			return AnalysisResult{Move: move, Score: cached.Score}, nil
		}
	}

	key := fmt.Sprintf("%016x:%d", root.Hash, depthPly)
	v, err, _ := c.group.Do(key, func() (any, error) {
		c.searchMu.Lock()
		move, score := c.analyzer.Analyze(root, depthPly)
		c.searchMu.Unlock()
		result := AnalysisResult{Move: move, Score: score}

		putErr := c.store.Put(root.Hash, CachedResult{
			Depth: depthPly,
			Score: score,
			Move:  move.String(),
		})

		return result, putErr
	})
	if err != nil {
		return AnalysisResult{}, err
	}

	return v.(AnalysisResult), nil
}
