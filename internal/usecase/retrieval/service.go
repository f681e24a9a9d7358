// Package retrieval maintains the in-memory FAQ vector index and answers
// nearest-neighbour queries against it.
package retrieval

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/kiranakella1981-design/ecom-assistant/internal/domain"
	"github.com/kiranakella1981-design/ecom-assistant/internal/index"
	"github.com/kiranakella1981-design/ecom-assistant/internal/metrics"
)

// Match is a corpus entry returned from a search, with its L2 distance to
// the query vector.
type Match struct {
	Text     string
	Distance float32
}

// snapshot pairs a corpus with the index built over it. Snapshots are
// immutable once published.
type snapshot struct {
	entries []string
	idx     *index.Flat
}

// Service embeds queries and searches the FAQ corpus. The corpus and its
// index are swapped atomically on reload, so in-flight searches always see
// a consistent pair.
type Service struct {
	source   CorpusSource
	embedder Embedder
	logger   *zap.Logger

	current  atomic.Pointer[snapshot]
	reloadMu sync.Mutex
}

// New creates a Service. The index is empty until Reload is called.
func New(source CorpusSource, embedder Embedder, logger *zap.Logger) *Service {
	return &Service{
		source:   source,
		embedder: embedder,
		logger:   logger,
	}
}

// Reload re-reads the corpus, embeds every entry, builds a fresh index and
// publishes it. On any failure the previous snapshot stays active. Returns
// the number of entries indexed.
func (s *Service) Reload(ctx context.Context) (int, error) {
	// One rebuild at a time; searches are never blocked.
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	entries, err := s.source.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load corpus: %w", err)
	}

	if len(entries) == 0 {
		s.current.Store(&snapshot{entries: nil, idx: nil})
		metrics.CorpusEntriesIndexed.Set(0)
		s.logger.Warn("corpus reloaded empty, retrieval disabled")
		return 0, nil
	}

	var idx *index.Flat
	for i, entry := range entries {
		result, err := s.embedder.Embed(ctx, entry)
		if err != nil {
			return 0, fmt.Errorf("embed corpus entry %d: %w", i, err)
		}
		if idx == nil {
			idx, err = index.NewFlat(len(result.Embedding))
			if err != nil {
				return 0, fmt.Errorf("create index: %w", err)
			}
		}
		if err := idx.Add([][]float32{result.Embedding}); err != nil {
			return 0, fmt.Errorf("index corpus entry %d: %w", i, err)
		}
	}

	s.current.Store(&snapshot{entries: entries, idx: idx})
	metrics.CorpusEntriesIndexed.Set(float64(len(entries)))
	s.logger.Info("corpus reloaded", zap.Int("entries", len(entries)))

	return len(entries), nil
}

// Loaded reports whether a non-empty corpus snapshot is published.
func (s *Service) Loaded() bool {
	snap := s.current.Load()
	return snap != nil && snap.idx != nil
}

// Search embeds the query and returns up to k corpus entries within the
// given distance threshold, nearest first. A corpus that was never loaded
// yields domain.ErrCorpusNotLoaded; a loaded-but-empty corpus yields an
// empty result set without touching the embedding provider.
func (s *Service) Search(ctx context.Context, query string, k int, threshold float64) ([]Match, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, domain.ErrCorpusNotLoaded
	}
	if snap.idx == nil {
		metrics.RetrievalResultsTotal.WithLabelValues("empty").Inc()
		return nil, nil
	}

	result, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	hits, err := snap.idx.Search(result.Embedding, k)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}

	matches := make([]Match, 0, len(hits))
	for _, hit := range hits {
		if float64(hit.Distance) > threshold {
			continue
		}
		matches = append(matches, Match{
			Text:     snap.entries[hit.ID],
			Distance: hit.Distance,
		})
	}

	if len(matches) == 0 {
		metrics.RetrievalResultsTotal.WithLabelValues("empty").Inc()
	} else {
		metrics.RetrievalResultsTotal.WithLabelValues("grounded").Inc()
	}

	return matches, nil
}
