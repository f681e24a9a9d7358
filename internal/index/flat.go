// Package index provides an exact, in-process vector index over squared L2
// distance. The FAQ corpus is small and rebuilt wholesale on reload, so a
// flat scan is both simpler and faster than maintaining an ANN structure.
package index

import (
	"fmt"
	"sort"

	"github.com/kiranakella1981-design/ecom-assistant/internal/domain"
)

// Flat is an append-only exact-search index. It is not safe for concurrent
// mutation; owners build it fully before publishing it to readers.
type Flat struct {
	dim     int
	vectors [][]float32
}

// NewFlat creates an empty index for vectors of the given dimension.
func NewFlat(dim int) (*Flat, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("dimension must be positive, got %d", dim)
	}
	return &Flat{dim: dim}, nil
}

// Len returns the number of indexed vectors.
func (f *Flat) Len() int { return len(f.vectors) }

// Dim returns the vector dimension.
func (f *Flat) Dim() int { return f.dim }

// Add appends vectors to the index.
func (f *Flat) Add(vectors [][]float32) error {
	for i, v := range vectors {
		if len(v) != f.dim {
			return fmt.Errorf("vector %d has dimension %d, index expects %d: %w",
				i, len(v), f.dim, domain.ErrVectorDimMismatch)
		}
	}
	f.vectors = append(f.vectors, vectors...)
	return nil
}

// Hit is a single nearest-neighbor result.
type Hit struct {
	ID       int
	Distance float32
}

// Search returns up to k nearest vectors by squared L2 distance, closest
// first. Ties break on insertion order.
func (f *Flat) Search(query []float32, k int) ([]Hit, error) {
	if len(query) != f.dim {
		return nil, fmt.Errorf("query has dimension %d, index expects %d: %w",
			len(query), f.dim, domain.ErrVectorDimMismatch)
	}
	if k <= 0 || len(f.vectors) == 0 {
		return nil, nil
	}

	hits := make([]Hit, len(f.vectors))
	for i, v := range f.vectors {
		hits[i] = Hit{ID: i, Distance: sqL2(query, v)}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })

	if k < len(hits) {
		hits = hits[:k]
	}
	return hits, nil
}

func sqL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
