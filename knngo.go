package knngo

import (
	"context"
	"fmt"

	"github.com/hupe1980/knngo/distance"
	"github.com/hupe1980/knngo/searcher"
	"golang.org/x/sync/errgroup"
)

// Classifier is an exact k-nearest-neighbors classifier over a fixed
// training set. T is the label type.
//
// A Classifier is immutable after New and safe for concurrent use.
type Classifier[T comparable] struct {
	vectors     [][]float32
	labels      []T
	k           int
	dim         int
	distFn      distance.Func
	parallelism int
	logger      *Logger
}

// New creates a Classifier from training vectors and their labels.
//
// All vectors must share one dimensionality, len(labels) must equal
// len(vectors), and k must be in [1, len(vectors)]. Violations are
// reported eagerly:
//
//   - ErrInvalidK for an out-of-range k (or an empty training set)
//   - *ErrLabelCountMismatch when labels and vectors disagree in count
//   - *ErrDimensionMismatch when a row deviates from the first row's length
//
// The training data is retained by reference; callers must not mutate it
// after construction.
func New[T comparable](vectors [][]float32, labels []T, k int, optFns ...Option) (*Classifier[T], error) {
	o := applyOptions(optFns)

	if k < 1 || k > len(vectors) {
		return nil, fmt.Errorf("%w: k=%d, %d training examples", ErrInvalidK, k, len(vectors))
	}
	if len(labels) != len(vectors) {
		return nil, &ErrLabelCountMismatch{Vectors: len(vectors), Labels: len(labels)}
	}

	dim := len(vectors[0])
	for _, v := range vectors[1:] {
		if len(v) != dim {
			return nil, &ErrDimensionMismatch{Expected: dim, Actual: len(v)}
		}
	}

	c := &Classifier[T]{
		vectors:     vectors,
		labels:      labels,
		k:           k,
		dim:         dim,
		distFn:      distance.SquaredL2,
		parallelism: o.parallelism,
		logger:      o.logger.WithK(k).WithDimension(dim),
	}

	c.logger.LogFit(context.Background(), len(vectors))

	return c, nil
}

// Predict returns the majority-vote label of the k training examples
// closest to query.
//
// Neighbor selection is deterministic: candidates are ranked by squared
// Euclidean distance, equal distances broken by training-set order. A
// vote tie resolves to the tied label whose best representative ranks
// first under the same ordering.
func (c *Classifier[T]) Predict(ctx context.Context, query []float32) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if len(query) != c.dim {
		err := &ErrDimensionMismatch{Expected: c.dim, Actual: len(query)}
		c.logger.LogPredict(ctx, err)
		return zero, err
	}

	pq := searcher.NewPriorityQueue(c.k)
	for i, v := range c.vectors {
		pq.PushItemBounded(searcher.PriorityQueueItem{
			Index:    i,
			Distance: c.distFn(query, v),
		}, c.k)
	}

	label := c.vote(pq.Sorted())
	c.logger.LogPredict(ctx, nil)

	return label, nil
}

// PredictBatch classifies queries independently and returns their labels
// in input order. The first failure aborts the whole batch (fail-fast).
//
// With WithParallelism(n), up to n queries are scanned concurrently.
func (c *Classifier[T]) PredictBatch(ctx context.Context, queries [][]float32) ([]T, error) {
	out := make([]T, len(queries))

	if c.parallelism <= 1 {
		for i, q := range queries {
			label, err := c.Predict(ctx, q)
			if err != nil {
				c.logger.LogPredictBatch(ctx, len(queries), err)
				return nil, err
			}
			out[i] = label
		}
		c.logger.LogPredictBatch(ctx, len(queries), nil)
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallelism)

	for i, q := range queries {
		g.Go(func() error {
			label, err := c.Predict(gctx, q)
			if err != nil {
				return err
			}
			out[i] = label
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		c.logger.LogPredictBatch(ctx, len(queries), err)
		return nil, err
	}

	c.logger.LogPredictBatch(ctx, len(queries), nil)

	return out, nil
}

// vote returns the most frequent label among neighbors. neighbors must be
// sorted best-first, so on a count tie the first label encountered is the
// one with the closest representative.
func (c *Classifier[T]) vote(neighbors []searcher.PriorityQueueItem) T {
	counts := make(map[T]int, len(neighbors))
	for _, n := range neighbors {
		counts[c.labels[n.Index]]++
	}

	var (
		best      T
		bestCount int
	)
	for _, n := range neighbors {
		label := c.labels[n.Index]
		if counts[label] > bestCount {
			best = label
			bestCount = counts[label]
		}
	}

	return best
}

// Dimension returns the dimensionality of the training vectors.
func (c *Classifier[T]) Dimension() int { return c.dim }

// Len returns the number of training examples.
func (c *Classifier[T]) Len() int { return len(c.vectors) }

// K returns the number of neighbors consulted per prediction.
func (c *Classifier[T]) K() int { return c.k }
