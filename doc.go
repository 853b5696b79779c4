// Package knngo provides an exact k-nearest-neighbors classifier for Go.
//
// A Classifier holds an immutable set of labeled training vectors and
// answers queries with a majority vote over the k closest examples
// (squared Euclidean distance, exhaustive scan).
//
// # Quick Start
//
//	ctx := context.Background()
//	clf, err := knngo.New(
//	    [][]float32{{0, 0}, {0, 1}, {10, 10}},
//	    []string{"a", "a", "b"},
//	    3,
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	label, _ := clf.Predict(ctx, []float32{0, 0.5})
//	fmt.Println(label) // "a"
//
// # Batch Prediction
//
// PredictBatch classifies many queries at once. Queries are independent;
// with WithParallelism(n) they are scanned by up to n goroutines:
//
//	clf, _ := knngo.New(vectors, labels, 5, knngo.WithParallelism(4))
//	predictions, err := clf.PredictBatch(ctx, queries)
//
// # Determinism
//
// Predictions are fully deterministic. Equal distances are broken by
// training-set order, and vote ties resolve to the tied label with the
// closest representative.
//
// # Concurrency
//
// A Classifier is immutable after New, so concurrent Predict and
// PredictBatch calls on the same instance are safe.
package knngo
