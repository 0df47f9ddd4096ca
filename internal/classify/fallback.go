package classify

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"skynet-news/internal/domain"
	"skynet-news/internal/metrics"
)

// FallbackClassifier picks a pseudo-random non-empty subset of the
// vocabulary. It serves both as the degraded mode of GeminiClassifier
// and as a standalone Classifier when no API key is configured.
type FallbackClassifier struct {
	vocab domain.Vocabulary

	mu  sync.Mutex
	rng *rand.Rand
}

// NewFallbackClassifier creates a FallbackClassifier seeded from the clock.
func NewFallbackClassifier(vocab domain.Vocabulary) *FallbackClassifier {
	return NewSeededFallbackClassifier(vocab, time.Now().UnixNano())
}

// NewSeededFallbackClassifier creates a FallbackClassifier with a fixed
// seed so tests can assert on its output.
func NewSeededFallbackClassifier(vocab domain.Vocabulary, seed int64) *FallbackClassifier {
	return &FallbackClassifier{
		vocab: vocab,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Classify returns between 1 and 3 shuffled vocabulary topics.
func (f *FallbackClassifier) Classify(_ context.Context, _ string, _ []byte, _ string) Result {
	metrics.ClassificationsTotal.WithLabelValues("fallback").Inc()
	return Result{
		Topics:   f.pick(3),
		Fallback: true,
		Reason:   "classifier not configured",
	}
}

// pick returns a shuffled subset of 1..maxCount vocabulary topics.
func (f *FallbackClassifier) pick(maxCount int) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	shuffled := make([]string, len(f.vocab))
	copy(shuffled, f.vocab)
	f.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	count := f.rng.Intn(maxCount) + 1
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
