package classify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skynet-news/internal/domain"
)

func TestFallbackClassifier_TopicBounds(t *testing.T) {
	c := NewFallbackClassifier(domain.DefaultVocabulary)
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		result := c.Classify(ctx, "content", []byte("img"), "image/png")
		assert.True(t, result.Fallback)
		require.NotEmpty(t, result.Topics)
		require.LessOrEqual(t, len(result.Topics), 3)
		for _, topic := range result.Topics {
			assert.True(t, domain.DefaultVocabulary.Contains(topic), "unknown topic %q", topic)
		}
	}
}

func TestFallbackClassifier_NoDuplicateTopics(t *testing.T) {
	c := NewFallbackClassifier(domain.DefaultVocabulary)
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		result := c.Classify(ctx, "content", []byte("img"), "image/png")
		seen := make(map[string]bool, len(result.Topics))
		for _, topic := range result.Topics {
			require.False(t, seen[topic], "topic %q repeated", topic)
			seen[topic] = true
		}
	}
}

func TestFallbackClassifier_SeededIsDeterministic(t *testing.T) {
	ctx := context.Background()

	a := NewSeededFallbackClassifier(domain.DefaultVocabulary, 42)
	b := NewSeededFallbackClassifier(domain.DefaultVocabulary, 42)

	for i := 0; i < 20; i++ {
		assert.Equal(t,
			a.Classify(ctx, "content", nil, "image/png").Topics,
			b.Classify(ctx, "content", nil, "image/png").Topics,
		)
	}
}

func TestFallbackClassifier_TinyVocabulary(t *testing.T) {
	c := NewSeededFallbackClassifier(domain.Vocabulary{"Sports"}, 1)

	result := c.Classify(context.Background(), "content", nil, "image/png")
	assert.Equal(t, []string{"Sports"}, result.Topics)
}

func TestFallbackClassifier_PickDegradedBounds(t *testing.T) {
	c := NewSeededFallbackClassifier(domain.DefaultVocabulary, 7)

	// The degraded path of the remote classifier picks at most two.
	for i := 0; i < 100; i++ {
		topics := c.pick(2)
		require.NotEmpty(t, topics)
		require.LessOrEqual(t, len(topics), 2)
	}
}
