// Package classify maps article content and a thumbnail image to a list
// of topics from the fixed vocabulary. Classification has a total
// contract: it always returns a result, substituting a pseudo-random
// vocabulary subset when the model is unavailable or fails.
package classify

import "context"

// Result carries the classified topics. Fallback distinguishes a real
// model response from a locally generated substitute; callers currently
// treat both identically, the flag exists for logs and metrics.
type Result struct {
	Topics   []string `json:"topics"`
	Fallback bool     `json:"-"`
	Reason   string   `json:"-"`
}

// Classifier classifies article content plus a thumbnail image.
// Implementations must never return an error: on any failure they fall
// back to a generated topic subset.
type Classifier interface {
	Classify(ctx context.Context, content string, image []byte, mimeType string) Result
}
