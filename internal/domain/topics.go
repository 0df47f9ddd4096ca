package domain

// Vocabulary is the fixed, ordered list of allowed topic labels. It is
// shared by the classification gateway, the search filter and
// publish-time topic validation.
type Vocabulary []string

// DefaultVocabulary is used when no topics file is configured.
var DefaultVocabulary = Vocabulary{
	"Technology",
	"Generative AI",
	"Politics",
	"Business",
	"Sports",
	"Entertainment",
	"Science",
	"Health",
	"Defence",
	"World",
	"Finance",
	"Environment",
}

// Contains reports whether topic is part of the vocabulary.
func (v Vocabulary) Contains(topic string) bool {
	for _, t := range v {
		if t == topic {
			return true
		}
	}
	return false
}

// Sanitize returns topics with any label outside the vocabulary removed.
// Order and duplicates of the remaining labels are preserved.
func (v Vocabulary) Sanitize(topics []string) []string {
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		if v.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}
