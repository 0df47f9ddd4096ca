package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"skynet-news/internal/domain"
)

// topicsFile is the on-disk shape of the topic vocabulary.
type topicsFile struct {
	Topics []string `yaml:"topics"`
}

// LoadVocabulary reads the topic vocabulary from a YAML file. An empty
// path selects the compiled-in default vocabulary.
func LoadVocabulary(path string) (domain.Vocabulary, error) {
	if path == "" {
		return domain.DefaultVocabulary, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read topics file: %w", err)
	}

	var f topicsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse topics file: %w", err)
	}
	if len(f.Topics) == 0 {
		return nil, fmt.Errorf("topics file %s defines no topics", path)
	}

	return domain.Vocabulary(f.Topics), nil
}
