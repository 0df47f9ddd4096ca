package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"skynet-news/internal/domain"
	"skynet-news/internal/store"
)

// StoreArticleRepository implements ArticleRepository on top of the blob store.
type StoreArticleRepository struct {
	store store.Store
}

// NewStoreArticleRepository creates a new StoreArticleRepository.
func NewStoreArticleRepository(s store.Store) *StoreArticleRepository {
	return &StoreArticleRepository{store: s}
}

// List returns all articles in stored order. A missing collection is an
// empty list.
func (r *StoreArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	raw, ok, err := r.store.Get(ctx, store.ArticlesKey)
	if err != nil {
		return nil, fmt.Errorf("load articles: %w", err)
	}
	if !ok {
		return []domain.Article{}, nil
	}

	var articles []domain.Article
	if err := json.Unmarshal(raw, &articles); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}
	return articles, nil
}

// Prepend inserts the article at position 0 of the stored collection.
// Stored position is decoupled from display order, which is always
// recomputed from publish dates.
func (r *StoreArticleRepository) Prepend(ctx context.Context, article domain.Article) error {
	articles, err := r.List(ctx)
	if err != nil {
		return err
	}

	articles = append([]domain.Article{article}, articles...)
	raw, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("encode articles: %w", err)
	}
	if err := r.store.Set(ctx, store.ArticlesKey, raw); err != nil {
		return fmt.Errorf("save articles: %w", err)
	}
	return nil
}
