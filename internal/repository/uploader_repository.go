package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"skynet-news/internal/domain"
	"skynet-news/internal/store"
)

// StoreUploaderRepository implements UploaderRepository on top of the blob store.
type StoreUploaderRepository struct {
	store store.Store
}

// NewStoreUploaderRepository creates a new StoreUploaderRepository.
func NewStoreUploaderRepository(s store.Store) *StoreUploaderRepository {
	return &StoreUploaderRepository{store: s}
}

// List returns all registered uploaders. A missing collection is an empty list.
func (r *StoreUploaderRepository) List(ctx context.Context) ([]domain.Uploader, error) {
	raw, ok, err := r.store.Get(ctx, store.UploadersKey)
	if err != nil {
		return nil, fmt.Errorf("load uploaders: %w", err)
	}
	if !ok {
		return []domain.Uploader{}, nil
	}

	var uploaders []domain.Uploader
	if err := json.Unmarshal(raw, &uploaders); err != nil {
		return nil, fmt.Errorf("decode uploaders: %w", err)
	}
	return uploaders, nil
}

// Append adds an uploader to the collection.
func (r *StoreUploaderRepository) Append(ctx context.Context, uploader domain.Uploader) error {
	uploaders, err := r.List(ctx)
	if err != nil {
		return err
	}

	uploaders = append(uploaders, uploader)
	raw, err := json.Marshal(uploaders)
	if err != nil {
		return fmt.Errorf("encode uploaders: %w", err)
	}
	if err := r.store.Set(ctx, store.UploadersKey, raw); err != nil {
		return fmt.Errorf("save uploaders: %w", err)
	}
	return nil
}

// GetByID looks an uploader up by its opaque ID.
func (r *StoreUploaderRepository) GetByID(ctx context.Context, id string) (*domain.Uploader, error) {
	uploaders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range uploaders {
		if uploaders[i].ID == id {
			u := uploaders[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUploaderNotFound
}
