package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"skynet-news/internal/domain"
	"skynet-news/internal/store"
)

// StoreSessionRepository persists the current-user and current-uploader
// pointers in the blob store. The pointers are value copies of the
// identity records, not references into the collections.
type StoreSessionRepository struct {
	store store.Store
}

// NewStoreSessionRepository creates a new StoreSessionRepository.
func NewStoreSessionRepository(s store.Store) *StoreSessionRepository {
	return &StoreSessionRepository{store: s}
}

// CurrentUser returns the current user pointer, or nil if none is set.
func (r *StoreSessionRepository) CurrentUser(ctx context.Context) (*domain.User, error) {
	raw, ok, err := r.store.Get(ctx, store.CurrentUserKey)
	if err != nil {
		return nil, fmt.Errorf("load current user: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decode current user: %w", err)
	}
	return &user, nil
}

// SetCurrentUser stores a copy of user as the current user pointer.
func (r *StoreSessionRepository) SetCurrentUser(ctx context.Context, user domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode current user: %w", err)
	}
	if err := r.store.Set(ctx, store.CurrentUserKey, raw); err != nil {
		return fmt.Errorf("save current user: %w", err)
	}
	return nil
}

// ClearCurrentUser removes the current user pointer.
func (r *StoreSessionRepository) ClearCurrentUser(ctx context.Context) error {
	return r.store.Delete(ctx, store.CurrentUserKey)
}

// CurrentUploader returns the current uploader pointer, or nil if none is set.
func (r *StoreSessionRepository) CurrentUploader(ctx context.Context) (*domain.Uploader, error) {
	raw, ok, err := r.store.Get(ctx, store.CurrentUploaderKey)
	if err != nil {
		return nil, fmt.Errorf("load current uploader: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var uploader domain.Uploader
	if err := json.Unmarshal(raw, &uploader); err != nil {
		return nil, fmt.Errorf("decode current uploader: %w", err)
	}
	return &uploader, nil
}

// SetCurrentUploader stores a copy of uploader as the current uploader pointer.
func (r *StoreSessionRepository) SetCurrentUploader(ctx context.Context, uploader domain.Uploader) error {
	raw, err := json.Marshal(uploader)
	if err != nil {
		return fmt.Errorf("encode current uploader: %w", err)
	}
	if err := r.store.Set(ctx, store.CurrentUploaderKey, raw); err != nil {
		return fmt.Errorf("save current uploader: %w", err)
	}
	return nil
}

// ClearCurrentUploader removes the current uploader pointer.
func (r *StoreSessionRepository) ClearCurrentUploader(ctx context.Context) error {
	return r.store.Delete(ctx, store.CurrentUploaderKey)
}
