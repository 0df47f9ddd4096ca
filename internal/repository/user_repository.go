package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"skynet-news/internal/domain"
	"skynet-news/internal/store"
)

// StoreUserRepository implements UserRepository on top of the blob store.
type StoreUserRepository struct {
	store store.Store
}

// NewStoreUserRepository creates a new StoreUserRepository.
func NewStoreUserRepository(s store.Store) *StoreUserRepository {
	return &StoreUserRepository{store: s}
}

// List returns all registered users. A missing collection is an empty list.
func (r *StoreUserRepository) List(ctx context.Context) ([]domain.User, error) {
	raw, ok, err := r.store.Get(ctx, store.UsersKey)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if !ok {
		return []domain.User{}, nil
	}

	var users []domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// Append adds a user to the collection. Email uniqueness is the identity
// service's concern.
func (r *StoreUserRepository) Append(ctx context.Context, user domain.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}

	users = append(users, user)
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := r.store.Set(ctx, store.UsersKey, raw); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}
