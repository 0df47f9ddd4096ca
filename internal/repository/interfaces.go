package repository

import (
	"context"

	"skynet-news/internal/domain"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	Append(ctx context.Context, user domain.User) error
}

// UploaderRepository defines methods for uploader data access.
type UploaderRepository interface {
	List(ctx context.Context) ([]domain.Uploader, error)
	Append(ctx context.Context, uploader domain.Uploader) error
	GetByID(ctx context.Context, id string) (*domain.Uploader, error)
}

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	// List returns articles in stored order. Display ordering is the
	// catalog service's concern.
	List(ctx context.Context) ([]domain.Article, error)
	// Prepend inserts the article at position 0 of the stored collection.
	Prepend(ctx context.Context, article domain.Article) error
}

// SessionRepository manages the two independent session pointers.
type SessionRepository interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
	SetCurrentUser(ctx context.Context, user domain.User) error
	ClearCurrentUser(ctx context.Context) error

	CurrentUploader(ctx context.Context) (*domain.Uploader, error)
	SetCurrentUploader(ctx context.Context, uploader domain.Uploader) error
	ClearCurrentUploader(ctx context.Context) error
}
