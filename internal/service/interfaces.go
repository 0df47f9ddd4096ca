package service

import (
	"context"
	"io"

	"skynet-news/internal/domain"
)

// IdentityServiceInterface defines the interface for identity operations.
// Used for dependency injection and mocking in tests.
type IdentityServiceInterface interface {
	// RegisterUser registers a reader. Fails with domain.ErrDuplicateEmail
	// if the email is already taken.
	RegisterUser(ctx context.Context, username, email string) (*domain.User, error)
	// Login looks a user up by email and sets the current-user pointer.
	Login(ctx context.Context, email string) (*domain.User, error)
	// Logout clears the current-user pointer.
	Logout(ctx context.Context) error
	// RegisterUploader registers a content creator with a fresh ID. The
	// session pointer is not set; the caller must log in explicitly.
	RegisterUploader(ctx context.Context, name string, age int, qualification string, proof []byte) (*domain.Uploader, error)
	// LoginUploader looks an uploader up by ID and sets the
	// current-uploader pointer.
	LoginUploader(ctx context.Context, id string) (*domain.Uploader, error)
	// LogoutUploader clears the current-uploader pointer.
	LogoutUploader(ctx context.Context) error
	// CurrentIdentity returns the current identity as a tagged union.
	CurrentIdentity(ctx context.Context) (domain.Identity, error)
}

// CatalogServiceInterface defines the interface for catalog operations.
type CatalogServiceInterface interface {
	// ListArticles returns a fresh slice sorted by publish date
	// descending, ties broken by stored order.
	ListArticles(ctx context.Context) ([]domain.Article, error)
	// GetArticle returns the article with the given ID.
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	// SaveArticle inserts the article at position 0 of the stored
	// collection.
	SaveArticle(ctx context.Context, article domain.Article) error
	// Filter narrows articles to those matching the date prefix AND
	// carrying every requested topic.
	Filter(articles []domain.Article, datePrefix string, topics []string) []domain.Article
	// ExportArticles streams all articles to w in the given format and
	// returns the number of records written.
	ExportArticles(ctx context.Context, format string, w io.Writer) (int, error)
}

// PublishServiceInterface defines the interface for the publishing workflow.
type PublishServiceInterface interface {
	// Submit validates the draft input, classifies it, and returns the
	// verification draft awaiting confirmation.
	Submit(ctx context.Context, content string, image []byte, mimeType string) (*domain.VerificationDraft, error)
	// Confirm publishes the draft as an article. Requires an active
	// uploader session.
	Confirm(ctx context.Context, draftID string) (*domain.Article, error)
	// Abandon discards the draft.
	Abandon(ctx context.Context, draftID string) error
}
