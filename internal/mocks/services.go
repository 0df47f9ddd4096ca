// Package mocks provides testify mocks for the service interfaces.
package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"skynet-news/internal/domain"
)

// CatalogService is a mock of service.CatalogServiceInterface.
type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) ListArticles(ctx context.Context) ([]domain.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *CatalogService) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *CatalogService) SaveArticle(ctx context.Context, article domain.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *CatalogService) Filter(articles []domain.Article, datePrefix string, topics []string) []domain.Article {
	args := m.Called(articles, datePrefix, topics)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Article)
}

func (m *CatalogService) ExportArticles(ctx context.Context, format string, w io.Writer) (int, error) {
	args := m.Called(ctx, format, w)
	return args.Int(0), args.Error(1)
}

// IdentityService is a mock of service.IdentityServiceInterface.
type IdentityService struct {
	mock.Mock
}

func (m *IdentityService) RegisterUser(ctx context.Context, username, email string) (*domain.User, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *IdentityService) Login(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *IdentityService) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *IdentityService) RegisterUploader(ctx context.Context, name string, age int, qualification string, proof []byte) (*domain.Uploader, error) {
	args := m.Called(ctx, name, age, qualification, proof)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Uploader), args.Error(1)
}

func (m *IdentityService) LoginUploader(ctx context.Context, id string) (*domain.Uploader, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Uploader), args.Error(1)
}

func (m *IdentityService) LogoutUploader(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *IdentityService) CurrentIdentity(ctx context.Context) (domain.Identity, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Identity), args.Error(1)
}

// PublishService is a mock of service.PublishServiceInterface.
type PublishService struct {
	mock.Mock
}

func (m *PublishService) Submit(ctx context.Context, content string, image []byte, mimeType string) (*domain.VerificationDraft, error) {
	args := m.Called(ctx, content, image, mimeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerificationDraft), args.Error(1)
}

func (m *PublishService) Confirm(ctx context.Context, draftID string) (*domain.Article, error) {
	args := m.Called(ctx, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *PublishService) Abandon(ctx context.Context, draftID string) error {
	args := m.Called(ctx, draftID)
	return args.Error(0)
}
