package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"skynet-news/internal/domain"
	"skynet-news/internal/logger"
	"skynet-news/internal/repository"
)

// uploaderIDPrefix marks generated uploader IDs as opaque tokens.
const uploaderIDPrefix = "skynet-uid-"

// IdentityService manages the two independent identity kinds and their
// session pointers. Login is identification only; there are no passwords.
type IdentityService struct {
	users     repository.UserRepository
	uploaders repository.UploaderRepository
	sessions  repository.SessionRepository
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(
	users repository.UserRepository,
	uploaders repository.UploaderRepository,
	sessions repository.SessionRepository,
) *IdentityService {
	return &IdentityService{
		users:     users,
		uploaders: uploaders,
		sessions:  sessions,
	}
}

// RegisterUser registers a reader. Email must be unique across all users.
func (s *IdentityService) RegisterUser(ctx context.Context, username, email string) (*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}
	for _, u := range users {
		if u.Email == email {
			return nil, domain.ErrDuplicateEmail
		}
	}

	user := domain.User{Username: username, Email: email}
	if err := s.users.Append(ctx, user); err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	logger.InfoContext(ctx, "User registered", slog.String("email", email))
	return &user, nil
}

// Login looks a user up by email. On success the current-user pointer is
// set to a copy of the found record.
func (s *IdentityService) Login(ctx context.Context, email string) (*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	for i := range users {
		if users[i].Email == email {
			user := users[i]
			if err := s.sessions.SetCurrentUser(ctx, user); err != nil {
				return nil, fmt.Errorf("login: %w", err)
			}
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Logout clears the current-user pointer. It never fails on an absent
// session.
func (s *IdentityService) Logout(ctx context.Context) error {
	return s.sessions.ClearCurrentUser(ctx)
}

// RegisterUploader registers a content creator. A fresh globally-unique
// ID is generated; the caller must log in explicitly afterwards.
func (s *IdentityService) RegisterUploader(ctx context.Context, name string, age int, qualification string, proof []byte) (*domain.Uploader, error) {
	uploader := domain.Uploader{
		ID:                 uploaderIDPrefix + uuid.New().String(),
		Name:               name,
		Age:                age,
		Qualification:      qualification,
		QualificationProof: base64.StdEncoding.EncodeToString(proof),
	}

	if err := s.uploaders.Append(ctx, uploader); err != nil {
		return nil, fmt.Errorf("register uploader: %w", err)
	}

	logger.InfoContext(ctx, "Uploader registered", slog.String("uploader_id", uploader.ID))
	return &uploader, nil
}

// LoginUploader looks an uploader up by its opaque ID. On success the
// current-uploader pointer is set to a copy of the found record.
func (s *IdentityService) LoginUploader(ctx context.Context, id string) (*domain.Uploader, error) {
	uploader, err := s.uploaders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.SetCurrentUploader(ctx, *uploader); err != nil {
		return nil, fmt.Errorf("login uploader: %w", err)
	}
	return uploader, nil
}

// LogoutUploader clears the current-uploader pointer.
func (s *IdentityService) LogoutUploader(ctx context.Context) error {
	return s.sessions.ClearCurrentUploader(ctx)
}

// CurrentIdentity returns the current identity as a tagged union. The
// uploader session wins when both are active, since it gates publishing.
func (s *IdentityService) CurrentIdentity(ctx context.Context) (domain.Identity, error) {
	uploader, err := s.sessions.CurrentUploader(ctx)
	if err != nil {
		return domain.Identity{}, err
	}
	if uploader != nil {
		return domain.Identity{Kind: domain.IdentityUploader, Uploader: uploader}, nil
	}

	user, err := s.sessions.CurrentUser(ctx)
	if err != nil {
		return domain.Identity{}, err
	}
	if user != nil {
		return domain.Identity{Kind: domain.IdentityUser, User: user}, nil
	}

	return domain.Identity{Kind: domain.IdentityNone}, nil
}
