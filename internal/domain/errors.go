package domain

import "errors"

var (
	// ErrDuplicateEmail is returned when registering a user with an
	// email that is already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrUserNotFound is returned when no user matches the given email.
	ErrUserNotFound = errors.New("user not found")

	// ErrUploaderNotFound is returned when no uploader matches the given ID.
	ErrUploaderNotFound = errors.New("uploader not found")

	// ErrArticleNotFound is returned when no article matches the given ID.
	ErrArticleNotFound = errors.New("article not found")

	// ErrDraftNotFound is returned when a verification draft has expired
	// or was never created.
	ErrDraftNotFound = errors.New("draft not found")

	// ErrNoUploaderSession is returned when publish confirmation is
	// attempted without an active uploader session.
	ErrNoUploaderSession = errors.New("no active uploader session")
)
