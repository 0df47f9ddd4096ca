// Package store provides string-keyed blob storage for the JSON-serialized
// collections and session pointers. Backends must be durable across process
// restarts (the in-memory backend is for tests and local development).
package store

import "context"

// Storage keys. Every collection and session pointer lives under one of these.
const (
	UsersKey           = "skynetnews_users"
	UploadersKey       = "skynetnews_uploaders"
	ArticlesKey        = "skynetnews_articles"
	CurrentUserKey     = "skynetnews_currentUser"
	CurrentUploaderKey = "skynetnews_currentUploader"
)

// Store is a string-keyed blob store. Get reports absence via the boolean
// rather than an error, since a missing collection is an expected state
// (it triggers seeding on first use).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
