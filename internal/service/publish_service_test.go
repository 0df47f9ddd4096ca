package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skynet-news/internal/classify"
	"skynet-news/internal/domain"
	"skynet-news/internal/repository"
	"skynet-news/internal/store"
	"skynet-news/internal/validator"
)

// stubClassifier returns a fixed topic set.
type stubClassifier struct {
	topics []string
}

func (c *stubClassifier) Classify(_ context.Context, _ string, _ []byte, _ string) classify.Result {
	return classify.Result{Topics: c.topics}
}

type publishFixture struct {
	catalog  *CatalogService
	identity *IdentityService
	publish  *PublishService
}

func newPublishFixture(t *testing.T, topics []string) *publishFixture {
	t.Helper()

	s := store.NewMemoryStore()
	sessions := repository.NewStoreSessionRepository(s)
	catalog := NewCatalogService(repository.NewStoreArticleRepository(s))
	identity := NewIdentityService(
		repository.NewStoreUserRepository(s),
		repository.NewStoreUploaderRepository(s),
		sessions,
	)
	publish := NewPublishService(
		catalog,
		sessions,
		&stubClassifier{topics: topics},
		domain.DefaultVocabulary,
		validator.NewValidator(),
	)
	return &publishFixture{catalog: catalog, identity: identity, publish: publish}
}

func (f *publishFixture) loginUploader(t *testing.T, ctx context.Context) *domain.Uploader {
	t.Helper()

	uploader, err := f.identity.RegisterUploader(ctx, "Jane Doe", 34, "Masters in Journalism", []byte("proof"))
	require.NoError(t, err)
	_, err = f.identity.LoginUploader(ctx, uploader.ID)
	require.NoError(t, err)
	return uploader
}

func TestPublishService_Submit(t *testing.T) {
	f := newPublishFixture(t, []string{"Sports", "Business"})
	ctx := context.Background()

	draft, err := f.publish.Submit(ctx, "Match report\nFull text here.", []byte("img"), "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(draft.ID, draftIDPrefix))
	assert.Equal(t, "Match report\nFull text here.", draft.Content)
	assert.Equal(t, "image/png", draft.MimeType)
	assert.Equal(t, []string{"Sports", "Business"}, draft.Topics)
	assert.NotEmpty(t, draft.Thumbnail)
}

func TestPublishService_Submit_ValidationErrors(t *testing.T) {
	f := newPublishFixture(t, []string{"Sports"})
	ctx := context.Background()

	tests := []struct {
		name     string
		content  string
		image    []byte
		mimeType string
	}{
		{name: "missing content", content: "", image: []byte("img"), mimeType: "image/png"},
		{name: "missing image", content: "text", image: nil, mimeType: "image/png"},
		{name: "not an image", content: "text", image: []byte("doc"), mimeType: "application/pdf"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.publish.Submit(ctx, tc.content, tc.image, tc.mimeType)
			assert.Error(t, err)
		})
	}
}

func TestPublishService_Submit_SanitizesUnknownTopics(t *testing.T) {
	f := newPublishFixture(t, []string{"Sports", "Astrology", "Business"})

	draft, err := f.publish.Submit(context.Background(), "text", []byte("img"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sports", "Business"}, draft.Topics)
}

func TestPublishService_Confirm(t *testing.T) {
	f := newPublishFixture(t, []string{"Sports"})
	ctx := context.Background()

	published := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	f.publish.now = func() time.Time { return published }

	uploader := f.loginUploader(t, ctx)

	draft, err := f.publish.Submit(ctx, "Cats Rule\nA long body about cats.", []byte("img"), "image/png")
	require.NoError(t, err)

	article, err := f.publish.Confirm(ctx, draft.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(article.ID, articleIDPrefix))
	assert.Equal(t, "Cats Rule", article.Title)
	assert.Equal(t, "Cats Rule\nA long body about cats....", article.Summary)
	assert.Equal(t, draft.Content, article.Content)
	assert.Equal(t, draft.Thumbnail, article.Thumbnail)
	assert.Equal(t, []string{"Sports"}, article.Topics)
	assert.Equal(t, "2024-05-01T10:30:00Z", article.PublishDate)
	assert.Equal(t, uploader.ID, article.UploaderID)
	assert.Equal(t, "Jane Doe", article.UploaderName)

	articles, err := f.catalog.ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, article.ID, articles[0].ID)

	// The draft is consumed on success.
	_, err = f.publish.Confirm(ctx, draft.ID)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestPublishService_Confirm_WithoutUploaderSession(t *testing.T) {
	f := newPublishFixture(t, []string{"Sports"})
	ctx := context.Background()

	draft, err := f.publish.Submit(ctx, "text", []byte("img"), "image/png")
	require.NoError(t, err)

	_, err = f.publish.Confirm(ctx, draft.ID)
	assert.ErrorIs(t, err, domain.ErrNoUploaderSession)

	// The catalog is untouched and the draft survives for a retry.
	articles, err := f.catalog.ListArticles(ctx)
	require.NoError(t, err)
	assert.Empty(t, articles)

	f.loginUploader(t, ctx)
	_, err = f.publish.Confirm(ctx, draft.ID)
	assert.NoError(t, err)
}

func TestPublishService_Confirm_UnknownDraft(t *testing.T) {
	f := newPublishFixture(t, []string{"Sports"})

	_, err := f.publish.Confirm(context.Background(), "draft-missing")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestPublishService_Abandon(t *testing.T) {
	f := newPublishFixture(t, []string{"Sports"})
	ctx := context.Background()

	draft, err := f.publish.Submit(ctx, "text", []byte("img"), "image/png")
	require.NoError(t, err)

	require.NoError(t, f.publish.Abandon(ctx, draft.ID))
	assert.ErrorIs(t, f.publish.Abandon(ctx, draft.ID), domain.ErrDraftNotFound)

	f.loginUploader(t, ctx)
	_, err = f.publish.Confirm(ctx, draft.ID)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestDeriveTitle(t *testing.T) {
	long := strings.Repeat("x", 120)

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "first line", content: "Headline\nBody text", want: "Headline"},
		{name: "no newline", content: "Headline only", want: "Headline only"},
		{name: "long first line truncated", content: long + "\nbody", want: strings.Repeat("x", 100) + "..."},
		{name: "exactly at limit untouched", content: strings.Repeat("x", 100), want: strings.Repeat("x", 100)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, deriveTitle(tc.content))
		})
	}
}

func TestDeriveSummary(t *testing.T) {
	long := strings.Repeat("y", 200)

	// The ellipsis is appended even when content is shorter than the cutoff.
	assert.Equal(t, "short...", deriveSummary("short"))
	assert.Equal(t, strings.Repeat("y", 150)+"...", deriveSummary(long))
}
