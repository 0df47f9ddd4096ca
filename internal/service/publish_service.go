package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"skynet-news/internal/classify"
	"skynet-news/internal/domain"
	"skynet-news/internal/logger"
	"skynet-news/internal/metrics"
	"skynet-news/internal/repository"
	"skynet-news/internal/validator"
)

const (
	// titleMaxLen is the cutoff for deriving the title from the first
	// line of content.
	titleMaxLen = 100
	// summaryLen is the length of the content prefix used as summary.
	summaryLen = 150

	articleIDPrefix = "article-"
	draftIDPrefix   = "draft-"
)

// PublishService orchestrates the publishing workflow: a submitted draft
// is classified, held for review, and on confirmation becomes an
// immutable article. Drafts are transient and never persisted.
type PublishService struct {
	catalog    CatalogServiceInterface
	sessions   repository.SessionRepository
	classifier classify.Classifier
	vocab      domain.Vocabulary
	validator  *validator.Validator

	mu     sync.Mutex
	drafts map[string]domain.VerificationDraft

	now func() time.Time
}

// NewPublishService creates a new PublishService.
func NewPublishService(
	catalog CatalogServiceInterface,
	sessions repository.SessionRepository,
	classifier classify.Classifier,
	vocab domain.Vocabulary,
	v *validator.Validator,
) *PublishService {
	return &PublishService{
		catalog:    catalog,
		sessions:   sessions,
		classifier: classifier,
		vocab:      vocab,
		validator:  v,
		drafts:     make(map[string]domain.VerificationDraft),
		now:        time.Now,
	}
}

// Submit validates the input, runs classification, and stores the
// resulting verification draft awaiting confirmation. Classification
// cannot fail: the gateway substitutes fallback topics on any error.
func (s *PublishService) Submit(ctx context.Context, content string, image []byte, mimeType string) (*domain.VerificationDraft, error) {
	submission := &validator.DraftSubmission{
		Content:  content,
		Image:    image,
		MimeType: mimeType,
	}
	if err := s.validator.ValidateDraftSubmission(submission); err != nil {
		return nil, err
	}

	metrics.DraftsSubmittedTotal.Inc()
	timer := metrics.NewTimer()
	result := s.classifier.Classify(ctx, content, image, mimeType)
	timer.ObserveDuration(metrics.ClassificationDuration)

	if result.Fallback {
		logger.InfoContext(ctx, "Draft classified via fallback",
			slog.String("reason", result.Reason))
	}

	draft := domain.VerificationDraft{
		ID:        draftIDPrefix + uuid.New().String(),
		Content:   content,
		Thumbnail: base64.StdEncoding.EncodeToString(image),
		MimeType:  mimeType,
		Topics:    s.vocab.Sanitize(result.Topics),
	}

	s.mu.Lock()
	s.drafts[draft.ID] = draft
	s.mu.Unlock()

	logger.InfoContext(ctx, "Draft submitted",
		slog.String("draft_id", draft.ID),
		slog.Int("topic_count", len(draft.Topics)))
	return &draft, nil
}

// Confirm publishes the draft as an article. An active uploader session
// is required; without one the catalog is left untouched and the draft
// is retained so confirmation can be retried after login.
func (s *PublishService) Confirm(ctx context.Context, draftID string) (*domain.Article, error) {
	s.mu.Lock()
	draft, ok := s.drafts[draftID]
	s.mu.Unlock()
	if !ok {
		return nil, domain.ErrDraftNotFound
	}

	uploader, err := s.sessions.CurrentUploader(ctx)
	if err != nil {
		return nil, fmt.Errorf("confirm draft: %w", err)
	}
	if uploader == nil {
		return nil, domain.ErrNoUploaderSession
	}

	article := domain.Article{
		ID:           articleIDPrefix + uuid.New().String(),
		Title:        deriveTitle(draft.Content),
		Summary:      deriveSummary(draft.Content),
		Content:      draft.Content,
		Thumbnail:    draft.Thumbnail,
		Topics:       draft.Topics,
		PublishDate:  s.now().UTC().Format(time.RFC3339),
		UploaderID:   uploader.ID,
		UploaderName: uploader.Name,
	}

	if err := s.catalog.SaveArticle(ctx, article); err != nil {
		return nil, fmt.Errorf("confirm draft: %w", err)
	}

	s.mu.Lock()
	delete(s.drafts, draftID)
	s.mu.Unlock()

	metrics.ArticlesPublishedTotal.Inc()
	logger.InfoContext(ctx, "Article published",
		slog.String("article_id", article.ID),
		slog.String("uploader_id", uploader.ID))
	return &article, nil
}

// Abandon discards the draft, returning the workflow to its entry state.
func (s *PublishService) Abandon(_ context.Context, draftID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[draftID]; !ok {
		return domain.ErrDraftNotFound
	}
	delete(s.drafts, draftID)
	return nil
}

// deriveTitle takes the first line of content, truncated to 100
// characters with an ellipsis if longer.
func deriveTitle(content string) string {
	firstLine := strings.SplitN(content, "\n", 2)[0]
	runes := []rune(firstLine)
	if len(runes) > titleMaxLen {
		return string(runes[:titleMaxLen]) + "..."
	}
	return firstLine
}

// deriveSummary takes the first 150 characters of content. The ellipsis
// is always appended, matching the publish rules even for short content.
func deriveSummary(content string) string {
	runes := []rune(content)
	if len(runes) > summaryLen {
		runes = runes[:summaryLen]
	}
	return string(runes) + "..."
}
