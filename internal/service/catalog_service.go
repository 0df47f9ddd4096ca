package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"skynet-news/internal/domain"
	"skynet-news/internal/metrics"
	"skynet-news/internal/repository"
)

// CatalogService provides read and insert operations over the article
// collection. Articles are immutable once saved.
type CatalogService struct {
	articles repository.ArticleRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(articles repository.ArticleRepository) *CatalogService {
	return &CatalogService{articles: articles}
}

// ListArticles returns a freshly materialized slice sorted by publish
// date descending. The sort is stable, so equal timestamps keep their
// stored order.
func (s *CatalogService) ListArticles(ctx context.Context) ([]domain.Article, error) {
	articles, err := s.articles.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return parsePublishDate(articles[i].PublishDate).After(parsePublishDate(articles[j].PublishDate))
	})
	return articles, nil
}

// GetArticle returns the article with the given ID.
func (s *CatalogService) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	articles, err := s.articles.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range articles {
		if articles[i].ID == id {
			a := articles[i]
			return &a, nil
		}
	}
	return nil, domain.ErrArticleNotFound
}

// SaveArticle inserts the article at position 0 of the stored collection.
// Stored position does not affect display order, which ListArticles
// always recomputes from publish dates.
func (s *CatalogService) SaveArticle(ctx context.Context, article domain.Article) error {
	return s.articles.Prepend(ctx, article)
}

// Filter narrows articles to those whose publish date starts with
// datePrefix AND which carry every requested topic. Both criteria are
// optional; an empty filter returns the input unchanged.
func (s *CatalogService) Filter(articles []domain.Article, datePrefix string, topics []string) []domain.Article {
	out := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if datePrefix != "" && !strings.HasPrefix(a.PublishDate, datePrefix) {
			continue
		}
		if !containsAll(a.Topics, topics) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// ExportArticles streams all articles to w in the given format. The
// thumbnail column is omitted from CSV since base64 blobs do not belong
// in spreadsheets; NDJSON carries the full record.
func (s *CatalogService) ExportArticles(ctx context.Context, format string, w io.Writer) (int, error) {
	if !domain.IsValidExportFormat(format) {
		return 0, fmt.Errorf("unsupported export format %q", format)
	}

	articles, err := s.ListArticles(ctx)
	if err != nil {
		metrics.ExportsTotal.WithLabelValues(format, "error").Inc()
		return 0, err
	}

	var count int
	switch format {
	case "csv":
		count, err = writeArticlesCSV(w, articles)
	case "ndjson":
		count, err = writeArticlesNDJSON(w, articles)
	}
	if err != nil {
		metrics.ExportsTotal.WithLabelValues(format, "error").Inc()
		return count, err
	}

	metrics.ExportsTotal.WithLabelValues(format, "success").Inc()
	return count, nil
}

func writeArticlesCSV(w io.Writer, articles []domain.Article) (int, error) {
	cw := csv.NewWriter(w)
	header := []string{"id", "title", "summary", "topics", "publish_date", "uploader_id", "uploader_name"}
	if err := cw.Write(header); err != nil {
		return 0, fmt.Errorf("write csv header: %w", err)
	}

	count := 0
	for _, a := range articles {
		record := []string{
			a.ID,
			a.Title,
			a.Summary,
			strings.Join(a.Topics, "|"),
			a.PublishDate,
			a.UploaderID,
			a.UploaderName,
		}
		if err := cw.Write(record); err != nil {
			return count, fmt.Errorf("write csv record %d: %w", count+1, err)
		}
		count++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return count, fmt.Errorf("flush csv: %w", err)
	}
	return count, nil
}

func writeArticlesNDJSON(w io.Writer, articles []domain.Article) (int, error) {
	enc := json.NewEncoder(w)
	count := 0
	for _, a := range articles {
		if err := enc.Encode(a); err != nil {
			return count, fmt.Errorf("encode record %d: %w", count+1, err)
		}
		count++
	}
	return count, nil
}

// containsAll reports whether have contains every element of want.
// An empty want matches everything (AND over zero criteria).
func containsAll(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// parsePublishDate parses an RFC3339 publish date. Unparseable dates
// sort last (zero time).
func parsePublishDate(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
