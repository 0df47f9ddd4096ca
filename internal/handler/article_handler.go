package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"skynet-news/internal/domain"
	"skynet-news/internal/middleware"
	"skynet-news/internal/service"
)

// ArticleHandler handles catalog-related HTTP requests.
type ArticleHandler struct {
	catalog service.CatalogServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(catalog service.CatalogServiceInterface) *ArticleHandler {
	return &ArticleHandler{catalog: catalog}
}

// ListArticles handles GET /api/v1/articles
//
// Optional query parameters: date (publish date prefix, e.g. 2024-05-01)
// and topics (comma-separated; an article must carry every one).
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	articles, err := h.catalog.ListArticles(c.Request.Context())
	if err != nil {
		log.Printf("[request_id=%s] Failed to list articles: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list articles"})
		return
	}

	datePrefix := c.Query("date")
	var topics []string
	if raw := c.Query("topics"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				topics = append(topics, t)
			}
		}
	}

	filtered := h.catalog.Filter(articles, datePrefix, topics)
	c.JSON(http.StatusOK, gin.H{
		"articles": filtered,
		"count":    len(filtered),
	})
}

// GetArticle handles GET /api/v1/articles/:id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id := c.Param("id")

	article, err := h.catalog.GetArticle(c.Request.Context(), id)
	if err != nil {
		if err == domain.ErrArticleNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		log.Printf("[request_id=%s] Failed to get article %s: %v", middleware.GetRequestID(c), id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve article"})
		return
	}

	c.JSON(http.StatusOK, article)
}

// ExportArticles handles GET /api/v1/articles/export
func (h *ArticleHandler) ExportArticles(c *gin.Context) {
	format := c.DefaultQuery("format", "ndjson")
	if !domain.IsValidExportFormat(format) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be one of: csv, ndjson"})
		return
	}

	switch format {
	case "csv":
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="articles.csv"`)
	case "ndjson":
		c.Header("Content-Type", "application/x-ndjson")
		c.Header("Content-Disposition", `attachment; filename="articles.ndjson"`)
	}

	if _, err := h.catalog.ExportArticles(c.Request.Context(), format, c.Writer); err != nil {
		// Headers may already be written; log and abort.
		log.Printf("[request_id=%s] Export failed: %v", middleware.GetRequestID(c), err)
		c.Abort()
	}
}
