package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"skynet-news/internal/domain"
	"skynet-news/internal/handler"
	"skynet-news/internal/mocks"
)

func setupArticleRouter(catalog *mocks.CatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewArticleHandler(catalog)

	router := gin.New()
	router.GET("/api/v1/articles", h.ListArticles)
	router.GET("/api/v1/articles/export", h.ExportArticles)
	router.GET("/api/v1/articles/:id", h.GetArticle)
	return router
}

func TestArticleHandler_ListArticles(t *testing.T) {
	catalog := new(mocks.CatalogService)
	articles := []domain.Article{
		{ID: "a2", PublishDate: "2024-05-02T10:00:00Z"},
		{ID: "a1", PublishDate: "2024-05-01T10:00:00Z"},
	}
	catalog.On("ListArticles", mock.Anything).Return(articles, nil)
	catalog.On("Filter", articles, "", []string(nil)).Return(articles)

	router := setupArticleRouter(catalog)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Articles []domain.Article `json:"articles"`
		Count    int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "a2", resp.Articles[0].ID)
	catalog.AssertExpectations(t)
}

func TestArticleHandler_ListArticles_WithFilters(t *testing.T) {
	catalog := new(mocks.CatalogService)
	articles := []domain.Article{
		{ID: "a1", PublishDate: "2024-05-01T10:00:00Z", Topics: []string{"Sports"}},
		{ID: "a2", PublishDate: "2024-06-01T10:00:00Z", Topics: []string{"Politics"}},
	}
	catalog.On("ListArticles", mock.Anything).Return(articles, nil)
	catalog.On("Filter", articles, "2024-05", []string{"Sports", "Business"}).
		Return(articles[:1])

	router := setupArticleRouter(catalog)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles?date=2024-05&topics=Sports,%20Business", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	catalog.AssertExpectations(t)
}

func TestArticleHandler_ListArticles_Error(t *testing.T) {
	catalog := new(mocks.CatalogService)
	catalog.On("ListArticles", mock.Anything).Return(nil, errors.New("store down"))

	router := setupArticleRouter(catalog)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestArticleHandler_GetArticle(t *testing.T) {
	catalog := new(mocks.CatalogService)
	catalog.On("GetArticle", mock.Anything, "a1").
		Return(&domain.Article{ID: "a1", Title: "Hello"}, nil)

	router := setupArticleRouter(catalog)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/a1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var article domain.Article
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &article))
	assert.Equal(t, "Hello", article.Title)
}

func TestArticleHandler_GetArticle_NotFound(t *testing.T) {
	catalog := new(mocks.CatalogService)
	catalog.On("GetArticle", mock.Anything, "missing").
		Return(nil, domain.ErrArticleNotFound)

	router := setupArticleRouter(catalog)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestArticleHandler_ExportArticles(t *testing.T) {
	catalog := new(mocks.CatalogService)
	catalog.On("ExportArticles", mock.Anything, "csv", mock.Anything).
		Run(func(args mock.Arguments) {
			w := args.Get(2).(io.Writer)
			_, _ = w.Write([]byte("id,title\n"))
		}).
		Return(1, nil)

	router := setupArticleRouter(catalog)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/export?format=csv", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "articles.csv")
	assert.Equal(t, "id,title\n", w.Body.String())
}

func TestArticleHandler_ExportArticles_DefaultsToNDJSON(t *testing.T) {
	catalog := new(mocks.CatalogService)
	catalog.On("ExportArticles", mock.Anything, "ndjson", mock.Anything).Return(0, nil)

	router := setupArticleRouter(catalog)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/export", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/x-ndjson", w.Header().Get("Content-Type"))
}

func TestArticleHandler_ExportArticles_BadFormat(t *testing.T) {
	catalog := new(mocks.CatalogService)

	router := setupArticleRouter(catalog)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/export?format=xml", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	catalog.AssertNotCalled(t, "ExportArticles", mock.Anything, mock.Anything, mock.Anything)
}
