package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"skynet-news/internal/domain"
	"skynet-news/internal/middleware"
	"skynet-news/internal/service"
)

// maxImageSize caps uploaded article thumbnails at 8 MiB.
const maxImageSize = 8 << 20

// PublishHandler handles the publishing workflow HTTP requests.
type PublishHandler struct {
	publish service.PublishServiceInterface
}

// NewPublishHandler creates a new PublishHandler.
func NewPublishHandler(publish service.PublishServiceInterface) *PublishHandler {
	return &PublishHandler{publish: publish}
}

// SubmitDraft handles POST /api/v1/publish/submit (multipart).
//
// On success the draft has been classified and awaits confirmation. The
// response never distinguishes real classification from fallback.
func (h *PublishHandler) SubmitDraft(c *gin.Context) {
	content := c.PostForm("content")

	var image []byte
	var mimeType string
	if file, header, err := c.Request.FormFile("image"); err == nil {
		defer file.Close()
		image, err = io.ReadAll(io.LimitReader(file, maxImageSize+1))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
			return
		}
		if len(image) > maxImageSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds 8MB"})
			return
		}
		mimeType = header.Header.Get("Content-Type")
	}

	draft, err := h.publish.Submit(c.Request.Context(), content, image, mimeType)
	if err != nil {
		if ve, ok := err.(validation.Errors); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": ve})
			return
		}
		log.Printf("[request_id=%s] Failed to submit draft: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit draft"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      draft.ID,
		"content": draft.Content,
		"topics":  draft.Topics,
	})
}

// ConfirmDraft handles POST /api/v1/publish/:draftID/confirm
func (h *PublishHandler) ConfirmDraft(c *gin.Context) {
	draftID := c.Param("draftID")

	article, err := h.publish.Confirm(c.Request.Context(), draftID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDraftNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
		case errors.Is(err, domain.ErrNoUploaderSession):
			// The draft is retained: log in as an uploader and retry.
			c.JSON(http.StatusForbidden, gin.H{"error": "uploader login required to publish"})
		default:
			log.Printf("[request_id=%s] Failed to confirm draft %s: %v", middleware.GetRequestID(c), draftID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to publish article"})
		}
		return
	}

	c.JSON(http.StatusCreated, article)
}

// AbandonDraft handles DELETE /api/v1/publish/:draftID
func (h *PublishHandler) AbandonDraft(c *gin.Context) {
	draftID := c.Param("draftID")

	if err := h.publish.Abandon(c.Request.Context(), draftID); err != nil {
		if errors.Is(err, domain.ErrDraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
			return
		}
		log.Printf("[request_id=%s] Failed to abandon draft %s: %v", middleware.GetRequestID(c), draftID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to abandon draft"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "abandoned"})
}
