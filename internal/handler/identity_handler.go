package handler

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"skynet-news/internal/domain"
	"skynet-news/internal/middleware"
	"skynet-news/internal/service"
	"skynet-news/internal/validator"
)

// maxProofSize caps uploaded qualification proof images at 8 MiB.
const maxProofSize = 8 << 20

// IdentityHandler handles user and uploader identity HTTP requests.
type IdentityHandler struct {
	identity  service.IdentityServiceInterface
	validator *validator.Validator
}

// NewIdentityHandler creates a new IdentityHandler.
func NewIdentityHandler(identity service.IdentityServiceInterface, v *validator.Validator) *IdentityHandler {
	return &IdentityHandler{identity: identity, validator: v}
}

type registerUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginUserRequest struct {
	Email string `json:"email"`
}

type loginUploaderRequest struct {
	ID string `json:"id"`
}

// RegisterUser handles POST /api/v1/users/register
func (h *IdentityHandler) RegisterUser(c *gin.Context) {
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	input := &validator.UserRegistration{Username: req.Username, Email: req.Email}
	if err := h.validator.ValidateUserRegistration(input); err != nil {
		respondValidationError(c, err)
		return
	}

	user, err := h.identity.RegisterUser(c.Request.Context(), req.Username, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		log.Printf("[request_id=%s] Failed to register user: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// LoginUser handles POST /api/v1/users/login
func (h *IdentityHandler) LoginUser(c *gin.Context) {
	var req loginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.identity.Login(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no account found for that email"})
			return
		}
		log.Printf("[request_id=%s] Failed to login user: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to login"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// LogoutUser handles POST /api/v1/users/logout
func (h *IdentityHandler) LogoutUser(c *gin.Context) {
	if err := h.identity.Logout(c.Request.Context()); err != nil {
		log.Printf("[request_id=%s] Failed to logout user: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to logout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// RegisterUploader handles POST /api/v1/uploaders/register (multipart)
func (h *IdentityHandler) RegisterUploader(c *gin.Context) {
	name := c.PostForm("name")
	qualification := c.PostForm("qualification")
	age, err := strconv.Atoi(c.PostForm("age"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "age must be a number"})
		return
	}

	file, header, err := c.Request.FormFile("proof")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "proof image is required"})
		return
	}
	defer file.Close()

	proof, err := io.ReadAll(io.LimitReader(file, maxProofSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read proof image"})
		return
	}
	if len(proof) > maxProofSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "proof image exceeds 8MB"})
		return
	}

	input := &validator.UploaderRegistration{
		Name:          name,
		Age:           age,
		Qualification: qualification,
		Proof:         proof,
		ProofMimeType: header.Header.Get("Content-Type"),
	}
	if err := h.validator.ValidateUploaderRegistration(input); err != nil {
		respondValidationError(c, err)
		return
	}

	uploader, err := h.identity.RegisterUploader(c.Request.Context(), name, age, qualification, proof)
	if err != nil {
		log.Printf("[request_id=%s] Failed to register uploader: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register uploader"})
		return
	}

	// The generated ID is the uploader's only credential; surface it
	// prominently so the client can tell the user to keep it.
	c.JSON(http.StatusCreated, gin.H{
		"id":   uploader.ID,
		"name": uploader.Name,
	})
}

// LoginUploader handles POST /api/v1/uploaders/login
func (h *IdentityHandler) LoginUploader(c *gin.Context) {
	var req loginUploaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	uploader, err := h.identity.LoginUploader(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUploaderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "invalid uploader ID"})
			return
		}
		log.Printf("[request_id=%s] Failed to login uploader: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":   uploader.ID,
		"name": uploader.Name,
	})
}

// LogoutUploader handles POST /api/v1/uploaders/logout
func (h *IdentityHandler) LogoutUploader(c *gin.Context) {
	if err := h.identity.LogoutUploader(c.Request.Context()); err != nil {
		log.Printf("[request_id=%s] Failed to logout uploader: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to logout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// CurrentSession handles GET /api/v1/session
func (h *IdentityHandler) CurrentSession(c *gin.Context) {
	identity, err := h.identity.CurrentIdentity(c.Request.Context())
	if err != nil {
		log.Printf("[request_id=%s] Failed to read session: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read session"})
		return
	}

	c.JSON(http.StatusOK, identity)
}

// respondValidationError maps ozzo validation errors to a 400 response
// with per-field error codes.
func respondValidationError(c *gin.Context, err error) {
	if ve, ok := err.(validation.Errors); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": ve})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
