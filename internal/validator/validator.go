package validator

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// UserRegistration is the input for registering a reader.
type UserRegistration struct {
	Username string
	Email    string
}

// UploaderRegistration is the input for registering a content creator.
type UploaderRegistration struct {
	Name          string
	Age           int
	Qualification string
	Proof         []byte
	ProofMimeType string
}

// DraftSubmission is the input for submitting an article draft for
// classification.
type DraftSubmission struct {
	Content  string
	Image    []byte
	MimeType string
}

// Validator provides validation methods for request inputs.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateUserRegistration validates a user registration request.
func (v *Validator) ValidateUserRegistration(r *UserRegistration) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required.Error("username_required"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
	)
}

// ValidateUploaderRegistration validates an uploader registration request.
// All fields including the proof image are required.
func (v *Validator) ValidateUploaderRegistration(r *UploaderRegistration) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&r.Age,
			validation.Required.Error("age_required"),
			validation.Min(18).Error("must_be_adult"),
			validation.Max(120).Error("invalid_age"),
		),
		validation.Field(&r.Qualification,
			validation.Required.Error("qualification_required"),
		),
		validation.Field(&r.Proof,
			validation.Required.Error("proof_required"),
		),
		validation.Field(&r.ProofMimeType,
			validation.Required.Error("proof_mime_type_required"),
			validation.By(imageMimeTypeRule),
		),
	)
}

// ValidateDraftSubmission validates a draft submission. Both content and
// image are required, and the image must be a recognized image type.
func (v *Validator) ValidateDraftSubmission(d *DraftSubmission) error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&d.Image,
			validation.Required.Error("image_required"),
		),
		validation.Field(&d.MimeType,
			validation.Required.Error("mime_type_required"),
			validation.By(imageMimeTypeRule),
		),
	)
}

// imageMimeTypeRule accepts any image/* media type.
func imageMimeTypeRule(value interface{}) error {
	s, ok := value.(string)
	if !ok || s == "" {
		return nil
	}
	if !strings.HasPrefix(s, "image/") {
		return validation.NewError("not_an_image", "file must be an image")
	}
	return nil
}
