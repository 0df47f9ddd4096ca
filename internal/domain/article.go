package domain

// Article represents a published news article. Articles are immutable
// once published; there are no update or delete operations.
type Article struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
	// Thumbnail is either a base64-encoded image or a remote URL
	// (seed articles reference picsum.photos).
	Thumbnail    string   `json:"thumbnail"`
	Topics       []string `json:"topics"`
	PublishDate  string   `json:"publishDate"` // RFC3339
	UploaderID   string   `json:"uploaderId"`
	UploaderName string   `json:"uploaderName"`
}

// VerificationDraft is the transient bundle of content, thumbnail and
// classified topics awaiting uploader confirmation. It is never persisted.
type VerificationDraft struct {
	ID        string   `json:"id"`
	Content   string   `json:"content"`
	Thumbnail string   `json:"thumbnail"` // base64
	MimeType  string   `json:"mimeType"`
	Topics    []string `json:"topics"`
}

// ValidExportFormats contains all supported article export formats.
var ValidExportFormats = []string{"csv", "ndjson"}

// IsValidExportFormat checks if an export format is supported.
func IsValidExportFormat(format string) bool {
	for _, f := range ValidExportFormats {
		if f == format {
			return true
		}
	}
	return false
}
