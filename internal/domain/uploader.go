package domain

// Uploader represents a registered content creator. Uploaders are
// identified by an opaque generated ID rather than an email address.
type Uploader struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Qualification string `json:"qualification"`
	// QualificationProof holds the base64-encoded proof image.
	QualificationProof string `json:"qualificationProof"`
}
