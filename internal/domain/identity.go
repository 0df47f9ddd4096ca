package domain

// IdentityKind discriminates the current identity union.
type IdentityKind string

const (
	IdentityNone     IdentityKind = "none"
	IdentityUser     IdentityKind = "user"
	IdentityUploader IdentityKind = "uploader"
)

// Identity is the tagged union of the two independent session pointers.
// Exactly one of User/Uploader is set for the matching kind; both are nil
// for IdentityNone. When both sessions are active the uploader wins, since
// the uploader session gates publishing.
type Identity struct {
	Kind     IdentityKind `json:"kind"`
	User     *User        `json:"user,omitempty"`
	Uploader *Uploader    `json:"uploader,omitempty"`
}
