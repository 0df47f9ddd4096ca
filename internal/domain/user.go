package domain

// User represents a registered reader identified by email.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
