package model

// User is the identity record behind ownership checks. A nil *User is
// the anonymous viewer.
type User struct {
	ID           int64   `json:"id"`
	Username     string  `json:"username"`
	Email        *string `json:"email,omitempty"`
	PasswordHash string  `json:"-"`
}
