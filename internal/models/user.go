package models

// User represents a registered account on the platform.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password" json:"-"` // Never expose this to the client
}
