package models

// User is a registered account. PasswordHash holds the bcrypt hash and is
// never returned to clients.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}
