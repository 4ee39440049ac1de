package users

import "time"

// User is a registered account. Username is stored lowercase; the hash
// and salt are the argon2id password material persisted side by side.
// Records are created once at registration and never mutated afterwards.
type User struct {
	ID           string
	UserName     string
	PasswordHash []byte
	PasswordSalt []byte
	CreatedAt    time.Time
}
