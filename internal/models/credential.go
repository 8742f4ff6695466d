package models

// Credential maps a username to its hashed secret. Usernames are unique
// across the store; the plaintext secret is never persisted.
type Credential struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	HashedSecret string `gorm:"not null" json:"-"`
}
