package models

// User mirrors the record layout of the external user store. The username
// is the lookup key and must stay unique; the password hash is stored
// exactly as the client supplied it.
type User struct {
	ID           string `gorm:"primaryKey"               json:"id"`
	Username     string `gorm:"uniqueIndex;not null"     json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Email        string `gorm:"not null"                 json:"email"`
}
