package entity

import "time"

// Admin is an authenticated panel user. Usernames are stored lowercased.
type Admin struct {
	Id           int       `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
