package entity

import (
	"strings"
	"time"
)

// Client is a customer logo shown on the landing page.
type Client struct {
	Id        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
	ClientInsert
}

type ClientInsert struct {
	Name     string `db:"name" json:"name"`
	Logo     string `db:"logo" json:"logo"`
	Order    int    `db:"sort_order" json:"order"`
	IsActive bool   `db:"is_active" json:"is_active"`
}

// ValidateClientInsert checks a create or full update payload.
func ValidateClientInsert(in *ClientInsert) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if strings.TrimSpace(in.Logo) == "" {
		return &ValidationError{Field: "logo", Message: "logo is required"}
	}
	if in.Order < 0 {
		return &ValidationError{Field: "order", Message: "order must not be negative"}
	}
	return nil
}
