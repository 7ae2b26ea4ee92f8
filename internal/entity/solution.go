package entity

import (
	"fmt"
	"strings"
	"time"
)

// Solution is a service offering shown on the solutions page.
type Solution struct {
	Id        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
	SolutionInsert
}

type SolutionInsert struct {
	Slug        string        `db:"slug" json:"slug"`
	Title       LocalizedText `db:"title" json:"title"`
	Description LocalizedText `db:"description" json:"description"`
	Icon        string        `db:"icon" json:"icon,omitempty"`
	Image       string        `db:"image" json:"image,omitempty"`
	Order       int           `db:"sort_order" json:"order"`
	IsActive    bool          `db:"is_active" json:"is_active"`
}

// ValidateSolutionInsert checks a create or full update payload.
func ValidateSolutionInsert(in *SolutionInsert) error {
	in.Slug = strings.TrimSpace(in.Slug)
	if err := ValidateSlug(in.Slug); err != nil {
		return err
	}
	localized := map[string]LocalizedText{
		"title":       in.Title,
		"description": in.Description,
	}
	for _, field := range []string{"title", "description"} {
		if missing := localized[field].MissingLocales(); len(missing) > 0 {
			return &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("missing translations: %s", strings.Join(missing, ", ")),
			}
		}
	}
	if in.Order < 0 {
		return &ValidationError{Field: "order", Message: "order must not be negative"}
	}
	return nil
}
