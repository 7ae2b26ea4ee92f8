package entity

import (
	"fmt"
	"strings"
	"time"
)

// Project is a delivered case study.
type Project struct {
	Id        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
	ProjectInsert
}

type ProjectInsert struct {
	Industry   LocalizedText `db:"industry" json:"industry"`
	SystemType LocalizedText `db:"system_type" json:"system_type"`
	Title      LocalizedText `db:"title" json:"title"`
	Scope      LocalizedText `db:"scope" json:"scope"`
	Outcome    LocalizedText `db:"outcome" json:"outcome"`
	Featured   bool          `db:"featured" json:"featured"`
	// Order sorts ascending; ties break by creation time, most recent first.
	Order int `db:"sort_order" json:"order"`
}

// ProjectFilters narrows the projects listing. Substring filters match either
// locale case-insensitively.
type ProjectFilters struct {
	Industry   string
	SystemType string
	// Featured is tri-state: nil means no filter.
	Featured *bool
}

// ProjectFilterValues are the distinct locale-map values across all projects,
// deduplicated by the full map rather than per locale.
type ProjectFilterValues struct {
	Industries  []LocalizedText `json:"industries"`
	SystemTypes []LocalizedText `json:"system_types"`
}

// ValidateProjectInsert checks a create or full update payload.
func ValidateProjectInsert(in *ProjectInsert) error {
	localized := map[string]LocalizedText{
		"industry":    in.Industry,
		"system_type": in.SystemType,
		"title":       in.Title,
		"scope":       in.Scope,
		"outcome":     in.Outcome,
	}
	for _, field := range []string{"industry", "system_type", "title", "scope", "outcome"} {
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
