package entity

import "time"

// AboutPage is a singleton-like record: the public site reads the first
// active row.
type AboutPage struct {
	Id        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
	AboutPageInsert
}

type AboutPageInsert struct {
	YearsExperience  int           `db:"years_experience" json:"years_experience"`
	SystemsDelivered int           `db:"systems_delivered" json:"systems_delivered"`
	IndustriesServed int           `db:"industries_served" json:"industries_served"`
	Headline         LocalizedText `db:"headline" json:"headline"`
	Subheadline      LocalizedText `db:"subheadline" json:"subheadline"`
	Story            LocalizedText `db:"story" json:"story"`
	Mission          LocalizedText `db:"mission" json:"mission"`
	Vision           LocalizedText `db:"vision" json:"vision"`
	IsActive         bool          `db:"is_active" json:"is_active"`
}

// ValidateAboutPageInsert checks metric counters; locale maps on the about
// page may be partially translated and are rendered with fallback.
func ValidateAboutPageInsert(in *AboutPageInsert) error {
	for field, v := range map[string]int{
		"years_experience":  in.YearsExperience,
		"systems_delivered": in.SystemsDelivered,
		"industries_served": in.IndustriesServed,
	} {
		if v < 0 {
			return &ValidationError{Field: field, Message: "must not be negative"}
		}
	}
	return nil
}
