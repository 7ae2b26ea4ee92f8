package entity

import (
	"fmt"
	"strings"
	"time"
)

const defaultReadTime = "5 min"

// Insight is a published article. Textual fields are locale maps.
type Insight struct {
	Id        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
	InsightInsert
}

type InsightInsert struct {
	Slug          string        `db:"slug" json:"slug"`
	Title         LocalizedText `db:"title" json:"title"`
	Excerpt       LocalizedText `db:"excerpt" json:"excerpt"`
	Content       LocalizedText `db:"content" json:"content"`
	Category      LocalizedText `db:"category" json:"category"`
	ReadTime      string        `db:"read_time" json:"read_time"`
	Published     bool          `db:"published" json:"published"`
	FeaturedImage string        `db:"featured_image" json:"featured_image,omitempty"`
}

// InsightFilters narrows the insights listing.
type InsightFilters struct {
	// Category matches as a case-insensitive substring of either locale.
	Category string
	// Published is tri-state: nil means no filter.
	Published *bool
}

// InsightFeedback is one helpfulness vote keyed by (insight, requester IP).
// IP is a best-effort identity: requesters behind a shared NAT collapse into
// one vote and a requester changing networks can vote again.
type InsightFeedback struct {
	Id        int       `db:"id" json:"id"`
	InsightId string    `db:"insight_id" json:"insight_id"`
	IpAddress string    `db:"ip_address" json:"ip_address"`
	IsHelpful bool      `db:"is_helpful" json:"is_helpful"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// FeedbackCounts are aggregate vote totals, recomputed on every read.
type FeedbackCounts struct {
	HelpfulCount    int `json:"helpful_count"`
	NotHelpfulCount int `json:"not_helpful_count"`
}

// InsightSeo carries explicit admin-entered SEO overrides for one insight.
// Absent fields fall back to values derived from the insight itself.
type InsightSeo struct {
	InsightId   string `db:"insight_id" json:"-"`
	Title       string `db:"title" json:"title,omitempty"`
	Description string `db:"description" json:"description,omitempty"`
	Author      string `db:"author" json:"author,omitempty"`
	Robots      string `db:"robots" json:"robots,omitempty"`
}

var slugAllowed = func(r rune) bool {
	return r == '-' || r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// ValidateSlug enforces URL-safe lowercase slugs.
func ValidateSlug(slug string) error {
	if slug == "" {
		return &ValidationError{Field: "slug", Message: "slug is required"}
	}
	for _, r := range slug {
		if !slugAllowed(r) {
			return &ValidationError{Field: "slug", Message: fmt.Sprintf("invalid character %q in slug", r)}
		}
	}
	return nil
}

// ValidateInsightInsert checks the payload for a create or full update. Every
// locale-keyed field must carry all supported locales before the insight can
// be exposed publicly.
func ValidateInsightInsert(in *InsightInsert) error {
	in.Slug = strings.TrimSpace(in.Slug)
	if err := ValidateSlug(in.Slug); err != nil {
		return err
	}
	localized := map[string]LocalizedText{
		"title":    in.Title,
		"excerpt":  in.Excerpt,
		"content":  in.Content,
		"category": in.Category,
	}
	for _, field := range []string{"title", "excerpt", "content", "category"} {
		if missing := localized[field].MissingLocales(); len(missing) > 0 {
			return &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("missing translations: %s", strings.Join(missing, ", ")),
			}
		}
	}
	if strings.TrimSpace(in.ReadTime) == "" {
		in.ReadTime = defaultReadTime
	}
	return nil
}
