package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/atlasdigitalize/atlas-website-backend/internal/entity"
)

func testInsight() *entity.Insight {
	return &entity.Insight{
		Id:        "b7a9e7ce-8e67-4f0c-9f27-04f5e9a3c111",
		CreatedAt: time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		InsightInsert: entity.InsightInsert{
			Slug:          "digital-transformation",
			Title:         entity.LocalizedText{"en": "Digital Transformation", "id": "Transformasi Digital"},
			Excerpt:       entity.LocalizedText{"en": "Why it matters.", "id": "Mengapa penting."},
			Category:      entity.LocalizedText{"en": "Strategy", "id": "Strategi"},
			FeaturedImage: "insights/transform.jpg",
		},
	}
}

func TestResolveSeoDerived(t *testing.T) {
	seo := ResolveSeo(testInsight(), nil, "https://cdn.example.com/storage")

	assert.Equal(t, "Digital Transformation", seo.Title)
	assert.Equal(t, "Why it matters.", seo.Description)
	assert.Equal(t, DefaultRobots, seo.Robots)
	assert.Equal(t, "article", seo.Type)
	assert.Equal(t, "Strategy", seo.Section)
	assert.Equal(t, "https://cdn.example.com/storage/insights/transform.jpg", seo.Image)
	assert.Equal(t, "2026-02-10T08:00:00Z", seo.PublishedTime)
	assert.Equal(t, "2026-03-01T09:30:00Z", seo.ModifiedTime)
	assert.Empty(t, seo.Author)
}

func TestResolveSeoOverrides(t *testing.T) {
	overrides := &entity.InsightSeo{
		Title:       "Custom Title",
		Description: "Custom description",
		Author:      "Atlas Team",
		Robots:      "noindex, nofollow",
	}

	seo := ResolveSeo(testInsight(), overrides, "https://cdn.example.com")

	assert.Equal(t, "Custom Title", seo.Title)
	assert.Equal(t, "Custom description", seo.Description)
	assert.Equal(t, "Atlas Team", seo.Author)
	assert.Equal(t, "noindex, nofollow", seo.Robots)
	// derived fields stay derived
	assert.Equal(t, "article", seo.Type)
	assert.Equal(t, "Strategy", seo.Section)
}

func TestResolveSeoPartialOverrides(t *testing.T) {
	overrides := &entity.InsightSeo{Title: "Only the title"}

	seo := ResolveSeo(testInsight(), overrides, "https://cdn.example.com")

	assert.Equal(t, "Only the title", seo.Title)
	assert.Equal(t, "Why it matters.", seo.Description)
	assert.Equal(t, DefaultRobots, seo.Robots)
}

func TestResolveSeoFallbacks(t *testing.T) {
	insight := testInsight()
	insight.Title = entity.LocalizedText{"id": "Hanya Indonesia"}
	insight.FeaturedImage = ""

	seo := ResolveSeo(insight, nil, "https://cdn.example.com")

	// no english title: the slug stands in
	assert.Equal(t, "digital-transformation", seo.Title)
	assert.Empty(t, seo.Image)

	// absolute image urls pass through untouched
	insight.FeaturedImage = "https://elsewhere.example.com/pic.png"
	seo = ResolveSeo(insight, nil, "https://cdn.example.com")
	assert.Equal(t, "https://elsewhere.example.com/pic.png", seo.Image)
}

func TestFormattedDates(t *testing.T) {
	d := time.Date(2026, 5, 9, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "May 9, 2026", FormattedDateEN(d))
	assert.Equal(t, "Mei 9, 2026", FormattedDateID(d))

	aug := time.Date(2025, 8, 17, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Aug 17, 2025", FormattedDateEN(aug))
	assert.Equal(t, "Agt 17, 2025", FormattedDateID(aug))
}
