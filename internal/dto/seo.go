package dto

import (
	"strings"
	"time"

	"github.com/atlasdigitalize/atlas-website-backend/internal/entity"
)

// DefaultRobots is the robots directive used when no override is set.
const DefaultRobots = "index, follow"

// Seo is the resolved metadata for an insight detail page.
type Seo struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Author        string `json:"author,omitempty"`
	Robots        string `json:"robots"`
	Image         string `json:"image,omitempty"`
	Type          string `json:"type"`
	PublishedTime string `json:"published_time"`
	ModifiedTime  string `json:"modified_time"`
	Section       string `json:"section,omitempty"`
}

// ResolveSeo layers explicit admin overrides over values derived from the
// insight: title falls back to the English title then the slug, description
// to the English excerpt, image to the storage URL of the featured image.
// overrides may be nil.
func ResolveSeo(insight *entity.Insight, overrides *entity.InsightSeo, assetBaseURL string) Seo {
	seo := Seo{
		Robots:        DefaultRobots,
		Type:          "article",
		PublishedTime: insight.CreatedAt.Format(time.RFC3339),
		ModifiedTime:  insight.UpdatedAt.Format(time.RFC3339),
		Section:       insight.Category[entity.LocaleEN],
	}

	seo.Title = insight.Title[entity.LocaleEN]
	if seo.Title == "" {
		seo.Title = insight.Slug
	}
	seo.Description = insight.Excerpt[entity.LocaleEN]
	if insight.FeaturedImage != "" {
		seo.Image = assetURL(assetBaseURL, insight.FeaturedImage)
	}

	if overrides != nil {
		if overrides.Title != "" {
			seo.Title = overrides.Title
		}
		if overrides.Description != "" {
			seo.Description = overrides.Description
		}
		if overrides.Author != "" {
			seo.Author = overrides.Author
		}
		if overrides.Robots != "" {
			seo.Robots = overrides.Robots
		}
	}

	return seo
}

func assetURL(base, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}
