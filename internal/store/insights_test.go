package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasdigitalize/atlas-website-backend/internal/entity"
)

func insightFixture(slug, categoryEN, categoryID string, published bool) *entity.InsightInsert {
	return &entity.InsightInsert{
		Slug:      slug,
		Title:     entity.LocalizedText{"en": "Title " + slug, "id": "Judul " + slug},
		Excerpt:   entity.LocalizedText{"en": "Excerpt", "id": "Kutipan"},
		Content:   entity.LocalizedText{"en": "Content", "id": "Konten"},
		Category:  entity.LocalizedText{"en": categoryEN, "id": categoryID},
		ReadTime:  "5 min",
		Published: published,
	}
}

func TestInsightsCRUD(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	is := db.Insights()
	ctx := context.Background()

	in, err := is.AddInsight(ctx, insightFixture("first-insight", "Technology", "Teknologi", true))
	require.NoError(t, err)
	assert.NotEmpty(t, in.Id)
	assert.Equal(t, "first-insight", in.Slug)

	// duplicate slug refuses with a validation error
	_, err = is.AddInsight(ctx, insightFixture("first-insight", "Technology", "Teknologi", true))
	require.Error(t, err)
	ve, ok := entity.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "slug", ve.Field)

	got, err := is.GetInsightBySlug(ctx, "first-insight")
	require.NoError(t, err)
	assert.Equal(t, in.Id, got.Id)
	assert.Equal(t, "Title first-insight", got.Title["en"])

	_, err = is.GetInsightBySlug(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	upd := insightFixture("first-insight", "Strategy", "Strategi", false)
	updated, err := is.UpdateInsight(ctx, "first-insight", upd)
	require.NoError(t, err)
	assert.Equal(t, "Strategy", updated.Category["en"])
	assert.False(t, updated.Published)

	_, err = is.UpdateInsight(ctx, "missing", upd)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	err = is.DeleteInsight(ctx, "first-insight")
	assert.NoError(t, err)
	err = is.DeleteInsight(ctx, "first-insight")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestInsightsPagedFilters(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	is := db.Insights()
	ctx := context.Background()

	_, err := is.AddInsight(ctx, insightFixture("tech-pub", "Technology", "Teknologi", true))
	require.NoError(t, err)
	_, err = is.AddInsight(ctx, insightFixture("tech-draft", "Technology", "Teknologi", false))
	require.NoError(t, err)
	_, err = is.AddInsight(ctx, insightFixture("strat-pub", "Strategy", "Strategi", true))
	require.NoError(t, err)

	all, err := is.GetInsightsPaged(ctx, 20, 0, entity.InsightFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	published := true
	pub, err := is.GetInsightsPaged(ctx, 20, 0, entity.InsightFilters{Published: &published})
	require.NoError(t, err)
	assert.Len(t, pub, 2)

	unpublished := false
	draft, err := is.GetInsightsPaged(ctx, 20, 0, entity.InsightFilters{Published: &unpublished})
	require.NoError(t, err)
	assert.Len(t, draft, 1)
	assert.Equal(t, "tech-draft", draft[0].Slug)

	// category substring matches either locale, case-insensitive
	tech, err := is.GetInsightsPaged(ctx, 20, 0, entity.InsightFilters{Category: "teknolo"})
	require.NoError(t, err)
	assert.Len(t, tech, 2)

	strat, err := is.GetInsightsPaged(ctx, 20, 0, entity.InsightFilters{Category: "STRATEG"})
	require.NoError(t, err)
	assert.Len(t, strat, 1)

	// paging window
	one, err := is.GetInsightsPaged(ctx, 1, 0, entity.InsightFilters{})
	require.NoError(t, err)
	assert.Len(t, one, 1)
	rest, err := is.GetInsightsPaged(ctx, 20, 1, entity.InsightFilters{})
	require.NoError(t, err)
	assert.Len(t, rest, 2)

	// no matches yields an empty slice, never nil
	none, err := is.GetInsightsPaged(ctx, 20, 0, entity.InsightFilters{Category: "nonexistent"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestRelatedInsights(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	is := db.Insights()
	ctx := context.Background()

	_, err := is.AddInsight(ctx, insightFixture("source", "Technology", "Teknologi", true))
	require.NoError(t, err)
	_, err = is.AddInsight(ctx, insightFixture("same-en", "Technology", "Lainnya", true))
	require.NoError(t, err)
	_, err = is.AddInsight(ctx, insightFixture("same-id", "Other", "Teknologi", true))
	require.NoError(t, err)
	_, err = is.AddInsight(ctx, insightFixture("same-but-draft", "Technology", "Teknologi", false))
	require.NoError(t, err)
	_, err = is.AddInsight(ctx, insightFixture("unrelated", "Finance", "Keuangan", true))
	require.NoError(t, err)

	related, err := is.GetRelatedInsights(ctx, "source", 3)
	require.NoError(t, err)
	require.Len(t, related, 2)
	for _, r := range related {
		assert.NotEqual(t, "source", r.Slug)
		assert.NotEqual(t, "same-but-draft", r.Slug)
		assert.NotEqual(t, "unrelated", r.Slug)
	}

	// unknown source slug is a lookup failure, not an empty result
	_, err = is.GetRelatedInsights(ctx, "missing", 3)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestInsightCategories(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	is := db.Insights()
	ctx := context.Background()

	_, err := is.AddInsight(ctx, insightFixture("a", "Technology", "Teknologi", true))
	require.NoError(t, err)
	_, err = is.AddInsight(ctx, insightFixture("b", "Technology", "Teknologi", true))
	require.NoError(t, err)
	_, err = is.AddInsight(ctx, insightFixture("c", "Strategy", "Strategi", true))
	require.NoError(t, err)
	// drafts do not contribute categories
	_, err = is.AddInsight(ctx, insightFixture("d", "Finance", "Keuangan", false))
	require.NoError(t, err)

	cats, err := is.GetInsightCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 2)
}

func TestFeedbackUpsert(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	is := db.Insights()
	ctx := context.Background()

	_, err := is.AddInsight(ctx, insightFixture("voted", "Technology", "Teknologi", true))
	require.NoError(t, err)

	counts, err := is.UpsertFeedback(ctx, "voted", "203.0.113.7", true)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.HelpfulCount)
	assert.Equal(t, 0, counts.NotHelpfulCount)

	// same ip flips its vote instead of adding one
	counts, err = is.UpsertFeedback(ctx, "voted", "203.0.113.7", false)
	require.NoError(t, err)
	assert.Equal(t, 0, counts.HelpfulCount)
	assert.Equal(t, 1, counts.NotHelpfulCount)

	// another ip adds a second vote
	counts, err = is.UpsertFeedback(ctx, "voted", "198.51.100.2", true)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.HelpfulCount)
	assert.Equal(t, 1, counts.NotHelpfulCount)

	stats, err := is.GetFeedbackCounts(ctx, "voted")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.HelpfulCount)
	assert.Equal(t, 1, stats.NotHelpfulCount)

	_, err = is.UpsertFeedback(ctx, "missing", "203.0.113.7", true)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestInsightSeoOverrides(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	is := db.Insights()
	ctx := context.Background()

	in, err := is.AddInsight(ctx, insightFixture("seo-insight", "Technology", "Teknologi", true))
	require.NoError(t, err)

	// no row yet means no overrides, not an error
	seo, err := is.GetInsightSeo(ctx, in.Id)
	require.NoError(t, err)
	assert.Nil(t, seo)

	err = is.SetInsightSeo(ctx, "seo-insight", &entity.InsightSeo{
		Title:  "Custom",
		Robots: "noindex",
	})
	require.NoError(t, err)

	seo, err = is.GetInsightSeo(ctx, in.Id)
	require.NoError(t, err)
	require.NotNil(t, seo)
	assert.Equal(t, "Custom", seo.Title)
	assert.Equal(t, "noindex", seo.Robots)

	// second write replaces the first
	err = is.SetInsightSeo(ctx, "seo-insight", &entity.InsightSeo{Title: "Newer"})
	require.NoError(t, err)
	seo, err = is.GetInsightSeo(ctx, in.Id)
	require.NoError(t, err)
	assert.Equal(t, "Newer", seo.Title)

	err = is.SetInsightSeo(ctx, "missing", &entity.InsightSeo{Title: "x"})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
