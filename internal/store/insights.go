package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/atlasdigitalize/atlas-website-backend/internal/dependency"
	"github.com/atlasdigitalize/atlas-website-backend/internal/entity"
)

type insightStore struct {
	*MYSQLStore
}

// Insights returns an object implementing the insights interface
func (ms *MYSQLStore) Insights() dependency.Insights {
	return &insightStore{
		MYSQLStore: ms,
	}
}

const insightColumns = `id, slug, title, excerpt, content, category, read_time, published, featured_image, created_at, updated_at`

func (is *insightStore) AddInsight(ctx context.Context, in *entity.InsightInsert) (*entity.Insight, error) {
	if err := entity.ValidateInsightInsert(in); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	err := ExecNamed(ctx, is.DB(), `
	INSERT INTO insights (id, slug, title, excerpt, content, category, read_time, published, featured_image)
	VALUES (:id, :slug, :title, :excerpt, :content, :category, :readTime, :published, :featuredImage)`,
		map[string]any{
			"id":            id,
			"slug":          in.Slug,
			"title":         in.Title,
			"excerpt":       in.Excerpt,
			"content":       in.Content,
			"category":      in.Category,
			"readTime":      in.ReadTime,
			"published":     in.Published,
			"featuredImage": in.FeaturedImage,
		})
	if err != nil {
		if is.IsErrUniqueViolation(err) {
			return nil, &entity.ValidationError{Field: "slug", Message: fmt.Sprintf("slug %q already exists", in.Slug)}
		}
		return nil, fmt.Errorf("failed to add insight: %w", err)
	}

	return is.getInsightById(ctx, id)
}

func (is *insightStore) getInsightById(ctx context.Context, id string) (*entity.Insight, error) {
	query := fmt.Sprintf(`SELECT %s FROM insights WHERE id = :id`, insightColumns)
	insight, err := QueryNamedOne[entity.Insight](ctx, is.DB(), query, map[string]any{"id": id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get insight by id: %w", err)
	}
	return &insight, nil
}

func (is *insightStore) GetInsightBySlug(ctx context.Context, slug string) (*entity.Insight, error) {
	query := fmt.Sprintf(`SELECT %s FROM insights WHERE slug = :slug`, insightColumns)
	insight, err := QueryNamedOne[entity.Insight](ctx, is.DB(), query, map[string]any{"slug": slug})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get insight by slug: %w", err)
	}
	return &insight, nil
}

func (is *insightStore) GetInsightsPaged(ctx context.Context, limit, offset int, filters entity.InsightFilters) ([]entity.Insight, error) {
	where := []string{"1 = 1"}
	params := map[string]any{
		"limit":  limit,
		"offset": offset,
	}

	if filters.Category != "" {
		where = append(where, `(LOWER(JSON_UNQUOTE(JSON_EXTRACT(category, '$.en'))) LIKE :category
			OR LOWER(JSON_UNQUOTE(JSON_EXTRACT(category, '$.id'))) LIKE :category)`)
		params["category"] = "%" + strings.ToLower(filters.Category) + "%"
	}
	if filters.Published != nil {
		where = append(where, "published = :published")
		params["published"] = *filters.Published
	}

	query := fmt.Sprintf(`
	SELECT %s FROM insights
	WHERE %s
	ORDER BY created_at DESC
	LIMIT :limit OFFSET :offset`, insightColumns, strings.Join(where, " AND "))

	insights, err := QueryListNamed[entity.Insight](ctx, is.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get insights: %w", err)
	}
	return insights, nil
}

// GetRelatedInsights matches a candidate when its category equals the source
// category in the same locale (en against en, id against id, never across).
func (is *insightStore) GetRelatedInsights(ctx context.Context, slug string, limit int) ([]entity.Insight, error) {
	src, err := is.GetInsightBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
	SELECT %s FROM insights
	WHERE published = TRUE
	  AND slug != :slug
	  AND (JSON_UNQUOTE(JSON_EXTRACT(category, '$.en')) = :categoryEn
	    OR JSON_UNQUOTE(JSON_EXTRACT(category, '$.id')) = :categoryId)
	ORDER BY created_at DESC
	LIMIT :limit`, insightColumns)

	related, err := QueryListNamed[entity.Insight](ctx, is.DB(), query, map[string]any{
		"slug":       slug,
		"categoryEn": src.Category[entity.LocaleEN],
		"categoryId": src.Category[entity.LocaleID],
		"limit":      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get related insights: %w", err)
	}
	return related, nil
}

func (is *insightStore) GetInsightCategories(ctx context.Context) ([]entity.LocalizedText, error) {
	type row struct {
		Category entity.LocalizedText `db:"category"`
	}
	rows, err := QueryListNamed[row](ctx, is.DB(), `
	SELECT category FROM insights WHERE published = TRUE ORDER BY created_at DESC`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to get insight categories: %w", err)
	}

	seen := make(map[string]bool, len(rows))
	categories := make([]entity.LocalizedText, 0, len(rows))
	for _, r := range rows {
		if len(r.Category) == 0 || seen[r.Category.Key()] {
			continue
		}
		seen[r.Category.Key()] = true
		categories = append(categories, r.Category)
	}
	return categories, nil
}

func (is *insightStore) UpdateInsight(ctx context.Context, slug string, in *entity.InsightInsert) (*entity.Insight, error) {
	if err := entity.ValidateInsightInsert(in); err != nil {
		return nil, err
	}

	if _, err := is.GetInsightBySlug(ctx, slug); err != nil {
		return nil, err
	}

	err := ExecNamed(ctx, is.DB(), `
	UPDATE insights SET
		slug = :newSlug,
		title = :title,
		excerpt = :excerpt,
		content = :content,
		category = :category,
		read_time = :readTime,
		published = :published,
		featured_image = :featuredImage
	WHERE slug = :slug`,
		map[string]any{
			"slug":          slug,
			"newSlug":       in.Slug,
			"title":         in.Title,
			"excerpt":       in.Excerpt,
			"content":       in.Content,
			"category":      in.Category,
			"readTime":      in.ReadTime,
			"published":     in.Published,
			"featuredImage": in.FeaturedImage,
		})
	if err != nil {
		if is.IsErrUniqueViolation(err) {
			return nil, &entity.ValidationError{Field: "slug", Message: fmt.Sprintf("slug %q already exists", in.Slug)}
		}
		return nil, fmt.Errorf("failed to update insight: %w", err)
	}

	return is.GetInsightBySlug(ctx, in.Slug)
}

func (is *insightStore) DeleteInsight(ctx context.Context, slug string) error {
	n, err := ExecNamedRows(ctx, is.DB(), `DELETE FROM insights WHERE slug = :slug`, map[string]any{
		"slug": slug,
	})
	if err != nil {
		return fmt.Errorf("failed to delete insight: %w", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
