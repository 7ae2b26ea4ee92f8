package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atlasdigitalize/atlas-website-backend/internal/entity"
)

// GetInsightSeo returns the explicit admin overrides for an insight, or nil
// when none were ever set. Nil is not an error: resolution falls back to
// values derived from the insight.
func (is *insightStore) GetInsightSeo(ctx context.Context, insightId string) (*entity.InsightSeo, error) {
	seo, err := QueryNamedOne[entity.InsightSeo](ctx, is.DB(), `
	SELECT insight_id, title, description, author, robots
	FROM insight_seo WHERE insight_id = :insightId`, map[string]any{
		"insightId": insightId,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get insight seo: %w", err)
	}
	return &seo, nil
}

func (is *insightStore) SetInsightSeo(ctx context.Context, slug string, seo *entity.InsightSeo) error {
	insight, err := is.GetInsightBySlug(ctx, slug)
	if err != nil {
		return err
	}

	err = ExecNamed(ctx, is.DB(), `
	INSERT INTO insight_seo (insight_id, title, description, author, robots)
	VALUES (:insightId, :title, :description, :author, :robots)
	ON DUPLICATE KEY UPDATE
		title = :title,
		description = :description,
		author = :author,
		robots = :robots`, map[string]any{
		"insightId":   insight.Id,
		"title":       seo.Title,
		"description": seo.Description,
		"author":      seo.Author,
		"robots":      seo.Robots,
	})
	if err != nil {
		return fmt.Errorf("failed to set insight seo: %w", err)
	}
	return nil
}
