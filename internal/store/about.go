package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/atlasdigitalize/atlas-website-backend/internal/dependency"
	"github.com/atlasdigitalize/atlas-website-backend/internal/entity"
)

type aboutStore struct {
	*MYSQLStore
}

// About returns an object implementing the about page interface
func (ms *MYSQLStore) About() dependency.About {
	return &aboutStore{
		MYSQLStore: ms,
	}
}

const aboutColumns = `id, years_experience, systems_delivered, industries_served,
	headline, subheadline, story, mission, vision, is_active, created_at, updated_at`

func (as *aboutStore) AddAboutPage(ctx context.Context, in *entity.AboutPageInsert) (*entity.AboutPage, error) {
	if err := entity.ValidateAboutPageInsert(in); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	err := ExecNamed(ctx, as.DB(), `
	INSERT INTO about_pages (id, years_experience, systems_delivered, industries_served,
		headline, subheadline, story, mission, vision, is_active)
	VALUES (:id, :yearsExperience, :systemsDelivered, :industriesServed,
		:headline, :subheadline, :story, :mission, :vision, :isActive)`,
		map[string]any{
			"id":               id,
			"yearsExperience":  in.YearsExperience,
			"systemsDelivered": in.SystemsDelivered,
			"industriesServed": in.IndustriesServed,
			"headline":         in.Headline,
			"subheadline":      in.Subheadline,
			"story":            in.Story,
			"mission":          in.Mission,
			"vision":           in.Vision,
			"isActive":         in.IsActive,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to add about page: %w", err)
	}

	return as.getAboutPageById(ctx, id)
}

func (as *aboutStore) getAboutPageById(ctx context.Context, id string) (*entity.AboutPage, error) {
	query := fmt.Sprintf(`SELECT %s FROM about_pages WHERE id = :id`, aboutColumns)
	page, err := QueryNamedOne[entity.AboutPage](ctx, as.DB(), query, map[string]any{"id": id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get about page by id: %w", err)
	}
	return &page, nil
}

// GetActiveAboutPage picks the first active row; the table is singleton-like
// but not enforced as one.
func (as *aboutStore) GetActiveAboutPage(ctx context.Context) (*entity.AboutPage, error) {
	query := fmt.Sprintf(`
	SELECT %s FROM about_pages WHERE is_active = TRUE ORDER BY created_at ASC LIMIT 1`, aboutColumns)
	page, err := QueryNamedOne[entity.AboutPage](ctx, as.DB(), query, map[string]any{})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active about page: %w", err)
	}
	return &page, nil
}

func (as *aboutStore) UpdateAboutPage(ctx context.Context, id string, in *entity.AboutPageInsert) (*entity.AboutPage, error) {
	if err := entity.ValidateAboutPageInsert(in); err != nil {
		return nil, err
	}

	if _, err := as.getAboutPageById(ctx, id); err != nil {
		return nil, err
	}

	err := ExecNamed(ctx, as.DB(), `
	UPDATE about_pages SET
		years_experience = :yearsExperience,
		systems_delivered = :systemsDelivered,
		industries_served = :industriesServed,
		headline = :headline,
		subheadline = :subheadline,
		story = :story,
		mission = :mission,
		vision = :vision,
		is_active = :isActive
	WHERE id = :id`,
		map[string]any{
			"id":               id,
			"yearsExperience":  in.YearsExperience,
			"systemsDelivered": in.SystemsDelivered,
			"industriesServed": in.IndustriesServed,
			"headline":         in.Headline,
			"subheadline":      in.Subheadline,
			"story":            in.Story,
			"mission":          in.Mission,
			"vision":           in.Vision,
			"isActive":         in.IsActive,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to update about page: %w", err)
	}

	return as.getAboutPageById(ctx, id)
}

func (as *aboutStore) DeleteAboutPage(ctx context.Context, id string) error {
	n, err := ExecNamedRows(ctx, as.DB(), `DELETE FROM about_pages WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("failed to delete about page: %w", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
