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

type solutionStore struct {
	*MYSQLStore
}

// Solutions returns an object implementing the solutions interface
func (ms *MYSQLStore) Solutions() dependency.Solutions {
	return &solutionStore{
		MYSQLStore: ms,
	}
}

const solutionColumns = `id, slug, title, description, icon, image, sort_order, is_active, created_at, updated_at`

func (ss *solutionStore) AddSolution(ctx context.Context, in *entity.SolutionInsert) (*entity.Solution, error) {
	if err := entity.ValidateSolutionInsert(in); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	err := ExecNamed(ctx, ss.DB(), `
	INSERT INTO solutions (id, slug, title, description, icon, image, sort_order, is_active)
	VALUES (:id, :slug, :title, :description, :icon, :image, :sortOrder, :isActive)`,
		map[string]any{
			"id":          id,
			"slug":        in.Slug,
			"title":       in.Title,
			"description": in.Description,
			"icon":        in.Icon,
			"image":       in.Image,
			"sortOrder":   in.Order,
			"isActive":    in.IsActive,
		})
	if err != nil {
		if ss.IsErrUniqueViolation(err) {
			return nil, &entity.ValidationError{Field: "slug", Message: fmt.Sprintf("slug %q already exists", in.Slug)}
		}
		return nil, fmt.Errorf("failed to add solution: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM solutions WHERE id = :id`, solutionColumns)
	solution, err := QueryNamedOne[entity.Solution](ctx, ss.DB(), query, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get solution by id: %w", err)
	}
	return &solution, nil
}

func (ss *solutionStore) GetActiveSolutions(ctx context.Context) ([]entity.Solution, error) {
	query := fmt.Sprintf(`
	SELECT %s FROM solutions WHERE is_active = TRUE ORDER BY sort_order ASC`, solutionColumns)
	solutions, err := QueryListNamed[entity.Solution](ctx, ss.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to get solutions: %w", err)
	}
	return solutions, nil
}

func (ss *solutionStore) GetSolutionBySlug(ctx context.Context, slug string) (*entity.Solution, error) {
	query := fmt.Sprintf(`SELECT %s FROM solutions WHERE slug = :slug`, solutionColumns)
	solution, err := QueryNamedOne[entity.Solution](ctx, ss.DB(), query, map[string]any{"slug": slug})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get solution by slug: %w", err)
	}
	return &solution, nil
}

func (ss *solutionStore) UpdateSolution(ctx context.Context, slug string, in *entity.SolutionInsert) (*entity.Solution, error) {
	if err := entity.ValidateSolutionInsert(in); err != nil {
		return nil, err
	}

	if _, err := ss.GetSolutionBySlug(ctx, slug); err != nil {
		return nil, err
	}

	err := ExecNamed(ctx, ss.DB(), `
	UPDATE solutions SET
		slug = :newSlug,
		title = :title,
		description = :description,
		icon = :icon,
		image = :image,
		sort_order = :sortOrder,
		is_active = :isActive
	WHERE slug = :slug`,
		map[string]any{
			"slug":        slug,
			"newSlug":     in.Slug,
			"title":       in.Title,
			"description": in.Description,
			"icon":        in.Icon,
			"image":       in.Image,
			"sortOrder":   in.Order,
			"isActive":    in.IsActive,
		})
	if err != nil {
		if ss.IsErrUniqueViolation(err) {
			return nil, &entity.ValidationError{Field: "slug", Message: fmt.Sprintf("slug %q already exists", in.Slug)}
		}
		return nil, fmt.Errorf("failed to update solution: %w", err)
	}

	return ss.GetSolutionBySlug(ctx, in.Slug)
}

func (ss *solutionStore) DeleteSolution(ctx context.Context, slug string) error {
	n, err := ExecNamedRows(ctx, ss.DB(), `DELETE FROM solutions WHERE slug = :slug`, map[string]any{
		"slug": slug,
	})
	if err != nil {
		return fmt.Errorf("failed to delete solution: %w", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
