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

type projectStore struct {
	*MYSQLStore
}

// Projects returns an object implementing the projects interface
func (ms *MYSQLStore) Projects() dependency.Projects {
	return &projectStore{
		MYSQLStore: ms,
	}
}

const projectColumns = `id, industry, system_type, title, scope, outcome, featured, sort_order, created_at, updated_at`

func (ps *projectStore) AddProject(ctx context.Context, in *entity.ProjectInsert) (*entity.Project, error) {
	if err := entity.ValidateProjectInsert(in); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	err := ExecNamed(ctx, ps.DB(), `
	INSERT INTO projects (id, industry, system_type, title, scope, outcome, featured, sort_order)
	VALUES (:id, :industry, :systemType, :title, :scope, :outcome, :featured, :sortOrder)`,
		map[string]any{
			"id":         id,
			"industry":   in.Industry,
			"systemType": in.SystemType,
			"title":      in.Title,
			"scope":      in.Scope,
			"outcome":    in.Outcome,
			"featured":   in.Featured,
			"sortOrder":  in.Order,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to add project: %w", err)
	}

	return ps.GetProjectById(ctx, id)
}

func (ps *projectStore) GetProjectById(ctx context.Context, id string) (*entity.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = :id`, projectColumns)
	project, err := QueryNamedOne[entity.Project](ctx, ps.DB(), query, map[string]any{"id": id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project by id: %w", err)
	}
	return &project, nil
}

// GetProjectsPaged orders by sort order ascending with creation time
// descending as the tie break, then applies the page window.
func (ps *projectStore) GetProjectsPaged(ctx context.Context, limit, offset int, filters entity.ProjectFilters) ([]entity.Project, error) {
	where := []string{"1 = 1"}
	params := map[string]any{
		"limit":  limit,
		"offset": offset,
	}

	if filters.Industry != "" {
		where = append(where, `(LOWER(JSON_UNQUOTE(JSON_EXTRACT(industry, '$.en'))) LIKE :industry
			OR LOWER(JSON_UNQUOTE(JSON_EXTRACT(industry, '$.id'))) LIKE :industry)`)
		params["industry"] = "%" + strings.ToLower(filters.Industry) + "%"
	}
	if filters.SystemType != "" {
		where = append(where, `(LOWER(JSON_UNQUOTE(JSON_EXTRACT(system_type, '$.en'))) LIKE :systemType
			OR LOWER(JSON_UNQUOTE(JSON_EXTRACT(system_type, '$.id'))) LIKE :systemType)`)
		params["systemType"] = "%" + strings.ToLower(filters.SystemType) + "%"
	}
	if filters.Featured != nil {
		where = append(where, "featured = :featured")
		params["featured"] = *filters.Featured
	}

	query := fmt.Sprintf(`
	SELECT %s FROM projects
	WHERE %s
	ORDER BY sort_order ASC, created_at DESC
	LIMIT :limit OFFSET :offset`, projectColumns, strings.Join(where, " AND "))

	projects, err := QueryListNamed[entity.Project](ctx, ps.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	return projects, nil
}

// GetProjectFilterValues loads every project and deduplicates industry and
// system type by the whole locale map. This does not scale with the project
// count and collapses values only when both locales match; behavior kept as
// the consumers expect it.
func (ps *projectStore) GetProjectFilterValues(ctx context.Context) (*entity.ProjectFilterValues, error) {
	type row struct {
		Industry   entity.LocalizedText `db:"industry"`
		SystemType entity.LocalizedText `db:"system_type"`
	}
	rows, err := QueryListNamed[row](ctx, ps.DB(), `
	SELECT industry, system_type FROM projects ORDER BY sort_order ASC, created_at DESC`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to get project filter values: %w", err)
	}

	values := &entity.ProjectFilterValues{
		Industries:  []entity.LocalizedText{},
		SystemTypes: []entity.LocalizedText{},
	}
	seenIndustries := make(map[string]bool, len(rows))
	seenSystemTypes := make(map[string]bool, len(rows))
	for _, r := range rows {
		if len(r.Industry) > 0 && !seenIndustries[r.Industry.Key()] {
			seenIndustries[r.Industry.Key()] = true
			values.Industries = append(values.Industries, r.Industry)
		}
		if len(r.SystemType) > 0 && !seenSystemTypes[r.SystemType.Key()] {
			seenSystemTypes[r.SystemType.Key()] = true
			values.SystemTypes = append(values.SystemTypes, r.SystemType)
		}
	}
	return values, nil
}

func (ps *projectStore) UpdateProject(ctx context.Context, id string, in *entity.ProjectInsert) (*entity.Project, error) {
	if err := entity.ValidateProjectInsert(in); err != nil {
		return nil, err
	}

	if _, err := ps.GetProjectById(ctx, id); err != nil {
		return nil, err
	}

	err := ExecNamed(ctx, ps.DB(), `
	UPDATE projects SET
		industry = :industry,
		system_type = :systemType,
		title = :title,
		scope = :scope,
		outcome = :outcome,
		featured = :featured,
		sort_order = :sortOrder
	WHERE id = :id`,
		map[string]any{
			"id":         id,
			"industry":   in.Industry,
			"systemType": in.SystemType,
			"title":      in.Title,
			"scope":      in.Scope,
			"outcome":    in.Outcome,
			"featured":   in.Featured,
			"sortOrder":  in.Order,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return ps.GetProjectById(ctx, id)
}

func (ps *projectStore) DeleteProject(ctx context.Context, id string) error {
	n, err := ExecNamedRows(ctx, ps.DB(), `DELETE FROM projects WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
