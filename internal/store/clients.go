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

type clientStore struct {
	*MYSQLStore
}

// Clients returns an object implementing the clients interface
func (ms *MYSQLStore) Clients() dependency.Clients {
	return &clientStore{
		MYSQLStore: ms,
	}
}

const clientColumns = `id, name, logo, sort_order, is_active, created_at, updated_at`

func (cs *clientStore) AddClient(ctx context.Context, in *entity.ClientInsert) (*entity.Client, error) {
	if err := entity.ValidateClientInsert(in); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	err := ExecNamed(ctx, cs.DB(), `
	INSERT INTO clients (id, name, logo, sort_order, is_active)
	VALUES (:id, :name, :logo, :sortOrder, :isActive)`,
		map[string]any{
			"id":        id,
			"name":      in.Name,
			"logo":      in.Logo,
			"sortOrder": in.Order,
			"isActive":  in.IsActive,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to add client: %w", err)
	}

	return cs.GetClientById(ctx, id)
}

func (cs *clientStore) GetActiveClients(ctx context.Context) ([]entity.Client, error) {
	query := fmt.Sprintf(`
	SELECT %s FROM clients WHERE is_active = TRUE ORDER BY sort_order ASC, created_at DESC`, clientColumns)
	clients, err := QueryListNamed[entity.Client](ctx, cs.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}
	return clients, nil
}

func (cs *clientStore) GetClientById(ctx context.Context, id string) (*entity.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM clients WHERE id = :id`, clientColumns)
	client, err := QueryNamedOne[entity.Client](ctx, cs.DB(), query, map[string]any{"id": id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client by id: %w", err)
	}
	return &client, nil
}

func (cs *clientStore) UpdateClient(ctx context.Context, id string, in *entity.ClientInsert) (*entity.Client, error) {
	if err := entity.ValidateClientInsert(in); err != nil {
		return nil, err
	}

	if _, err := cs.GetClientById(ctx, id); err != nil {
		return nil, err
	}

	err := ExecNamed(ctx, cs.DB(), `
	UPDATE clients SET
		name = :name,
		logo = :logo,
		sort_order = :sortOrder,
		is_active = :isActive
	WHERE id = :id`,
		map[string]any{
			"id":        id,
			"name":      in.Name,
			"logo":      in.Logo,
			"sortOrder": in.Order,
			"isActive":  in.IsActive,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return cs.GetClientById(ctx, id)
}

func (cs *clientStore) DeleteClient(ctx context.Context, id string) error {
	n, err := ExecNamedRows(ctx, cs.DB(), `DELETE FROM clients WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
