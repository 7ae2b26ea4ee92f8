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

type contactStore struct {
	*MYSQLStore
}

// Contacts returns an object implementing the contacts interface
func (ms *MYSQLStore) Contacts() dependency.Contacts {
	return &contactStore{
		MYSQLStore: ms,
	}
}

const contactColumns = `id, name, email, company, phone, service, message, language, status, created_at, updated_at`

func (cs *contactStore) AddContact(ctx context.Context, in *entity.ContactInsert) (*entity.Contact, error) {
	if err := entity.ValidateContactInsert(in); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	err := ExecNamed(ctx, cs.DB(), `
	INSERT INTO contacts (id, name, email, company, phone, service, message, language, status)
	VALUES (:id, :name, :email, :company, :phone, :service, :message, :language, :status)`,
		map[string]any{
			"id":       id,
			"name":     in.Name,
			"email":    in.Email,
			"company":  in.Company,
			"phone":    in.Phone,
			"service":  in.Service,
			"message":  in.Message,
			"language": in.Language,
			"status":   entity.ContactStatusNew,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to add contact: %w", err)
	}

	return cs.GetContactById(ctx, id)
}

func (cs *contactStore) GetContactsPaged(ctx context.Context, limit, offset int, filters entity.ContactFilters) ([]entity.Contact, error) {
	where := []string{"1 = 1"}
	params := map[string]any{
		"limit":  limit,
		"offset": offset,
	}

	if filters.Status != nil {
		where = append(where, "status = :status")
		params["status"] = *filters.Status
	}

	query := fmt.Sprintf(`
	SELECT %s FROM contacts
	WHERE %s
	ORDER BY created_at DESC
	LIMIT :limit OFFSET :offset`, contactColumns, strings.Join(where, " AND "))

	contacts, err := QueryListNamed[entity.Contact](ctx, cs.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts: %w", err)
	}
	return contacts, nil
}

func (cs *contactStore) GetContactById(ctx context.Context, id string) (*entity.Contact, error) {
	query := fmt.Sprintf(`SELECT %s FROM contacts WHERE id = :id`, contactColumns)
	contact, err := QueryNamedOne[entity.Contact](ctx, cs.DB(), query, map[string]any{"id": id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contact by id: %w", err)
	}
	return &contact, nil
}

func (cs *contactStore) UpdateContactStatus(ctx context.Context, id string, status entity.ContactStatus) (*entity.Contact, error) {
	// MySQL reports zero affected rows for no-op updates, so existence is
	// checked separately instead of via RowsAffected.
	if _, err := cs.GetContactById(ctx, id); err != nil {
		return nil, err
	}

	err := ExecNamed(ctx, cs.DB(), `
	UPDATE contacts SET status = :status WHERE id = :id`, map[string]any{
		"id":     id,
		"status": status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update contact status: %w", err)
	}

	return cs.GetContactById(ctx, id)
}

func (cs *contactStore) DeleteContact(ctx context.Context, id string) error {
	n, err := ExecNamedRows(ctx, cs.DB(), `DELETE FROM contacts WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
