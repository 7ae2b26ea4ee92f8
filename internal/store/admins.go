package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atlasdigitalize/atlas-website-backend/internal/dependency"
	"github.com/atlasdigitalize/atlas-website-backend/internal/entity"
)

type adminStore struct {
	*MYSQLStore
}

// Admin returns an object implementing dependency.Admin interface
func (ms *MYSQLStore) Admin() dependency.Admin {
	return &adminStore{
		MYSQLStore: ms,
	}
}

// AddAdmin creates a new admin user
func (as *adminStore) AddAdmin(ctx context.Context, username, pwHash string) error {
	_, err := as.DB().ExecContext(ctx, `
	INSERT INTO admins
	(username, password_hash)
	VALUES
	(?, ?)`, username, pwHash)
	if err != nil {
		if as.IsErrUniqueViolation(err) {
			return &entity.ValidationError{Field: "username", Message: fmt.Sprintf("username %q already exists", username)}
		}
		return fmt.Errorf("can't add admin user: %w", err)
	}
	return nil
}

// DeleteAdmin deletes an admin user
func (as *adminStore) DeleteAdmin(ctx context.Context, username string) error {
	res, err := as.DB().ExecContext(ctx, `
	DELETE FROM admins WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("failed to delete admin user: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if ra == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// ChangePassword changes the password of an admin user
func (as *adminStore) ChangePassword(ctx context.Context, username, newHash string) error {
	if _, err := as.PasswordHashByUsername(ctx, username); err != nil {
		return err
	}
	_, err := as.DB().ExecContext(ctx, `
	UPDATE admins
	SET password_hash = ?
	WHERE username = ?`, newHash, username)
	if err != nil {
		return fmt.Errorf("failed to change admin user password: %w", err)
	}
	return nil
}

// PasswordHashByUsername returns the password hash of an admin user
func (as *adminStore) PasswordHashByUsername(ctx context.Context, username string) (string, error) {
	var pw string
	err := as.DB().GetContext(ctx, &pw, `
	SELECT password_hash FROM admins WHERE username = ?`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", entity.ErrNotFound
		}
		return "", fmt.Errorf("failed to get password hash: %w", err)
	}
	return pw, nil
}
