package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testDSN() string {
	if dsn := os.Getenv("MYSQL_TEST_DSN"); dsn != "" {
		return dsn
	}
	return "user:pass@(localhost:3306)/atlas_website?charset=utf8mb4&parseTime=true"
}

func newTestDB(t *testing.T) *MYSQLStore {
	db, err := New(context.Background(), Config{
		DSN:         testDSN(),
		Automigrate: true,
	})
	if err != nil {
		t.Skipf("mysql unavailable: %v", err)
	}

	ctx := context.Background()
	_, err = db.db.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 0")
	assert.NoError(t, err)
	for _, table := range []string{
		"insight_feedback",
		"insight_seo",
		"insights",
		"projects",
		"solutions",
		"clients",
		"about_pages",
		"contacts",
		"admins",
	} {
		_, err = db.db.ExecContext(ctx, "DELETE FROM "+table)
		assert.NoError(t, err)
	}
	_, err = db.db.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 1")
	assert.NoError(t, err)

	return db
}
