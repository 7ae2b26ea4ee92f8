package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSlug(t *testing.T) {
	assert.NoError(t, ValidateSlug("digital-transformation-2026"))
	assert.NoError(t, ValidateSlug("erp_rollout"))

	for _, bad := range []string{"", "Upper-Case", "with space", "uni/code", "dot.dot"} {
		err := ValidateSlug(bad)
		require.Error(t, err, "slug %q", bad)
		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "slug", ve.Field)
	}
}

func TestValidateInsightInsert(t *testing.T) {
	valid := func() *InsightInsert {
		return &InsightInsert{
			Slug:     "my-insight",
			Title:    LocalizedText{"en": "Title", "id": "Judul"},
			Excerpt:  LocalizedText{"en": "Excerpt", "id": "Kutipan"},
			Content:  LocalizedText{"en": "Content", "id": "Konten"},
			Category: LocalizedText{"en": "Technology", "id": "Teknologi"},
		}
	}

	in := valid()
	assert.NoError(t, ValidateInsightInsert(in))
	assert.Equal(t, "5 min", in.ReadTime)

	in = valid()
	in.ReadTime = "8 min"
	assert.NoError(t, ValidateInsightInsert(in))
	assert.Equal(t, "8 min", in.ReadTime)

	in = valid()
	in.Title = LocalizedText{"en": "Title"}
	err := ValidateInsightInsert(in)
	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "title", ve.Field)
	assert.Contains(t, ve.Message, "id")

	in = valid()
	in.Category = nil
	err = ValidateInsightInsert(in)
	require.Error(t, err)
	ve, _ = AsValidationError(err)
	assert.Equal(t, "category", ve.Field)
}

func TestValidateContactInsert(t *testing.T) {
	valid := func() *ContactInsert {
		return &ContactInsert{
			Name:    "Jane Roe",
			Email:   "jane@example.com",
			Message: "We need an inventory system.",
		}
	}

	in := valid()
	assert.NoError(t, ValidateContactInsert(in))
	assert.Equal(t, LocaleEN, in.Language)

	in = valid()
	in.Language = "id"
	assert.NoError(t, ValidateContactInsert(in))

	in = valid()
	in.Language = "fr"
	err := ValidateContactInsert(in)
	require.Error(t, err)
	ve, _ := AsValidationError(err)
	assert.Equal(t, "language", ve.Field)

	in = valid()
	in.Email = "not-an-email"
	err = ValidateContactInsert(in)
	require.Error(t, err)
	ve, _ = AsValidationError(err)
	assert.Equal(t, "email", ve.Field)

	in = valid()
	in.Name = strings.Repeat("x", 101)
	err = ValidateContactInsert(in)
	require.Error(t, err)
	ve, _ = AsValidationError(err)
	assert.Equal(t, "name", ve.Field)

	in = valid()
	in.Message = strings.Repeat("m", 5001)
	err = ValidateContactInsert(in)
	require.Error(t, err)
	ve, _ = AsValidationError(err)
	assert.Equal(t, "message", ve.Field)

	in = valid()
	in.Name = "  Jane Roe  "
	assert.NoError(t, ValidateContactInsert(in))
	assert.Equal(t, "Jane Roe", in.Name)
}

func TestValidateProjectInsert(t *testing.T) {
	valid := func() *ProjectInsert {
		return &ProjectInsert{
			Industry:   LocalizedText{"en": "Retail", "id": "Ritel"},
			SystemType: LocalizedText{"en": "ERP", "id": "ERP"},
			Title:      LocalizedText{"en": "Stock system", "id": "Sistem stok"},
			Scope:      LocalizedText{"en": "Scope", "id": "Lingkup"},
			Outcome:    LocalizedText{"en": "Outcome", "id": "Hasil"},
		}
	}

	assert.NoError(t, ValidateProjectInsert(valid()))

	in := valid()
	in.Order = -1
	err := ValidateProjectInsert(in)
	require.Error(t, err)
	ve, _ := AsValidationError(err)
	assert.Equal(t, "order", ve.Field)

	in = valid()
	in.Outcome = LocalizedText{"id": "Hasil"}
	err = ValidateProjectInsert(in)
	require.Error(t, err)
	ve, _ = AsValidationError(err)
	assert.Equal(t, "outcome", ve.Field)
}

func TestParseContactStatus(t *testing.T) {
	for _, s := range []string{"new", "read", "responded", "archived"} {
		st, err := ParseContactStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, ContactStatus(s), st)
	}

	_, err := ParseContactStatus("spam")
	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "status", ve.Field)
}
