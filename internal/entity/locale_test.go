package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizedTextResolve(t *testing.T) {
	lt := LocalizedText{"en": "Hello", "id": "Halo"}

	assert.Equal(t, "Hello", lt.Resolve("en"))
	assert.Equal(t, "Halo", lt.Resolve("id"))

	// unknown locale falls back to english
	assert.Equal(t, "Hello", lt.Resolve("fr"))

	partial := LocalizedText{"id": "Halo"}
	assert.Equal(t, "", partial.Resolve("fr"))
	assert.Equal(t, "Halo", partial.Resolve("id"))

	var empty LocalizedText
	assert.Equal(t, "", empty.Resolve("en"))
}

func TestLocalizedTextMissingLocales(t *testing.T) {
	full := LocalizedText{"en": "a", "id": "b"}
	assert.True(t, full.HasAllLocales())
	assert.Empty(t, full.MissingLocales())

	partial := LocalizedText{"en": "a"}
	assert.False(t, partial.HasAllLocales())
	assert.Equal(t, []string{"id"}, partial.MissingLocales())

	blank := LocalizedText{"en": "a", "id": "   "}
	assert.False(t, blank.HasAllLocales())
	assert.Equal(t, []string{"id"}, blank.MissingLocales())
}

func TestLocalizedTextContainsFold(t *testing.T) {
	lt := LocalizedText{"en": "Manufacturing", "id": "Manufaktur"}

	assert.True(t, lt.ContainsFold("manufact"))
	assert.True(t, lt.ContainsFold("FAKTUR"))
	assert.False(t, lt.ContainsFold("retail"))

	// empty needle matches everything
	assert.True(t, lt.ContainsFold(""))
}

func TestLocalizedTextKey(t *testing.T) {
	a := LocalizedText{"en": "Retail", "id": "Ritel"}
	b := LocalizedText{"id": "Ritel", "en": "Retail"}
	c := LocalizedText{"en": "Retail", "id": "Eceran"}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestLocalizedTextScanValue(t *testing.T) {
	lt := LocalizedText{"en": "Hello", "id": "Halo"}

	v, err := lt.Value()
	assert.NoError(t, err)

	var got LocalizedText
	err = got.Scan(v)
	assert.NoError(t, err)
	assert.Equal(t, lt, got)

	var fromNil LocalizedText
	err = fromNil.Scan(nil)
	assert.NoError(t, err)
	assert.Empty(t, fromNil)
}
