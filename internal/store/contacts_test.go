package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasdigitalize/atlas-website-backend/internal/entity"
)

func TestContactsLifecycle(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	cs := db.Contacts()
	ctx := context.Background()

	c, err := cs.AddContact(ctx, &entity.ContactInsert{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Message:  "We need an inventory system",
		Language: "en",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.Id)
	assert.Equal(t, entity.ContactStatusNew, c.Status)

	got, err := cs.GetContactById(ctx, c.Id)
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", got.Name)

	updated, err := cs.UpdateContactStatus(ctx, c.Id, entity.ContactStatusResponded)
	require.NoError(t, err)
	assert.Equal(t, entity.ContactStatusResponded, updated.Status)

	_, err = cs.UpdateContactStatus(ctx, "00000000-0000-0000-0000-000000000000", entity.ContactStatusRead)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	err = cs.DeleteContact(ctx, c.Id)
	assert.NoError(t, err)
	err = cs.DeleteContact(ctx, c.Id)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestContactsPagedStatusFilter(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	cs := db.Contacts()
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		_, err := cs.AddContact(ctx, &entity.ContactInsert{
			Name:     name,
			Email:    "x@example.com",
			Message:  "hello",
			Language: "en",
		})
		require.NoError(t, err)
	}

	all, err := cs.GetContactsPaged(ctx, 50, 0, entity.ContactFilters{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	_, err = cs.UpdateContactStatus(ctx, all[0].Id, entity.ContactStatusArchived)
	require.NoError(t, err)

	archived := entity.ContactStatusArchived
	got, err := cs.GetContactsPaged(ctx, 50, 0, entity.ContactFilters{Status: &archived})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	statusNew := entity.ContactStatusNew
	got, err = cs.GetContactsPaged(ctx, 50, 0, entity.ContactFilters{Status: &statusNew})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// paging window
	got, err = cs.GetContactsPaged(ctx, 2, 0, entity.ContactFilters{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	got, err = cs.GetContactsPaged(ctx, 50, 2, entity.ContactFilters{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSolutionsActiveOrdering(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ss := db.Solutions()
	ctx := context.Background()

	add := func(slug string, order int, active bool) {
		_, err := ss.AddSolution(ctx, &entity.SolutionInsert{
			Slug:        slug,
			Title:       entity.LocalizedText{"en": "T", "id": "T"},
			Description: entity.LocalizedText{"en": "D", "id": "D"},
			Order:       order,
			IsActive:    active,
		})
		require.NoError(t, err)
	}
	add("second", 2, true)
	add("first", 1, true)
	add("hidden", 0, false)

	active, err := ss.GetActiveSolutions(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "first", active[0].Slug)
	assert.Equal(t, "second", active[1].Slug)

	got, err := ss.GetSolutionBySlug(ctx, "hidden")
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestClientsActive(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	cs := db.Clients()
	ctx := context.Background()

	_, err := cs.AddClient(ctx, &entity.ClientInsert{Name: "Acme", Logo: "acme.png", Order: 2, IsActive: true})
	require.NoError(t, err)
	_, err = cs.AddClient(ctx, &entity.ClientInsert{Name: "Beta", Logo: "beta.png", Order: 1, IsActive: true})
	require.NoError(t, err)
	_, err = cs.AddClient(ctx, &entity.ClientInsert{Name: "Gone", Logo: "gone.png", Order: 0, IsActive: false})
	require.NoError(t, err)

	active, err := cs.GetActiveClients(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Beta", active[0].Name)
}

func TestAboutPageActive(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	as := db.About()
	ctx := context.Background()

	_, err := as.GetActiveAboutPage(ctx)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	page, err := as.AddAboutPage(ctx, &entity.AboutPageInsert{
		YearsExperience:  10,
		SystemsDelivered: 40,
		IndustriesServed: 12,
		Headline:         entity.LocalizedText{"en": "We build systems", "id": "Kami membangun sistem"},
		IsActive:         true,
	})
	require.NoError(t, err)

	active, err := as.GetActiveAboutPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, page.Id, active.Id)
	assert.Equal(t, 10, active.YearsExperience)
}

func TestAdmins(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ad := db.Admin()
	ctx := context.Background()

	err := ad.AddAdmin(ctx, "alice", "hash-1")
	require.NoError(t, err)

	// duplicate username refuses
	err = ad.AddAdmin(ctx, "alice", "hash-2")
	assert.Error(t, err)

	hash, err := ad.PasswordHashByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash-1", hash)

	err = ad.ChangePassword(ctx, "alice", "hash-3")
	require.NoError(t, err)
	hash, err = ad.PasswordHashByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash-3", hash)

	err = ad.DeleteAdmin(ctx, "alice")
	require.NoError(t, err)
	_, err = ad.PasswordHashByUsername(ctx, "alice")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
