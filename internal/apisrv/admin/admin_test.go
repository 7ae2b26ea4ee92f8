package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/atlasdigitalize/atlas-website-backend/internal/dependency/mocks"
	"github.com/atlasdigitalize/atlas-website-backend/internal/entity"
)

type testEnv struct {
	repo      *mocks.Repository
	fileStore *mocks.FileStore
	router    chi.Router
}

func newTestEnv(t *testing.T) *testEnv {
	e := &testEnv{
		repo:      mocks.NewRepository(t),
		fileStore: mocks.NewFileStore(t),
	}

	srv := New(e.repo, e.fileStore)
	r := chi.NewRouter()
	srv.Routes(r)
	e.router = r
	return e
}

func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	var rd *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func validInsightPayload() map[string]any {
	return map[string]any{
		"slug":     "new-insight",
		"title":    map[string]string{"en": "Title", "id": "Judul"},
		"excerpt":  map[string]string{"en": "Excerpt", "id": "Kutipan"},
		"content":  map[string]string{"en": "Content", "id": "Konten"},
		"category": map[string]string{"en": "Technology", "id": "Teknologi"},
	}
}

func TestCreateInsight(t *testing.T) {
	e := newTestEnv(t)
	insights := mocks.NewInsights(t)
	e.repo.EXPECT().Insights().Return(insights)

	insights.EXPECT().AddInsight(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, in *entity.InsightInsert) (*entity.Insight, error) {
			return &entity.Insight{Id: "id-1", InsightInsert: *in}, nil
		}).Once()

	rec := e.do(http.MethodPost, "/insights", validInsightPayload())
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateInsightValidation(t *testing.T) {
	e := newTestEnv(t)

	payload := validInsightPayload()
	payload["title"] = map[string]string{"en": "Only english"}

	rec := e.do(http.MethodPost, "/insights", payload)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Status string `json:"status"`
		Field  string `json:"field"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "title", resp.Field)
}

func TestCreateInsightDuplicateSlug(t *testing.T) {
	e := newTestEnv(t)
	insights := mocks.NewInsights(t)
	e.repo.EXPECT().Insights().Return(insights)

	insights.EXPECT().AddInsight(mock.Anything, mock.Anything).
		Return(nil, &entity.ValidationError{Field: "slug", Message: "slug already exists"}).Once()

	rec := e.do(http.MethodPost, "/insights", validInsightPayload())
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDeleteInsight(t *testing.T) {
	e := newTestEnv(t)
	insights := mocks.NewInsights(t)
	e.repo.EXPECT().Insights().Return(insights)

	insights.EXPECT().DeleteInsight(mock.Anything, "old-insight").Return(nil).Once()
	rec := e.do(http.MethodDelete, "/insights/old-insight", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	insights.EXPECT().DeleteInsight(mock.Anything, "ghost").Return(entity.ErrNotFound).Once()
	rec = e.do(http.MethodDelete, "/insights/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetInsightSeo(t *testing.T) {
	e := newTestEnv(t)
	insights := mocks.NewInsights(t)
	e.repo.EXPECT().Insights().Return(insights)

	insights.EXPECT().SetInsightSeo(mock.Anything, "new-insight", mock.Anything).Return(nil).Once()

	rec := e.do(http.MethodPut, "/insights/new-insight/seo", map[string]string{
		"title":  "Override title",
		"robots": "noindex",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateContactStatus(t *testing.T) {
	e := newTestEnv(t)
	contacts := mocks.NewContacts(t)
	e.repo.EXPECT().Contacts().Return(contacts)

	contacts.EXPECT().
		UpdateContactStatus(mock.Anything, "c-1", entity.ContactStatusRead).
		Return(&entity.Contact{Id: "c-1", Status: entity.ContactStatusRead}, nil).Once()

	rec := e.do(http.MethodPut, "/contacts/c-1", map[string]string{"status": "read"})
	assert.Equal(t, http.StatusOK, rec.Code)

	// unknown status never reaches the store
	rec = e.do(http.MethodPut, "/contacts/c-1", map[string]string{"status": "spam"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListContactsStatusFilter(t *testing.T) {
	e := newTestEnv(t)
	contacts := mocks.NewContacts(t)
	e.repo.EXPECT().Contacts().Return(contacts)

	statusNew := entity.ContactStatusNew
	contacts.EXPECT().
		GetContactsPaged(mock.Anything, 50, 0, entity.ContactFilters{Status: &statusNew}).
		Return([]entity.Contact{}, nil).Once()

	rec := e.do(http.MethodGet, "/contacts?status=new", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = e.do(http.MethodGet, "/contacts?status=bogus", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// an empty inbox renders as an array, not null
	contacts.EXPECT().
		GetContactsPaged(mock.Anything, 50, 0, entity.ContactFilters{}).
		Return(nil, nil).Once()

	rec = e.do(http.MethodGet, "/contacts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestUploadMedia(t *testing.T) {
	e := newTestEnv(t)

	e.fileStore.EXPECT().
		UploadContentImage(mock.Anything, "data:image/png;base64,iVBOR", "insights", "cover").
		Return("https://cdn.example.com/insights/cover.png", nil).Once()

	rec := e.do(http.MethodPost, "/media", map[string]string{
		"raw_b64_image": "data:image/png;base64,iVBOR",
		"folder":        "insights",
		"image_name":    "cover",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://cdn.example.com/insights/cover.png", resp["url"])

	// missing payload is rejected before storage is touched
	rec = e.do(http.MethodPost, "/media", map[string]string{"image_name": "cover"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateClient(t *testing.T) {
	e := newTestEnv(t)
	clients := mocks.NewClients(t)
	e.repo.EXPECT().Clients().Return(clients)

	clients.EXPECT().AddClient(mock.Anything, mock.Anything).
		Return(&entity.Client{Id: "c-1"}, nil).Once()

	rec := e.do(http.MethodPost, "/clients", map[string]any{
		"name": "Acme",
		"logo": "clients/acme.png",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = e.do(http.MethodPost, "/clients", map[string]any{"name": "", "logo": "x"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
