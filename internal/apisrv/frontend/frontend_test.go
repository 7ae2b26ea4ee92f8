package frontend

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/atlasdigitalize/atlas-website-backend/internal/dependency/mocks"
	"github.com/atlasdigitalize/atlas-website-backend/internal/entity"
	"github.com/atlasdigitalize/atlas-website-backend/internal/middleware"
)

type testEnv struct {
	repo     *mocks.Repository
	insights *mocks.Insights
	projects *mocks.Projects
	contacts *mocks.Contacts
	mailer   *mocks.Mailer
	router   chi.Router
}

func newTestEnv(t *testing.T) *testEnv {
	e := &testEnv{
		repo:     mocks.NewRepository(t),
		insights: mocks.NewInsights(t),
		projects: mocks.NewProjects(t),
		contacts: mocks.NewContacts(t),
		mailer:   mocks.NewMailer(t),
	}

	srv := New(&Config{
		AssetBaseURL: "https://cdn.example.com/storage",
		Version:      "test",
	}, e.repo, e.mailer)

	r := chi.NewRouter()
	r.Use(middleware.ClientIdentifier)
	srv.Routes(r)
	e.router = r
	return e
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) post(path string, body any, prepare func(*http.Request)) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if prepare != nil {
		prepare(req)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func sampleInsight() *entity.Insight {
	return &entity.Insight{
		Id:        "804d1f5a-2b86-4e3b-92c4-8f1b5f2e6a01",
		CreatedAt: time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC),
		InsightInsert: entity.InsightInsert{
			Slug:      "erp-for-smes",
			Title:     entity.LocalizedText{"en": "ERP for SMEs", "id": "ERP untuk UKM"},
			Excerpt:   entity.LocalizedText{"en": "Excerpt", "id": "Kutipan"},
			Content:   entity.LocalizedText{"en": "Content", "id": "Konten"},
			Category:  entity.LocalizedText{"en": "Technology", "id": "Teknologi"},
			ReadTime:  "5 min",
			Published: true,
		},
	}
}

func TestListInsightsQueryParsing(t *testing.T) {
	e := newTestEnv(t)
	e.repo.EXPECT().Insights().Return(e.insights)

	e.insights.EXPECT().
		GetInsightsPaged(mock.Anything, 20, 0, entity.InsightFilters{}).
		Return([]entity.Insight{*sampleInsight()}, nil).Once()

	rec := e.get("/insights")
	assert.Equal(t, http.StatusOK, rec.Code)

	published := true
	e.insights.EXPECT().
		GetInsightsPaged(mock.Anything, 100, 40, entity.InsightFilters{Category: "tech", Published: &published}).
		Return([]entity.Insight{}, nil).Once()

	rec = e.get("/insights?category=tech&published=yes&limit=900&skip=40")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmptyListingsRenderEmptyArrays(t *testing.T) {
	e := newTestEnv(t)

	solutions := mocks.NewSolutions(t)
	clients := mocks.NewClients(t)
	e.repo.EXPECT().Insights().Return(e.insights)
	e.repo.EXPECT().Projects().Return(e.projects)
	e.repo.EXPECT().Solutions().Return(solutions)
	e.repo.EXPECT().Clients().Return(clients)

	e.insights.EXPECT().
		GetInsightsPaged(mock.Anything, 20, 0, entity.InsightFilters{}).
		Return(nil, nil).Once()
	e.insights.EXPECT().GetInsightCategories(mock.Anything).Return(nil, nil).Once()
	e.projects.EXPECT().
		GetProjectsPaged(mock.Anything, 20, 0, entity.ProjectFilters{}).
		Return(nil, nil).Once()
	solutions.EXPECT().GetActiveSolutions(mock.Anything).Return(nil, nil).Once()
	clients.EXPECT().GetActiveClients(mock.Anything).Return(nil, nil).Once()

	// empty listings render as arrays, not null
	for _, path := range []string{"/insights", "/projects", "/solutions", "/clients"} {
		rec := e.get(path)
		require.Equal(t, http.StatusOK, rec.Code, "path %s", path)
		assert.JSONEq(t, "[]", rec.Body.String(), "path %s", path)
	}

	rec := e.get("/insights/filters")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"categories": []}`, rec.Body.String())
}

func TestGetInsightWithSeo(t *testing.T) {
	e := newTestEnv(t)
	e.repo.EXPECT().Insights().Return(e.insights)

	in := sampleInsight()
	e.insights.EXPECT().GetInsightBySlug(mock.Anything, "erp-for-smes").Return(in, nil).Once()
	e.insights.EXPECT().GetInsightSeo(mock.Anything, in.Id).Return(nil, nil).Once()

	rec := e.get("/insights/erp-for-smes")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Slug string `json:"slug"`
		Seo  struct {
			Title  string `json:"title"`
			Robots string `json:"robots"`
			Type   string `json:"type"`
		} `json:"seo"`
		FormattedDateEN string `json:"formatted_date_en"`
		FormattedDateID string `json:"formatted_date_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "erp-for-smes", resp.Slug)
	assert.Equal(t, "ERP for SMEs", resp.Seo.Title)
	assert.Equal(t, "index, follow", resp.Seo.Robots)
	assert.Equal(t, "article", resp.Seo.Type)
	assert.Equal(t, "Feb 10, 2026", resp.FormattedDateEN)
	assert.Equal(t, "Feb 10, 2026", resp.FormattedDateID)
}

func TestGetInsightNotFound(t *testing.T) {
	e := newTestEnv(t)
	e.repo.EXPECT().Insights().Return(e.insights)

	e.insights.EXPECT().GetInsightBySlug(mock.Anything, "ghost").Return(nil, entity.ErrNotFound).Once()

	rec := e.get("/insights/ghost")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRelatedInsights(t *testing.T) {
	e := newTestEnv(t)
	e.repo.EXPECT().Insights().Return(e.insights)

	e.insights.EXPECT().GetRelatedInsights(mock.Anything, "erp-for-smes", 3).
		Return(nil, nil).Once()

	rec := e.get("/insights/erp-for-smes/related")
	require.Equal(t, http.StatusOK, rec.Code)
	// empty result renders as a list, not null
	assert.JSONEq(t, "[]", rec.Body.String())

	e.insights.EXPECT().GetRelatedInsights(mock.Anything, "ghost", 3).
		Return(nil, entity.ErrNotFound).Once()
	rec = e.get("/insights/ghost/related")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitFeedback(t *testing.T) {
	e := newTestEnv(t)
	e.repo.EXPECT().Insights().Return(e.insights)

	e.insights.EXPECT().
		UpsertFeedback(mock.Anything, "erp-for-smes", "203.0.113.7", true).
		Return(&entity.FeedbackCounts{HelpfulCount: 4, NotHelpfulCount: 1}, nil).Once()

	rec := e.post("/insights/erp-for-smes/feedback", map[string]bool{"is_helpful": true}, func(r *http.Request) {
		r.Header.Set("X-Forwarded-For", "203.0.113.7")
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message         string `json:"message"`
		HelpfulCount    int    `json:"helpful_count"`
		NotHelpfulCount int    `json:"not_helpful_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.HelpfulCount)
	assert.Equal(t, 1, resp.NotHelpfulCount)
	assert.NotEmpty(t, resp.Message)

	// is_helpful is required
	rec = e.post("/insights/erp-for-smes/feedback", map[string]string{}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestFeedbackStats(t *testing.T) {
	e := newTestEnv(t)
	e.repo.EXPECT().Insights().Return(e.insights)

	e.insights.EXPECT().GetFeedbackCounts(mock.Anything, "erp-for-smes").
		Return(&entity.FeedbackCounts{HelpfulCount: 7, NotHelpfulCount: 2}, nil).Once()

	rec := e.get("/insights/erp-for-smes/feedback-stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		HelpfulCount    int `json:"helpful_count"`
		NotHelpfulCount int `json:"not_helpful_count"`
		TotalCount      int `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.HelpfulCount)
	assert.Equal(t, 2, resp.NotHelpfulCount)
	assert.Equal(t, 9, resp.TotalCount)
}

func TestListProjectsQueryParsing(t *testing.T) {
	e := newTestEnv(t)
	e.repo.EXPECT().Projects().Return(e.projects)

	featured := false
	e.projects.EXPECT().
		GetProjectsPaged(mock.Anything, 20, 0, entity.ProjectFilters{
			Industry:   "retail",
			SystemType: "erp",
			Featured:   &featured,
		}).
		Return([]entity.Project{}, nil).Once()

	rec := e.get("/projects?industry=retail&system_type=erp&featured=0")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProjectFilters(t *testing.T) {
	e := newTestEnv(t)
	e.repo.EXPECT().Projects().Return(e.projects)

	e.projects.EXPECT().GetProjectFilterValues(mock.Anything).
		Return(&entity.ProjectFilterValues{
			Industries:  []entity.LocalizedText{{"en": "Retail", "id": "Ritel"}},
			SystemTypes: []entity.LocalizedText{{"en": "ERP", "id": "ERP"}},
		}, nil).Once()

	rec := e.get("/projects/filters")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.ProjectFilterValues
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Industries, 1)
	assert.Len(t, resp.SystemTypes, 1)
}

func TestSubmitContact(t *testing.T) {
	e := newTestEnv(t)
	e.repo.EXPECT().Contacts().Return(e.contacts)

	stored := &entity.Contact{
		Id:     "f6276db2-0f32-4f6a-a335-0d9a7c9e6f77",
		Status: entity.ContactStatusNew,
		ContactInsert: entity.ContactInsert{
			Name:     "Jane Roe",
			Email:    "jane@example.com",
			Message:  "We need help",
			Language: "en",
		},
	}

	e.contacts.EXPECT().AddContact(mock.Anything, mock.Anything).Return(stored, nil).Once()
	e.mailer.EXPECT().SendContactNotification(mock.Anything, stored).Return(nil).Once()

	rec := e.post("/contacts", map[string]string{
		"name":    "Jane Roe",
		"email":   "jane@example.com",
		"message": "We need help",
	}, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// invalid email is rejected before the store is touched
	rec = e.post("/contacts", map[string]string{
		"name":    "Jane Roe",
		"email":   "nope",
		"message": "We need help",
	}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSubmitContactMailFailureStillCreated(t *testing.T) {
	e := newTestEnv(t)
	e.repo.EXPECT().Contacts().Return(e.contacts)

	stored := &entity.Contact{Id: "1", Status: entity.ContactStatusNew}
	e.contacts.EXPECT().AddContact(mock.Anything, mock.Anything).Return(stored, nil).Once()
	e.mailer.EXPECT().SendContactNotification(mock.Anything, stored).
		Return(assert.AnError).Once()

	rec := e.post("/contacts", map[string]string{
		"name":    "Jane Roe",
		"email":   "jane@example.com",
		"message": "We need help",
	}, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestListSolutionsAndClients(t *testing.T) {
	e := newTestEnv(t)

	solutions := mocks.NewSolutions(t)
	clients := mocks.NewClients(t)
	e.repo.EXPECT().Solutions().Return(solutions)
	e.repo.EXPECT().Clients().Return(clients)

	solutions.EXPECT().GetActiveSolutions(mock.Anything).
		Return([]entity.Solution{{Id: "s1"}}, nil).Once()
	clients.EXPECT().GetActiveClients(mock.Anything).
		Return([]entity.Client{{Id: "c1"}}, nil).Once()

	rec := e.get("/solutions")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = e.get("/clients")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealth(t *testing.T) {
	e := newTestEnv(t)

	e.repo.EXPECT().Ping(mock.Anything).Return(nil).Once()
	rec := e.get("/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "ok", resp["database"])

	e.repo.EXPECT().Ping(mock.Anything).Return(assert.AnError).Once()
	rec = e.get("/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
