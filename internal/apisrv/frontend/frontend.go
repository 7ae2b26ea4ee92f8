package frontend

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/atlasdigitalize/atlas-website-backend/internal/apisrv/rest"
	"github.com/atlasdigitalize/atlas-website-backend/internal/dependency"
	"github.com/atlasdigitalize/atlas-website-backend/internal/dto"
	"github.com/atlasdigitalize/atlas-website-backend/internal/entity"
	"github.com/atlasdigitalize/atlas-website-backend/internal/middleware"
)

// Server implements the public read API, contact submissions and insight
// feedback.
type Server struct {
	repo         dependency.Repository
	mailer       dependency.Mailer
	assetBaseURL string
	version      string
}

// Config contains the configuration for the public api server.
type Config struct {
	AssetBaseURL string `mapstructure:"asset_base_url"`
	Version      string `mapstructure:"version"`
}

// New creates a new frontend server.
func New(c *Config, repo dependency.Repository, mailer dependency.Mailer) *Server {
	return &Server{
		repo:         repo,
		mailer:       mailer,
		assetBaseURL: c.AssetBaseURL,
		version:      c.Version,
	}
}

// Routes mounts the public endpoints.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.root)
	r.Get("/health", s.health)

	r.Get("/about", s.getAboutPage)

	r.Get("/clients", s.listClients)
	r.Get("/clients/{id}", s.getClient)

	r.Get("/solutions", s.listSolutions)
	r.Get("/solutions/{slug}", s.getSolution)

	r.Get("/insights", s.listInsights)
	r.Get("/insights/filters", s.getInsightFilters)
	r.Get("/insights/{slug}", s.getInsight)
	r.Get("/insights/{slug}/related", s.getRelatedInsights)
	r.Post("/insights/{slug}/feedback", s.submitFeedback)
	r.Get("/insights/{slug}/feedback-stats", s.getFeedbackStats)

	r.Get("/projects", s.listProjects)
	r.Get("/projects/filters", s.getProjectFilters)
	r.Get("/projects/{id}", s.getProject)

	r.Post("/contacts", s.submitContact)
}

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{
		"message": "Atlas Digitalize API",
		"version": s.version,
	})
}

// health reports process and database liveness.
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	database := "ok"
	if err := s.repo.Ping(r.Context()); err != nil {
		slog.Error("health: database unreachable", "err", err)
		database = "unreachable"
		render.Status(r, http.StatusServiceUnavailable)
	}
	render.JSON(w, r, map[string]string{
		"status":   "ok",
		"database": database,
	})
}

func (s *Server) getAboutPage(w http.ResponseWriter, r *http.Request) {
	page, err := s.repo.About().GetActiveAboutPage(r.Context())
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	render.JSON(w, r, page)
}

func (s *Server) listClients(w http.ResponseWriter, r *http.Request) {
	clients, err := s.repo.Clients().GetActiveClients(r.Context())
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	if clients == nil {
		clients = []entity.Client{}
	}
	render.JSON(w, r, clients)
}

func (s *Server) getClient(w http.ResponseWriter, r *http.Request) {
	client, err := s.repo.Clients().GetClientById(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	render.JSON(w, r, client)
}

func (s *Server) listSolutions(w http.ResponseWriter, r *http.Request) {
	solutions, err := s.repo.Solutions().GetActiveSolutions(r.Context())
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	if solutions == nil {
		solutions = []entity.Solution{}
	}
	render.JSON(w, r, solutions)
}

func (s *Server) getSolution(w http.ResponseWriter, r *http.Request) {
	solution, err := s.repo.Solutions().GetSolutionBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	render.JSON(w, r, solution)
}

func (s *Server) listInsights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := dto.ParsePage(q, dto.DefaultContentPageSize)
	filters := entity.InsightFilters{
		Category:  q.Get("category"),
		Published: dto.ParseOptionalBool(q, "published"),
	}

	insights, err := s.repo.Insights().GetInsightsPaged(r.Context(), page.Limit, page.Offset, filters)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	if insights == nil {
		insights = []entity.Insight{}
	}
	render.JSON(w, r, insights)
}

func (s *Server) getInsightFilters(w http.ResponseWriter, r *http.Request) {
	categories, err := s.repo.Insights().GetInsightCategories(r.Context())
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	if categories == nil {
		categories = []entity.LocalizedText{}
	}
	render.JSON(w, r, map[string][]entity.LocalizedText{"categories": categories})
}

type insightDetail struct {
	*entity.Insight
	Seo             dto.Seo `json:"seo"`
	FormattedDateEN string  `json:"formatted_date_en"`
	FormattedDateID string  `json:"formatted_date_id"`
}

// getInsight returns the insight together with its resolved SEO metadata and
// display dates for both locales.
func (s *Server) getInsight(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	insight, err := s.repo.Insights().GetInsightBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	overrides, err := s.repo.Insights().GetInsightSeo(ctx, insight.Id)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	render.JSON(w, r, insightDetail{
		Insight:         insight,
		Seo:             dto.ResolveSeo(insight, overrides, s.assetBaseURL),
		FormattedDateEN: dto.FormattedDateEN(insight.CreatedAt),
		FormattedDateID: dto.FormattedDateID(insight.CreatedAt),
	})
}

const relatedInsightsLimit = 3

func (s *Server) getRelatedInsights(w http.ResponseWriter, r *http.Request) {
	related, err := s.repo.Insights().GetRelatedInsights(r.Context(), chi.URLParam(r, "slug"), relatedInsightsLimit)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	if related == nil {
		related = []entity.Insight{}
	}
	render.JSON(w, r, related)
}

type feedbackRequest struct {
	IsHelpful *bool `json:"is_helpful"`
}

func (fr *feedbackRequest) Bind(r *http.Request) error {
	if fr.IsHelpful == nil {
		return &entity.ValidationError{Field: "is_helpful", Message: "is_helpful is required"}
	}
	return nil
}

type feedbackResponse struct {
	Message         string `json:"message"`
	HelpfulCount    int    `json:"helpful_count"`
	NotHelpfulCount int    `json:"not_helpful_count"`
}

// submitFeedback records a helpfulness vote keyed by the requesting IP. A
// repeat vote from the same address overwrites the previous one.
func (s *Server) submitFeedback(w http.ResponseWriter, r *http.Request) {
	data := &feedbackRequest{}
	if err := render.Bind(r, data); err != nil {
		rest.RenderBindError(w, r, err)
		return
	}

	ip := middleware.GetClientIP(r.Context())
	counts, err := s.repo.Insights().UpsertFeedback(r.Context(), chi.URLParam(r, "slug"), ip, *data.IsHelpful)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	render.JSON(w, r, feedbackResponse{
		Message:         "Thank you for your feedback",
		HelpfulCount:    counts.HelpfulCount,
		NotHelpfulCount: counts.NotHelpfulCount,
	})
}

type feedbackStatsResponse struct {
	HelpfulCount    int `json:"helpful_count"`
	NotHelpfulCount int `json:"not_helpful_count"`
	TotalCount      int `json:"total_count"`
}

func (s *Server) getFeedbackStats(w http.ResponseWriter, r *http.Request) {
	counts, err := s.repo.Insights().GetFeedbackCounts(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	render.JSON(w, r, feedbackStatsResponse{
		HelpfulCount:    counts.HelpfulCount,
		NotHelpfulCount: counts.NotHelpfulCount,
		TotalCount:      counts.HelpfulCount + counts.NotHelpfulCount,
	})
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := dto.ParsePage(q, dto.DefaultContentPageSize)
	filters := entity.ProjectFilters{
		Industry:   q.Get("industry"),
		SystemType: q.Get("system_type"),
		Featured:   dto.ParseOptionalBool(q, "featured"),
	}

	projects, err := s.repo.Projects().GetProjectsPaged(r.Context(), page.Limit, page.Offset, filters)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	if projects == nil {
		projects = []entity.Project{}
	}
	render.JSON(w, r, projects)
}

func (s *Server) getProjectFilters(w http.ResponseWriter, r *http.Request) {
	values, err := s.repo.Projects().GetProjectFilterValues(r.Context())
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	render.JSON(w, r, values)
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	project, err := s.repo.Projects().GetProjectById(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	render.JSON(w, r, project)
}

type contactRequest struct {
	entity.ContactInsert
}

func (cr *contactRequest) Bind(r *http.Request) error {
	return entity.ValidateContactInsert(&cr.ContactInsert)
}

// submitContact stores a lead and fires the notification email. Delivery
// failures are logged and do not fail the submission.
func (s *Server) submitContact(w http.ResponseWriter, r *http.Request) {
	data := &contactRequest{}
	if err := render.Bind(r, data); err != nil {
		rest.RenderBindError(w, r, err)
		return
	}

	contact, err := s.repo.Contacts().AddContact(r.Context(), &data.ContactInsert)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}

	if err := s.mailer.SendContactNotification(r.Context(), contact); err != nil {
		slog.Error("contact notification failed", "contactId", contact.Id, "err", err)
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, contact)
}
