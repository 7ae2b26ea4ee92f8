package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/atlasdigitalize/atlas-website-backend/internal/apisrv/rest"
	"github.com/atlasdigitalize/atlas-website-backend/internal/dependency"
	"github.com/atlasdigitalize/atlas-website-backend/internal/dto"
	"github.com/atlasdigitalize/atlas-website-backend/internal/entity"
)

// Server implements the content management API. Authentication is enforced
// by the router middleware before any of these handlers run.
type Server struct {
	repo      dependency.Repository
	fileStore dependency.FileStore
}

// New creates a new admin server.
func New(repo dependency.Repository, fs dependency.FileStore) *Server {
	return &Server{
		repo:      repo,
		fileStore: fs,
	}
}

// Routes mounts the admin endpoints.
func (s *Server) Routes(r chi.Router) {
	r.Post("/insights", s.createInsight)
	r.Put("/insights/{slug}", s.updateInsight)
	r.Delete("/insights/{slug}", s.deleteInsight)
	r.Put("/insights/{slug}/seo", s.setInsightSeo)

	r.Post("/projects", s.createProject)
	r.Put("/projects/{id}", s.updateProject)
	r.Delete("/projects/{id}", s.deleteProject)

	r.Post("/solutions", s.createSolution)
	r.Put("/solutions/{slug}", s.updateSolution)
	r.Delete("/solutions/{slug}", s.deleteSolution)

	r.Post("/clients", s.createClient)
	r.Put("/clients/{id}", s.updateClient)
	r.Delete("/clients/{id}", s.deleteClient)

	r.Post("/about", s.createAboutPage)
	r.Put("/about/{id}", s.updateAboutPage)
	r.Delete("/about/{id}", s.deleteAboutPage)

	r.Get("/contacts", s.listContacts)
	r.Get("/contacts/{id}", s.getContact)
	r.Put("/contacts/{id}", s.updateContactStatus)
	r.Delete("/contacts/{id}", s.deleteContact)

	r.Post("/media", s.uploadMedia)
}

func created(w http.ResponseWriter, r *http.Request, v any) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, v)
}

func noContent(w http.ResponseWriter, r *http.Request) {
	render.NoContent(w, r)
}

type insightRequest struct {
	entity.InsightInsert
}

func (ir *insightRequest) Bind(r *http.Request) error {
	return entity.ValidateInsightInsert(&ir.InsightInsert)
}

func (s *Server) createInsight(w http.ResponseWriter, r *http.Request) {
	data := &insightRequest{}
	if err := render.Bind(r, data); err != nil {
		rest.RenderBindError(w, r, err)
		return
	}
	insight, err := s.repo.Insights().AddInsight(r.Context(), &data.InsightInsert)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	created(w, r, insight)
}

func (s *Server) updateInsight(w http.ResponseWriter, r *http.Request) {
	data := &insightRequest{}
	if err := render.Bind(r, data); err != nil {
		rest.RenderBindError(w, r, err)
		return
	}
	insight, err := s.repo.Insights().UpdateInsight(r.Context(), chi.URLParam(r, "slug"), &data.InsightInsert)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	render.JSON(w, r, insight)
}

// deleteInsight removes the insight; its feedback rows and SEO overrides go
// with it through the schema cascades.
func (s *Server) deleteInsight(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.Insights().DeleteInsight(r.Context(), chi.URLParam(r, "slug")); err != nil {
		rest.RenderError(w, r, err)
		return
	}
	noContent(w, r)
}

type seoRequest struct {
	entity.InsightSeo
}

func (sr *seoRequest) Bind(r *http.Request) error {
	return nil
}

// setInsightSeo stores explicit metadata overrides. Empty fields keep
// falling back to values derived from the insight.
func (s *Server) setInsightSeo(w http.ResponseWriter, r *http.Request) {
	data := &seoRequest{}
	if err := render.Bind(r, data); err != nil {
		rest.RenderBindError(w, r, err)
		return
	}
	if err := s.repo.Insights().SetInsightSeo(r.Context(), chi.URLParam(r, "slug"), &data.InsightSeo); err != nil {
		rest.RenderError(w, r, err)
		return
	}
	render.JSON(w, r, data.InsightSeo)
}

type projectRequest struct {
	entity.ProjectInsert
}

func (pr *projectRequest) Bind(r *http.Request) error {
	return entity.ValidateProjectInsert(&pr.ProjectInsert)
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	data := &projectRequest{}
	if err := render.Bind(r, data); err != nil {
		rest.RenderBindError(w, r, err)
		return
	}
	project, err := s.repo.Projects().AddProject(r.Context(), &data.ProjectInsert)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	created(w, r, project)
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	data := &projectRequest{}
	if err := render.Bind(r, data); err != nil {
		rest.RenderBindError(w, r, err)
		return
	}
	project, err := s.repo.Projects().UpdateProject(r.Context(), chi.URLParam(r, "id"), &data.ProjectInsert)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	render.JSON(w, r, project)
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.Projects().DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		rest.RenderError(w, r, err)
		return
	}
	noContent(w, r)
}

type solutionRequest struct {
	entity.SolutionInsert
}

func (sr *solutionRequest) Bind(r *http.Request) error {
	return entity.ValidateSolutionInsert(&sr.SolutionInsert)
}

func (s *Server) createSolution(w http.ResponseWriter, r *http.Request) {
	data := &solutionRequest{}
	if err := render.Bind(r, data); err != nil {
		rest.RenderBindError(w, r, err)
		return
	}
	solution, err := s.repo.Solutions().AddSolution(r.Context(), &data.SolutionInsert)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	created(w, r, solution)
}

func (s *Server) updateSolution(w http.ResponseWriter, r *http.Request) {
	data := &solutionRequest{}
	if err := render.Bind(r, data); err != nil {
		rest.RenderBindError(w, r, err)
		return
	}
	solution, err := s.repo.Solutions().UpdateSolution(r.Context(), chi.URLParam(r, "slug"), &data.SolutionInsert)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	render.JSON(w, r, solution)
}

func (s *Server) deleteSolution(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.Solutions().DeleteSolution(r.Context(), chi.URLParam(r, "slug")); err != nil {
		rest.RenderError(w, r, err)
		return
	}
	noContent(w, r)
}

type clientRequest struct {
	entity.ClientInsert
}

func (cr *clientRequest) Bind(r *http.Request) error {
	return entity.ValidateClientInsert(&cr.ClientInsert)
}

func (s *Server) createClient(w http.ResponseWriter, r *http.Request) {
	data := &clientRequest{}
	if err := render.Bind(r, data); err != nil {
		rest.RenderBindError(w, r, err)
		return
	}
	client, err := s.repo.Clients().AddClient(r.Context(), &data.ClientInsert)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	created(w, r, client)
}

func (s *Server) updateClient(w http.ResponseWriter, r *http.Request) {
	data := &clientRequest{}
	if err := render.Bind(r, data); err != nil {
		rest.RenderBindError(w, r, err)
		return
	}
	client, err := s.repo.Clients().UpdateClient(r.Context(), chi.URLParam(r, "id"), &data.ClientInsert)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	render.JSON(w, r, client)
}

func (s *Server) deleteClient(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.Clients().DeleteClient(r.Context(), chi.URLParam(r, "id")); err != nil {
		rest.RenderError(w, r, err)
		return
	}
	noContent(w, r)
}

type aboutPageRequest struct {
	entity.AboutPageInsert
}

func (ar *aboutPageRequest) Bind(r *http.Request) error {
	return entity.ValidateAboutPageInsert(&ar.AboutPageInsert)
}

func (s *Server) createAboutPage(w http.ResponseWriter, r *http.Request) {
	data := &aboutPageRequest{}
	if err := render.Bind(r, data); err != nil {
		rest.RenderBindError(w, r, err)
		return
	}
	page, err := s.repo.About().AddAboutPage(r.Context(), &data.AboutPageInsert)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	created(w, r, page)
}

func (s *Server) updateAboutPage(w http.ResponseWriter, r *http.Request) {
	data := &aboutPageRequest{}
	if err := render.Bind(r, data); err != nil {
		rest.RenderBindError(w, r, err)
		return
	}
	page, err := s.repo.About().UpdateAboutPage(r.Context(), chi.URLParam(r, "id"), &data.AboutPageInsert)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	render.JSON(w, r, page)
}

func (s *Server) deleteAboutPage(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.About().DeleteAboutPage(r.Context(), chi.URLParam(r, "id")); err != nil {
		rest.RenderError(w, r, err)
		return
	}
	noContent(w, r)
}

func (s *Server) listContacts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := dto.ParsePage(q, dto.DefaultContactPageSize)

	var filters entity.ContactFilters
	if raw := q.Get("status"); raw != "" {
		status, err := entity.ParseContactStatus(raw)
		if err != nil {
			rest.RenderError(w, r, err)
			return
		}
		filters.Status = &status
	}

	contacts, err := s.repo.Contacts().GetContactsPaged(r.Context(), page.Limit, page.Offset, filters)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	if contacts == nil {
		contacts = []entity.Contact{}
	}
	render.JSON(w, r, contacts)
}

func (s *Server) getContact(w http.ResponseWriter, r *http.Request) {
	contact, err := s.repo.Contacts().GetContactById(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	render.JSON(w, r, contact)
}

type contactStatusRequest struct {
	Status string `json:"status"`
}

func (cr *contactStatusRequest) Bind(r *http.Request) error {
	return nil
}

func (s *Server) updateContactStatus(w http.ResponseWriter, r *http.Request) {
	data := &contactStatusRequest{}
	if err := render.Bind(r, data); err != nil {
		rest.RenderBindError(w, r, err)
		return
	}
	status, err := entity.ParseContactStatus(data.Status)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	contact, err := s.repo.Contacts().UpdateContactStatus(r.Context(), chi.URLParam(r, "id"), status)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	render.JSON(w, r, contact)
}

func (s *Server) deleteContact(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.Contacts().DeleteContact(r.Context(), chi.URLParam(r, "id")); err != nil {
		rest.RenderError(w, r, err)
		return
	}
	noContent(w, r)
}

type mediaRequest struct {
	RawB64Image string `json:"raw_b64_image"`
	Folder      string `json:"folder"`
	ImageName   string `json:"image_name"`
}

func (mr *mediaRequest) Bind(r *http.Request) error {
	if mr.RawB64Image == "" {
		return &entity.ValidationError{Field: "raw_b64_image", Message: "image payload is required"}
	}
	if mr.ImageName == "" {
		return &entity.ValidationError{Field: "image_name", Message: "image name is required"}
	}
	return nil
}

// uploadMedia pushes a base64 data url to object storage and returns the
// public URL for use as featured_image, logo or solution image.
func (s *Server) uploadMedia(w http.ResponseWriter, r *http.Request) {
	data := &mediaRequest{}
	if err := render.Bind(r, data); err != nil {
		rest.RenderBindError(w, r, err)
		return
	}
	url, err := s.fileStore.UploadContentImage(r.Context(), data.RawB64Image, data.Folder, data.ImageName)
	if err != nil {
		rest.RenderError(w, r, err)
		return
	}
	created(w, r, map[string]string{"url": url})
}
