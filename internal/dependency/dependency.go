package dependency

import (
	"context"
	"database/sql"

	"github.com/atlasdigitalize/atlas-website-backend/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Insights interface {
		ContextStore
		// AddInsight inserts a new insight; a duplicate slug fails with a
		// ValidationError and performs no write.
		AddInsight(ctx context.Context, in *entity.InsightInsert) (*entity.Insight, error)
		// GetInsightsPaged returns a filtered page ordered by creation time
		// descending. No total count accompanies the page.
		GetInsightsPaged(ctx context.Context, limit, offset int, filters entity.InsightFilters) ([]entity.Insight, error)
		// GetInsightBySlug returns ErrNotFound for unknown slugs.
		GetInsightBySlug(ctx context.Context, slug string) (*entity.Insight, error)
		// GetRelatedInsights returns up to limit published insights sharing a
		// same-locale category value with the source, excluding the source.
		GetRelatedInsights(ctx context.Context, slug string, limit int) ([]entity.Insight, error)
		// GetInsightCategories returns distinct category maps of published
		// insights, deduplicated by the full locale map.
		GetInsightCategories(ctx context.Context) ([]entity.LocalizedText, error)
		UpdateInsight(ctx context.Context, slug string, in *entity.InsightInsert) (*entity.Insight, error)
		DeleteInsight(ctx context.Context, slug string) error

		// UpsertFeedback records a vote for (insight, ip), overwriting a prior
		// vote from the same ip, and returns fresh aggregate counts.
		UpsertFeedback(ctx context.Context, slug, ip string, isHelpful bool) (*entity.FeedbackCounts, error)
		// GetFeedbackCounts returns aggregate counts without recording a vote.
		GetFeedbackCounts(ctx context.Context, slug string) (*entity.FeedbackCounts, error)

		// GetInsightSeo returns the explicit SEO overrides or nil when none set.
		GetInsightSeo(ctx context.Context, insightId string) (*entity.InsightSeo, error)
		SetInsightSeo(ctx context.Context, slug string, seo *entity.InsightSeo) error
	}

	Projects interface {
		AddProject(ctx context.Context, in *entity.ProjectInsert) (*entity.Project, error)
		// GetProjectsPaged orders by sort order ascending, creation time
		// descending on ties, before pagination.
		GetProjectsPaged(ctx context.Context, limit, offset int, filters entity.ProjectFilters) ([]entity.Project, error)
		GetProjectById(ctx context.Context, id string) (*entity.Project, error)
		// GetProjectFilterValues loads all projects and deduplicates their
		// industry and system type maps by the full locale-map value.
		GetProjectFilterValues(ctx context.Context) (*entity.ProjectFilterValues, error)
		UpdateProject(ctx context.Context, id string, in *entity.ProjectInsert) (*entity.Project, error)
		DeleteProject(ctx context.Context, id string) error
	}

	Solutions interface {
		AddSolution(ctx context.Context, in *entity.SolutionInsert) (*entity.Solution, error)
		// GetActiveSolutions orders by sort order ascending.
		GetActiveSolutions(ctx context.Context) ([]entity.Solution, error)
		GetSolutionBySlug(ctx context.Context, slug string) (*entity.Solution, error)
		UpdateSolution(ctx context.Context, slug string, in *entity.SolutionInsert) (*entity.Solution, error)
		DeleteSolution(ctx context.Context, slug string) error
	}

	Clients interface {
		AddClient(ctx context.Context, in *entity.ClientInsert) (*entity.Client, error)
		GetActiveClients(ctx context.Context) ([]entity.Client, error)
		GetClientById(ctx context.Context, id string) (*entity.Client, error)
		UpdateClient(ctx context.Context, id string, in *entity.ClientInsert) (*entity.Client, error)
		DeleteClient(ctx context.Context, id string) error
	}

	About interface {
		AddAboutPage(ctx context.Context, in *entity.AboutPageInsert) (*entity.AboutPage, error)
		// GetActiveAboutPage returns the first active row or ErrNotFound.
		GetActiveAboutPage(ctx context.Context) (*entity.AboutPage, error)
		UpdateAboutPage(ctx context.Context, id string, in *entity.AboutPageInsert) (*entity.AboutPage, error)
		DeleteAboutPage(ctx context.Context, id string) error
	}

	Contacts interface {
		AddContact(ctx context.Context, in *entity.ContactInsert) (*entity.Contact, error)
		GetContactsPaged(ctx context.Context, limit, offset int, filters entity.ContactFilters) ([]entity.Contact, error)
		GetContactById(ctx context.Context, id string) (*entity.Contact, error)
		UpdateContactStatus(ctx context.Context, id string, status entity.ContactStatus) (*entity.Contact, error)
		DeleteContact(ctx context.Context, id string) error
	}

	Admin interface {
		AddAdmin(ctx context.Context, username, passwordHash string) error
		DeleteAdmin(ctx context.Context, username string) error
		ChangePassword(ctx context.Context, username, newHash string) error
		PasswordHashByUsername(ctx context.Context, username string) (string, error)
	}

	// Mailer delivers transactional notifications. Failures never fail the
	// request that triggered them.
	Mailer interface {
		SendContactNotification(ctx context.Context, contact *entity.Contact) error
	}

	// FileStore uploads media and returns its public URL.
	FileStore interface {
		UploadContentImage(ctx context.Context, rawB64Image, folder, imageName string) (string, error)
	}

	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
		GetContext(ctx context.Context, dest any, query string, args ...any) error
		SelectContext(ctx context.Context, dest any, query string, args ...any) error
		QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error)
		QueryRowxContext(ctx context.Context, query string, args ...any) *sqlx.Row
		NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
	}

	Repository interface {
		Insights() Insights
		Projects() Projects
		Solutions() Solutions
		Clients() Clients
		About() About
		Contacts() Contacts
		Admin() Admin
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
		Ping(ctx context.Context) error
		DB() DB
		Close()
	}
)
