package app

import (
	"context"
	"log/slog"

	"github.com/atlasdigitalize/atlas-website-backend/config"
	httpapi "github.com/atlasdigitalize/atlas-website-backend/internal/api/http"
	"github.com/atlasdigitalize/atlas-website-backend/internal/apisrv/admin"
	"github.com/atlasdigitalize/atlas-website-backend/internal/apisrv/auth"
	"github.com/atlasdigitalize/atlas-website-backend/internal/apisrv/frontend"
	"github.com/atlasdigitalize/atlas-website-backend/internal/bucket"
	"github.com/atlasdigitalize/atlas-website-backend/internal/dependency"
	"github.com/atlasdigitalize/atlas-website-backend/internal/mail"
	"github.com/atlasdigitalize/atlas-website-backend/internal/store"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   dependency.Repository
	c    *config.Config
	done chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.InfoContext(ctx, "starting atlas website backend")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.ErrorContext(ctx, "couldn't connect to mysql", "err", err)
		return err
	}

	authS, err := auth.New(&a.c.Auth, a.db.Admin())
	if err != nil {
		slog.ErrorContext(ctx, "failed to create auth server", "err", err)
		return err
	}

	mailer, err := mail.New(&a.c.Mailer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create mailer", "err", err)
		return err
	}

	fileStore, err := bucket.New(&a.c.Bucket)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create file store", "err", err)
		return err
	}

	adminS := admin.New(a.db, fileStore)
	frontendS := frontend.New(&a.c.Frontend, a.db, mailer)

	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, adminS, frontendS, authS); err != nil {
		slog.ErrorContext(ctx, "cannot start http server", "err", err)
		return err
	}

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.ErrorContext(ctx, "http server shutdown failed", "err", err)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
