package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"

	"github.com/atlasdigitalize/atlas-website-backend/internal/apisrv/admin"
	"github.com/atlasdigitalize/atlas-website-backend/internal/apisrv/auth"
	"github.com/atlasdigitalize/atlas-website-backend/internal/apisrv/frontend"
	"github.com/atlasdigitalize/atlas-website-backend/internal/middleware"
)

// Config is the configuration for the http server.
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Server is the http server.
type Server struct {
	hs   *http.Server
	c    *Config
	done chan struct{}
}

// New creates a new server.
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) router(
	adminServer *admin.Server,
	frontendServer *frontend.Server,
	authServer *auth.Server,
) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.c.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodOptions,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
	}))
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Use(middleware.ClientIdentifier)

	// anonymous writes (contact form, feedback votes) are rate limited per
	// client ip; reads are not.
	publicWriteLimiter := httprate.Limit(
		10,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(mutationsOnly(publicWriteLimiter))
			frontendServer.Routes(r)
		})

		r.Route("/auth", func(r chi.Router) {
			authServer.Routes(r)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authServer.WithAuth)
			adminServer.Routes(r)
		})
	})

	return r
}

// mutationsOnly applies mw to everything except GET and HEAD requests.
func mutationsOnly(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			limited.ServeHTTP(w, r)
		})
	}
}

// Start starts the server. It returns once the listener is up; use Done to
// wait for shutdown.
func (s *Server) Start(ctx context.Context,
	adminServer *admin.Server,
	frontendServer *frontend.Server,
	authServer *auth.Server,
) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:    listenerAddr,
		Handler: s.router(adminServer, frontendServer, authServer),
	}

	go func() {
		slog.Info("http server listening", "addr", fmt.Sprintf("http://%s", listenerAddr))
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Info("http server returned")
		} else {
			slog.Error("http server exited with an error", "err", err)
		}
		close(s.done)
	}()

	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}
