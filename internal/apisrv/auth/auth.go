package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"

	"github.com/atlasdigitalize/atlas-website-backend/internal/apisrv/rest"
	"github.com/atlasdigitalize/atlas-website-backend/internal/auth/jwt"
	"github.com/atlasdigitalize/atlas-website-backend/internal/auth/pwhash"
	"github.com/atlasdigitalize/atlas-website-backend/internal/dependency"
)

// AuthHeaderKey is the header carrying the bearer token.
const AuthHeaderKey = "Authorization"

// Server implements the auth endpoints: login, register, me, logout.
type Server struct {
	adminRepository dependency.Admin
	pwhash          *pwhash.PasswordHasher
	JwtAuth         *jwtauth.JWTAuth
	jwtTTL          time.Duration
	c               *Config
	masterHash      string
}

// Config contains the configuration for the auth server.
type Config struct {
	JWTSecret                string `mapstructure:"jwt_secret"`
	MasterPassword           string `mapstructure:"master_password"`
	PasswordHasherSaltSize   int    `mapstructure:"password_hasher_salt_size"`
	PasswordHasherIterations int    `mapstructure:"password_hasher_iterations"`
	JWTTTL                   string `mapstructure:"jwt_ttl"`
}

// New creates a new auth server.
func New(c *Config, ar dependency.Admin) (*Server, error) {
	ph, err := pwhash.New(c.PasswordHasherSaltSize, c.PasswordHasherIterations)
	if err != nil {
		return nil, err
	}
	hash, err := ph.HashPassword(c.MasterPassword)
	if err != nil {
		return nil, err
	}
	if err := ph.Validate(c.MasterPassword, hash); err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return nil, err
	}

	return &Server{
		adminRepository: ar,
		pwhash:          ph,
		JwtAuth:         jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		c:               c,
		jwtTTL:          ttl,
		masterHash:      hash,
	}, nil
}

// Routes mounts the auth endpoints. Me and logout require a valid token.
func (s *Server) Routes(r chi.Router) {
	r.Post("/login", s.login)
	r.Post("/register", s.register)
	r.Post("/change-password", s.changePassword)
	r.Post("/delete", s.deleteUser)
	r.Group(func(r chi.Router) {
		r.Use(s.WithAuth)
		r.Get("/me", s.me)
		r.Post("/logout", s.logout)
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (lr *loginRequest) Bind(r *http.Request) error {
	if lr.Username == "" || lr.Password == "" {
		return fmt.Errorf("username and password are required")
	}
	return nil
}

type tokenResponse struct {
	AuthToken string `json:"auth_token"`
}

func (tr *tokenResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// login issues a bearer token for a valid username and password pair.
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	data := &loginRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, rest.ErrInvalidRequest(err))
		return
	}

	username := strings.ToLower(data.Username)
	pwHash, err := s.adminRepository.PasswordHashByUsername(r.Context(), username)
	if err != nil {
		render.Render(w, r, rest.ErrUnauthorized(fmt.Errorf("not authenticated")))
		return
	}
	if err := s.pwhash.Validate(data.Password, pwHash); err != nil {
		render.Render(w, r, rest.ErrUnauthorized(fmt.Errorf("not authenticated")))
		return
	}

	token, err := jwt.NewToken(s.JwtAuth, s.jwtTTL, username)
	if err != nil {
		render.Render(w, r, rest.ErrInternalServerError(err))
		return
	}
	render.Render(w, r, &tokenResponse{AuthToken: token})
}

type registerRequest struct {
	loginRequest
	MasterPassword string `json:"master_password"`
}

// register creates a new admin user. It requires the master password.
func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	data := &registerRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, rest.ErrInvalidRequest(err))
		return
	}

	if err := s.pwhash.Validate(data.MasterPassword, s.masterHash); err != nil {
		render.Render(w, r, rest.ErrUnauthorized(fmt.Errorf("not authenticated")))
		return
	}

	username := strings.ToLower(data.Username)
	pwHash, err := s.pwhash.HashPassword(data.Password)
	if err != nil {
		render.Render(w, r, rest.ErrInternalServerError(err))
		return
	}
	if err := s.adminRepository.AddAdmin(r.Context(), username, pwHash); err != nil {
		rest.RenderError(w, r, err)
		return
	}

	token, err := jwt.NewToken(s.JwtAuth, s.jwtTTL, username)
	if err != nil {
		render.Render(w, r, rest.ErrInternalServerError(err))
		return
	}
	render.Status(r, http.StatusCreated)
	render.Render(w, r, &tokenResponse{AuthToken: token})
}

type changePasswordRequest struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (cr *changePasswordRequest) Bind(r *http.Request) error {
	if cr.Username == "" || cr.CurrentPassword == "" || cr.NewPassword == "" {
		return fmt.Errorf("username, current_password and new_password are required")
	}
	return nil
}

// changePassword changes the password of an admin user. It accepts either the
// user's current password or the master password.
func (s *Server) changePassword(w http.ResponseWriter, r *http.Request) {
	data := &changePasswordRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, rest.ErrInvalidRequest(err))
		return
	}

	username := strings.ToLower(data.Username)
	currentHash, err := s.adminRepository.PasswordHashByUsername(r.Context(), username)
	if err != nil {
		render.Render(w, r, rest.ErrUnauthorized(fmt.Errorf("not authenticated")))
		return
	}
	if err := s.pwhash.Validate(data.CurrentPassword, s.masterHash); err != nil {
		if err := s.pwhash.Validate(data.CurrentPassword, currentHash); err != nil {
			render.Render(w, r, rest.ErrUnauthorized(fmt.Errorf("not authenticated")))
			return
		}
	}

	newHash, err := s.pwhash.HashPassword(data.NewPassword)
	if err != nil {
		render.Render(w, r, rest.ErrInternalServerError(err))
		return
	}
	if err := s.adminRepository.ChangePassword(r.Context(), username, newHash); err != nil {
		rest.RenderError(w, r, err)
		return
	}

	token, err := jwt.NewToken(s.JwtAuth, s.jwtTTL, username)
	if err != nil {
		render.Render(w, r, rest.ErrInternalServerError(err))
		return
	}
	render.Render(w, r, &tokenResponse{AuthToken: token})
}

type deleteUserRequest struct {
	Username       string `json:"username"`
	MasterPassword string `json:"master_password"`
}

func (dr *deleteUserRequest) Bind(r *http.Request) error {
	if dr.Username == "" || dr.MasterPassword == "" {
		return fmt.Errorf("username and master_password are required")
	}
	return nil
}

// deleteUser removes an admin user. It requires the master password.
func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	data := &deleteUserRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, rest.ErrInvalidRequest(err))
		return
	}

	if err := s.pwhash.Validate(data.MasterPassword, s.masterHash); err != nil {
		render.Render(w, r, rest.ErrUnauthorized(fmt.Errorf("not authenticated")))
		return
	}

	if err := s.adminRepository.DeleteAdmin(r.Context(), strings.ToLower(data.Username)); err != nil {
		rest.RenderError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]string{"message": "user deleted"})
}

type meResponse struct {
	Username string `json:"username"`
}

func (mr *meResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	subject, err := s.subjectFromRequest(r)
	if err != nil {
		render.Render(w, r, rest.ErrUnauthorized(err))
		return
	}
	render.Render(w, r, &meResponse{Username: subject})
}

// logout exists for the frontend contract; tokens are stateless so there is
// nothing to revoke server side.
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]string{"message": "logged out"})
}

func (s *Server) subjectFromRequest(r *http.Request) (string, error) {
	token := strings.TrimPrefix(r.Header.Get(AuthHeaderKey), "Bearer ")
	return jwt.VerifyToken(s.JwtAuth, token)
}

// WithAuth middleware rejects requests without a valid bearer token before
// any domain logic runs.
func (s *Server) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get(AuthHeaderKey), "Bearer ")
		if _, err := jwt.VerifyToken(s.JwtAuth, token); err != nil {
			http.Error(w, fmt.Sprintf("invalid token %v", err.Error()), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
