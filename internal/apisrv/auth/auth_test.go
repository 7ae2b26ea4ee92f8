package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
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

const (
	jwtSecret      = "hehe"
	masterPassword = "FJKqDyBvr9pAQMB3f8Uj4s"

	username = "testusername"
	password = "testPassword"
)

func newTestServer(t *testing.T) (*Server, *mocks.Admin, chi.Router) {
	as := mocks.NewAdmin(t)
	c := &Config{
		JWTSecret:                jwtSecret,
		MasterPassword:           masterPassword,
		PasswordHasherSaltSize:   16,
		PasswordHasherIterations: 1000,
		JWTTTL:                   "60m",
	}
	authsrv, err := New(c, as)
	require.NoError(t, err)

	r := chi.NewRouter()
	authsrv.Routes(r)
	return authsrv, as, r
}

func postJSON(t *testing.T, r chi.Router, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	authsrv, as, r := newTestServer(t)

	pwHash, err := authsrv.pwhash.HashPassword(password)
	require.NoError(t, err)

	as.EXPECT().PasswordHashByUsername(mock.Anything, username).Return(pwHash, nil).Once()

	rec := postJSON(t, r, "/login", map[string]string{"username": username, "password": password})
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AuthToken string `json:"auth_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AuthToken)

	// wrong password
	as.EXPECT().PasswordHashByUsername(mock.Anything, username).Return(pwHash, nil).Once()
	rec = postJSON(t, r, "/login", map[string]string{"username": username, "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// unknown user
	as.EXPECT().PasswordHashByUsername(mock.Anything, "ghost").Return("", entity.ErrNotFound).Once()
	rec = postJSON(t, r, "/login", map[string]string{"username": "ghost", "password": password})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// missing fields
	rec = postJSON(t, r, "/login", map[string]string{"username": username})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister(t *testing.T) {
	_, as, r := newTestServer(t)

	as.EXPECT().AddAdmin(mock.Anything, username, mock.Anything).Return(nil).Once()

	rec := postJSON(t, r, "/register", map[string]string{
		"username":        username,
		"password":        password,
		"master_password": masterPassword,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		AuthToken string `json:"auth_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AuthToken)

	// wrong master password never reaches the repository
	rec = postJSON(t, r, "/register", map[string]string{
		"username":        username,
		"password":        password,
		"master_password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangePassword(t *testing.T) {
	authsrv, as, r := newTestServer(t)

	pwHash, err := authsrv.pwhash.HashPassword(password)
	require.NoError(t, err)

	// current password accepted
	as.EXPECT().PasswordHashByUsername(mock.Anything, username).Return(pwHash, nil).Once()
	as.EXPECT().ChangePassword(mock.Anything, username, mock.Anything).Return(nil).Once()

	rec := postJSON(t, r, "/change-password", map[string]string{
		"username":         username,
		"current_password": password,
		"new_password":     "brandNewPassword",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AuthToken string `json:"auth_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AuthToken)

	// master password accepted in place of the current one
	as.EXPECT().PasswordHashByUsername(mock.Anything, username).Return(pwHash, nil).Once()
	as.EXPECT().ChangePassword(mock.Anything, username, mock.Anything).Return(nil).Once()

	rec = postJSON(t, r, "/change-password", map[string]string{
		"username":         username,
		"current_password": masterPassword,
		"new_password":     "brandNewPassword",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// wrong current password never reaches the repository update
	as.EXPECT().PasswordHashByUsername(mock.Anything, username).Return(pwHash, nil).Once()
	rec = postJSON(t, r, "/change-password", map[string]string{
		"username":         username,
		"current_password": "nope",
		"new_password":     "brandNewPassword",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// missing fields
	rec = postJSON(t, r, "/change-password", map[string]string{"username": username})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteUser(t *testing.T) {
	_, as, r := newTestServer(t)

	as.EXPECT().DeleteAdmin(mock.Anything, username).Return(nil).Once()

	rec := postJSON(t, r, "/delete", map[string]string{
		"username":        username,
		"master_password": masterPassword,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// wrong master password never reaches the repository
	rec = postJSON(t, r, "/delete", map[string]string{
		"username":        username,
		"master_password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// unknown user
	as.EXPECT().DeleteAdmin(mock.Anything, "ghost").Return(entity.ErrNotFound).Once()
	rec = postJSON(t, r, "/delete", map[string]string{
		"username":        "ghost",
		"master_password": masterPassword,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMeAndWithAuth(t *testing.T) {
	authsrv, as, r := newTestServer(t)

	pwHash, err := authsrv.pwhash.HashPassword(password)
	require.NoError(t, err)
	as.EXPECT().PasswordHashByUsername(mock.Anything, username).Return(pwHash, nil).Once()

	rec := postJSON(t, r, "/login", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AuthToken string `json:"auth_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	token := fmt.Sprintf("Bearer %s", resp.AuthToken)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(AuthHeaderKey, token)
	mrec := httptest.NewRecorder()
	r.ServeHTTP(mrec, req)
	assert.Equal(t, http.StatusOK, mrec.Code)

	var me struct {
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(mrec.Body.Bytes(), &me))
	assert.Equal(t, username, me.Username)

	// no token
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	mrec = httptest.NewRecorder()
	r.ServeHTTP(mrec, req)
	assert.Equal(t, http.StatusUnauthorized, mrec.Code)

	// middleware on an arbitrary handler
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	handlerAuth := authsrv.WithAuth(nextHandler)

	req = httptest.NewRequest(http.MethodGet, "http://testing", nil)
	req.Header.Set(AuthHeaderKey, token)
	rec2 := httptest.NewRecorder()
	handlerAuth.ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusOK, rec2.Code)

	req.Header.Set(AuthHeaderKey, "bad token")
	rec2 = httptest.NewRecorder()
	handlerAuth.ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusUnauthorized, rec2.Code)
}
