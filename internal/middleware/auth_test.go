package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tigerbridge/tigerbridge/internal/domain"
	"github.com/tigerbridge/tigerbridge/pkg/auth"
	"github.com/tigerbridge/tigerbridge/pkg/response"
)

type userSourceStub struct {
	users map[string]*domain.User
	err   error
}

func (s *userSourceStub) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[email], nil
}

func issueToken(t *testing.T, jwtService *auth.JWTService, email string) string {
	token, err := jwtService.GenerateJWT(email, time.Now().Add(time.Hour))
	assert.NoError(t, err)
	return token
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, "ok", nil)
	})
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestAuthenticate(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	activeUser := &domain.User{ID: 1, Email: "user@example.com", IsActive: true}
	source := &userSourceStub{users: map[string]*domain.User{"user@example.com": activeUser}}
	mw := NewAuth(jwtService, source)

	tests := []struct {
		name         string
		header       string
		source       *userSourceStub
		expectedCode int
	}{
		{
			name:         "Missing header",
			header:       "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Wrong scheme",
			header:       "Basic dXNlcjpwYXNz",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Garbage token",
			header:       "Bearer not-a-jwt",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Token signed with another secret",
			header:       "Bearer " + issueToken(t, auth.NewJWTService("other-secret"), "user@example.com"),
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Subject no longer exists",
			header:       "Bearer " + issueToken(t, jwtService, "gone@example.com"),
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Valid token",
			header:       "Bearer " + issueToken(t, jwtService, "user@example.com"),
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/accounts/lookup", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			mw.Authenticate(okHandler()).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decodeEnvelope(t, rr)
			assert.Equal(t, tt.expectedCode, resp.Code)
		})
	}
}

func TestAuthenticateUserLookupFailure(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	source := &userSourceStub{err: errors.New("db unavailable")}
	mw := NewAuth(jwtService, source)

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts/lookup", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, "user@example.com"))
	rr := httptest.NewRecorder()

	mw.Authenticate(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestAuthenticateStoresUserInContext(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	activeUser := &domain.User{ID: 1, Email: "user@example.com", IsActive: true}
	source := &userSourceStub{users: map[string]*domain.User{"user@example.com": activeUser}}
	mw := NewAuth(jwtService, source)

	var seen *domain.User
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserFromContext(r.Context())
		response.Success(w, "ok", nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts/lookup", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, "user@example.com"))
	rr := httptest.NewRecorder()

	mw.Authenticate(handler).ServeHTTP(rr, req)

	assert.Equal(t, activeUser, seen)
}

func TestRequireActive(t *testing.T) {
	mw := NewAuth(auth.NewJWTService("test-secret"), &userSourceStub{})

	tests := []struct {
		name            string
		user            *domain.User
		expectedCode    int
		expectedMessage string
	}{
		{
			name:            "No authenticated user",
			user:            nil,
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Not authenticated",
		},
		{
			name:            "Inactive account gets 403, not 401",
			user:            &domain.User{ID: 1, Email: "user@example.com"},
			expectedCode:    http.StatusForbidden,
			expectedMessage: "Inactive user. Contact administrator.",
		},
		{
			name:            "Active account passes",
			user:            &domain.User{ID: 1, Email: "user@example.com", IsActive: true},
			expectedCode:    http.StatusOK,
			expectedMessage: "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/accounts/lookup", nil)
			if tt.user != nil {
				req = req.WithContext(context.WithValue(req.Context(), userKey, tt.user))
			}
			rr := httptest.NewRecorder()

			mw.RequireActive(okHandler()).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decodeEnvelope(t, rr)
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}

func TestRequireSuperuser(t *testing.T) {
	mw := NewAuth(auth.NewJWTService("test-secret"), &userSourceStub{})

	tests := []struct {
		name         string
		user         *domain.User
		expectedCode int
	}{
		{
			name:         "No authenticated user",
			user:         nil,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Active but ordinary user",
			user:         &domain.User{ID: 1, Email: "user@example.com", IsActive: true},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Superuser passes",
			user:         &domain.User{ID: 1, Email: "admin@example.com", IsActive: true, IsSuperuser: true},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil)
			if tt.user != nil {
				req = req.WithContext(context.WithValue(req.Context(), userKey, tt.user))
			}
			rr := httptest.NewRecorder()

			mw.RequireSuperuser(okHandler()).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestRecoverer(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts", nil)
	rr := httptest.NewRecorder()

	Recoverer(handler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decodeEnvelope(t, rr)
	assert.Equal(t, response.StatusError, resp.Status)
	assert.Equal(t, "Internal server error", resp.Message)
}
