package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/tigerbridge/tigerbridge/internal/domain"
	"github.com/tigerbridge/tigerbridge/internal/service/authservice"
	"github.com/tigerbridge/tigerbridge/pkg/response"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (chi.Router, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()

	r := chi.NewRouter()
	r.Get("/v1/admin/users", handler.ListUsers)
	r.Post("/v1/admin/users/{id}/activate", handler.Activate)
	r.Post("/v1/admin/users/{id}/deactivate", handler.Deactivate)
	return r, service
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestListUsers(t *testing.T) {
	router, service := NewMock(t)

	tests := []struct {
		name        string
		target      string
		prepareMock func()
	}{
		{
			name:   "Defaults applied when paging params omitted",
			target: "/v1/admin/users",
			prepareMock: func() {
				service.EXPECT().ListUsers(gomock.Any(), 0, 100).Return([]domain.User{
					{ID: 1, Email: "admin@example.com", IsActive: true, IsSuperuser: true},
					{ID: 2, Email: "user@example.com"},
				}, nil)
			},
		},
		{
			name:   "Explicit paging params",
			target: "/v1/admin/users?skip=10&limit=5",
			prepareMock: func() {
				service.EXPECT().ListUsers(gomock.Any(), 10, 5).Return([]domain.User{}, nil)
			},
		},
		{
			name:   "Unparsable params fall back to defaults",
			target: "/v1/admin/users?skip=abc&limit=-1",
			prepareMock: func() {
				service.EXPECT().ListUsers(gomock.Any(), 0, 100).Return([]domain.User{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			resp := decodeEnvelope(t, rr)
			assert.Equal(t, "Users retrieved successfully", resp.Message)
		})
	}
}

func TestSetUserActive(t *testing.T) {
	router, service := NewMock(t)

	tests := []struct {
		name            string
		target          string
		prepareMock     func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name:   "Activate existing user",
			target: "/v1/admin/users/7/activate",
			prepareMock: func() {
				service.EXPECT().SetUserActive(gomock.Any(), 7, true).
					Return(&domain.User{ID: 7, Email: "user@example.com", IsActive: true}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "User activated successfully",
		},
		{
			name:   "Deactivate existing user",
			target: "/v1/admin/users/7/deactivate",
			prepareMock: func() {
				service.EXPECT().SetUserActive(gomock.Any(), 7, false).
					Return(&domain.User{ID: 7, Email: "user@example.com"}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "User deactivated successfully",
		},
		{
			name:   "Missing user",
			target: "/v1/admin/users/99/activate",
			prepareMock: func() {
				service.EXPECT().SetUserActive(gomock.Any(), 99, true).
					Return(nil, authservice.ErrUserNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "User not found",
		},
		{
			name:            "Non-numeric id",
			target:          "/v1/admin/users/abc/activate",
			prepareMock:     func() {},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "User not found",
		},
		{
			name:   "Repository failure",
			target: "/v1/admin/users/7/activate",
			prepareMock: func() {
				service.EXPECT().SetUserActive(gomock.Any(), 7, true).Return(nil, assert.AnError)
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, tt.target, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decodeEnvelope(t, rr)
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}
