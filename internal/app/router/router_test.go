package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authentity "vuttr_backend/internal/feature/auth/domain/entity"
	authhandler "vuttr_backend/internal/feature/auth/transport/handler"
	toolentity "vuttr_backend/internal/feature/tools/domain/entity"
	toolhandler "vuttr_backend/internal/feature/tools/transport/handler"
)

const testSecret = "router-test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// stubAuthUsecase satisfies the auth handler's usecase interface.
type stubAuthUsecase struct{}

func (stubAuthUsecase) Signup(ctx context.Context, name, email, password string) (*authentity.User, string, error) {
	return &authentity.User{ID: "user-1", Name: name, Email: email}, "token", nil
}

func (stubAuthUsecase) Login(ctx context.Context, email, password string) (*authentity.User, string, error) {
	return &authentity.User{ID: "user-1", Email: email}, "token", nil
}

func (stubAuthUsecase) ListUsers(ctx context.Context) ([]authentity.User, error) {
	return []authentity.User{}, nil
}

// stubToolUsecase satisfies the tool handler's usecase interface.
type stubToolUsecase struct{}

func (stubToolUsecase) AddTool(ctx context.Context, ownerID, title, link, description string, tags []string) (*toolentity.Tool, error) {
	return &toolentity.Tool{ID: "tool-1", OwnerID: ownerID}, nil
}

func (stubToolUsecase) RemoveTool(ctx context.Context, toolID string) error { return nil }

func (stubToolUsecase) ListOwned(ctx context.Context, ownerID string) ([]toolentity.Tool, error) {
	return []toolentity.Tool{}, nil
}

func (stubToolUsecase) ListByTag(ctx context.Context, ownerID, tag string) ([]toolentity.Tool, error) {
	return []toolentity.Tool{}, nil
}

func newRouterUnderTest(t *testing.T) *gin.Engine {
	t.Helper()
	return NewRouter(
		authhandler.NewAuthHandler(stubAuthUsecase{}),
		toolhandler.NewToolHandler(stubToolUsecase{}),
		testSecret,
	)
}

func signToken(t *testing.T, secret string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestRouter_OpenRoutes(t *testing.T) {
	router := newRouterUnderTest(t)

	tests := []struct {
		method         string
		target         string
		expectedStatus int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/users/all", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.target, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_RootMessage(t *testing.T) {
	router := newRouterUnderTest(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "apivuttr online"}`, w.Body.String())
}

func TestRouter_ToolRoutesRequireToken(t *testing.T) {
	router := newRouterUnderTest(t)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/tools"},
		{http.MethodGet, "/tools?tag=cli&userId=user-1"},
		{http.MethodGet, "/tools/all/user-1"},
		{http.MethodDelete, "/tools/tool-1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.target, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "Authentication failed!")
		})
	}
}

func TestRouter_ToolRoutesAcceptValidToken(t *testing.T) {
	router := newRouterUnderTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tools/all/user-1", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret))

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newRouterUnderTest(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message": "Could not find this route."}`, w.Body.String())
}
