package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"reception/config"
	"reception/infras/jwt"
	"reception/infras/otel/mocks"
	"reception/permissions"
	"reception/shared/constant"
	"reception/transport/http/middleware"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const permissionsJSON = `{
  "endpoints": [
    {"path": "/v1/clock", "method": "GET", "skip": true},
    {"path": "/v1/billing/refunds", "method": "POST", "permissions": ["superadmin", "admin"]}
  ]
}`

type seen struct {
	userID string
	role   string
	token  string
}

func setup(t *testing.T) (http.Handler, jwt.JWT, *seen) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "reception"
	cfg.App.APIKey = "internal-key"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	perms, err := permissions.Parse([]byte(permissionsJSON))
	require.NoError(t, err)

	jwtService := jwt.New(cfg)
	authRole := middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), perms, cfg)

	got := &seen{}
	capture := func(w http.ResponseWriter, r *http.Request) {
		got.userID, _ = r.Context().Value(constant.ContextKeyUserID).(string)
		got.role, _ = r.Context().Value(constant.ContextKeyUserRole).(string)
		got.token, _ = r.Context().Value(constant.ContextKeyToken).(string)
		w.WriteHeader(http.StatusNoContent)
	}

	router := chi.NewRouter()
	router.Route("/v1", func(group chi.Router) {
		group.Use(authRole.APIKey)
		group.Use(authRole.Auth)
		group.Use(authRole.RBAC)

		group.Get("/clock", capture)
		group.Get("/billing/stats", capture)
		group.Post("/billing/refunds", capture)
	})

	return router, jwtService, got
}

func token(t *testing.T, jwtService jwt.JWT, role string) string {
	t.Helper()

	pair, err := jwtService.GenerateTokenPair(jwt.Staff{UserID: "7", Email: "desk@hotel.test", Role: role})
	require.NoError(t, err)

	return pair.AccessToken
}

func TestAuth(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		router, _, _ := setup(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/billing/stats", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing authorization header")
	})

	t.Run("malformed header", func(t *testing.T) {
		router, _, _ := setup(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/billing/stats", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Token abc")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("refresh token is not accepted", func(t *testing.T) {
		router, jwtService, _ := setup(t)

		pair, err := jwtService.GenerateTokenPair(jwt.Staff{UserID: "7", Email: "desk@hotel.test", Role: constant.RoleReception})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/v1/billing/stats", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+pair.RefreshToken)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token fills the context and forwards the bearer", func(t *testing.T) {
		router, jwtService, got := setup(t)
		access := token(t, jwtService, constant.RoleReception)

		req := httptest.NewRequest(http.MethodGet, "/v1/billing/stats", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+access)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "7", got.userID)
		assert.Equal(t, constant.RoleReception, got.role)
		assert.Equal(t, access, got.token)
	})

	t.Run("websocket upgrade may carry the token in the query", func(t *testing.T) {
		router, jwtService, got := setup(t)
		access := token(t, jwtService, constant.RoleReception)

		req := httptest.NewRequest(http.MethodGet, "/v1/billing/stats?token="+access, nil)
		req.Header.Set("Upgrade", "websocket")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "7", got.userID)
	})

	t.Run("skipped route needs no token", func(t *testing.T) {
		router, _, _ := setup(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/clock", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestRBAC(t *testing.T) {
	tests := []struct {
		role string
		code int
	}{
		{role: constant.RoleReception, code: http.StatusForbidden},
		{role: constant.RoleAdmin, code: http.StatusNoContent},
		{role: constant.RoleSuperAdmin, code: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			router, jwtService, _ := setup(t)

			req := httptest.NewRequest(http.MethodPost, "/v1/billing/refunds", nil)
			req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token(t, jwtService, tt.role))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestAPIKey(t *testing.T) {
	t.Run("valid key skips staff auth", func(t *testing.T) {
		router, _, got := setup(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/billing/refunds", nil)
		req.Header.Set(constant.RequestHeaderAPIKey, "internal-key")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "system", got.userID)
	})

	t.Run("wrong key is forbidden", func(t *testing.T) {
		router, _, _ := setup(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/billing/stats", nil)
		req.Header.Set(constant.RequestHeaderAPIKey, "guess")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
