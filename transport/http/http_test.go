package http_test

import (
	"net/http"
	"net/http/httptest"
	"petcare/config"
	jwtMocks "petcare/infras/jwt/mocks"
	"petcare/infras/otel/mocks"
	"petcare/permissions"
	cacheMocks "petcare/shared/cache/mocks"
	"petcare/shared/constant"
	transport "petcare/transport/http"
	"petcare/transport/http/middleware"
	"petcare/transport/http/router"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) *transport.HTTP {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvDevelopment
	cfg.App.Metrics.Enable = true
	cfg.App.Metrics.Path = "/metrics"

	appMiddleware := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cacheMocks.NewMockRedisCache(ctrl))
	auth := middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), mocks.NewOtel(), permissions.Get(), cfg)

	return transport.New(cfg, router.New(router.DomainHandlers{}), appMiddleware, auth)
}

func TestHTTP_Routes(t *testing.T) {
	server := newServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"health", http.MethodGet, "/health", http.StatusOK, "OK"},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK, "petcare_"},
		{"protected route needs token", http.MethodPost, "/v1/bookings", http.StatusUnauthorized, "Missing authorization header"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHTTP_HealthDuringShutdown(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	server.State = transport.ServerStateInGracePeriod

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), constant.ResponseErrorPrepareShutdown)
}
