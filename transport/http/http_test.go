package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"trekdesk/config"
	"trekdesk/infras/jwt"
	jwtMocks "trekdesk/infras/jwt/mocks"
	otelMocks "trekdesk/infras/otel/mocks"
	"trekdesk/internal/domains/auth/model/dto"
	authMocks "trekdesk/internal/domains/auth/service/mocks"
	"trekdesk/internal/handlers/auth"
	"trekdesk/permissions"
	cacheMocks "trekdesk/shared/cache/mocks"
	transportHTTP "trekdesk/transport/http"
	"trekdesk/transport/http/middleware"
	"trekdesk/transport/http/router"
)

type fixture struct {
	jwt     *jwtMocks.MockJWT
	auth    *authMocks.MockAuth
	server  *transportHTTP.HTTP
	handler http.Handler
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	otel := otelMocks.NewOtel()
	cfg := &config.Config{}

	f := fixture{
		jwt:  jwtMocks.NewMockJWT(ctrl),
		auth: authMocks.NewMockAuth(ctrl),
	}

	routes := router.New(router.DomainHandlers{Auth: auth.New(f.auth, otel)})

	f.server = transportHTTP.New(
		cfg,
		routes,
		middleware.NewAppMiddleware(otel, cfg, cacheMocks.NewMockRedisCache(ctrl)),
		middleware.NewAuthRoleMiddleware(f.jwt, otel, permissions.Get(), cfg),
		nil,
	)
	f.handler = f.server.Handler()

	return f
}

func serve(handler http.Handler, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	return recorder
}

func TestHealth(t *testing.T) {
	f := setup(t)

	res := serve(f.handler, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, transportHTTP.ServerStateReady, f.server.State())
	assert.NotEmpty(t, res.Header().Get("X-Request-ID"))
}

func TestLoginSkipsAuth(t *testing.T) {
	f := setup(t)

	f.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.LoginResponse{AccessToken: "access"}, nil)

	body := strings.NewReader(`{"email":"ops@trekdesk.io","password":"secret"}`)
	res := serve(f.handler, httptest.NewRequest(http.MethodPost, "/v1/auth/login", body))

	assert.Equal(t, http.StatusOK, res.Code)
}

func TestProtectedRouteNeedsToken(t *testing.T) {
	f := setup(t)

	res := serve(f.handler, httptest.NewRequest(http.MethodPatch, "/v1/auth/password", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestCreateAdminNeedsSuperadmin(t *testing.T) {
	f := setup(t)

	f.jwt.EXPECT().
		ValidateToken(gomock.Any(), "token", jwt.AccessToken).
		Return(&jwt.Claims{AdminID: 2, Email: "ops@trekdesk.io", Role: "admin"}, nil)

	request := httptest.NewRequest(http.MethodPost, "/v1/auth/admins", strings.NewReader(`{}`))
	request.Header.Set("Authorization", "Bearer token")

	res := serve(f.handler, request)

	assert.Equal(t, http.StatusForbidden, res.Code)
}

func TestAccessTokenQueryParam(t *testing.T) {
	f := setup(t)

	f.jwt.EXPECT().
		ValidateToken(gomock.Any(), "token", jwt.AccessToken).
		Return(&jwt.Claims{AdminID: 2, Email: "ops@trekdesk.io", Role: "superadmin"}, nil)
	f.auth.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), int64(2)).Return(nil)

	body := strings.NewReader(`{"current_password":"old-password","new_password":"new-password"}`)
	res := serve(f.handler, httptest.NewRequest(http.MethodPatch, "/v1/auth/password?access_token=token", body))

	assert.Equal(t, http.StatusOK, res.Code)
}
