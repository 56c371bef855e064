package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "trekdesk/infras/otel/mocks"
	"trekdesk/internal/domains/auth/model/dto"
	serviceMocks "trekdesk/internal/domains/auth/service/mocks"
	"trekdesk/internal/handlers/auth"
	"trekdesk/shared/constant"
	"trekdesk/shared/failure"
)

func setup(t *testing.T) (*serviceMocks.MockAuth, chi.Router) {
	t.Helper()

	service := serviceMocks.NewMockAuth(gomock.NewController(t))
	router := chi.NewRouter()

	handler := auth.New(service, otelMocks.NewOtel())
	handler.Router(router)

	return service, router
}

func serve(router chi.Router, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service, router := setup(t)

		service.EXPECT().
			Login(gomock.Any(), dto.LoginRequest{Email: "ops@trekdesk.io", Password: "secret"}).
			Return(dto.LoginResponse{AccessToken: "access"}, nil)

		res := serve(router, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ops@trekdesk.io","password":"secret"}`)))

		assert.Equal(t, http.StatusOK, res.Code)
		assert.Contains(t, res.Body.String(), `"access_token":"access"`)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		service, router := setup(t)

		service.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.LoginResponse{}, failure.Unauthorized("Invalid email or password"))

		res := serve(router, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ops@trekdesk.io","password":"nope"}`)))

		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, router := setup(t)

		res := serve(router, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ops","password":"x"}`)))

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}

func TestCreateAdmin(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().CreateAdmin(gomock.Any(), gomock.Any()).Return(failure.Duplicate("email already registered"))

	body := `{"full_name":"Ops","email":"ops@trekdesk.io","password":"longenough"}`
	res := serve(router, httptest.NewRequest(http.MethodPost, "/auth/admins", strings.NewReader(body)))

	assert.Equal(t, http.StatusConflict, res.Code)
}

func TestChangePassword(t *testing.T) {
	body := `{"current_password":"old-password","new_password":"new-password"}`

	t.Run("uses the admin from the token", func(t *testing.T) {
		service, router := setup(t)

		service.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), int64(42)).Return(nil)

		request := httptest.NewRequest(http.MethodPatch, "/auth/password", strings.NewReader(body))
		request = request.WithContext(context.WithValue(request.Context(), constant.ContextKeyUserID, int64(42)))

		assert.Equal(t, http.StatusOK, serve(router, request).Code)
	})

	t.Run("requires an authenticated admin", func(t *testing.T) {
		_, router := setup(t)

		res := serve(router, httptest.NewRequest(http.MethodPatch, "/auth/password", strings.NewReader(body)))

		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})
}
