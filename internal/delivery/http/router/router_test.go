package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bootcamper/internal/delivery/http/middleware"
	"bootcamper/internal/delivery/http/router/handler"
	"bootcamper/internal/delivery/http/validator"
	"bootcamper/internal/domain/entity"
	"bootcamper/internal/domain/service"
	mockSvc "bootcamper/internal/mocks/service"
	mockUsecase "bootcamper/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixtures struct {
	echo         *echo.Echo
	bootcampUC   *mockUsecase.MockBootcampUsecase
	courseUC     *mockUsecase.MockCourseUsecase
	authUC       *mockUsecase.MockAuthUsecase
	tokenService *mockSvc.MockTokenService
}

func newRouterFixtures(t *testing.T) routerFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := routerFixtures{
		echo:         echo.New(),
		bootcampUC:   mockUsecase.NewMockBootcampUsecase(t),
		courseUC:     mockUsecase.NewMockCourseUsecase(t),
		authUC:       mockUsecase.NewMockAuthUsecase(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	fx.echo.Validator = validator.New()
	fx.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		BootcampHandler: handler.NewBootcampHandler(fx.bootcampUC, logger),
		CourseHandler:   handler.NewCourseHandler(fx.courseUC, logger),
		AuthHandler:     handler.NewAuthHandler(fx.authUC, logger),
		AuthMiddleware:  middleware.NewAuthMiddleware(fx.tokenService, logger),
	}).RegisterRoutes(fx.echo)

	return fx
}

func (fx routerFixtures) serve(method, target, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func TestRouter_Health(t *testing.T) {
	fx := newRouterFixtures(t)

	rec := fx.serve(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true, "data": {"status": "ok"}}`, rec.Body.String())
}

func TestRouter_RoutesAreMountedUnderAPI(t *testing.T) {
	fx := newRouterFixtures(t)

	registered := make(map[string]bool)
	for _, r := range fx.echo.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"GET /api/bootcamps",
		"POST /api/bootcamps",
		"GET /api/bootcamps/:id",
		"PATCH /api/bootcamps/:id",
		"DELETE /api/bootcamps/:id",
		"GET /api/bootcamps/radius/:zipcode/:distance",
		"PATCH /api/bootcamps/:id/photo",
		"GET /api/bootcamps/:bootcampId/courses",
		"POST /api/bootcamps/:bootcampId/courses",
		"GET /api/courses",
		"GET /api/courses/:courseId",
		"PATCH /api/courses/:courseId",
		"DELETE /api/courses/:courseId",
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/auth/me",
	} {
		assert.True(t, registered[route], route)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	fx := newRouterFixtures(t)

	rec := fx.serve(http.MethodGet, "/api/unknown", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestRouter_Me_RequiresBearerToken(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		setup         func(fx routerFixtures)
	}{
		{name: "missing header"},
		{name: "not a bearer token", authorization: "Basic am9objpwdw=="},
		{
			name:          "invalid token",
			authorization: "Bearer broken",
			setup: func(fx routerFixtures) {
				fx.tokenService.EXPECT().ValidateToken("broken").Return(nil, errors.New("token is malformed"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newRouterFixtures(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			rec := fx.serve(http.MethodGet, "/api/auth/me", tt.authorization)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"success": false, "error": "Not authorized to access this route"}`, rec.Body.String())
		})
	}
}

func TestRouter_Me_WithValidToken(t *testing.T) {
	fx := newRouterFixtures(t)

	claims := &service.Claims{Role: "publisher"}
	claims.Subject = "u1"
	fx.tokenService.EXPECT().ValidateToken("good").Return(claims, nil)
	fx.authUC.EXPECT().
		Me(mock.Anything, "u1").
		Return(&entity.User{ID: "u1", Username: "johndoe", Role: entity.RolePublisher}, nil)

	rec := fx.serve(http.MethodGet, "/api/auth/me", "Bearer good")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"johndoe"`)
}
