package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"

	"taskapp/internal/adapter/http/handler"
	"taskapp/internal/adapter/database/sqlite/repository"
	"taskapp/internal/adapter/token"
	"taskapp/internal/core/service"
	"taskapp/internal/shared"
	"taskapp/pkg/test"
)

func buildRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db := test.InitTestDB()
	t.Cleanup(func() { db.Close() })

	userRepo := repository.NewUserRepository(db, nil)
	taskRepo := repository.NewTaskRepository(db, nil)

	userSvc := service.NewUserService(userRepo)
	taskSvc := service.NewTaskService(taskRepo, userSvc)

	tokens := token.NewJWT("test-secret")
	authSvc := service.NewAuthService(userSvc, tokens)

	logger, err := shared.NewAppLogger("taskapp-test")
	if err != nil {
		t.Fatalf("Failed to build logger: %v", err)
	}

	return SetupRouterForTests(HandlersConfig{
		UserHandler: handler.NewUserHandler(userSvc),
		TaskHandler: handler.NewTaskHandler(taskSvc, logger),
		AuthHandler: handler.NewAuthHandler(authSvc),
	}, tokens)
}

func TestHealthCheck(t *testing.T) {
	RegisterTestingT(t)

	router := buildRouter(t)

	req, _ := http.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Body.String()).To(Equal("API is running"))
}

func TestCorsPreflight(t *testing.T) {
	RegisterTestingT(t)

	router := buildRouter(t)

	req, _ := http.NewRequest("OPTIONS", "/api/v1/users", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(204))
	Expect(rr.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
}

func TestTaskRoutesRequireAuth(t *testing.T) {
	RegisterTestingT(t)

	router := buildRouter(t)

	for _, route := range []struct{ method, path string }{
		{"POST", "/api/v1/tasks"},
		{"GET", "/api/v1/tasks"},
		{"GET", "/api/v1/tasks/some-id"},
		{"PUT", "/api/v1/tasks/some-id"},
		{"DELETE", "/api/v1/tasks/some-id"},
	} {
		req, _ := http.NewRequest(route.method, route.path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		Expect(rr.Code).To(Equal(http.StatusUnauthorized), "%s %s", route.method, route.path)
	}
}
