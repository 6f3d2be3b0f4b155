package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"taskapp/internal/adapter/database/sqlite"
	"taskapp/internal/adapter/database/sqlite/repository"
	"taskapp/internal/adapter/http/middleware"
	"taskapp/internal/adapter/token"
	"taskapp/internal/core/port"
	"taskapp/internal/core/service"
	"taskapp/internal/shared"
	"taskapp/pkg/test"
)

const testSecret = "test-secret"

type testStack struct {
	DB     *sqlite.DB
	Users  port.UserService
	Tasks  port.TaskService
	Tokens port.TokenIssuer
	Router *gin.Engine
}

// newTestStack builds the handlers over an in-memory database and wires
// the routes directly to avoid an import cycle with the routes package.
func newTestStack(t *testing.T) *testStack {
	gin.SetMode(gin.TestMode)

	db := test.InitTestDB()

	userRepo := repository.NewUserRepository(db, nil)
	taskRepo := repository.NewTaskRepository(db, nil)

	userSvc := service.NewUserService(userRepo)
	taskSvc := service.NewTaskService(taskRepo, userSvc)

	tokens := token.NewJWT(testSecret)
	authSvc := service.NewAuthService(userSvc, tokens)

	logger, err := shared.NewAppLogger("taskapp-test")
	if err != nil {
		t.Fatalf("Failed to build logger: %v", err)
	}

	userHandler := NewUserHandler(userSvc)
	taskHandler := NewTaskHandler(taskSvc, logger)
	authHandler := NewAuthHandler(authSvc)

	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")
	v1.POST("/users", userHandler.CreateUser)
	v1.GET("/users/email", userHandler.FindByEmail)
	v1.POST("/auth/login", authHandler.Login)

	protected := v1.Group("/tasks")
	protected.Use(middleware.JwtAuthMiddleware(tokens))
	protected.POST("", taskHandler.CreateTask)
	protected.GET("", taskHandler.FindAllByUser)
	protected.GET("/:id", taskHandler.FindByID)
	protected.PUT("/:id", taskHandler.UpdateTask)
	protected.DELETE("/:id", taskHandler.DeleteTask)

	return &testStack{
		DB:     db,
		Users:  userSvc,
		Tasks:  taskSvc,
		Tokens: tokens,
		Router: router,
	}
}

func (ts *testStack) request(method, path, body, bearer string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rr := httptest.NewRecorder()
	ts.Router.ServeHTTP(rr, req)

	return rr
}
