package http

import (
	"taskapp/internal/adapter/http/handler"
	"taskapp/internal/core/port"
	"taskapp/internal/core/service"
	"taskapp/internal/shared"
)

type Container struct {
	UserRepo port.UserRepository
	TaskRepo port.TaskRepository

	UserService port.UserService
	TaskService port.TaskService
	AuthService port.AuthService

	UserHandler *handler.UserHandler
	TaskHandler *handler.TaskHandler
	AuthHandler *handler.AuthHandler
}

func NewContainer(userRepo port.UserRepository, taskRepo port.TaskRepository, tokens port.TokenIssuer, logger *shared.AppLogger) *Container {
	userSvc := service.NewUserService(userRepo)
	taskSvc := service.NewTaskService(taskRepo, userSvc)
	authSvc := service.NewAuthService(userSvc, tokens)

	userHandler := handler.NewUserHandler(userSvc)
	taskHandler := handler.NewTaskHandler(taskSvc, logger)
	authHandler := handler.NewAuthHandler(authSvc)

	return &Container{
		UserRepo: userRepo,
		TaskRepo: taskRepo,

		UserService: userSvc,
		TaskService: taskSvc,
		AuthService: authSvc,

		UserHandler: userHandler,
		TaskHandler: taskHandler,
		AuthHandler: authHandler,
	}
}
