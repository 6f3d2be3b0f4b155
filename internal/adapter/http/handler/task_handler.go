package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	. "taskapp/internal/adapter/http/helper"
	. "taskapp/internal/adapter/http/validation"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/model/response"
	"taskapp/internal/core/port"
	"taskapp/internal/core/util"
	"taskapp/internal/shared"
	. "taskapp/pkg/tracing"
)

type TaskHandler struct {
	svc    port.TaskService
	Logger *shared.AppLogger
}

func NewTaskHandler(svc port.TaskService, logger *shared.AppLogger) *TaskHandler {
	return &TaskHandler{
		svc:    svc,
		Logger: logger,
	}
}

func (t *TaskHandler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.ParamsToMap[request.CreateTaskRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	task, err := t.svc.CreateTask(ctx, port.CreateTaskInput{
		UserEmail:   params.UserEmail,
		Title:       params.Title,
		Description: params.Description,
	})

	if err != nil {
		slog.Error("Error creating task", "error", err)
		SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, taskToResponse(task))
}

func (t *TaskHandler) FindByID(c *gin.Context) {
	ctx := c.Request.Context()

	task, err := t.svc.FindByID(ctx, c.Param("id"))

	if err != nil {
		SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskToResponse(task))
}

func (t *TaskHandler) FindAllByUser(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.task.FindAllByUser", []attribute.KeyValue{
		attribute.String("handler.operation", "FindAllByUser"),
		attribute.String("handler.method", c.Request.Method),
		attribute.String("handler.path", c.FullPath()),
	})

	defer span.End()

	userEmail := c.Query("userEmail")

	span.SetAttributes(
		attribute.String("user.email", userEmail),
	)

	tasks, err := t.svc.FindAllByUser(ctx, userEmail)

	if err != nil {
		AddSpanError(span, err)

		t.Logger.Error(ctx, "Failed to list tasks",
			zap.Error(err),
			zap.String("user_email", userEmail),
		)

		SendServiceError(c, err)
		return
	}

	span.SetAttributes(
		attribute.Int("task.count", len(tasks)),
		attribute.Int("http.status_code", http.StatusOK),
	)

	records := make([]response.TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		records = append(records, taskToResponse(task))
	}

	c.JSON(http.StatusOK, records)
}

func (t *TaskHandler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.ParamsToMap[request.UpdateTaskRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	task, err := t.svc.UpdateTask(ctx, c.Param("id"), port.TaskPatch{
		Title:       params.Title,
		Description: params.Description,
		Completed:   params.Completed,
	})

	if err != nil {
		SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskToResponse(task))
}

func (t *TaskHandler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	if err := t.svc.DeleteTask(ctx, c.Param("id")); err != nil {
		SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}

func taskToResponse(task domain.Task) response.TaskResponse {
	return response.TaskResponse{
		ID:          task.ID,
		UserEmail:   task.UserEmail,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CompletedAt: task.CompletedAt,
		CreatedAt:   task.CreatedAt,
	}
}
