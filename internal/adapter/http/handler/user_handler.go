package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	. "taskapp/internal/adapter/http/helper"
	. "taskapp/internal/adapter/http/validation"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/model/response"
	"taskapp/internal/core/port"
)

type UserHandler struct {
	svc port.UserService
}

func NewUserHandler(svc port.UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.CreateUserRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	user, err := h.svc.CreateUser(ctx, params.Email)

	if err != nil {
		slog.Error("Error creating user", "error", err)
		SendServiceError(c, err)
		return
	}

	userResponse := response.UserResponse{
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}

	SendSuccess(c, http.StatusCreated, userResponse)
}

func (h *UserHandler) FindByEmail(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.svc.FindUser(ctx, c.Query("email"))

	if err != nil {
		SendServiceError(c, err)
		return
	}

	userResponse := response.UserResponse{
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}

	SendSuccess(c, http.StatusOK, userResponse)
}
