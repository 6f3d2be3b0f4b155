package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	. "taskapp/internal/adapter/http/helper"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/model/response"
	"taskapp/internal/core/port"
	"taskapp/internal/core/util"
)

type AuthHandler struct {
	svc port.AuthService
}

func NewAuthHandler(svc port.AuthService) *AuthHandler {
	return &AuthHandler{
		svc: svc,
	}
}

func (a *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.ParamsToMap[request.LoginRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	token, err := a.svc.Login(ctx, params.UserEmail)

	if err != nil {
		slog.Error("Login failed", "error", err)
		SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{Token: token})
}
