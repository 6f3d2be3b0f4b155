package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"

	. "taskapp/internal/adapter/http/validation"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/response"
)

// statusByKind is the single mapping from domain error kinds to HTTP
// status codes.
var statusByKind = map[domain.ErrorKind]int{
	domain.KindBadRequest: http.StatusBadRequest,
	domain.KindConflict:   http.StatusConflict,
	domain.KindNotFound:   http.StatusNotFound,
	domain.KindInternal:   http.StatusInternalServerError,
}

// SendServiceError maps a service error to its status code and forwards
// the message verbatim.
func SendServiceError(c *gin.Context, err error) {
	status, exists := statusByKind[domain.KindOf(err)]

	if !exists {
		status = http.StatusInternalServerError
	}

	c.JSON(status, gin.H{"message": err.Error()})
}

func SendSuccess(c *gin.Context, statusCode int, data any, message ...string) {
	response := response.SuccessResponse{
		Data: data,
	}

	if len(message) > 0 && message[0] != "" {
		response.Message = message[0]
	}

	c.JSON(statusCode, response)
}

func SendError(c *gin.Context, statusCode int, code string, errors []response.ValidationError, details ...any) {
	errorResponse := response.ErrorResponse{
		Error: response.ResponseError{
			Code:   code,
			Errors: errors,
		},
	}

	if len(details) > 0 {
		errorResponse.Error.Details = details[0]
	}

	c.JSON(statusCode, errorResponse)
}

func SendValidationError(c *gin.Context, err error) {
	validationErrors := FormatValidationErrors(err)
	SendError(c, http.StatusBadRequest, "VALIDATION_ERROR", validationErrors)
}

func SendBadRequestError(c *gin.Context, field string, message string) {
	errors := []response.ValidationError{
		{
			Field:   field,
			Message: message,
		},
	}

	SendError(c, http.StatusBadRequest, "BAD_REQUEST", errors)
}
