package server

import (
	"net/http"

	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/gin-gonic/gin"
)

// APIResponse wraps every JSON answer of the management API
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
	Code    int         `json:"code"`
}

func respondSuccess(c *gin.Context, status int, data interface{}, message string) {
	if message == "" {
		message = "ok"
	}
	c.JSON(status, APIResponse{Success: true, Data: data, Message: message, Code: status})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, APIResponse{Success: false, Message: message, Code: status})
}

// statusFor maps error codes onto HTTP statuses
func statusFor(err error) int {
	switch errors.GetErrorCode(err) {
	case errors.ErrNotFound:
		return http.StatusNotFound
	case errors.ErrInvalidInput:
		return http.StatusBadRequest
	case errors.ErrProfileDecode, errors.ErrProfileNoPayload, errors.ErrMissingNetworkName:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondErr answers with err's message and records it for the access log
func respondErr(c *gin.Context, err error) {
	_ = c.Error(err)
	respondError(c, statusFor(err), errors.GetErrorMessage(err))
}
