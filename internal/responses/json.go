package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecobridge/internal/errs"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func Success(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func Fail(c *gin.Context, statusCode int, err error, message string) {
	resp := APIResponse{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(statusCode, resp)
}

// Error maps the service error taxonomy onto HTTP status codes.
func Error(c *gin.Context, err error, message string) {
	switch {
	case errs.IsNotFound(err):
		Fail(c, http.StatusNotFound, err, message)
	case errs.IsPermissionDenied(err):
		Fail(c, http.StatusForbidden, err, message)
	case errs.IsInvalidTransition(err):
		Fail(c, http.StatusConflict, err, message)
	case errs.IsValidation(err):
		Fail(c, http.StatusBadRequest, err, message)
	case errs.IsAlreadyExists(err):
		Fail(c, http.StatusConflict, err, message)
	default:
		Fail(c, http.StatusInternalServerError, err, message)
	}
}
