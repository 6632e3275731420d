package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"reward-indexer/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ContentType is the exact media type of every read API response.
const ContentType = "application/json"

// ErrorResponse is the error body returned to API callers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes v as a bare JSON body with the given status.
func JSON(c *gin.Context, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"Internal server error"}`)
	}
	c.Data(status, ContentType, body)
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		JSON(c, appErr.HTTPStatus, ErrorResponse{Error: appErr.Message})
		return
	}

	JSON(c, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}

// Abort writes the error response and stops the handler chain.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
