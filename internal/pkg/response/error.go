package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stayflow/hotel-booking-backend/internal/pkg/apperror"
)

// ErrorResponse is the JSON body for error replies.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error writes err as a JSON response. AppError values carry their own
// status and client message; anything else surfaces as a generic 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
