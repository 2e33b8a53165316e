package apihandlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"outfitter/pkg/recommender"
)

// APIError defines standard error response
// Example: { "error": { "code": "not_found", "message": "unknown event \"gala\"" } }
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error APIError `json:"error"`
}

// JSONError sends a structured error response
func JSONError(ctx *gin.Context, status int, code, msg string) {
	ctx.AbortWithStatusJSON(status, errorResponse{Error: APIError{Code: code, Message: msg}})
}

func BadRequest(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusBadRequest, "bad_request", msg)
}

func NotFound(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusNotFound, "not_found", msg)
}

func Internal(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusInternalServerError, "internal_error", msg)
}

// FromError maps domain errors onto the matching response.
func FromError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, recommender.ErrUnknownCategory):
		NotFound(ctx, err.Error())
	case errors.Is(err, recommender.ErrInvalidArgument):
		BadRequest(ctx, err.Error())
	default:
		Internal(ctx, err.Error())
	}
}
