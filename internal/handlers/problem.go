package handlers

import (
	"errors"
	"net/http"

	"github.com/duosplit/duo_expense_app/internal/apperrors"
	"github.com/duosplit/duo_expense_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// respondProblem writes an RFC-7807-style error body.
func respondProblem(c *gin.Context, status int, title, detail string) {
	c.Header("Content-Type", "application/problem+json")
	c.AbortWithStatusJSON(status, dto.ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.Request.URL.Path,
	})
}

// respondError maps a core error to its problem response. All core errors are
// local validation failures, never transient, so nothing here suggests retry.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount):
		respondProblem(c, http.StatusBadRequest, "Invalid amount", err.Error())
	case errors.Is(err, apperrors.ErrSelfSettlement):
		respondProblem(c, http.StatusBadRequest, "Self settlement", err.Error())
	case errors.Is(err, apperrors.ErrOverSettlement):
		respondProblem(c, http.StatusConflict, "Over settlement", err.Error())
	case errors.Is(err, apperrors.ErrValidation):
		respondProblem(c, http.StatusBadRequest, "Validation error", err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		respondProblem(c, http.StatusNotFound, "Not found", err.Error())
	default:
		respondProblem(c, http.StatusInternalServerError, "Internal error", "an unexpected error occurred")
	}
}
