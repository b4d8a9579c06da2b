package api

import (
	"net/http"

	"purchase-approval/internal/handler/httperr"
	"purchase-approval/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

// respondError maps the error taxonomy onto a status code. Validation,
// permission and lookup messages are safe to show; anything else is not.
func respondError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrUnauthenticated):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, err.Error(), nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, internalErrorMessage, nil)
	}
}
