package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	apperrors "github.com/pr-poehali-dev/office-supply-webshop/errors"
	"github.com/pr-poehali-dev/office-supply-webshop/mapping"
	"github.com/pr-poehali-dev/office-supply-webshop/repository"
	"github.com/pr-poehali-dev/office-supply-webshop/services"
)

// fail attaches err to the context for apperrors.ErrorMiddleware to render.
func fail(c *gin.Context, err error) {
	_ = c.Error(classify(err))
	c.Abort()
}

func classify(err error) *apperrors.Error {
	var appErr *apperrors.Error
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrNoMappingSession):
		return apperrors.NotFound(err.Error(), err)
	case errors.Is(err, services.ErrSubmissionInFlight),
		errors.Is(err, services.ErrOrderInFlight),
		errors.Is(err, services.ErrOutOfStock),
		errors.Is(err, mapping.ErrSessionClosed):
		return apperrors.Conflict(err.Error(), err)
	case errors.Is(err, mapping.ErrRequiredFieldsUnmapped),
		errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrDealerIncomplete),
		errors.Is(err, services.ErrHeaderUnavailable):
		return apperrors.Unprocessable(err.Error(), err)
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidDealer),
		errors.Is(err, services.ErrNoFileSelected),
		errors.Is(err, services.ErrUnknownLanguage),
		services.IsMappingError(err):
		return apperrors.BadRequest(err.Error(), err)
	default:
		return apperrors.Internal(err)
	}
}
