package http

import (
	"errors"
	"net/http"

	"github.com/Lexv0lk/room-shop/internal/store/domain"
	"github.com/gin-gonic/gin"
)

func statusFromError(err error) int {
	switch {
	case errors.Is(err, &domain.InvalidArgumentsError{}), errors.Is(err, &domain.InsufficientBalanceError{}):
		return http.StatusBadRequest
	case errors.Is(err, &domain.UserNotFoundError{}), errors.Is(err, &domain.CatalogNotFoundError{}):
		return http.StatusNotFound
	case errors.Is(err, &domain.TransactionConflictError{}), errors.Is(err, &domain.StoreUnavailableError{}):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// handleDomainError writes err as a failed Result. Messages of server side
// failures are not exposed.
func handleDomainError(c *gin.Context, err error) {
	status := statusFromError(err)

	message := err.Error()
	switch status {
	case http.StatusServiceUnavailable:
		message = "service temporarily unavailable, please try again"
	case http.StatusInternalServerError:
		message = "internal server error"
	}

	c.JSON(status, domain.Result{Message: message})
}

func abortWithMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, domain.Result{Message: message})
}
