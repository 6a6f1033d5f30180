package http

import (
	"net/http"

	"github.com/Lexv0lk/room-shop/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

// LedgerMiddlewareFabric opens a ledger with the start balance the first time
// a user reaches the shop.
type LedgerMiddlewareFabric struct {
	ledgerEnsurer LedgerEnsurer
	logger        logging.Logger
}

func NewLedgerMiddlewareFabric(ledgerEnsurer LedgerEnsurer, logger logging.Logger) *LedgerMiddlewareFabric {
	return &LedgerMiddlewareFabric{
		ledgerEnsurer: ledgerEnsurer,
		logger:        logger,
	}
}

func (f *LedgerMiddlewareFabric) GetMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			abortWithMessage(c, http.StatusUnauthorized, "not authenticated")
			return
		}

		_, err := f.ledgerEnsurer.EnsureLedger(c.Request.Context(), claims.UserID)
		if err != nil {
			f.logger.Error("failed to ensure ledger", "user_id", claims.UserID, "error", err.Error())
			handleDomainError(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}
