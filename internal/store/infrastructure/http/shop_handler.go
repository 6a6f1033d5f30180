package http

import (
	"net/http"

	"github.com/Lexv0lk/room-shop/internal/pkg/logging"
	"github.com/Lexv0lk/room-shop/internal/store/domain"
	"github.com/gin-gonic/gin"
)

type purchaseRequestBody struct {
	ItemID          string `json:"itemId" binding:"required"`
	Name            string `json:"name"`
	Cost            *int64 `json:"cost"`
	ImageReference  string `json:"imageReference"`
	LocksOnPurchase bool   `json:"locksOnPurchase"`
	StyleID         string `json:"styleId"`
}

type purchaseResponse struct {
	domain.Result
	PurchaseID string `json:"purchaseId,omitempty"`
}

type ShopHandler struct {
	service ShopService
	pool    domain.CatalogPool
	logger  logging.Logger
}

// NewShopHandler builds the user facing handlers. Items found in pool are
// priced from it, anything else is bought at the price the client sends.
func NewShopHandler(service ShopService, pool domain.CatalogPool, logger logging.Logger) *ShopHandler {
	return &ShopHandler{
		service: service,
		pool:    pool,
		logger:  logger,
	}
}

func (h *ShopHandler) Purchase(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		abortWithMessage(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var body purchaseRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, domain.Result{Message: "invalid request body"})
		return
	}

	item, found := h.pool.FindItem(body.ItemID)
	if !found {
		if body.Cost == nil {
			c.JSON(http.StatusBadRequest, domain.Result{Message: "item cost is required"})
			return
		}

		item = domain.CatalogItem{
			ItemID:          body.ItemID,
			Name:            body.Name,
			Cost:            *body.Cost,
			ImageReference:  body.ImageReference,
			LocksOnPurchase: body.LocksOnPurchase,
			StyleID:         body.StyleID,
		}
	}

	record, err := h.service.Purchase(c.Request.Context(), claims.UserID, item)
	if err != nil {
		c.JSON(statusFromError(err), purchaseResponse{Result: domain.PurchaseResult(item, err)})
		return
	}

	c.JSON(http.StatusOK, purchaseResponse{
		Result:     domain.PurchaseResult(item, nil),
		PurchaseID: record.PurchaseID,
	})
}

func (h *ShopHandler) GetLedger(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		abortWithMessage(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	ledger, err := h.service.GetLedger(c.Request.Context(), claims.UserID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	if ledger.Inventory == nil {
		ledger.Inventory = []domain.PurchaseRecord{}
	}

	c.JSON(http.StatusOK, ledger)
}

func (h *ShopHandler) GetCatalog(c *gin.Context) {
	metadata, err := h.service.GetCatalog(c.Request.Context())
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, metadata)
}

func (h *ShopHandler) GetShopView(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		abortWithMessage(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	view, err := h.service.GetShopView(c.Request.Context(), claims.UserID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
