package http

import (
	"net/http"
	"time"

	"github.com/Lexv0lk/room-shop/internal/pkg/logging"
	"github.com/Lexv0lk/room-shop/internal/store/domain"
	"github.com/gin-gonic/gin"
)

type refreshRequestBody struct {
	Mode                string `json:"mode"`
	DemoDurationSeconds *int   `json:"demoDurationSeconds" binding:"omitempty,gt=0"`
}

type createLedgerRequestBody struct {
	UserID string `json:"userId" binding:"required"`
}

type refreshResponse struct {
	domain.Result
	Catalog *domain.ShopMetadata `json:"catalog,omitempty"`
}

type AdminHandler struct {
	service AdminService
	logger  logging.Logger
}

func NewAdminHandler(service AdminService, logger logging.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger,
	}
}

// RefreshCatalog runs a manual or demo refresh. Scheduled refreshes belong to
// the trigger and are refused here.
func (h *AdminHandler) RefreshCatalog(c *gin.Context) {
	var body refreshRequestBody
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, domain.Result{Message: "invalid request body"})
			return
		}
	}

	mode, err := domain.ParseRefreshMode(body.Mode)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	if mode == domain.RefreshScheduled {
		c.JSON(http.StatusBadRequest, domain.Result{Message: "scheduled refreshes cannot be requested manually"})
		return
	}

	req := domain.RefreshRequest{Mode: mode}
	if body.DemoDurationSeconds != nil {
		req.DemoDuration = time.Duration(*body.DemoDurationSeconds) * time.Second
	}

	metadata, err := h.service.RefreshCatalog(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFromError(err), refreshResponse{Result: domain.RefreshResult(domain.ShopMetadata{}, err)})
		return
	}

	c.JSON(http.StatusOK, refreshResponse{
		Result:  domain.RefreshResult(metadata, nil),
		Catalog: &metadata,
	})
}

func (h *AdminHandler) CreateLedger(c *gin.Context) {
	var body createLedgerRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, domain.Result{Message: "invalid request body"})
		return
	}

	created, err := h.service.EnsureLedger(c.Request.Context(), body.UserID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, domain.Result{Success: true, Message: "ledger already exists"})
		return
	}

	c.JSON(http.StatusCreated, domain.Result{Success: true, Message: "ledger created"})
}
