package handler

import (
	"github.com/gin-gonic/gin"

	appOverrides "github.com/pabloarenaso/Criemos-visor-pedidos/internal/application/overrides"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/interfaces/http/dto"
)

// OverrideHandler serves the local address-override endpoints. Overrides are
// a shipping-prep convenience: they change what labels and list rows show,
// never the order source itself.
type OverrideHandler struct {
	BaseHandler
	service *appOverrides.Service
}

// NewOverrideHandler creates a new OverrideHandler
func NewOverrideHandler(service *appOverrides.Service) *OverrideHandler {
	return &OverrideHandler{service: service}
}

// RegisterRoutes registers override routes
func (h *OverrideHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/orders/:id/address-override", h.Get)
	rg.PUT("/orders/:id/address-override", h.Put)
	rg.DELETE("/orders/:id/address-override", h.Delete)
	rg.GET("/address-overrides", h.List)
}

// Get returns the active override for an order
func (h *OverrideHandler) Get(c *gin.Context) {
	id, err := orderIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ov, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ov)
}

// Put creates or updates the override for an order. The first save captures
// the order's current canonical address as the revert snapshot.
func (h *OverrideHandler) Put(c *gin.Context) {
	id, err := orderIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req dto.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ov, err := h.service.Submit(c.Request.Context(), id, req.ToEdited())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ov)
}

// Delete reverts the override so the canonical address applies again.
// Reverting an order without an override still returns 204.
func (h *OverrideHandler) Delete(c *gin.Context) {
	id, err := orderIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Revert(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// List enumerates every order with an active override
func (h *OverrideHandler) List(c *gin.Context) {
	entries, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{
		"overrides": entries,
		"count":     len(entries),
	})
}
