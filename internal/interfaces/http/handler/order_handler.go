package handler

import (
	"github.com/gin-gonic/gin"

	appOrders "github.com/pabloarenaso/Criemos-visor-pedidos/internal/application/orders"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/orders"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/interfaces/http/dto"
)

// OrderHandler serves the order list view, detail view, and bulk fulfillment
type OrderHandler struct {
	BaseHandler
	service *appOrders.Service
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(service *appOrders.Service) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/orders")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("/fulfill", h.Fulfill)
	}
}

// List returns the filtered, sorted order rows plus badge counts
func (h *OrderHandler) List(c *gin.Context) {
	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	state := appOrders.FilterState{
		Status:    appOrders.StatusFilter(req.Status),
		SinceDays: req.SinceDays,
		Search:    req.Search,
		SortKey:   appOrders.SortKey(req.Sort),
		SortDir:   appOrders.SortDir(req.Dir),
	}

	result, err := h.service.ListView(c.Request.Context(), state)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Get returns one annotated order
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := orderIDParam(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	row, err := h.service.GetRow(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, row)
}

// Fulfill marks every selected order fulfilled. The batch succeeds or fails
// as a whole; partial successes are reported as a batch failure and the
// operator retries the remainder.
func (h *OrderHandler) Fulfill(c *gin.Context) {
	var req dto.FulfillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tracking := orders.TrackingInfo{
		Number:  req.Tracking.Number,
		Company: req.Tracking.Company,
		URL:     req.Tracking.URL,
		Notify:  req.Tracking.Notify,
	}

	if err := h.service.BulkFulfill(c.Request.Context(), req.OrderIDs, tracking); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"fulfilled": len(req.OrderIDs)})
}
