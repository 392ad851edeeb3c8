package handler

import (
	"github.com/gin-gonic/gin"

	appOrders "github.com/pabloarenaso/Criemos-visor-pedidos/internal/application/orders"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/orders"
)

// CatalogHandler serves the product, customer, and dashboard views, all
// read-through from the order source
type CatalogHandler struct {
	BaseHandler
	source  orders.DataSource
	service *appOrders.Service
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(source orders.DataSource, service *appOrders.Service) *CatalogHandler {
	return &CatalogHandler{source: source, service: service}
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.Products)
	rg.GET("/customers", h.Customers)
	rg.GET("/dashboard", h.Dashboard)
}

// Products lists the product catalog
func (h *CatalogHandler) Products(c *gin.Context) {
	products, err := h.source.ListProducts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"products": products, "count": len(products)})
}

// Customers lists the customer directory
func (h *CatalogHandler) Customers(c *gin.Context) {
	customers, err := h.source.ListCustomers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"customers": customers, "count": len(customers)})
}

// Dashboard returns the aggregate counts for the landing view
func (h *CatalogHandler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}
