package handler

import (
	"github.com/gin-gonic/gin"

	appLabels "github.com/pabloarenaso/Criemos-visor-pedidos/internal/application/labels"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/interfaces/http/dto"
)

// LabelHandler serves the label sheet builder
type LabelHandler struct {
	BaseHandler
	service *appLabels.Service
}

// NewLabelHandler creates a new LabelHandler
func NewLabelHandler(service *appLabels.Service) *LabelHandler {
	return &LabelHandler{service: service}
}

// RegisterRoutes registers label routes
func (h *LabelHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/labels/sheets", h.BuildSheets)
}

// BuildSheets lays the selected orders' labels out on compact 12-up sheets
func (h *LabelHandler) BuildSheets(c *gin.Context) {
	var req dto.LabelSheetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sheets, err := h.service.BuildSheets(c.Request.Context(), req.OrderIDs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sheets)
}
