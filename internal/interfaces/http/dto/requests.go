package dto

import (
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/override"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/shared/valueobject"
)

// ListOrdersRequest carries the list view's filter and sort query parameters
type ListOrdersRequest struct {
	Status    string `form:"status" binding:"omitempty,oneof=all pending fulfilled"`
	SinceDays int    `form:"since_days" binding:"omitempty,min=1"`
	Search    string `form:"search"`
	Sort      string `form:"sort" binding:"omitempty,oneof=purchase dispatch"`
	Dir       string `form:"dir" binding:"omitempty,oneof=asc desc"`
}

// TrackingRequest is the optional carrier metadata on a fulfillment
type TrackingRequest struct {
	Number  string `json:"number"`
	Company string `json:"company"`
	URL     string `json:"url"`
	Notify  bool   `json:"notify_customer"`
}

// FulfillRequest is the bulk-fulfillment request body
type FulfillRequest struct {
	OrderIDs []int64         `json:"order_ids" binding:"required,min=1"`
	Tracking TrackingRequest `json:"tracking"`
}

// OverrideRequest is the address-edit request body. The address shape
// mirrors the order source's shipping address with added free-text notes.
type OverrideRequest struct {
	Address valueobject.Address `json:"address"`
	Notes   string              `json:"notes"`
}

// ToEdited converts the request body to the domain edit
func (r OverrideRequest) ToEdited() override.EditedAddress {
	return override.EditedAddress{
		Address: r.Address,
		Notes:   r.Notes,
	}
}

// LabelSheetsRequest selects the orders a label sheet batch is built from
type LabelSheetsRequest struct {
	OrderIDs []int64 `json:"order_ids" binding:"required,min=1"`
}
