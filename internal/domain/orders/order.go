package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/shared/valueobject"
)

// FinancialStatus represents the payment state of an order
type FinancialStatus string

const (
	FinancialStatusPending           FinancialStatus = "pending"
	FinancialStatusAuthorized        FinancialStatus = "authorized"
	FinancialStatusPartiallyPaid     FinancialStatus = "partially_paid"
	FinancialStatusPaid              FinancialStatus = "paid"
	FinancialStatusPartiallyRefunded FinancialStatus = "partially_refunded"
	FinancialStatusRefunded          FinancialStatus = "refunded"
	FinancialStatusVoided            FinancialStatus = "voided"
)

// IsValid checks if the FinancialStatus is a known value
func (s FinancialStatus) IsValid() bool {
	switch s {
	case FinancialStatusPending, FinancialStatusAuthorized, FinancialStatusPartiallyPaid,
		FinancialStatusPaid, FinancialStatusPartiallyRefunded, FinancialStatusRefunded,
		FinancialStatusVoided:
		return true
	}
	return false
}

// String returns the string representation of FinancialStatus
func (s FinancialStatus) String() string {
	return string(s)
}

// FulfillmentStatus represents the shipping state of an order. The order
// source reports null for never-fulfilled orders, which maps to the empty
// string here.
type FulfillmentStatus string

const (
	FulfillmentStatusFulfilled   FulfillmentStatus = "fulfilled"
	FulfillmentStatusPartial     FulfillmentStatus = "partial"
	FulfillmentStatusUnfulfilled FulfillmentStatus = "unfulfilled"
	FulfillmentStatusNone        FulfillmentStatus = ""
)

// IsFulfilled returns true when every item on the order has shipped
func (s FulfillmentStatus) IsFulfilled() bool {
	return s == FulfillmentStatusFulfilled
}

// IsPending returns true when the order still needs shipping work
func (s FulfillmentStatus) IsPending() bool {
	return !s.IsFulfilled()
}

// String returns the string representation of FulfillmentStatus
func (s FulfillmentStatus) String() string {
	return string(s)
}

// LineItem is one purchased item on an order. Quantity is always >= 1 as
// reported by the order source.
type LineItem struct {
	Title        string          `json:"title"`
	VariantTitle string          `json:"variant_title,omitempty"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	SKU          string          `json:"sku,omitempty"`
}

// Customer is the customer reference attached to an order
type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// FullName returns the customer's display name
func (c Customer) FullName() string {
	switch {
	case c.FirstName != "" && c.LastName != "":
		return c.FirstName + " " + c.LastName
	case c.FirstName != "":
		return c.FirstName
	default:
		return c.LastName
	}
}

// Order is an order as fetched from the external order source. It is
// read-only from this service's perspective; local edits live in the
// override store, never here.
type Order struct {
	ID                int64               `json:"id"`
	Name              string              `json:"name"`
	Number            int                 `json:"number"`
	CreatedAt         time.Time           `json:"created_at"`
	FinancialStatus   FinancialStatus     `json:"financial_status"`
	FulfillmentStatus FulfillmentStatus   `json:"fulfillment_status"`
	TotalPrice        valueobject.Money   `json:"total_price"`
	Customer          *Customer           `json:"customer,omitempty"`
	ShippingAddress   valueobject.Address `json:"shipping_address"`
	LineItems         []LineItem          `json:"line_items"`
}

// HasShippingAddress returns true when the order carries a usable address
func (o Order) HasShippingAddress() bool {
	return !o.ShippingAddress.IsEmpty()
}

// CustomerName returns the customer's name, or "" for guest orders
func (o Order) CustomerName() string {
	if o.Customer == nil {
		return ""
	}
	return o.Customer.FullName()
}

// Product is a catalog product summary from the order source
type Product struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Vendor    string    `json:"vendor,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
