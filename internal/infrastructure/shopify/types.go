package shopify

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/orders"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/shared/valueobject"
)

// Wire types for the Shopify Admin REST API. Fields mirror the JSON the API
// actually returns; the conversion functions below translate them into
// domain types so nothing outside this package sees the wire shape.

// ordersResponse is the envelope of GET /orders.json
type ordersResponse struct {
	Orders []wireOrder `json:"orders"`
}

// orderResponse is the envelope of GET /orders/{id}.json
type orderResponse struct {
	Order wireOrder `json:"order"`
}

// productsResponse is the envelope of GET /products.json
type productsResponse struct {
	Products []wireProduct `json:"products"`
}

// customersResponse is the envelope of GET /customers.json
type customersResponse struct {
	Customers []wireCustomer `json:"customers"`
}

// fulfillmentRequest is the body of POST /orders/{id}/fulfillments.json
type fulfillmentRequest struct {
	Fulfillment wireFulfillment `json:"fulfillment"`
}

type wireFulfillment struct {
	NotifyCustomer  bool   `json:"notify_customer"`
	TrackingNumber  string `json:"tracking_number,omitempty"`
	TrackingCompany string `json:"tracking_company,omitempty"`
	TrackingURL     string `json:"tracking_url,omitempty"`
}

// errorResponse is Shopify's error envelope. The errors field is sometimes a
// string and sometimes an object keyed by field name, so it is kept raw and
// rendered as-is.
type errorResponse struct {
	Errors interface{} `json:"errors"`
}

type wireOrder struct {
	ID                int64          `json:"id"`
	Name              string         `json:"name"`
	OrderNumber       int            `json:"order_number"`
	CreatedAt         time.Time      `json:"created_at"`
	FinancialStatus   string         `json:"financial_status"`
	FulfillmentStatus *string        `json:"fulfillment_status"`
	TotalPrice        string         `json:"total_price"`
	Currency          string         `json:"currency"`
	Customer          *wireCustomer  `json:"customer"`
	ShippingAddress   *wireAddress   `json:"shipping_address"`
	LineItems         []wireLineItem `json:"line_items"`
}

type wireLineItem struct {
	Title        string `json:"title"`
	VariantTitle string `json:"variant_title"`
	Quantity     int    `json:"quantity"`
	Price        string `json:"price"`
	SKU          string `json:"sku"`
}

type wireCustomer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type wireAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone"`
}

type wireProduct struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Vendor    string    `json:"vendor"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// toDomain converts a wire order into the domain order. Malformed money
// amounts degrade to zero rather than failing the whole listing; a missing
// or blank shipping address becomes the empty address.
func (w wireOrder) toDomain() orders.Order {
	o := orders.Order{
		ID:                w.ID,
		Name:              w.Name,
		Number:            w.OrderNumber,
		CreatedAt:         w.CreatedAt,
		FinancialStatus:   orders.FinancialStatus(w.FinancialStatus),
		FulfillmentStatus: orders.FulfillmentStatusNone,
		TotalPrice:        parseMoney(w.TotalPrice, w.Currency),
		ShippingAddress:   w.ShippingAddress.toDomain(),
		LineItems:         make([]orders.LineItem, 0, len(w.LineItems)),
	}

	if w.FulfillmentStatus != nil {
		o.FulfillmentStatus = orders.FulfillmentStatus(*w.FulfillmentStatus)
	}

	if w.Customer != nil {
		c := w.Customer.toDomain()
		o.Customer = &c
	}

	for _, item := range w.LineItems {
		o.LineItems = append(o.LineItems, orders.LineItem{
			Title:        item.Title,
			VariantTitle: item.VariantTitle,
			Quantity:     item.Quantity,
			Price:        parseDecimal(item.Price),
			SKU:          item.SKU,
		})
	}

	return o
}

func (w *wireAddress) toDomain() valueobject.Address {
	if w == nil {
		return valueobject.EmptyAddress()
	}
	addr, err := valueobject.NewAddress(
		w.FirstName, w.LastName, w.Address1, w.City, w.Province, w.Zip,
		valueobject.WithAddress2(w.Address2),
		valueobject.WithPhone(w.Phone),
	)
	if err != nil {
		return valueobject.EmptyAddress()
	}
	return addr
}

func (w wireCustomer) toDomain() orders.Customer {
	return orders.Customer{
		ID:        w.ID,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		Email:     w.Email,
	}
}

func (w wireProduct) toDomain() orders.Product {
	return orders.Product{
		ID:        w.ID,
		Title:     w.Title,
		Vendor:    w.Vendor,
		Status:    w.Status,
		CreatedAt: w.CreatedAt,
	}
}

func parseMoney(amount, currency string) valueobject.Money {
	return valueobject.NewMoney(parseDecimal(amount), currency)
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
