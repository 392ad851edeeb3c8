package orders

import (
	"context"
)

// ListFilter narrows a ListOrders call. Zero values mean "no restriction";
// the source's own defaults apply.
type ListFilter struct {
	Status string // any, open, closed, cancelled
	Limit  int
}

// TrackingInfo is the optional carrier metadata attached when marking an
// order fulfilled
type TrackingInfo struct {
	Number  string `json:"number,omitempty"`
	Company string `json:"company,omitempty"`
	URL     string `json:"url,omitempty"`
	Notify  bool   `json:"notify_customer"`
}

// DataSource is the external order source collaborator. Every call may fail
// with shared.ErrSourceUnreachable (connectivity) or a wrapped
// shared.ErrSourceFailed carrying the server's own message, which callers
// surface verbatim.
type DataSource interface {
	ListOrders(ctx context.Context, filter ListFilter) ([]Order, error)
	GetOrder(ctx context.Context, id int64) (*Order, error)
	MarkFulfilled(ctx context.Context, id int64, tracking TrackingInfo) error
	ListProducts(ctx context.Context) ([]Product, error)
	ListCustomers(ctx context.Context) ([]Customer, error)
}
