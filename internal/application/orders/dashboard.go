package orders

import (
	"context"
	"sync"

	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/orders"
)

// DashboardStats are the aggregate counts the dashboard view renders
type DashboardStats struct {
	TotalOrders     int `json:"total_orders"`
	PendingOrders   int `json:"pending_orders"`
	FulfilledOrders int `json:"fulfilled_orders"`
	EditedOrders    int `json:"edited_orders"`
	TotalProducts   int `json:"total_products"`
	TotalCustomers  int `json:"total_customers"`
}

// Dashboard fetches orders, products, and customers concurrently and folds
// them into aggregate counts. The first fetch error fails the whole call;
// there is nothing useful to render from a partial dashboard.
func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var (
		wg        sync.WaitGroup
		fetched   []orders.Order
		products  []orders.Product
		customers []orders.Customer

		ordersErr    error
		productsErr  error
		customersErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		fetched, ordersErr = s.source.ListOrders(ctx, orders.ListFilter{})
	}()
	go func() {
		defer wg.Done()
		products, productsErr = s.source.ListProducts(ctx)
	}()
	go func() {
		defer wg.Done()
		customers, customersErr = s.source.ListCustomers(ctx)
	}()
	wg.Wait()

	for _, err := range []error{ordersErr, productsErr, customersErr} {
		if err != nil {
			return nil, err
		}
	}

	stats := &DashboardStats{
		TotalOrders:    len(fetched),
		TotalProducts:  len(products),
		TotalCustomers: len(customers),
	}
	for _, o := range fetched {
		if o.FulfillmentStatus.IsFulfilled() {
			stats.FulfilledOrders++
		} else {
			stats.PendingOrders++
		}
	}

	if entries, err := s.store.ListAll(ctx); err == nil {
		stats.EditedOrders = len(entries)
	}

	return stats, nil
}
