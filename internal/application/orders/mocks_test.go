package orders

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/orders"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/override"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/shared/valueobject"
)

// mockDataSource is a testify mock of the external order source
type mockDataSource struct {
	mock.Mock
}

func (m *mockDataSource) ListOrders(ctx context.Context, filter orders.ListFilter) ([]orders.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orders.Order), args.Error(1)
}

func (m *mockDataSource) GetOrder(ctx context.Context, id int64) (*orders.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *mockDataSource) MarkFulfilled(ctx context.Context, id int64, tracking orders.TrackingInfo) error {
	args := m.Called(ctx, id, tracking)
	return args.Error(0)
}

func (m *mockDataSource) ListProducts(ctx context.Context) ([]orders.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orders.Product), args.Error(1)
}

func (m *mockDataSource) ListCustomers(ctx context.Context) ([]orders.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orders.Customer), args.Error(1)
}

// fakeStore is an in-memory override.Store for tests
type fakeStore struct {
	overrides map[int64]override.Override
}

func newFakeStore() *fakeStore {
	return &fakeStore{overrides: make(map[int64]override.Override)}
}

func (f *fakeStore) Save(_ context.Context, id int64, edited override.EditedAddress, original valueobject.Address) error {
	ov, ok := f.overrides[id]
	if !ok {
		ov = override.Override{OrderID: id, OriginalAddress: original}
	}
	ov.Edited = edited
	ov.UpdatedAt = time.Now()
	f.overrides[id] = ov
	return nil
}

func (f *fakeStore) Get(_ context.Context, id int64) (*override.Override, error) {
	ov, ok := f.overrides[id]
	if !ok {
		return nil, nil
	}
	return &ov, nil
}

func (f *fakeStore) Has(_ context.Context, id int64) (bool, error) {
	_, ok := f.overrides[id]
	return ok, nil
}

func (f *fakeStore) Revert(_ context.Context, id int64) error {
	delete(f.overrides, id)
	return nil
}

func (f *fakeStore) ListAll(_ context.Context) ([]override.Entry, error) {
	entries := make([]override.Entry, 0, len(f.overrides))
	for id, ov := range f.overrides {
		entries = append(entries, override.Entry{OrderID: id, Override: ov})
	}
	return entries, nil
}

// makeOrder builds a minimal test order; titles become one line item each
func makeOrder(id int64, name string, number int, created time.Time, status orders.FulfillmentStatus, titles ...string) orders.Order {
	items := make([]orders.LineItem, 0, len(titles))
	for _, title := range titles {
		items = append(items, orders.LineItem{Title: title, Quantity: 1})
	}
	return orders.Order{
		ID:                id,
		Name:              name,
		Number:            number,
		CreatedAt:         created,
		FinancialStatus:   orders.FinancialStatusPaid,
		FulfillmentStatus: status,
		TotalPrice:        valueobject.MustMoneyFromString("10.00", "EUR"),
		LineItems:         items,
	}
}
