package labels

import (
	"context"
	"fmt"

	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/labels"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/orders"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/override"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/shared"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/shared/valueobject"
)

// Sheets is the complete print job: the paginated labels plus the physical
// format the renderer lays them out on
type Sheets struct {
	Pages  []labels.Page      `json:"pages"`
	Format labels.SheetFormat `json:"format"`
	Total  int                `json:"total"`
}

// Service builds printable label sheets from orders and their local address
// overrides
type Service struct {
	source orders.DataSource
	store  override.Store
}

// NewService creates a new label sheet service
func NewService(source orders.DataSource, store override.Store) *Service {
	return &Service{source: source, store: store}
}

// BuildSheets fetches each requested order, resolves its label address
// through the override store, and lays the labels out on 12-up compact
// sheets. Every requested order produces exactly one label; orders without
// a usable address keep their slot with HasAddress=false rather than being
// dropped.
func (s *Service) BuildSheets(ctx context.Context, orderIDs []int64) (*Sheets, error) {
	if len(orderIDs) == 0 {
		return nil, fmt.Errorf("%w: no orders selected", shared.ErrInvalidInput)
	}

	descriptors := make([]labels.Descriptor, 0, len(orderIDs))
	for _, id := range orderIDs {
		o, err := s.source.GetOrder(ctx, id)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, s.describe(ctx, *o))
	}

	return &Sheets{
		Pages:  labels.Layout(descriptors, labels.CompactPageCapacity),
		Format: labels.CompactSheetFormat(),
		Total:  len(descriptors),
	}, nil
}

// describe builds the label descriptor for one order. The override's edited
// address wins over the canonical one; an address without a recipient name
// borrows the order's customer name so the label is still deliverable.
func (s *Service) describe(ctx context.Context, o orders.Order) labels.Descriptor {
	recipient, err := override.Resolve(ctx, s.store, o.ID, o.ShippingAddress)
	if err != nil {
		recipient = o.ShippingAddress
	}

	edited, err := s.store.Has(ctx, o.ID)
	if err != nil {
		edited = false
	}

	recipient = withRecipientFallback(recipient, o)

	return labels.Descriptor{
		OrderID:     o.ID,
		OrderName:   o.Name,
		Recipient:   recipient,
		HasAddress:  !recipient.IsEmpty(),
		Edited:      edited,
		ItemSummary: labels.SummarizeItems(o.LineItems),
		Total:       o.TotalPrice,
	}
}

// withRecipientFallback fills a missing recipient name from the order's
// customer record
func withRecipientFallback(addr valueobject.Address, o orders.Order) valueobject.Address {
	if addr.IsEmpty() || addr.HasRecipientName() || o.Customer == nil {
		return addr
	}
	return addr.WithRecipientName(o.Customer.FirstName, o.Customer.LastName)
}
