package overrides

import (
	"context"
	"fmt"

	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/orders"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/override"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/shared"
)

// Service coordinates address-override edits. Overrides live only in the
// local store; the external order source is consulted to capture the
// canonical address but is never written to.
type Service struct {
	store  override.Store
	source orders.DataSource
}

// NewService creates a new override service
func NewService(store override.Store, source orders.DataSource) *Service {
	return &Service{store: store, source: source}
}

// Submit saves an edited address for the order. On the first save the
// order's current canonical address is captured as the revert snapshot;
// later saves replace the edit but never the snapshot.
func (s *Service) Submit(ctx context.Context, id int64, edited override.EditedAddress) (*override.Override, error) {
	if edited.Address.IsEmpty() {
		return nil, fmt.Errorf("%w: edited address requires at least one address line", shared.ErrInvalidInput)
	}

	o, err := s.source.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, id, edited, o.ShippingAddress); err != nil {
		return nil, fmt.Errorf("failed to save override: %w", err)
	}

	return s.Get(ctx, id)
}

// Get returns the active override for the order, or shared.ErrNotFound
func (s *Service) Get(ctx context.Context, id int64) (*override.Override, error) {
	ov, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if ov == nil {
		return nil, fmt.Errorf("%w: no override for order %d", shared.ErrNotFound, id)
	}
	return ov, nil
}

// Revert discards the override so the canonical address applies again.
// Reverting an order without an override is a no-op.
func (s *Service) Revert(ctx context.Context, id int64) error {
	return s.store.Revert(ctx, id)
}

// ListAll enumerates every order with an active override, powering the
// "N orders modified" counter
func (s *Service) ListAll(ctx context.Context) ([]override.Entry, error) {
	return s.store.ListAll(ctx)
}
