package override

import (
	"context"
	"time"

	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/shared/valueobject"
)

// EditedAddress is the operator-corrected shipping address. It is a superset
// of the canonical address shape with free-text notes for the packer.
type EditedAddress struct {
	Address valueobject.Address `json:"address"`
	Notes   string              `json:"notes,omitempty"`
}

// Override is a local correction to an order's shipping address. It never
// reaches the external order source; it only affects how labels and views
// are rendered here. OriginalAddress is the canonical address snapshotted
// when the override was first created and is immutable from then on, so the
// operator can always revert to the true source-of-record.
type Override struct {
	OrderID         int64               `json:"order_id"`
	Edited          EditedAddress       `json:"address"`
	OriginalAddress valueobject.Address `json:"original_address"`
	UpdatedAt       time.Time           `json:"timestamp"`
}

// Entry pairs an order identifier with its active override, for enumeration
type Entry struct {
	OrderID  int64    `json:"order_id"`
	Override Override `json:"override"`
}

// Store keeps at most one override per order identifier in durable local
// storage. Reads of malformed records behave as "no override" rather than
// failing; availability wins over strict validation here.
type Store interface {
	// Save creates the override for id on first call, capturing original as
	// the permanent snapshot. Later calls replace only the edited address and
	// timestamp; the snapshot is first-write-wins.
	Save(ctx context.Context, id int64, edited EditedAddress, original valueobject.Address) error

	// Get returns the override for id, or (nil, nil) when absent
	Get(ctx context.Context, id int64) (*Override, error)

	// Has reports whether id has an active override
	Has(ctx context.Context, id int64) (bool, error)

	// Revert deletes the override for id. Deleting an absent override is not
	// an error.
	Revert(ctx context.Context, id int64) error

	// ListAll enumerates every order with an active override
	ListAll(ctx context.Context) ([]Entry, error)
}

// Resolve returns the override's edited address when one is active for id,
// else the canonical address unchanged.
func Resolve(ctx context.Context, s Store, id int64, canonical valueobject.Address) (valueobject.Address, error) {
	ov, err := s.Get(ctx, id)
	if err != nil {
		return canonical, err
	}
	if ov == nil {
		return canonical, nil
	}
	return ov.Edited.Address, nil
}
