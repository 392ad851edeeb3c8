package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/override"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/shared/valueobject"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/infrastructure/persistence/models"
)

// overrideKeyPrefix namespaces storage keys so the table could host other
// record kinds without collisions
const overrideKeyPrefix = "address_override:"

// overrideKey builds the namespaced storage key for an order
func overrideKey(id int64) string {
	return fmt.Sprintf("%s%d", overrideKeyPrefix, id)
}

// overrideRecord is the persisted JSON payload. Shape is stable:
// {address, notes, original_address, timestamp}. There is no schema
// versioning; records that fail to decode are treated as absent.
type overrideRecord struct {
	Address   valueobject.Address `json:"address"`
	Notes     string              `json:"notes,omitempty"`
	Original  valueobject.Address `json:"original_address"`
	Timestamp time.Time           `json:"timestamp"`
}

// GormOverrideStore implements override.Store on the local sqlite database
type GormOverrideStore struct {
	db *gorm.DB
}

// NewGormOverrideStore creates a new GormOverrideStore
func NewGormOverrideStore(db *gorm.DB) *GormOverrideStore {
	return &GormOverrideStore{db: db}
}

// Save creates or updates the override for id. The original-address snapshot
// is first-write-wins: once a record exists with a readable snapshot, later
// saves replace only the edited address, notes, and timestamp.
func (s *GormOverrideStore) Save(ctx context.Context, id int64, edited override.EditedAddress, original valueobject.Address) error {
	record := overrideRecord{
		Address:   edited.Address,
		Notes:     edited.Notes,
		Original:  original,
		Timestamp: time.Now().UTC(),
	}

	// Keep the existing snapshot when one is already stored. A corrupt
	// existing record reads as absent, so the incoming original becomes the
	// new snapshot.
	if existing := s.load(ctx, id); existing != nil {
		record.Original = existing.Original
	}

	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode override: %w", err)
	}

	model := models.OverrideModel{
		Key:     overrideKey(id),
		OrderID: id,
		Value:   string(value),
	}

	return s.db.WithContext(ctx).Save(&model).Error
}

// Get returns the override for id, or (nil, nil) when there is none.
// Malformed stored values read as absent, never as errors.
func (s *GormOverrideStore) Get(ctx context.Context, id int64) (*override.Override, error) {
	record := s.load(ctx, id)
	if record == nil {
		return nil, nil
	}
	return record.toDomain(id), nil
}

// Has reports whether id has a readable override
func (s *GormOverrideStore) Has(ctx context.Context, id int64) (bool, error) {
	return s.load(ctx, id) != nil, nil
}

// Revert deletes the override for id; deleting an absent one is a no-op
func (s *GormOverrideStore) Revert(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).
		Delete(&models.OverrideModel{}, "key = ?", overrideKey(id)).Error
}

// ListAll enumerates every order with a readable override, oldest edit first
func (s *GormOverrideStore) ListAll(ctx context.Context) ([]override.Entry, error) {
	var rows []models.OverrideModel
	if err := s.db.WithContext(ctx).Order("updated_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]override.Entry, 0, len(rows))
	for _, row := range rows {
		var record overrideRecord
		if err := json.Unmarshal([]byte(row.Value), &record); err != nil {
			// Corrupt rows are skipped, not surfaced
			continue
		}
		entries = append(entries, override.Entry{
			OrderID:  row.OrderID,
			Override: *record.toDomain(row.OrderID),
		})
	}
	return entries, nil
}

// load fetches and decodes the record for id; any failure reads as absent
func (s *GormOverrideStore) load(ctx context.Context, id int64) *overrideRecord {
	var model models.OverrideModel
	// Read errors of any kind degrade to "no override"; the canonical
	// address remains usable either way
	if err := s.db.WithContext(ctx).First(&model, "key = ?", overrideKey(id)).Error; err != nil {
		return nil
	}

	var record overrideRecord
	if err := json.Unmarshal([]byte(model.Value), &record); err != nil {
		return nil
	}
	return &record
}

// toDomain converts a stored record to the domain override
func (r *overrideRecord) toDomain(id int64) *override.Override {
	return &override.Override{
		OrderID: id,
		Edited: override.EditedAddress{
			Address: r.Address,
			Notes:   r.Notes,
		},
		OriginalAddress: r.Original,
		UpdatedAt:       r.Timestamp,
	}
}

// Ensure GormOverrideStore implements the store interface
var _ override.Store = (*GormOverrideStore)(nil)
