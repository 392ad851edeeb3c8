package orders

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/orders"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/override"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/shipping"
)

// StatusFilter narrows the list to a fulfillment state
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusPending   StatusFilter = "pending"
	StatusFulfilled StatusFilter = "fulfilled"
)

// SortKey selects the date the list is ordered by
type SortKey string

const (
	SortByPurchaseDate SortKey = "purchase"
	SortByDispatchDate SortKey = "dispatch"
)

// SortDir is the sort direction
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// FilterState is the complete, immutable view state for one listing call.
// It is passed explicitly on every call; the service holds no filter state
// between requests. Zero values mean "no restriction".
type FilterState struct {
	Status    StatusFilter
	SinceDays int
	Search    string
	SortKey   SortKey
	SortDir   SortDir
}

// Row is one order annotated for display: the computed dispatch schedule and
// whether a local address override is active
type Row struct {
	Order    orders.Order      `json:"order"`
	Schedule shipping.Schedule `json:"schedule"`
	Edited   bool              `json:"edited"`
}

// Counts are aggregate badge counts computed over the unfiltered set, so the
// badges stay stable while the operator narrows the list
type Counts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Fulfilled int `json:"fulfilled"`
}

// ListResult is the projection the list view renders
type ListResult struct {
	Rows   []Row  `json:"rows"`
	Counts Counts `json:"counts"`
}

// Service builds order projections from the external order source and the
// local override store
type Service struct {
	source orders.DataSource
	store  override.Store

	// now is swappable in tests; the date-range filter depends on it
	now func() time.Time
}

// NewService creates a new order view service
func NewService(source orders.DataSource, store override.Store) *Service {
	return &Service{
		source: source,
		store:  store,
		now:    time.Now,
	}
}

// ListView fetches all orders, annotates them, applies the filter state, and
// returns the sorted rows together with counts over the unfiltered set
func (s *Service) ListView(ctx context.Context, state FilterState) (*ListResult, error) {
	fetched, err := s.source.ListOrders(ctx, orders.ListFilter{})
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(fetched))
	for _, o := range fetched {
		edited, err := s.store.Has(ctx, o.ID)
		if err != nil {
			edited = false
		}
		rows = append(rows, Row{
			Order:    o,
			Schedule: shipping.ComputeSchedule(o),
			Edited:   edited,
		})
	}

	result := &ListResult{
		Rows:   s.applyFilter(rows, state),
		Counts: countRows(rows),
	}
	sortRows(result.Rows, state.SortKey, state.SortDir)
	return result, nil
}

// GetRow fetches a single order and annotates it like ListView does
func (s *Service) GetRow(ctx context.Context, id int64) (*Row, error) {
	o, err := s.source.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	edited, err := s.store.Has(ctx, id)
	if err != nil {
		edited = false
	}

	return &Row{
		Order:    *o,
		Schedule: shipping.ComputeSchedule(*o),
		Edited:   edited,
	}, nil
}

// applyFilter narrows rows by status, then date range, then free-text
// search. The stages are AND-combined; each one only ever removes rows, so
// the result is always a subset of the input and re-applying the same state
// changes nothing.
func (s *Service) applyFilter(rows []Row, state FilterState) []Row {
	filtered := make([]Row, 0, len(rows))
	cutoff := time.Time{}
	if state.SinceDays > 0 {
		cutoff = s.now().AddDate(0, 0, -state.SinceDays)
	}
	query := strings.ToLower(strings.TrimSpace(state.Search))

	for _, row := range rows {
		if !matchesStatus(row.Order, state.Status) {
			continue
		}
		if !cutoff.IsZero() && row.Order.CreatedAt.Before(cutoff) {
			continue
		}
		if query != "" && !matchesSearch(row.Order, query) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

// matchesStatus applies the fulfillment-status stage. Unknown filter values
// behave like StatusAll.
func matchesStatus(o orders.Order, status StatusFilter) bool {
	switch status {
	case StatusPending:
		return o.FulfillmentStatus.IsPending()
	case StatusFulfilled:
		return o.FulfillmentStatus.IsFulfilled()
	default:
		return true
	}
}

// matchesSearch reports whether any searchable field contains the
// already-lowercased query
func matchesSearch(o orders.Order, query string) bool {
	fields := []string{
		o.Name,
		strconv.Itoa(o.Number),
	}
	if o.Customer != nil {
		fields = append(fields, o.Customer.FirstName, o.Customer.LastName, o.Customer.Email)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// sortRows orders rows in place by the chosen date key. The sort is stable;
// rows with equal keys keep their fetch order.
func sortRows(rows []Row, key SortKey, dir SortDir) {
	keyOf := func(r Row) time.Time {
		if key == SortByDispatchDate {
			return r.Schedule.DispatchDate
		}
		return r.Order.CreatedAt
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if dir == SortDesc {
			return keyOf(rows[j]).Before(keyOf(rows[i]))
		}
		return keyOf(rows[i]).Before(keyOf(rows[j]))
	})
}

func countRows(rows []Row) Counts {
	counts := Counts{Total: len(rows)}
	for _, row := range rows {
		if row.Order.FulfillmentStatus.IsFulfilled() {
			counts.Fulfilled++
		} else {
			counts.Pending++
		}
	}
	return counts
}
