package shipping

import (
	"strings"
	"time"

	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/orders"
)

// Business-day offsets promised to the customer. Special orders are
// made to order and need the longer lead time.
const (
	StockOrderDays   = 3
	SpecialOrderDays = 20
)

// specialOrderMarker flags made-to-order items by title
const specialOrderMarker = "PEDIDO"

// Schedule is the computed dispatch promise for an order. It is derived on
// the fly and never persisted.
type Schedule struct {
	DispatchDate   time.Time `json:"dispatch_date"`
	IsSpecialOrder bool      `json:"is_special_order"`
}

// IsSpecialOrder reports whether any line item's title contains the
// special-order marker, case-insensitively. An order with no line items is a
// stock order.
func IsSpecialOrder(items []orders.LineItem) bool {
	for _, item := range items {
		if strings.Contains(strings.ToUpper(item.Title), specialOrderMarker) {
			return true
		}
	}
	return false
}

// ComputeDispatchDate derives the promised dispatch date for an order:
// 20 business days after createdAt for special orders, 3 otherwise.
// Business days are Monday through Friday with no holiday calendar. The
// start date itself is never counted, so a weekend createdAt simply walks
// forward until enough weekdays have passed. The result is always a weekday.
//
// createdAt is assumed valid; callers validate upstream. This function
// cannot fail.
func ComputeDispatchDate(createdAt time.Time, items []orders.LineItem) time.Time {
	days := StockOrderDays
	if IsSpecialOrder(items) {
		days = SpecialOrderDays
	}
	return addBusinessDays(createdAt, days)
}

// ComputeSchedule returns the full dispatch annotation for an order
func ComputeSchedule(o orders.Order) Schedule {
	special := IsSpecialOrder(o.LineItems)
	days := StockOrderDays
	if special {
		days = SpecialOrderDays
	}
	return Schedule{
		DispatchDate:   addBusinessDays(o.CreatedAt, days),
		IsSpecialOrder: special,
	}
}

// addBusinessDays walks forward one calendar day at a time, counting only
// weekdays, and returns the day the counter reaches n.
func addBusinessDays(start time.Time, n int) time.Time {
	d := start
	counted := 0
	for counted < n {
		d = d.AddDate(0, 0, 1)
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			counted++
		}
	}
	return d
}
