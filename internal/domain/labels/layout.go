package labels

import (
	"fmt"
	"strings"

	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/orders"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/shared/valueobject"
)

// CompactPageCapacity is the number of labels on one compact sheet
// (2 columns x 6 rows)
const CompactPageCapacity = 12

// Descriptor is the render-ready representation of one order's shipping
// label. Edited marks override-sourced addresses for visual flagging only;
// it never changes geometry. HasAddress is false when no address could be
// resolved, in which case the label still occupies its slot with an explicit
// marker instead of being dropped.
type Descriptor struct {
	OrderID     int64               `json:"order_id"`
	OrderName   string              `json:"order_name"`
	Recipient   valueobject.Address `json:"recipient"`
	HasAddress  bool                `json:"has_address"`
	Edited      bool                `json:"edited"`
	ItemSummary string              `json:"item_summary"`
	Total       valueobject.Money   `json:"total"`
}

// Page is one printable sheet of labels, at most the page capacity
type Page struct {
	Number int          `json:"number"`
	Labels []Descriptor `json:"labels"`
}

// SheetFormat exposes the print-layout parameters for a label sheet. Physical
// styling is the renderer's business; this only states the grid and paper
// dimensions in millimeters.
type SheetFormat struct {
	PaperSize string `json:"paper_size"`
	WidthMM   int    `json:"width_mm"`
	HeightMM  int    `json:"height_mm"`
	Columns   int    `json:"columns"`
	Rows      int    `json:"rows"`
}

// Capacity returns the number of label cells per sheet
func (f SheetFormat) Capacity() int {
	return f.Columns * f.Rows
}

// CompactSheetFormat returns the 12-up compact layout on A4 paper
func CompactSheetFormat() SheetFormat {
	return SheetFormat{
		PaperSize: "A4",
		WidthMM:   210,
		HeightMM:  297,
		Columns:   2,
		Rows:      6,
	}
}

// Layout partitions labels into consecutive pages of at most capacity
// entries, preserving input order. No reordering or bin-packing; trailing
// cells on the last page stay blank. A capacity below 1 falls back to the
// compact capacity.
func Layout(descriptors []Descriptor, capacity int) []Page {
	if capacity < 1 {
		capacity = CompactPageCapacity
	}

	pages := make([]Page, 0, (len(descriptors)+capacity-1)/capacity)
	for start := 0; start < len(descriptors); start += capacity {
		end := start + capacity
		if end > len(descriptors) {
			end = len(descriptors)
		}
		pages = append(pages, Page{
			Number: len(pages) + 1,
			Labels: descriptors[start:end],
		})
	}
	return pages
}

// SummarizeItems builds the one-line item summary printed under the address:
// "2x Camiseta, 1x Sudadera PEDIDO"
func SummarizeItems(items []orders.LineItem) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		title := item.Title
		if item.VariantTitle != "" {
			title += " (" + item.VariantTitle + ")"
		}
		parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity, title))
	}
	return strings.Join(parts, ", ")
}
