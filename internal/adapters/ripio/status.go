package ripio

import "github.com/tradewire/ripio/internal/schema"

// orderStatuses maps the venue lifecycle vocabulary onto the canonical one.
var orderStatuses = map[string]schema.OrderStatus{
	"executed_completely": schema.OrderStatusClosed,
	"executed_partially":  schema.OrderStatusOpen,
	"waiting":             schema.OrderStatusOpen,
	"canceled":            schema.OrderStatusCanceled,
	"pending_creation":    schema.OrderStatusPending,
}

// parseOrderStatus translates a venue status string. Unknown statuses pass
// through unchanged so a new venue state never breaks parsing; the provider
// logs them for operator visibility.
func parseOrderStatus(raw string) schema.OrderStatus {
	if status, ok := orderStatuses[raw]; ok {
		return status
	}
	return schema.OrderStatus(raw)
}
