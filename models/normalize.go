package models

import (
	"time"

	"blossom-invoice-backend/utils"
)

// Payload field defaults. Partial or garbled orders still produce a
// reviewable document, so every fallback is a printable placeholder.
const (
	DefaultSalonName   = "Салон"
	DefaultOrderID     = "UNKNOWN"
	DefaultCustomer    = "Не указано"
	DefaultContact     = "—"
	DefaultAddress     = "Не указано"
	PlaceholderNoItems = "Товары не указаны"
)

// SenderIdentity is the process-wide "from" block printed on every invoice.
type SenderIdentity struct {
	Name  string
	Phone string
}

// NormalizeOrder coerces an arbitrary order payload into an Invoice.
// Every field is optional: absent or wrong-typed values resolve to the
// defaults above, numeric coercion failures resolve to zero, and a
// non-array items value resolves to no items. Normalization never fails.
func NormalizeOrder(payload map[string]any, sender SenderIdentity, now time.Time) Invoice {
	if payload == nil {
		payload = map[string]any{}
	}

	inv := Invoice{
		SalonName:       utils.StringOr(payload, "salon_name", DefaultSalonName),
		SenderName:      sender.Name,
		SenderPhone:     sender.Phone,
		OrderID:         utils.StringOr(payload, "order_id", DefaultOrderID),
		CustomerName:    utils.StringOr(payload, "customer_name", DefaultCustomer),
		CustomerEmail:   utils.StringOr(payload, "customer_email", DefaultContact),
		CustomerPhone:   utils.StringOr(payload, "customer_phone", DefaultContact),
		DeliveryAddress: utils.StringOr(payload, "delivery_address", DefaultAddress),
		TotalSum:        utils.CoerceDecimal(payload["total_sum"]),
		GeneratedAt:     utils.FormatTimestamp(now),
		DisplayDate:     displayDate(payload, now),
	}

	for _, raw := range utils.ItemsOf(payload, "items") {
		item, ok := raw.(map[string]any)
		if !ok {
			// a malformed entry still occupies its row
			inv.Items = append(inv.Items, LineItem{})
			continue
		}
		inv.Items = append(inv.Items, LineItem{
			Name:     utils.StringOr(item, "name", ""),
			Quantity: utils.CoerceDecimal(item["quantity"]),
			Price:    utils.CoerceDecimal(item["price"]),
		})
	}

	return inv
}

// displayDate prefers the caller-supplied invoice date ("invoice_date",
// legacy key "date") and falls back to the generation date. The override
// is an opaque display string and is not re-parsed.
func displayDate(payload map[string]any, now time.Time) string {
	if v := utils.StringOr(payload, "invoice_date", ""); v != "" {
		return v
	}
	if v := utils.StringOr(payload, "date", ""); v != "" {
		return v
	}
	return utils.FormatDate(now)
}
