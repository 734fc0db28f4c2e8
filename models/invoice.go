package models

import (
	"github.com/shopspring/decimal"
)

// Invoice is the normalized, render-ready representation of one order.
// It is built fresh per request and discarded with the response.
type Invoice struct {
	SalonName string

	// Sender identity comes from process configuration, never the payload
	SenderName  string
	SenderPhone string

	OrderID string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	DeliveryAddress string

	Items []LineItem

	// TotalSum is taken as given from the payload. It is never recomputed
	// from the line items and may legitimately disagree with their sum.
	TotalSum decimal.Decimal

	GeneratedAt string // generation instant, dd.mm.yyyy HH:MM
	DisplayDate string // header/filename date, dd.mm.yyyy unless overridden
}

// LineItem is one product entry on an invoice. The line amount is
// price × quantity, computed at render time and never stored.
type LineItem struct {
	Name     string
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

func (li LineItem) Amount() decimal.Decimal {
	return li.Price.Mul(li.Quantity)
}
