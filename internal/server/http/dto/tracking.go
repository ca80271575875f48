package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/cafeorders/internal/domain/model"
)

// Badge is the customer-facing status marker.
type Badge struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// TrackingView is the payload of GET /api/orders/by-number/{orderNumber}.
type TrackingView struct {
	OrderNumber      string          `json:"orderNumber"`
	Status           string          `json:"status"`
	Badge            Badge           `json:"badge"`
	CustomerInfo     CustomerInfo    `json:"customerInfo"`
	PaymentMethod    string          `json:"paymentMethod"`
	PaymentLabel     string          `json:"paymentLabel"`
	DeliveryType     string          `json:"deliveryType"`
	DeliveryAddress  *string         `json:"deliveryAddress,omitempty"`
	Notes            *string         `json:"notes,omitempty"`
	Items            []OrderItem     `json:"items"`
	GrandTotal       decimal.Decimal `json:"grandTotal"`
	TotalsConsistent bool            `json:"totalsConsistent"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// FromBadge converts a domain badge.
func FromBadge(b model.Badge) Badge {
	return Badge{Label: b.Label, Icon: b.Icon, Color: b.Color}
}

// PaymentLabel returns the display text for method; unmapped methods are shown verbatim.
func PaymentLabel(method model.PaymentMethod) string {
	if method == model.PaymentCashOnDelivery {
		return "Cash on Delivery"
	}
	return string(method)
}
