package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/cafeorders/internal/domain/errors"
)

// PaymentMethod describes how the customer settles the order.
type PaymentMethod string

const PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"

// DeliveryType describes how the order reaches the customer.
type DeliveryType string

const (
	DeliveryPickup   DeliveryType = "pickup"
	DeliveryDelivery DeliveryType = "delivery"
)

// CustomerInfo holds contact details captured at checkout.
type CustomerInfo struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// ProductRef is the catalog product snapshot embedded in an order line.
type ProductRef struct {
	ID    string
	Title string
	Image string
}

// OrderItem is a single order line.
type OrderItem struct {
	Product  ProductRef
	Title    string
	Price    decimal.Decimal
	Quantity int
	Total    decimal.Decimal
}

// NewOrderItem builds an order line with Total derived from price and quantity.
func NewOrderItem(product ProductRef, title string, price decimal.Decimal, quantity int) OrderItem {
	item := OrderItem{Product: product, Title: title, Price: price, Quantity: quantity}
	item.Total = item.LineTotal()
	return item
}

// LineTotal computes price × quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order describes a customer purchase progressing through fulfillment.
type Order struct {
	ID              int64
	OrderNumber     string
	Customer        CustomerInfo
	Items           []OrderItem
	TotalAmount     decimal.Decimal
	Status          OrderStatus
	PaymentMethod   PaymentMethod
	DeliveryType    DeliveryType
	DeliveryAddress *string
	Notes           *string
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SumItems returns Σ price × quantity over items, ignoring stored line totals.
func SumItems(items []OrderItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// CheckTotals verifies every line total and the order total.
func (o *Order) CheckTotals() error {
	stored := decimal.Zero
	for i, item := range o.Items {
		if !item.Total.Equal(item.LineTotal()) {
			return fmt.Errorf("%w: item %d total %s, expected %s", domainErrors.ErrValidation, i, item.Total, item.LineTotal())
		}
		stored = stored.Add(item.Total)
	}
	if !o.TotalAmount.Equal(stored) {
		return fmt.Errorf("%w: order total %s, expected %s", domainErrors.ErrValidation, o.TotalAmount, stored)
	}
	return nil
}
