package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/cafeorders/internal/domain/model"
)

// CustomerInfo is the customer contact block.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ProductRef is the product snapshot stored with an order line.
type ProductRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image,omitempty"`
}

// OrderItem is a single order line. Image is the resolved display image.
type OrderItem struct {
	ProductRef ProductRef      `json:"productRef"`
	Title      string          `json:"title"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Total      decimal.Decimal `json:"total"`
	Image      string          `json:"image,omitempty"`
}

// Order is the admin representation of an order.
type Order struct {
	ID              int64           `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	CustomerInfo    CustomerInfo    `json:"customerInfo"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          string          `json:"status"`
	PaymentMethod   string          `json:"paymentMethod"`
	DeliveryType    string          `json:"deliveryType"`
	DeliveryAddress *string         `json:"deliveryAddress,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	Version         int64           `json:"version"`
	AllowedStatuses []string        `json:"allowedStatuses"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Stats holds status bucket counts.
type Stats struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Total      int `json:"total"`
}

// OrderListResponse is the payload of GET /api/orders.
type OrderListResponse struct {
	Success bool    `json:"success"`
	Data    []Order `json:"data"`
	Stats   Stats   `json:"stats"`
}

// UpdateOrderRequest describes PUT /api/orders/{id} payload.
type UpdateOrderRequest struct {
	Status  *string `json:"status"`
	Notes   *string `json:"notes"`
	Version *int64  `json:"version"`
}

// DeleteConfirmation is returned by the delete request endpoint.
type DeleteConfirmation struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// FromOrder converts a domain order. Item images are taken from the stored product reference.
func FromOrder(o model.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, FromItem(item, item.Product.Image))
	}
	return Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		CustomerInfo: CustomerInfo{
			Name:    o.Customer.Name,
			Email:   o.Customer.Email,
			Phone:   o.Customer.Phone,
			Address: o.Customer.Address,
		},
		Items:           items,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		PaymentMethod:   string(o.PaymentMethod),
		DeliveryType:    string(o.DeliveryType),
		DeliveryAddress: o.DeliveryAddress,
		Notes:           o.Notes,
		Version:         o.Version,
		AllowedStatuses: allowedStatuses(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func allowedStatuses(from model.OrderStatus) []string {
	targets := model.AllowedTargets(from)
	out := make([]string, 0, len(targets))
	for _, s := range targets {
		out = append(out, string(s))
	}
	return out
}

// FromItem converts an order line with the image to display.
func FromItem(item model.OrderItem, image string) OrderItem {
	return OrderItem{
		ProductRef: ProductRef{ID: item.Product.ID, Title: item.Product.Title, Image: item.Product.Image},
		Title:      item.Title,
		Price:      item.Price,
		Quantity:   item.Quantity,
		Total:      item.Total,
		Image:      image,
	}
}

// FromOrders converts a list of domain orders.
func FromOrders(orders []model.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

// FromStats converts aggregated stats.
func FromStats(s model.Stats) Stats {
	return Stats{Pending: s.Pending, InProgress: s.InProgress, Completed: s.Completed, Total: s.Total}
}

// ToOrder converts the wire representation back into a domain order.
func (o Order) ToOrder() model.Order {
	items := make([]model.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, model.OrderItem{
			Product:  model.ProductRef{ID: item.ProductRef.ID, Title: item.ProductRef.Title, Image: item.ProductRef.Image},
			Title:    item.Title,
			Price:    item.Price,
			Quantity: item.Quantity,
			Total:    item.Total,
		})
	}
	return model.Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Customer: model.CustomerInfo{
			Name:    o.CustomerInfo.Name,
			Email:   o.CustomerInfo.Email,
			Phone:   o.CustomerInfo.Phone,
			Address: o.CustomerInfo.Address,
		},
		Items:           items,
		TotalAmount:     o.TotalAmount,
		Status:          model.OrderStatus(o.Status),
		PaymentMethod:   model.PaymentMethod(o.PaymentMethod),
		DeliveryType:    model.DeliveryType(o.DeliveryType),
		DeliveryAddress: o.DeliveryAddress,
		Notes:           o.Notes,
		Version:         o.Version,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
