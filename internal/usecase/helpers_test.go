package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/cafeorders/internal/domain/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func statusPtr(s model.OrderStatus) *model.OrderStatus { return &s }

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func latteOrder(id int64, number string, status model.OrderStatus) model.Order {
	items := []model.OrderItem{
		model.NewOrderItem(model.ProductRef{ID: "latte", Title: "Latte"}, "Latte", decimal.NewFromInt(10), 2),
	}
	return model.Order{
		ID:            id,
		OrderNumber:   number,
		Customer:      model.CustomerInfo{Name: "Ada", Email: "ada@example.com", Phone: "+100", Address: "1 Main St"},
		Items:         items,
		TotalAmount:   model.SumItems(items),
		Status:        status,
		PaymentMethod: model.PaymentCashOnDelivery,
		DeliveryType:  model.DeliveryPickup,
		Version:       1,
		CreatedAt:     time.Date(2024, 5, 1, 9, 0, 0, int(id), time.UTC),
		UpdatedAt:     time.Date(2024, 5, 1, 9, 0, 0, int(id), time.UTC),
	}
}
