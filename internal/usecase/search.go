package usecase

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/polkiloo/cafeorders/internal/domain/model"
)

// FilterOrders returns orders whose number, customer name or email contains term,
// ignoring case. A blank term returns orders unchanged.
func FilterOrders(orders []model.Order, term string) []model.Order {
	term = strings.TrimSpace(term)
	if term == "" {
		return orders
	}

	fold := cases.Fold()
	needle := fold.String(term)
	result := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(fold.String(o.OrderNumber), needle) ||
			strings.Contains(fold.String(o.Customer.Name), needle) ||
			strings.Contains(fold.String(o.Customer.Email), needle) {
			result = append(result, o)
		}
	}
	return result
}
