package model

// Stats holds status-bucket counts over an order set.
type Stats struct {
	Pending    int
	InProgress int
	Completed  int
	Total      int
}

// Add counts one order in status. Unknown statuses are left out of every
// bucket and of Total; Add reports whether status was counted.
func (s *Stats) Add(status OrderStatus) bool {
	switch status {
	case OrderStatusPending:
		s.Pending++
	case OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady:
		s.InProgress++
	case OrderStatusDelivered, OrderStatusCancelled:
		s.Completed++
	default:
		return false
	}
	s.Total++
	return true
}

// ComputeStats derives bucket counts from orders. The result does not depend on order.
func ComputeStats(orders []Order) Stats {
	var stats Stats
	for _, o := range orders {
		stats.Add(o.Status)
	}
	return stats
}
