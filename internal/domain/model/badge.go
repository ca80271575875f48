package model

// Badge is the visual status marker shown to customers.
type Badge struct {
	Label string
	Icon  string
	Color string
}

var badges = map[OrderStatus]Badge{
	OrderStatusPending:   {Label: "Pending", Icon: "clock", Color: "yellow"},
	OrderStatusConfirmed: {Label: "Confirmed", Icon: "check-circle", Color: "blue"},
	OrderStatusPreparing: {Label: "Preparing", Icon: "coffee", Color: "orange"},
	OrderStatusReady:     {Label: "Ready", Icon: "package", Color: "purple"},
	OrderStatusDelivered: {Label: "Delivered", Icon: "truck", Color: "green"},
	OrderStatusCancelled: {Label: "Cancelled", Icon: "x-circle", Color: "red"},
}

// BadgeFor returns the badge variant for status.
func BadgeFor(status OrderStatus) Badge {
	if b, ok := badges[status]; ok {
		return b
	}
	return Badge{Label: string(status), Icon: "help-circle", Color: "gray"}
}
