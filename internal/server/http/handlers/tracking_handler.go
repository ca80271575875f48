package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/cafeorders/internal/server/http/dto"
	"github.com/polkiloo/cafeorders/internal/usecase"
)

// TrackingHandler serves customer order lookups.
type TrackingHandler struct {
	facade TrackingFacade
}

// NewTrackingHandler constructs TrackingHandler.
func NewTrackingHandler(facade TrackingFacade) *TrackingHandler {
	return &TrackingHandler{facade: facade}
}

// ByNumber handles GET /api/orders/by-number/{orderNumber}.
func (h *TrackingHandler) ByNumber(c *gin.Context) {
	view, err := h.facade.Track(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(trackingResponse(view)))
}

func trackingResponse(view *usecase.TrackingView) dto.TrackingView {
	o := view.Order
	return dto.TrackingView{
		OrderNumber: o.OrderNumber,
		Status:      string(o.Status),
		Badge:       dto.FromBadge(view.Badge),
		CustomerInfo: dto.CustomerInfo{
			Name:    o.Customer.Name,
			Email:   o.Customer.Email,
			Phone:   o.Customer.Phone,
			Address: o.Customer.Address,
		},
		PaymentMethod:    string(o.PaymentMethod),
		PaymentLabel:     dto.PaymentLabel(o.PaymentMethod),
		DeliveryType:     string(o.DeliveryType),
		DeliveryAddress:  o.DeliveryAddress,
		Notes:            o.Notes,
		Items:            itemsResponse(view.Items),
		GrandTotal:       view.GrandTotal,
		TotalsConsistent: view.TotalsConsistent,
		CreatedAt:        o.CreatedAt,
	}
}
