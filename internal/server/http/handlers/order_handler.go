package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/cafeorders/internal/domain/model"
	"github.com/polkiloo/cafeorders/internal/server/http/dto"
	"github.com/polkiloo/cafeorders/internal/usecase"
)

// OrderHandler manages admin order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, stats, err := h.facade.Overview(c.Request.Context(), c.Query("search"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrderListResponse{
		Success: true,
		Data:    dto.FromOrders(orders),
		Stats:   dto.FromStats(stats),
	})
}

// Stats handles GET /api/orders/stats.
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.facade.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromStats(stats)))
}

// Get handles GET /api/orders/{id}.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	detail, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp := dto.FromOrder(*detail.Order)
	resp.Items = itemsResponse(detail.Items)
	c.JSON(http.StatusOK, dto.OK(resp))
}

// Update handles PUT /api/orders/{id}.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(msgInvalidPayload))
		return
	}

	update := usecase.UpdateRequest{Notes: req.Notes, Version: req.Version}
	if req.Status != nil {
		status, err := model.ParseStatus(*req.Status)
		if err != nil {
			writeError(c, err)
			return
		}
		update.Status = &status
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), id, update)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromOrder(*order)))
}

// RequestDelete handles POST /api/orders/{id}/delete-request.
func (h *OrderHandler) RequestDelete(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	confirmation, err := h.facade.RequestDelete(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.DeleteConfirmation{
		Token:     confirmation.Token,
		ExpiresAt: confirmation.ExpiresAt,
	}))
}

// Delete handles DELETE /api/orders/{id}.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	if err := h.facade.ConfirmDelete(c.Request.Context(), id, c.GetHeader(ConfirmTokenHeader)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Envelope{Success: true})
}

func itemsResponse(items []usecase.ItemView) []dto.OrderItem {
	out := make([]dto.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, dto.FromItem(item.OrderItem, item.Image))
	}
	return out
}
