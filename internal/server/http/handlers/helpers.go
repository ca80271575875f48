package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/cafeorders/internal/domain/errors"
	"github.com/polkiloo/cafeorders/internal/server/http/dto"
)

const (
	msgNotFound       = "Order not found"
	msgInternal       = "Something went wrong, please try again"
	msgInvalidID      = "Invalid order id"
	msgConflict       = "Order was modified by someone else, reload and try again"
	msgInvalidToken   = "Delete confirmation is invalid or expired"
	msgTokenRequired  = "Delete confirmation required"
	msgInvalidPayload = "Invalid request body"
	msgNoRoute        = "Resource not found"
)

// ConfirmTokenHeader carries the delete confirmation token.
const ConfirmTokenHeader = "X-Confirm-Token"

// NoRoute answers unmatched routes with the failure envelope.
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.Fail(msgNoRoute))
}

func orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.Fail(msgInvalidID))
		return 0, false
	}
	return id, true
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(msgNotFound))
	case errors.Is(err, domainErrors.ErrVersionConflict):
		c.JSON(http.StatusConflict, dto.Fail(msgConflict))
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, dto.Fail(err.Error()))
	case errors.Is(err, domainErrors.ErrMissingConfirmation):
		c.JSON(http.StatusPreconditionRequired, dto.Fail(msgTokenRequired))
	case errors.Is(err, domainErrors.ErrInvalidConfirmation):
		c.JSON(http.StatusBadRequest, dto.Fail(msgInvalidToken))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.Fail(msgInternal))
	}
}
