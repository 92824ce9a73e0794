package httpapi

import (
	"net/http"

	"github.com/TudorHulban/slotledger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type handlers struct {
	ledger *slotledger.Ledger
}

type requestBooking struct {
	User string `json:"user"`
	From *int   `json:"from" binding:"required"`
	Till *int   `json:"till" binding:"required"`
}

func (r *requestBooking) toParams() *slotledger.ParamsBooking {
	return &slotledger.ParamsBooking{
		User: r.User,
		Interval: slotledger.Interval{
			From: *r.From,
			Till: *r.Till,
		},
	}
}

type queryAvailability struct {
	From int `form:"from,default=8"`
	Till int `form:"till,default=20"`
}

func statusFor(err error) int {
	switch slotledger.KindOf(err) {
	case slotledger.KindNotBooked:
		return http.StatusNotFound

	case slotledger.KindOwnershipViolation:
		return http.StatusForbidden
	}

	return http.StatusBadRequest
}

func renderError(c *gin.Context, err error) {
	c.JSON(
		statusFor(err),
		gin.H{
			"error": err.Error(),
			"kind":  slotledger.KindOf(err).String(),
		},
	)
}

func (h *handlers) getBookedHours(c *gin.Context) {
	c.JSON(
		http.StatusOK,
		gin.H{"hours": h.ledger.GetBookedHours()},
	)
}

func (h *handlers) getBookings(c *gin.Context) {
	c.JSON(
		http.StatusOK,
		gin.H{"bookings": h.ledger.GetBookings()},
	)
}

func (h *handlers) getAvailability(c *gin.Context) {
	var query queryAvailability

	if errBind := c.ShouldBindQuery(&query); errBind != nil {
		renderError(c, errBind)

		return
	}

	free, errGet := h.ledger.GetAvailability(
		slotledger.Interval{
			From: query.From,
			Till: query.Till,
		},
	)
	if errGet != nil {
		renderError(c, errGet)

		return
	}

	c.JSON(
		http.StatusOK,
		gin.H{"free": free},
	)
}

func (h *handlers) book(c *gin.Context) {
	var request requestBooking

	if errBind := c.ShouldBindJSON(&request); errBind != nil {
		renderError(c, errBind)

		return
	}

	params := request.toParams()

	booked, errBook := h.ledger.Book(c.Request.Context(), params)
	if errBook != nil {
		getLogger(c).Debug("book rejected", zap.Error(errBook))

		renderError(c, errBook)

		return
	}

	if !booked {
		getLogger(c).Info(
			"book conflict",
			zap.String("user", params.User),
			zap.Stringer("interval", params.Interval),
		)

		c.JSON(
			http.StatusConflict,
			gin.H{"booked": false},
		)

		return
	}

	getLogger(c).Info(
		"booked",
		zap.String("user", params.User),
		zap.Stringer("interval", params.Interval),
	)

	c.JSON(
		http.StatusCreated,
		gin.H{"booked": true},
	)
}

func (h *handlers) cancel(c *gin.Context) {
	var request requestBooking

	if errBind := c.ShouldBindJSON(&request); errBind != nil {
		renderError(c, errBind)

		return
	}

	params := request.toParams()

	if errCancel := h.ledger.Cancel(c.Request.Context(), params); errCancel != nil {
		getLogger(c).Debug("cancel rejected", zap.Error(errCancel))

		renderError(c, errCancel)

		return
	}

	getLogger(c).Info(
		"cancelled",
		zap.String("user", params.User),
		zap.Stringer("interval", params.Interval),
	)

	c.JSON(
		http.StatusOK,
		gin.H{"cancelled": true},
	)
}
