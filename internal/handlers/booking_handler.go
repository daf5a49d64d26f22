package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookingagenthq/booking-agent/internal/httperr"
	"github.com/bookingagenthq/booking-agent/internal/httpresp"
	"github.com/bookingagenthq/booking-agent/internal/middleware"
	"github.com/bookingagenthq/booking-agent/internal/models"
	"github.com/bookingagenthq/booking-agent/internal/timezone"
)

// bookingLister is the slice of the repository the handler needs.
type bookingLister interface {
	ListBookingsForPeriod(ctx context.Context, businessID uint, fromDate, toDate string) ([]models.Booking, error)
}

type BookingHandler struct {
	repo bookingLister
}

func NewBookingHandler(repo bookingLister) *BookingHandler {
	return &BookingHandler{repo: repo}
}

// List is GET /api/me/bookings?from=2026-03-01&to=2026-03-31. Defaults to
// the coming week.
func (h *BookingHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	from := c.Query("from")
	to := c.Query("to")

	if from == "" {
		from = timezone.Now().Format("2006-01-02")
	}
	if to == "" {
		to = timezone.Now().Add(7 * 24 * time.Hour).Format("2006-01-02")
	}

	if _, err := time.Parse("2006-01-02", from); err != nil {
		httperr.BadRequest(c, "invalid_from", "from must be YYYY-MM-DD.")
		return
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		httperr.BadRequest(c, "invalid_to", "to must be YYYY-MM-DD.")
		return
	}

	bookings, err := h.repo.ListBookingsForPeriod(c.Request.Context(), businessID, from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}
