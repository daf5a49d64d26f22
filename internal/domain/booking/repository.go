package booking

import (
	"context"

	"github.com/bookingagenthq/booking-agent/internal/models"
)

type Repository interface {
	// -------- Business --------
	FindBusinessByNumberOrAssistant(
		ctx context.Context,
		twilioNumber string,
		assistantID string,
	) (*models.Business, error)

	GetBusinessByID(
		ctx context.Context,
		id uint,
	) (*models.Business, error)

	UpdateBusiness(
		ctx context.Context,
		business *models.Business,
	) error

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	FindBookingByCallID(
		ctx context.Context,
		callID string,
	) (*models.Booking, error)

	SetCalendarEventID(
		ctx context.Context,
		bookingID uint,
		eventID string,
	) error

	ListBookingsForPeriod(
		ctx context.Context,
		businessID uint,
		fromDate string,
		toDate string,
	) ([]models.Booking, error)
}
