package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/bookingagenthq/booking-agent/internal/domain/booking"
	"github.com/bookingagenthq/booking-agent/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Business
// --------------------------------------------------

func (r *BookingGormRepository) FindBusinessByNumberOrAssistant(
	ctx context.Context,
	twilioNumber string,
	assistantID string,
) (*models.Business, error) {

	var business models.Business
	if err := r.db.WithContext(ctx).
		Where("twilio_phone_number = ?", twilioNumber).
		Or("vapi_assistant_id = ?", assistantID).
		First(&business).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *BookingGormRepository) GetBusinessByID(
	ctx context.Context,
	id uint,
) (*models.Business, error) {

	var business models.Business
	if err := r.db.WithContext(ctx).First(&business, id).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *BookingGormRepository) UpdateBusiness(
	ctx context.Context,
	business *models.Business,
) error {
	return r.db.WithContext(ctx).Save(business).Error
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) FindBookingByCallID(
	ctx context.Context,
	callID string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("vapi_call_id = ?", callID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) SetCalendarEventID(
	ctx context.Context,
	bookingID uint,
	eventID string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("google_calendar_event_id", eventID).Error
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	businessID uint,
	fromDate string,
	toDate string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"business_id = ? AND appointment_date >= ? AND appointment_date <= ?",
			businessID, fromDate, toDate,
		).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
