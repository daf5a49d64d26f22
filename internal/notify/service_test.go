package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookingagenthq/booking-agent/internal/models"
)

// Mock implementations

type mockSMSSender struct {
	sent []struct{ from, to, body string }
	err  error
}

func (m *mockSMSSender) SendSMS(ctx context.Context, from, to, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, struct{ from, to, body string }{from, to, body})
	return nil
}

type mockEmailSender struct {
	sent []EmailMessage
	err  error
}

func (m *mockEmailSender) SendEmail(ctx context.Context, msg EmailMessage) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func strPtr(s string) *string { return &s }

func fixtures() (*models.Business, *models.Booking) {
	business := &models.Business{
		Name:              "Tony's Barbershop",
		Email:             "tony@example.com",
		Address:           "12 Main St",
		TwilioPhoneNumber: "+16135550100",
	}
	booking := &models.Booking{
		CustomerName:    "James",
		CustomerPhone:   "+15551234567",
		ServiceIDs:      []string{"men's haircut"},
		AppointmentDate: strPtr("2026-03-05"),
		AppointmentTime: strPtr("15:00:00"),
		SpecialRequests: strPtr("low taper fade"),
	}
	return business, booking
}

func TestBookingConfirmed_SendsBoth(t *testing.T) {
	sms := &mockSMSSender{}
	email := &mockEmailSender{}
	svc := NewService(sms, email)

	business, booking := fixtures()
	svc.BookingConfirmed(context.Background(), business, booking)

	require.Len(t, sms.sent, 1)
	assert.Equal(t, "+16135550100", sms.sent[0].from)
	assert.Equal(t, "+15551234567", sms.sent[0].to)
	assert.Contains(t, sms.sent[0].body, "Tony's Barbershop")
	assert.Contains(t, sms.sent[0].body, "men's haircut")
	assert.Contains(t, sms.sent[0].body, "2026-03-05")
	assert.Contains(t, sms.sent[0].body, "15:00:00")
	assert.Contains(t, sms.sent[0].body, "12 Main St")

	require.Len(t, email.sent, 1)
	msg := email.sent[0]
	assert.Equal(t, "tony@example.com", msg.To)
	assert.Contains(t, msg.Subject, "James")
	assert.Contains(t, msg.Body, "low taper fade")
	assert.Contains(t, msg.Body, "+15551234567")
}

func TestBookingConfirmed_NoTwilioNumberSkipsSMS(t *testing.T) {
	sms := &mockSMSSender{}
	email := &mockEmailSender{}
	svc := NewService(sms, email)

	business, booking := fixtures()
	business.TwilioPhoneNumber = ""

	svc.BookingConfirmed(context.Background(), business, booking)

	assert.Empty(t, sms.sent)
	assert.Len(t, email.sent, 1)
}

func TestBookingConfirmed_MissingFieldsBecomePlaceholders(t *testing.T) {
	email := &mockEmailSender{}
	svc := NewService(nil, email)

	business, booking := fixtures()
	booking.AppointmentDate = nil
	booking.SpecialRequests = nil

	svc.BookingConfirmed(context.Background(), business, booking)

	require.Len(t, email.sent, 1)
	assert.Contains(t, email.sent[0].Body, "Date: TBD")
	assert.Contains(t, email.sent[0].Body, "Special Requests: None")
}

func TestBookingConfirmed_SendFailuresAreSwallowed(t *testing.T) {
	sms := &mockSMSSender{err: errors.New("twilio down")}
	email := &mockEmailSender{err: errors.New("sendgrid down")}
	svc := NewService(sms, email)

	business, booking := fixtures()

	// Must not panic or propagate.
	svc.BookingConfirmed(context.Background(), business, booking)
}
