package notify

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bookingagenthq/booking-agent/internal/models"
)

// Service sends the post-booking notifications: a confirmation SMS to the
// customer and a heads-up email to the business owner. Both are best-effort;
// a failed send is logged and never bubbles up to the webhook response.
type Service struct {
	sms   SMSSender
	email EmailSender
}

func NewService(sms SMSSender, email EmailSender) *Service {
	return &Service{sms: sms, email: email}
}

// BookingConfirmed fires both notifications for a freshly stored booking.
func (s *Service) BookingConfirmed(ctx context.Context, business *models.Business, booking *models.Booking) {
	if s == nil {
		return
	}
	s.sendCustomerSMS(ctx, business, booking)
	s.sendOwnerEmail(ctx, business, booking)
}

func (s *Service) sendCustomerSMS(ctx context.Context, business *models.Business, booking *models.Booking) {
	if s.sms == nil || booking.CustomerPhone == "" || business.TwilioPhoneNumber == "" {
		return
	}

	body := fmt.Sprintf(
		"Thanks for booking with %s! Your %s is on %s at %s. We'll see you at %s.",
		business.Name,
		strings.Join(booking.ServiceIDs, " and "),
		orTBD(booking.AppointmentDate),
		orTBD(booking.AppointmentTime),
		business.Address,
	)

	if err := s.sms.SendSMS(ctx, business.TwilioPhoneNumber, booking.CustomerPhone, body); err != nil {
		log.Printf("notify: customer sms failed for booking %d: %v", booking.ID, err)
	}
}

func (s *Service) sendOwnerEmail(ctx context.Context, business *models.Business, booking *models.Booking) {
	if s.email == nil || business.Email == "" {
		return
	}

	body := fmt.Sprintf(`New Booking at %s!

Customer: %s
Phone: %s
Service: %s
Date: %s
Time: %s
Special Requests: %s

Please add this to your calendar.
`,
		business.Name,
		booking.CustomerName,
		booking.CustomerPhone,
		strings.Join(booking.ServiceIDs, " and "),
		orTBD(booking.AppointmentDate),
		orTBD(booking.AppointmentTime),
		orNone(booking.SpecialRequests),
	)

	msg := EmailMessage{
		// SendGrid requires a verified sender; the owner address doubles as
		// both ends.
		From:     business.Email,
		FromName: business.Name,
		To:       business.Email,
		ToName:   business.Name,
		Subject:  fmt.Sprintf("New Booking: %s - %s", booking.CustomerName, orTBD(booking.AppointmentDate)),
		Body:     body,
	}

	if err := s.email.SendEmail(ctx, msg); err != nil {
		log.Printf("notify: owner email failed for booking %d: %v", booking.ID, err)
	}
}

func orTBD(v *string) string {
	if v == nil || *v == "" {
		return "TBD"
	}
	return *v
}

func orNone(v *string) string {
	if v == nil || *v == "" {
		return "None"
	}
	return *v
}
