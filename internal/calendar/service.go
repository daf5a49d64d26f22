// Package calendar creates Google Calendar events for stored bookings on
// behalf of businesses that have linked their account via OAuth.
package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/bookingagenthq/booking-agent/internal/config"
	"github.com/bookingagenthq/booking-agent/internal/models"
	"github.com/bookingagenthq/booking-agent/internal/timezone"
)

const defaultDurationMinutes = 30

type Service struct {
	oauth *oauth2.Config
}

func NewService(cfg *config.Config) *Service {
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		return nil
	}
	return &Service{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{gcal.CalendarEventsScope},
		},
	}
}

// AuthCodeURL returns the consent URL for the calendar-link flow.
func (s *Service) AuthCodeURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange trades an authorization code for tokens.
func (s *Service) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return s.oauth.Exchange(ctx, code)
}

// CreateEvent inserts a calendar event for the booking in the business's
// primary calendar and returns the event ID. Businesses that never linked a
// calendar are skipped with no error.
func (s *Service) CreateEvent(ctx context.Context, business *models.Business, booking *models.Booking) (string, error) {
	if s == nil {
		return "", nil
	}
	if business.GoogleAccessToken == "" || business.GoogleRefreshToken == "" {
		return "", nil
	}
	if booking.AppointmentDate == nil || booking.AppointmentTime == nil {
		return "", nil
	}

	loc := timezone.Location(business.Timezone)
	start, err := time.ParseInLocation(
		"2006-01-02 15:04:05",
		*booking.AppointmentDate+" "+*booking.AppointmentTime,
		loc,
	)
	if err != nil {
		return "", fmt.Errorf("calendar: unusable appointment time: %w", err)
	}
	end := start.Add(defaultDurationMinutes * time.Minute)

	token := &oauth2.Token{
		AccessToken:  business.GoogleAccessToken,
		RefreshToken: business.GoogleRefreshToken,
	}
	svc, err := gcal.NewService(ctx, option.WithTokenSource(s.oauth.TokenSource(ctx, token)))
	if err != nil {
		return "", fmt.Errorf("calendar: client init: %w", err)
	}

	tz := business.Timezone
	if tz == "" {
		tz = timezone.DefaultTimezone
	}

	service := strings.Join(booking.ServiceIDs, " & ")
	event := &gcal.Event{
		Summary: fmt.Sprintf("%s - %s", service, booking.CustomerName),
		Description: strings.TrimSpace(fmt.Sprintf(`Customer: %s
Phone: %s
Service: %s
Special Requests: %s

Booked via BookingAgent`,
			booking.CustomerName,
			booking.CustomerPhone,
			service,
			orNone(booking.SpecialRequests),
		)),
		Start: &gcal.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: tz,
		},
		End: &gcal.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: tz,
		},
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := svc.Events.Insert("primary", event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("calendar: event insert: %w", err)
	}
	return created.Id, nil
}

func orNone(v *string) string {
	if v == nil || *v == "" {
		return "None"
	}
	return *v
}
