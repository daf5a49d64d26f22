package call

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bookingagenthq/booking-agent/internal/audit"
	domain "github.com/bookingagenthq/booking-agent/internal/domain/booking"
	"github.com/bookingagenthq/booking-agent/internal/extract"
	"github.com/bookingagenthq/booking-agent/internal/models"
	"github.com/bookingagenthq/booking-agent/internal/normalize"
)

// ======================================================
// COLLABORATORS
// ======================================================

// Deduper claims a call ID; false means the call was already processed.
type Deduper interface {
	ClaimCall(ctx context.Context, callID string) (bool, error)
}

// Notifier fires the post-booking customer/owner notifications.
type Notifier interface {
	BookingConfirmed(ctx context.Context, business *models.Business, booking *models.Booking)
}

// CalendarService creates a calendar event for a stored booking.
type CalendarService interface {
	CreateEvent(ctx context.Context, business *models.Business, booking *models.Booking) (string, error)
}

// Archiver keeps the raw payload for later heuristic tuning.
type Archiver interface {
	Store(ctx context.Context, callID string, payload []byte) error
}

// ======================================================
// RESULT
// ======================================================

type Outcome string

const (
	OutcomeBooked     Outcome = "booked"
	OutcomeDuplicate  Outcome = "duplicate"
	OutcomeIncomplete Outcome = "incomplete"
)

type Result struct {
	Outcome Outcome
	Booking *models.Booking
	Missing []string
}

var ErrBusinessNotFound = errors.New("business not found")

// ======================================================
// USE CASE
// ======================================================

// ProcessWebhook turns one Vapi end-of-call webhook into a stored booking.
// Extraction and normalization never fail; an incomplete record is a soft
// outcome. Only business resolution and persistence can error out. Side
// effects after persistence are best-effort and individually swallowed.
type ProcessWebhook struct {
	repo     domain.Repository
	dedupe   Deduper
	notifier Notifier
	calendar CalendarService
	archiver Archiver
	audit    *audit.Dispatcher
}

func NewProcessWebhook(
	repo domain.Repository,
	dedupe Deduper,
	notifier Notifier,
	calendar CalendarService,
	archiver Archiver,
	auditDispatcher *audit.Dispatcher,
) *ProcessWebhook {
	return &ProcessWebhook{
		repo:     repo,
		dedupe:   dedupe,
		notifier: notifier,
		calendar: calendar,
		archiver: archiver,
		audit:    auditDispatcher,
	}
}

func (uc *ProcessWebhook) Execute(
	ctx context.Context,
	payload *extract.Payload,
	rawBody []byte,
) (*Result, error) {

	msg := payload.Unwrap()

	// --------------------------------------------------
	// 1. Which business received this call?
	// --------------------------------------------------
	business, err := uc.repo.FindBusinessByNumberOrAssistant(
		ctx,
		msg.PhoneNumber.Number,
		msg.Call.AssistantID,
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}

	callID := msg.Call.ID
	if callID == "" {
		callID = uuid.NewString()
	}

	// --------------------------------------------------
	// 2. Vapi retries webhooks; claim the call ID first.
	// --------------------------------------------------
	if uc.dedupe != nil && msg.Call.ID != "" {
		fresh, err := uc.dedupe.ClaimCall(ctx, callID)
		if err != nil {
			// A cache outage must not drop bookings; the unique index on
			// vapi_call_id still backstops duplicates.
			log.Printf("call: dedupe unavailable for %s: %v", callID, err)
		} else if !fresh {
			existing, err := uc.repo.FindBookingByCallID(ctx, callID)
			if err == nil {
				return &Result{Outcome: OutcomeDuplicate, Booking: existing}, nil
			}
			return &Result{Outcome: OutcomeDuplicate}, nil
		}
	}

	// --------------------------------------------------
	// 3. Extract
	// --------------------------------------------------
	info := extract.BookingInfoFromPayload(payload)

	// --------------------------------------------------
	// 4. Completeness (soft outcome, not an error)
	// --------------------------------------------------
	missing := missingFields(info)
	if len(missing) > 0 {
		uc.dispatch(audit.Event{
			BusinessID: business.ID,
			Action:     "booking_incomplete",
			Entity:     "call",
			Metadata: map[string]any{
				"vapi_call_id": callID,
				"missing":      missing,
			},
		})
		return &Result{Outcome: OutcomeIncomplete, Missing: missing}, nil
	}

	// --------------------------------------------------
	// 5. Normalize + persist (fails loudly)
	// --------------------------------------------------
	booking := &models.Booking{
		BusinessID:      business.ID,
		CustomerName:    *info.Name,
		CustomerPhone:   info.CustomerPhone,
		ServiceIDs:      []string{info.Service},
		SpecialRequests: info.SpecialRequests,
		VapiCallID:      callID,
		Status:          string(domain.StatusConfirmed),
	}

	if iso, ok := normalize.ISODate(*info.Date); ok {
		booking.AppointmentDate = &iso
	}
	normalized := normalize.ClockTime(*info.Time)
	booking.AppointmentTime = &normalized

	if err := uc.repo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	uc.dispatch(audit.Event{
		BusinessID: business.ID,
		Action:     "booking_created",
		Entity:     "booking",
		EntityID:   &booking.ID,
		Metadata: map[string]any{
			"vapi_call_id": callID,
			"service_ids":  booking.ServiceIDs,
		},
	})

	// --------------------------------------------------
	// 6. Best-effort side effects
	// --------------------------------------------------
	uc.sideEffects(ctx, business, booking, callID, rawBody)

	return &Result{Outcome: OutcomeBooked, Booking: booking}, nil
}

func (uc *ProcessWebhook) sideEffects(
	ctx context.Context,
	business *models.Business,
	booking *models.Booking,
	callID string,
	rawBody []byte,
) {

	if uc.archiver != nil {
		if err := uc.archiver.Store(ctx, callID, rawBody); err != nil {
			log.Printf("call: archive failed for %s: %v", callID, err)
		}
	}

	if uc.notifier != nil {
		uc.notifier.BookingConfirmed(ctx, business, booking)
	}

	if uc.calendar != nil {
		eventID, err := uc.calendar.CreateEvent(ctx, business, booking)
		if err != nil {
			log.Printf("call: calendar event failed for booking %d: %v", booking.ID, err)
			return
		}
		if eventID == "" {
			return
		}
		booking.GoogleCalendarEventID = eventID
		if err := uc.repo.SetCalendarEventID(ctx, booking.ID, eventID); err != nil {
			log.Printf("call: storing calendar event id failed for booking %d: %v", booking.ID, err)
		}
	}
}

func (uc *ProcessWebhook) dispatch(ev audit.Event) {
	if uc.audit != nil {
		uc.audit.Dispatch(ev)
	}
}

func missingFields(info extract.BookingInfo) []string {
	var missing []string
	if info.CustomerPhone == "" {
		missing = append(missing, "customer_phone")
	}
	if info.Name == nil {
		missing = append(missing, "name")
	}
	if info.Date == nil {
		missing = append(missing, "date")
	}
	if info.Time == nil {
		missing = append(missing, "time")
	}
	return missing
}
