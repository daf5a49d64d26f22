package call

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bookingagenthq/booking-agent/internal/extract"
	"github.com/bookingagenthq/booking-agent/internal/models"
)

// ------------------------------
// Mocks
// ------------------------------

type mockRepo struct {
	business    *models.Business
	businessErr error

	created  []*models.Booking
	createID uint

	existing *models.Booking

	eventIDs map[uint]string
}

func (m *mockRepo) FindBusinessByNumberOrAssistant(ctx context.Context, number, assistantID string) (*models.Business, error) {
	if m.businessErr != nil {
		return nil, m.businessErr
	}
	return m.business, nil
}

func (m *mockRepo) GetBusinessByID(ctx context.Context, id uint) (*models.Business, error) {
	return m.business, nil
}

func (m *mockRepo) UpdateBusiness(ctx context.Context, b *models.Business) error {
	return nil
}

func (m *mockRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	b.ID = m.createID
	m.created = append(m.created, b)
	return nil
}

func (m *mockRepo) FindBookingByCallID(ctx context.Context, callID string) (*models.Booking, error) {
	if m.existing == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.existing, nil
}

func (m *mockRepo) SetCalendarEventID(ctx context.Context, bookingID uint, eventID string) error {
	if m.eventIDs == nil {
		m.eventIDs = map[uint]string{}
	}
	m.eventIDs[bookingID] = eventID
	return nil
}

func (m *mockRepo) ListBookingsForPeriod(ctx context.Context, businessID uint, fromDate, toDate string) ([]models.Booking, error) {
	return nil, nil
}

type mockDeduper struct {
	fresh bool
	err   error
	seen  []string
}

func (m *mockDeduper) ClaimCall(ctx context.Context, callID string) (bool, error) {
	m.seen = append(m.seen, callID)
	return m.fresh, m.err
}

type mockNotifier struct {
	bookings []*models.Booking
}

func (m *mockNotifier) BookingConfirmed(ctx context.Context, business *models.Business, booking *models.Booking) {
	m.bookings = append(m.bookings, booking)
}

type mockCalendar struct {
	eventID string
	err     error
	calls   int
}

func (m *mockCalendar) CreateEvent(ctx context.Context, business *models.Business, booking *models.Booking) (string, error) {
	m.calls++
	return m.eventID, m.err
}

type mockArchiver struct {
	stored map[string][]byte
	err    error
}

func (m *mockArchiver) Store(ctx context.Context, callID string, payload []byte) error {
	if m.err != nil {
		return m.err
	}
	if m.stored == nil {
		m.stored = map[string][]byte{}
	}
	m.stored[callID] = payload
	return nil
}

// ------------------------------
// Fixtures
// ------------------------------

const jamesSummary = `James successfully booked a men's haircut for Thursday, March 5th, 2026 at 3 PM, requesting a "low taper fade". The appointment was confirmed.`

func jamesPayload() *extract.Payload {
	return &extract.Payload{
		Message: &extract.Message{
			Summary:     jamesSummary,
			Customer:    extract.Customer{Number: "+15551234567"},
			PhoneNumber: extract.PhoneNumber{Number: "+16135550100"},
			Call:        extract.Call{ID: "call-123", AssistantID: "asst-1"},
		},
	}
}

func testBusiness() *models.Business {
	return &models.Business{
		Name:              "Tony's Barbershop",
		Email:             "tony@example.com",
		TwilioPhoneNumber: "+16135550100",
	}
}

// ------------------------------
// Tests
// ------------------------------

func TestProcessWebhook_Booked(t *testing.T) {
	repo := &mockRepo{business: testBusiness(), createID: 42}
	dedupe := &mockDeduper{fresh: true}
	notifier := &mockNotifier{}
	cal := &mockCalendar{eventID: "evt-1"}
	arch := &mockArchiver{}

	uc := NewProcessWebhook(repo, dedupe, notifier, cal, arch, nil)

	raw := []byte(`{"message":{}}`)
	result, err := uc.Execute(context.Background(), jamesPayload(), raw)
	require.NoError(t, err)

	assert.Equal(t, OutcomeBooked, result.Outcome)
	require.NotNil(t, result.Booking)

	b := result.Booking
	assert.Equal(t, "James", b.CustomerName)
	assert.Equal(t, "+15551234567", b.CustomerPhone)
	assert.Equal(t, []string{"men's haircut"}, b.ServiceIDs)
	require.NotNil(t, b.AppointmentDate)
	assert.Equal(t, "2026-03-05", *b.AppointmentDate)
	require.NotNil(t, b.AppointmentTime)
	assert.Equal(t, "15:00:00", *b.AppointmentTime)
	require.NotNil(t, b.SpecialRequests)
	assert.Equal(t, "low taper fade", *b.SpecialRequests)
	assert.Equal(t, "call-123", b.VapiCallID)
	assert.Equal(t, "confirmed", b.Status)

	// Side effects all fired.
	assert.Equal(t, []string{"call-123"}, dedupe.seen)
	assert.Len(t, notifier.bookings, 1)
	assert.Equal(t, "evt-1", repo.eventIDs[42])
	assert.Contains(t, arch.stored, "call-123")
}

func TestProcessWebhook_BusinessNotFound(t *testing.T) {
	repo := &mockRepo{businessErr: gorm.ErrRecordNotFound}
	uc := NewProcessWebhook(repo, nil, nil, nil, nil, nil)

	_, err := uc.Execute(context.Background(), jamesPayload(), nil)
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestProcessWebhook_Duplicate(t *testing.T) {
	existing := &models.Booking{VapiCallID: "call-123"}
	existing.ID = 7

	repo := &mockRepo{business: testBusiness(), existing: existing}
	dedupe := &mockDeduper{fresh: false}
	notifier := &mockNotifier{}

	uc := NewProcessWebhook(repo, dedupe, notifier, nil, nil, nil)

	result, err := uc.Execute(context.Background(), jamesPayload(), nil)
	require.NoError(t, err)

	assert.Equal(t, OutcomeDuplicate, result.Outcome)
	require.NotNil(t, result.Booking)
	assert.Equal(t, uint(7), result.Booking.ID)

	// A replayed webhook must not double-book or re-notify.
	assert.Empty(t, repo.created)
	assert.Empty(t, notifier.bookings)
}

func TestProcessWebhook_DedupeOutageStillBooks(t *testing.T) {
	repo := &mockRepo{business: testBusiness(), createID: 1}
	dedupe := &mockDeduper{err: errors.New("redis down")}

	uc := NewProcessWebhook(repo, dedupe, &mockNotifier{}, nil, nil, nil)

	result, err := uc.Execute(context.Background(), jamesPayload(), nil)
	require.NoError(t, err)
	assert.Equal(t, OutcomeBooked, result.Outcome)
	assert.Len(t, repo.created, 1)
}

func TestProcessWebhook_Incomplete(t *testing.T) {
	repo := &mockRepo{business: testBusiness()}
	uc := NewProcessWebhook(repo, nil, nil, nil, nil, nil)

	payload := &extract.Payload{
		Message: &extract.Message{
			Summary: "The customer called and hung up.",
			Call:    extract.Call{ID: "call-999"},
		},
	}

	result, err := uc.Execute(context.Background(), payload, nil)
	require.NoError(t, err)

	assert.Equal(t, OutcomeIncomplete, result.Outcome)
	assert.ElementsMatch(t,
		[]string{"customer_phone", "name", "date", "time"},
		result.Missing,
	)
	assert.Empty(t, repo.created)
}

func TestProcessWebhook_MissingCallIDGetsGenerated(t *testing.T) {
	repo := &mockRepo{business: testBusiness(), createID: 1}
	dedupe := &mockDeduper{fresh: true}

	uc := NewProcessWebhook(repo, dedupe, nil, nil, nil, nil)

	payload := jamesPayload()
	payload.Message.Call.ID = ""

	result, err := uc.Execute(context.Background(), payload, nil)
	require.NoError(t, err)

	assert.Equal(t, OutcomeBooked, result.Outcome)
	assert.NotEmpty(t, result.Booking.VapiCallID)
	// Without a real call ID there is nothing meaningful to dedupe on.
	assert.Empty(t, dedupe.seen)
}

func TestProcessWebhook_CalendarFailureIsSwallowed(t *testing.T) {
	repo := &mockRepo{business: testBusiness(), createID: 5}
	cal := &mockCalendar{err: errors.New("google down")}

	uc := NewProcessWebhook(repo, &mockDeduper{fresh: true}, nil, cal, nil, nil)

	result, err := uc.Execute(context.Background(), jamesPayload(), nil)
	require.NoError(t, err)
	assert.Equal(t, OutcomeBooked, result.Outcome)
	assert.Equal(t, 1, cal.calls)
	assert.Empty(t, repo.eventIDs)
}
