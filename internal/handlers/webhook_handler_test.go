package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookingagenthq/booking-agent/internal/extract"
	"github.com/bookingagenthq/booking-agent/internal/models"
	ucCall "github.com/bookingagenthq/booking-agent/internal/usecase/call"
)

type mockProcessor struct {
	result  *ucCall.Result
	err     error
	payload *extract.Payload
}

func (m *mockProcessor) Execute(ctx context.Context, payload *extract.Payload, rawBody []byte) (*ucCall.Result, error) {
	m.payload = payload
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func webhookRouter(p webhookProcessor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook/booking", NewWebhookHandler(p).HandleBooking)
	return r
}

func postWebhook(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook/booking", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleBooking_Booked(t *testing.T) {
	booking := &models.Booking{}
	booking.ID = 42

	proc := &mockProcessor{result: &ucCall.Result{
		Outcome: ucCall.OutcomeBooked,
		Booking: booking,
	}}

	w := postWebhook(t, webhookRouter(proc), `{"message":{"summary":"hi","call":{"id":"call-1"}}}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(42), resp["booking_id"])

	// The payload must have been decoded and handed through.
	require.NotNil(t, proc.payload)
	assert.Equal(t, "call-1", proc.payload.Unwrap().Call.ID)
}

func TestHandleBooking_Incomplete(t *testing.T) {
	proc := &mockProcessor{result: &ucCall.Result{
		Outcome: ucCall.OutcomeIncomplete,
		Missing: []string{"name", "date"},
	}}

	w := postWebhook(t, webhookRouter(proc), `{}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "incomplete", resp["status"])
	assert.Equal(t, []any{"name", "date"}, resp["missing"])
}

func TestHandleBooking_Duplicate(t *testing.T) {
	booking := &models.Booking{}
	booking.ID = 7

	proc := &mockProcessor{result: &ucCall.Result{
		Outcome: ucCall.OutcomeDuplicate,
		Booking: booking,
	}}

	w := postWebhook(t, webhookRouter(proc), `{}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, true, resp["duplicate"])
	assert.Equal(t, float64(7), resp["booking_id"])
}

func TestHandleBooking_InvalidJSON(t *testing.T) {
	w := postWebhook(t, webhookRouter(&mockProcessor{}), `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_payload")
}

func TestHandleBooking_BusinessNotFound(t *testing.T) {
	proc := &mockProcessor{err: ucCall.ErrBusinessNotFound}

	w := postWebhook(t, webhookRouter(proc), `{}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "business_not_found")
}

func TestHandleBooking_InternalError(t *testing.T) {
	proc := &mockProcessor{err: errors.New("db down")}

	w := postWebhook(t, webhookRouter(proc), `{}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed_to_save_booking")
}
