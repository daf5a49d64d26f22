package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookingagenthq/booking-agent/internal/extract"
	"github.com/bookingagenthq/booking-agent/internal/httperr"
	ucCall "github.com/bookingagenthq/booking-agent/internal/usecase/call"
)

// webhookProcessor lets tests stand in for the real use case.
type webhookProcessor interface {
	Execute(ctx context.Context, payload *extract.Payload, rawBody []byte) (*ucCall.Result, error)
}

type WebhookHandler struct {
	process webhookProcessor
}

func NewWebhookHandler(process webhookProcessor) *WebhookHandler {
	return &WebhookHandler{process: process}
}

// HandleBooking is POST /webhook/booking, the endpoint Vapi calls at the end
// of every assistant call.
func (h *WebhookHandler) HandleBooking(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		httperr.BadRequest(c, "unreadable_body", "Could not read request body.")
		return
	}

	var payload extract.Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Body is not valid JSON.")
		return
	}

	result, err := h.process.Execute(c.Request.Context(), &payload, body)
	if err != nil {
		if errors.Is(err, ucCall.ErrBusinessNotFound) {
			httperr.NotFound(c, "business_not_found", "No business matches this number or assistant.")
			return
		}
		log.Printf("webhook: processing failed: %v", err)
		httperr.Internal(c, "failed_to_save_booking", "Could not store the booking.")
		return
	}

	switch result.Outcome {
	case ucCall.OutcomeIncomplete:
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"status":  "incomplete",
			"missing": result.Missing,
		})
	case ucCall.OutcomeDuplicate:
		resp := gin.H{"success": true, "duplicate": true}
		if result.Booking != nil {
			resp["booking_id"] = result.Booking.ID
		}
		c.JSON(http.StatusOK, resp)
	default:
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"booking_id": result.Booking.ID,
		})
	}
}
