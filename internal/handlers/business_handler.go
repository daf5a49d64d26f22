package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookingagenthq/booking-agent/internal/httperr"
	"github.com/bookingagenthq/booking-agent/internal/httpresp"
	"github.com/bookingagenthq/booking-agent/internal/middleware"
	"github.com/bookingagenthq/booking-agent/internal/models"
	"github.com/bookingagenthq/booking-agent/internal/timezone"
	"github.com/bookingagenthq/booking-agent/internal/validators"
)

type BusinessHandler struct {
	db *gorm.DB
}

func NewBusinessHandler(db *gorm.DB) *BusinessHandler {
	return &BusinessHandler{db: db}
}

type UpdateBusinessRequest struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	TwilioPhoneNumber *string `json:"twilio_phone_number"`
	VapiAssistantID   *string `json:"vapi_assistant_id"`
	Timezone          *string `json:"timezone"`
}

func (h *BusinessHandler) GetMeBusiness(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(uint)

	var business models.Business
	if err := h.db.First(&business, businessID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "business_not_found", "Business not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_business", "Could not load the business.")
		return
	}

	httpresp.OK(c, business)
}

func (h *BusinessHandler) UpdateMeBusiness(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(uint)

	var business models.Business
	if err := h.db.First(&business, businessID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "business_not_found", "Business not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_business", "Could not load the business.")
		return
	}

	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Phone != nil {
		business.Phone = *req.Phone
	}
	if req.Address != nil {
		business.Address = *req.Address
	}
	if req.TwilioPhoneNumber != nil {
		if *req.TwilioPhoneNumber != "" && !validators.IsE164(*req.TwilioPhoneNumber) {
			httperr.BadRequest(c, "invalid_twilio_number", "Twilio number must be E.164.")
			return
		}
		business.TwilioPhoneNumber = *req.TwilioPhoneNumber
	}
	if req.VapiAssistantID != nil {
		business.VapiAssistantID = *req.VapiAssistantID
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
			return
		}
		business.Timezone = *req.Timezone
	}

	if err := h.db.Save(&business).Error; err != nil {
		httperr.Internal(c, "failed_to_update_business", "Could not save the business settings.")
		return
	}

	var userID *uint
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			userID = &id
		}
	}
	writeAudit(h.db, business.ID, userID, "business_updated", "business", &business.ID, req)

	httpresp.OK(c, business)
}
