package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/bookingagenthq/booking-agent/internal/calendar"
	"github.com/bookingagenthq/booking-agent/internal/config"
	"github.com/bookingagenthq/booking-agent/internal/httperr"
	"github.com/bookingagenthq/booking-agent/internal/middleware"
	"github.com/bookingagenthq/booking-agent/internal/models"
)

// CalendarHandler runs the Google Calendar linking flow. The OAuth state is
// a short-lived JWT carrying the business ID, so the unauthenticated
// callback can tell which business the tokens belong to.
type CalendarHandler struct {
	db       *gorm.DB
	config   *config.Config
	calendar *calendar.Service
}

func NewCalendarHandler(db *gorm.DB, cfg *config.Config, cal *calendar.Service) *CalendarHandler {
	return &CalendarHandler{db: db, config: cfg, calendar: cal}
}

// Connect is GET /api/me/calendar/connect.
func (h *CalendarHandler) Connect(c *gin.Context) {
	if h.calendar == nil {
		httperr.Internal(c, "calendar_not_configured", "Google Calendar is not configured on this server.")
		return
	}

	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	state, err := h.stateToken(businessID)
	if err != nil {
		httperr.Internal(c, "failed_to_sign_state", "Could not start the calendar link flow.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": h.calendar.AuthCodeURL(state)})
}

// Callback is GET /oauth/google/callback.
func (h *CalendarHandler) Callback(c *gin.Context) {
	if h.calendar == nil {
		httperr.Internal(c, "calendar_not_configured", "Google Calendar is not configured on this server.")
		return
	}

	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		httperr.BadRequest(c, "missing_code_or_state", "Both code and state are required.")
		return
	}

	businessID, err := h.parseState(state)
	if err != nil {
		httperr.Unauthorized(c, "invalid_state", "State token is invalid or expired.")
		return
	}

	var business models.Business
	if err := h.db.First(&business, businessID).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Business not found.")
		return
	}

	token, err := h.calendar.Exchange(c.Request.Context(), code)
	if err != nil {
		httperr.BadRequest(c, "exchange_failed", "Could not exchange the authorization code.")
		return
	}

	business.GoogleAccessToken = token.AccessToken
	if token.RefreshToken != "" {
		business.GoogleRefreshToken = token.RefreshToken
	}

	if err := h.db.Save(&business).Error; err != nil {
		httperr.Internal(c, "failed_to_store_tokens", "Could not store the calendar tokens.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "calendar_linked"})
}

func (h *CalendarHandler) stateToken(businessID uint) (string, error) {
	claims := jwt.MapClaims{
		"businessId": businessID,
		"exp":        time.Now().Add(15 * time.Minute).Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func (h *CalendarHandler) parseState(state string) (uint, error) {
	token, err := jwt.Parse(state, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(h.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, jwt.ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, jwt.ErrTokenMalformed
	}
	businessID, ok := claims["businessId"].(float64)
	if !ok {
		return 0, jwt.ErrTokenMalformed
	}
	return uint(businessID), nil
}
