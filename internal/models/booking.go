package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint     `json:"business_id"`
	Business   Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"business"`

	CustomerName  string `gorm:"size:100" json:"customer_name"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`

	ServiceIDs []string `gorm:"serializer:json" json:"service_ids"`

	// appointment_date is ISO (2006-01-02); appointment_time is HH:MM:00.
	// Either may be empty when normalization could not interpret the phrase.
	AppointmentDate *string `gorm:"size:10" json:"appointment_date"`
	AppointmentTime *string `gorm:"size:16" json:"appointment_time"`

	SpecialRequests *string `gorm:"size:255" json:"special_requests"`

	VapiCallID string `gorm:"size:64;uniqueIndex" json:"vapi_call_id"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	GoogleCalendarEventID string `gorm:"size:128" json:"google_calendar_event_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
