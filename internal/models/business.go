package models

import "time"

type Business struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Slug  string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Email string `gorm:"size:100" json:"email"`

	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	TwilioPhoneNumber string `gorm:"size:20;index" json:"twilio_phone_number"`
	VapiAssistantID   string `gorm:"size:64;index" json:"vapi_assistant_id"`

	GoogleAccessToken  string `gorm:"size:512" json:"-"`
	GoogleRefreshToken string `gorm:"size:512" json:"-"`

	Timezone string `gorm:"size:64" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
