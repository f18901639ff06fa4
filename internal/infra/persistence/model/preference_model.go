package model

import (
	"time"

	"github.com/google/uuid"
)

// UserNotificationPreferenceModel is the GORM-specific struct for the
// 'user_notification_preferences' table. Quiet hours are stored as "HH:MM"
// strings in the user's local time zone.
type UserNotificationPreferenceModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Morning         bool      `gorm:"not null;default:true"`
	Evening         bool      `gorm:"not null;default:true"`
	FajrMissed      bool      `gorm:"not null;default:true"`
	Escalation      bool      `gorm:"not null;default:true"`
	HadithDaily     bool      `gorm:"not null;default:true"`
	MotivationDaily bool      `gorm:"not null;default:true"`
	EventsNew       bool      `gorm:"not null;default:true"`
	EventsReminder  bool      `gorm:"not null;default:true"`
	QuietHoursStart *string   `gorm:"type:varchar(5)"`
	QuietHoursEnd   *string   `gorm:"type:varchar(5)"`
	TimeZone        string    `gorm:"type:varchar(64);not null;default:'UTC'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserNotificationPreferenceModel) TableName() string {
	return "user_notification_preferences"
}
