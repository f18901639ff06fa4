package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ScheduledNotificationModel is the GORM-specific struct for the 'scheduled_notifications' table.
// It represents a single unit of deliverable work in the durable queue.
type ScheduledNotificationModel struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       *uuid.UUID        `gorm:"type:uuid;index"`
	Type         string            `gorm:"type:text;not null"`
	ExecuteAt    time.Time         `gorm:"not null;index:idx_notifications_due,priority:2"`
	Data         datatypes.JSONMap `gorm:"type:jsonb"`
	Status       string            `gorm:"type:text;not null;default:'pending';index:idx_notifications_due,priority:1"`
	UniqueKey    *string           `gorm:"type:text;uniqueIndex"`
	ProcessedAt  *time.Time
	ErrorMessage string `gorm:"type:text"`
	Retries      int    `gorm:"not null;default:0"`
	MaxRetries   int    `gorm:"not null;default:3"`
	NextRetryAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScheduledNotificationModel) TableName() string {
	return "scheduled_notifications"
}

// NotificationLogModel is the GORM-specific struct for the 'notification_logs' table.
// It is the append-only audit record for every delivery attempt outcome.
type NotificationLogModel struct {
	ID                uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            *uuid.UUID        `gorm:"type:uuid;index:idx_logs_user_sent,priority:1"`
	Type              string            `gorm:"type:text;not null;index"`
	Payload           datatypes.JSONMap `gorm:"type:jsonb"`
	Result            string            `gorm:"type:text;not null"`
	ProviderMessageID string            `gorm:"type:text"`
	ErrorMessage      string            `gorm:"type:text"`
	CollapsibleKey    string            `gorm:"type:text"`
	SentAt            time.Time         `gorm:"not null;index:idx_logs_user_sent,priority:2"`
	Retried           int               `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
