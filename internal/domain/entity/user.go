package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the slice of the account entity the notification pipeline needs:
// identity and the display name interpolated into rendered messages. Account
// management lives outside this core.
type User struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the user.
	DisplayName string    `json:"display_name"` // Name shown in rendered notification content.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when the account was created.
}
