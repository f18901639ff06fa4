package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimeOfDay is a wall-clock time without a date, used for quiet hours bounds.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// ParseTimeOfDay parses an "HH:MM" string into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: expected HH:MM", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("invalid hour in time of day %q", s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid minute in time of day %q", s)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// String renders the time of day as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MinuteOfDay returns the minute offset from midnight.
func (t TimeOfDay) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

// UserNotificationPreference holds a user's per-category notification toggles
// and quiet hours window. Preferences are opt-out: a user without a stored row
// receives everything.
type UserNotificationPreference struct {
	ID     uuid.UUID `json:"id"`      // The Global Unique Identifier (GUID) for the preference row.
	UserID uuid.UUID `json:"user_id"` // The owning user.

	Morning         bool `json:"morning"`          // Morning check-in reminders.
	Evening         bool `json:"evening"`          // Evening check-in reminders.
	FajrMissed      bool `json:"fajr_missed"`      // Missed-Fajr nudges.
	Escalation      bool `json:"escalation"`       // Critical escalation alerts.
	HadithDaily     bool `json:"hadith_daily"`     // Hadith of the day.
	MotivationDaily bool `json:"motivation_daily"` // Daily motivational messages.
	EventsNew       bool `json:"events_new"`       // New event announcements.
	EventsReminder  bool `json:"events_reminder"`  // Upcoming event reminders.

	// Quiet hours bounds in the user's local time. The window may wrap
	// midnight (start > end). Both nil means no quiet hours.
	QuietHoursStart *TimeOfDay `json:"quiet_hours_start"`
	QuietHoursEnd   *TimeOfDay `json:"quiet_hours_end"`

	// TimeZone is the IANA zone name used to evaluate quiet hours, "UTC" when unset.
	TimeZone string `json:"time_zone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultPreference returns the allow-all preference used when a user has no
// stored row.
func DefaultPreference(userID uuid.UUID) *UserNotificationPreference {
	return &UserNotificationPreference{
		UserID:          userID,
		Morning:         true,
		Evening:         true,
		FajrMissed:      true,
		Escalation:      true,
		HadithDaily:     true,
		MotivationDaily: true,
		EventsNew:       true,
		EventsReminder:  true,
		TimeZone:        "UTC",
	}
}

// Allows reports whether the toggle for the given category is on.
// Categories without a toggle are always allowed.
func (p *UserNotificationPreference) Allows(category PreferenceCategory) bool {
	switch category {
	case CategoryMorning:
		return p.Morning
	case CategoryEvening:
		return p.Evening
	case CategoryFajrMissed:
		return p.FajrMissed
	case CategoryEscalation:
		return p.Escalation
	case CategoryHadithDaily:
		return p.HadithDaily
	case CategoryMotivationDaily:
		return p.MotivationDaily
	case CategoryEventsNew:
		return p.EventsNew
	case CategoryEventsReminder:
		return p.EventsReminder
	default:
		return true
	}
}

// HasQuietHours reports whether a quiet hours window is configured.
func (p *UserNotificationPreference) HasQuietHours() bool {
	return p.QuietHoursStart != nil && p.QuietHoursEnd != nil
}
