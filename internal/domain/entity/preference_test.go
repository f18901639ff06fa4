package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	parsed, err := ParseTimeOfDay("22:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 22, Minute: 30}, parsed)
	assert.Equal(t, "22:30", parsed.String())
	assert.Equal(t, 22*60+30, parsed.MinuteOfDay())

	for _, bad := range []string{"", "22", "24:00", "10:60", "aa:bb", "7:5:0"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestDefaultPreference_AllowsEverything(t *testing.T) {
	pref := DefaultPreference(uuid.New())

	for _, notificationType := range KnownTypes() {
		desc, ok := DescriptorFor(notificationType)
		require.True(t, ok)
		assert.True(t, pref.Allows(desc.Category), "type %s", notificationType)
	}
	assert.False(t, pref.HasQuietHours())
}

func TestNotificationStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusProcessing.IsTerminal())
	assert.True(t, StatusSucceeded.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
	assert.True(t, StatusSkippedNoActiveDevice.IsTerminal())
	assert.True(t, StatusSkippedQuietHours.IsTerminal())
	assert.True(t, StatusSkippedUserPreference.IsTerminal())
}
