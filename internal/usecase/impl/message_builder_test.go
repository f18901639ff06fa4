package impl

import (
	"testing"

	"minaret/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(name string) *entity.User {
	return &entity.User{ID: uuid.New(), DisplayName: name}
}

func testDevice(language string) *entity.UserDevice {
	return &entity.UserDevice{ID: uuid.New(), UserID: uuid.New(), Language: language, IsActive: true}
}

func TestMessageBuilder_Build_LocalizesByDeviceLanguage(t *testing.T) {
	builder := NewMessageBuilder()

	message, err := builder.Build(testUser("Amina"), testDevice("ar"), entity.TypeMorningReminder, nil)

	require.NoError(t, err)
	assert.Contains(t, message.Title, "Amina")
	assert.NotContains(t, message.Title, "{name}")
	assert.NotEqual(t, "Good morning, Amina", message.Title)
}

func TestMessageBuilder_Build_NormalizesRegionTags(t *testing.T) {
	builder := NewMessageBuilder()

	regional, err := builder.Build(testUser("Amina"), testDevice("ar-EG"), entity.TypeMorningReminder, nil)
	require.NoError(t, err)

	base, err := builder.Build(testUser("Amina"), testDevice("ar"), entity.TypeMorningReminder, nil)
	require.NoError(t, err)

	assert.Equal(t, base.Title, regional.Title)
}

func TestMessageBuilder_Build_FallsBackToEnglish(t *testing.T) {
	builder := NewMessageBuilder()

	message, err := builder.Build(testUser("Yusuf"), testDevice("fr"), entity.TypeEveningReminder, nil)

	require.NoError(t, err)
	assert.Equal(t, "Good evening, Yusuf", message.Title)
}

func TestMessageBuilder_Build_RequiresEventName(t *testing.T) {
	builder := NewMessageBuilder()

	_, err := builder.Build(testUser("Yusuf"), testDevice("en"), entity.TypeEventsNew, map[string]string{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingPayloadField)
}

func TestMessageBuilder_Build_FillsPayloadPlaceholders(t *testing.T) {
	builder := NewMessageBuilder()

	data := map[string]string{"event_name": "Quran Circle"}
	message, err := builder.Build(testUser("Yusuf"), testDevice("en"), entity.TypeEventsNew, data)

	require.NoError(t, err)
	assert.Equal(t, "New event: Quran Circle", message.Title)
	assert.Equal(t, data, message.Data)
}

func TestMessageBuilder_Build_CarriesDescriptorMetadata(t *testing.T) {
	builder := NewMessageBuilder()

	message, err := builder.Build(testUser("Yusuf"), testDevice("en"), entity.TypeFajrMissed, nil)

	require.NoError(t, err)
	desc, ok := entity.DescriptorFor(entity.TypeFajrMissed)
	require.True(t, ok)
	assert.Equal(t, desc.CollapseKey, message.CollapseKey)
	assert.Equal(t, entity.PriorityHigh, message.Priority)
}

func TestMessageBuilder_Build_AnonymousUserGetsFallbackName(t *testing.T) {
	builder := NewMessageBuilder()

	message, err := builder.Build(nil, testDevice("en"), entity.TypeMotivationDaily, nil)

	require.NoError(t, err)
	assert.Contains(t, message.Body, "friend")
}

func TestMessageBuilder_Build_UnknownTypeRejected(t *testing.T) {
	builder := NewMessageBuilder()

	_, err := builder.Build(testUser("Yusuf"), testDevice("en"), entity.NotificationType("bogus"), nil)

	require.Error(t, err)
}
