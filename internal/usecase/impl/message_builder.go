package impl

import (
	"strings"

	"minaret/internal/domain/entity"
	"minaret/internal/usecase"

	"github.com/pkg/errors"
)

// defaultLanguage is the fallback when a device language has no templates.
const defaultLanguage = "en"

// ErrMissingPayloadField is returned when a template needs a payload field the
// record did not carry. Payload shape is validated here, at render time.
var ErrMissingPayloadField = errors.New("notification payload is missing a required field")

// contentTemplate is one localized title/body pair. Placeholders of the form
// {name} are filled from the user and the record payload.
type contentTemplate struct {
	title string
	body  string
}

// requiredPayloadFields lists payload keys a type's templates depend on.
var requiredPayloadFields = map[entity.NotificationType][]string{
	entity.TypeEventsNew:      {"event_name"},
	entity.TypeEventsReminder: {"event_name"},
}

var contentTemplates = map[entity.NotificationType]map[string]contentTemplate{
	entity.TypeMorningReminder: {
		"en": {title: "Good morning, {name}", body: "Start your day with your morning adhkar and check in."},
		"ar": {title: "صباح الخير يا {name}", body: "ابدأ يومك بأذكار الصباح وسجل حضورك."},
		"tr": {title: "Günaydın {name}", body: "Güne sabah zikirlerinle başla ve giriş yap."},
	},
	entity.TypeEveningReminder: {
		"en": {title: "Good evening, {name}", body: "Wind down with your evening adhkar before the day ends."},
		"ar": {title: "مساء الخير يا {name}", body: "اختم يومك بأذكار المساء قبل انتهاء اليوم."},
		"tr": {title: "İyi akşamlar {name}", body: "Gün bitmeden akşam zikirlerini tamamla."},
	},
	entity.TypeFajrMissed: {
		"en": {title: "Fajr check-in missed", body: "{name}, you haven't checked in for Fajr yet today."},
		"ar": {title: "لم تسجل صلاة الفجر", body: "{name}، لم تسجل حضورك لصلاة الفجر اليوم بعد."},
		"tr": {title: "Sabah namazı girişi eksik", body: "{name}, bugün sabah namazı için henüz giriş yapmadın."},
	},
	entity.TypeEscalation: {
		"en": {title: "We miss you, {name}", body: "It's been a few days since your last check-in. Come back to your habits."},
		"ar": {title: "اشتقنا إليك يا {name}", body: "مرت عدة أيام منذ آخر تسجيل لك. عد إلى عاداتك."},
		"tr": {title: "Seni özledik {name}", body: "Son girişinin üzerinden birkaç gün geçti. Alışkanlıklarına geri dön."},
	},
	entity.TypeHadithDaily: {
		"en": {title: "Hadith of the day", body: "{name}, today's hadith is waiting for you."},
		"ar": {title: "حديث اليوم", body: "{name}، حديث اليوم في انتظارك."},
		"tr": {title: "Günün hadisi", body: "{name}, günün hadisi seni bekliyor."},
	},
	entity.TypeMotivationDaily: {
		"en": {title: "Daily motivation", body: "A small step every day, {name}. Keep your streak alive."},
		"ar": {title: "تحفيز اليوم", body: "خطوة صغيرة كل يوم يا {name}. حافظ على استمراريتك."},
		"tr": {title: "Günlük motivasyon", body: "Her gün küçük bir adım {name}. Serini canlı tut."},
	},
	entity.TypeEventsNew: {
		"en": {title: "New event: {event_name}", body: "{name}, a new event was just announced. See the details."},
		"ar": {title: "فعالية جديدة: {event_name}", body: "{name}، أُعلن عن فعالية جديدة. اطلع على التفاصيل."},
		"tr": {title: "Yeni etkinlik: {event_name}", body: "{name}, yeni bir etkinlik duyuruldu. Detaylara göz at."},
	},
	entity.TypeEventsReminder: {
		"en": {title: "Upcoming: {event_name}", body: "{name}, your event is coming up soon."},
		"ar": {title: "قريبًا: {event_name}", body: "{name}، فعاليتك ستبدأ قريبًا."},
		"tr": {title: "Yaklaşan: {event_name}", body: "{name}, etkinliğin yakında başlıyor."},
	},
	entity.TypeDebug: {
		"en": {title: "Test notification", body: "Delivery pipeline test for {name}."},
	},
}

type messageBuilder struct{}

// NewMessageBuilder creates the localized message builder.
func NewMessageBuilder() usecase.MessageBuilder {
	return &messageBuilder{}
}

// Build renders the localized message for one device. Pure aside from reading
// the template table.
func (b *messageBuilder) Build(user *entity.User, device *entity.UserDevice, notificationType entity.NotificationType, data map[string]string) (*entity.RenderedMessage, error) {
	desc, ok := entity.DescriptorFor(notificationType)
	if !ok {
		return nil, errors.WithStack(usecase.ErrUnknownNotificationType)
	}

	locales, ok := contentTemplates[notificationType]
	if !ok {
		return nil, errors.Errorf("no content templates for notification type %q", notificationType)
	}

	for _, field := range requiredPayloadFields[notificationType] {
		if data[field] == "" {
			return nil, errors.Wrapf(ErrMissingPayloadField, "field %q for type %q", field, notificationType)
		}
	}

	tmpl, ok := locales[normalizeLanguage(device.Language)]
	if !ok {
		tmpl = locales[defaultLanguage]
	}

	replacements := make([]string, 0, 2*(len(data)+1))
	replacements = append(replacements, "{name}", displayName(user))
	for key, value := range data {
		replacements = append(replacements, "{"+key+"}", value)
	}
	replacer := strings.NewReplacer(replacements...)

	return &entity.RenderedMessage{
		Title:       replacer.Replace(tmpl.title),
		Body:        replacer.Replace(tmpl.body),
		CollapseKey: desc.CollapseKey,
		Priority:    desc.Priority,
		Data:        data,
	}, nil
}

// normalizeLanguage reduces a BCP 47 tag like "ar-EG" to its base language.
func normalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if idx := strings.IndexAny(lang, "-_"); idx > 0 {
		lang = lang[:idx]
	}
	if lang == "" {
		return defaultLanguage
	}

	return lang
}

func displayName(user *entity.User) string {
	if user == nil || strings.TrimSpace(user.DisplayName) == "" {
		return "friend"
	}

	return user.DisplayName
}
