// Package entity contains the core business objects of the project.
package entity

// NotificationType identifies one kind of scheduled notification. The set is
// closed: every type carries its own payload contract, preference category,
// collapse key and delivery priority, resolved through the descriptor table
// below instead of ad hoc string switches.
type NotificationType string

const (
	// TypeMorningReminder is the daily morning check-in reminder.
	TypeMorningReminder NotificationType = "MorningReminder"
	// TypeEveningReminder is the daily evening check-in reminder.
	TypeEveningReminder NotificationType = "EveningReminder"
	// TypeFajrMissed nudges a user who did not check in for Fajr.
	TypeFajrMissed NotificationType = "FajrMissed"
	// TypeEscalation is a critical follow-up after repeated missed check-ins.
	TypeEscalation NotificationType = "Escalation"
	// TypeHadithDaily delivers the hadith of the day.
	TypeHadithDaily NotificationType = "HadithDaily"
	// TypeMotivationDaily delivers the daily motivational message.
	TypeMotivationDaily NotificationType = "MotivationDaily"
	// TypeEventsNew announces a newly published community event.
	TypeEventsNew NotificationType = "EventsNew"
	// TypeEventsReminder reminds about an upcoming subscribed event.
	TypeEventsReminder NotificationType = "EventsReminder"
	// TypeDebug is an operational test notification, exempt from policy.
	TypeDebug NotificationType = "Debug"
)

// MessagePriority is the delivery priority hint passed to the push provider.
type MessagePriority string

const (
	// PriorityNormal lets the provider batch and delay delivery.
	PriorityNormal MessagePriority = "normal"
	// PriorityHigh requests immediate delivery (may wake the device).
	PriorityHigh MessagePriority = "high"
)

// PreferenceCategory names the user preference toggle that gates a type.
type PreferenceCategory string

const (
	CategoryMorning         PreferenceCategory = "morning"
	CategoryEvening         PreferenceCategory = "evening"
	CategoryFajrMissed      PreferenceCategory = "fajr_missed"
	CategoryEscalation      PreferenceCategory = "escalation"
	CategoryHadithDaily     PreferenceCategory = "hadith_daily"
	CategoryMotivationDaily PreferenceCategory = "motivation_daily"
	CategoryEventsNew       PreferenceCategory = "events_new"
	CategoryEventsReminder  PreferenceCategory = "events_reminder"

	// CategoryNone marks types that no preference toggle can disable.
	CategoryNone PreferenceCategory = ""
)

// TypeDescriptor carries the static delivery attributes of a notification type.
type TypeDescriptor struct {
	// Category is the preference toggle gating this type, CategoryNone if ungated.
	Category PreferenceCategory
	// CollapseKey is the stable provider-level deduplication tag for this type.
	CollapseKey string
	// Priority is the provider delivery priority hint.
	Priority MessagePriority
	// PolicyExempt marks critical types that bypass quiet hours and the daily cap.
	PolicyExempt bool
}

var typeDescriptors = map[NotificationType]TypeDescriptor{
	TypeMorningReminder: {Category: CategoryMorning, CollapseKey: "morning_reminder", Priority: PriorityNormal},
	TypeEveningReminder: {Category: CategoryEvening, CollapseKey: "evening_reminder", Priority: PriorityNormal},
	TypeFajrMissed:      {Category: CategoryFajrMissed, CollapseKey: "fajr_missed", Priority: PriorityHigh},
	TypeEscalation:      {Category: CategoryEscalation, CollapseKey: "escalation", Priority: PriorityHigh, PolicyExempt: true},
	TypeHadithDaily:     {Category: CategoryHadithDaily, CollapseKey: "hadith_daily", Priority: PriorityNormal},
	TypeMotivationDaily: {Category: CategoryMotivationDaily, CollapseKey: "motivation_daily", Priority: PriorityNormal},
	TypeEventsNew:       {Category: CategoryEventsNew, CollapseKey: "events_new", Priority: PriorityNormal},
	TypeEventsReminder:  {Category: CategoryEventsReminder, CollapseKey: "events_reminder", Priority: PriorityNormal},
	TypeDebug:           {Category: CategoryNone, CollapseKey: "debug", Priority: PriorityNormal, PolicyExempt: true},
}

// DescriptorFor returns the descriptor for a notification type. The second
// return value is false for unknown types.
func DescriptorFor(t NotificationType) (TypeDescriptor, bool) {
	desc, ok := typeDescriptors[t]

	return desc, ok
}

// KnownTypes returns all supported notification types.
func KnownTypes() []NotificationType {
	types := make([]NotificationType, 0, len(typeDescriptors))
	for t := range typeDescriptors {
		types = append(types, t)
	}

	return types
}
