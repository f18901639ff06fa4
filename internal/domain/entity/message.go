package entity

// RenderedMessage is the localized, ready-to-send form of a notification for
// one device. Produced by the message builder, consumed by the push sender.
type RenderedMessage struct {
	Title       string            `json:"title"`        // Localized notification title.
	Body        string            `json:"body"`         // Localized notification body.
	CollapseKey string            `json:"collapse_key"` // Provider-level deduplication tag.
	Priority    MessagePriority   `json:"priority"`     // Delivery priority hint.
	Data        map[string]string `json:"data"`         // Payload forwarded to the client app.
}
