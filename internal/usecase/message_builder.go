package usecase

import (
	"minaret/internal/domain/entity"
)

// MessageBuilder renders the localized title, body, collapse key and priority
// for a (user, device, type, payload) combination. Pure with respect to its
// inputs aside from reading the content template table; payload shape is
// validated here, at render time, not at enqueue time.
type MessageBuilder interface {
	Build(user *entity.User, device *entity.UserDevice, notificationType entity.NotificationType, data map[string]string) (*entity.RenderedMessage, error)
}
