// Package service defines interfaces for external collaborators of the domain.
package service

import (
	"context"

	"minaret/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUnregisteredToken marks a delivery failure the provider reports as
// permanent (unregistered or malformed device token). Retrying is futile;
// the dispatch worker fails such records without exhausting the retry budget.
var ErrUnregisteredToken = errors.New("device token is unregistered or invalid")

// PushReceipt is the provider acknowledgement for a delivered message.
type PushReceipt struct {
	// ProviderMessageID is the provider-assigned ID of the accepted message.
	ProviderMessageID string
}

// PushSender delivers a rendered message to one device. Implementations
// translate provider error responses into ErrUnregisteredToken when the
// failure is permanent; everything else is treated as transient.
type PushSender interface {
	Send(ctx context.Context, device *entity.UserDevice, message *entity.RenderedMessage) (*PushReceipt, error)
}

// IsPermanentDeliveryError reports whether a send error is permanent and
// should not be retried.
func IsPermanentDeliveryError(err error) bool {
	return errors.Is(err, ErrUnregisteredToken)
}
