// Package notification contains push provider implementations.
package notification

import (
	"context"

	"minaret/internal/domain/entity"
	"minaret/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type fcmSender struct {
	client *messaging.Client
}

// NewFCMSender creates a PushSender backed by Firebase Cloud Messaging.
func NewFCMSender(ctx context.Context, credentialsPath string) (service.PushSender, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmSender{client: client}, nil
}

// Send delivers one rendered message to one device token, carrying the
// collapse key and priority as platform-specific hints. Provider responses
// that indicate an unregistered or malformed token are surfaced as
// ErrUnregisteredToken so the worker fails the record without retrying.
func (s *fcmSender) Send(ctx context.Context, device *entity.UserDevice, message *entity.RenderedMessage) (*service.PushReceipt, error) {
	msg := &messaging.Message{
		Token: device.FCMToken,
		Notification: &messaging.Notification{
			Title: message.Title,
			Body:  message.Body,
		},
		Data: message.Data,
		Android: &messaging.AndroidConfig{
			CollapseKey: message.CollapseKey,
			Priority:    androidPriority(message.Priority),
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-collapse-id": message.CollapseKey,
				"apns-priority":    apnsPriority(message.Priority),
			},
		},
	}

	providerMessageID, err := s.client.Send(ctx, msg)
	if err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return nil, errors.WithMessage(service.ErrUnregisteredToken, err.Error())
		}

		return nil, errors.Wrap(err, "failed to send notification")
	}

	return &service.PushReceipt{ProviderMessageID: providerMessageID}, nil
}

func androidPriority(priority entity.MessagePriority) string {
	if priority == entity.PriorityHigh {
		return "high"
	}

	return "normal"
}

func apnsPriority(priority entity.MessagePriority) string {
	// APNs uses 10 for immediate delivery and 5 for power-conserving delivery.
	if priority == entity.PriorityHigh {
		return "10"
	}

	return "5"
}
