package notification

import (
	"context"
	"time"

	"minaret/internal/domain/entity"
	"minaret/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
)

type breakerSender struct {
	inner   service.PushSender
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerSender wraps a PushSender with a circuit breaker so that a
// misbehaving provider sheds load quickly instead of tying up dispatch
// workers in timeouts. A rejected call is a transient failure; the record
// re-arms and retries once the circuit closes again.
func NewBreakerSender(inner service.PushSender) service.PushSender {
	settings := gobreaker.Settings{
		Name:        "push-sender",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		IsSuccessful: func(err error) bool {
			// Unregistered tokens are the device's fault, not the provider's;
			// they must not open the circuit.
			return err == nil || service.IsPermanentDeliveryError(err)
		},
	}

	return &breakerSender{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (s *breakerSender) Send(ctx context.Context, device *entity.UserDevice, message *entity.RenderedMessage) (*service.PushReceipt, error) {
	result, err := s.breaker.Execute(func() (any, error) {
		return s.inner.Send(ctx, device, message)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.Wrap(err, "push provider circuit open")
		}

		return nil, err
	}

	receipt, ok := result.(*service.PushReceipt)
	if !ok {
		return nil, errors.New("unexpected push sender result type")
	}

	return receipt, nil
}
