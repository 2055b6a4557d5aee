package notification

//go:generate go run go.uber.org/mock/mockgen -source=./notification.go -destination=./mocks/notification_mock.go -package=mocks

import (
	"context"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Notification is a single delivered message, stamped when it leaves the service.
type Notification struct {
	ID         string    `json:"id"`
	CustomerID int64     `json:"customer_id"`
	Message    string    `json:"message"`
	SentAt     time.Time `json:"sent_at"`
}

// Notifier delivers a message to a customer. Delivery is synchronous: an
// error returned here propagates to the caller untouched, with no retry.
type Notifier interface {
	Send(ctx context.Context, customerID int64, message string) error
}

type logNotifier struct {
	cfg  *config.Config
	otel otel.Otel
}

// New returns the log-backed Notifier used when no real delivery channel
// is wired in. It never fails.
func New(cfg *config.Config, otel otel.Otel) Notifier {
	return &logNotifier{
		cfg:  cfg,
		otel: otel,
	}
}

func (n *logNotifier) Send(ctx context.Context, customerID int64, message string) error {
	_, scope := n.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".notifier.Send")
	defer scope.End()

	note := Notification{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Message:    message,
		SentAt:     timezone.Now(),
	}

	scope.SetAttribute("notification_id", note.ID)

	log.Info().
		Str("notification_id", note.ID).
		Int64("customer_id", note.CustomerID).
		Str("message", note.Message).
		Time("sent_at", note.SentAt).
		Msg("notification sent")

	return nil
}
