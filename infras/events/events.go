package events

import (
	"context"
	"reception/infras/kafka"
	"reception/shared/timezone"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Event types raised after the hotel API accepted a mutation.
const (
	PaymentRecorded    = "payment.recorded"
	PaymentFlowClosed  = "payment.flow_closed"
	CheckoutCompleted  = "booking.checked_out"
	RefundProcessed    = "refund.processed"
	InvoiceGenerated   = "invoice.generated"
	PaymentLinkCreated = "payment_link.created"
	RoomStatusChanged  = "room.status_changed"
	RoomsSynced        = "rooms.synced"
)

// Event is a lightweight domain event.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Actor     string    `json:"actor,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Payload   any       `json:"payload,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Handler reacts to an event.
type Handler func(ctx context.Context, event Event) error

type Bus interface {
	Subscribe(eventType string, handler Handler)
	SubscribeAll(handler Handler)
	Publish(ctx context.Context, event Event)
}

type busImpl struct {
	mu          sync.RWMutex
	subscribers map[string][]Handler
	wildcard    []Handler
}

func New() Bus {
	return &busImpl{subscribers: map[string][]Handler{}}
}

func (b *busImpl) Subscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

func (b *busImpl) SubscribeAll(handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.wildcard = append(b.wildcard, handler)
}

// Publish runs handlers synchronously in subscription order. Handler errors are logged only.
func (b *busImpl) Publish(ctx context.Context, event Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	if event.CreatedAt.IsZero() {
		event.CreatedAt = timezone.Now()
	}

	b.mu.RLock()
	handlers := append(append([]Handler(nil), b.subscribers[event.Type]...), b.wildcard...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			log.Error().Err(err).Str("event", event.Type).Str("event_id", event.ID).Msg("event handler failed")
		}
	}
}

// ForwardTo mirrors every event onto a Kafka topic when the client is enabled.
func ForwardTo(bus Bus, client kafka.Client, topic string) {
	if !client.Enabled() {
		return
	}

	bus.SubscribeAll(func(ctx context.Context, event Event) error {
		return client.SendMessages(context.WithoutCancel(ctx), topic, kafka.Message{Key: event.Subject, Value: event}) //nolint:wrapcheck
	})
}
