package kafka

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/google/uuid"
)

// CartEventMessage — JSON-значение сообщения в топике событий корзины.
type CartEventMessage struct {
	EventID    string    `json:"event_id"`
	SessionID  string    `json:"session_id"`
	Kind       string    `json:"kind"`
	ProductID  int64     `json:"product_id"`
	Quantity   int       `json:"quantity"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewCartEventMessage(sessionID string, ev domain.CartEvent, occurredAt time.Time) CartEventMessage {
	return CartEventMessage{
		EventID:    uuid.NewString(),
		SessionID:  sessionID,
		Kind:       string(ev.Kind),
		ProductID:  ev.ProductID,
		Quantity:   ev.Quantity,
		OccurredAt: occurredAt,
	}
}
