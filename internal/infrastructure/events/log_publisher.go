package events

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// LogPublisher пишет события корзины в лог. Используется, когда KAFKA_BROKERS не задан.
type LogPublisher struct {
	logger logger.Logger
}

func NewLogPublisher(logger logger.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishCartEvents(_ context.Context, req *usecase.PublishCartEventsReq) error {
	for _, ev := range req.Events {
		p.logger.Infof("cart event: session=%s kind=%s product=%d quantity=%d",
			req.SessionID, ev.Kind, ev.ProductID, ev.Quantity)
	}

	return nil
}
