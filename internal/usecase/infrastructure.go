package usecase

import "context"

type EventPublisher interface {
	PublishCartEvents(ctx context.Context, req *PublishCartEventsReq) error
}
