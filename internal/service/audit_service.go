package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mangostorage/inventory-service/internal/events"
)

// AuditService records inventory events to the structured log.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventAccountCreated, a.handleEvent)
	a.dispatcher.Subscribe(events.EventSerialCreated, a.handleEvent)
	a.dispatcher.Subscribe(events.EventSerialDeleted, a.handleEvent)
	a.dispatcher.Subscribe(events.EventQuantityCorrected, a.handleEvent)
}

func (a *AuditService) handleEvent(_ context.Context, event events.Event) error {
	a.logger.Info("audit",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("subject", event.Subject),
		zap.Any("payload", event.Payload))
	return nil
}
