package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/enquiry-service/internal/events"
)

// NotificationService emits operator notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventEnquiryCreated, n.handleEnquiryCreated)
	n.dispatcher.Subscribe(events.EventStaffCreated, n.handleStaffCreated)
}

func (n *NotificationService) handleEnquiryCreated(_ context.Context, event events.Event) error {
	n.logger.Info("EnquiryCreated", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleStaffCreated(_ context.Context, event events.Event) error {
	n.logger.Info("StaffCreated", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	return nil
}
