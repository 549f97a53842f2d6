// FILE: internal/service/audit_consumer_service.go
// Consumes audit events from the in-process bus and persists them.
package service

import (
	"context"
	"encoding/json"

	"featuregate-be/internal/dto"
	"featuregate-be/internal/entity"
	"featuregate-be/internal/pkg/logger"
	"featuregate-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IAuditConsumerService interface {
	Consume(ctx context.Context) error
}

type auditConsumerService struct {
	pubSub     *gochannel.GoChannel
	topic      string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAuditConsumerService(
	pubSub *gochannel.GoChannel,
	topic string,
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
) IAuditConsumerService {
	return &auditConsumerService{
		pubSub:     pubSub,
		topic:      topic,
		uowFactory: uowFactory,
		logger:     sysLogger,
	}
}

func (cs *auditConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *auditConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var event dto.AuditEventMessage
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("audit", "failed to unmarshal audit event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed messages are not retriable
		return
	}

	payload := event.Payload
	if payload == nil {
		payload = map[string]interface{}{}
	}
	if event.Failed {
		payload["failed"] = true
		payload["error"] = event.Error
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	log := &entity.AuditLog{
		Operation: event.Operation,
		ActorId:   event.ActorId,
		Payload:   payload,
	}
	if err := uow.AuditLogRepository().Create(ctx, log); err != nil {
		cs.logger.Error("audit", "failed to persist audit event", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	msg.Ack()
}
