// FILE: internal/service/audit_publisher.go
// Default after-hooks: publish an audit event for every mutating operation
// onto the in-process bus. Observe-only; they never rewrite results.
package service

import (
	"context"
	"encoding/json"

	"featuregate-be/internal/dto"
	"featuregate-be/internal/hook"
	"featuregate-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type AuditPublisher struct {
	pubSub *gochannel.GoChannel
	topic  string
	logger logger.ILogger
}

func NewAuditPublisher(pubSub *gochannel.GoChannel, topic string, sysLogger logger.ILogger) *AuditPublisher {
	return &AuditPublisher{
		pubSub: pubSub,
		topic:  topic,
		logger: sysLogger,
	}
}

func (p *AuditPublisher) publish(event dto.AuditEventMessage) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("audit", "failed to marshal audit event", map[string]interface{}{"error": err.Error()})
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.pubSub.Publish(p.topic, msg); err != nil {
		p.logger.Error("audit", "failed to publish audit event", map[string]interface{}{"error": err.Error()})
	}
}

// AuditAfter builds an after hook recording the operation, actor and input
// payload. A free function because methods cannot carry type parameters.
func AuditAfter[In, Out any](p *AuditPublisher, op hook.Op) hook.After[In, Out] {
	return func(ctx context.Context, hc *hook.Context, outcome hook.Outcome[Out], in In) hook.AfterResult[Out] {
		event := dto.AuditEventMessage{
			Operation: string(op),
			Failed:    outcome.Failed(),
		}
		if hc != nil && hc.Session != nil {
			actor := hc.Session.UserId
			event.ActorId = &actor
		}
		if outcome.Err != nil {
			event.Error = outcome.Err.Error()
		}
		if raw, err := json.Marshal(in); err == nil {
			var payload map[string]interface{}
			if json.Unmarshal(raw, &payload) == nil {
				event.Payload = payload
			}
		}
		p.publish(event)
		return hook.AfterResult[Out]{}
	}
}

// DefaultRegistry wires audit after-hooks onto the mutating operations.
// Reads are not audited.
func DefaultRegistry(p *AuditPublisher) *hook.Registry {
	r := &hook.Registry{}
	r.CreateFeature.After = AuditAfter[dto.CreateFeatureRequest, *dto.FeatureResponse](p, hook.OpCreateFeature)
	r.UpdateFeature.After = AuditAfter[dto.UpdateFeatureRequest, *dto.FeatureResponse](p, hook.OpUpdateFeature)
	r.ToggleFeature.After = AuditAfter[dto.ToggleFeatureRequest, *dto.FeatureResponse](p, hook.OpToggleFeature)
	r.DeleteFeature.After = AuditAfter[dto.DeleteFeatureRequest, *dto.FeatureResponse](p, hook.OpDeleteFeature)
	r.SetFlag.After = AuditAfter[dto.SetFlagRequest, *dto.FlagResponse](p, hook.OpSetFlag)
	r.RemoveFlag.After = AuditAfter[dto.RemoveFlagRequest, *dto.RemoveFlagResponse](p, hook.OpRemoveFlag)
	return r
}
