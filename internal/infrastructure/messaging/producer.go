// Package messaging 提供消息队列实现
package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("messaging")

// Producer 消息生产者
type Producer struct {
	client *redis.Client
	maxLen int64
}

// NewProducer 创建消息生产者
func NewProducer(client *redis.Client, maxLen int64) *Producer {
	if maxLen <= 0 {
		maxLen = 100000
	}
	return &Producer{
		client: client,
		maxLen: maxLen,
	}
}

// Publish 发布消息到指定流
func (p *Producer) Publish(ctx context.Context, stream Stream, msg *Message) (string, error) {
	ctx, span := tracer.Start(ctx, "producer.Publish",
		trace.WithAttributes(
			attribute.String("stream", string(stream)),
			attribute.String("message.id", msg.ID),
			attribute.String("message.type", msg.Type),
		))
	defer span.End()

	data, err := json.Marshal(msg)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("failed to marshal message: %w", err)
	}

	result, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: string(stream),
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()

	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("failed to publish message: %w", err)
	}

	span.SetAttributes(attribute.String("stream.message_id", result))
	return result, nil
}

// PublishSetupApplied 发布初始化应用审计事件
func (p *Producer) PublishSetupApplied(ctx context.Context, event *SetupAppliedMessage) (string, error) {
	msg, err := NewMessage(uuid.NewString(), "setup_applied", event.SiteID, event)
	if err != nil {
		return "", err
	}
	msg.SetMetadata("kind", event.Kind)
	return p.Publish(ctx, StreamSetupAudit, msg)
}

// PublishBlueprintSaved 发布蓝图落盘审计事件
func (p *Producer) PublishBlueprintSaved(ctx context.Context, event *BlueprintSavedMessage) (string, error) {
	msg, err := NewMessage(uuid.NewString(), "blueprint_saved", event.SiteID, event)
	if err != nil {
		return "", err
	}
	msg.SetMetadata("version", fmt.Sprintf("%d", event.Version))
	return p.Publish(ctx, StreamSetupAudit, msg)
}
