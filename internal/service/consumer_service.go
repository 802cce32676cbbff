package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"content-variation-be/internal/dto"
	"content-variation-be/internal/entity"
	"content-variation-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the usage topic and turns each message into a
// usage_records row. Recording is off the request path on purpose: a slow
// insert must never delay an LLM response.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
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

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.RecordUsageMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal usage message: %v", err)
		msg.Ack() // malformed messages would retry forever, drop them
		return
	}

	if payload.UserId == uuid.Nil {
		// Anonymous sessions produce events too; nothing to attribute.
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	record := &entity.UsageRecord{
		Id:        uuid.New(),
		UserId:    payload.UserId,
		Action:    payload.Action,
		CreatedAt: time.Now(),
	}

	if err := uow.UsageRepository().Create(ctx, record); err != nil {
		log.Printf("[ERROR] Failed to record usage %s for user %s: %v", payload.Action, payload.UserId, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
