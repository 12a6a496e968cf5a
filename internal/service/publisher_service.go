package service

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IPublisherService fans work out to the in-process watermill bus.
// EmbeddingAugmenter is the only consumer today; this stays a thin
// wrapper so a future consumer can subscribe to the same topic.
type IPublisherService interface {
	Publish(topic string, payload interface{}) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{topicName: topicName, pubSub: pubSub}
}

func (ps *publisherService) Publish(topic string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg := message.NewMessage(uuid.New().String(), body)
	return ps.pubSub.Publish(topic, msg)
}
