package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/meetingscribe/api/internal/dto"
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/repository/specification"
	"github.com/meetingscribe/api/internal/repository/unitofwork"
	"github.com/meetingscribe/api/pkg/embedding"
	"github.com/meetingscribe/api/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService is EmbeddingAugmenter: it runs async, after the meeting
// that triggered it has already been returned to the caller. Its output
// (the meeting_embeddings row) is a secondary signal InsightEngine may use
// to widen its candidate set; it is never load-bearing for extraction.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
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
	var payload dto.PublishEmbedMeetingMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal embed-meeting message: %v", err)
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	meeting, err := uow.MeetingRepository().FindOne(ctx, specification.ByID{ID: payload.MeetingId})
	if err != nil {
		log.Printf("[ERROR] Failed to get meeting %s: %v", payload.MeetingId, err)
		msg.Nack()
		return
	}
	if meeting == nil {
		log.Printf("[WARN] Meeting not found, skipping embedding: %s", payload.MeetingId)
		msg.Ack()
		return
	}

	content := fmt.Sprintf("Meeting: %s\n\n%s\n\n%s", meeting.Title, meeting.Extracted.Summary, meeting.RawNotes)

	// EmbeddingProvider calls have a token budget; SplitText's first chunk
	// is representative enough for nearest-neighbor signal without needing
	// to average multiple chunk vectors.
	chunks := utils.SplitText(content, 6000, 0)
	representative := chunks[0]

	res, err := cs.embeddingProvider.Generate(representative, "RETRIEVAL_DOCUMENT")
	if err != nil {
		log.Printf("[ERROR] Failed to generate embedding for meeting %s: %v", payload.MeetingId, err)
		msg.Nack()
		return
	}

	embeddingRow := &entity.MeetingEmbedding{
		Id:             uuid.New(),
		MeetingId:      meeting.Id,
		OwnerId:        meeting.OwnerId,
		EmbeddingValue: res.Embedding.Values,
		CreatedAt:      time.Now(),
	}

	if err := uow.MeetingEmbeddingRepository().Upsert(ctx, embeddingRow); err != nil {
		log.Printf("[ERROR] Failed to upsert embedding for meeting %s: %v", payload.MeetingId, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Embedding stored for meeting %s", payload.MeetingId)
	msg.Ack()
}
