// Package meetingevents publishes best-effort domain notifications over
// NATS JetStream. Every publish failure is logged, never returned to the
// caller as an error: these events are fire-and-forget and never load-
// bearing for the operation that triggered them.
package meetingevents

import (
	"context"
	"time"

	"github.com/meetingscribe/api/internal/pkg/logger"
	pktNats "github.com/meetingscribe/api/pkg/nats"
	pkgEvents "github.com/meetingscribe/api/pkg/events"
)

type Publisher interface {
	PublishLiveSessionStarted(ctx context.Context, sessionId, ownerId string)
	PublishLiveSessionStopped(ctx context.Context, sessionId, ownerId string, meetingId *string)
	PublishMeetingCreated(ctx context.Context, meetingId, ownerId string)
	PublishUsageLimitReached(ctx context.Context, ownerId, plan string)
	PublishTrackedIssueCreated(ctx context.Context, issueId, ownerId string)
}

type NatsPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) Publisher {
	return &NatsPublisher{publisher: publisher, logger: logger}
}

func (p *NatsPublisher) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	evt := pkgEvents.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Warn("meetingevents", "failed to publish event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}

func (p *NatsPublisher) PublishLiveSessionStarted(ctx context.Context, sessionId, ownerId string) {
	p.publish(ctx, "live_session.started", map[string]interface{}{
		"session_id": sessionId,
		"owner_id":   ownerId,
	})
}

func (p *NatsPublisher) PublishLiveSessionStopped(ctx context.Context, sessionId, ownerId string, meetingId *string) {
	p.publish(ctx, "live_session.stopped", map[string]interface{}{
		"session_id": sessionId,
		"owner_id":   ownerId,
		"meeting_id": meetingId,
	})
}

func (p *NatsPublisher) PublishMeetingCreated(ctx context.Context, meetingId, ownerId string) {
	p.publish(ctx, "meeting.created", map[string]interface{}{
		"meeting_id": meetingId,
		"owner_id":   ownerId,
	})
}

func (p *NatsPublisher) PublishUsageLimitReached(ctx context.Context, ownerId, plan string) {
	p.publish(ctx, "usage.limit_reached", map[string]interface{}{
		"owner_id": ownerId,
		"plan":     plan,
	})
}

func (p *NatsPublisher) PublishTrackedIssueCreated(ctx context.Context, issueId, ownerId string) {
	p.publish(ctx, "tracked_issue.created", map[string]interface{}{
		"issue_id": issueId,
		"owner_id": ownerId,
	})
}
