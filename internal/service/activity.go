package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lifehub-be/internal/dto"
	"lifehub-be/pkg/events"
	pktNats "lifehub-be/pkg/nats"

	"github.com/google/uuid"
)

const (
	activityNoteCreated   = "NOTE_CREATED"
	activityNoteUpdated   = "NOTE_UPDATED"
	activityNoteDeleted   = "NOTE_DELETED"
	activityEventCreated  = "EVENT_CREATED"
	activityGoalCreated   = "GOAL_CREATED"
	activityGoalCompleted = "GOAL_COMPLETED"
)

// publishActivity fans a mutation out to the in-process topic and, when
// connected, the NATS bus. Failures are logged and swallowed: activity
// tracking never fails a request.
func publishActivity(ctx context.Context, pub IPublisherService, natsPub *pktNats.Publisher, activityType string, userId, recordId uuid.UUID, detail string) {
	msg := dto.ActivityMessage{
		Type:       activityType,
		UserId:     userId,
		RecordId:   recordId,
		Detail:     detail,
		OccurredAt: time.Now(),
	}

	if pub != nil {
		payload, err := json.Marshal(msg)
		if err == nil {
			if err := pub.Publish(ctx, payload); err != nil {
				fmt.Printf("[WARN] Failed to publish %s activity: %v\n", activityType, err)
			}
		}
	}

	if natsPub != nil {
		evt := events.BaseEvent{
			Type: activityType,
			Data: map[string]interface{}{
				"user_id":   userId,
				"record_id": recordId,
				"detail":    detail,
			},
			OccurredAt: msg.OccurredAt,
		}
		if err := natsPub.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event to NATS: %v\n", activityType, err)
		}
	}
}
