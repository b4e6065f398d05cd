// Package alarmapp is the read-only notification projection. Alarms are
// written elsewhere, as a side effect of likes and comments; this service
// only pages through them for one recipient.
package alarmapp

import (
	"context"
	"time"

	"sonet/internal/core/apperr"
	"sonet/internal/ports/content"

	"github.com/gofrs/uuid"
)

type AlarmService struct {
	store content.Store
}

func NewAlarmService(store content.Store) *AlarmService {
	return &AlarmService{store: store}
}

// ListAlarms returns a page of the recipient's live alarms, newest first.
func (s *AlarmService) ListAlarms(ctx context.Context, recipientID string, page content.Page) ([]*content.AlarmDTO, error) {
	uid, err := uuid.FromString(recipientID)
	if err != nil {
		return nil, &apperr.Unresolvable{UserID: recipientID}
	}

	alarms, err := s.store.ListAlarmsByRecipient(ctx, uid, page.Normalize())
	if err != nil {
		return nil, err
	}

	dtos := make([]*content.AlarmDTO, 0, len(alarms))
	for _, a := range alarms {
		dtos = append(dtos, &content.AlarmDTO{
			ID:          a.ID.String(),
			Kind:        string(a.Kind),
			ActorUserID: a.Args.ActorUserID.String(),
			SubjectID:   a.Args.SubjectID.String(),
			CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		})
	}
	return dtos, nil
}
