package alarmapp

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sonet/internal/core/alarm"
	"sonet/internal/core/apperr"
	"sonet/internal/ports/content"
)

// fakeStore serves canned alarms; only the projection read is implemented.
type fakeStore struct {
	content.Store

	gotRecipient uuid.UUID
	gotPage      content.Page
	alarms       []*alarm.Alarm
	err          error
}

func (f *fakeStore) ListAlarmsByRecipient(ctx context.Context, userID uuid.UUID, page content.Page) ([]*alarm.Alarm, error) {
	f.gotRecipient = userID
	f.gotPage = page
	return f.alarms, f.err
}

func TestListAlarms(t *testing.T) {
	recipient := uuid.Must(uuid.NewV4())
	actor := uuid.Must(uuid.NewV4())
	subject := uuid.Must(uuid.NewV4())

	newer := &alarm.Alarm{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    recipient,
		Kind:      alarm.KindNewComment,
		Args:      alarm.Args{ActorUserID: actor, SubjectID: subject},
		CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	older := &alarm.Alarm{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    recipient,
		Kind:      alarm.KindNewLike,
		Args:      alarm.Args{ActorUserID: actor, SubjectID: subject},
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	store := &fakeStore{alarms: []*alarm.Alarm{newer, older}}
	svc := NewAlarmService(store)

	dtos, err := svc.ListAlarms(context.Background(), recipient.String(), content.Page{Limit: 250})
	require.NoError(t, err)

	assert.Equal(t, recipient, store.gotRecipient)
	// the descriptor is normalized before it reaches the store
	assert.Equal(t, content.MaxPageSize, store.gotPage.Limit)

	require.Len(t, dtos, 2)
	assert.Equal(t, string(alarm.KindNewComment), dtos[0].Kind)
	assert.Equal(t, actor.String(), dtos[0].ActorUserID)
	assert.Equal(t, subject.String(), dtos[0].SubjectID)
	assert.Equal(t, string(alarm.KindNewLike), dtos[1].Kind)
}

func TestListAlarms_BadRecipient(t *testing.T) {
	svc := NewAlarmService(&fakeStore{})

	_, err := svc.ListAlarms(context.Background(), "not-a-uuid", content.Page{})
	var unresolvable *apperr.Unresolvable
	require.ErrorAs(t, err, &unresolvable)
}
