package database

import (
	"context"

	"github.com/gofrs/uuid"

	"sonet/internal/core/alarm"
	"sonet/internal/ports/content"
)

func (s *ContentStoreDatabase) CreateAlarm(ctx context.Context, a *alarm.Alarm) error {
	return s.db.WithContext(ctx).Create(a).Error
}

func (s *ContentStoreDatabase) ListAlarmsByRecipient(ctx context.Context, userID uuid.UUID, page content.Page) ([]*alarm.Alarm, error) {
	var alarms []*alarm.Alarm
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Order("created_at DESC, id DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&alarms).Error; err != nil {
		return nil, err
	}
	return alarms, nil
}
