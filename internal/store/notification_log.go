package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CreateNotificationLogParams struct {
	TargetType       string
	Target           string
	NotificationType string
	Title            string
	Body             string
	Data             JSONB
}

const sqlCreateNotificationLog = `
INSERT INTO notification_logs (target_type, target, notification_type, title, body, data, status)
VALUES ($1, $2, $3, $4, $5, $6, 'attempt')
RETURNING id, target_type, target, notification_type, title, body, data, status, message_id, error, created_at, updated_at
`

// CreateNotificationLog records a send attempt.
func (s *Store) CreateNotificationLog(ctx context.Context, params CreateNotificationLogParams) (NotificationLog, error) {
	var log NotificationLog
	err := s.db.GetContext(ctx, &log, sqlCreateNotificationLog,
		params.TargetType,
		params.Target,
		params.NotificationType,
		params.Title,
		params.Body,
		params.Data)
	if err != nil {
		return NotificationLog{}, fmt.Errorf("failed to create notification log: %w", err)
	}
	return log, nil
}

const sqlUpdateNotificationLogStatus = `
UPDATE notification_logs
SET status = $2, message_id = $3, error = $4, updated_at = NOW()
WHERE id = $1
`

func (s *Store) UpdateNotificationLogStatus(ctx context.Context, id uuid.UUID, status string, messageID, errMsg *string) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateNotificationLogStatus, id, status, messageID, errMsg)
	if err != nil {
		return fmt.Errorf("failed to update notification log: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

type NotificationLogFilter struct {
	NotificationType *string
	Status           *string
	From             *time.Time
	To               *time.Time
}

// NotificationLogCount is one group of the notification analytics breakdown.
type NotificationLogCount struct {
	NotificationType string `db:"notification_type"`
	Status           string `db:"status"`
	Count            int    `db:"count"`
}

const sqlCountNotificationLogs = `
SELECT notification_type, status, COUNT(*) AS count
FROM notification_logs
WHERE ($1::text IS NULL OR notification_type = $1)
  AND ($2::text IS NULL OR status = $2)
  AND ($3::timestamptz IS NULL OR created_at >= $3)
  AND ($4::timestamptz IS NULL OR created_at <= $4)
GROUP BY notification_type, status
ORDER BY notification_type, status
`

func (s *Store) CountNotificationLogs(ctx context.Context, filter NotificationLogFilter) ([]NotificationLogCount, error) {
	var counts []NotificationLogCount
	err := s.db.SelectContext(ctx, &counts, sqlCountNotificationLogs,
		filter.NotificationType,
		filter.Status,
		filter.From,
		filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to count notification logs: %w", err)
	}
	return counts, nil
}
