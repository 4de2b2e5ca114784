package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const sqlAdjustTopicSubscriberCount = `
INSERT INTO topics (name, subscriber_count)
VALUES ($1, GREATEST($2, 0))
ON CONFLICT (name) DO UPDATE
SET subscriber_count = GREATEST(topics.subscriber_count + $2, 0), updated_at = NOW()
RETURNING name, subscriber_count, updated_at
`

// AdjustTopicSubscriberCount creates the topic when missing and shifts its
// subscriber count by delta, never below zero.
func (s *Store) AdjustTopicSubscriberCount(ctx context.Context, name string, delta int) (Topic, error) {
	var topic Topic
	if err := s.db.GetContext(ctx, &topic, sqlAdjustTopicSubscriberCount, name, delta); err != nil {
		return Topic{}, fmt.Errorf("failed to adjust topic count: %w", err)
	}
	return topic, nil
}

const sqlGetTopic = `SELECT name, subscriber_count, updated_at FROM topics WHERE name = $1`

func (s *Store) GetTopic(ctx context.Context, name string) (Topic, error) {
	var topic Topic
	err := s.db.GetContext(ctx, &topic, sqlGetTopic, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Topic{}, ErrNotFound
		}
		return Topic{}, fmt.Errorf("failed to get topic: %w", err)
	}
	return topic, nil
}
