package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const subscriberColumns = `id, email, first_name, last_name, device_token, status, segment_ids, tags,
engagement_score, last_engagement_at, subscribed_at, unsubscribed_at, unsubscribe_reason,
metadata, created_at, updated_at`

type CreateSubscriberParams struct {
	Email       string
	FirstName   *string
	LastName    *string
	DeviceToken *string
	SegmentIDs  []uuid.UUID
	Tags        []string
	Metadata    JSONB
}

const sqlCreateSubscriber = `
INSERT INTO subscribers (email, first_name, last_name, device_token, status, segment_ids, tags, metadata)
VALUES ($1, $2, $3, $4, 'active', $5, $6, $7)
RETURNING ` + subscriberColumns

// CreateSubscriber inserts an active subscriber with a zero engagement score.
func (s *Store) CreateSubscriber(ctx context.Context, params CreateSubscriberParams) (Subscriber, error) {
	var sub Subscriber
	err := s.db.GetContext(ctx, &sub, sqlCreateSubscriber,
		params.Email,
		params.FirstName,
		params.LastName,
		params.DeviceToken,
		UUIDArray(params.SegmentIDs),
		pq.StringArray(params.Tags),
		params.Metadata)
	if err != nil {
		if isUniqueViolation(err) {
			return Subscriber{}, ErrAlreadyExists
		}
		return Subscriber{}, fmt.Errorf("failed to create subscriber: %w", err)
	}
	return sub, nil
}

const sqlGetSubscriberByID = `SELECT ` + subscriberColumns + ` FROM subscribers WHERE id = $1`

func (s *Store) GetSubscriberByID(ctx context.Context, id uuid.UUID) (Subscriber, error) {
	var sub Subscriber
	err := s.db.GetContext(ctx, &sub, sqlGetSubscriberByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subscriber{}, ErrNotFound
		}
		return Subscriber{}, fmt.Errorf("failed to get subscriber: %w", err)
	}
	return sub, nil
}

const sqlGetSubscriberByEmail = `SELECT ` + subscriberColumns + ` FROM subscribers WHERE email = $1`

func (s *Store) GetSubscriberByEmail(ctx context.Context, email string) (Subscriber, error) {
	var sub Subscriber
	err := s.db.GetContext(ctx, &sub, sqlGetSubscriberByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subscriber{}, ErrNotFound
		}
		return Subscriber{}, fmt.Errorf("failed to get subscriber by email: %w", err)
	}
	return sub, nil
}

const sqlUnsubscribeSubscriber = `
UPDATE subscribers
SET status = 'unsubscribed', unsubscribed_at = $2, unsubscribe_reason = $3, updated_at = NOW()
WHERE email = $1
RETURNING ` + subscriberColumns

// UnsubscribeSubscriber flips a subscriber to unsubscribed by email.
func (s *Store) UnsubscribeSubscriber(ctx context.Context, email string, reason *string, at time.Time) (Subscriber, error) {
	var sub Subscriber
	err := s.db.GetContext(ctx, &sub, sqlUnsubscribeSubscriber, email, at, reason)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subscriber{}, ErrNotFound
		}
		return Subscriber{}, fmt.Errorf("failed to unsubscribe subscriber: %w", err)
	}
	return sub, nil
}

const sqlAddSubscriberToSegments = `
UPDATE subscribers
SET segment_ids = ARRAY(SELECT DISTINCT unnest(segment_ids || $2::uuid[])), updated_at = NOW()
WHERE id = $1
RETURNING ` + subscriberColumns

// AddSubscriberToSegments appends explicit segment memberships without duplicates.
func (s *Store) AddSubscriberToSegments(ctx context.Context, id uuid.UUID, segmentIDs []uuid.UUID) (Subscriber, error) {
	var sub Subscriber
	err := s.db.GetContext(ctx, &sub, sqlAddSubscriberToSegments, id, UUIDArray(segmentIDs))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subscriber{}, ErrNotFound
		}
		return Subscriber{}, fmt.Errorf("failed to add subscriber to segments: %w", err)
	}
	return sub, nil
}

// UpdateSubscriberParams holds a partial update. Nil fields are left as
// they are; Metadata is merged into the existing document.
type UpdateSubscriberParams struct {
	FirstName   *string
	LastName    *string
	DeviceToken *string
	Tags        []string
	Metadata    JSONB
}

const sqlUpdateSubscriberSet = `
SET first_name = COALESCE($2, first_name),
    last_name = COALESCE($3, last_name),
    device_token = COALESCE($4, device_token),
    tags = COALESCE($5::text[], tags),
    metadata = metadata || COALESCE($6::jsonb, '{}'::jsonb),
    updated_at = NOW()`

const sqlUpdateSubscriber = `UPDATE subscribers` + sqlUpdateSubscriberSet + `
WHERE id = $1
RETURNING ` + subscriberColumns

const sqlUpdateSubscribers = `UPDATE subscribers` + sqlUpdateSubscriberSet + `
WHERE id = ANY($1::uuid[])`

func updateArgs(params UpdateSubscriberParams) []interface{} {
	var tags interface{}
	if params.Tags != nil {
		tags = pq.StringArray(params.Tags)
	}
	var metadata interface{}
	if params.Metadata != nil {
		metadata = params.Metadata
	}
	return []interface{}{params.FirstName, params.LastName, params.DeviceToken, tags, metadata}
}

// UpdateSubscriber applies a partial update to one subscriber.
func (s *Store) UpdateSubscriber(ctx context.Context, id uuid.UUID, params UpdateSubscriberParams) (Subscriber, error) {
	var sub Subscriber
	args := append([]interface{}{id}, updateArgs(params)...)
	err := s.db.GetContext(ctx, &sub, sqlUpdateSubscriber, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subscriber{}, ErrNotFound
		}
		return Subscriber{}, fmt.Errorf("failed to update subscriber: %w", err)
	}
	return sub, nil
}

// UpdateSubscribers applies the same partial update to every id and returns
// the number of rows changed.
func (s *Store) UpdateSubscribers(ctx context.Context, ids []uuid.UUID, params UpdateSubscriberParams) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	args := append([]interface{}{UUIDArray(ids)}, updateArgs(params)...)
	res, err := s.db.ExecContext(ctx, sqlUpdateSubscribers, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update subscribers: %w", err)
	}
	return res.RowsAffected()
}

const sqlAddSegmentToSubscribers = `
UPDATE subscribers
SET segment_ids = array_append(segment_ids, $2::uuid), updated_at = NOW()
WHERE id = ANY($1::uuid[]) AND NOT ($2::uuid = ANY(segment_ids))`

// AddSegmentToSubscribers adds one explicit membership to every id that does
// not have it yet.
func (s *Store) AddSegmentToSubscribers(ctx context.Context, ids []uuid.UUID, segmentID uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := s.db.ExecContext(ctx, sqlAddSegmentToSubscribers, UUIDArray(ids), segmentID)
	if err != nil {
		return 0, fmt.Errorf("failed to add segment to subscribers: %w", err)
	}
	return res.RowsAffected()
}

const sqlListActiveSubscribers = `SELECT ` + subscriberColumns + ` FROM subscribers WHERE status = 'active' ORDER BY created_at, id`

func (s *Store) ListActiveSubscribers(ctx context.Context) ([]Subscriber, error) {
	var subs []Subscriber
	if err := s.db.SelectContext(ctx, &subs, sqlListActiveSubscribers); err != nil {
		return nil, fmt.Errorf("failed to list active subscribers: %w", err)
	}
	return subs, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
