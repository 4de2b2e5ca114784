package store

import (
	"context"
	"fmt"
	"time"
)

const deviceTokenColumns = `id, user_id, token, platform, push_enabled, biometric_enabled, is_active, last_used_at, created_at, updated_at`

type UpsertDeviceTokenParams struct {
	UserID           string
	Token            string
	Platform         string
	PushEnabled      bool
	BiometricEnabled bool
	LastUsedAt       time.Time
}

// Re-registering a token reactivates it.
const sqlUpsertDeviceToken = `
INSERT INTO device_tokens (user_id, token, platform, push_enabled, biometric_enabled, is_active, last_used_at)
VALUES ($1, $2, $3, $4, $5, true, $6)
ON CONFLICT (user_id, token) DO UPDATE
SET platform = EXCLUDED.platform,
    push_enabled = EXCLUDED.push_enabled,
    biometric_enabled = EXCLUDED.biometric_enabled,
    is_active = true,
    last_used_at = EXCLUDED.last_used_at,
    updated_at = NOW()
RETURNING ` + deviceTokenColumns

func (s *Store) UpsertDeviceToken(ctx context.Context, params UpsertDeviceTokenParams) (DeviceToken, error) {
	var token DeviceToken
	err := s.db.GetContext(ctx, &token, sqlUpsertDeviceToken,
		params.UserID,
		params.Token,
		params.Platform,
		params.PushEnabled,
		params.BiometricEnabled,
		params.LastUsedAt)
	if err != nil {
		return DeviceToken{}, fmt.Errorf("failed to upsert device token: %w", err)
	}
	return token, nil
}

const sqlDeactivateDeviceToken = `
UPDATE device_tokens SET is_active = false, updated_at = NOW() WHERE token = $1 AND is_active = true
`

// DeactivateDeviceToken marks every registration of token inactive and
// returns how many rows changed.
func (s *Store) DeactivateDeviceToken(ctx context.Context, token string) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlDeactivateDeviceToken, token)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate device token: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

const sqlDeleteDeviceToken = `DELETE FROM device_tokens WHERE user_id = $1 AND token = $2`

func (s *Store) DeleteDeviceToken(ctx context.Context, userID, token string) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteDeviceToken, userID, token)
	if err != nil {
		return fmt.Errorf("failed to delete device token: %w", err)
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

const sqlListDeviceTokensByUser = `
SELECT ` + deviceTokenColumns + `
FROM device_tokens
WHERE user_id = $1 AND (NOT $2 OR (is_active = true AND push_enabled = true))
ORDER BY created_at
`

// ListDeviceTokensByUser lists a user's tokens; pushableOnly keeps active push enabled ones.
func (s *Store) ListDeviceTokensByUser(ctx context.Context, userID string, pushableOnly bool) ([]DeviceToken, error) {
	var tokens []DeviceToken
	if err := s.db.SelectContext(ctx, &tokens, sqlListDeviceTokensByUser, userID, pushableOnly); err != nil {
		return nil, fmt.Errorf("failed to list device tokens: %w", err)
	}
	return tokens, nil
}

const sqlDeleteInactiveDeviceTokens = `
DELETE FROM device_tokens WHERE is_active = false AND updated_at < $1
`

func (s *Store) DeleteInactiveDeviceTokens(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlDeleteInactiveDeviceTokens, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete inactive device tokens: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}
