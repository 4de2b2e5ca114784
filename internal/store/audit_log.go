package store

import (
	"context"
	"fmt"
)

const sqlCreateAuditLog = `
INSERT INTO audit_logs (category, severity, details)
VALUES ($1, $2, $3)
`

func (s *Store) CreateAuditLog(ctx context.Context, category, severity string, details JSONB) error {
	if _, err := s.db.ExecContext(ctx, sqlCreateAuditLog, category, severity, details); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}
