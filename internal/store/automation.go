package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const automationColumns = `id, name, description, trigger_type, trigger_conditions, steps, segment_ids, status,
stats_triggered, stats_completed, stats_failed, created_at, updated_at`

type CreateAutomationParams struct {
	Name              string
	Description       *string
	TriggerType       string
	TriggerConditions JSONB
	Steps             AutomationSteps
	SegmentIDs        []uuid.UUID
	Status            string
}

const sqlCreateAutomation = `
INSERT INTO automations (name, description, trigger_type, trigger_conditions, steps, segment_ids, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + automationColumns

func (s *Store) CreateAutomation(ctx context.Context, params CreateAutomationParams) (Automation, error) {
	var automation Automation
	err := s.db.GetContext(ctx, &automation, sqlCreateAutomation,
		params.Name,
		params.Description,
		params.TriggerType,
		params.TriggerConditions,
		params.Steps,
		UUIDArray(params.SegmentIDs),
		params.Status)
	if err != nil {
		return Automation{}, fmt.Errorf("failed to create automation: %w", err)
	}
	return automation, nil
}

const sqlGetAutomationByID = `SELECT ` + automationColumns + ` FROM automations WHERE id = $1`

func (s *Store) GetAutomationByID(ctx context.Context, id uuid.UUID) (Automation, error) {
	var automation Automation
	err := s.db.GetContext(ctx, &automation, sqlGetAutomationByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Automation{}, ErrNotFound
		}
		return Automation{}, fmt.Errorf("failed to get automation: %w", err)
	}
	return automation, nil
}

const sqlListAutomations = `SELECT ` + automationColumns + ` FROM automations ORDER BY created_at DESC LIMIT $1 OFFSET $2`

func (s *Store) ListAutomations(ctx context.Context, limit, offset int) ([]Automation, error) {
	var automations []Automation
	if err := s.db.SelectContext(ctx, &automations, sqlListAutomations, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list automations: %w", err)
	}
	return automations, nil
}

var automationCounters = map[string]struct{}{
	"stats_triggered": {},
	"stats_completed": {},
	"stats_failed":    {},
}

// IncrementAutomationStat adds one to a stats_* counter.
func (s *Store) IncrementAutomationStat(ctx context.Context, id uuid.UUID, column string) error {
	if _, ok := automationCounters[column]; !ok {
		return fmt.Errorf("unknown automation counter %q", column)
	}
	query := `UPDATE automations SET ` + column + ` = ` + column + ` + 1, updated_at = NOW() WHERE id = $1`
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment automation %s: %w", column, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to increment automation %s: %w", column, err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
