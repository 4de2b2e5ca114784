package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var ErrInvalidCriteria = errors.New("invalid segment criteria")

// Segment criteria fields
const (
	CriteriaFieldSegments         = "segments"
	CriteriaFieldTags             = "tags"
	CriteriaFieldEngagementScore  = "engagement_score"
	CriteriaFieldLastEngagementAt = "last_engagement_at"
	CriteriaFieldSubscribedAt     = "subscribed_at"
	CriteriaFieldEmail            = "email"
)

// Segment criteria operators
const (
	OperatorEquals      = "equals"
	OperatorNotEquals   = "not_equals"
	OperatorGreaterThan = "gt"
	OperatorGTE         = "gte"
	OperatorLessThan    = "lt"
	OperatorLTE         = "lte"
	OperatorContainsAny = "contains_any"
)

type fieldKind int

const (
	kindUUIDArray fieldKind = iota
	kindTextArray
	kindNumber
	kindTime
	kindText
)

type criteriaField struct {
	column    string
	kind      fieldKind
	operators map[string]bool
}

var (
	arrayOperators   = map[string]bool{OperatorEquals: true, OperatorNotEquals: true, OperatorContainsAny: true}
	compareOperators = map[string]bool{
		OperatorEquals: true, OperatorNotEquals: true,
		OperatorGreaterThan: true, OperatorGTE: true, OperatorLessThan: true, OperatorLTE: true,
	}
)

var criteriaFields = map[string]criteriaField{
	CriteriaFieldSegments:         {column: "segment_ids", kind: kindUUIDArray, operators: arrayOperators},
	CriteriaFieldTags:             {column: "tags", kind: kindTextArray, operators: arrayOperators},
	CriteriaFieldEngagementScore:  {column: "engagement_score", kind: kindNumber, operators: compareOperators},
	CriteriaFieldLastEngagementAt: {column: "last_engagement_at", kind: kindTime, operators: compareOperators},
	CriteriaFieldSubscribedAt:     {column: "subscribed_at", kind: kindTime, operators: compareOperators},
	CriteriaFieldEmail:            {column: "email", kind: kindText, operators: arrayOperators},
}

var sqlComparators = map[string]string{
	OperatorEquals:      "=",
	OperatorNotEquals:   "<>",
	OperatorGreaterThan: ">",
	OperatorGTE:         ">=",
	OperatorLessThan:    "<",
	OperatorLTE:         "<=",
}

// ValidateCriteria checks every criterion names a known field, an operator
// allowed for that field and a value of the right shape.
func ValidateCriteria(criteria SegmentCriteria) error {
	var args []interface{}
	for _, c := range criteria {
		if _, err := criterionClause(c, &args); err != nil {
			return err
		}
	}
	return nil
}

// criterionClause renders one criterion as a SQL predicate, appending its bind values to args.
func criterionClause(c Criterion, args *[]interface{}) (string, error) {
	field, ok := criteriaFields[c.Field]
	if !ok {
		return "", fmt.Errorf("%w: unknown field %q", ErrInvalidCriteria, c.Field)
	}
	if !field.operators[c.Operator] {
		return "", fmt.Errorf("%w: operator %q not supported for field %q", ErrInvalidCriteria, c.Operator, c.Field)
	}

	bind := func(v interface{}) string {
		*args = append(*args, v)
		return fmt.Sprintf("$%d", len(*args))
	}

	switch field.kind {
	case kindUUIDArray, kindTextArray:
		cast := "::text[]"
		if field.kind == kindUUIDArray {
			cast = "::uuid[]"
		}
		if c.Operator == OperatorContainsAny {
			values, err := stringList(c.Value, field.kind == kindUUIDArray)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s && %s%s", field.column, bind(pq.StringArray(values)), cast), nil
		}
		value, err := stringValue(c.Value, field.kind == kindUUIDArray)
		if err != nil {
			return "", err
		}
		clause := fmt.Sprintf("%s = ANY(%s)", bind(value), field.column)
		if c.Operator == OperatorNotEquals {
			clause = "NOT (" + clause + ")"
		}
		return clause, nil

	case kindNumber:
		n, ok := c.Value.(float64)
		if !ok {
			if i, isInt := c.Value.(int); isInt {
				n, ok = float64(i), true
			}
		}
		if !ok {
			return "", fmt.Errorf("%w: %s expects a number", ErrInvalidCriteria, c.Field)
		}
		return fmt.Sprintf("%s %s %s", field.column, sqlComparators[c.Operator], bind(n)), nil

	case kindTime:
		raw, ok := c.Value.(string)
		if !ok {
			return "", fmt.Errorf("%w: %s expects an RFC3339 timestamp", ErrInvalidCriteria, c.Field)
		}
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return "", fmt.Errorf("%w: %s expects an RFC3339 timestamp", ErrInvalidCriteria, c.Field)
		}
		return fmt.Sprintf("%s %s %s", field.column, sqlComparators[c.Operator], bind(at)), nil

	case kindText:
		if c.Operator == OperatorContainsAny {
			values, err := stringList(c.Value, false)
			if err != nil {
				return "", err
			}
			patterns := make([]string, len(values))
			for i, v := range values {
				patterns[i] = "%" + strings.ToLower(v) + "%"
			}
			return fmt.Sprintf("%s ILIKE ANY(%s::text[])", field.column, bind(pq.StringArray(patterns))), nil
		}
		value, err := stringValue(c.Value, false)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s %s", field.column, sqlComparators[c.Operator], bind(strings.ToLower(value))), nil
	}
	return "", fmt.Errorf("%w: unsupported field %q", ErrInvalidCriteria, c.Field)
}

func stringValue(v interface{}, mustBeUUID bool) (string, error) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: expected a non-empty string value", ErrInvalidCriteria)
	}
	if mustBeUUID {
		if _, err := uuid.Parse(s); err != nil {
			return "", fmt.Errorf("%w: %q is not a uuid", ErrInvalidCriteria, s)
		}
	}
	return s, nil
}

func stringList(v interface{}, mustBeUUID bool) ([]string, error) {
	var items []interface{}
	switch t := v.(type) {
	case []interface{}:
		items = t
	case []string:
		for _, s := range t {
			items = append(items, s)
		}
	default:
		return nil, fmt.Errorf("%w: contains_any expects a list", ErrInvalidCriteria)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: contains_any expects at least one value", ErrInvalidCriteria)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, err := stringValue(item, mustBeUUID)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// segmentClause ANDs a segment's criteria. A segment without criteria
// matches its explicit members.
func segmentClause(seg Segment, args *[]interface{}) (string, error) {
	if len(seg.Criteria) == 0 {
		*args = append(*args, seg.ID)
		return fmt.Sprintf("$%d = ANY(segment_ids)", len(*args)), nil
	}
	parts := make([]string, 0, len(seg.Criteria))
	for _, c := range seg.Criteria {
		clause, err := criterionClause(c, args)
		if err != nil {
			return "", err
		}
		parts = append(parts, "("+clause+")")
	}
	return strings.Join(parts, " AND "), nil
}

// buildSegmentQuery selects active subscribers matching any of the segments.
func buildSegmentQuery(selectList string, segments []Segment) (string, []interface{}, error) {
	var args []interface{}
	query := "SELECT " + selectList + " FROM subscribers WHERE status = 'active'"
	if len(segments) == 0 {
		return query, args, nil
	}
	ors := make([]string, 0, len(segments))
	for _, seg := range segments {
		clause, err := segmentClause(seg, &args)
		if err != nil {
			return "", nil, err
		}
		ors = append(ors, "("+clause+")")
	}
	return query + " AND (" + strings.Join(ors, " OR ") + ")", args, nil
}

// ListSubscribersForSegments returns active subscribers matching any of the
// given segments, or every active subscriber when segments is empty.
func (s *Store) ListSubscribersForSegments(ctx context.Context, segments []Segment) ([]Subscriber, error) {
	query, args, err := buildSegmentQuery(subscriberColumns, segments)
	if err != nil {
		return nil, err
	}
	query += " ORDER BY created_at, id"

	var subs []Subscriber
	if err := s.db.SelectContext(ctx, &subs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list subscribers for segments: %w", err)
	}
	return subs, nil
}

// CountSubscribersForSegment counts active subscribers matching a single segment.
func (s *Store) CountSubscribersForSegment(ctx context.Context, seg Segment) (int, error) {
	query, args, err := buildSegmentQuery("COUNT(*)", []Segment{seg})
	if err != nil {
		return 0, err
	}
	var count int
	if err := s.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count subscribers for segment: %w", err)
	}
	return count, nil
}

const segmentColumns = `id, name, description, criteria, cached_subscriber_count, cached_at, created_at, updated_at`

type CreateSegmentParams struct {
	Name        string
	Description *string
	Criteria    SegmentCriteria
}

const sqlCreateSegment = `
INSERT INTO segments (name, description, criteria)
VALUES ($1, $2, $3)
RETURNING ` + segmentColumns

func (s *Store) CreateSegment(ctx context.Context, params CreateSegmentParams) (Segment, error) {
	var seg Segment
	err := s.db.GetContext(ctx, &seg, sqlCreateSegment, params.Name, params.Description, params.Criteria)
	if err != nil {
		if isUniqueViolation(err) {
			return Segment{}, ErrAlreadyExists
		}
		return Segment{}, fmt.Errorf("failed to create segment: %w", err)
	}
	return seg, nil
}

const sqlGetSegmentByID = `SELECT ` + segmentColumns + ` FROM segments WHERE id = $1`

func (s *Store) GetSegmentByID(ctx context.Context, id uuid.UUID) (Segment, error) {
	var seg Segment
	err := s.db.GetContext(ctx, &seg, sqlGetSegmentByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Segment{}, ErrNotFound
		}
		return Segment{}, fmt.Errorf("failed to get segment: %w", err)
	}
	return seg, nil
}

const sqlGetSegmentsByIDs = `SELECT ` + segmentColumns + ` FROM segments WHERE id = ANY($1::uuid[]) ORDER BY created_at, id`

// GetSegmentsByIDs loads the listed segments, silently skipping unknown ids.
func (s *Store) GetSegmentsByIDs(ctx context.Context, ids []uuid.UUID) ([]Segment, error) {
	var segs []Segment
	if err := s.db.SelectContext(ctx, &segs, sqlGetSegmentsByIDs, UUIDArray(ids)); err != nil {
		return nil, fmt.Errorf("failed to get segments: %w", err)
	}
	return segs, nil
}

const sqlListSegments = `SELECT ` + segmentColumns + ` FROM segments ORDER BY created_at DESC LIMIT $1 OFFSET $2`

func (s *Store) ListSegments(ctx context.Context, limit, offset int) ([]Segment, error) {
	var segs []Segment
	if err := s.db.SelectContext(ctx, &segs, sqlListSegments, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list segments: %w", err)
	}
	return segs, nil
}

const sqlUpdateSegmentCachedCount = `
UPDATE segments
SET cached_subscriber_count = $2, cached_at = $3, updated_at = NOW()
WHERE id = $1
RETURNING ` + segmentColumns

func (s *Store) UpdateSegmentCachedCount(ctx context.Context, id uuid.UUID, count int, at time.Time) (Segment, error) {
	var seg Segment
	err := s.db.GetContext(ctx, &seg, sqlUpdateSegmentCachedCount, id, count, at)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Segment{}, ErrNotFound
		}
		return Segment{}, fmt.Errorf("failed to update segment count: %w", err)
	}
	return seg, nil
}
