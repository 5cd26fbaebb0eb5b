package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// Event kinds written by the application.
const (
	EventSessionCompleted = "session_completed"
	EventSessionAbandoned = "session_abandoned"
	EventMasteryChanged   = "mastery_changed"
	EventConfigChanged    = "config_changed"
	EventTargetsChanged   = "targets_changed"
)

// Event is one entry in the append-only activity log.
type Event struct {
	Sequence    int64
	Participant string
	Kind        string
	Payload     map[string]any
	Timestamp   time.Time
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	After int64     // sequence > After
	Kind  string    // exact kind match
	From  time.Time // timestamp >= From
}

// EventRepo provides append and query access to the activity log.
type EventRepo interface {
	// Append records e and returns its sequence number.
	Append(ctx context.Context, e Event) (int64, error)

	// Query returns a participant's events in sequence order.
	Query(ctx context.Context, participant string, opts QueryOpts) ([]Event, error)

	// DeleteParticipant removes every event of a participant.
	DeleteParticipant(ctx context.Context, participant string) error
}

type eventRepo struct {
	drv *entsql.Driver
}

func (r *eventRepo) Append(ctx context.Context, e Event) (int64, error) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return 0, fmt.Errorf("marshal event payload: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(eventTable).
		Columns("participant", "kind", "payload", "created_at").
		Values(e.Participant, e.Kind, string(payload), e.Timestamp.UnixMilli()).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return 0, fmt.Errorf("append event: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("event sequence: %w", err)
	}
	return seq, nil
}

func (r *eventRepo) Query(ctx context.Context, participant string, opts QueryOpts) ([]Event, error) {
	preds := []*entsql.Predicate{entsql.EQ("participant", participant)}
	if opts.After > 0 {
		preds = append(preds, entsql.GT("seq", opts.After))
	}
	if opts.Kind != "" {
		preds = append(preds, entsql.EQ("kind", opts.Kind))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("created_at", opts.From.UnixMilli()))
	}

	sel := entsql.Dialect(dialect.SQLite).
		Select("seq", "participant", "kind", "payload", "created_at").
		From(entsql.Table(eventTable)).
		Where(entsql.And(preds...)).
		OrderBy("seq")
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var (
			e       Event
			payload string
			created int64
		)
		if err := rows.Scan(&e.Sequence, &e.Participant, &e.Kind, &payload, &created); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &e.Payload); err != nil {
			return nil, fmt.Errorf("unmarshal event %d: %w", e.Sequence, err)
		}
		e.Timestamp = time.UnixMilli(created)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) DeleteParticipant(ctx context.Context, participant string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(eventTable).
		Where(entsql.EQ("participant", participant)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete events: %w", err)
	}
	return nil
}
