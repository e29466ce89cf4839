package db

import (
	"context"
	"fmt"
	"time"

	"github.com/haptitalk/feedback-engine/pkg/domain"
)

// feedback history operations; the table is append-only, the single allowed
// update is the sent -> received delivery status flip

// AppendEvent stores a new feedback event and returns its id
func (db *DB) AppendEvent(ctx context.Context, event domain.FeedbackEvent) (string, error) {
	row, err := eventToRow(event)
	if err != nil {
		return "", err
	}

	query := `
		INSERT INTO feedback_events (
			id, session_id, user_id, pattern_id, feedback_type, intensity,
			message, trigger_json, status, context_json, created_at, received_at
		) VALUES (
			:id, :session_id, :user_id, :pattern_id, :feedback_type, :intensity,
			:message, :trigger_json, :status, :context_json, :created_at, :received_at
		)`
	if _, err := db.conn.NamedExecContext(ctx, query, row); err != nil {
		return "", fmt.Errorf("append feedback event: %w", err)
	}
	return event.ID, nil
}

// MarkEventReceived flips the event's delivery status from sent to received.
// Idempotent: repeated acknowledgement of the same id is a no-op success, and
// an already-received event keeps its original received timestamp.
func (db *DB) MarkEventReceived(ctx context.Context, eventID string, receivedAt time.Time) error {
	query := `
		UPDATE feedback_events
		SET status = ?, received_at = ?
		WHERE id = ? AND status = ?`
	_, err := db.conn.ExecContext(ctx, query,
		string(domain.DeliveryReceived), receivedAt, eventID, string(domain.DeliverySent))
	if err != nil {
		return fmt.Errorf("mark event received: %w", err)
	}
	return nil
}

// ListEvents retrieves feedback history for a session, newest first
func (db *DB) ListEvents(ctx context.Context, sessionID string, limit, offset int) ([]domain.FeedbackEvent, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows []eventRow
	query := `
		SELECT * FROM feedback_events
		WHERE session_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`
	if err := db.conn.SelectContext(ctx, &rows, query, sessionID, limit, offset); err != nil {
		return nil, fmt.Errorf("list feedback events: %w", err)
	}

	events := make([]domain.FeedbackEvent, 0, len(rows))
	for i := range rows {
		e, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

// CountEvents returns the total number of events recorded for a session
func (db *DB) CountEvents(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := db.conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM feedback_events WHERE session_id = ?", sessionID)
	if err != nil {
		return 0, fmt.Errorf("count feedback events: %w", err)
	}
	return count, nil
}

// GetEvent retrieves one feedback event by id; nil without error when missing
func (db *DB) GetEvent(ctx context.Context, eventID string) (*domain.FeedbackEvent, error) {
	var rows []eventRow
	err := db.conn.SelectContext(ctx, &rows, "SELECT * FROM feedback_events WHERE id = ?", eventID)
	if err != nil {
		return nil, fmt.Errorf("get feedback event: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	e, err := rows[0].toDomain()
	if err != nil {
		return nil, err
	}
	return &e, nil
}
