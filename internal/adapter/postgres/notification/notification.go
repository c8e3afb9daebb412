package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainnotif "github.com/avelar/taskhub/internal/domain/notification"
	portnotif "github.com/avelar/taskhub/internal/port/notification"
)

var _ portnotif.Store = (*Store)(nil)

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Create inserts the notification row and one recipient row per unique ID in
// a single transaction. Either everything lands or nothing does, so a
// recipient can never see a notification that was not fully recorded.
func (s *Store) Create(ctx context.Context, title, description string, recipientIDs []uuid.UUID) (domainnotif.Record, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domainnotif.Record{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	id := uuid.New()
	var rec domainnotif.Record
	err = tx.QueryRow(ctx, `
		INSERT INTO notifications (id, title, description, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING title, description, created_at`,
		id, title, description,
	).Scan(&rec.Title, &rec.Description, &rec.CreatedAt)
	if err != nil {
		return domainnotif.Record{}, fmt.Errorf("inserting notification: %w", err)
	}

	// ON CONFLICT absorbs duplicate recipient IDs in the same batch.
	batch := &pgx.Batch{}
	for _, userID := range recipientIDs {
		batch.Queue(
			`INSERT INTO notification_recipients (notification_id, user_id, seen)
			 VALUES ($1, $2, FALSE) ON CONFLICT DO NOTHING`,
			id, userID,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return domainnotif.Record{}, fmt.Errorf("inserting recipients: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domainnotif.Record{}, fmt.Errorf("committing transaction: %w", err)
	}
	return rec, nil
}

func (s *Store) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domainnotif.Item, error) {
	query := `
		SELECT n.title, n.description, n.created_at, r.seen
		FROM notifications n
		JOIN notification_recipients r ON r.notification_id = n.id
		WHERE r.user_id = $1
		ORDER BY n.created_at DESC
		LIMIT $2`

	rows, err := s.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var items []domainnotif.Item
	for rows.Next() {
		var it domainnotif.Item
		if err := rows.Scan(&it.Title, &it.Description, &it.CreatedAt, &it.Seen); err != nil {
			return nil, fmt.Errorf("scanning notification row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notification rows: %w", err)
	}
	return items, nil
}

// MarkAllSeen flips every unseen row for the user in one statement.
func (s *Store) MarkAllSeen(ctx context.Context, userID uuid.UUID) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE notification_recipients SET seen = TRUE WHERE user_id = $1 AND seen = FALSE`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("marking notifications seen: %w", err)
	}
	return nil
}
