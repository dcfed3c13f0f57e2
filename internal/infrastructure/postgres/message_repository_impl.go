package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
	"github.com/orugalabs/gaming-server/internal/domain/repository"
)

type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

const messageColumns = `m.id, m.sender_id, u.username, m.recipient_id, m.content,
	m.image_url, m.is_group, m.kind, m.read, m.sent_at`

const messageFrom = ` FROM messages m JOIN users u ON u.id = m.sender_id `

func scanMessage(row pgx.Row) (*entity.Message, error) {
	m := &entity.Message{}
	err := row.Scan(&m.ID, &m.SenderID, &m.SenderName, &m.RecipientID, &m.Content,
		&m.ImageURL, &m.Group, &m.Kind, &m.Read, &m.SentAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *MessageRepository) Create(ctx context.Context, m *entity.Message) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO messages (sender_id, recipient_id, content, image_url, is_group, kind)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, sent_at
	`, m.SenderID, m.RecipientID, m.Content, m.ImageURL, m.Group, m.Kind)
	if err := row.Scan(&m.ID, &m.SentAt); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		UPDATE users SET message_count = message_count + 1 WHERE id = $1
	`, m.SenderID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*entity.Message, error) {
	return scanMessage(r.pool.QueryRow(ctx, `SELECT `+messageColumns+messageFrom+`WHERE m.id = $1`, id))
}

func (r *MessageRepository) ListGroup(ctx context.Context) ([]entity.Message, error) {
	return r.listWhere(ctx, `WHERE m.is_group ORDER BY m.sent_at`)
}

func (r *MessageRepository) ListPrivate(ctx context.Context, userID, otherID int64) ([]entity.Message, error) {
	return r.listWhere(ctx, `
		WHERE NOT m.is_group
		  AND ((m.sender_id = $1 AND m.recipient_id = $2) OR (m.sender_id = $2 AND m.recipient_id = $1))
		ORDER BY m.sent_at
	`, userID, otherID)
}

func (r *MessageRepository) listWhere(ctx context.Context, clause string, args ...any) ([]entity.Message, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+messageColumns+messageFrom+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []entity.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, *m)
	}
	return msgs, rows.Err()
}

// Conversations aggregates each private thread into its latest message plus
// an unread count, newest thread first.
func (r *MessageRepository) Conversations(ctx context.Context, userID int64) ([]entity.Conversation, error) {
	rows, err := r.pool.Query(ctx, `
		WITH threads AS (
			SELECT CASE WHEN m.sender_id = $1 THEN m.recipient_id ELSE m.sender_id END AS other_id,
			       max(m.sent_at) AS last_at
			FROM messages m
			WHERE NOT m.is_group AND ($1 IN (m.sender_id, m.recipient_id))
			GROUP BY 1
		)
		SELECT t.other_id, u.username, last.content, t.last_at,
		       (SELECT count(*) FROM messages um
		        WHERE NOT um.is_group AND um.recipient_id = $1
		          AND um.sender_id = t.other_id AND NOT um.read),
		       u.online
		FROM threads t
		JOIN users u ON u.id = t.other_id
		JOIN LATERAL (
			SELECT m.content FROM messages m
			WHERE NOT m.is_group
			  AND ((m.sender_id = $1 AND m.recipient_id = t.other_id)
			    OR (m.sender_id = t.other_id AND m.recipient_id = $1))
			ORDER BY m.sent_at DESC LIMIT 1
		) last ON true
		ORDER BY t.last_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var convs []entity.Conversation
	for rows.Next() {
		var c entity.Conversation
		if err := rows.Scan(&c.UserID, &c.Username, &c.LastMessage, &c.LastMessageAt, &c.Unread, &c.Online); err != nil {
			return nil, err
		}
		convs = append(convs, c)
	}
	return convs, rows.Err()
}

func (r *MessageRepository) MarkRead(ctx context.Context, recipientID int64) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE messages SET read = true
		WHERE recipient_id = $1 AND NOT is_group AND NOT read
	`, recipientID)
	return err
}

func (r *MessageRepository) CountUnread(ctx context.Context, recipientID int64) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM messages
		WHERE recipient_id = $1 AND NOT is_group AND NOT read
	`, recipientID).Scan(&n)
	return n, err
}

func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.MessageRepository = (*MessageRepository)(nil)
