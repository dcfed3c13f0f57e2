package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
	"github.com/orugalabs/gaming-server/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postColumns = `p.id, p.author_id, u.username, p.title, p.content, p.image_url,
	p.likes, p.comment_count, p.announcement, p.created_at, p.updated_at`

const postFrom = ` FROM posts p JOIN users u ON u.id = p.author_id `

func scanPost(row pgx.Row) (*entity.Post, error) {
	p := &entity.Post{}
	err := row.Scan(&p.ID, &p.AuthorID, &p.AuthorName, &p.Title, &p.Content,
		&p.ImageURL, &p.Likes, &p.CommentCount, &p.Announcement, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO posts (author_id, title, content, image_url, announcement)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, p.AuthorID, p.Title, p.Content, p.ImageURL, p.Announcement)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		UPDATE users SET post_count = post_count + 1 WHERE id = $1
	`, p.AuthorID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	return scanPost(r.pool.QueryRow(ctx, `SELECT `+postColumns+postFrom+`WHERE p.id = $1`, id))
}

func (r *PostRepository) List(ctx context.Context) ([]entity.Post, error) {
	return r.listWhere(ctx, `ORDER BY p.created_at DESC`)
}

func (r *PostRepository) ListAnnouncements(ctx context.Context) ([]entity.Post, error) {
	return r.listWhere(ctx, `WHERE p.announcement ORDER BY p.created_at DESC`)
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID int64) ([]entity.Post, error) {
	return r.listWhere(ctx, `WHERE p.author_id = $1 ORDER BY p.created_at DESC`, authorID)
}

func (r *PostRepository) listWhere(ctx context.Context, clause string, args ...any) ([]entity.Post, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+postColumns+postFrom+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []entity.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) AddLike(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE posts SET likes = likes + 1, updated_at = now() WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) CreateComment(ctx context.Context, c *entity.Comment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO comments (post_id, author_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, c.PostID, c.AuthorID, c.Content)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return err
	}
	res, err := tx.Exec(ctx, `
		UPDATE posts SET comment_count = comment_count + 1, updated_at = now() WHERE id = $1
	`, c.PostID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *PostRepository) CommentsByPost(ctx context.Context, postID int64) ([]entity.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.post_id, c.author_id, u.username, c.content, c.created_at
		FROM comments c JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at
	`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []entity.Comment
	for rows.Next() {
		var c entity.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.AuthorName, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *PostRepository) GetComment(ctx context.Context, id int64) (*entity.Comment, error) {
	c := &entity.Comment{}
	err := r.pool.QueryRow(ctx, `
		SELECT c.id, c.post_id, c.author_id, u.username, c.content, c.created_at
		FROM comments c JOIN users u ON u.id = c.author_id
		WHERE c.id = $1
	`, id).Scan(&c.ID, &c.PostID, &c.AuthorID, &c.AuthorName, &c.Content, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *PostRepository) DeleteComment(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var postID int64
	err = tx.QueryRow(ctx, `DELETE FROM comments WHERE id = $1 RETURNING post_id`, id).Scan(&postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	if _, err := tx.Exec(ctx, `
		UPDATE posts SET comment_count = greatest(comment_count - 1, 0), updated_at = now()
		WHERE id = $1
	`, postID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

var _ repository.PostRepository = (*PostRepository)(nil)
