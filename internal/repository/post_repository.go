package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/store"
)

const postColumns = `id, owner_id, content, image_url, platform, status, scheduled_at, likes, comments, shares, created_at, updated_at`

type postRepository struct {
	db     *sql.DB
	seeder *Seeder
}

func NewPostRepository(db *sql.DB, seeder *Seeder) store.PostStore {
	return &postRepository{db: db, seeder: seeder}
}

func (r *postRepository) List(ctx context.Context, ownerID string) ([]*models.Post, error) {
	if err := r.seeder.EnsureOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	query := `SELECT ` + postColumns + ` FROM posts WHERE owner_id = $1 ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		slog.Info(err.Error())
		return nil, store.Transient("listing posts", err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, store.Transient("scanning post", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, store.Transient("listing posts", err)
	}
	return posts, nil
}

func (r *postRepository) GetByID(ctx context.Context, ownerID, id string) (*models.Post, error) {
	if err := r.seeder.EnsureOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	query := `SELECT ` + postColumns + ` FROM posts WHERE owner_id = $1 AND id = $2`
	post, err := scanPost(r.db.QueryRowContext(ctx, query, ownerID, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrNotFound
		}
		slog.Info(err.Error())
		return nil, store.Transient("getting post", err)
	}
	return post, nil
}

func (r *postRepository) Insert(ctx context.Context, ownerID string, post *models.Post) error {
	if err := r.seeder.EnsureOwner(ctx, ownerID); err != nil {
		return err
	}

	likes, comments, shares := statsColumns(post.Stats)
	query := `
		INSERT INTO posts (id, owner_id, content, image_url, platform, status, scheduled_at, likes, comments, shares, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query, post.ID, ownerID, post.Content, post.ImageURL,
		post.Platform, post.Status, post.ScheduledAt, likes, comments, shares, post.CreatedAt, post.UpdatedAt)
	if err != nil {
		slog.Info(err.Error())
		return store.Transient("inserting post", err)
	}
	return nil
}

func (r *postRepository) Update(ctx context.Context, ownerID string, post *models.Post) error {
	if err := r.seeder.EnsureOwner(ctx, ownerID); err != nil {
		return err
	}

	likes, comments, shares := statsColumns(post.Stats)
	query := `
		UPDATE posts
		SET content = $3,
			image_url = $4,
			platform = $5,
			status = $6,
			scheduled_at = $7,
			likes = $8,
			comments = $9,
			shares = $10,
			updated_at = $11
		WHERE owner_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query, ownerID, post.ID, post.Content, post.ImageURL,
		post.Platform, post.Status, post.ScheduledAt, likes, comments, shares, post.UpdatedAt)
	if err != nil {
		slog.Info(err.Error())
		return store.Transient("updating post", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Info(err.Error())
		return store.Transient("updating post", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, ownerID, id string) error {
	if err := r.seeder.EnsureOwner(ctx, ownerID); err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		slog.Info(err.Error())
		return store.Transient("deleting post", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Info(err.Error())
		return store.Transient("deleting post", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*models.Post, error) {
	var post models.Post
	var scheduledAt sql.NullTime
	var likes, comments, shares sql.NullInt64

	err := row.Scan(&post.ID, &post.OwnerID, &post.Content, &post.ImageURL, &post.Platform,
		&post.Status, &scheduledAt, &likes, &comments, &shares, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if scheduledAt.Valid {
		t := scheduledAt.Time
		post.ScheduledAt = &t
	}
	// Stats are all-or-none; likes stands in for the whole record.
	if likes.Valid {
		post.Stats = &models.PostStats{
			Likes:    int(likes.Int64),
			Comments: int(comments.Int64),
			Shares:   int(shares.Int64),
		}
	}
	return &post, nil
}

func statsColumns(stats *models.PostStats) (likes, comments, shares sql.NullInt64) {
	if stats == nil {
		return
	}
	likes = sql.NullInt64{Int64: int64(stats.Likes), Valid: true}
	comments = sql.NullInt64{Int64: int64(stats.Comments), Valid: true}
	shares = sql.NullInt64{Int64: int64(stats.Shares), Valid: true}
	return
}
