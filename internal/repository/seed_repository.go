package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/maheshrc27/postdeck/internal/store"
)

// Seeder populates a fresh owner partition with the demo dataset, at most
// once per owner. The owner_seeds row is the once-only marker, so an owner
// who deletes every demo post keeps an empty partition.
type Seeder struct {
	db *sql.DB
}

func NewSeeder(db *sql.DB) *Seeder {
	return &Seeder{db: db}
}

func (s *Seeder) EnsureOwner(ctx context.Context, ownerID string) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		slog.Info(err.Error())
		return store.Transient("seeding owner", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO owner_seeds (owner_id) VALUES ($1) ON CONFLICT (owner_id) DO NOTHING`, ownerID)
	if err != nil {
		slog.Info(err.Error())
		return store.Transient("seeding owner", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Info(err.Error())
		return store.Transient("seeding owner", err)
	}
	if affected == 0 {
		// Already seeded.
		return tx.Commit()
	}

	for _, post := range store.DemoPosts(time.Now()) {
		var likes, comments, shares sql.NullInt64
		if post.Stats != nil {
			likes = sql.NullInt64{Int64: int64(post.Stats.Likes), Valid: true}
			comments = sql.NullInt64{Int64: int64(post.Stats.Comments), Valid: true}
			shares = sql.NullInt64{Int64: int64(post.Stats.Shares), Valid: true}
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO posts (id, owner_id, content, image_url, platform, status, scheduled_at, likes, comments, shares, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`, post.ID, ownerID, post.Content, post.ImageURL, post.Platform, post.Status,
			post.ScheduledAt, likes, comments, shares, post.CreatedAt, post.UpdatedAt)
		if err != nil {
			slog.Info(err.Error())
			return store.Transient("seeding posts", err)
		}
	}

	for _, platform := range store.DemoPlatforms() {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO platforms (id, owner_id, name, connected)
			VALUES ($1, $2, $3, $4)
		`, platform.ID, ownerID, platform.Name, platform.Connected)
		if err != nil {
			slog.Info(err.Error())
			return store.Transient("seeding platforms", err)
		}

		for i, page := range platform.Pages {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO platform_pages (owner_id, platform_id, id, name, image_url, display_order)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, ownerID, platform.ID, page.ID, page.Name, page.ImageURL, i)
			if err != nil {
				slog.Info(err.Error())
				return store.Transient("seeding platform pages", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Info(err.Error())
		return store.Transient("seeding owner", err)
	}
	return nil
}
