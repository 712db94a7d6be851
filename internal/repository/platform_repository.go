package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/store"
)

type platformRepository struct {
	db     *sql.DB
	seeder *Seeder
}

func NewPlatformRepository(db *sql.DB, seeder *Seeder) store.PlatformStore {
	return &platformRepository{db: db, seeder: seeder}
}

func (r *platformRepository) List(ctx context.Context, ownerID string) ([]*models.Platform, error) {
	if err := r.seeder.EnsureOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_id, name, connected FROM platforms WHERE owner_id = $1 ORDER BY id`, ownerID)
	if err != nil {
		slog.Info(err.Error())
		return nil, store.Transient("listing platforms", err)
	}
	defer rows.Close()

	var platforms []*models.Platform
	byID := make(map[string]*models.Platform)
	for rows.Next() {
		var p models.Platform
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Connected); err != nil {
			slog.Info(err.Error())
			return nil, store.Transient("scanning platform", err)
		}
		platforms = append(platforms, &p)
		byID[p.ID] = &p
	}
	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, store.Transient("listing platforms", err)
	}

	pageRows, err := r.db.QueryContext(ctx, `
		SELECT platform_id, id, name, image_url
		FROM platform_pages
		WHERE owner_id = $1
		ORDER BY platform_id, display_order
	`, ownerID)
	if err != nil {
		slog.Info(err.Error())
		return nil, store.Transient("listing platform pages", err)
	}
	defer pageRows.Close()

	for pageRows.Next() {
		var platformID string
		var page models.Page
		if err := pageRows.Scan(&platformID, &page.ID, &page.Name, &page.ImageURL); err != nil {
			slog.Info(err.Error())
			return nil, store.Transient("scanning platform page", err)
		}
		if platform, ok := byID[platformID]; ok {
			platform.Pages = append(platform.Pages, page)
		}
	}
	if err := pageRows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, store.Transient("listing platform pages", err)
	}

	return platforms, nil
}

func (r *platformRepository) GetByID(ctx context.Context, ownerID, id string) (*models.Platform, error) {
	platforms, err := r.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, p := range platforms {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *platformRepository) SetConnected(ctx context.Context, ownerID, id string, connected bool) (*models.Platform, error) {
	if err := r.seeder.EnsureOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		slog.Info(err.Error())
		return nil, store.Transient("updating platform", err)
	}
	defer tx.Rollback()

	var name string
	err = tx.QueryRowContext(ctx, `
		UPDATE platforms SET connected = $3 WHERE owner_id = $1 AND id = $2 RETURNING name
	`, ownerID, id, connected).Scan(&name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrNotFound
		}
		slog.Info(err.Error())
		return nil, store.Transient("updating platform", err)
	}

	// Disconnecting drops the pages; reconnecting restores the catalog set.
	_, err = tx.ExecContext(ctx,
		`DELETE FROM platform_pages WHERE owner_id = $1 AND platform_id = $2`, ownerID, id)
	if err != nil {
		slog.Info(err.Error())
		return nil, store.Transient("clearing platform pages", err)
	}

	var pages []models.Page
	if connected {
		pages = store.CatalogPages(name)
		for i, page := range pages {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO platform_pages (owner_id, platform_id, id, name, image_url, display_order)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, ownerID, id, page.ID, page.Name, page.ImageURL, i)
			if err != nil {
				slog.Info(err.Error())
				return nil, store.Transient("restoring platform pages", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Info(err.Error())
		return nil, store.Transient("updating platform", err)
	}

	return &models.Platform{
		ID:        id,
		OwnerID:   ownerID,
		Name:      name,
		Connected: connected,
		Pages:     pages,
	}, nil
}
