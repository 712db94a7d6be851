package store

import (
	"time"

	"github.com/maheshrc27/postdeck/internal/models"
)

// Demo dataset every fresh owner partition starts from. Mirrors what the
// dashboard shows before a user has created anything of their own.

func DemoPosts(now time.Time) []*models.Post {
	tomorrow := now.Add(24 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)

	return []*models.Post{
		{
			ID:          "post1",
			Content:     "Excited to announce our new product launch! #innovation #tech",
			ImageURL:    "https://placehold.co/600x400/9b87f5/FFFFFF",
			Platform:    models.PlatformFacebook,
			Status:      models.PostStatusScheduled,
			ScheduledAt: &tomorrow,
			Stats:       &models.PostStats{},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:        "post2",
			Content:   "Check out our latest blog post on social media trends!",
			ImageURL:  "https://placehold.co/600x400/9b87f5/FFFFFF",
			Platform:  models.PlatformInstagram,
			Status:    models.PostStatusPublished,
			Stats:     &models.PostStats{Likes: 45, Comments: 12, Shares: 5},
			CreatedAt: yesterday,
			UpdatedAt: yesterday,
		},
		{
			ID:        "post3",
			Content:   "Working on a draft for next week's big announcement...",
			Platform:  models.PlatformFacebook,
			Status:    models.PostStatusDraft,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func DemoPlatforms() []*models.Platform {
	return []*models.Platform{
		{
			ID:        "platform1",
			Name:      models.PlatformFacebook,
			Connected: true,
			Pages: []models.Page{
				{ID: "page1", Name: "Business Page", ImageURL: "https://placehold.co/100x100/9b87f5/FFFFFF"},
			},
		},
		{
			ID:        "platform2",
			Name:      models.PlatformInstagram,
			Connected: true,
			Pages: []models.Page{
				{ID: "page2", Name: "Instagram Business", ImageURL: "https://placehold.co/100x100/9b87f5/FFFFFF"},
			},
		},
	}
}

// CatalogPages returns the fixed page catalog for a platform name, used when
// an owner reconnects a previously disconnected platform.
func CatalogPages(name string) []models.Page {
	for _, p := range DemoPlatforms() {
		if p.Name == name {
			return p.Pages
		}
	}
	return nil
}
