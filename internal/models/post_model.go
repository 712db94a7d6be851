package models

import "time"

type Post struct {
	ID          string     `db:"id" json:"id"`
	OwnerID     string     `db:"owner_id" json:"-"`
	Content     string     `db:"content" json:"content"`
	ImageURL    string     `db:"image_url" json:"imageUrl,omitempty"`
	Platform    string     `db:"platform" json:"platform"`
	Status      string     `db:"status" json:"status"` // draft, scheduled, published
	ScheduledAt *time.Time `db:"scheduled_at" json:"scheduledAt,omitempty"`
	Stats       *PostStats `json:"stats,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}

type PostStats struct {
	Likes    int `db:"likes" json:"likes"`
	Comments int `db:"comments" json:"comments"`
	Shares   int `db:"shares" json:"shares"`
}

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
)

const (
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
)

// Clone returns a deep copy so store snapshots cannot be mutated through
// returned pointers.
func (p *Post) Clone() *Post {
	clone := *p
	if p.ScheduledAt != nil {
		t := *p.ScheduledAt
		clone.ScheduledAt = &t
	}
	if p.Stats != nil {
		s := *p.Stats
		clone.Stats = &s
	}
	return &clone
}
