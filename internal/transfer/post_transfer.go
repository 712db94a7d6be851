package transfer

import "github.com/maheshrc27/postdeck/internal/models"

type PostCreation struct {
	Content     string `json:"content"`
	ImageURL    string `json:"imageUrl"`
	Platform    string `json:"platform"`
	Status      string `json:"status"`
	ScheduledAt string `json:"scheduledAt"`
}

// PostUpdate carries a partial merge: nil fields keep the stored value.
type PostUpdate struct {
	Content     *string           `json:"content"`
	ImageURL    *string           `json:"imageUrl"`
	Platform    *string           `json:"platform"`
	Status      *string           `json:"status"`
	ScheduledAt *string           `json:"scheduledAt"`
	Stats       *models.PostStats `json:"stats"`
}
