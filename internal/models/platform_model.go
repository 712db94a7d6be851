package models

type Platform struct {
	ID        string `db:"id" json:"id"`
	OwnerID   string `db:"owner_id" json:"-"`
	Name      string `db:"name" json:"name"` // facebook, instagram
	Connected bool   `db:"connected" json:"connected"`
	Pages     []Page `json:"pages,omitempty"`
}

type Page struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	ImageURL string `db:"image_url" json:"imageUrl,omitempty"`
}

func (p *Platform) Clone() *Platform {
	clone := *p
	if p.Pages != nil {
		clone.Pages = make([]Page, len(p.Pages))
		copy(clone.Pages, p.Pages)
	}
	return &clone
}
