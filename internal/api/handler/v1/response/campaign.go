package response

import (
	"time"

	"github.com/paryavaran-sahyog/donation-api/internal/domain"
)

type Campaign struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	NGOID       string    `json:"ngo_id"`
	NGOName     string    `json:"ngo_name,omitempty"`
	Domain      string    `json:"domain"`
	GoalINR     int64     `json:"goal_inr"`
	RaisedINR   int64     `json:"raised_inr"`
	Description string    `json:"description,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Milestones  []string  `json:"milestones,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewCampaign(c domain.Campaign) Campaign {
	return Campaign{
		ID:          c.ID.String(),
		Title:       c.Title,
		NGOID:       c.NGOID.String(),
		Domain:      string(c.Domain),
		GoalINR:     c.GoalINR,
		RaisedINR:   c.RaisedINR,
		Description: c.Description,
		City:        c.City,
		State:       c.State,
		Milestones:  c.Milestones,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func NewCampaignListings(listings []domain.CampaignListing) []Campaign {
	out := make([]Campaign, len(listings))
	for i, l := range listings {
		out[i] = NewCampaign(l.Campaign)
		out[i].NGOName = l.NGOName
	}

	return out
}
