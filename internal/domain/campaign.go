package domain

import (
	"time"
)

type CampaignDomain string

const (
	DomainAir   CampaignDomain = "Air"
	DomainWater CampaignDomain = "Water"
	DomainWaste CampaignDomain = "Waste"
)

type Campaign struct {
	ID          CampaignID
	Title       string
	NGOID       NGOID
	Domain      CampaignDomain
	GoalINR     int64
	RaisedINR   int64
	Description string
	City        string
	State       string
	Milestones  []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CampaignListing is a campaign row denormalized with the owning NGO's
// name. NGOName stays empty when the reference does not resolve.
type CampaignListing struct {
	Campaign
	NGOName string
}
