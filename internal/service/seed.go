package service

import (
	"context"
	"fmt"

	"github.com/paryavaran-sahyog/donation-api/internal/domain"
)

// SeedService inserts the demo NGOs and campaigns. Seeding is a no-op
// whenever any NGO already exists.
type SeedService struct {
	ngoRepo      NGORepository
	campaignRepo CampaignRepository
}

func NewSeedService(ngoRepo NGORepository, campaignRepo CampaignRepository) *SeedService {
	return &SeedService{
		ngoRepo:      ngoRepo,
		campaignRepo: campaignRepo,
	}
}

func (s *SeedService) Seed(ctx context.Context) error {
	count, err := s.ngoRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("s.ngoRepo.Count -> %w", err)
	}
	if count > 0 {
		return nil
	}

	ngos := []domain.NGO{
		{
			Name:           "Aranya Eco Foundation",
			RegistrationID: "KA-REG-001",
			Category:       domain.CategoryAir,
			City:           "Bengaluru",
			State:          "Karnataka",
			Verified:       true,
		},
		{
			Name:           "JalRaksha Trust",
			RegistrationID: "KA-REG-002",
			Category:       domain.CategoryWater,
			City:           "Bengaluru",
			State:          "Karnataka",
			Verified:       true,
		},
		{
			Name:           "Nirmal Waste Collective",
			RegistrationID: "KA-REG-003",
			Category:       domain.CategoryWaste,
			City:           "Bengaluru",
			State:          "Karnataka",
			Verified:       true,
		},
	}

	created := make([]domain.NGO, len(ngos))
	for i, ngo := range ngos {
		created[i], err = s.ngoRepo.Create(ctx, ngo)
		if err != nil {
			return fmt.Errorf("s.ngoRepo.Create -> %w", err)
		}
	}

	campaigns := []domain.Campaign{
		{
			Title:       "Air: Urban Tree Plantation",
			NGOID:       created[0].ID,
			Domain:      domain.DomainAir,
			GoalINR:     500000,
			Description: "Plant and maintain native trees in urban hotspots.",
		},
		{
			Title:       "Water: Lake Restoration",
			NGOID:       created[1].ID,
			Domain:      domain.DomainWater,
			GoalINR:     800000,
			Description: "Desilting and wetland buffer creation.",
		},
		{
			Title:       "Waste: Smart Segregation",
			NGOID:       created[2].ID,
			Domain:      domain.DomainWaste,
			GoalINR:     300000,
			Description: "IoT bins and community awareness.",
		},
	}

	for _, campaign := range campaigns {
		if _, err = s.campaignRepo.Create(ctx, campaign); err != nil {
			return fmt.Errorf("s.campaignRepo.Create -> %w", err)
		}
	}

	return nil
}
