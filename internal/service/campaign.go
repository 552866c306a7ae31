package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/paryavaran-sahyog/donation-api/internal/domain"
)

// ErrInvalidNGOID marks an ngo_id string that is not a well-formed
// identifier at all, as opposed to one naming no stored NGO.
var ErrInvalidNGOID = domain.ErrMalformedID

type CampaignRepository interface {
	Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	FindByID(ctx context.Context, id domain.CampaignID) (domain.Campaign, error)
	List(ctx context.Context, campaignDomain domain.CampaignDomain) ([]domain.Campaign, error)
	IncrementRaised(ctx context.Context, id domain.CampaignID, amount int64) error
}

type CampaignService struct {
	repo    CampaignRepository
	ngoRepo NGORepository
}

func NewCampaignService(repo CampaignRepository, ngoRepo NGORepository) *CampaignService {
	return &CampaignService{
		repo:    repo,
		ngoRepo: ngoRepo,
	}
}

// ListCampaigns returns campaigns in insertion order, each denormalized
// with its NGO's name when the reference resolves.
func (s *CampaignService) ListCampaigns(ctx context.Context, campaignDomain domain.CampaignDomain) ([]domain.CampaignListing, error) {
	campaigns, err := s.repo.List(ctx, campaignDomain)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	ngos, err := s.ngoRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.ngoRepo.List -> %w", err)
	}

	names := make(map[domain.NGOID]string, len(ngos))
	for _, n := range ngos {
		names[n.ID] = n.Name
	}

	listings := make([]domain.CampaignListing, len(campaigns))
	for i, c := range campaigns {
		listings[i] = domain.CampaignListing{
			Campaign: c,
			NGOName:  names[c.NGOID],
		}
	}

	return listings, nil
}

// CreateCampaign validates that rawNGOID names an existing NGO before
// inserting the campaign.
func (s *CampaignService) CreateCampaign(ctx context.Context, campaign domain.Campaign, rawNGOID string) (domain.Campaign, error) {
	ngoID, err := domain.ParseNGOID(rawNGOID)
	if err != nil {
		return domain.Campaign{}, err
	}

	if _, err = s.ngoRepo.FindByID(ctx, ngoID); err != nil {
		if errors.Is(err, ErrNGONotFound) {
			return domain.Campaign{}, ErrNGONotFound
		}

		return domain.Campaign{}, fmt.Errorf("s.ngoRepo.FindByID -> %w", err)
	}

	campaign.NGOID = ngoID

	created, err := s.repo.Create(ctx, campaign)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
