package repository

import (
	"context"
	"fmt"

	"github.com/paryavaran-sahyog/donation-api/internal/domain"
	"github.com/paryavaran-sahyog/donation-api/internal/repository/dao"
)

var ErrCampaignNotFound = dao.ErrCampaignNotFound

type CampaignDAO interface {
	Insert(ctx context.Context, campaign dao.Campaign) (dao.Campaign, error)
	FindByID(ctx context.Context, id uint) (dao.Campaign, error)
	List(ctx context.Context, domain string) ([]dao.Campaign, error)
	IncrementRaised(ctx context.Context, id uint, amount int64) error
}

type CampaignRepository struct {
	dao CampaignDAO
}

func NewCampaignRepository(dao CampaignDAO) *CampaignRepository {
	return &CampaignRepository{
		dao: dao,
	}
}

func (r *CampaignRepository) domainToDao(c domain.Campaign) dao.Campaign {
	return dao.Campaign{
		ID:          uint(c.ID),
		Title:       c.Title,
		NGOID:       uint(c.NGOID),
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

func (r *CampaignRepository) daoToDomain(c dao.Campaign) domain.Campaign {
	return domain.Campaign{
		ID:          domain.CampaignID(c.ID),
		Title:       c.Title,
		NGOID:       domain.NGOID(c.NGOID),
		Domain:      domain.CampaignDomain(c.Domain),
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

func (r *CampaignRepository) Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(campaign))
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, id domain.CampaignID) (domain.Campaign, error) {
	campaign, err := r.dao.FindByID(ctx, uint(id))
	if err != nil {
		return domain.Campaign{}, err
	}

	return r.daoToDomain(campaign), nil
}

func (r *CampaignRepository) List(ctx context.Context, campaignDomain domain.CampaignDomain) ([]domain.Campaign, error) {
	campaigns, err := r.dao.List(ctx, string(campaignDomain))
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	out := make([]domain.Campaign, len(campaigns))
	for i, c := range campaigns {
		out[i] = r.daoToDomain(c)
	}

	return out, nil
}

func (r *CampaignRepository) IncrementRaised(ctx context.Context, id domain.CampaignID, amount int64) error {
	return r.dao.IncrementRaised(ctx, uint(id), amount)
}
