package repository

import (
	"context"
	"fmt"

	"github.com/paryavaran-sahyog/donation-api/internal/domain"
	"github.com/paryavaran-sahyog/donation-api/internal/repository/dao"
)

var ErrNGONotFound = dao.ErrNGONotFound

type NGODAO interface {
	Insert(ctx context.Context, ngo dao.NGO) (dao.NGO, error)
	FindByID(ctx context.Context, id uint) (dao.NGO, error)
	List(ctx context.Context) ([]dao.NGO, error)
	Count(ctx context.Context) (int64, error)
}

type NGORepository struct {
	dao NGODAO
}

func NewNGORepository(dao NGODAO) *NGORepository {
	return &NGORepository{
		dao: dao,
	}
}

func (r *NGORepository) domainToDao(n domain.NGO) dao.NGO {
	return dao.NGO{
		ID:             uint(n.ID),
		Name:           n.Name,
		RegistrationID: n.RegistrationID,
		Category:       string(n.Category),
		City:           n.City,
		State:          n.State,
		Verified:       n.Verified,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}

func (r *NGORepository) daoToDomain(n dao.NGO) domain.NGO {
	return domain.NGO{
		ID:             domain.NGOID(n.ID),
		Name:           n.Name,
		RegistrationID: n.RegistrationID,
		Category:       domain.NGOCategory(n.Category),
		City:           n.City,
		State:          n.State,
		Verified:       n.Verified,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}

func (r *NGORepository) Create(ctx context.Context, ngo domain.NGO) (domain.NGO, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(ngo))
	if err != nil {
		return domain.NGO{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *NGORepository) FindByID(ctx context.Context, id domain.NGOID) (domain.NGO, error) {
	ngo, err := r.dao.FindByID(ctx, uint(id))
	if err != nil {
		return domain.NGO{}, err
	}

	return r.daoToDomain(ngo), nil
}

func (r *NGORepository) List(ctx context.Context) ([]domain.NGO, error) {
	ngos, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	out := make([]domain.NGO, len(ngos))
	for i, n := range ngos {
		out[i] = r.daoToDomain(n)
	}

	return out, nil
}

func (r *NGORepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}
