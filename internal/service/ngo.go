package service

import (
	"context"
	"fmt"

	"github.com/paryavaran-sahyog/donation-api/internal/domain"
	"github.com/paryavaran-sahyog/donation-api/internal/repository"
)

var ErrNGONotFound = repository.ErrNGONotFound

type NGORepository interface {
	Create(ctx context.Context, ngo domain.NGO) (domain.NGO, error)
	FindByID(ctx context.Context, id domain.NGOID) (domain.NGO, error)
	List(ctx context.Context) ([]domain.NGO, error)
	Count(ctx context.Context) (int64, error)
}

type NGOService struct {
	repo NGORepository
}

func NewNGOService(repo NGORepository) *NGOService {
	return &NGOService{
		repo: repo,
	}
}

func (s *NGOService) ListNGOs(ctx context.Context) ([]domain.NGO, error) {
	ngos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return ngos, nil
}

func (s *NGOService) CreateNGO(ctx context.Context, ngo domain.NGO) (domain.NGO, error) {
	created, err := s.repo.Create(ctx, ngo)
	if err != nil {
		return domain.NGO{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
