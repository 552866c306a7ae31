package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/paryavaran-sahyog/donation-api/internal/domain"
)

const unknownNGOName = "Unknown NGO"

// LedgerService serves the read-side views over donation settlements:
// the transaction ledger and the NGO leaderboard.
type LedgerService struct {
	repo         DonationRepository
	campaignRepo CampaignRepository
	ngoRepo      NGORepository
}

func NewLedgerService(repo DonationRepository, campaignRepo CampaignRepository, ngoRepo NGORepository) *LedgerService {
	return &LedgerService{
		repo:         repo,
		campaignRepo: campaignRepo,
		ngoRepo:      ngoRepo,
	}
}

// ListTransactions returns at most limit settlement transactions,
// newest-first by insertion order, joined with donation, campaign and
// NGO context. Join misses leave the context fields unset.
func (s *LedgerService) ListTransactions(ctx context.Context, limit int) ([]domain.LedgerRow, error) {
	txs, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListTransactions -> %w", err)
	}

	// Keep the last N by insertion order, then present newest-first.
	if limit > 0 && len(txs) > limit {
		txs = txs[len(txs)-limit:]
	}

	donations, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}
	donationByID := make(map[domain.DonationID]domain.Donation, len(donations))
	for _, d := range donations {
		donationByID[d.ID] = d
	}

	campaignByID, err := s.campaignsByID(ctx)
	if err != nil {
		return nil, err
	}

	ngoByID, err := s.ngosByID(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.LedgerRow, 0, len(txs))
	for i := len(txs) - 1; i >= 0; i-- {
		row := domain.LedgerRow{Transaction: txs[i]}

		if d, ok := donationByID[txs[i].DonationID]; ok {
			amount := d.AmountINR
			row.AmountINR = &amount

			if c, ok := campaignByID[d.CampaignID]; ok {
				row.CampaignTitle = c.Title
				row.CampaignDomain = c.Domain

				if n, ok := ngoByID[c.NGOID]; ok {
					row.NGOName = n.Name
				}
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// Leaderboard awards each NGO floor(total donated / 100) eco points
// accumulated across its campaigns, descending. NGOs without a single
// point stay off the board.
func (s *LedgerService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	sums, err := s.repo.SumAmountByCampaign(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.SumAmountByCampaign -> %w", err)
	}

	campaignByID, err := s.campaignsByID(ctx)
	if err != nil {
		return nil, err
	}

	ngoByID, err := s.ngosByID(ctx)
	if err != nil {
		return nil, err
	}

	points := make(map[domain.NGOID]int64)
	var order []domain.NGOID
	for campaignID, total := range sums {
		campaign, ok := campaignByID[campaignID]
		if !ok {
			continue
		}

		if _, seen := points[campaign.NGOID]; !seen {
			order = append(order, campaign.NGOID)
		}
		points[campaign.NGOID] += total / 100
	}

	entries := make([]domain.LeaderboardEntry, 0, len(order))
	for _, ngoID := range order {
		if points[ngoID] < 1 {
			continue
		}

		name := unknownNGOName
		if ngo, ok := ngoByID[ngoID]; ok {
			name = ngo.Name
		}

		entries = append(entries, domain.LeaderboardEntry{
			Entity:    name,
			EcoPoints: points[ngoID],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].EcoPoints > entries[j].EcoPoints
	})

	return entries, nil
}

func (s *LedgerService) campaignsByID(ctx context.Context) (map[domain.CampaignID]domain.Campaign, error) {
	campaigns, err := s.campaignRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("s.campaignRepo.List -> %w", err)
	}

	byID := make(map[domain.CampaignID]domain.Campaign, len(campaigns))
	for _, c := range campaigns {
		byID[c.ID] = c
	}

	return byID, nil
}

func (s *LedgerService) ngosByID(ctx context.Context) (map[domain.NGOID]domain.NGO, error) {
	ngos, err := s.ngoRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.ngoRepo.List -> %w", err)
	}

	byID := make(map[domain.NGOID]domain.NGO, len(ngos))
	for _, n := range ngos {
		byID[n.ID] = n
	}

	return byID, nil
}
