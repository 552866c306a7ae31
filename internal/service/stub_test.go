package service

import (
	"context"
	"time"

	"github.com/paryavaran-sahyog/donation-api/internal/domain"
	"github.com/paryavaran-sahyog/donation-api/internal/repository"
)

// In-memory repositories backing the service tests.

type memNGORepo struct {
	ngos   []domain.NGO
	nextID uint
}

func newMemNGORepo() *memNGORepo {
	return &memNGORepo{nextID: 1}
}

func (r *memNGORepo) Create(_ context.Context, ngo domain.NGO) (domain.NGO, error) {
	ngo.ID = domain.NGOID(r.nextID)
	ngo.CreatedAt = time.Now()
	ngo.UpdatedAt = ngo.CreatedAt
	r.nextID++
	r.ngos = append(r.ngos, ngo)

	return ngo, nil
}

func (r *memNGORepo) FindByID(_ context.Context, id domain.NGOID) (domain.NGO, error) {
	for _, n := range r.ngos {
		if n.ID == id {
			return n, nil
		}
	}

	return domain.NGO{}, repository.ErrNGONotFound
}

func (r *memNGORepo) List(_ context.Context) ([]domain.NGO, error) {
	return r.ngos, nil
}

func (r *memNGORepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.ngos)), nil
}

type memCampaignRepo struct {
	campaigns []domain.Campaign
	nextID    uint
}

func newMemCampaignRepo() *memCampaignRepo {
	return &memCampaignRepo{nextID: 1}
}

func (r *memCampaignRepo) Create(_ context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	campaign.ID = domain.CampaignID(r.nextID)
	campaign.CreatedAt = time.Now()
	campaign.UpdatedAt = campaign.CreatedAt
	r.nextID++
	r.campaigns = append(r.campaigns, campaign)

	return campaign, nil
}

func (r *memCampaignRepo) FindByID(_ context.Context, id domain.CampaignID) (domain.Campaign, error) {
	for _, c := range r.campaigns {
		if c.ID == id {
			return c, nil
		}
	}

	return domain.Campaign{}, repository.ErrCampaignNotFound
}

func (r *memCampaignRepo) List(_ context.Context, campaignDomain domain.CampaignDomain) ([]domain.Campaign, error) {
	if campaignDomain == "" {
		return r.campaigns, nil
	}

	var out []domain.Campaign
	for _, c := range r.campaigns {
		if c.Domain == campaignDomain {
			out = append(out, c)
		}
	}

	return out, nil
}

func (r *memCampaignRepo) IncrementRaised(_ context.Context, id domain.CampaignID, amount int64) error {
	for i := range r.campaigns {
		if r.campaigns[i].ID == id {
			r.campaigns[i].RaisedINR += amount
			r.campaigns[i].UpdatedAt = time.Now()

			return nil
		}
	}

	return repository.ErrCampaignNotFound
}

type memDonationRepo struct {
	donations []domain.Donation
	txs       []domain.Transaction
	receipts  []domain.Receipt
	nextID    uint
}

func newMemDonationRepo() *memDonationRepo {
	return &memDonationRepo{nextID: 1}
}

func (r *memDonationRepo) Create(_ context.Context, donation domain.Donation) (domain.Donation, error) {
	donation.ID = domain.DonationID(r.nextID)
	donation.CreatedAt = time.Now()
	r.nextID++
	r.donations = append(r.donations, donation)

	return donation, nil
}

func (r *memDonationRepo) List(_ context.Context) ([]domain.Donation, error) {
	return r.donations, nil
}

func (r *memDonationRepo) CreateTransaction(_ context.Context, tx domain.Transaction) (domain.Transaction, error) {
	tx.ID = domain.TransactionID(len(r.txs) + 1)
	tx.CreatedAt = time.Now()
	r.txs = append(r.txs, tx)

	return tx, nil
}

func (r *memDonationRepo) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	return r.txs, nil
}

func (r *memDonationRepo) CreateReceipt(_ context.Context, receipt domain.Receipt) (domain.Receipt, error) {
	receipt.ID = domain.ReceiptID(len(r.receipts) + 1)
	r.receipts = append(r.receipts, receipt)

	return receipt, nil
}

func (r *memDonationRepo) SumAmountByCampaign(_ context.Context) (map[domain.CampaignID]int64, error) {
	sums := make(map[domain.CampaignID]int64)
	for _, d := range r.donations {
		sums[d.CampaignID] += d.AmountINR
	}

	return sums, nil
}
