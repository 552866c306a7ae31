package repository

import (
	"context"
	"fmt"

	"github.com/paryavaran-sahyog/donation-api/internal/domain"
	"github.com/paryavaran-sahyog/donation-api/internal/repository/dao"
)

var (
	ErrTransactionExists = dao.ErrTransactionExists
	ErrReceiptExists     = dao.ErrReceiptExists
)

type DonationDAO interface {
	Insert(ctx context.Context, donation dao.Donation) (dao.Donation, error)
	List(ctx context.Context) ([]dao.Donation, error)
	InsertTransaction(ctx context.Context, tx dao.Transaction) (dao.Transaction, error)
	ListTransactions(ctx context.Context) ([]dao.Transaction, error)
	InsertReceipt(ctx context.Context, receipt dao.Receipt) (dao.Receipt, error)
	SumAmountByCampaign(ctx context.Context) ([]dao.CampaignDonationSum, error)
}

type DonationRepository struct {
	dao DonationDAO
}

func NewDonationRepository(dao DonationDAO) *DonationRepository {
	return &DonationRepository{
		dao: dao,
	}
}

func (r *DonationRepository) donationDaoToDomain(d dao.Donation) domain.Donation {
	return domain.Donation{
		ID:            domain.DonationID(d.ID),
		CampaignID:    domain.CampaignID(d.CampaignID),
		DonorName:     d.DonorName,
		AmountINR:     d.AmountINR,
		PaymentMethod: d.PaymentMethod,
		CreatedAt:     d.CreatedAt,
	}
}

func (r *DonationRepository) transactionDaoToDomain(t dao.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:         domain.TransactionID(t.ID),
		DonationID: domain.DonationID(t.DonationID),
		TxHash:     t.TxHash,
		Status:     domain.TransactionStatus(t.Status),
		CreatedAt:  t.CreatedAt,
	}
}

func (r *DonationRepository) receiptDaoToDomain(rc dao.Receipt) domain.Receipt {
	return domain.Receipt{
		ID:           domain.ReceiptID(rc.ID),
		DonationID:   domain.DonationID(rc.DonationID),
		ReceiptNFTID: rc.ReceiptNFTID,
		IssuedAt:     rc.IssuedAt,
	}
}

func (r *DonationRepository) Create(ctx context.Context, donation domain.Donation) (domain.Donation, error) {
	created, err := r.dao.Insert(ctx, dao.Donation{
		CampaignID:    uint(donation.CampaignID),
		DonorName:     donation.DonorName,
		AmountINR:     donation.AmountINR,
		PaymentMethod: donation.PaymentMethod,
	})
	if err != nil {
		return domain.Donation{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.donationDaoToDomain(created), nil
}

func (r *DonationRepository) List(ctx context.Context) ([]domain.Donation, error) {
	donations, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	out := make([]domain.Donation, len(donations))
	for i, d := range donations {
		out[i] = r.donationDaoToDomain(d)
	}

	return out, nil
}

func (r *DonationRepository) CreateTransaction(ctx context.Context, tx domain.Transaction) (domain.Transaction, error) {
	created, err := r.dao.InsertTransaction(ctx, dao.Transaction{
		DonationID: uint(tx.DonationID),
		TxHash:     tx.TxHash,
		Status:     string(tx.Status),
	})
	if err != nil {
		return domain.Transaction{}, err
	}

	return r.transactionDaoToDomain(created), nil
}

func (r *DonationRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txs, err := r.dao.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListTransactions -> %w", err)
	}

	out := make([]domain.Transaction, len(txs))
	for i, t := range txs {
		out[i] = r.transactionDaoToDomain(t)
	}

	return out, nil
}

func (r *DonationRepository) CreateReceipt(ctx context.Context, receipt domain.Receipt) (domain.Receipt, error) {
	created, err := r.dao.InsertReceipt(ctx, dao.Receipt{
		DonationID:   uint(receipt.DonationID),
		ReceiptNFTID: receipt.ReceiptNFTID,
		IssuedAt:     receipt.IssuedAt,
	})
	if err != nil {
		return domain.Receipt{}, err
	}

	return r.receiptDaoToDomain(created), nil
}

// SumAmountByCampaign returns total donated amount per campaign.
func (r *DonationRepository) SumAmountByCampaign(ctx context.Context) (map[domain.CampaignID]int64, error) {
	sums, err := r.dao.SumAmountByCampaign(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.SumAmountByCampaign -> %w", err)
	}

	out := make(map[domain.CampaignID]int64, len(sums))
	for _, s := range sums {
		out[domain.CampaignID(s.CampaignID)] = s.Total
	}

	return out, nil
}
