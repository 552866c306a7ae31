package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Donation struct {
	ID uint `gorm:"primaryKey"`

	// Reference into the campaigns table. Checked by the workflow at
	// creation time only.
	CampaignID    uint   `gorm:"not null;index"`
	DonorName     string
	AmountINR     int64  `gorm:"not null;check:amount_inr >= 1"`
	PaymentMethod string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

// CampaignDonationSum is one row of the grouped donation aggregation.
type CampaignDonationSum struct {
	CampaignID uint
	Total      int64
}

// DonationDAO owns the three collections written by the donation
// workflow: donations plus their paired transactions and receipts.
type DonationDAO struct {
	db *gorm.DB
}

func NewDonationDAO(db *gorm.DB) *DonationDAO {
	return &DonationDAO{
		db: db,
	}
}

func (d *DonationDAO) Insert(ctx context.Context, donation Donation) (Donation, error) {
	result := d.db.WithContext(ctx).Create(&donation)
	if result.Error != nil {
		return Donation{}, result.Error
	}

	return donation, nil
}

func (d *DonationDAO) List(ctx context.Context) ([]Donation, error) {
	var donations []Donation
	result := d.db.WithContext(ctx).Order("id").Find(&donations)
	if result.Error != nil {
		return nil, result.Error
	}

	return donations, nil
}

func (d *DonationDAO) InsertTransaction(ctx context.Context, tx Transaction) (Transaction, error) {
	result := d.db.WithContext(ctx).Create(&tx)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.Message, "idx_transactions_donation_id") {
			return Transaction{}, ErrTransactionExists
		}

		return Transaction{}, result.Error
	}

	return tx, nil
}

func (d *DonationDAO) ListTransactions(ctx context.Context) ([]Transaction, error) {
	var txs []Transaction
	result := d.db.WithContext(ctx).Order("id").Find(&txs)
	if result.Error != nil {
		return nil, result.Error
	}

	return txs, nil
}

func (d *DonationDAO) InsertReceipt(ctx context.Context, receipt Receipt) (Receipt, error) {
	result := d.db.WithContext(ctx).Create(&receipt)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.Message, "idx_receipts_donation_id") {
			return Receipt{}, ErrReceiptExists
		}

		return Receipt{}, result.Error
	}

	return receipt, nil
}

// SumAmountByCampaign groups all donations by campaign and sums their
// amounts, feeding the leaderboard rollup.
func (d *DonationDAO) SumAmountByCampaign(ctx context.Context) ([]CampaignDonationSum, error) {
	var sums []CampaignDonationSum
	result := d.db.WithContext(ctx).Model(&Donation{}).
		Select("campaign_id, SUM(amount_inr) AS total").
		Group("campaign_id").
		Scan(&sums)
	if result.Error != nil {
		return nil, result.Error
	}

	return sums, nil
}
