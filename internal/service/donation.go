package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/paryavaran-sahyog/donation-api/internal/domain"
	"github.com/paryavaran-sahyog/donation-api/internal/repository"
)

var (
	// ErrInvalidCampaignID marks a campaign_id string that is not a
	// well-formed identifier.
	ErrInvalidCampaignID = domain.ErrMalformedID
	ErrCampaignNotFound  = repository.ErrCampaignNotFound
)

const donationConfirmation = "Donation recorded with on-chain receipt"

type DonationRepository interface {
	Create(ctx context.Context, donation domain.Donation) (domain.Donation, error)
	List(ctx context.Context) ([]domain.Donation, error)
	CreateTransaction(ctx context.Context, tx domain.Transaction) (domain.Transaction, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	CreateReceipt(ctx context.Context, receipt domain.Receipt) (domain.Receipt, error)
	SumAmountByCampaign(ctx context.Context) (map[domain.CampaignID]int64, error)
}

type DonationService struct {
	repo         DonationRepository
	campaignRepo CampaignRepository
}

func NewDonationService(repo DonationRepository, campaignRepo CampaignRepository) *DonationService {
	return &DonationService{
		repo:         repo,
		campaignRepo: campaignRepo,
	}
}

// RecordDonation runs the donation workflow: resolve the campaign
// reference, persist the donation, bump the campaign's raised total,
// fabricate a settlement transaction and issue a receipt.
//
// Only the reference check can fail with a caller-visible error. The
// four writes after it are independent statements with no surrounding
// transaction and no compensation; a failure partway through leaves the
// earlier writes in place.
func (s *DonationService) RecordDonation(ctx context.Context, req domain.DonationRequest) (domain.DonationConfirmation, error) {
	campaignID, err := domain.ParseCampaignID(req.CampaignID)
	if err != nil {
		return domain.DonationConfirmation{}, err
	}

	if _, err = s.campaignRepo.FindByID(ctx, campaignID); err != nil {
		if errors.Is(err, ErrCampaignNotFound) {
			return domain.DonationConfirmation{}, ErrCampaignNotFound
		}

		return domain.DonationConfirmation{}, fmt.Errorf("s.campaignRepo.FindByID -> %w", err)
	}

	donation, err := s.repo.Create(ctx, domain.Donation{
		CampaignID:    campaignID,
		DonorName:     req.DonorName,
		AmountINR:     req.AmountINR,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return domain.DonationConfirmation{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	if err = s.campaignRepo.IncrementRaised(ctx, campaignID, req.AmountINR); err != nil {
		return domain.DonationConfirmation{}, fmt.Errorf("s.campaignRepo.IncrementRaised -> %w", err)
	}

	tx, err := s.repo.CreateTransaction(ctx, domain.Transaction{
		DonationID: donation.ID,
		TxHash:     fabricateTxHash(),
		Status:     domain.StatusSettled,
	})
	if err != nil {
		return domain.DonationConfirmation{}, fmt.Errorf("s.repo.CreateTransaction -> %w", err)
	}

	receipt, err := s.repo.CreateReceipt(ctx, domain.Receipt{
		DonationID:   donation.ID,
		ReceiptNFTID: "nft-" + donation.ID.String(),
		IssuedAt:     time.Now(),
	})
	if err != nil {
		return domain.DonationConfirmation{}, fmt.Errorf("s.repo.CreateReceipt -> %w", err)
	}

	return domain.DonationConfirmation{
		DonationID: donation.ID,
		TxHash:     tx.TxHash,
		ReceiptID:  receipt.ID,
		Message:    donationConfirmation,
	}, nil
}

func (s *DonationService) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	donations, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return donations, nil
}

// fabricateTxHash simulates an on-chain settlement hash: "0x" plus 24
// hex chars. Random, never verified against any ledger.
func fabricateTxHash() string {
	u := uuid.New()

	return "0x" + hex.EncodeToString(u[:12])
}
