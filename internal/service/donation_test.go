package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paryavaran-sahyog/donation-api/internal/domain"
)

func seedCampaign(t *testing.T, campaignRepo *memCampaignRepo, goal int64) domain.Campaign {
	t.Helper()

	campaign, err := campaignRepo.Create(context.Background(), domain.Campaign{
		Title:   "Air: Urban Tree Plantation",
		NGOID:   1,
		Domain:  domain.DomainAir,
		GoalINR: goal,
	})
	require.NoError(t, err)

	return campaign
}

func TestRecordDonation(t *testing.T) {
	t.Run("increments the campaign's raised total by the donated amount", func(t *testing.T) {
		donationRepo := newMemDonationRepo()
		campaignRepo := newMemCampaignRepo()
		campaign := seedCampaign(t, campaignRepo, 500000)
		svc := NewDonationService(donationRepo, campaignRepo)

		_, err := svc.RecordDonation(context.Background(), domain.DonationRequest{
			CampaignID:    campaign.ID.String(),
			DonorName:     "Asha",
			AmountINR:     1000,
			PaymentMethod: "upi",
		})
		require.NoError(t, err)

		updated, err := campaignRepo.FindByID(context.Background(), campaign.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), updated.RaisedINR)
	})

	t.Run("creates exactly one donation, transaction and receipt, linked by id", func(t *testing.T) {
		donationRepo := newMemDonationRepo()
		campaignRepo := newMemCampaignRepo()
		campaign := seedCampaign(t, campaignRepo, 500000)
		svc := NewDonationService(donationRepo, campaignRepo)

		confirmation, err := svc.RecordDonation(context.Background(), domain.DonationRequest{
			CampaignID:    campaign.ID.String(),
			AmountINR:     250,
			PaymentMethod: "card",
		})
		require.NoError(t, err)

		require.Len(t, donationRepo.donations, 1)
		require.Len(t, donationRepo.txs, 1)
		require.Len(t, donationRepo.receipts, 1)

		donation := donationRepo.donations[0]
		assert.Equal(t, confirmation.DonationID, donation.ID)
		assert.Equal(t, donation.ID, donationRepo.txs[0].DonationID)
		assert.Equal(t, donation.ID, donationRepo.receipts[0].DonationID)

		assert.Equal(t, domain.StatusSettled, donationRepo.txs[0].Status)
		assert.Regexp(t, `^0x[0-9a-f]{24}$`, confirmation.TxHash)
		assert.Equal(t, "nft-"+donation.ID.String(), donationRepo.receipts[0].ReceiptNFTID)
		assert.False(t, donationRepo.receipts[0].IssuedAt.IsZero())
		assert.Equal(t, "Donation recorded with on-chain receipt", confirmation.Message)
	})

	t.Run("rejects a malformed campaign id without side effects", func(t *testing.T) {
		donationRepo := newMemDonationRepo()
		campaignRepo := newMemCampaignRepo()
		campaign := seedCampaign(t, campaignRepo, 500000)
		svc := NewDonationService(donationRepo, campaignRepo)

		_, err := svc.RecordDonation(context.Background(), domain.DonationRequest{
			CampaignID:    "not-an-id",
			AmountINR:     1000,
			PaymentMethod: "upi",
		})
		require.ErrorIs(t, err, ErrInvalidCampaignID)

		assert.Empty(t, donationRepo.donations)
		assert.Empty(t, donationRepo.txs)
		assert.Empty(t, donationRepo.receipts)

		unchanged, err := campaignRepo.FindByID(context.Background(), campaign.ID)
		require.NoError(t, err)
		assert.Zero(t, unchanged.RaisedINR)
	})

	t.Run("rejects a well-formed id naming no campaign without side effects", func(t *testing.T) {
		donationRepo := newMemDonationRepo()
		campaignRepo := newMemCampaignRepo()
		seedCampaign(t, campaignRepo, 500000)
		svc := NewDonationService(donationRepo, campaignRepo)

		_, err := svc.RecordDonation(context.Background(), domain.DonationRequest{
			CampaignID:    "999",
			AmountINR:     1000,
			PaymentMethod: "upi",
		})
		require.ErrorIs(t, err, ErrCampaignNotFound)

		assert.Empty(t, donationRepo.donations)
		assert.Empty(t, donationRepo.txs)
		assert.Empty(t, donationRepo.receipts)
	})

	t.Run("fabricates a fresh hash per donation", func(t *testing.T) {
		donationRepo := newMemDonationRepo()
		campaignRepo := newMemCampaignRepo()
		campaign := seedCampaign(t, campaignRepo, 500000)
		svc := NewDonationService(donationRepo, campaignRepo)

		first, err := svc.RecordDonation(context.Background(), domain.DonationRequest{
			CampaignID:    campaign.ID.String(),
			AmountINR:     100,
			PaymentMethod: "upi",
		})
		require.NoError(t, err)

		second, err := svc.RecordDonation(context.Background(), domain.DonationRequest{
			CampaignID:    campaign.ID.String(),
			AmountINR:     100,
			PaymentMethod: "upi",
		})
		require.NoError(t, err)

		assert.NotEqual(t, first.TxHash, second.TxHash)
	})
}

func TestListDonations(t *testing.T) {
	donationRepo := newMemDonationRepo()
	campaignRepo := newMemCampaignRepo()
	campaign := seedCampaign(t, campaignRepo, 500000)
	svc := NewDonationService(donationRepo, campaignRepo)

	for i := 0; i < 3; i++ {
		_, err := svc.RecordDonation(context.Background(), domain.DonationRequest{
			CampaignID:    campaign.ID.String(),
			AmountINR:     100,
			PaymentMethod: "upi",
		})
		require.NoError(t, err)
	}

	donations, err := svc.ListDonations(context.Background())
	require.NoError(t, err)
	assert.Len(t, donations, 3)
}
