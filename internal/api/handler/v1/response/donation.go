package response

import (
	"time"

	"github.com/paryavaran-sahyog/donation-api/internal/domain"
)

type Donation struct {
	ID            string    `json:"_id"`
	CampaignID    string    `json:"campaign_id"`
	DonorName     string    `json:"donor_name,omitempty"`
	AmountINR     int64     `json:"amount_inr"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewDonations(donations []domain.Donation) []Donation {
	out := make([]Donation, len(donations))
	for i, d := range donations {
		out[i] = Donation{
			ID:            d.ID.String(),
			CampaignID:    d.CampaignID.String(),
			DonorName:     d.DonorName,
			AmountINR:     d.AmountINR,
			PaymentMethod: d.PaymentMethod,
			CreatedAt:     d.CreatedAt,
		}
	}

	return out
}

type DonationConfirmation struct {
	DonationID string `json:"donation_id"`
	TxHash     string `json:"tx_hash"`
	ReceiptID  string `json:"receipt_id"`
	Message    string `json:"message"`
}

func NewDonationConfirmation(c domain.DonationConfirmation) DonationConfirmation {
	return DonationConfirmation{
		DonationID: c.DonationID.String(),
		TxHash:     c.TxHash,
		ReceiptID:  c.ReceiptID.String(),
		Message:    c.Message,
	}
}
