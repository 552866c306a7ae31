package domain

import (
	"time"
)

type Donation struct {
	ID            DonationID
	CampaignID    CampaignID
	DonorName     string
	AmountINR     int64
	PaymentMethod string
	CreatedAt     time.Time
}

// DonationRequest is the workflow input. CampaignID is the raw caller
// string, parsed and resolved by the workflow itself.
type DonationRequest struct {
	CampaignID    string
	DonorName     string
	AmountINR     int64
	PaymentMethod string
}

type DonationConfirmation struct {
	DonationID DonationID
	TxHash     string
	ReceiptID  ReceiptID
	Message    string
}
