package domain

import (
	"time"
)

type Receipt struct {
	ID           ReceiptID
	DonationID   DonationID
	ReceiptNFTID string
	IssuedAt     time.Time
}
