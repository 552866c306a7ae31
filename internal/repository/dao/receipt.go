package dao

import (
	"errors"
	"time"
)

var ErrReceiptExists = errors.New("receipt already issued for donation")

type Receipt struct {
	ID uint `gorm:"primaryKey"`

	// One receipt per donation.
	DonationID   uint `gorm:"not null;uniqueIndex"`
	ReceiptNFTID string
	IssuedAt     time.Time

	CreatedAt time.Time `gorm:"not null"`
}
