package dao

import (
	"errors"
	"time"
)

var ErrTransactionExists = errors.New("transaction already issued for donation")

const (
	TransactionSettled = "Settled"
	TransactionEscrow  = "Escrow"
	TransactionPending = "Pending"
)

type Transaction struct {
	ID uint `gorm:"primaryKey"`

	// One settlement transaction per donation.
	DonationID uint   `gorm:"not null;uniqueIndex"`
	TxHash     string `gorm:"not null"`
	Status     string `gorm:"not null;default:'Settled'"`

	CreatedAt time.Time `gorm:"not null"`
}
