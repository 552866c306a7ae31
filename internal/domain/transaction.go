package domain

import (
	"time"
)

type TransactionStatus string

const (
	StatusSettled TransactionStatus = "Settled"
	StatusEscrow  TransactionStatus = "Escrow"
	StatusPending TransactionStatus = "Pending"
)

// Transaction is a locally fabricated settlement record. The hash is
// pseudo-random and never verified against any chain.
type Transaction struct {
	ID         TransactionID
	DonationID DonationID
	TxHash     string
	Status     TransactionStatus
	CreatedAt  time.Time
}
