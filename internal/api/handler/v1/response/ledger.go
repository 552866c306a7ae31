package response

import (
	"time"

	"github.com/paryavaran-sahyog/donation-api/internal/domain"
)

type LedgerRow struct {
	ID            string    `json:"_id"`
	DonationID    string    `json:"donation_id"`
	TxHash        string    `json:"tx_hash"`
	Status        string    `json:"status"`
	AmountINR     *int64    `json:"amount_inr,omitempty"`
	CampaignTitle string    `json:"campaign_title,omitempty"`
	Domain        string    `json:"domain,omitempty"`
	NGOName       string    `json:"ngo_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewLedgerRows(rows []domain.LedgerRow) []LedgerRow {
	out := make([]LedgerRow, len(rows))
	for i, r := range rows {
		out[i] = LedgerRow{
			ID:            r.ID.String(),
			DonationID:    r.DonationID.String(),
			TxHash:        r.TxHash,
			Status:        string(r.Status),
			AmountINR:     r.AmountINR,
			CampaignTitle: r.CampaignTitle,
			Domain:        string(r.CampaignDomain),
			NGOName:       r.NGOName,
			CreatedAt:     r.CreatedAt,
		}
	}

	return out
}

type LeaderboardEntry struct {
	Entity    string `json:"entity"`
	EcoPoints int64  `json:"eco_points"`
}

func NewLeaderboard(entries []domain.LeaderboardEntry) []LeaderboardEntry {
	out := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntry{
			Entity:    e.Entity,
			EcoPoints: e.EcoPoints,
		}
	}

	return out
}
