package domain

// LedgerRow is a settlement transaction with donation, campaign and NGO
// context joined on. Optional fields stay zero-valued when a reference
// along the Donation -> Campaign -> NGO chain fails to resolve.
type LedgerRow struct {
	Transaction
	AmountINR      *int64
	CampaignTitle  string
	CampaignDomain CampaignDomain
	NGOName        string
}

// LeaderboardEntry awards an NGO one eco point per 100 INR donated
// across all of its campaigns.
type LeaderboardEntry struct {
	Entity    string
	EcoPoints int64
}
