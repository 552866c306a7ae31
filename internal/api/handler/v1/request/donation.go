package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateDonationRequest struct {
	CampaignID    string `json:"campaign_id" binding:"required"`
	DonorName     string `json:"donor_name"`
	AmountINR     int64  `json:"amount_inr" binding:"required,min=1"`
	PaymentMethod string `json:"payment_method" binding:"required"` // "upi", "crypto", "card" or "other"
}

func (req *CreateDonationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CampaignID, validation.Required),
		validation.Field(&req.DonorName, validation.Length(0, 100)),
		validation.Field(&req.AmountINR, validation.Required, validation.Min(1)),
		validation.Field(&req.PaymentMethod, validation.Required, validation.Length(1, 50)),
	)
}
