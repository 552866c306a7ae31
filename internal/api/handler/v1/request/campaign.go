package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateCampaignRequest struct {
	Title       string   `json:"title" binding:"required"`
	NGOID       string   `json:"ngo_id" binding:"required"`
	Domain      string   `json:"domain" binding:"required"`
	GoalINR     int64    `json:"goal_inr" binding:"required,min=1"`
	Description string   `json:"description"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Milestones  []string `json:"milestones"`
}

func (req *CreateCampaignRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.NGOID, validation.Required),
		validation.Field(&req.Domain, validation.Required, validation.In("Air", "Water", "Waste")),
		validation.Field(&req.GoalINR, validation.Required, validation.Min(1)),
		validation.Field(&req.Description, validation.Length(0, 1000)),
	)
}
