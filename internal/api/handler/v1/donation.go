package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paryavaran-sahyog/donation-api/internal/api/handler/v1/request"
	"github.com/paryavaran-sahyog/donation-api/internal/api/handler/v1/response"
	"github.com/paryavaran-sahyog/donation-api/internal/domain"
	"github.com/paryavaran-sahyog/donation-api/internal/service"
)

type DonationService interface {
	RecordDonation(ctx context.Context, req domain.DonationRequest) (domain.DonationConfirmation, error)
	ListDonations(ctx context.Context) ([]domain.Donation, error)
}

type DonationHandler struct {
	svc DonationService
}

func NewDonationHandler(svc DonationService) *DonationHandler {
	return &DonationHandler{
		svc: svc,
	}
}

// HandleListDonations godoc
// @Summary      List all donations
// @Tags         donations
// @Produce      json
// @Success      200  {array}   response.Donation
// @Failure      500  {object}  response.Err
// @Router       /donations [get]
func (h *DonationHandler) HandleListDonations(ctx *gin.Context) {
	donations, err := h.svc.ListDonations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListDonations -> h.svc.ListDonations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewDonations(donations))
}

// HandleCreateDonation godoc
// @Summary      Record a donation
// @Description  Records a donation against a campaign, updates the campaign's raised total and issues a settlement transaction plus receipt.
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateDonationRequest  true  "Donation fields"
// @Success      200      {object}  response.DonationConfirmation
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /donations [post]
func (h *DonationHandler) HandleCreateDonation(ctx *gin.Context) {
	var req request.CreateDonationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	confirmation, err := h.svc.RecordDonation(ctx.Request.Context(), domain.DonationRequest{
		CampaignID:    req.CampaignID,
		DonorName:     req.DonorName,
		AmountINR:     req.AmountINR,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCampaignID) {
			response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid campaign id")))

			return
		}
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", "id", req.CampaignID))

			return
		}

		err = fmt.Errorf("v1.HandleCreateDonation -> h.svc.RecordDonation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewDonationConfirmation(confirmation))
}
