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

type CampaignService interface {
	ListCampaigns(ctx context.Context, campaignDomain domain.CampaignDomain) ([]domain.CampaignListing, error)
	CreateCampaign(ctx context.Context, campaign domain.Campaign, rawNGOID string) (domain.Campaign, error)
}

type CampaignHandler struct {
	svc CampaignService
}

func NewCampaignHandler(svc CampaignService) *CampaignHandler {
	return &CampaignHandler{
		svc: svc,
	}
}

// HandleListCampaigns godoc
// @Summary      List campaigns
// @Description  Lists campaigns, optionally filtered by domain, each with its NGO's name attached when resolvable.
// @Tags         campaigns
// @Produce      json
// @Param        domain  query     string  false  "Air | Water | Waste"
// @Success      200     {array}   response.Campaign
// @Failure      500     {object}  response.Err
// @Router       /campaigns [get]
func (h *CampaignHandler) HandleListCampaigns(ctx *gin.Context) {
	campaignDomain := domain.CampaignDomain(ctx.Query("domain"))

	listings, err := h.svc.ListCampaigns(ctx.Request.Context(), campaignDomain)
	if err != nil {
		err = fmt.Errorf("v1.HandleListCampaigns -> h.svc.ListCampaigns -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewCampaignListings(listings))
}

// HandleCreateCampaign godoc
// @Summary      Create a campaign
// @Description  Creates a campaign. ngo_id must reference an existing NGO.
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateCampaignRequest  true  "Campaign fields"
// @Success      201      {object}  response.Created
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /campaigns [post]
func (h *CampaignHandler) HandleCreateCampaign(ctx *gin.Context) {
	var req request.CreateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateCampaign(ctx.Request.Context(), domain.Campaign{
		Title:       req.Title,
		Domain:      domain.CampaignDomain(req.Domain),
		GoalINR:     req.GoalINR,
		Description: req.Description,
		City:        req.City,
		State:       req.State,
		Milestones:  req.Milestones,
	}, req.NGOID)
	if err != nil {
		// Both a malformed and an unresolvable ngo_id are bad requests.
		if errors.Is(err, service.ErrInvalidNGOID) || errors.Is(err, service.ErrNGONotFound) {
			response.RenderErr(ctx, response.ErrBadRequest(errors.New("NGO not found")))

			return
		}

		err = fmt.Errorf("v1.HandleCreateCampaign -> h.svc.CreateCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.Created{ID: created.ID.String()})
}
