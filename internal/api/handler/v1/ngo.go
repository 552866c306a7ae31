package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paryavaran-sahyog/donation-api/internal/api/handler/v1/request"
	"github.com/paryavaran-sahyog/donation-api/internal/api/handler/v1/response"
	"github.com/paryavaran-sahyog/donation-api/internal/domain"
)

type NGOService interface {
	ListNGOs(ctx context.Context) ([]domain.NGO, error)
	CreateNGO(ctx context.Context, ngo domain.NGO) (domain.NGO, error)
}

type NGOHandler struct {
	svc NGOService
}

func NewNGOHandler(svc NGOService) *NGOHandler {
	return &NGOHandler{
		svc: svc,
	}
}

// HandleListNGOs godoc
// @Summary      List all NGOs
// @Tags         ngos
// @Produce      json
// @Success      200  {array}   response.NGO
// @Failure      500  {object}  response.Err
// @Router       /ngos [get]
func (h *NGOHandler) HandleListNGOs(ctx *gin.Context) {
	ngos, err := h.svc.ListNGOs(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListNGOs -> h.svc.ListNGOs -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewNGOs(ngos))
}

// HandleCreateNGO godoc
// @Summary      Register an NGO
// @Tags         ngos
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateNGORequest  true  "NGO fields"
// @Success      201      {object}  response.Created
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /ngos [post]
func (h *NGOHandler) HandleCreateNGO(ctx *gin.Context) {
	var req request.CreateNGORequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateNGO(ctx.Request.Context(), domain.NGO{
		Name:           req.Name,
		RegistrationID: req.RegistrationID,
		Category:       domain.NGOCategory(req.Category),
		City:           req.City,
		State:          req.State,
		Verified:       req.Verified,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateNGO -> h.svc.CreateNGO -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.Created{ID: created.ID.String()})
}
