package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/paryavaran-sahyog/donation-api/internal/api/handler/v1/response"
	"github.com/paryavaran-sahyog/donation-api/internal/domain"
)

const defaultLedgerLimit = 50

type LedgerService interface {
	ListTransactions(ctx context.Context, limit int) ([]domain.LedgerRow, error)
	Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type LedgerHandler struct {
	svc LedgerService
}

func NewLedgerHandler(svc LedgerService) *LedgerHandler {
	return &LedgerHandler{
		svc: svc,
	}
}

// HandleListTransactions godoc
// @Summary      Settlement ledger
// @Description  Lists settlement transactions newest-first with donation, campaign and NGO context.
// @Tags         ledger
// @Produce      json
// @Param        limit  query     int  false  "max rows"  default(50)
// @Success      200    {array}   response.LedgerRow
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /transactions [get]
func (h *LedgerHandler) HandleListTransactions(ctx *gin.Context) {
	limit := defaultLedgerLimit
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid limit: %v", raw)))

			return
		}
		limit = parsed
	}

	rows, err := h.svc.ListTransactions(ctx.Request.Context(), limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleListTransactions -> h.svc.ListTransactions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewLedgerRows(rows))
}

// HandleLeaderboard godoc
// @Summary      NGO eco-point leaderboard
// @Description  Ranks NGOs by eco points, one point per 100 INR donated across their campaigns.
// @Tags         ledger
// @Produce      json
// @Success      200  {array}   response.LeaderboardEntry
// @Failure      500  {object}  response.Err
// @Router       /leaderboard [get]
func (h *LedgerHandler) HandleLeaderboard(ctx *gin.Context) {
	entries, err := h.svc.Leaderboard(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleLeaderboard -> h.svc.Leaderboard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewLeaderboard(entries))
}
