package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paryavaran-sahyog/donation-api/internal/api/handler/v1/response"
)

type SeedService interface {
	Seed(ctx context.Context) error
}

type SeedHandler struct {
	svc SeedService
}

func NewSeedHandler(svc SeedService) *SeedHandler {
	return &SeedHandler{
		svc: svc,
	}
}

// HandleSeed godoc
// @Summary      Seed demo data
// @Description  Inserts demo NGOs and campaigns. Does nothing when NGOs already exist.
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  response.Err
// @Router       /seed [post]
func (h *SeedHandler) HandleSeed(ctx *gin.Context) {
	if err := h.svc.Seed(ctx.Request.Context()); err != nil {
		err = fmt.Errorf("v1.HandleSeed -> h.svc.Seed -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
