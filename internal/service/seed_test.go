package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paryavaran-sahyog/donation-api/internal/domain"
)

func TestSeed(t *testing.T) {
	t.Run("inserts demo NGOs and campaigns into an empty store", func(t *testing.T) {
		ctx := context.Background()
		ngoRepo := newMemNGORepo()
		campaignRepo := newMemCampaignRepo()
		svc := NewSeedService(ngoRepo, campaignRepo)

		require.NoError(t, svc.Seed(ctx))

		ngos, err := ngoRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, ngos, 3)
		assert.Equal(t, "Aranya Eco Foundation", ngos[0].Name)
		assert.Equal(t, "KA-REG-001", ngos[0].RegistrationID)
		assert.True(t, ngos[0].Verified)

		campaigns, err := campaignRepo.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, campaigns, 3)
		assert.Equal(t, int64(500000), campaigns[0].GoalINR)
		assert.Equal(t, int64(800000), campaigns[1].GoalINR)
		assert.Equal(t, int64(300000), campaigns[2].GoalINR)

		// Each campaign references the NGO created alongside it.
		for i, c := range campaigns {
			assert.Equal(t, ngos[i].ID, c.NGOID)
			assert.Zero(t, c.RaisedINR)
		}
	})

	t.Run("does nothing when NGOs already exist", func(t *testing.T) {
		ctx := context.Background()
		ngoRepo := newMemNGORepo()
		campaignRepo := newMemCampaignRepo()

		_, err := ngoRepo.Create(ctx, domain.NGO{
			Name:           "Existing NGO",
			RegistrationID: "KA-REG-999",
			Category:       domain.CategoryMulti,
		})
		require.NoError(t, err)

		svc := NewSeedService(ngoRepo, campaignRepo)
		require.NoError(t, svc.Seed(ctx))
		require.NoError(t, svc.Seed(ctx))

		ngos, err := ngoRepo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, ngos, 1)

		campaigns, err := campaignRepo.List(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, campaigns)
	})
}
