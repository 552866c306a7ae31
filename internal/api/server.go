package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/paryavaran-sahyog/donation-api/docs"
	v1 "github.com/paryavaran-sahyog/donation-api/internal/api/handler/v1"
	"github.com/paryavaran-sahyog/donation-api/internal/api/middleware"
	"github.com/paryavaran-sahyog/donation-api/internal/config"
	"github.com/paryavaran-sahyog/donation-api/internal/repository"
	"github.com/paryavaran-sahyog/donation-api/internal/repository/dao"
	"github.com/paryavaran-sahyog/donation-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	ngoHandler := s.initNGOHandler(db)
	campaignHandler := s.initCampaignHandler(db)
	donationHandler := s.initDonationHandler(db)
	ledgerHandler := s.initLedgerHandler(db)
	seedHandler := s.initSeedHandler(db)
	s.MountHandlers(ngoHandler, campaignHandler, donationHandler, ledgerHandler, seedHandler)

	return s
}

func (s *Server) initNGOHandler(db *gorm.DB) *v1.NGOHandler {
	repo := repository.NewNGORepository(dao.NewNGODAO(db))
	svc := service.NewNGOService(repo)

	return v1.NewNGOHandler(svc)
}

func (s *Server) initCampaignHandler(db *gorm.DB) *v1.CampaignHandler {
	repo := repository.NewCampaignRepository(dao.NewCampaignDAO(db))
	ngoRepo := repository.NewNGORepository(dao.NewNGODAO(db))
	svc := service.NewCampaignService(repo, ngoRepo)

	return v1.NewCampaignHandler(svc)
}

func (s *Server) initDonationHandler(db *gorm.DB) *v1.DonationHandler {
	repo := repository.NewDonationRepository(dao.NewDonationDAO(db))
	campaignRepo := repository.NewCampaignRepository(dao.NewCampaignDAO(db))
	svc := service.NewDonationService(repo, campaignRepo)

	return v1.NewDonationHandler(svc)
}

func (s *Server) initLedgerHandler(db *gorm.DB) *v1.LedgerHandler {
	repo := repository.NewDonationRepository(dao.NewDonationDAO(db))
	campaignRepo := repository.NewCampaignRepository(dao.NewCampaignDAO(db))
	ngoRepo := repository.NewNGORepository(dao.NewNGODAO(db))
	svc := service.NewLedgerService(repo, campaignRepo, ngoRepo)

	return v1.NewLedgerHandler(svc)
}

func (s *Server) initSeedHandler(db *gorm.DB) *v1.SeedHandler {
	ngoRepo := repository.NewNGORepository(dao.NewNGODAO(db))
	campaignRepo := repository.NewCampaignRepository(dao.NewCampaignDAO(db))
	svc := service.NewSeedService(ngoRepo, campaignRepo)

	return v1.NewSeedHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	ngoHandler *v1.NGOHandler,
	campaignHandler *v1.CampaignHandler,
	donationHandler *v1.DonationHandler,
	ledgerHandler *v1.LedgerHandler,
	seedHandler *v1.SeedHandler,
) {
	const basePath = "/api"

	api := s.Router.Group(basePath)
	{
		api.GET("/ngos", ngoHandler.HandleListNGOs)
		api.POST("/ngos", ngoHandler.HandleCreateNGO)
		api.GET("/campaigns", campaignHandler.HandleListCampaigns)
		api.POST("/campaigns", campaignHandler.HandleCreateCampaign)
		api.GET("/donations", donationHandler.HandleListDonations)
		api.POST("/donations", donationHandler.HandleCreateDonation)
		api.GET("/transactions", ledgerHandler.HandleListTransactions)
		api.GET("/leaderboard", ledgerHandler.HandleLeaderboard)
		api.POST("/seed", seedHandler.HandleSeed)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "ParyavaranSahyog API"
	docs.SwaggerInfo.Description = "Donation tracking for environmental NGOs."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
