package cmd

import (
	"time"

	"attractionapi/config"
	"attractionapi/db"
	"attractionapi/handlers"
	"attractionapi/repository"
	"attractionapi/services"
	"attractionapi/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			router := NewRouter(cfg, db.Instance, log)
			if domains := cfg.TLSDomainList(); len(domains) > 0 {
				log.Info().Strs("domains", domains).Msg("serving with autotls")
				err = autotls.Run(router, domains...)
			} else {
				log.Info().Str("address", cfg.BindAddress).Msg("serving")
				err = router.Run(cfg.BindAddress)
			}
			log.Error().Err(err).Msg("server stopped")
			return err
		},
	}
}

// NewRouter builds the gin engine with middleware and all API routes
func NewRouter(cfg *config.Config, database *gorm.DB, log zerolog.Logger) *gin.Engine {
	if !cfg.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	_ = router.SetTrustedProxies([]string{})
	router.Use(gin.Recovery())
	router.Use(utils.RequestID())
	router.Use(utils.AccessLog(log))
	if cfg.DebugMode {
		router.Use(utils.ErrorLogMiddleware(log))
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSOriginList(),
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", utils.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", utils.RequestIDHeader},
		MaxAge:        30 * 24 * time.Hour,
	}))
	if !cfg.DebugMode {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	router.Use(utils.CacheControl(utils.CacheNoCache))

	attractionService := services.NewAttractionService(repository.NewAttractionRepository(database), log)
	locationService := services.NewLocationService(repository.NewLocationRepository(database), log)
	handlers.RegisterRoutes(router,
		handlers.NewAttractionHandler(attractionService, log),
		handlers.NewLocationHandler(locationService, log),
		handlers.NewHealthHandler(database, log),
	)
	return router
}
