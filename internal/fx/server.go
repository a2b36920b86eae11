package fx

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/Memoyu/Mbill/config"
	"github.com/Memoyu/Mbill/internal/logger"
	"github.com/Memoyu/Mbill/internal/middleware"
	"github.com/Memoyu/Mbill/internal/routes"
)

// ServerModule provides the HTTP server setup.
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	rateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	ownerLimiter := middleware.NewRateLimiter(100, time.Minute)

	api := router.Group("/api")
	api.Use(middleware.RateLimit(rateLimiter))
	api.Use(middleware.RequireOwner())
	api.Use(middleware.RateLimitByOwner(ownerLimiter))
	{
		bills := api.Group("/bills")
		{
			bills.POST("", handler.CreateBill)
			bills.GET("/day", handler.GetBillsByDay)
			bills.GET("/month", handler.GetBillsByMonth)
			bills.GET("/days-with-bills", handler.GetBillDays)
			bills.GET("/:id", handler.GetBillDetail)
			bills.PATCH("/:id", handler.UpdateBill)
			bills.DELETE("/:id", handler.DeleteBill)
		}

		statistics := api.Group("/statistics")
		{
			statistics.GET("/month-total", handler.GetMonthTotal)
			statistics.GET("/year-total", handler.GetYearTotal)
			statistics.GET("/expense-category", handler.GetExpenseCategoryStats)
			statistics.GET("/week-trend", handler.GetWeeklyExpenseTrend)
			statistics.GET("/month-trend", handler.GetMonthlyExpenseTrend)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", handler.ListCategories)
			categories.GET("/:id", handler.GetCategory)
			categories.GET("/:id/children", handler.ListCategoryChildren)
		}

		assets := api.Group("/assets")
		{
			assets.GET("", handler.ListAssets)
			assets.GET("/:id", handler.GetAsset)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Server starting")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Server stopping...")
			rateLimiter.Stop()
			ownerLimiter.Stop()
			return nil
		},
	})
}
