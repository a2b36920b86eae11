package fx

import (
	"time"

	"go.uber.org/fx"

	"github.com/Memoyu/Mbill/internal/domain/asset"
	"github.com/Memoyu/Mbill/internal/domain/bill"
	"github.com/Memoyu/Mbill/internal/domain/category"
	"github.com/Memoyu/Mbill/internal/middleware"
	"github.com/Memoyu/Mbill/internal/routes"
)

// RoutesModule provides the HTTP handler and rate limiter.
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newRateLimiter,
	),
)

func newHandler(
	billSvc *bill.Service,
	categorySvc *category.Service,
	assetSvc *asset.Service,
) *routes.Handler {
	return &routes.Handler{
		BillService:     billSvc,
		CategoryService: categorySvc,
		AssetService:    assetSvc,
	}
}

func newRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
