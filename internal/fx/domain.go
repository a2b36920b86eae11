package fx

import (
	"go.uber.org/fx"

	"github.com/Memoyu/Mbill/internal/domain/asset"
	"github.com/Memoyu/Mbill/internal/domain/bill"
	"github.com/Memoyu/Mbill/internal/domain/category"
	"github.com/Memoyu/Mbill/internal/infrastructure"
)

// DomainModule provides the domain services.
var DomainModule = fx.Module("domain",
	fx.Provide(
		newCategoryService,
		newAssetService,
		newBillService,
	),
)

func newCategoryService(
	repo *infrastructure.CategoryRepository,
	icons *infrastructure.FileResolver,
) *category.Service {
	return category.NewService(repo, icons)
}

func newAssetService(repo *infrastructure.AssetRepository) *asset.Service {
	return asset.NewService(repo)
}

func newBillService(
	store *infrastructure.BillRepository,
	preOrders *infrastructure.PreOrderRepository,
	categoryRepo *infrastructure.CategoryRepository,
	assetRepo *infrastructure.AssetRepository,
	icons *infrastructure.FileResolver,
) *bill.Service {
	return bill.NewService(store, preOrders, categoryRepo, assetRepo, icons)
}
