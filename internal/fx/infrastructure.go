package fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Memoyu/Mbill/config"
	"github.com/Memoyu/Mbill/internal/infrastructure"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newBillRepository,
		newCategoryRepository,
		newAssetRepository,
		newPreOrderRepository,
		newFileResolver,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newBillRepository(db *gorm.DB) *infrastructure.BillRepository {
	return &infrastructure.BillRepository{DB: db}
}

func newCategoryRepository(db *gorm.DB) *infrastructure.CategoryRepository {
	return &infrastructure.CategoryRepository{DB: db}
}

func newAssetRepository(db *gorm.DB) *infrastructure.AssetRepository {
	return &infrastructure.AssetRepository{DB: db}
}

func newPreOrderRepository(db *gorm.DB) *infrastructure.PreOrderRepository {
	return &infrastructure.PreOrderRepository{DB: db}
}

func newFileResolver(cfg *config.Config) *infrastructure.FileResolver {
	return infrastructure.NewFileResolver(cfg)
}
