package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/Memoyu/Mbill/internal/domain/asset"
	appErrors "github.com/Memoyu/Mbill/internal/errors"
	"github.com/Memoyu/Mbill/internal/pkg"
)

type AssetRepository struct {
	DB *gorm.DB
}

var _ asset.Repository = (*AssetRepository)(nil)

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{DB: db}
}

type assetDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey;column:id"`
	OwnerId   string    `gorm:"type:varchar(26);index;not null;column:owner_id"`
	Name      string    `gorm:"size:100;not null;column:name"`
	IconRef   string    `gorm:"size:255;column:icon_ref"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at"`
}

func (assetDB) TableName() string { return "assets" }

func toDomainAsset(adb *assetDB) (*asset.Asset, error) {
	id, err := pkg.ParseULID(adb.Id)
	if err != nil {
		return nil, err
	}
	ownerID, err := pkg.ParseULID(adb.OwnerId)
	if err != nil {
		return nil, err
	}
	return &asset.Asset{
		Id:        id,
		OwnerId:   ownerID,
		Name:      adb.Name,
		IconRef:   adb.IconRef,
		CreatedAt: adb.CreatedAt,
		UpdatedAt: adb.UpdatedAt,
	}, nil
}

func (r *AssetRepository) Get(ctx context.Context, id ulid.ULID) (*asset.Asset, error) {
	var adb assetDB
	err := r.DB.WithContext(ctx).Where("id = ?", id.String()).First(&adb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrAssetNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainAsset(&adb)
}

func (r *AssetRepository) ListByOwner(ctx context.Context, ownerID ulid.ULID) ([]*asset.Asset, error) {
	var rows []assetDB
	err := r.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID.String()).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*asset.Asset, 0, len(rows))
	for i := range rows {
		a, err := toDomainAsset(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
