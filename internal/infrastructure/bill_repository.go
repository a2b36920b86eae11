package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Memoyu/Mbill/internal/domain/bill"
	appErrors "github.com/Memoyu/Mbill/internal/errors"
	"github.com/Memoyu/Mbill/internal/pkg"
)

type BillRepository struct {
	DB *gorm.DB
}

var _ bill.Store = (*BillRepository)(nil)

func NewBillRepository(db *gorm.DB) *BillRepository {
	return &BillRepository{DB: db}
}

type billDB struct {
	Id            string          `gorm:"type:varchar(26);primaryKey;column:id"`
	OwnerId       string          `gorm:"type:varchar(26);index;not null;column:owner_id"`
	Time          time.Time       `gorm:"index;not null;column:time"`
	Type          string          `gorm:"type:varchar(15);not null;column:type"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null;column:amount"`
	CategoryId    *string         `gorm:"type:varchar(26);index;column:category_id"`
	AssetId       string          `gorm:"type:varchar(26);index;not null;column:asset_id"`
	TargetAssetId *string         `gorm:"type:varchar(26);column:target_asset_id"`
	Description   string          `gorm:"size:255;column:description"`
	Deleted       bool            `gorm:"not null;default:false;column:deleted"`
	CreatedAt     time.Time       `gorm:"not null;column:created_at"`
	UpdatedAt     time.Time       `gorm:"not null;column:updated_at"`
}

func (billDB) TableName() string { return "bills" }

func toDomainBill(bdb *billDB) (*bill.Bill, error) {
	id, err := pkg.ParseULID(bdb.Id)
	if err != nil {
		return nil, err
	}
	ownerID, err := pkg.ParseULID(bdb.OwnerId)
	if err != nil {
		return nil, err
	}
	assetID, err := pkg.ParseULID(bdb.AssetId)
	if err != nil {
		return nil, err
	}

	var categoryID *ulid.ULID
	if bdb.CategoryId != nil && *bdb.CategoryId != "" {
		parsed, err := pkg.ParseULID(*bdb.CategoryId)
		if err != nil {
			return nil, err
		}
		categoryID = &parsed
	}

	var targetAssetID *ulid.ULID
	if bdb.TargetAssetId != nil && *bdb.TargetAssetId != "" {
		parsed, err := pkg.ParseULID(*bdb.TargetAssetId)
		if err != nil {
			return nil, err
		}
		targetAssetID = &parsed
	}

	return &bill.Bill{
		Id:            id,
		OwnerId:       ownerID,
		Time:          bdb.Time,
		Type:          bill.Type(bdb.Type),
		Amount:        bdb.Amount,
		CategoryId:    categoryID,
		AssetId:       assetID,
		TargetAssetId: targetAssetID,
		Description:   bdb.Description,
		Deleted:       bdb.Deleted,
		CreatedAt:     bdb.CreatedAt,
		UpdatedAt:     bdb.UpdatedAt,
	}, nil
}

func toDBBill(b *bill.Bill) *billDB {
	var categoryID *string
	if b.CategoryId != nil {
		s := b.CategoryId.String()
		categoryID = &s
	}
	var targetAssetID *string
	if b.TargetAssetId != nil {
		s := b.TargetAssetId.String()
		targetAssetID = &s
	}
	return &billDB{
		Id:            b.Id.String(),
		OwnerId:       b.OwnerId.String(),
		Time:          b.Time,
		Type:          string(b.Type),
		Amount:        b.Amount,
		CategoryId:    categoryID,
		AssetId:       b.AssetId.String(),
		TargetAssetId: targetAssetID,
		Description:   b.Description,
		Deleted:       b.Deleted,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (r *BillRepository) Create(ctx context.Context, b *bill.Bill) error {
	bdb := toDBBill(b)
	if err := r.DB.WithContext(ctx).Create(bdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// Update overwrites every mutable column, including nil and zero
// values. A struct-valued Updates would skip those and leave a stale
// category_id behind when a bill changes to a transfer or repayment.
func (r *BillRepository) Update(ctx context.Context, b *bill.Bill) error {
	bdb := toDBBill(b)
	result := r.DB.WithContext(ctx).Model(&billDB{}).
		Where("id = ? AND owner_id = ? AND deleted = ?", bdb.Id, bdb.OwnerId, false).
		Select("type", "amount", "time", "category_id", "asset_id", "target_asset_id", "description", "updated_at").
		Updates(bdb)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrBillNotFound
	}
	return nil
}

func (r *BillRepository) SoftDelete(ctx context.Context, id, ownerID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Model(&billDB{}).
		Where("id = ? AND owner_id = ? AND deleted = ?", id.String(), ownerID.String(), false).
		Updates(map[string]interface{}{"deleted": true, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrBillNotFound
	}
	return nil
}

func (r *BillRepository) GetByID(ctx context.Context, id ulid.ULID) (*bill.Bill, error) {
	var bdb billDB
	err := r.DB.WithContext(ctx).
		Where("id = ? AND deleted = ?", id.String(), false).
		First(&bdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrBillNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainBill(&bdb)
}

func (r *BillRepository) Query(ctx context.Context, f bill.Filter, sort bill.Sort) ([]*bill.Bill, error) {
	var rows []billDB
	err := applyBillFilter(r.DB.WithContext(ctx).Model(&billDB{}), f).
		Order(orderClause(sort)).
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainBills(rows)
}

func (r *BillRepository) QueryPaged(ctx context.Context, f bill.Filter, sort bill.Sort, pagination *pkg.PaginationParams) ([]*bill.Bill, int64, error) {
	pagination = pkg.NormalizePagination(pagination)

	var total int64
	if err := applyBillFilter(r.DB.WithContext(ctx).Model(&billDB{}), f).Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []billDB
	err := applyBillFilter(r.DB.WithContext(ctx).Model(&billDB{}), f).
		Order(orderClause(sort)).
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	bills, err := toDomainBills(rows)
	if err != nil {
		return nil, 0, err
	}
	return bills, total, nil
}

// applyBillFilter translates the declarative filter into WHERE clauses.
// Deleted rows are excluded on every query path; nil optional fields
// add no clause.
func applyBillFilter(q *gorm.DB, f bill.Filter) *gorm.DB {
	q = q.Where("deleted = ?", false)

	if f.OwnerId != nil {
		q = q.Where("owner_id = ?", f.OwnerId.String())
	}
	if !f.Begin.IsZero() {
		q = q.Where("time >= ?", f.Begin)
	}
	if !f.End.IsZero() {
		q = q.Where("time <= ?", f.End)
	}
	if f.Type != nil {
		q = q.Where("type = ?", string(*f.Type))
	}
	if f.CategoryId != nil {
		q = q.Where("category_id = ?", f.CategoryId.String())
	}
	if f.AssetId != nil {
		q = q.Where("asset_id = ?", f.AssetId.String())
	}
	return q
}

// orderClause maps the validated sort onto column names. Sort values
// reach this point only through ParseSort, so the sets are closed.
func orderClause(sort bill.Sort) string {
	column := "time"
	if sort.Field == bill.SortByAmount {
		column = "amount"
	}
	return fmt.Sprintf("%s %s, created_at DESC", column, sort.Direction)
}

func toDomainBills(rows []billDB) ([]*bill.Bill, error) {
	out := make([]*bill.Bill, 0, len(rows))
	for i := range rows {
		b, err := toDomainBill(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
