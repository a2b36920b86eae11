package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Memoyu/Mbill/internal/domain/preorder"
	appErrors "github.com/Memoyu/Mbill/internal/errors"
	"github.com/Memoyu/Mbill/internal/pkg"
	"github.com/Memoyu/Mbill/internal/pkg/calendar"
)

type PreOrderRepository struct {
	DB *gorm.DB
}

var _ preorder.Store = (*PreOrderRepository)(nil)

func NewPreOrderRepository(db *gorm.DB) *PreOrderRepository {
	return &PreOrderRepository{DB: db}
}

type preOrderDB struct {
	Id        string          `gorm:"type:varchar(26);primaryKey;column:id"`
	OwnerId   string          `gorm:"type:varchar(26);index;not null;column:owner_id"`
	Time      time.Time       `gorm:"index;not null;column:time"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null;column:amount"`
	Name      string          `gorm:"size:100;not null;column:name"`
	Deleted   bool            `gorm:"not null;default:false;column:deleted"`
	CreatedAt time.Time       `gorm:"not null;column:created_at"`
	UpdatedAt time.Time       `gorm:"not null;column:updated_at"`
}

func (preOrderDB) TableName() string { return "pre_orders" }

func toDomainPreOrder(pdb *preOrderDB) (*preorder.PreOrder, error) {
	id, err := pkg.ParseULID(pdb.Id)
	if err != nil {
		return nil, err
	}
	ownerID, err := pkg.ParseULID(pdb.OwnerId)
	if err != nil {
		return nil, err
	}
	return &preorder.PreOrder{
		Id:        id,
		OwnerId:   ownerID,
		Time:      pdb.Time,
		Amount:    pdb.Amount,
		Name:      pdb.Name,
		Deleted:   pdb.Deleted,
		CreatedAt: pdb.CreatedAt,
		UpdatedAt: pdb.UpdatedAt,
	}, nil
}

func (r *PreOrderRepository) QueryByYear(ctx context.Context, ownerID ulid.ULID, year int) ([]*preorder.PreOrder, error) {
	begin, end := calendar.YearWindow(year)

	var rows []preOrderDB
	err := r.DB.WithContext(ctx).
		Where("owner_id = ? AND deleted = ? AND time >= ? AND time <= ?", ownerID.String(), false, begin, end).
		Order("time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*preorder.PreOrder, 0, len(rows))
	for i := range rows {
		p, err := toDomainPreOrder(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
