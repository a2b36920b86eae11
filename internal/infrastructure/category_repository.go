package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/Memoyu/Mbill/internal/domain/category"
	appErrors "github.com/Memoyu/Mbill/internal/errors"
	"github.com/Memoyu/Mbill/internal/pkg"
)

type CategoryRepository struct {
	DB *gorm.DB
}

var _ category.Repository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

type categoryDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey;column:id"`
	Name      string    `gorm:"size:100;not null;column:name"`
	ParentId  *string   `gorm:"type:varchar(26);index;column:parent_id"`
	IconRef   string    `gorm:"size:255;column:icon_ref"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at"`
}

func (categoryDB) TableName() string { return "categories" }

func toDomainCategory(cdb *categoryDB) (*category.Category, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, err
	}

	var parentID *ulid.ULID
	if cdb.ParentId != nil && *cdb.ParentId != "" {
		parsed, err := pkg.ParseULID(*cdb.ParentId)
		if err != nil {
			return nil, err
		}
		parentID = &parsed
	}

	return &category.Category{
		Id:        id,
		Name:      cdb.Name,
		ParentId:  parentID,
		IconRef:   cdb.IconRef,
		CreatedAt: cdb.CreatedAt,
		UpdatedAt: cdb.UpdatedAt,
	}, nil
}

func (r *CategoryRepository) Get(ctx context.Context, id ulid.ULID) (*category.Category, error) {
	var cdb categoryDB
	err := r.DB.WithContext(ctx).Where("id = ?", id.String()).First(&cdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrCategoryNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainCategory(&cdb)
}

// GetParent resolves the root ancestor of a leaf category. A leaf
// without a parent row is a broken tree and surfaces as not found.
func (r *CategoryRepository) GetParent(ctx context.Context, id ulid.ULID) (*category.Category, error) {
	leaf, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if leaf.ParentId == nil {
		return nil, appErrors.ErrCategoryNotFound.WithDetails(map[string]interface{}{
			"categoryId": id.String(),
		})
	}
	return r.Get(ctx, *leaf.ParentId)
}

func (r *CategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	var rows []categoryDB
	err := r.DB.WithContext(ctx).Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainCategories(rows)
}

func (r *CategoryRepository) ListChildren(ctx context.Context, parentID ulid.ULID) ([]*category.Category, error) {
	var rows []categoryDB
	err := r.DB.WithContext(ctx).
		Where("parent_id = ?", parentID.String()).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainCategories(rows)
}

func toDomainCategories(rows []categoryDB) ([]*category.Category, error) {
	out := make([]*category.Category, 0, len(rows))
	for i := range rows {
		c, err := toDomainCategory(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
