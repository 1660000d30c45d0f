package repositories

import (
	"context"

	"github.com/rakhadenta/gokart/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartItemRepositoryImpl interface {
	AddOrIncrement(ctx context.Context, userID, productID string) error
	GetByUserAndProduct(ctx context.Context, userID, productID string) (*models.CartItem, error)
	GetByUserID(ctx context.Context, userID string) ([]models.CartItem, error)
	UpdateQuantity(ctx context.Context, item *models.CartItem) error
	ClearByUserID(ctx context.Context, userID string) error
	CountByUserID(ctx context.Context, userID string) (int, error)
}

type cartItemRepository struct {
	db *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepositoryImpl {
	return &cartItemRepository{db}
}

// AddOrIncrement inserts a quantity-1 row or bumps the existing one by 1, as a
// single statement keyed on the (user_id, product_id) primary key. Two adds
// racing for the same pair both land on the same row; there is no
// check-then-act window to lose an increment in.
func (r *cartItemRepository) AddOrIncrement(ctx context.Context, userID, productID string) error {
	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("quantity + ?", 1)}),
		}).
		Create(&item).Error
}

func (r *cartItemRepository) GetByUserAndProduct(ctx context.Context, userID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartItemRepository) GetByUserID(ctx context.Context, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartItemRepository) UpdateQuantity(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
		Update("quantity", item.Quantity).Error
}

// ClearByUserID is idempotent; clearing an empty cart deletes nothing and
// reports success.
func (r *cartItemRepository) ClearByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}

func (r *cartItemRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return int(count), err
}
