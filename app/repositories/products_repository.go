package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/rakhadenta/gokart/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductFilter narrows GetFiltered. Fields left at their zero value are not
// applied; supplied filters combine with AND. Price bounds are inclusive.
type ProductFilter struct {
	CategoryID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Color      string
}

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetFiltered(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		First(&product, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetFiltered(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	var products []models.Product

	query := p.db.WithContext(ctx).Model(&models.Product{}).Preload("Category")

	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if filter.Color != "" {
		query = query.Where("color = ?", filter.Color)
	}

	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Update persists changes to an already-loaded product. Save runs against the
// existing primary key, so an update can never fall through to an insert.
func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

func (p *productRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := p.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error
	return total, err
}
