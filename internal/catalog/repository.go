package catalog

import (
	"context"
	"errors"

	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/models"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("product not found")

// Repository is the read side of the catalog. Handlers depend on this
// contract so they can be tested against an in-memory fake.
type Repository interface {
	// List returns the full catalog in catalog order (id ascending).
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
}

// GormRepository serves the catalog from the products table.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}
