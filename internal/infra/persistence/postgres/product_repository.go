package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new instance of productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productModel model.ProductModel
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&productModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productModel), nil
}

func (r *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productModel := range productModels {
		products = append(products, toProductDomain(productModel))
	}

	return products, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productModel := fromProductDomain(product)
	if err := r.db.WithContext(ctx).Create(productModel).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "category does not exist")
		}

		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productModel.ID
	product.CreatedAt = productModel.CreatedAt
	product.UpdatedAt = productModel.UpdatedAt

	return nil
}

// RecomputeRating folds the product's review ratings back into the products
// row with a single UPDATE. The aggregate runs as a subquery so the write
// serializes on the product row and never races a concurrent recompute.
func (r *productRepository) RecomputeRating(ctx context.Context, productID uuid.UUID) (int, error) {
	var rating int
	err := r.db.WithContext(ctx).Raw(`
		UPDATE products
		SET rating = COALESCE(
			(SELECT ROUND(AVG(rating))::int FROM reviews WHERE product_id = ?),
			0
		), updated_at = NOW()
		WHERE id = ?
		RETURNING rating`,
		productID, productID,
	).Scan(&rating).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to recompute product rating")
	}

	return rating, nil
}

// toProductDomain converts a GORM model to a domain entity.
func toProductDomain(productModel *model.ProductModel) *entity.Product {
	product := &entity.Product{
		ID:          productModel.ID,
		Title:       productModel.Title,
		Description: productModel.Description,
		Price:       productModel.Price,
		Rating:      productModel.Rating,
		CategoryID:  productModel.CategoryID,
		CreatedAt:   productModel.CreatedAt,
		UpdatedAt:   productModel.UpdatedAt,
	}
	if productModel.Category != nil {
		product.Category = &entity.Category{
			ID:   productModel.Category.ID,
			Name: productModel.Category.Name,
			Slug: productModel.Category.Slug,
		}
	}

	return product
}

// fromProductDomain converts a domain entity to a GORM model.
func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price,
		Rating:      product.Rating,
		CategoryID:  product.CategoryID,
	}
}
