package impl

import (
	"context"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockProductRepository) {
	t.Helper()

	productRepo := mockRepo.NewMockProductRepository(t)

	svc := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Logger:      slog.Default(),
	})

	return svc, productRepo
}

func TestCatalogService_GetProduct(t *testing.T) {
	svc, productRepo := newCatalogService(t)
	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Title: "Ankara Shirt"}, nil)

	product, err := svc.GetProduct(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, "Ankara Shirt", product.Title)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	svc, productRepo := newCatalogService(t)
	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := svc.GetProduct(ctx, productID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ListProducts(t *testing.T) {
	svc, productRepo := newCatalogService(t)
	ctx := context.Background()

	productRepo.EXPECT().
		List(ctx).
		Return([]*entity.Product{
			{Title: "Ankara Shirt"},
			{Title: "Leather Sandals"},
		}, nil)

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCatalogService_CreateProduct(t *testing.T) {
	svc, productRepo := newCatalogService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			product := args.Get(1).(*entity.Product)
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := svc.CreateProduct(ctx, &usecase.CreateProductInput{
		Title:       "Shea Butter",
		Description: "Unrefined, 250g tub.",
		Price:       2500,
		CategoryID:  categoryID,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, int64(2500), product.Price)
	assert.Equal(t, categoryID, product.CategoryID)
}
