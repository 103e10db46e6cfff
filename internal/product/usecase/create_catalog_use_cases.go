package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"palantir/internal/domain"
	"palantir/internal/dto"
	apperrors "palantir/internal/errors"
)

type ProductWriter interface {
	Create(ctx context.Context, p *domain.Product) error
}

type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	FindByID(ctx context.Context, id string) (*domain.Category, error)
}

type CreateCategoryUseCase struct {
	categories CategoryRepository
	logger     *zap.Logger
}

func NewCreateCategoryUseCase(categories CategoryRepository, logger *zap.Logger) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categories: categories, logger: logger}
}

func (uc *CreateCategoryUseCase) CreateCategory(ctx context.Context, storeID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category, err := domain.NewCategory(storeID, req.Name)
	if err != nil {
		return nil, err
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	uc.logger.Info("category created", zap.String("storeId", storeID), zap.String("categoryId", category.ID))
	return category, nil
}

type CreateProductUseCase struct {
	products   ProductWriter
	categories CategoryRepository
	logger     *zap.Logger
}

func NewCreateProductUseCase(products ProductWriter, categories CategoryRepository, logger *zap.Logger) *CreateProductUseCase {
	return &CreateProductUseCase{products: products, categories: categories, logger: logger}
}

// CreateProduct requires the category to exist in the caller's store.
func (uc *CreateProductUseCase) CreateProduct(ctx context.Context, storeID string, req dto.CreateProductRequest) (*domain.Product, error) {
	category, err := uc.categories.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category.StoreID != storeID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("category with id %s not found", req.CategoryID))
	}

	product, err := domain.NewProduct(storeID, category.ID, req.Name, req.Description, req.Price)
	if err != nil {
		return nil, err
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}

	uc.logger.Info("product created", zap.String("storeId", storeID), zap.String("productId", product.ID))
	return product, nil
}
