package usecase

import (
	"context"

	"palantir/internal/domain"
	"palantir/internal/dto"
	apperrors "palantir/internal/errors"
)

type Service interface {
	GetProductsByIDsAndStore(ctx context.Context, ids []string, storeID string) (found []domain.Product, notFoundIDs []string, err error)
}

type SearchUseCase struct {
	service Service
}

func NewSearchUseCase(service Service) *SearchUseCase {
	return &SearchUseCase{service: service}
}

func (uc *SearchUseCase) SearchProducts(ctx context.Context, storeID string, req dto.SearchProductsRequest) (*dto.SearchProductsResponse, error) {
	if len(req.ProductIDs) == 0 {
		return nil, apperrors.NewInvalidArgument("productIds", "productIds must not be empty")
	}

	found, notFoundIDs, err := uc.service.GetProductsByIDsAndStore(ctx, req.ProductIDs, storeID)
	if err != nil {
		return nil, err
	}

	products := make([]dto.ProductDTO, 0, len(found))
	for _, p := range found {
		products = append(products, dto.NewProductDTO(p))
	}

	if notFoundIDs == nil {
		notFoundIDs = []string{}
	}

	return &dto.SearchProductsResponse{
		Products: products,
		NotFound: notFoundIDs,
	}, nil
}

type ProductFinder interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}

type FindProductUseCase struct {
	products ProductFinder
}

func NewFindProductUseCase(products ProductFinder) *FindProductUseCase {
	return &FindProductUseCase{products: products}
}

// FindProduct hides products of other stores behind NotFound.
func (uc *FindProductUseCase) FindProduct(ctx context.Context, storeID, id string) (*domain.Product, error) {
	product, err := uc.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.StoreID != storeID {
		return nil, apperrors.NewNotFoundError("product with id " + id + " not found")
	}
	return product, nil
}
