package controller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"palantir/internal/commons"
	"palantir/internal/domain"
	"palantir/internal/dto"
)

type SearchUseCase interface {
	SearchProducts(ctx context.Context, storeID string, req dto.SearchProductsRequest) (*dto.SearchProductsResponse, error)
}

type CreateProductUseCase interface {
	CreateProduct(ctx context.Context, storeID string, req dto.CreateProductRequest) (*domain.Product, error)
}

type CreateCategoryUseCase interface {
	CreateCategory(ctx context.Context, storeID string, req dto.CreateCategoryRequest) (*domain.Category, error)
}

type FindUseCase interface {
	FindProduct(ctx context.Context, storeID, id string) (*domain.Product, error)
}

type Controller struct {
	search         SearchUseCase
	find           FindUseCase
	createProduct  CreateProductUseCase
	createCategory CreateCategoryUseCase
	logger         *zap.Logger
}

func NewController(search SearchUseCase, find FindUseCase, createProduct CreateProductUseCase, createCategory CreateCategoryUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		search:         search,
		find:           find,
		createProduct:  createProduct,
		createCategory: createCategory,
		logger:         logger,
	}
}

func (c *Controller) Search(w http.ResponseWriter, r *http.Request) {
	traceID, logger := commons.TraceLogger(c.logger)

	storeID, err := commons.StoreID(r)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	var req dto.SearchProductsRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	resp, err := c.search.SearchProducts(r.Context(), storeID, req)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, resp, logger)
}

func (c *Controller) FindByID(w http.ResponseWriter, r *http.Request) {
	traceID, logger := commons.TraceLogger(c.logger)

	storeID, err := commons.StoreID(r)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	product, err := c.find.FindProduct(r.Context(), storeID, chi.URLParam(r, "productId"))
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewProductDTO(*product), logger)
}

func (c *Controller) CreateProduct(w http.ResponseWriter, r *http.Request) {
	traceID, logger := commons.TraceLogger(c.logger)

	storeID, err := commons.StoreID(r)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	var req dto.CreateProductRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	product, err := c.createProduct.CreateProduct(r.Context(), storeID, req)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, dto.NewProductDTO(*product), logger)
}

func (c *Controller) CreateCategory(w http.ResponseWriter, r *http.Request) {
	traceID, logger := commons.TraceLogger(c.logger)

	storeID, err := commons.StoreID(r)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	var req dto.CreateCategoryRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	category, err := c.createCategory.CreateCategory(r.Context(), storeID, req)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, dto.CategoryDTO{ID: category.ID, Name: category.Name}, logger)
}
