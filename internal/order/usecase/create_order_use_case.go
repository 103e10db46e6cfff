package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"palantir/internal/domain"
	"palantir/internal/dto"
	apperrors "palantir/internal/errors"
)

type CreateOrderUseCase struct {
	orders    OrderRepository
	catalog   ProductCatalog
	totems    TotemFinder
	customers CustomerFinder
	logger    *zap.Logger
}

func NewCreateOrderUseCase(
	orders OrderRepository,
	catalog ProductCatalog,
	totems TotemFinder,
	customers CustomerFinder,
	logger *zap.Logger,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orders:    orders,
		catalog:   catalog,
		totems:    totems,
		customers: customers,
		logger:    logger,
	}
}

// Create prices every item from the store's catalog, never from the request.
func (uc *CreateOrderUseCase) Create(ctx context.Context, storeID string, req dto.CreateOrderRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.NewInvalidArgument("items", "order must have at least one item")
	}

	ids := make([]string, len(req.Items))
	for i, item := range req.Items {
		ids[i] = item.ProductID
	}

	found, notFound, err := uc.catalog.GetProductsByIDsAndStore(ctx, ids, storeID)
	if err != nil {
		return nil, err
	}
	if len(notFound) > 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("products not found: %s", strings.Join(notFound, ", ")))
	}

	products := make(map[string]domain.Product, len(found))
	for _, p := range found {
		products[p.ID] = p
	}

	items := make([]*domain.OrderItem, 0, len(req.Items))
	for i, reqItem := range req.Items {
		product := products[reqItem.ProductID]
		if !product.IsOrderable() {
			return nil, apperrors.NewInvalidArgument(fmt.Sprintf("items[%d].productId", i), fmt.Sprintf("product %s is not available", product.ID))
		}
		item, err := domain.NewOrderItem(product.ID, product.Price, reqItem.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if req.TotemID != nil && strings.TrimSpace(*req.TotemID) != "" {
		totem, err := uc.totems.FindTotemByID(ctx, *req.TotemID)
		if err != nil {
			return nil, err
		}
		if totem.StoreID != storeID {
			return nil, apperrors.NewInvalidArgument("totemId", "totem does not belong to this store")
		}
	}

	order, err := domain.NewOrder(storeID, req.TotemID, items)
	if err != nil {
		return nil, err
	}

	if req.CustomerID != nil && strings.TrimSpace(*req.CustomerID) != "" {
		customer, err := uc.customers.FindByID(ctx, *req.CustomerID)
		if err != nil {
			return nil, err
		}
		if err := order.AssociateCustomer(customer.ID); err != nil {
			return nil, err
		}
	}

	if err := uc.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	uc.logger.Info("order created",
		zap.String("orderId", order.ID()),
		zap.String("storeId", storeID),
		zap.Int("itemCount", len(items)),
		zap.String("total", order.TotalPrice().StringFixed(2)),
	)
	return order, nil
}
